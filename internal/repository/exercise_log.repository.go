package repository

import (
	"context"

	"gorm.io/gorm"

	"exerciselog/internal/models"
)

type ExerciseLogRepository interface {
	Create(ctx context.Context, log *models.ExerciseLog) error
	FindByID(ctx context.Context, id uint) (*models.ExerciseLog, error)
	Update(ctx context.Context, log *models.ExerciseLog) error
	Delete(ctx context.Context, id uint) error
	FindEntriesByLogID(ctx context.Context, logID uint) ([]models.ExerciseLogEntry, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type exerciseLogRepository struct {
	db *gorm.DB
}

func NewExerciseLogRepository(db *gorm.DB) ExerciseLogRepository {
	return &exerciseLogRepository{db}
}

func (r *exerciseLogRepository) Create(ctx context.Context, log *models.ExerciseLog) error {
	return translate(r.db.WithContext(ctx).Create(log).Error, "create exercise log")
}

func (r *exerciseLogRepository) FindByID(ctx context.Context, id uint) (*models.ExerciseLog, error) {
	var log models.ExerciseLog
	err := r.db.WithContext(ctx).First(&log, id).Error
	if err != nil {
		return nil, translate(err, "find exercise log")
	}
	return &log, nil
}

func (r *exerciseLogRepository) Update(ctx context.Context, log *models.ExerciseLog) error {
	return translate(r.db.WithContext(ctx).Save(log).Error, "update exercise log")
}

// Delete returns ErrNotFound when no row carries id.
func (r *exerciseLogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ExerciseLog{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete exercise log")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *exerciseLogRepository) FindEntriesByLogID(ctx context.Context, logID uint) ([]models.ExerciseLogEntry, error) {
	entries := []models.ExerciseLogEntry{}
	err := r.db.WithContext(ctx).
		Model(&models.ExerciseLog{}).
		Select("exercise_logs.id, exercise_logs.duration, exercise_logs.intensity, exercise_logs.exercise_id, COALESCE(exercises.name, '') AS name, COALESCE(exercises.description, '') AS description").
		Joins("LEFT JOIN exercises ON exercises.id = exercise_logs.exercise_id").
		Where("exercise_logs.log_id = ?", logID).
		Order("exercise_logs.id").
		Scan(&entries).Error
	return entries, translate(err, "find exercise log entries")
}

func (r *exerciseLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ExerciseLog{})
	return res.RowsAffected, translate(res.Error, "delete exercise logs")
}
