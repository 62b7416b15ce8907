package repository

import (
	"context"

	"gorm.io/gorm"

	"exerciselog/internal/models"
)

type ExerciseRepository interface {
	FindAll(ctx context.Context) ([]models.Exercise, error)
	FindByNameAndDescription(ctx context.Context, name, description string) (*models.Exercise, error)
	Create(ctx context.Context, exercise *models.Exercise) error
	DeleteAll(ctx context.Context) (int64, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db}
}

func (r *exerciseRepository) FindAll(ctx context.Context) ([]models.Exercise, error) {
	exercises := []models.Exercise{}
	err := r.db.WithContext(ctx).Order("id").Find(&exercises).Error
	return exercises, translate(err, "find exercises")
}

// FindByNameAndDescription matches both columns exactly, including an empty description.
func (r *exerciseRepository) FindByNameAndDescription(ctx context.Context, name, description string) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.WithContext(ctx).
		Where("name = ? AND description = ?", name, description).
		First(&exercise).Error
	if err != nil {
		return nil, translate(err, "find exercise by name and description")
	}
	return &exercise, nil
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	return translate(r.db.WithContext(ctx).Create(exercise).Error, "create exercise")
}

func (r *exerciseRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Exercise{})
	return res.RowsAffected, translate(res.Error, "delete exercises")
}
