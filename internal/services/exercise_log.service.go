package services

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"exerciselog/internal/apierr"
	"exerciselog/internal/logging"
	"exerciselog/internal/models"
	"exerciselog/internal/repository"
)

type ExerciseLogService interface {
	UpdateOrCreate(ctx context.Context, req *models.UpdateExerciseLogRequest) (*models.ExerciseLog, error)
	Delete(ctx context.Context, id uint) error
	ListForLog(ctx context.Context, logID uint) ([]models.ExerciseLogEntry, error)
}

type exerciseLogService struct {
	repo repository.ExerciseLogRepository
}

func NewExerciseLogService(repo repository.ExerciseLogRepository) ExerciseLogService {
	return &exerciseLogService{repo: repo}
}

// UpdateOrCreate creates a new entry when exerciseLog.id is absent and
// otherwise applies a partial update to the existing one.
func (s *exerciseLogService) UpdateOrCreate(ctx context.Context, req *models.UpdateExerciseLogRequest) (*models.ExerciseLog, error) {
	if req == nil || req.ExerciseLog == nil {
		return nil, apierr.ErrInvalidReq.Msg("exerciseLog is required")
	}
	if req.ExerciseLog.ID == nil {
		return s.create(ctx, req.ID, req.ExerciseLog)
	}
	return s.edit(ctx, req.ExerciseLog)
}

func (s *exerciseLogService) create(ctx context.Context, logID *uint, payload *models.ExerciseLogPayload) (*models.ExerciseLog, error) {
	if logID == nil {
		return nil, apierr.ErrInvalidReq.Msg("id is required when creating an exercise log")
	}
	if payload.ExerciseID == nil {
		return nil, apierr.ErrInvalidReq.Msg("exerciseLog.exerciseId is required when creating an exercise log")
	}

	entry := &models.ExerciseLog{
		Duration:   lo.FromPtr(payload.Duration),
		Intensity:  lo.FromPtr(payload.Intensity),
		ExerciseID: *payload.ExerciseID,
		LogID:      *logID,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, apierr.ErrInternalError.Wrap(err)
	}

	logging.Ctx(ctx).Info().
		Uint("exercise_log_id", entry.ID).
		Uint("log_id", entry.LogID).
		Msg("exercise log created")
	return entry, nil
}

func (s *exerciseLogService) edit(ctx context.Context, payload *models.ExerciseLogPayload) (*models.ExerciseLog, error) {
	entry, err := s.find(ctx, *payload.ID)
	if err != nil {
		return nil, err
	}

	if payload.Duration != nil {
		entry.Duration = *payload.Duration
	}
	if payload.Intensity != nil {
		entry.Intensity = *payload.Intensity
	}
	if payload.ExerciseID != nil {
		entry.ExerciseID = *payload.ExerciseID
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, apierr.ErrInternalError.Wrap(err)
	}
	return entry, nil
}

// Delete reports NotFound for an id with no row.
func (s *exerciseLogService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// removed by someone else between the lookup and the delete
		return apierr.ErrNotFound.Msg("exercise log %d not found", id)
	case err != nil:
		return apierr.ErrInternalError.Wrap(err)
	}

	logging.Ctx(ctx).Info().Uint("exercise_log_id", id).Msg("exercise log deleted")
	return nil
}

func (s *exerciseLogService) ListForLog(ctx context.Context, logID uint) ([]models.ExerciseLogEntry, error) {
	entries, err := s.repo.FindEntriesByLogID(ctx, logID)
	if err != nil {
		return nil, apierr.ErrInternalError.Wrap(err)
	}
	return entries, nil
}

func (s *exerciseLogService) find(ctx context.Context, id uint) (*models.ExerciseLog, error) {
	entry, err := s.repo.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, apierr.ErrNotFound.Msg("exercise log %d not found", id)
	case err != nil:
		return nil, apierr.ErrInternalError.Wrap(err)
	}
	return entry, nil
}
