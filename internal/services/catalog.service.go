package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"exerciselog/internal/apierr"
	"exerciselog/internal/logging"
	"exerciselog/internal/models"
	"exerciselog/internal/repository"
)

// ExerciseCache is the read-through cache in front of the catalog listing.
type ExerciseCache interface {
	GetExercises(ctx context.Context) ([]models.Exercise, bool, error)
	SetExercises(ctx context.Context, exercises []models.Exercise) error
	InvalidateExercises(ctx context.Context) error
}

// CreateExerciseResult carries either the inserted record or the duplicate notice.
type CreateExerciseResult struct {
	Exercise  *models.Exercise
	Duplicate bool
	Message   string
}

type CatalogService interface {
	ListAll(ctx context.Context) ([]models.Exercise, error)
	CreateIfAbsent(ctx context.Context, name, description string) (*CreateExerciseResult, error)
}

type catalogService struct {
	repo  repository.ExerciseRepository
	cache ExerciseCache

	// generation is bumped on every catalog write; a listing read under an
	// older generation is not written back to the cache.
	generation atomic.Uint64
}

// NewCatalogService accepts a nil cache.
func NewCatalogService(repo repository.ExerciseRepository, cache ExerciseCache) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

func DuplicateExerciseMessage(name string) string {
	return fmt.Sprintf("You already have an activity called %s.", name)
}

func (s *catalogService) ListAll(ctx context.Context) ([]models.Exercise, error) {
	if s.cache != nil {
		exercises, ok, err := s.cache.GetExercises(ctx)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("exercise cache read failed")
		} else if ok {
			return exercises, nil
		}
	}

	generation := s.generation.Load()
	exercises, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apierr.ErrInternalError.Wrap(err)
	}

	if s.cache != nil && s.generation.Load() == generation {
		if err := s.cache.SetExercises(ctx, exercises); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("exercise cache write failed")
		}
	}
	return exercises, nil
}

// CreateIfAbsent inserts unless an exercise with the exact same name and
// description exists. The lookup and the insert are separate statements, so
// concurrent callers may both insert.
func (s *catalogService) CreateIfAbsent(ctx context.Context, name, description string) (*CreateExerciseResult, error) {
	if name == "" {
		return nil, apierr.ErrInvalidReq.Msg("activity is required")
	}

	existing, err := s.repo.FindByNameAndDescription(ctx, name, description)
	switch {
	case err == nil:
		return &CreateExerciseResult{
			Exercise:  existing,
			Duplicate: true,
			Message:   DuplicateExerciseMessage(name),
		}, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, apierr.ErrInternalError.Wrap(err)
	}

	exercise := &models.Exercise{Name: name, Description: description}
	if err := s.repo.Create(ctx, exercise); err != nil {
		return nil, apierr.ErrInternalError.Wrap(err)
	}

	s.generation.Add(1)
	if s.cache != nil {
		if err := s.cache.InvalidateExercises(ctx); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("exercise cache invalidation failed")
		}
	}

	logging.Ctx(ctx).Info().Uint("exercise_id", exercise.ID).Str("name", name).Msg("exercise created")
	return &CreateExerciseResult{Exercise: exercise}, nil
}
