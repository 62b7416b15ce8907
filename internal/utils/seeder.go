package utils

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"exerciselog/internal/repository"
	"exerciselog/internal/services"
)

type ExerciseSeed struct {
	Name        string
	Description string
}

// DefaultExercises is the starter catalog offered to new installations.
var DefaultExercises = []ExerciseSeed{
	{Name: "Walk", Description: "Leashed walk"},
	{Name: "Run", Description: "Jogging alongside"},
	{Name: "Fetch", Description: "Ball or stick"},
	{Name: "Swim", Description: ""},
	{Name: "Tug of war", Description: ""},
	{Name: "Agility", Description: "Obstacle course"},
	{Name: "Hike", Description: "Trail"},
	{Name: "Dog park", Description: "Off-leash play"},
}

// SeedExercises inserts every seed through the catalog's duplicate check, so
// running it twice is harmless.
func SeedExercises(ctx context.Context, catalog services.CatalogService, seeds []ExerciseSeed) (created, skipped int, err error) {
	for _, seed := range seeds {
		res, err := catalog.CreateIfAbsent(ctx, seed.Name, seed.Description)
		if err != nil {
			return created, skipped, fmt.Errorf("seed %q: %w", seed.Name, err)
		}
		if res.Duplicate {
			skipped++
			continue
		}
		created++
		log.Debug().Uint("exercise_id", res.Exercise.ID).Str("name", seed.Name).Msg("seeded exercise")
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("exercise seeding finished")
	return created, skipped, nil
}

// ClearAll removes every exercise log entry and every exercise, then drops the
// cached catalog listing. cache may be nil.
func ClearAll(ctx context.Context, exercises repository.ExerciseRepository, logs repository.ExerciseLogRepository, cache services.ExerciseCache) error {
	nLogs, err := logs.DeleteAll(ctx)
	if err != nil {
		return err
	}
	nExercises, err := exercises.DeleteAll(ctx)
	if err != nil {
		return err
	}
	if cache != nil {
		if err := cache.InvalidateExercises(ctx); err != nil {
			return fmt.Errorf("invalidate exercise cache: %w", err)
		}
	}

	log.Info().Int64("exercise_logs", nLogs).Int64("exercises", nExercises).Msg("cleared database")
	return nil
}
