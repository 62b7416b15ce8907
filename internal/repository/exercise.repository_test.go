package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exerciselog/internal/models"
	"exerciselog/internal/repository"
	"exerciselog/internal/testinfra"
)

func TestExerciseRepositoryCreateAndFindAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewExerciseRepository(testinfra.NewSQLiteDB(t))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)

	running := &models.Exercise{Name: "Running", Description: "morning"}
	walking := &models.Exercise{Name: "Walking"}
	require.NoError(t, repo.Create(ctx, running))
	require.NoError(t, repo.Create(ctx, walking))
	assert.NotZero(t, running.ID)
	assert.NotEqual(t, running.ID, walking.ID)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Running", all[0].Name)
	assert.Equal(t, "", all[1].Description)
}

func TestExerciseRepositoryFindByNameAndDescription(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewExerciseRepository(testinfra.NewSQLiteDB(t))

	require.NoError(t, repo.Create(ctx, &models.Exercise{Name: "Running", Description: "morning"}))
	require.NoError(t, repo.Create(ctx, &models.Exercise{Name: "Running"}))

	found, err := repo.FindByNameAndDescription(ctx, "Running", "morning")
	require.NoError(t, err)
	assert.Equal(t, "morning", found.Description)

	found, err = repo.FindByNameAndDescription(ctx, "Running", "")
	require.NoError(t, err)
	assert.Equal(t, "", found.Description)

	_, err = repo.FindByNameAndDescription(ctx, "running", "morning")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByNameAndDescription(ctx, "Running", "evening")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExerciseRepositoryDeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewExerciseRepository(testinfra.NewSQLiteDB(t))

	require.NoError(t, repo.Create(ctx, &models.Exercise{Name: "Running"}))
	require.NoError(t, repo.Create(ctx, &models.Exercise{Name: "Swimming"}))

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
