package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exerciselog/internal/apierr"
	"exerciselog/internal/mocks"
	"exerciselog/internal/models"
	"exerciselog/internal/repository"
	"exerciselog/internal/services"
	"exerciselog/internal/testinfra"
)

func newExerciseLogs(t *testing.T) (services.ExerciseLogService, repository.ExerciseLogRepository) {
	repo := repository.NewExerciseLogRepository(testinfra.NewSQLiteDB(t))
	return services.NewExerciseLogService(repo), repo
}

func requireAPIError(t *testing.T, err error, status int) *apierr.Error {
	t.Helper()
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.StatusCode)
	return apiErr
}

func TestUpdateOrCreateCreatesWithoutID(t *testing.T) {
	ctx := context.Background()
	svc, repo := newExerciseLogs(t)

	req := &models.UpdateExerciseLogRequest{
		ID: lo.ToPtr(uint(7)),
		ExerciseLog: &models.ExerciseLogPayload{
			Duration:   lo.ToPtr("30"),
			Intensity:  lo.ToPtr("high"),
			ExerciseID: lo.ToPtr(uint(1)),
		},
	}

	first, err := svc.UpdateOrCreate(ctx, req)
	require.NoError(t, err)
	second, err := svc.UpdateOrCreate(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 7, stored.LogID)
	assert.Equal(t, "30", stored.Duration)
	assert.Equal(t, "high", stored.Intensity)
	assert.EqualValues(t, 1, stored.ExerciseID)
}

func TestUpdateOrCreateDefaultsToEmptyStrings(t *testing.T) {
	svc, _ := newExerciseLogs(t)

	created, err := svc.UpdateOrCreate(context.Background(), &models.UpdateExerciseLogRequest{
		ID:          lo.ToPtr(uint(7)),
		ExerciseLog: &models.ExerciseLogPayload{ExerciseID: lo.ToPtr(uint(2))},
	})
	require.NoError(t, err)
	assert.Equal(t, "", created.Duration)
	assert.Equal(t, "", created.Intensity)
}

func TestUpdateOrCreatePartialEdit(t *testing.T) {
	ctx := context.Background()
	svc, repo := newExerciseLogs(t)

	created, err := svc.UpdateOrCreate(ctx, &models.UpdateExerciseLogRequest{
		ID: lo.ToPtr(uint(7)),
		ExerciseLog: &models.ExerciseLogPayload{
			Duration:   lo.ToPtr("30"),
			Intensity:  lo.ToPtr("high"),
			ExerciseID: lo.ToPtr(uint(1)),
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrCreate(ctx, &models.UpdateExerciseLogRequest{
		ExerciseLog: &models.ExerciseLogPayload{
			ID:       lo.ToPtr(created.ID),
			Duration: lo.ToPtr("45"),
		},
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "45", stored.Duration)
	assert.Equal(t, "high", stored.Intensity)
	assert.EqualValues(t, 1, stored.ExerciseID)
	assert.EqualValues(t, 7, stored.LogID)

	// present-but-empty values still replace
	_, err = svc.UpdateOrCreate(ctx, &models.UpdateExerciseLogRequest{
		ExerciseLog: &models.ExerciseLogPayload{
			ID:         lo.ToPtr(created.ID),
			Intensity:  lo.ToPtr(""),
			ExerciseID: lo.ToPtr(uint(3)),
		},
	})
	require.NoError(t, err)

	stored, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "45", stored.Duration)
	assert.Equal(t, "", stored.Intensity)
	assert.EqualValues(t, 3, stored.ExerciseID)
}

func TestUpdateOrCreateEditMissing(t *testing.T) {
	svc, _ := newExerciseLogs(t)

	_, err := svc.UpdateOrCreate(context.Background(), &models.UpdateExerciseLogRequest{
		ExerciseLog: &models.ExerciseLogPayload{ID: lo.ToPtr(uint(42)), Duration: lo.ToPtr("5")},
	})

	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.Equal(t, "exercise log 42 not found", apiErr.Message)
}

func TestUpdateOrCreateInvalid(t *testing.T) {
	svc := services.NewExerciseLogService(new(mocks.MockExerciseLogRepository))
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.UpdateExerciseLogRequest
	}{
		{name: "nil request", req: nil},
		{name: "missing exerciseLog", req: &models.UpdateExerciseLogRequest{ID: lo.ToPtr(uint(7))}},
		{
			name: "create without parent id",
			req: &models.UpdateExerciseLogRequest{
				ExerciseLog: &models.ExerciseLogPayload{ExerciseID: lo.ToPtr(uint(1))},
			},
		},
		{
			name: "create without exerciseId",
			req: &models.UpdateExerciseLogRequest{
				ID:          lo.ToPtr(uint(7)),
				ExerciseLog: &models.ExerciseLogPayload{Duration: lo.ToPtr("30")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateOrCreate(ctx, tt.req)
			requireAPIError(t, err, http.StatusBadRequest)
		})
	}
}

func TestUpdateOrCreateStorageFailure(t *testing.T) {
	repo := new(mocks.MockExerciseLogRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.ExerciseLog")).Return(errors.New("disk full"))
	svc := services.NewExerciseLogService(repo)

	_, err := svc.UpdateOrCreate(context.Background(), &models.UpdateExerciseLogRequest{
		ID:          lo.ToPtr(uint(7)),
		ExerciseLog: &models.ExerciseLogPayload{ExerciseID: lo.ToPtr(uint(1))},
	})

	requireAPIError(t, err, http.StatusInternalServerError)
	repo.AssertExpectations(t)
}

func TestDeleteRemovesEntry(t *testing.T) {
	ctx := context.Background()
	svc, repo := newExerciseLogs(t)

	created, err := svc.UpdateOrCreate(ctx, &models.UpdateExerciseLogRequest{
		ID:          lo.ToPtr(uint(7)),
		ExerciseLog: &models.ExerciseLogPayload{ExerciseID: lo.ToPtr(uint(1))},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound)
}

func TestDeleteRaceReportsNotFound(t *testing.T) {
	repo := new(mocks.MockExerciseLogRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(&models.ExerciseLog{ID: 5}, nil)
	repo.On("Delete", mock.Anything, uint(5)).Return(repository.ErrNotFound)
	svc := services.NewExerciseLogService(repo)

	err := svc.Delete(context.Background(), 5)

	requireAPIError(t, err, http.StatusNotFound)
	repo.AssertExpectations(t)
}

func TestListForLog(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewSQLiteDB(t)
	catalog := services.NewCatalogService(repository.NewExerciseRepository(db), nil)
	svc := services.NewExerciseLogService(repository.NewExerciseLogRepository(db))

	swim, err := catalog.CreateIfAbsent(ctx, "Swimming", "pool")
	require.NoError(t, err)

	_, err = svc.UpdateOrCreate(ctx, &models.UpdateExerciseLogRequest{
		ID: lo.ToPtr(uint(3)),
		ExerciseLog: &models.ExerciseLogPayload{
			Duration:   lo.ToPtr("20"),
			ExerciseID: lo.ToPtr(swim.Exercise.ID),
		},
	})
	require.NoError(t, err)

	entries, err := svc.ListForLog(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Swimming", entries[0].Name)
	assert.Equal(t, "pool", entries[0].Description)
	assert.Equal(t, "20", entries[0].Duration)
}
