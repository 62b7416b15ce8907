package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"exerciselog/internal/models"
	"exerciselog/internal/services"
)

// Shared MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListAll(ctx context.Context) ([]models.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exercise), args.Error(1)
}

func (m *MockCatalogService) CreateIfAbsent(ctx context.Context, name, description string) (*services.CreateExerciseResult, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CreateExerciseResult), args.Error(1)
}

// Shared MockExerciseLogService
type MockExerciseLogService struct {
	mock.Mock
}

func (m *MockExerciseLogService) UpdateOrCreate(ctx context.Context, req *models.UpdateExerciseLogRequest) (*models.ExerciseLog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseLog), args.Error(1)
}

func (m *MockExerciseLogService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExerciseLogService) ListForLog(ctx context.Context, logID uint) ([]models.ExerciseLogEntry, error) {
	args := m.Called(ctx, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExerciseLogEntry), args.Error(1)
}

// Shared MockExerciseCache
type MockExerciseCache struct {
	mock.Mock
}

func (m *MockExerciseCache) GetExercises(ctx context.Context) ([]models.Exercise, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.Exercise), args.Bool(1), args.Error(2)
}

func (m *MockExerciseCache) SetExercises(ctx context.Context, exercises []models.Exercise) error {
	args := m.Called(ctx, exercises)
	return args.Error(0)
}

func (m *MockExerciseCache) InvalidateExercises(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ services.CatalogService     = (*MockCatalogService)(nil)
	_ services.ExerciseLogService = (*MockExerciseLogService)(nil)
	_ services.ExerciseCache      = (*MockExerciseCache)(nil)
)
