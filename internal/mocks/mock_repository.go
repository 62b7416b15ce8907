package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"exerciselog/internal/models"
	"exerciselog/internal/repository"
)

// Shared MockExerciseRepository
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) FindAll(ctx context.Context) ([]models.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) FindByNameAndDescription(ctx context.Context, name, description string) (*models.Exercise, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockExerciseLogRepository
type MockExerciseLogRepository struct {
	mock.Mock
}

func (m *MockExerciseLogRepository) Create(ctx context.Context, log *models.ExerciseLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockExerciseLogRepository) FindByID(ctx context.Context, id uint) (*models.ExerciseLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExerciseLog), args.Error(1)
}

func (m *MockExerciseLogRepository) Update(ctx context.Context, log *models.ExerciseLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockExerciseLogRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExerciseLogRepository) FindEntriesByLogID(ctx context.Context, logID uint) ([]models.ExerciseLogEntry, error) {
	args := m.Called(ctx, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExerciseLogEntry), args.Error(1)
}

func (m *MockExerciseLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ repository.ExerciseRepository    = (*MockExerciseRepository)(nil)
	_ repository.ExerciseLogRepository = (*MockExerciseLogRepository)(nil)
)
