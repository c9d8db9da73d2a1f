package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/commit-template/internal/models"
)

type (
	MockVersionControl struct {
		mock.Mock
	}

	MockPrompter struct {
		mock.Mock
	}
)

func (m *MockVersionControl) IsRepository(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockVersionControl) GetCurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockVersionControl) GetFileStatuses(ctx context.Context) ([]models.FileStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FileStatus), args.Error(1)
}

func (m *MockVersionControl) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockPrompter) Ask(ctx context.Context, questions []models.Question) (models.Answers, error) {
	args := m.Called(ctx, questions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Answers), args.Error(1)
}
