package storage

import (
	"context"
	"file-intake/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Name() string {
	return "mock"
}

func (m *MockStorage) Write(ctx context.Context, path string, content []byte, overwrite bool) error {
	args := m.Called(ctx, path, content, overwrite)
	return args.Error(0)
}

func (m *MockStorage) List(ctx context.Context, dir string) ([]domain.StoredFile, error) {
	args := m.Called(ctx, dir)
	return args.Get(0).([]domain.StoredFile), args.Error(1)
}
