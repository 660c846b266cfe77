package journal

import (
	"context"
	"file-intake/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockJournalService is a mock implementation of JournalService
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) Record(ctx context.Context, event domain.UploadEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockJournalService) ListRecent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntry(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
