package port

import (
	"context"
	"file-intake/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// JournalRepository stores upload journal entries
type JournalRepository interface {
	Create(ctx context.Context, entry domain.JournalEntry) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// JournalService records and lists upload events
type JournalService interface {
	Record(ctx context.Context, event domain.UploadEvent) error
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}
