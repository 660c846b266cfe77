package journal

import (
	"file-intake/internal/core/port"
	"log/slog"
	"time"
)

const (
	// DefaultListLimit is used when the caller passes a non-positive limit
	DefaultListLimit = 50
	// MaxListLimit caps a single listing
	MaxListLimit = 500
)

type journalService struct {
	repo   port.JournalRepository
	logger *slog.Logger
	now    func() time.Time
}

// Service records upload events and consumes them from the broker
type Service interface {
	port.JournalService
	port.MessageService
}

// NewJournalService creates a new journal service
func NewJournalService(repo port.JournalRepository, logger *slog.Logger) Service {
	return &journalService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
