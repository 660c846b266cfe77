package cleanup

import (
	"file-intake/internal/core/port"
	"log/slog"
	"time"
)

type cleanupService struct {
	repo      port.JournalRepository
	retention time.Duration
	logger    *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(repo port.JournalRepository, retention time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		repo:      repo,
		retention: retention,
		logger:    logger,
	}
}
