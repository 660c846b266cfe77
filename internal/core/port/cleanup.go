package port

import (
	"context"
	"time"
)

// CleanupService prunes journal entries past their retention
type CleanupService interface {
	CleanupExpiredEntries(ctx context.Context, now time.Time) (int64, error)
}
