package cleanup

import (
	"context"
	"time"
)

// CleanupExpiredEntries deletes journal entries older than the retention window
func (c *cleanupService) CleanupExpiredEntries(ctx context.Context, now time.Time) (int64, error) {
	if c.retention <= 0 {
		return 0, nil
	}

	cutoff := now.Add(-c.retention)
	deleted, err := c.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	c.logger.Info("expired journal entries removed", "deleted", deleted, "cutoff", cutoff)
	return deleted, nil
}
