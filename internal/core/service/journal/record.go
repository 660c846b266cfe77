package journal

import (
	"context"
	"file-intake/internal/core/domain"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func (j *journalService) Record(ctx context.Context, event domain.UploadEvent) error {
	if event.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidUploadEvent)
	}
	if strings.TrimSpace(event.Path) == "" {
		return fmt.Errorf("%w: missing path", domain.ErrInvalidUploadEvent)
	}

	entry := domain.JournalEntry{
		ID:             event.ID,
		Path:           event.Path,
		Filename:       event.Filename,
		SizeBytes:      event.SizeBytes,
		ContentType:    event.ContentType,
		ChecksumSHA256: event.ChecksumSHA256,
		Backend:        event.Backend,
		OccurredAt:     event.OccurredAt,
		RecordedAt:     j.now(),
	}

	created, err := j.repo.Create(ctx, entry)
	if err != nil {
		return err
	}
	if !created {
		// redelivered message, already journaled
		j.logger.Debug("journal entry already recorded", "event_id", event.ID)
		return nil
	}

	j.logger.Info("upload journaled", "event_id", event.ID, "path", event.Path, "bytes", event.SizeBytes)
	return nil
}
