package journal

import (
	"context"
	"encoding/json"
	"file-intake/internal/core/domain"
	"fmt"
)

func (j *journalService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.UploadEvent

	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: could not unmarshal: %v", domain.ErrInvalidUploadEvent, err)
	}

	j.logger.Info("handling event", "event_id", event.ID, "path", event.Path, "backend", event.Backend)

	return j.Record(ctx, event)
}
