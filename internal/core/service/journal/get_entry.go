package journal

import (
	"context"
	"file-intake/internal/core/domain"

	"github.com/google/uuid"
)

func (j *journalService) GetEntry(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	return j.repo.FindByID(ctx, id)
}
