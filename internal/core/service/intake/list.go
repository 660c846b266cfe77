package intake

import (
	"context"
	"file-intake/internal/core/domain"
	"fmt"
)

// List returns the files at the default location, or at the overridden one
func (s *intakeService) List(ctx context.Context, destinationOverride, subfolderOverride string) ([]domain.StoredFile, error) {
	spec, err := s.spec(destinationOverride, subfolderOverride)
	if err != nil {
		return nil, err
	}

	dir, err := s.resolver.Dir(spec)
	if err != nil {
		return nil, err
	}

	files, err := s.storage.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	if files == nil {
		files = []domain.StoredFile{}
	}
	return files, nil
}
