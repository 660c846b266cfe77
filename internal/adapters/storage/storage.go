package storage

import (
	"context"
	"file-intake/internal/adapters/storage/local"
	"file-intake/internal/adapters/storage/minio"
	"file-intake/internal/adapters/storage/s3"
	"file-intake/internal/config"
	"file-intake/internal/core/port"
	"fmt"
	"log/slog"
)

// NewFromConfig builds the storage writer selected by STORAGE_BACKEND
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.Storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendLocal:
		return local.NewAdapter(cfg.Storage.LocalJail, logger), nil
	case config.BackendMinio:
		return minio.NewAdapter(ctx, cfg.Minio, logger)
	case config.BackendS3:
		return s3.NewAdapter(ctx, cfg.S3, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
