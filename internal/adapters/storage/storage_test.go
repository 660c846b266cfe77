package storage_test

import (
	"context"
	"file-intake/internal/adapters/storage"
	"file-intake/internal/config"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("local", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Backend: config.BackendLocal, LocalJail: t.TempDir()}}

		s, err := storage.NewFromConfig(context.Background(), cfg, logger)

		require.NoError(t, err)
		assert.Equal(t, "local", s.Name())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Backend: "ftp"}}

		_, err := storage.NewFromConfig(context.Background(), cfg, logger)

		require.Error(t, err)
	})
}
