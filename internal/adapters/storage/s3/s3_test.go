package s3_test

import (
	"context"
	"file-intake/internal/adapters/storage/s3"
	"file-intake/internal/config"
	"file-intake/internal/core/domain"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return fmt.Sprintf("http://%s:%s", host, port.Port()), cleanup
}

func TestAdapter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()

	adapter, err := s3.NewAdapter(ctx, config.S3Config{
		Bucket:       "intake",
		Region:       "us-east-1",
		Endpoint:     endpoint,
		AccessKeyID:  "minioadmin",
		SecretKey:    "minioadmin",
		UsePathStyle: true,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, adapter.Ping(ctx))
	})

	t.Run("write then list", func(t *testing.T) {
		// Arrange
		content := []byte("%PDF-1.4 fake report")

		// Act
		err := adapter.Write(ctx, "/Volumes/a/b/c/sub/report.pdf", content, true)

		// Assert
		require.NoError(t, err)
		files, err := adapter.List(ctx, "/Volumes/a/b/c/sub")
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "report.pdf", files[0].Name)
		assert.Equal(t, int64(len(content)), files[0].SizeBytes)
		assert.Equal(t, "application/pdf", files[0].ContentType)
	})

	t.Run("no overwrite on existing key", func(t *testing.T) {
		require.NoError(t, adapter.Write(ctx, "/keep/once.txt", []byte("v1"), true))

		err := adapter.Write(ctx, "/keep/once.txt", []byte("v2"), false)

		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("list empty prefix", func(t *testing.T) {
		files, err := adapter.List(ctx, "/nothing")

		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
