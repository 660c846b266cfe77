package minio_test

import (
	"context"
	"file-intake/internal/adapters/storage/minio"
	"file-intake/internal/config"
	"file-intake/internal/core/domain"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-bucket"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, endpoint string, ctx context.Context) *minio.Adapter {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
		UseSSL:     false,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := minio.NewAdapter(ctx, cfg, discardLogger)

	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

func TestAdapter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, adapter.Ping(ctx))
	})

	t.Run("write then list", func(t *testing.T) {
		// Arrange
		content := "Hello, MinIO!"

		// Act
		err := adapter.Write(ctx, "/Volumes/main/default/drop/hello.txt", []byte(content), true)

		// Assert
		require.NoError(t, err)
		files, err := adapter.List(ctx, "/Volumes/main/default/drop")
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "hello.txt", files[0].Name)
		assert.Equal(t, int64(len(content)), files[0].SizeBytes)
	})

	t.Run("overwrite replaces object", func(t *testing.T) {
		// Arrange
		require.NoError(t, adapter.Write(ctx, "/data/report.pdf", []byte(strings.Repeat("a", 64)), true))

		// Act
		err := adapter.Write(ctx, "/data/report.pdf", []byte("short"), true)

		// Assert
		require.NoError(t, err)
		files, err := adapter.List(ctx, "/data")
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, int64(5), files[0].SizeBytes)
	})

	t.Run("no overwrite on existing object", func(t *testing.T) {
		require.NoError(t, adapter.Write(ctx, "/keep/once.txt", []byte("v1"), true))

		err := adapter.Write(ctx, "/keep/once.txt", []byte("v2"), false)

		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("list skips nested prefixes", func(t *testing.T) {
		require.NoError(t, adapter.Write(ctx, "/tree/top.txt", []byte("top"), true))
		require.NoError(t, adapter.Write(ctx, "/tree/nested/deep.txt", []byte("deep"), true))

		files, err := adapter.List(ctx, "/tree")

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "top.txt", files[0].Name)
		assert.Contains(t, files[0].ContentType, "text/plain")
	})

	t.Run("list empty prefix", func(t *testing.T) {
		files, err := adapter.List(ctx, "/nothing/here")

		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
