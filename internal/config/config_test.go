package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend:        BackendLocal,
			Root:           "/data",
			VolumesEnabled: true,
			MaxUploadSize:  1024,
		},
		Journal: JournalConfig{
			Retention:    time.Hour,
			CleanupEvery: time.Minute,
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Arrange
	for _, key := range []string{"STORAGE_BACKEND", "STORAGE_ROOT", "STORAGE_VOLUME", "NATS_URL", "DB_HOST"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	// Act
	cfg, err := Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, BackendLocal, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/file-intake", cfg.Storage.Root)
	assert.Equal(t, "/Volumes", cfg.Storage.NamespaceRoot)
	assert.True(t, cfg.Storage.VolumesEnabled)
	assert.Contains(t, cfg.Storage.AllowedExtensions, "pdf")
	assert.Equal(t, 720*time.Hour, cfg.Journal.Retention)
	assert.False(t, cfg.NATS.Enabled())
	assert.False(t, cfg.Database.Enabled())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("local backend is valid", func(t *testing.T) {
		cfg := validConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Backend = "ftp"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ftp"`)
	})

	t.Run("minio lists missing vars", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Backend = BackendMinio
		cfg.Minio.Endpoint = "localhost:9000"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MINIO_BUCKET_NAME, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	})

	t.Run("s3 requires bucket", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Backend = BackendS3

		assert.Error(t, cfg.Validate())

		cfg.S3.Bucket = "uploads"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("volume without capability", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Volume = "main.default.uploads"
		cfg.Storage.VolumesEnabled = false

		assert.Error(t, cfg.Validate())
	})

	t.Run("non positive cleanup interval", func(t *testing.T) {
		cfg := validConfig()
		cfg.Journal.CleanupEvery = 0

		assert.Error(t, cfg.Validate())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "intake", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=intake sslmode=disable", d.DSN())
	assert.True(t, d.Enabled())
}
