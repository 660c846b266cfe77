package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends
const (
	BackendLocal = "local"
	BackendMinio = "minio"
	BackendS3    = "s3"
)

type Config struct {
	Env       Env
	Server    ServerConfig
	Storage   StorageConfig
	Minio     MinioConfig
	S3        S3Config
	NATS      NATSConfig
	Database  DatabaseConfig
	Journal   JournalConfig
	Telemetry TelemetryConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type StorageConfig struct {
	Backend           string   `envconfig:"STORAGE_BACKEND" default:"local"`
	Root              string   `envconfig:"STORAGE_ROOT" default:"/tmp/file-intake"`
	LocalJail         string   `envconfig:"STORAGE_LOCAL_JAIL"`
	NamespaceRoot     string   `envconfig:"STORAGE_NAMESPACE_ROOT" default:"/Volumes"`
	Volume            string   `envconfig:"STORAGE_VOLUME"`
	Subfolder         string   `envconfig:"STORAGE_SUBFOLDER"`
	VolumesEnabled    bool     `envconfig:"STORAGE_VOLUMES_ENABLED" default:"true"`
	AllowedExtensions []string `envconfig:"STORAGE_ALLOWED_EXTENSIONS" default:"txt,pdf,png,jpg,jpeg,gif,csv,xlsx,doc,docx"`
	MaxUploadSize     int64    `envconfig:"STORAGE_MAX_UPLOAD_SIZE" default:"104857600"` // 100MB
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type S3Config struct {
	Bucket       string `envconfig:"S3_BUCKET"`
	Region       string `envconfig:"S3_REGION" default:"us-east-1"`
	Endpoint     string `envconfig:"S3_ENDPOINT"`
	AccessKeyID  string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretKey    string `envconfig:"S3_SECRET_KEY"`
	UsePathStyle bool   `envconfig:"S3_USE_PATH_STYLE" default:"true"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"INTAKE"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"intake.upload.completed"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"intake-journal"`
}

// Enabled reports whether event publishing is configured
func (n NATSConfig) Enabled() bool {
	return strings.TrimSpace(n.URL) != ""
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER"`
	Password       string        `envconfig:"DB_PASSWORD"`
	Name           string        `envconfig:"DB_NAME"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// Enabled reports whether the upload journal database is configured
func (d DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(d.Host) != ""
}

// DSN builds the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

type JournalConfig struct {
	Retention    time.Duration `envconfig:"JOURNAL_RETENTION" default:"720h"`
	CleanupEvery time.Duration `envconfig:"JOURNAL_CLEANUP_EVERY" default:"1h"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"file-intake"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the selected storage backend has what it needs
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendLocal:
		if strings.TrimSpace(c.Storage.Root) == "" && c.Storage.Volume == "" {
			return errors.New("STORAGE_ROOT or STORAGE_VOLUME is required")
		}
	case BackendMinio:
		var missing []string
		if c.Minio.Endpoint == "" {
			missing = append(missing, "MINIO_ENDPOINT")
		}
		if c.Minio.BucketName == "" {
			missing = append(missing, "MINIO_BUCKET_NAME")
		}
		if c.Minio.AccessKey == "" {
			missing = append(missing, "MINIO_ACCESS_KEY")
		}
		if c.Minio.SecretKey == "" {
			missing = append(missing, "MINIO_SECRET_KEY")
		}
		if len(missing) > 0 {
			return fmt.Errorf("minio backend requires %s", strings.Join(missing, ", "))
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			return errors.New("s3 backend requires S3_BUCKET")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Storage.Volume != "" && !c.Storage.VolumesEnabled {
		return errors.New("STORAGE_VOLUME is set but STORAGE_VOLUMES_ENABLED is false")
	}
	if c.Journal.CleanupEvery <= 0 {
		return errors.New("JOURNAL_CLEANUP_EVERY must be positive")
	}
	if c.Storage.MaxUploadSize <= 0 {
		return errors.New("STORAGE_MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}
