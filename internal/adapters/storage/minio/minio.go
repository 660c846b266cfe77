package minio

import (
	"bytes"
	"context"
	"errors"
	"file-intake/internal/config"
	"file-intake/internal/core/domain"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio. Paths are used as object keys without the leading slash.
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter. The bucket is created when missing.
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Name returns the backend name
func (a *Adapter) Name() string {
	return "minio"
}

// Write uploads content to the object addressed by p
func (a *Adapter) Write(ctx context.Context, p string, content []byte, overwrite bool) error {
	key := objectKey(p)

	if !overwrite {
		_, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
		if err == nil {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, p)
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return fmt.Errorf("failed to get object info: %w", err)
		}
	}

	info, err := a.client.PutObject(ctx, a.config.BucketName, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: mimetype.Detect(content).String(),
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	if info.Size != int64(len(content)) {
		return fmt.Errorf("failed to put object: %d of %d bytes accepted", info.Size, len(content))
	}

	a.logger.Debug("object written",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName),
		slog.Int64("bytes", info.Size))

	return nil
}

// List lists the objects directly under dir
func (a *Adapter) List(ctx context.Context, dir string) ([]domain.StoredFile, error) {
	prefix := objectKey(dir)
	if prefix != "" {
		prefix += "/"
	}

	files := make([]domain.StoredFile, 0)
	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		if strings.HasSuffix(object.Key, "/") {
			continue
		}

		name := path.Base(object.Key)
		files = append(files, domain.StoredFile{
			Name:        name,
			SizeBytes:   object.Size,
			ContentType: contentTypeOf(object.ContentType, name),
			ModifiedAt:  object.LastModified,
		})
	}
	return files, nil
}

// Ping checks that the bucket is reachable
func (a *Adapter) Ping(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.config.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		return errors.New("bucket does not exist")
	}
	return nil
}

func objectKey(p string) string {
	return strings.Trim(path.Clean("/"+p), "/")
}

func contentTypeOf(reported, name string) string {
	if reported != "" {
		return reported
	}
	if byExt := mime.TypeByExtension(path.Ext(name)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
