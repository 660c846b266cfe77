package s3

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

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
)

// Adapter writes uploads to an S3 compatible bucket. Paths are used as keys without the leading slash.
type Adapter struct {
	client *s3.Client
	bucket string
	logger *slog.Logger
}

// NewAdapter builds the S3 client and creates the bucket when missing. Static credentials are used when both keys are set,
// otherwise the default AWS credential chain applies.
func NewAdapter(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*Adapter, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	adapter := &Adapter{client: client, bucket: cfg.Bucket, logger: logger}
	if err := adapter.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return adapter, nil
}

func (a *Adapter) ensureBucket(ctx context.Context) error {
	_, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(a.bucket)})
	if err == nil {
		return nil
	}
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if _, err := a.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(a.bucket)}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	a.logger.Info("bucket created", slog.String("bucket", a.bucket))
	return nil
}

// Name returns the backend name
func (a *Adapter) Name() string {
	return "s3"
}

// Write uploads content to the key addressed by p
func (a *Adapter) Write(ctx context.Context, p string, content []byte, overwrite bool) error {
	key := objectKey(p)

	if !overwrite {
		_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(a.bucket),
			Key:    aws.String(key),
		})
		if err == nil {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, p)
		}
		var notFound *types.NotFound
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to head object: %w", err)
		}
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(mimetype.Detect(content).String()),
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Debug("object written",
		slog.String("key", key),
		slog.String("bucket", a.bucket),
		slog.Int("bytes", len(content)))

	return nil
}

// List lists the keys directly under dir
func (a *Adapter) List(ctx context.Context, dir string) ([]domain.StoredFile, error) {
	prefix := objectKey(dir)
	if prefix != "" {
		prefix += "/"
	}

	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(a.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	files := make([]domain.StoredFile, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			name := path.Base(key)
			files = append(files, domain.StoredFile{
				Name:        name,
				SizeBytes:   aws.ToInt64(object.Size),
				ContentType: contentTypeOf(name),
				ModifiedAt:  aws.ToTime(object.LastModified),
			})
		}
	}
	return files, nil
}

// Ping checks that the bucket is reachable
func (a *Adapter) Ping(ctx context.Context) error {
	_, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(a.bucket)})
	if err != nil {
		return fmt.Errorf("failed to head bucket: %w", err)
	}
	return nil
}

func objectKey(p string) string {
	return strings.Trim(path.Clean("/"+p), "/")
}

func contentTypeOf(name string) string {
	if byExt := mime.TypeByExtension(path.Ext(name)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
