package intake

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/domain"
	"file-intake/internal/core/port"
	"file-intake/internal/core/validate"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "file-intake/internal/core/service/intake"

// Options is the configuration of the intake pipeline, resolved once at startup
type Options struct {
	// Location is the default destination of uploads
	Location destination.Spec
	// AllowList holds the accepted file extensions
	AllowList validate.AllowList
	// VolumesEnabled allows catalog.schema.volume destinations
	VolumesEnabled bool
}

type intakeService struct {
	storage   port.Storage
	resolver  *destination.Resolver
	publisher port.EventPublisher
	recorder  port.UploadRecorder
	opts      Options
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewIntakeService creates the upload intake pipeline. publisher and recorder may be nil.
func NewIntakeService(storage port.Storage, resolver *destination.Resolver, publisher port.EventPublisher, recorder port.UploadRecorder, opts Options, logger *slog.Logger) port.IntakeService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if opts.AllowList == nil {
		opts.AllowList = validate.NewAllowList(validate.DefaultExtensions...)
	}
	return &intakeService{
		storage:   storage,
		resolver:  resolver,
		publisher: publisher,
		recorder:  recorder,
		opts:      opts,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
}

// Location returns the default destination
func (s *intakeService) Location() destination.Spec {
	return s.opts.Location
}

// AllowedExtensions returns the allow-list in sorted order
func (s *intakeService) AllowedExtensions() []string {
	return s.opts.AllowList.Extensions()
}

// spec applies request overrides to the default location
func (s *intakeService) spec(destinationOverride, subfolderOverride string) (destination.Spec, error) {
	spec := s.opts.Location
	if d := strings.TrimSpace(destinationOverride); d != "" {
		spec.Volume = d
	}
	if sub := strings.TrimSpace(subfolderOverride); sub != "" {
		spec.Subfolder = sub
	}

	if spec.Structured() && !s.opts.VolumesEnabled {
		return destination.Spec{}, fmt.Errorf("%w: %w", domain.ErrInvalidDestinationFormat, domain.ErrVolumesDisabled)
	}
	return spec, nil
}

func (s *intakeService) validateFilename(filename string) (string, error) {
	if _, ok := validate.Extension(filename); !ok {
		return "", fmt.Errorf("%w: no file extension found", domain.ErrDisallowedType)
	}

	normalized, ok := validate.Validate(filename, s.opts.AllowList)
	if !ok {
		ext, _ := validate.Extension(filename)
		if s.opts.AllowList.Contains(ext) {
			return "", fmt.Errorf("%w: file name %q cannot be turned into a safe name", domain.ErrDisallowedType, filename)
		}
		return "", fmt.Errorf(
			"%w: extension %q is not allowed (expected one of: %s)",
			domain.ErrDisallowedType, strings.ToLower(ext), strings.Join(s.opts.AllowList.Extensions(), ", "),
		)
	}
	return normalized, nil
}

func (s *intakeService) newEvent(path, filename string, req domain.UploadRequest) domain.UploadEvent {
	sum := sha256.Sum256(req.Content)

	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(req.Content).String()
	}

	return domain.UploadEvent{
		Path:           path,
		Filename:       filename,
		SizeBytes:      int64(len(req.Content)),
		ContentType:    contentType,
		ChecksumSHA256: hex.EncodeToString(sum[:]),
		Backend:        s.storage.Name(),
	}
}

type noopPublisher struct{}

func (noopPublisher) PublishUpload(context.Context, domain.UploadEvent) error { return nil }

type noopRecorder struct{}

func (noopRecorder) RecordUpload(domain.UploadResult, string, float64) {}
