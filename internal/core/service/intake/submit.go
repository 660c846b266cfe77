package intake

import (
	"context"
	"file-intake/internal/core/domain"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Submit runs one upload through validation, destination resolution and a single write.
// Every outcome, including storage failures, is returned as an UploadResult.
func (s *intakeService) Submit(ctx context.Context, req domain.UploadRequest) domain.UploadResult {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "intake.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("upload.filename", req.Filename),
		attribute.Int("upload.bytes", len(req.Content)),
		attribute.String("storage.backend", s.storage.Name()),
	)

	result := s.submit(ctx, req)

	s.recorder.RecordUpload(result, s.storage.Name(), time.Since(start).Seconds())

	if result.Succeeded() {
		span.SetAttributes(attribute.String("upload.path", result.Success.Path))
		s.logger.Info("upload succeeded", "path", result.Success.Path, "bytes", result.Success.Bytes)
		return result
	}

	span.SetAttributes(attribute.String("upload.failure", string(result.Failure.Kind)))
	if result.Failure.Kind.Rejected() {
		s.logger.Warn("upload rejected", "filename", req.Filename, "kind", result.Failure.Kind, "reason", result.Failure.Message)
	} else {
		span.SetStatus(codes.Error, result.Failure.Message)
		s.logger.Error("upload failed", "filename", req.Filename, "error", result.Failure.Message)
	}
	return result
}

func (s *intakeService) submit(ctx context.Context, req domain.UploadRequest) domain.UploadResult {
	if strings.TrimSpace(req.Filename) == "" || len(req.Content) == 0 {
		return fail(domain.ErrNoFileSelected)
	}

	normalized, err := s.validateFilename(req.Filename)
	if err != nil {
		return fail(err)
	}

	spec, err := s.spec(req.Destination, req.Subfolder)
	if err != nil {
		return fail(err)
	}

	path, err := s.resolver.Resolve(spec, normalized)
	if err != nil {
		return fail(err)
	}

	// overwrite: last write wins
	if err := s.storage.Write(ctx, path, req.Content, true); err != nil {
		return fail(err)
	}

	event := s.newEvent(path, normalized, req)
	event.ID = uuid.New()
	event.OccurredAt = time.Now().UTC()
	if err := s.publisher.PublishUpload(ctx, event); err != nil {
		s.logger.Warn("failed to publish upload event", "path", path, "error", err)
	}

	return domain.Succeed(path, int64(len(req.Content)))
}

// fail keeps the error text verbatim; anything that is not an input rejection is a storage error
func fail(err error) domain.UploadResult {
	return domain.Fail(domain.FailureKindOf(err), err.Error())
}
