package port

import (
	"context"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/domain"
)

// IntakeService is the upload intake pipeline
type IntakeService interface {
	Submit(ctx context.Context, req domain.UploadRequest) domain.UploadResult
	List(ctx context.Context, destinationOverride, subfolderOverride string) ([]domain.StoredFile, error)
	Resolve(filename, destinationOverride, subfolderOverride string) (string, error)
	Location() destination.Spec
	AllowedExtensions() []string
}

// UploadRecorder records upload outcomes (metrics)
type UploadRecorder interface {
	RecordUpload(result domain.UploadResult, backend string, duration float64)
}

// UploadStatsProvider exposes the running upload counters for display
type UploadStatsProvider interface {
	UploadStats() domain.UploadStats
}
