package domain

import "errors"

// UploadRequest is a single file submitted by a client
type UploadRequest struct {
	Filename    string
	Content     []byte
	ContentType string
	// Destination overrides the configured destination when set.
	Destination string
	// Subfolder overrides the configured subfolder when set.
	Subfolder string
}

// FailureKind is the category of a failed upload
type FailureKind string

const (
	FailureNoFileSelected           FailureKind = "no_file_selected"
	FailureDisallowedType           FailureKind = "disallowed_type"
	FailureInvalidDestinationFormat FailureKind = "invalid_destination_format"
	FailureStorageError             FailureKind = "storage_error"
)

// Category returns the human-readable message category
func (k FailureKind) Category() string {
	switch k {
	case FailureNoFileSelected:
		return "No file selected"
	case FailureDisallowedType:
		return "Invalid file type"
	case FailureInvalidDestinationFormat:
		return "Invalid destination"
	case FailureStorageError:
		return "Storage error"
	default:
		return "Upload failed"
	}
}

// Rejected reports whether the failure is caused by the input rather than the storage medium
func (k FailureKind) Rejected() bool {
	return k != FailureStorageError
}

// UploadSuccess is the payload of a succeeded upload
type UploadSuccess struct {
	Path  string
	Bytes int64
}

// UploadFailure is the payload of a failed upload
type UploadFailure struct {
	Kind    FailureKind
	Message string
}

// UploadResult is the outcome of one pass through the intake pipeline.
// Exactly one of Success and Failure is set.
type UploadResult struct {
	Success *UploadSuccess
	Failure *UploadFailure
}

// Succeeded reports whether the upload was written
func (r UploadResult) Succeeded() bool {
	return r.Success != nil
}

// Succeed builds a success result
func Succeed(path string, n int64) UploadResult {
	return UploadResult{Success: &UploadSuccess{Path: path, Bytes: n}}
}

// Fail builds a failure result
func Fail(kind FailureKind, message string) UploadResult {
	return UploadResult{Failure: &UploadFailure{Kind: kind, Message: message}}
}

// Message renders the result for display
func (r UploadResult) Message() string {
	if r.Success != nil {
		return "File uploaded successfully to " + r.Success.Path
	}
	if r.Failure == nil {
		return ""
	}
	if r.Failure.Message == "" {
		return r.Failure.Kind.Category()
	}
	return r.Failure.Kind.Category() + ": " + r.Failure.Message
}

// FailureKindOf maps a pipeline error onto its failure kind.
// Errors that are not input rejections are storage errors.
func FailureKindOf(err error) FailureKind {
	switch {
	case errors.Is(err, ErrNoFileSelected):
		return FailureNoFileSelected
	case errors.Is(err, ErrDisallowedType):
		return FailureDisallowedType
	case errors.Is(err, ErrInvalidDestinationFormat), errors.Is(err, ErrVolumesDisabled):
		return FailureInvalidDestinationFormat
	default:
		return FailureStorageError
	}
}

// UploadStats counts pipeline outcomes since process start
type UploadStats struct {
	Succeeded int64
	Failed    int64
	Bytes     int64
	ByKind    map[FailureKind]int64
}

// Total is the number of submissions seen
func (s UploadStats) Total() int64 {
	return s.Succeeded + s.Failed
}
