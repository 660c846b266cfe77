package upload

import (
	"errors"
	"file-intake/internal/core/domain"
	"io"
	"net/http"
	"strings"
)

const (
	// FieldFile is the multipart field carrying the file
	FieldFile = "file"
	// FieldDestination optionally overrides the catalog.schema.volume destination
	FieldDestination = "destination"
	// FieldSubfolder optionally overrides the subfolder
	FieldSubfolder = "subfolder"

	maxMemory = 32 << 20
)

// ErrRequestTooLarge is returned when the body exceeds the configured limit
var ErrRequestTooLarge = errors.New("request body too large")

// ReadUploadRequest reads a multipart upload form into an UploadRequest.
// A missing file part yields a request with no filename, which the pipeline rejects as NoFileSelected.
func ReadUploadRequest(r *http.Request) (domain.UploadRequest, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if tooLarge(err) {
			return domain.UploadRequest{}, ErrRequestTooLarge
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			return domain.UploadRequest{}, err
		}
	}

	req := domain.UploadRequest{
		Destination: r.FormValue(FieldDestination),
		Subfolder:   r.FormValue(FieldSubfolder),
	}

	file, header, err := r.FormFile(FieldFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return req, nil
		}
		return domain.UploadRequest{}, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		if tooLarge(err) {
			return domain.UploadRequest{}, ErrRequestTooLarge
		}
		return domain.UploadRequest{}, err
	}

	req.Filename = header.Filename
	req.Content = content
	req.ContentType = header.Header.Get("Content-Type")
	return req, nil
}

// tooLarge also matches the message since mime/multipart does not always wrap the reader error
func tooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large")
}
