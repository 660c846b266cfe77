package upload

import (
	"encoding/json"
	"errors"
	"file-intake/internal/core/domain"
	"net/http"
)

// V1UploadFileResponse is the outcome of an upload
type V1UploadFileResponse struct {
	Status  string `json:"status"`
	Path    string `json:"path,omitempty"`
	Bytes   int64  `json:"bytes,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	req, err := ReadUploadRequest(r)
	switch {
	case errors.Is(err, ErrRequestTooLarge):
		h.logger.Warn("upload too large", "error", err)
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	case err != nil:
		h.logger.Error("error reading upload form", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.intakeService.Submit(r.Context(), req)

	status, resp := uploadResponse(result)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func uploadResponse(result domain.UploadResult) (int, V1UploadFileResponse) {
	if result.Succeeded() {
		return http.StatusCreated, V1UploadFileResponse{
			Status:  StatusSucceeded,
			Path:    result.Success.Path,
			Bytes:   result.Success.Bytes,
			Message: result.Message(),
		}
	}

	status := http.StatusBadRequest
	if !result.Failure.Kind.Rejected() {
		status = http.StatusBadGateway
	}
	return status, V1UploadFileResponse{
		Status:  StatusFailed,
		Kind:    string(result.Failure.Kind),
		Message: result.Message(),
	}
}
