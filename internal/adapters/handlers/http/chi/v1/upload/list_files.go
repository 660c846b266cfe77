package upload

import (
	"encoding/json"
	"errors"
	"file-intake/internal/core/domain"
	"net/http"
	"time"
)

type V1File struct {
	Name        string    `json:"name"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type,omitempty"`
	ModifiedAt  time.Time `json:"modified_at"`
}

type V1ListFilesResponse struct {
	Files []V1File `json:"files"`
	Count int      `json:"count"`
}

func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	files, err := h.intakeService.List(r.Context(), query.Get(FieldDestination), query.Get(FieldSubfolder))
	switch {
	case errors.Is(err, domain.ErrInvalidDestinationFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrStorage):
		h.logger.Error("error listing files", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	case err != nil:
		h.logger.Error("error listing files", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		resp := V1ListFilesResponse{
			Files: make([]V1File, 0, len(files)),
			Count: len(files),
		}
		for _, f := range files {
			resp.Files = append(resp.Files, V1File{
				Name:        f.Name,
				SizeBytes:   f.SizeBytes,
				ContentType: f.ContentType,
				ModifiedAt:  f.ModifiedAt,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
