package upload

import (
	"encoding/json"
	"errors"
	"file-intake/internal/core/domain"
	"net/http"
)

type V1ResolveResponse struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// ResolveV1 previews where a filename would be written
func (h *HandlerV1) ResolveV1(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filename := query.Get("filename")
	if filename == "" {
		http.Error(w, "missing param", http.StatusBadRequest)
		return
	}

	path, err := h.intakeService.Resolve(filename, query.Get(FieldDestination), query.Get(FieldSubfolder))
	switch {
	case errors.Is(err, domain.ErrDisallowedType), errors.Is(err, domain.ErrInvalidDestinationFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error resolving path", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(V1ResolveResponse{Filename: filename, Path: path}); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
