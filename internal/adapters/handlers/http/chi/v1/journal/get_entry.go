package journal

import (
	"encoding/json"
	"errors"
	"file-intake/internal/core/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *HandlerV1) GetEntryV1(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := h.journalService.GetEntry(r.Context(), entryID)
	switch {
	case errors.Is(err, domain.ErrJournalEntryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting journal entry", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toV1(*entry)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
