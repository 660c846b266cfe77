package journal

import (
	"encoding/json"
	"file-intake/internal/core/domain"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type V1JournalEntry struct {
	ID             uuid.UUID `json:"id"`
	Path           string    `json:"path"`
	Filename       string    `json:"filename"`
	SizeBytes      int64     `json:"size_bytes"`
	ContentType    string    `json:"content_type"`
	ChecksumSHA256 string    `json:"checksum_sha256"`
	Backend        string    `json:"backend"`
	OccurredAt     time.Time `json:"occurred_at"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type V1ListEntriesResponse struct {
	Entries []V1JournalEntry `json:"entries"`
}

func toV1(e domain.JournalEntry) V1JournalEntry {
	return V1JournalEntry{
		ID:             e.ID,
		Path:           e.Path,
		Filename:       e.Filename,
		SizeBytes:      e.SizeBytes,
		ContentType:    e.ContentType,
		ChecksumSHA256: e.ChecksumSHA256,
		Backend:        e.Backend,
		OccurredAt:     e.OccurredAt,
		RecordedAt:     e.RecordedAt,
	}
}

func (h *HandlerV1) ListEntriesV1(w http.ResponseWriter, r *http.Request) {
	var limitInt int
	if limit := r.URL.Query().Get("limit"); limit != "" {
		var err error
		limitInt, err = strconv.Atoi(limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if limitInt <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return
		}
	}

	entries, err := h.journalService.ListRecent(r.Context(), limitInt)
	switch {
	case err != nil:
		h.logger.Error("error listing journal", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1ListEntriesResponse{Entries: make([]V1JournalEntry, 0, len(entries))}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, toV1(e))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
