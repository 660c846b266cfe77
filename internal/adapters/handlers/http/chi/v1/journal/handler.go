package journal

import (
	"file-intake/internal/core/port"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 journal routes
type HandlerV1 struct {
	journalService port.JournalService
	logger         *slog.Logger
}

// NewJournalHandlerV1 creates HandlerV1
func NewJournalHandlerV1(service port.JournalService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		journalService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListEntriesV1)
	router.Get("/{entryID}", h.GetEntryV1)

	return router
}
