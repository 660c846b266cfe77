package upload

import (
	"file-intake/internal/core/port"
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 files routes
type HandlerV1 struct {
	intakeService port.IntakeService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.IntakeService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		intakeService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadFileV1)
	router.Get("/", h.ListFilesV1)
	router.Get("/resolve", h.ResolveV1)

	return router
}
