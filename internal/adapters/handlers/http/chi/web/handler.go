// Package web serves the browser upload page.
package web

import (
	_ "embed"
	"file-intake/internal/core/port"
	"html/template"
	"log/slog"
	"strings"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(pageHTML))

// Handler renders the upload page and accepts form uploads
type Handler struct {
	intakeService  port.IntakeService
	stats          port.UploadStatsProvider
	volumesEnabled bool
	logger         *slog.Logger
}

// NewHandler creates Handler. stats may be nil.
func NewHandler(service port.IntakeService, stats port.UploadStatsProvider, volumesEnabled bool, logger *slog.Logger) *Handler {
	return &Handler{
		intakeService:  service,
		stats:          stats,
		volumesEnabled: volumesEnabled,
		logger:         logger,
	}
}
