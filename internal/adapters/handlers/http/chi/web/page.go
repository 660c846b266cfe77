package web

import (
	"bytes"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/domain"
	"net/http"
	"path"
)

const (
	categorySuccess = "success"
	categoryError   = "error"
)

type flash struct {
	Category string
	Message  string
}

type pageData struct {
	Flash             *flash
	Location          string
	VolumesEnabled    bool
	AllowedExtensions []string
	Files             []domain.StoredFile
	ListError         string
	Stats             *domain.UploadStats
}

// Page renders the upload form, the current listing and the upload counters
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Location:          describe(h.intakeService.Location()),
		VolumesEnabled:    h.volumesEnabled,
		AllowedExtensions: h.intakeService.AllowedExtensions(),
	}

	query := r.URL.Query()
	if message := query.Get("message"); message != "" {
		category := categoryError
		if query.Get("status") == categorySuccess {
			category = categorySuccess
		}
		data.Flash = &flash{Category: category, Message: message}
	}

	files, err := h.intakeService.List(r.Context(), "", "")
	if err != nil {
		h.logger.Error("error listing files", "error", err)
		data.ListError = err.Error()
	}
	data.Files = files

	if h.stats != nil {
		stats := h.stats.UploadStats()
		data.Stats = &stats
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("error rendering page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("error writing page", "error", err)
	}
}

// describe renders a destination the way operators write it
func describe(spec destination.Spec) string {
	base := spec.Root
	if spec.Structured() {
		base = spec.Volume
	}
	if spec.Subfolder != "" {
		return path.Join(base, spec.Subfolder)
	}
	return base
}
