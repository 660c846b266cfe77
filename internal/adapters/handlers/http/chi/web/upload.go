package web

import (
	"errors"
	"file-intake/internal/adapters/handlers/http/chi/v1/upload"
	"net/http"
	"net/url"
)

// Upload runs a form upload through the pipeline and redirects back to the page
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	req, err := upload.ReadUploadRequest(r)
	if err != nil {
		h.logger.Warn("error reading upload form", "error", err)
		message := "Could not read upload: " + err.Error()
		if errors.Is(err, upload.ErrRequestTooLarge) {
			message = "File is too large"
		}
		redirect(w, r, categoryError, message)
		return
	}

	result := h.intakeService.Submit(r.Context(), req)
	if result.Succeeded() {
		redirect(w, r, categorySuccess, result.Message())
		return
	}
	redirect(w, r, categoryError, result.Message())
}

func redirect(w http.ResponseWriter, r *http.Request, category, message string) {
	values := url.Values{}
	values.Set("status", category)
	values.Set("message", message)
	http.Redirect(w, r, "/?"+values.Encode(), http.StatusSeeOther)
}
