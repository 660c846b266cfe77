package web_test

import (
	"bytes"
	"file-intake/internal/adapters/handlers/http/chi"
	"file-intake/internal/adapters/handlers/http/chi/web"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/domain"
	"file-intake/internal/core/service/intake"
	"io"
	"log/slog"
	"mime/multipart"
	http2 "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedStats struct {
	stats domain.UploadStats
}

func (f fixedStats) UploadStats() domain.UploadStats {
	return f.stats
}

func newRouter(service *intake.MockIntakeService) http2.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stats := fixedStats{stats: domain.UploadStats{
		Succeeded: 3,
		Failed:    1,
		ByKind:    map[domain.FailureKind]int64{domain.FailureDisallowedType: 1},
	}}
	handler := web.NewHandler(service, stats, true, discardLogger)
	return chi.NewRouter(discardLogger, handler, nil, nil, chi.RouterOptions{})
}

func TestPage(t *testing.T) {

	t.Run("renders listing, allow-list and flash", func(t *testing.T) {
		//Arrange
		mockService := &intake.MockIntakeService{}
		mockService.On("Location").Return(destination.Spec{Volume: "main.default.uploads", Subfolder: "q3"})
		mockService.On("AllowedExtensions").Return([]string{"csv", "pdf"})
		mockService.On("List", mock.Anything, "", "").Return([]domain.StoredFile{{Name: "report.pdf", SizeBytes: 8}}, nil)

		h := newRouter(mockService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, httptest.NewRequest(http2.MethodGet, "/?status=success&message=File+uploaded+successfully+to+%2Fdata%2Freport.pdf", nil))

		//Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		page := w.Body.String()
		assert.Contains(t, page, "main.default.uploads/q3")
		assert.Contains(t, page, "Allowed file types: csv, pdf")
		assert.Contains(t, page, "report.pdf")
		assert.Contains(t, page, "Uploaded Files (1)")
		assert.Contains(t, page, `flash-success`)
		assert.Contains(t, page, "File uploaded successfully to /data/report.pdf")
		assert.Contains(t, page, "Invalid file type")
	})

	t.Run("flash message is escaped", func(t *testing.T) {
		//Arrange
		mockService := &intake.MockIntakeService{}
		mockService.On("Location").Return(destination.Spec{Root: "/data"})
		mockService.On("AllowedExtensions").Return([]string{"txt"})
		mockService.On("List", mock.Anything, "", "").Return([]domain.StoredFile{}, nil)

		h := newRouter(mockService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, httptest.NewRequest(http2.MethodGet, "/?status=error&message="+url.QueryEscape("<script>x</script>"), nil))

		//Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<script>x</script>")
		assert.Contains(t, w.Body.String(), "flash-error")
	})
}

func TestUpload(t *testing.T) {

	t.Run("success redirects with flash", func(t *testing.T) {
		//Arrange
		mockService := &intake.MockIntakeService{}
		mockService.On("Submit", mock.Anything, mock.MatchedBy(func(req domain.UploadRequest) bool {
			return req.Filename == "notes.txt" && string(req.Content) == "hello"
		})).Return(domain.Succeed("/data/notes.txt", 5))

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "notes.txt")
		require.NoError(t, err)
		_, err = part.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http2.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		h := newRouter(mockService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http2.StatusSeeOther, w.Code)
		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/", location.Path)
		assert.Equal(t, "success", location.Query().Get("status"))
		assert.Equal(t, "File uploaded successfully to /data/notes.txt", location.Query().Get("message"))
		mockService.AssertExpectations(t)
	})

	t.Run("failure redirects with error flash", func(t *testing.T) {
		//Arrange
		mockService := &intake.MockIntakeService{}
		mockService.On("Submit", mock.Anything, mock.Anything).Return(domain.Fail(domain.FailureNoFileSelected, "no file selected"))

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http2.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		h := newRouter(mockService)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http2.StatusSeeOther, w.Code)
		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "error", location.Query().Get("status"))
		assert.Equal(t, "No file selected: no file selected", location.Query().Get("message"))
	})
}
