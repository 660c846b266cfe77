package chi

import (
	"context"
	"encoding/json"
	"file-intake/internal/adapters/handlers/http/chi/v1/journal"
	"file-intake/internal/adapters/handlers/http/chi/v1/upload"
	"file-intake/internal/adapters/handlers/http/chi/web"
	"file-intake/internal/adapters/metrics"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// formOverhead is allowed on top of the file size for multipart framing and form fields
const formOverhead = 1 << 20

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterOptions holds the optional parts of the router
type RouterOptions struct {
	Env           string
	MaxUploadSize int64
	// Metrics enables request metrics and /metrics when set
	Metrics *metrics.Metrics
	// Health is checked by /health when set
	Health Pinger
}

// NewRouter builds http.Handler with chi. Nil handlers are not mounted.
func NewRouter(logger *slog.Logger, pageHandler *web.Handler, uploadHandler *upload.HandlerV1, journalHandler *journal.HandlerV1, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	maxBody := int64(5 << 20) //5mb
	if opts.MaxUploadSize > 0 {
		maxBody = opts.MaxUploadSize + formOverhead
	}
	r.Use(middleware.RequestSize(maxBody))

	if opts.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	if pageHandler != nil {
		r.Get("/", pageHandler.Page)
		r.Post("/upload", pageHandler.Upload)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if uploadHandler != nil {
			r.Mount("/files", uploadHandler.Routes())
		}
		if journalHandler != nil {
			r.Mount("/journal", journalHandler.Routes())
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		status := http.StatusOK
		if opts.Health != nil {
			if err := opts.Health.Ping(r.Context()); err != nil {
				logger.Warn("health check failed", "error", err)
				resp.Status = "degraded"
				resp.Error = err.Error()
				status = http.StatusServiceUnavailable
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(resp)
	})

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
