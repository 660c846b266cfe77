package metrics

import (
	"file-intake/internal/core/domain"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "file_intake"

	outcomeSucceeded = "succeeded"
)

// Metrics holds the Prometheus collectors of the intake service
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	uploadsTotal     *prometheus.CounterVec
	uploadBytesTotal *prometheus.CounterVec
	uploadDuration   *prometheus.HistogramVec

	mu    sync.Mutex
	stats domain.UploadStats
}

// New creates the collectors on a dedicated registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"method", "route"},
		),
		uploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "uploads_total",
				Help:      "Total uploads by outcome",
			},
			[]string{"backend", "outcome"},
		),
		uploadBytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "upload_bytes_total",
				Help:      "Total bytes written",
			},
			[]string{"backend"},
		),
		uploadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "upload_duration_seconds",
				Help:      "Upload pipeline duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"backend"},
		),
		stats: domain.UploadStats{ByKind: map[domain.FailureKind]int64{}},
	}
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordUpload records one pipeline outcome
func (m *Metrics) RecordUpload(result domain.UploadResult, backend string, duration float64) {
	outcome := outcomeSucceeded
	if !result.Succeeded() {
		outcome = string(domain.FailureStorageError)
		if result.Failure != nil {
			outcome = string(result.Failure.Kind)
		}
	}

	m.uploadsTotal.WithLabelValues(backend, outcome).Inc()
	m.uploadDuration.WithLabelValues(backend).Observe(duration)

	m.mu.Lock()
	defer m.mu.Unlock()
	if result.Succeeded() {
		m.uploadBytesTotal.WithLabelValues(backend).Add(float64(result.Success.Bytes))
		m.stats.Succeeded++
		m.stats.Bytes += result.Success.Bytes
		return
	}
	m.stats.Failed++
	if result.Failure != nil {
		m.stats.ByKind[result.Failure.Kind]++
	}
}

// UploadStats returns a copy of the running counters
func (m *Metrics) UploadStats() domain.UploadStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	byKind := make(map[domain.FailureKind]int64, len(m.stats.ByKind))
	for k, v := range m.stats.ByKind {
		byKind[k] = v
	}
	stats := m.stats
	stats.ByKind = byKind
	return stats
}

// Middleware records request count and latency per chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
