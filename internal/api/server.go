// Package api serves the read-only assessment endpoints next to the health
// and metrics routes of the worker manager.
package api

import (
	"context"
	"net/http"
	"time"

	"emis-workers/internal/common/logger"
	"emis-workers/internal/emis/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Check reports whether a dependency is usable. /ready fails when any check
// fails.
type Check func(ctx context.Context) error

type Options struct {
	Catalog        *catalog.Catalog
	Logger         logger.Logger
	Checks         map[string]Check
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type Server struct {
	router  *chi.Mux
	catalog *catalog.Catalog
	logger  logger.Logger
	checks  map[string]Check
}

func NewServer(opts Options) *Server {
	s := &Server{
		catalog: opts.Catalog,
		logger:  opts.Logger,
		checks:  opts.Checks,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.logger == nil {
		s.logger = logger.NewNoOpLogger()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	s.setupRouter(opts)
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter(opts Options) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/catalog/questions/{id}", s.handleQuestion)
		r.Get("/facility-types", s.handleFacilityTypes)
		r.Get("/objectives", s.handleObjectives)
		r.Get("/specifications/topics", s.handleTopics)
		r.Post("/results/preview", s.handlePreview)
		r.Post("/reports/results", s.handleResultsDocument)
	})

	s.router = r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info("http request", map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  middleware.GetReqID(r.Context()),
			})
		}()

		next.ServeHTTP(ww, r)
	})
}
