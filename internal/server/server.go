// Package server exposes record generation over HTTP.
package server

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"pkg.jsn.cam/recordgen/internal/presets"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/httpx"
)

//go:embed static
var staticFiles embed.FS

// Generator produces one page of records.
type Generator interface {
	Generate(ctx context.Context, req recordgen.GenerationRequest) (recordgen.Page, error)
}

// Options tunes the HTTP surface.
type Options struct {
	// MaxExportPages caps the pages parameter of /export.csv.
	MaxExportPages int
	// RateLimitRPS of zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server routes HTTP requests to the generator and preset store.
type Server struct {
	router    chi.Router
	generator Generator
	presets   *presets.Store
	seeds     *recordgen.SeedSource
	logger    *slog.Logger
	metrics   *Metrics
	limiter   *rate.Limiter
	opts      Options
}

// New builds a server with its routes mounted.
func New(opts Options, generator Generator, presetStore *presets.Store, logger *slog.Logger) *Server {
	if opts.MaxExportPages <= 0 {
		opts.MaxExportPages = 500
	}

	s := &Server{
		generator: generator,
		presets:   presetStore,
		seeds:     recordgen.NewSeedSource(time.Now().UnixNano()),
		logger:    logger.With(slog.String("component", "server")),
		metrics:   NewMetrics(),
		opts:      opts,
	}
	if opts.RateLimitRPS > 0 {
		burst := opts.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), burst)
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger, s.metrics))
	r.Use(recoverer(s.logger))
	r.Use(versionHeader)
	r.Use(cors)

	r.Get("/", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	ui, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	r.Get("/ui", http.RedirectHandler("/ui/", http.StatusMovedPermanently).ServeHTTP)
	r.Handle("/ui/*", http.StripPrefix("/ui/", http.FileServer(http.FS(ui))))

	r.Group(func(r chi.Router) {
		r.Use(rateLimit(s.limiter, s.metrics))

		r.Post("/generate", s.wrap(s.handleGenerate))
		r.Get("/random-seed", s.handleRandomSeed)
		r.Get("/export.csv", s.wrap(s.handleExportCSV))

		r.Route("/api", func(r chi.Router) {
			r.Get("/regions", s.handleRegions)

			r.Get("/presets", s.wrap(s.handleListPresets))
			r.Post("/presets", s.wrap(s.handleCreatePreset))
			r.Get("/presets/{id}", s.wrap(s.handleGetPreset))
			r.Delete("/presets/{id}", s.wrap(s.handleDeletePreset))
			r.Get("/presets/{id}/pages/{page}", s.wrap(s.handlePresetPage))
		})
	})

	return r
}

func (s *Server) wrap(fn httpx.HandlerFunc) http.HandlerFunc {
	return httpx.Wrap(s.logger, fn)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Metrics exposes the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}
