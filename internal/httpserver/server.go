// Package httpserver assembles the router and HTTP server.
package httpserver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"solanki.dev/portfolio/internal/handlers"
	"solanki.dev/portfolio/internal/metrics"
	custommw "solanki.dev/portfolio/internal/middleware"
	"solanki.dev/portfolio/internal/route"
	"solanki.dev/portfolio/public"
)

const requestTimeout = 30 * time.Second

// Config holds runtime options for the portfolio HTTP server.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Logger   *zap.Logger
	Handlers *handlers.Handlers
	Metrics  *metrics.Recorder
	// Static overrides the embedded assets, e.g. a directory in dev mode.
	Static fs.FS
	// Dev disables asset caching.
	Dev bool
}

// New constructs the HTTP server with middleware stack and routes.
func New(cfg Config) (*http.Server, error) {
	router, err := NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 60*time.Second),
	}, nil
}

// NewRouter registers every page of the route table plus health, metrics and assets.
// Any other path is redirected to "/". Known paths with the wrong method get chi's 405.
func NewRouter(cfg Config) (http.Handler, error) {
	if cfg.Handlers == nil {
		return nil, errors.New("httpserver: handlers are required")
	}
	static := cfg.Static
	if static == nil {
		embedded, err := public.StaticFS()
		if err != nil {
			return nil, fmt.Errorf("httpserver: embed static: %w", err)
		}
		static = embedded
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy, RealIP will use
	// X-Forwarded-For to determine the client IP.
	router.Use(chimw.RealIP)
	router.Use(custommw.Trace)
	router.Use(custommw.HTMX)
	router.Use(custommw.RequestLogger(cfg.Logger))
	router.Use(custommw.Recovery)
	router.Use(chimw.GetHead)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(requestTimeout))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler())
	}
	router.Handle("/assets/*", http.StripPrefix("/assets", custommw.AssetsWithCache(static, cfg.Dev)))

	mountPages(router, route.NewTable(), cfg.Handlers)
	return router, nil
}

// mountPages registers the page table. Page requests and unmatched paths both
// go through the table, so anything it does not know is redirected home.
func mountPages(router chi.Router, table *route.Table, h *handlers.Handlers) {
	pages := h.Dispatch(table)
	for _, rt := range table.Routes() {
		router.Get(rt.Path, pages)
	}
	router.Post(route.Contact.Path(), h.ContactSubmit)
	router.NotFound(pages)
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
