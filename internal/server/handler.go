// Package server exposes resolved build information over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/woozymasta/overviewer-util/internal/config"
	"github.com/woozymasta/overviewer-util/internal/vars"
)

// InfoSource resolves build information on demand.
type InfoSource interface {
	Info(ctx context.Context) vars.BuildInfo
}

// Handler manages the HTTP API endpoints.
type Handler struct {
	source InfoSource
	auth   config.AuthConfig
}

// NewHandler creates a new API handler with dependencies.
func NewHandler(source InfoSource, auth config.AuthConfig) *Handler {
	return &Handler{
		source: source,
		auth:   auth,
	}
}

// RegisterHealthRoutes registers health endpoints that do not require authentication.
func (h *Handler) RegisterHealthRoutes(r chi.Router) {
	r.Get("/health", h.HandleLiveness)
	r.Get("/health/liveness", h.HandleLiveness)
	r.Get("/health/readiness", h.HandleReadiness)
}

// RegisterPublicRoutes registers endpoints under /api/v1.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/version", h.HandleVersion)
}

// NewRouter wires middleware, routes and the metrics endpoint for registry.
func NewRouter(h *Handler, registry *prometheus.Registry, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		l := hlog.FromRequest(r)
		var event *zerolog.Event

		// probes and scrapes at DEBUG level, others at INFO
		if status == http.StatusOK &&
			(strings.HasPrefix(r.URL.Path, "/health") || strings.HasPrefix(r.URL.Path, "/metrics")) {
			event = l.Debug()
		} else {
			event = l.Info()
		}

		event.
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("resp_bytes", size).
			Dur("duration_ms", duration).
			Msg("HTTP request")
	}))
	r.Use(hlog.RemoteAddrHandler("ip"))

	h.RegisterHealthRoutes(r)

	r.Route("/api/v1", h.RegisterPublicRoutes)

	r.With(BasicAuth(h.auth)).
		Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
