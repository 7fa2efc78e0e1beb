// Package rest is the HTTP interface of the service.
package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/wvaughn-dev/setforge/internal/core/services"
	"github.com/wvaughn-dev/setforge/internal/telemetry"
	"github.com/wvaughn-dev/setforge/internal/worker"
)

// Handler manages the HTTP interface for the generation service.
type Handler struct {
	svc    *services.Generator
	pool   *worker.Pool
	logger zerolog.Logger
	router chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Generator, pool *worker.Pool, logger zerolog.Logger) *Handler {
	h := &Handler{
		svc:    svc,
		pool:   pool,
		logger: logger.With().Str("component", "rest").Logger(),
		router: chi.NewRouter(),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.Recoverer)
	h.router.Use(h.requestLogger)

	h.router.Get("/health", h.HealthCheck)
	h.router.Method(http.MethodGet, "/metrics", telemetry.Handler())

	h.router.Post("/playlists/generate", h.GeneratePlaylist)
	h.router.Get("/tracks/analysis", h.AnalyzeTrack)
	h.router.Get("/tracks/search", h.SearchTracks)
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
