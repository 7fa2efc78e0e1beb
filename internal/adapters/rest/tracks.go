package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// AnalyzeTrack handles GET /tracks/analysis?url=<permalink or id>.
func (h *Handler) AnalyzeTrack(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("url")
	if ref == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	analysis, err := h.svc.AnalyzeTrack(r.Context(), ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "track not found")
			return
		}
		h.logger.Error().Err(err).Str("ref", ref).Msg("track analysis failed")
		writeError(w, http.StatusBadGateway, "failed to resolve track")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// SearchTracks handles GET /tracks/search?q=<query>&limit=<n>.
func (h *Handler) SearchTracks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	tracks, err := h.svc.SearchTracks(r.Context(), query, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("query", query).Msg("search failed")
		writeError(w, http.StatusBadGateway, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, tracks)
}
