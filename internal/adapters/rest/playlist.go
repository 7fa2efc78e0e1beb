package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
	"github.com/wvaughn-dev/setforge/internal/core/ports"
	"github.com/wvaughn-dev/setforge/internal/core/services"
	"github.com/wvaughn-dev/setforge/internal/telemetry"
	"github.com/wvaughn-dev/setforge/internal/worker"
)

// API-level defaults matching the original request contract; the core itself
// rejects zero values.
const (
	defaultDurationMinutes = 60
	defaultStyle           = domain.StyleSmooth
)

// GeneratePlaylist handles POST /playlists/generate.
func (h *Handler) GeneratePlaylist(w http.ResponseWriter, r *http.Request) {
	var req services.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = defaultDurationMinutes
	}
	if req.Style == "" {
		req.Style = defaultStyle
	}

	result, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.respondGenerateError(w, err)
		return
	}

	telemetry.PlaylistsGenerated.WithLabelValues(string(result.Playlist.Style)).Inc()
	telemetry.PoolSize.Observe(float64(result.Diagnostics.PoolSize))
	telemetry.PlaylistTracks.Observe(float64(result.Playlist.TrackCount))

	h.queueAnalysis(result)

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) respondGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoSeeds),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrUnknownStyle):
		telemetry.GenerationFailures.WithLabelValues("input").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmptyPool):
		telemetry.GenerationFailures.WithLabelValues("empty_pool").Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ports.ErrCatalogUnavailable):
		telemetry.GenerationFailures.WithLabelValues("catalog").Inc()
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		telemetry.GenerationFailures.WithLabelValues("internal").Inc()
		h.logger.Error().Err(err).Msg("generation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// queueAnalysis submits tracks that were scored on estimated metadata for
// background preview analysis, so future generations see measured values.
func (h *Handler) queueAnalysis(result services.GenerateResult) {
	if h.pool == nil || len(result.Diagnostics.ImputedTrackIDs) == 0 {
		return
	}

	imputed := make(map[string]struct{}, len(result.Diagnostics.ImputedTrackIDs))
	for _, id := range result.Diagnostics.ImputedTrackIDs {
		imputed[id] = struct{}{}
	}
	for _, t := range result.Playlist.Tracks {
		if _, ok := imputed[t.ID]; !ok {
			continue
		}
		h.pool.Submit(worker.Job{TrackID: t.ID, PreviewURL: t.PreviewURL})
	}
}
