package engine

import (
	"github.com/google/uuid"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

// Assemble packages an ordered sequence into the output playlist. Pure
// aggregation: it sums durations, counts tracks and stamps the style. An
// empty sequence assembles into a valid zero-track playlist so callers can
// render an empty result.
func Assemble(sequence []domain.Track, transitions []domain.Transition, style domain.Style) domain.Playlist {
	name := "DJ Mix"
	var totalMs int
	for _, t := range sequence {
		totalMs += t.DurationMs
	}
	if len(sequence) > 0 && sequence[0].Title != "" {
		name = "DJ Mix - " + sequence[0].Title
	}

	return domain.Playlist{
		ID:              uuid.NewString(),
		Name:            name,
		Tracks:          sequence,
		Transitions:     transitions,
		DurationSeconds: float64(totalMs) / 1000.0,
		Style:           style,
		TrackCount:      len(sequence),
	}
}
