package ports

import (
	"context"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

// TrackCache stores resolved track metadata so repeated generations do not
// re-fetch it, and receives measured features from background analysis.
// Lookups for unknown tracks return domain.ErrNotFound.
type TrackCache interface {
	GetTrack(ctx context.Context, id string) (domain.Track, error)
	PutTrack(ctx context.Context, t domain.Track) error

	// UpdateTrackEnergy replaces a cached track's energy with a measured
	// value, clearing its estimated status for future generations.
	UpdateTrackEnergy(ctx context.Context, id string, energy float64) error
}
