package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

// ErrCatalogUnavailable indicates the upstream catalog could not be reached
// or refused the request after retries.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// SeedLookupError carries the seed reference whose resolution failed, so the
// caller can report which of the user's picks went missing.
type SeedLookupError struct {
	Seed string
	Err  error
}

func (e SeedLookupError) Error() string {
	return fmt.Sprintf("seed %q could not be resolved: %v", e.Seed, e.Err)
}

func (e SeedLookupError) Unwrap() error {
	return e.Err
}

// CatalogProvider is the outbound contract to the music catalog. Every call
// is a fallible, latency-bearing network operation; implementations own
// their retry and timeout policy.
type CatalogProvider interface {
	// ResolveTrack fetches metadata for a track reference (a permalink
	// URL or catalog ID).
	ResolveTrack(ctx context.Context, ref string) (domain.Track, error)

	// RelatedTracks fetches up to limit candidate tracks the catalog
	// considers similar to the given track.
	RelatedTracks(ctx context.Context, trackID string, limit int) ([]domain.Track, error)

	// SearchTracks runs a free-text catalog search.
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)
}
