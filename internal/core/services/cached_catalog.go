package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
	"github.com/wvaughn-dev/setforge/internal/core/ports"
)

// CachedCatalog fronts a CatalogProvider with a TrackCache. Resolved tracks
// are written through to the cache, and tracks the catalog returns without
// an energy reading are enriched with the measured value when background
// analysis has produced one. Cache failures never fail a catalog call.
type CachedCatalog struct {
	catalog ports.CatalogProvider
	cache   ports.TrackCache
	logger  zerolog.Logger
}

var _ ports.CatalogProvider = (*CachedCatalog)(nil)

// NewCachedCatalog wraps catalog with cache.
func NewCachedCatalog(catalog ports.CatalogProvider, cache ports.TrackCache, logger zerolog.Logger) *CachedCatalog {
	return &CachedCatalog{
		catalog: catalog,
		cache:   cache,
		logger:  logger.With().Str("component", "track_cache").Logger(),
	}
}

func (c *CachedCatalog) ResolveTrack(ctx context.Context, ref string) (domain.Track, error) {
	track, err := c.catalog.ResolveTrack(ctx, ref)
	if err != nil {
		return domain.Track{}, err
	}
	return c.absorb(ctx, track), nil
}

func (c *CachedCatalog) RelatedTracks(ctx context.Context, trackID string, limit int) ([]domain.Track, error) {
	tracks, err := c.catalog.RelatedTracks(ctx, trackID, limit)
	if err != nil {
		return nil, err
	}
	for i, t := range tracks {
		tracks[i] = c.absorb(ctx, t)
	}
	return tracks, nil
}

func (c *CachedCatalog) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	return c.catalog.SearchTracks(ctx, query, limit)
}

// absorb merges measured features the cache holds into the fresh catalog
// record, then writes the result back.
func (c *CachedCatalog) absorb(ctx context.Context, track domain.Track) domain.Track {
	cached, err := c.cache.GetTrack(ctx, track.ID)
	switch {
	case err == nil:
		if track.Energy == nil && cached.Energy != nil {
			track.Energy = cached.Energy
		}
		if track.Danceability == nil && cached.Danceability != nil {
			track.Danceability = cached.Danceability
		}
	case !errors.Is(err, domain.ErrNotFound):
		c.logger.Warn().Err(err).Str("track_id", track.ID).Msg("cache lookup failed")
	}

	if err := c.cache.PutTrack(ctx, track); err != nil {
		c.logger.Warn().Err(err).Str("track_id", track.ID).Msg("cache write failed")
	}
	return track
}
