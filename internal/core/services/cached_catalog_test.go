package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

type mockCache struct {
	tracks map[string]domain.Track
	puts   []domain.Track

	getErr error
	putErr error
}

func (m *mockCache) GetTrack(_ context.Context, id string) (domain.Track, error) {
	if m.getErr != nil {
		return domain.Track{}, m.getErr
	}
	track, ok := m.tracks[id]
	if !ok {
		return domain.Track{}, domain.ErrNotFound
	}
	return track, nil
}

func (m *mockCache) PutTrack(_ context.Context, t domain.Track) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts = append(m.puts, t)
	return nil
}

func (m *mockCache) UpdateTrackEnergy(_ context.Context, _ string, _ float64) error {
	return nil
}

func fv(v float64) *float64 { return &v }

func TestCachedCatalog_EnrichesMissingEnergy(t *testing.T) {
	catalog := &mockCatalog{
		tracks: map[string]domain.Track{
			"t1": candidate("t1", 128, 240000),
		},
	}
	cache := &mockCache{
		tracks: map[string]domain.Track{
			"t1": {ID: "t1", Energy: fv(0.72), Danceability: fv(0.61)},
		},
	}
	cc := NewCachedCatalog(catalog, cache, zerolog.Nop())

	track, err := cc.ResolveTrack(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Energy == nil || *track.Energy != 0.72 {
		t.Errorf("got energy %v, want measured 0.72", track.Energy)
	}
	if track.Danceability == nil || *track.Danceability != 0.61 {
		t.Errorf("got danceability %v, want measured 0.61", track.Danceability)
	}
	if track.BPM != 128 {
		t.Errorf("got bpm %v, want the fresh catalog value", track.BPM)
	}
}

func TestCachedCatalog_CatalogValueWins(t *testing.T) {
	catalog := &mockCatalog{
		tracks: map[string]domain.Track{
			"t1": {ID: "t1", DurationMs: 240000, Energy: fv(0.9)},
		},
	}
	cache := &mockCache{
		tracks: map[string]domain.Track{
			"t1": {ID: "t1", Energy: fv(0.3)},
		},
	}
	cc := NewCachedCatalog(catalog, cache, zerolog.Nop())

	track, err := cc.ResolveTrack(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Energy == nil || *track.Energy != 0.9 {
		t.Errorf("got energy %v, want the catalog's own 0.9", track.Energy)
	}
}

func TestCachedCatalog_WritesThrough(t *testing.T) {
	catalog := &mockCatalog{
		tracks: map[string]domain.Track{
			"t1": candidate("t1", 120, 240000),
		},
		related: map[string][]domain.Track{
			"t1": {candidate("c1", 121, 200000), candidate("c2", 122, 200000)},
		},
	}
	cache := &mockCache{}
	cc := NewCachedCatalog(catalog, cache, zerolog.Nop())

	if _, err := cc.ResolveTrack(context.Background(), "t1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := cc.RelatedTracks(context.Background(), "t1", 10); err != nil {
		t.Fatalf("related: %v", err)
	}

	if len(cache.puts) != 3 {
		t.Fatalf("got %d cache writes, want 3 (resolved track plus two candidates)", len(cache.puts))
	}
}

func TestCachedCatalog_CacheFailuresAreTolerated(t *testing.T) {
	catalog := &mockCatalog{
		tracks: map[string]domain.Track{
			"t1": candidate("t1", 120, 240000),
		},
	}
	cache := &mockCache{
		getErr: errors.New("disk full"),
		putErr: errors.New("disk full"),
	}
	cc := NewCachedCatalog(catalog, cache, zerolog.Nop())

	track, err := cc.ResolveTrack(context.Background(), "t1")
	if err != nil {
		t.Fatalf("cache failure leaked into the catalog call: %v", err)
	}
	if track.ID != "t1" {
		t.Errorf("got track %q, want t1", track.ID)
	}
}

func TestCachedCatalog_CatalogErrorsPassThrough(t *testing.T) {
	catalog := &mockCatalog{
		resolveErr: map[string]error{"t1": domain.ErrNotFound},
	}
	cc := NewCachedCatalog(catalog, &mockCache{}, zerolog.Nop())

	_, err := cc.ResolveTrack(context.Background(), "t1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got err %v, want ErrNotFound", err)
	}
}
