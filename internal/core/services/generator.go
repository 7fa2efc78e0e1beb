// Package services coordinates the sequencing engine with the outbound
// catalog and cache ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
	"github.com/wvaughn-dev/setforge/internal/core/engine"
	"github.com/wvaughn-dev/setforge/internal/core/ports"
)

// Pool sizing: give the sequencer roughly five candidates per slot it will
// fill, assuming a nominal four-minute track, with a floor so tiny requests
// still get some freedom.
const (
	nominalTrackSeconds = 240
	poolSizeMultiplier  = 5
	minPoolTarget       = 20
)

// GenerateRequest is one playlist generation call.
type GenerateRequest struct {
	SeedRefs        []string     `json:"seed_tracks"`
	DurationMinutes int          `json:"duration_minutes"`
	Style           domain.Style `json:"transition_style"`
}

// GenerateResult is the playlist plus everything the caller may want to warn
// about. Generation returns a value and diagnostics for any condition short
// of invalid input or an empty pool.
type GenerateResult struct {
	Playlist    domain.Playlist    `json:"playlist"`
	EnergyFlow  domain.EnergyFlow  `json:"energy_flow"`
	Diagnostics domain.Diagnostics `json:"diagnostics"`
}

// Generator drives the generation pipeline: resolve seeds, build the
// candidate pool, sequence, assemble.
type Generator struct {
	catalog ports.CatalogProvider
	logger  zerolog.Logger
}

// NewGenerator constructs a Generator.
func NewGenerator(catalog ports.CatalogProvider, logger zerolog.Logger) *Generator {
	return &Generator{
		catalog: catalog,
		logger:  logger.With().Str("component", "generator").Logger(),
	}
}

// Generate builds a playlist from the request's seeds. Fatal outcomes are
// invalid input and a candidate pool that came back empty across every seed;
// everything else degrades into Diagnostics on the result.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if len(req.SeedRefs) == 0 {
		return GenerateResult{}, fmt.Errorf("service: %w", domain.ErrNoSeeds)
	}
	if req.DurationMinutes <= 0 {
		return GenerateResult{}, fmt.Errorf("service: %w", domain.ErrInvalidDuration)
	}
	profile, err := domain.ProfileFor(req.Style)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("service: %w", err)
	}

	var diags domain.Diagnostics

	seeds, failedSeeds := g.resolveSeeds(ctx, req.SeedRefs)
	diags.FailedSeeds = failedSeeds
	if len(seeds) == 0 {
		return GenerateResult{}, fmt.Errorf("service: no seed could be resolved: %w", domain.ErrEmptyPool)
	}

	targetSeconds := req.DurationMinutes * 60
	pool := g.buildPool(ctx, seeds, poolTarget(targetSeconds))
	diags.PoolSize = len(pool)
	if len(pool) == 0 {
		return GenerateResult{}, fmt.Errorf("service: %w", domain.ErrEmptyPool)
	}

	sequence, transitions, features := engine.Sequence(pool, seeds, targetSeconds, profile)
	playlist := engine.Assemble(sequence, transitions, req.Style)

	for _, t := range playlist.Tracks {
		if features[t.ID].Imputed() {
			diags.ImputedTrackIDs = append(diags.ImputedTrackIDs, t.ID)
		}
	}
	diags.Shortfall = playlist.DurationSeconds < float64(targetSeconds)

	if diags.Shortfall {
		g.logger.Warn().
			Float64("duration_seconds", playlist.DurationSeconds).
			Int("target_seconds", targetSeconds).
			Msg("pool exhausted before target duration")
	}

	return GenerateResult{
		Playlist:    playlist,
		EnergyFlow:  playlist.AnalyzeEnergyFlow(),
		Diagnostics: diags,
	}, nil
}

// AnalyzeTrack resolves a track reference and returns its derived analysis.
func (g *Generator) AnalyzeTrack(ctx context.Context, ref string) (engine.TrackAnalysis, error) {
	track, err := g.catalog.ResolveTrack(ctx, ref)
	if err != nil {
		return engine.TrackAnalysis{}, fmt.Errorf("service: failed to resolve track: %w", err)
	}
	return engine.AnalyzeTrack(track), nil
}

// SearchTracks proxies a free-text search to the catalog.
func (g *Generator) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	tracks, err := g.catalog.SearchTracks(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("service: search failed: %w", err)
	}
	return tracks, nil
}

// resolveSeeds fans out one catalog lookup per seed reference and fans back
// in preserving input order, so the opening of the set stays exactly as the
// user arranged it. Individual failures are dropped and reported, not fatal.
func (g *Generator) resolveSeeds(ctx context.Context, refs []string) ([]domain.Track, []string) {
	type outcome struct {
		track domain.Track
		err   error
	}

	outcomes := make([]outcome, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			track, err := g.catalog.ResolveTrack(ctx, ref)
			if err != nil {
				err = ports.SeedLookupError{Seed: ref, Err: err}
			}
			outcomes[i] = outcome{track: track, err: err}
		}(i, ref)
	}
	wg.Wait()

	seeds := make([]domain.Track, 0, len(refs))
	var failed []string
	for i, out := range outcomes {
		if out.err != nil {
			g.logger.Warn().Err(out.err).Str("seed", refs[i]).Msg("seed lookup failed")
			failed = append(failed, refs[i])
			continue
		}
		seeds = append(seeds, out.track)
	}
	return seeds, failed
}

// buildPool expands the seeds into a candidate pool: fan out one
// related-tracks lookup per seed, merge in seed order, dedupe by ID against
// both the seeds and earlier candidates, drop unusable durations and cap at
// target. Seeds whose lookup fails degrade the pool rather than abort it.
func (g *Generator) buildPool(ctx context.Context, seeds []domain.Track, target int) []domain.Track {
	perSeed := make([][]domain.Track, len(seeds))
	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed domain.Track) {
			defer wg.Done()
			candidates, err := g.catalog.RelatedTracks(ctx, seed.ID, target)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					g.logger.Warn().Err(err).Str("seed_id", seed.ID).Msg("related tracks lookup failed")
				}
				return
			}
			perSeed[i] = candidates
		}(i, seed)
	}
	wg.Wait()

	seen := make(map[string]struct{}, target)
	for _, seed := range seeds {
		seen[seed.ID] = struct{}{}
	}

	pool := make([]domain.Track, 0, target)
	for _, candidates := range perSeed {
		for _, c := range candidates {
			if len(pool) >= target {
				return pool
			}
			if c.DurationMs <= 0 {
				continue
			}
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			pool = append(pool, c)
		}
	}
	return pool
}

func poolTarget(targetSeconds int) int {
	slots := (targetSeconds + nominalTrackSeconds - 1) / nominalTrackSeconds
	target := slots * poolSizeMultiplier
	if target < minPoolTarget {
		return minPoolTarget
	}
	return target
}
