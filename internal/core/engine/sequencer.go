package engine

import (
	"math"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

// Sequence orders tracks from the pool into a set. Seeds are placed first in
// input order; they anchor the opening and are never re-ordered. The pool is
// then consumed greedily: each step appends the unplaced track with the
// lowest transition cost from the last placed one, breaking ties by lower
// raw tempo difference and then by pool input order, so identical inputs
// always produce identical sequences.
//
// Tracks still missing tempo or key after normalization are only eligible
// once every fully tagged candidate has been placed.
//
// The loop stops as soon as the cumulative duration reaches the target, so
// the result overshoots by at most one track, or when the pool runs out,
// which yields a shorter valid sequence rather than an error.
//
// The returned feature map is the normalization the scores were computed
// over, keyed by track ID, so callers can report which placements relied on
// imputed metadata.
func Sequence(pool []domain.Track, seeds []domain.Track, targetDurationSeconds int, profile domain.StyleProfile) ([]domain.Track, []domain.Transition, map[string]FeatureVector) {
	placed := make([]domain.Track, 0, len(seeds)+len(pool))
	placedIDs := make(map[string]struct{}, len(seeds)+len(pool))
	var durationMs int

	for _, seed := range seeds {
		if _, dup := placedIDs[seed.ID]; dup {
			continue
		}
		placed = append(placed, seed)
		placedIDs[seed.ID] = struct{}{}
		durationMs += seed.DurationMs
	}

	remaining := make([]domain.Track, 0, len(pool))
	for _, t := range pool {
		if _, dup := placedIDs[t.ID]; dup {
			continue
		}
		remaining = append(remaining, t)
	}

	features := Normalize(append(append([]domain.Track{}, placed...), remaining...))

	if len(placed) == 0 {
		if len(remaining) == 0 {
			return placed, nil, features
		}
		first := remaining[0]
		placed = append(placed, first)
		placedIDs[first.ID] = struct{}{}
		durationMs += first.DurationMs
		remaining = remaining[1:]
	}

	scorer := NewScorer(profile, features)

	targetMs := targetDurationSeconds * 1000
	var transitions []domain.Transition

	// Seed adjacencies are fixed by the caller but still get scored, so
	// the output carries a diagnostic for every adjacent pair.
	for i := 1; i < len(placed); i++ {
		transitions = append(transitions, domain.Transition{
			FromID: placed[i-1].ID,
			ToID:   placed[i].ID,
			Cost:   scorer.Cost(placed[i-1], placed[i]),
		})
	}

	for durationMs < targetMs && len(remaining) > 0 {
		last := placed[len(placed)-1]
		idx, cost := pickNext(scorer, last, remaining)

		next := remaining[idx]
		transitions = append(transitions, domain.Transition{FromID: last.ID, ToID: next.ID, Cost: cost})
		placed = append(placed, next)
		durationMs += next.DurationMs
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return placed, transitions, features
}

// pickNext finds the cheapest transition out of last. Fully tagged candidates
// outrank degraded ones regardless of score; within a tier, ties fall to the
// smaller raw tempo gap and finally to pool order.
func pickNext(scorer *Scorer, last domain.Track, remaining []domain.Track) (int, domain.TransitionCost) {
	bestIdx := -1
	var bestCost domain.TransitionCost
	bestTotal := math.Inf(1)
	bestBPMGap := math.Inf(1)
	bestTagged := false

	for i, cand := range remaining {
		tagged := cand.FullyTagged()
		if bestTagged && !tagged {
			continue
		}

		cost := scorer.Cost(last, cand)
		gap := bpmGap(last, cand)

		better := false
		switch {
		case tagged && !bestTagged:
			better = true
		case cost.Total < bestTotal:
			better = true
		case cost.Total == bestTotal && gap < bestBPMGap:
			better = true
		}
		if better {
			bestIdx = i
			bestCost = cost
			bestTotal = cost.Total
			bestBPMGap = gap
			bestTagged = tagged
		}
	}

	return bestIdx, bestCost
}

func bpmGap(a, b domain.Track) float64 {
	if !a.HasBPM() || !b.HasBPM() {
		return math.Inf(1)
	}
	return math.Abs(a.BPM - b.BPM)
}
