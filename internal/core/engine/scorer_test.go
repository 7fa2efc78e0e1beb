package engine

import (
	"math"
	"testing"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

func mustProfile(t *testing.T, style domain.Style) domain.StyleProfile {
	t.Helper()
	profile, err := domain.ProfileFor(style)
	if err != nil {
		t.Fatalf("ProfileFor(%s): %v", style, err)
	}
	return profile
}

func TestScorer_DoubleTimeRule(t *testing.T) {
	cKey := domain.MusicalKey{PitchClass: 0, Mode: domain.ModeMajor}
	a := domain.Track{ID: "a", BPM: 120, Key: &cKey, Energy: f(0.5), Danceability: f(0.5)}
	b := domain.Track{ID: "b", BPM: 240, Key: &cKey, Energy: f(0.5), Danceability: f(0.5)}

	scorer := NewScorer(mustProfile(t, domain.StyleSmooth), Normalize([]domain.Track{a, b}))
	cost := scorer.Cost(a, b)

	// Raw difference of 120 BPM, but an exact 2:1 ratio mixes cleanly.
	if cost.BPM != 0 {
		t.Errorf("bpm cost = %v, want 0 under double-time rule", cost.BPM)
	}
}

func TestScorer_DoubleTimeTolerance(t *testing.T) {
	tests := []struct {
		name      string
		bpmA      float64
		bpmB      float64
		wantMatch bool
	}{
		{"exact double", 120, 240, true},
		{"exact half", 240, 120, true},
		{"within tolerance", 120, 236, true},
		{"outside tolerance", 120, 220, false},
		{"same tempo is not harmonic", 120, 120, false},
		{"missing tempo never matches", 0, 240, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := harmonicTempo(tc.bpmA, tc.bpmB); got != tc.wantMatch {
				t.Fatalf("harmonicTempo(%v, %v) = %v, want %v", tc.bpmA, tc.bpmB, got, tc.wantMatch)
			}
		})
	}
}

func TestScorer_EnergeticPenalizesEnergyDrops(t *testing.T) {
	key := domain.MusicalKey{PitchClass: 0, Mode: domain.ModeMajor}
	loud := domain.Track{ID: "loud", BPM: 126, Key: &key, Energy: f(0.9), Danceability: f(0.5)}
	quiet := domain.Track{ID: "quiet", BPM: 126, Key: &key, Energy: f(0.4), Danceability: f(0.5)}

	scorer := NewScorer(mustProfile(t, domain.StyleEnergetic), Normalize([]domain.Track{loud, quiet}))

	drop := scorer.Cost(loud, quiet)
	rise := scorer.Cost(quiet, loud)

	if drop.Energy <= rise.Energy {
		t.Errorf("energy drop cost %v should exceed rise cost %v", drop.Energy, rise.Energy)
	}
	if math.Abs(drop.Energy-rise.Energy*1.5) > 1e-9 {
		t.Errorf("drop cost %v, want rise cost %v scaled by 1.5", drop.Energy, rise.Energy)
	}
}

func TestScorer_SmoothIsSymmetric(t *testing.T) {
	keyA := domain.MusicalKey{PitchClass: 0, Mode: domain.ModeMajor}
	keyB := domain.MusicalKey{PitchClass: 7, Mode: domain.ModeMajor}
	a := domain.Track{ID: "a", BPM: 120, Key: &keyA, Energy: f(0.3), Danceability: f(0.8)}
	b := domain.Track{ID: "b", BPM: 128, Key: &keyB, Energy: f(0.7), Danceability: f(0.4)}

	scorer := NewScorer(mustProfile(t, domain.StyleSmooth), Normalize([]domain.Track{a, b}))

	ab := scorer.Cost(a, b)
	ba := scorer.Cost(b, a)
	if math.Abs(ab.Total-ba.Total) > 1e-9 {
		t.Errorf("smooth style should be symmetric: %v vs %v", ab.Total, ba.Total)
	}
}

func TestScorer_TotalIsWeightedSum(t *testing.T) {
	keyA := domain.MusicalKey{PitchClass: 0, Mode: domain.ModeMajor}
	keyB := domain.MusicalKey{PitchClass: 6, Mode: domain.ModeMajor}
	a := domain.Track{ID: "a", BPM: 100, Key: &keyA, Energy: f(0.2), Danceability: f(0.9)}
	b := domain.Track{ID: "b", BPM: 150, Key: &keyB, Energy: f(0.8), Danceability: f(0.3)}

	profile := mustProfile(t, domain.StyleMinimal)
	scorer := NewScorer(profile, Normalize([]domain.Track{a, b}))
	cost := scorer.Cost(a, b)

	want := profile.WeightBPM*cost.BPM +
		profile.WeightKey*cost.Key +
		profile.WeightEnergy*cost.Energy +
		profile.WeightDance*cost.Dance
	if math.Abs(cost.Total-want) > 1e-9 {
		t.Errorf("total = %v, want weighted sum %v", cost.Total, want)
	}
}

func TestScorer_MissingKeyScoresMaximal(t *testing.T) {
	key := domain.MusicalKey{PitchClass: 0, Mode: domain.ModeMajor}
	keyed := domain.Track{ID: "keyed", BPM: 120, Key: &key, Energy: f(0.5), Danceability: f(0.5)}
	unkeyed := domain.Track{ID: "unkeyed", BPM: 121, Energy: f(0.5), Danceability: f(0.5)}

	scorer := NewScorer(mustProfile(t, domain.StyleSmooth), Normalize([]domain.Track{keyed, unkeyed}))
	cost := scorer.Cost(keyed, unkeyed)

	if cost.Key != 1 {
		t.Errorf("key cost = %v, want 1 for a missing key", cost.Key)
	}
}
