package engine

import (
	"math"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

// doubleTimeTolerance is how far (as a fraction) two raw tempos may sit from
// an exact 2:1 ratio and still count as a harmonic tempo match. DJs mix at
// double or half time routinely, so 85 -> 170 BPM is not a tempo clash.
const doubleTimeTolerance = 0.04

// Scorer computes pairwise transition costs over a normalized pool under one
// style profile.
type Scorer struct {
	profile  domain.StyleProfile
	features map[string]FeatureVector
}

// NewScorer builds a scorer for the given profile and feature space.
func NewScorer(profile domain.StyleProfile, features map[string]FeatureVector) *Scorer {
	return &Scorer{profile: profile, features: features}
}

// Cost scores the transition a -> b. The base metric is symmetric; the one
// deliberate asymmetry is the style's energy-drop penalty, which makes a
// quieter next track cost more under styles that build energy.
func (s *Scorer) Cost(a, b domain.Track) domain.TransitionCost {
	fa := s.features[a.ID]
	fb := s.features[b.ID]

	bpmCost := math.Abs(fa.BPM - fb.BPM)
	if harmonicTempo(a.BPM, b.BPM) {
		bpmCost = 0
	}

	keyCost := KeyCost(a.Key, b.Key)

	energyCost := math.Abs(fa.Energy - fb.Energy)
	if fb.Energy < fa.Energy {
		energyCost *= s.profile.EnergyDropPenalty
	}

	danceCost := math.Abs(fa.Dance - fb.Dance)

	return domain.TransitionCost{
		BPM:    bpmCost,
		Key:    keyCost,
		Energy: energyCost,
		Dance:  danceCost,
		Total: s.profile.WeightBPM*bpmCost +
			s.profile.WeightKey*keyCost +
			s.profile.WeightEnergy*energyCost +
			s.profile.WeightDance*danceCost,
	}
}

// harmonicTempo reports whether two raw tempos sit within tolerance of a 2:1
// ratio. Tracks without a reported tempo never qualify.
func harmonicTempo(a, b float64) bool {
	if a <= 0 || b <= 0 {
		return false
	}
	hi, lo := a, b
	if hi < lo {
		hi, lo = lo, hi
	}
	ratio := hi / lo
	return ratio >= 2*(1-doubleTimeTolerance) && ratio <= 2*(1+doubleTimeTolerance)
}
