package domain

import "fmt"

// Style names a transition style preset.
type Style string

const (
	StyleSmooth    Style = "smooth"
	StyleEnergetic Style = "energetic"
	StyleMinimal   Style = "minimal"
)

// Styles lists every supported preset.
var Styles = []Style{StyleSmooth, StyleEnergetic, StyleMinimal}

// StyleProfile is the weight vector a style applies to the transition cost
// components. Weights sum to 1. EnergyDropPenalty scales the energy cost when
// the next track is quieter than the current one; 1 means drops and rises
// cost the same.
type StyleProfile struct {
	Style             Style
	WeightBPM         float64
	WeightKey         float64
	WeightEnergy      float64
	WeightDance       float64
	EnergyDropPenalty float64
}

var styleProfiles = map[Style]StyleProfile{
	StyleSmooth: {
		Style:             StyleSmooth,
		WeightBPM:         0.4,
		WeightKey:         0.3,
		WeightEnergy:      0.2,
		WeightDance:       0.1,
		EnergyDropPenalty: 1.0,
	},
	StyleEnergetic: {
		Style:             StyleEnergetic,
		WeightBPM:         0.2,
		WeightKey:         0.2,
		WeightEnergy:      0.5,
		WeightDance:       0.1,
		EnergyDropPenalty: 1.5,
	},
	StyleMinimal: {
		Style:             StyleMinimal,
		WeightBPM:         0.5,
		WeightKey:         0.3,
		WeightEnergy:      0.1,
		WeightDance:       0.1,
		EnergyDropPenalty: 1.0,
	},
}

// ProfileFor resolves a style name to its preset profile.
func ProfileFor(style Style) (StyleProfile, error) {
	profile, ok := styleProfiles[style]
	if !ok {
		return StyleProfile{}, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return profile, nil
}
