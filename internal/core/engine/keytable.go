package engine

import "github.com/wvaughn-dev/setforge/internal/core/domain"

// Key compatibility is a fixed lookup over the 24x24 key pairs, built once at
// process start. Distances follow harmonic mixing practice: moving along the
// circle of fifths is cheap, jumping across it is not, and swapping mode
// costs a flat penalty unless the two keys are relative major/minor.
const (
	// relativeKeyCost is the cost of a relative major/minor swap
	// (e.g. C major <-> A minor), the cheapest non-identical move.
	relativeKeyCost = 0.1
	// modeShiftPenalty is added when the modes differ and the keys are
	// not a relative pair.
	modeShiftPenalty = 0.25
	// missingKeyCost is charged when either side has no key signature.
	missingKeyCost = 1.0
)

var keyCostTable = buildKeyCostTable()

func buildKeyCostTable() [24][24]float64 {
	var table [24][24]float64
	for i := 0; i < 24; i++ {
		a, _ := domain.KeyFromIndex(i)
		for j := 0; j < 24; j++ {
			b, _ := domain.KeyFromIndex(j)
			table[i][j] = keyCost(a, b)
		}
	}
	return table
}

func keyCost(a, b domain.MusicalKey) float64 {
	if a == b {
		return 0
	}

	// Compare both keys through their relative-major anchor so that a
	// relative pair collapses to distance zero.
	d := fifthsDistance(relativeMajorPitch(a), relativeMajorPitch(b))
	cost := float64(d) / 6.0
	if a.Mode != b.Mode {
		if d == 0 {
			return relativeKeyCost
		}
		cost += modeShiftPenalty
	}
	if cost > 1 {
		return 1
	}
	return cost
}

// relativeMajorPitch maps a key to the pitch class of its relative major:
// minor keys sit three semitones below their relative major.
func relativeMajorPitch(k domain.MusicalKey) int {
	if k.Mode == domain.ModeMinor {
		return (k.PitchClass + 3) % 12
	}
	return k.PitchClass
}

// fifthsDistance is the circular distance between two pitch classes on the
// circle of fifths, in [0, 6].
func fifthsDistance(a, b int) int {
	posA := a * 7 % 12
	posB := b * 7 % 12
	d := posA - posB
	if d < 0 {
		d = -d
	}
	if d > 6 {
		d = 12 - d
	}
	return d
}

// KeyCost returns the compatibility cost between two keys. Either side
// missing scores the maximum: an unknown key cannot be trusted to blend.
func KeyCost(a, b *domain.MusicalKey) float64 {
	if a == nil || b == nil {
		return missingKeyCost
	}
	return keyCostTable[a.Index()][b.Index()]
}
