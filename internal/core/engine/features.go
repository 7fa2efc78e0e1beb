// Package engine holds the pure sequencing core: feature normalization,
// transition scoring, greedy path construction and playlist assembly. It
// performs no I/O and keeps no state across calls.
package engine

import "github.com/wvaughn-dev/setforge/internal/core/domain"

// FeatureVector is a track projected into the comparable feature space. BPM
// is min-max scaled against the pool it was normalized with; energy and
// danceability are clamped to [0,1]; the key passes through raw because key
// compatibility is categorical, not linear.
type FeatureVector struct {
	BPM    float64
	RawBPM float64
	Key    *domain.MusicalKey
	Energy float64
	Dance  float64

	ImputedBPM    bool
	ImputedEnergy bool
	ImputedDance  bool
}

// Imputed reports whether any component was estimated rather than measured.
func (v FeatureVector) Imputed() bool {
	return v.ImputedBPM || v.ImputedEnergy || v.ImputedDance
}

// imputeCenter is the fallback when not a single track in the pool carries a
// field: the center of the [0,1] range.
const imputeCenter = 0.5

// Normalize projects every track into the feature space, scaling BPM against
// the observed range of this pool and imputing missing numerics with the
// pool mean. A field absent from the whole pool imputes the range center and
// flags every vector. The result maps track ID to vector.
func Normalize(tracks []domain.Track) map[string]FeatureVector {
	vectors := make(map[string]FeatureVector, len(tracks))
	if len(tracks) == 0 {
		return vectors
	}

	var (
		minBPM, maxBPM, sumBPM float64
		bpmCount               int
		sumEnergy              float64
		energyCount            int
		sumDance               float64
		danceCount             int
	)
	for _, t := range tracks {
		if t.HasBPM() {
			if bpmCount == 0 || t.BPM < minBPM {
				minBPM = t.BPM
			}
			if bpmCount == 0 || t.BPM > maxBPM {
				maxBPM = t.BPM
			}
			sumBPM += t.BPM
			bpmCount++
		}
		if t.Energy != nil {
			sumEnergy += clamp01(*t.Energy)
			energyCount++
		}
		if t.Danceability != nil {
			sumDance += clamp01(*t.Danceability)
			danceCount++
		}
	}

	meanBPM := 0.0
	if bpmCount > 0 {
		meanBPM = sumBPM / float64(bpmCount)
	}
	meanEnergy := imputeCenter
	if energyCount > 0 {
		meanEnergy = sumEnergy / float64(energyCount)
	}
	meanDance := imputeCenter
	if danceCount > 0 {
		meanDance = sumDance / float64(danceCount)
	}

	scaleBPM := func(bpm float64) float64 {
		if maxBPM <= minBPM {
			// A single-tempo pool gives the metric nothing to
			// discriminate on; park everyone at the midpoint.
			return imputeCenter
		}
		return (bpm - minBPM) / (maxBPM - minBPM)
	}

	for _, t := range tracks {
		v := FeatureVector{Key: t.Key}

		switch {
		case t.HasBPM():
			v.RawBPM = t.BPM
			v.BPM = scaleBPM(t.BPM)
		case bpmCount > 0:
			v.RawBPM = meanBPM
			v.BPM = scaleBPM(meanBPM)
			v.ImputedBPM = true
		default:
			v.BPM = imputeCenter
			v.ImputedBPM = true
		}

		if t.Energy != nil {
			v.Energy = clamp01(*t.Energy)
		} else {
			v.Energy = meanEnergy
			v.ImputedEnergy = true
		}

		if t.Danceability != nil {
			v.Dance = clamp01(*t.Danceability)
		} else {
			v.Dance = meanDance
			v.ImputedDance = true
		}

		vectors[t.ID] = v
	}

	return vectors
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
