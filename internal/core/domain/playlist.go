package domain

import "math"

// TransitionCost is the scored compatibility of moving from one track to the
// next, with its per-component breakdown. Lower is better.
type TransitionCost struct {
	Total  float64 `json:"total"`
	BPM    float64 `json:"bpm_cost"`
	Key    float64 `json:"key_cost"`
	Energy float64 `json:"energy_cost"`
	Dance  float64 `json:"dance_cost"`
}

// Transition records the cost of one adjacent pair in a generated set.
type Transition struct {
	FromID string         `json:"from_id"`
	ToID   string         `json:"to_id"`
	Cost   TransitionCost `json:"cost"`
}

// Playlist is the generated set. Track order is playback order. Immutable
// once assembled.
type Playlist struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Tracks          []Track      `json:"tracks"`
	Transitions     []Transition `json:"transitions,omitempty"`
	DurationSeconds float64      `json:"duration_seconds"`
	Style           Style        `json:"style"`
	TrackCount      int          `json:"track_count"`
}

// Diagnostics carries the non-fatal conditions observed while generating a
// playlist. The caller decides which to surface; none of them invalidate the
// result.
type Diagnostics struct {
	// ImputedTrackIDs lists tracks whose transitions were scored on
	// estimated rather than measured metadata.
	ImputedTrackIDs []string `json:"imputed_track_ids,omitempty"`
	// Shortfall is set when the pool ran out before the target duration
	// was reached.
	Shortfall bool `json:"shortfall,omitempty"`
	// FailedSeeds lists seeds whose related-track lookups yielded nothing.
	FailedSeeds []string `json:"failed_seeds,omitempty"`
	// PoolSize is the candidate count the sequencer chose from.
	PoolSize int `json:"pool_size"`
}

// EnergyFlow summarizes how energy moves across a playlist, for callers that
// visualize the arc of a set. Tracks without an energy reading are skipped.
type EnergyFlow struct {
	AvgEnergy       float64 `json:"avg_energy"`
	EnergyVariance  float64 `json:"energy_variance"`
	AvgEnergyChange float64 `json:"avg_energy_change"`
	MaxEnergy       float64 `json:"max_energy"`
	MinEnergy       float64 `json:"min_energy"`
}

// AnalyzeEnergyFlow computes the energy statistics of the playlist. An empty
// playlist (or one with no energy readings at all) yields the zero value.
func (p Playlist) AnalyzeEnergyFlow() EnergyFlow {
	var values []float64
	for _, t := range p.Tracks {
		if t.Energy != nil {
			values = append(values, *t.Energy)
		}
	}
	if len(values) == 0 {
		return EnergyFlow{}
	}

	flow := EnergyFlow{MinEnergy: math.Inf(1), MaxEnergy: math.Inf(-1)}
	var sum float64
	for _, v := range values {
		sum += v
		flow.MinEnergy = math.Min(flow.MinEnergy, v)
		flow.MaxEnergy = math.Max(flow.MaxEnergy, v)
	}
	flow.AvgEnergy = sum / float64(len(values))

	var sumSq float64
	for _, v := range values {
		d := v - flow.AvgEnergy
		sumSq += d * d
	}
	flow.EnergyVariance = sumSq / float64(len(values))

	if len(values) > 1 {
		var changes float64
		for i := 1; i < len(values); i++ {
			changes += math.Abs(values[i] - values[i-1])
		}
		flow.AvgEnergyChange = changes / float64(len(values)-1)
	}

	return flow
}
