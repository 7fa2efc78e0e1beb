package domain

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestPlaylist_AnalyzeEnergyFlow(t *testing.T) {
	tests := []struct {
		name     string
		tracks   []Track
		expected EnergyFlow
		wantZero bool
	}{
		{
			name:     "returns zero values for empty playlist",
			tracks:   []Track{},
			wantZero: true,
		},
		{
			name: "returns zero values when no track has energy",
			tracks: []Track{
				{ID: "t1"},
				{ID: "t2"},
			},
			wantZero: true,
		},
		{
			name: "computes flow statistics",
			tracks: []Track{
				{ID: "t1", Energy: f(0.2)},
				{ID: "t2", Energy: f(0.6)},
				{ID: "t3", Energy: f(0.4)},
			},
			expected: EnergyFlow{
				AvgEnergy:       0.4,
				EnergyVariance:  (0.04 + 0.04 + 0.0) / 3,
				AvgEnergyChange: (0.4 + 0.2) / 2,
				MaxEnergy:       0.6,
				MinEnergy:       0.2,
			},
		},
		{
			name: "skips tracks without an energy reading",
			tracks: []Track{
				{ID: "t1", Energy: f(0.5)},
				{ID: "t2"},
				{ID: "t3", Energy: f(0.5)},
			},
			expected: EnergyFlow{
				AvgEnergy: 0.5,
				MaxEnergy: 0.5,
				MinEnergy: 0.5,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := Playlist{ID: "pl-1", Tracks: tc.tracks}
			got := p.AnalyzeEnergyFlow()

			if tc.wantZero {
				if got != (EnergyFlow{}) {
					t.Fatalf("expected zero values, got %+v", got)
				}
				return
			}

			if !flowEquals(got, tc.expected, 1e-9) {
				t.Fatalf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func flowEquals(a, b EnergyFlow, tol float64) bool {
	return math.Abs(a.AvgEnergy-b.AvgEnergy) <= tol &&
		math.Abs(a.EnergyVariance-b.EnergyVariance) <= tol &&
		math.Abs(a.AvgEnergyChange-b.AvgEnergyChange) <= tol &&
		math.Abs(a.MaxEnergy-b.MaxEnergy) <= tol &&
		math.Abs(a.MinEnergy-b.MinEnergy) <= tol
}
