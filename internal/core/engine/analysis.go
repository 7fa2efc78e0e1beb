package engine

import "github.com/wvaughn-dev/setforge/internal/core/domain"

// Sonic cluster labels, from mellow to driving.
const (
	ClusterAmbient   = "ambient"
	ClusterDowntempo = "downtempo"
	ClusterGroovy    = "groovy"
	ClusterEnergetic = "energetic"
)

// Tempo band used to fold BPM into the sonic signature. Values outside it
// clamp to the edges.
const (
	signatureTempoFloor   = 70.0
	signatureTempoCeiling = 180.0
)

// TrackAnalysis is the derived read on a single track's character.
type TrackAnalysis struct {
	Track          domain.Track `json:"track"`
	SonicSignature float64      `json:"sonic_signature"`
	SonicCluster   string       `json:"sonic_cluster"`
	Estimated      bool         `json:"estimated"`
}

// AnalyzeTrack blends a track's features into a single sonic signature and
// classifies it into a coarse cluster. Missing features fall back to the
// range center and mark the analysis as estimated.
func AnalyzeTrack(t domain.Track) TrackAnalysis {
	estimated := false

	energy := imputeCenter
	if t.Energy != nil {
		energy = clamp01(*t.Energy)
	} else {
		estimated = true
	}

	dance := imputeCenter
	if t.Danceability != nil {
		dance = clamp01(*t.Danceability)
	} else {
		estimated = true
	}

	tempo := imputeCenter
	if t.HasBPM() {
		tempo = clamp01((t.BPM - signatureTempoFloor) / (signatureTempoCeiling - signatureTempoFloor))
	} else {
		estimated = true
	}

	signature := 0.4*energy + 0.35*dance + 0.25*tempo

	return TrackAnalysis{
		Track:          t,
		SonicSignature: signature,
		SonicCluster:   classifySignature(signature),
		Estimated:      estimated,
	}
}

func classifySignature(signature float64) string {
	switch {
	case signature < 0.3:
		return ClusterAmbient
	case signature < 0.5:
		return ClusterDowntempo
	case signature < 0.7:
		return ClusterGroovy
	default:
		return ClusterEnergetic
	}
}
