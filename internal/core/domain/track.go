package domain

// Track represents a catalog track in the domain layer. A BPM of zero or less
// means the catalog did not report a tempo; Key, Energy and Danceability are
// nil when unreported.
type Track struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Artist       string      `json:"artist"`
	DurationMs   int         `json:"duration_ms"`
	BPM          float64     `json:"bpm,omitempty"`
	Key          *MusicalKey `json:"key,omitempty"`
	Energy       *float64    `json:"energy,omitempty"`
	Danceability *float64    `json:"danceability,omitempty"`
	Permalink    string      `json:"permalink,omitempty"`
	PreviewURL   string      `json:"-"`
}

// HasBPM reports whether the catalog supplied a usable tempo.
func (t Track) HasBPM() bool {
	return t.BPM > 0
}

// HasKey reports whether the catalog supplied a key signature.
func (t Track) HasKey() bool {
	return t.Key != nil
}

// FullyTagged reports whether the track carries the metadata the sequencer
// needs to score transitions with confidence: tempo and key both present.
func (t Track) FullyTagged() bool {
	return t.HasBPM() && t.HasKey()
}
