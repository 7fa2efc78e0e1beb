package domain

import (
	"fmt"
	"strings"
)

// Mode is the tonality of a musical key.
type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
)

// NumModes is the number of modes a MusicalKey can take.
const NumModes = 2

// MusicalKey identifies one of the 24 western keys by pitch class (0 = C,
// 1 = C#, ... 11 = B) and mode.
type MusicalKey struct {
	PitchClass int
	Mode       Mode
}

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// String renders the key in the familiar chart notation, e.g. "F#" for F
// sharp major and "Am" for A minor.
func (k MusicalKey) String() string {
	name := pitchNames[((k.PitchClass%12)+12)%12]
	if k.Mode == ModeMinor {
		return name + "m"
	}
	return name
}

// MarshalText lets keys serialize as their chart notation.
func (k MusicalKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the chart notation produced by String.
func (k *MusicalKey) UnmarshalText(text []byte) error {
	name := string(text)
	mode := ModeMajor
	if n, ok := strings.CutSuffix(name, "m"); ok {
		name = n
		mode = ModeMinor
	}
	for pc, pitch := range pitchNames {
		if pitch == name {
			k.PitchClass = pc
			k.Mode = mode
			return nil
		}
	}
	return fmt.Errorf("domain: unrecognized key %q", string(text))
}

// Valid reports whether the key names one of the 24 real keys.
func (k MusicalKey) Valid() bool {
	return k.PitchClass >= 0 && k.PitchClass < 12 && (k.Mode == ModeMajor || k.Mode == ModeMinor)
}

// Index maps the key onto [0, 24) for table lookups.
func (k MusicalKey) Index() int {
	return k.PitchClass*NumModes + int(k.Mode)
}

// KeyFromIndex is the inverse of Index.
func KeyFromIndex(i int) (MusicalKey, error) {
	if i < 0 || i >= 12*NumModes {
		return MusicalKey{}, fmt.Errorf("domain: key index %d out of range", i)
	}
	return MusicalKey{PitchClass: i / NumModes, Mode: Mode(i % NumModes)}, nil
}
