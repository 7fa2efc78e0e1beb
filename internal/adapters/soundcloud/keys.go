package soundcloud

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wvaughn-dev/setforge/internal/core/domain"
)

// Uploaders tag keys in several notations; we accept chart notation
// ("F#", "Am", "C maj", "Eb minor") and the Camelot wheel codes DJs use
// ("8A", "12B"). Anything else maps to no key rather than a guess.
var (
	camelotKeyRe = regexp.MustCompile(`^(\d{1,2})\s*([ABab])$`)
	chartKeyRe   = regexp.MustCompile(`^([A-Ga-g])([#b♯♭]?)\s*(maj|major|min|minor|m)?$`)
)

var pitchBases = map[string]int{
	"c": 0, "d": 2, "e": 4, "f": 5, "g": 7, "a": 9, "b": 11,
}

// parseKeySignature parses a catalog key tag into a MusicalKey. The second
// return is false when the tag is empty or unrecognized.
func parseKeySignature(raw string) (domain.MusicalKey, bool) {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return domain.MusicalKey{}, false
	}

	if m := camelotKeyRe.FindStringSubmatch(tag); m != nil {
		return parseCamelot(m[1], m[2])
	}
	if m := chartKeyRe.FindStringSubmatch(tag); m != nil {
		return parseChart(m[1], m[2], m[3])
	}
	return domain.MusicalKey{}, false
}

// parseCamelot maps a Camelot code to its key: 8B is C major, each step up
// the wheel moves a fifth, and nA is the relative minor of nB.
func parseCamelot(number, letter string) (domain.MusicalKey, bool) {
	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > 12 {
		return domain.MusicalKey{}, false
	}

	majorPitch := ((n - 8) * 7 % 12 + 12) % 12
	if strings.EqualFold(letter, "B") {
		return domain.MusicalKey{PitchClass: majorPitch, Mode: domain.ModeMajor}, true
	}
	return domain.MusicalKey{PitchClass: (majorPitch + 9) % 12, Mode: domain.ModeMinor}, true
}

func parseChart(note, accidental, quality string) (domain.MusicalKey, bool) {
	pitch, ok := pitchBases[strings.ToLower(note)]
	if !ok {
		return domain.MusicalKey{}, false
	}
	switch accidental {
	case "#", "♯":
		pitch = (pitch + 1) % 12
	case "b", "♭":
		pitch = (pitch + 11) % 12
	}

	mode := domain.ModeMajor
	switch strings.ToLower(quality) {
	case "m", "min", "minor":
		mode = domain.ModeMinor
	}
	return domain.MusicalKey{PitchClass: pitch, Mode: mode}, true
}
