package domain

import "errors"

var (
	// ErrNoSeeds means generation was requested without a single seed track.
	ErrNoSeeds = errors.New("domain: no seed tracks supplied")

	// ErrInvalidDuration means the requested set length is not positive.
	ErrInvalidDuration = errors.New("domain: target duration must be positive")

	// ErrUnknownStyle means the requested style is not one of the presets.
	ErrUnknownStyle = errors.New("domain: unknown transition style")

	// ErrEmptyPool means no candidate survived filtering across all seeds,
	// leaving nothing to sequence.
	ErrEmptyPool = errors.New("domain: candidate pool is empty")

	// ErrNotFound means the catalog or cache has no record of a track.
	ErrNotFound = errors.New("domain: not found")
)
