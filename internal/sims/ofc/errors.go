package ofc

import "errors"

var (
	// ErrInvalidConfig marks a configuration rejected before a run starts.
	ErrInvalidConfig = errors.New("ofc: invalid config")
	// ErrOutOfBounds marks a coordinate outside the grid.
	ErrOutOfBounds = errors.New("ofc: cell out of bounds")
	// ErrNotStabilized marks a relaxation that hit its sweep limit.
	ErrNotStabilized = errors.New("ofc: grid did not stabilize")
)
