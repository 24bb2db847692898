package life

import "errors"

var (
	// ErrInvalidSize is returned for non-positive board dimensions.
	ErrInvalidSize = errors.New("size invalid")
	// ErrInvalidKeepTrack is returned for a non-positive history capacity.
	ErrInvalidKeepTrack = errors.New("keep track must be positive")
	// ErrMalformedSnapshot marks snapshots with inconsistent dimensions or
	// out-of-range coordinates.
	ErrMalformedSnapshot = errors.New("snapshot invalid")
	// ErrPatternBounds is returned when a pattern does not fit on the board.
	ErrPatternBounds = errors.New("pattern does not fit")
)
