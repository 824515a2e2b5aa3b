package drawing

import "errors"

// Common errors for surface operations.
var (
	// ErrAllocation is returned by New when the pixel buffer cannot be
	// obtained. No surface is produced.
	ErrAllocation = errors.New("drawing: cannot allocate pixel buffer")

	// ErrNoImage is returned by Surface.Image when no image can be built,
	// for example from a closed or zero-area surface.
	ErrNoImage = errors.New("drawing: image unavailable")

	// ErrReleased is returned when reading from an Image after Release.
	ErrReleased = errors.New("drawing: image released")
)
