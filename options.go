package drawing

import "math"

// DefaultScale is the device scale used when none is given: two physical
// pixels per logical unit.
const DefaultScale = 2.0

// SurfaceOption configures a Surface during creation.
// Use functional options to customize Surface behavior.
//
// Example:
//
//	// Default: scale 2, contents not cleared
//	s, err := drawing.New(drawing.Sz(32, 32))
//
//	// Scale 1, cleared to transparent
//	s, err := drawing.New(drawing.Sz(32, 32), drawing.WithScale(1), drawing.WithClear(true))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	scale float64
	clear bool
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		scale: DefaultScale,
		clear: false,
	}
}

// WithScale sets the device scale (physical pixels per logical unit).
// Non-positive, NaN and infinite values leave the default in place.
func WithScale(scale float64) SurfaceOption {
	return func(o *surfaceOptions) {
		if scale > 0 && !math.IsInf(scale, 0) {
			o.scale = scale
		}
	}
}

// WithClear requests that the pixel buffer be cleared to transparent.
//
// Without it the initial contents are unspecified: fresh memory is zero,
// but a buffer recycled from a released surface keeps its old pixels.
func WithClear(clear bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.clear = clear
	}
}
