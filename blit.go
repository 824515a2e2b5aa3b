package drawing

import (
	"math"

	"github.com/gogpu/drawing/internal/blend"
)

// BlitMode selects how Blit combines source and destination pixels.
type BlitMode uint8

const (
	// BlitAlpha masks the destination with the source's alpha channel:
	// every covered destination pixel has its color channels multiplied by
	// the source alpha / 255 (truncating) and its alpha replaced by the
	// source alpha. The source's color channels are not used.
	BlitAlpha BlitMode = iota
)

// String returns the mode name.
func (m BlitMode) String() string {
	switch m {
	case BlitAlpha:
		return "Alpha"
	}
	return "Unknown"
}

// scaleEpsilon is the largest scale difference Blit tolerates
// (single-precision machine epsilon).
const scaleEpsilon = 1.1920929e-07

// Blit composites src onto s with src's top-left corner at the logical
// point at.
//
// The surfaces must share a scale (within scaleEpsilon); otherwise Blit
// does nothing. The offset is at times the scale, truncated toward zero.
// The affected region is clipped to both surfaces: Blit never reads
// outside src and never writes outside s. Nil or closed surfaces and
// unknown modes are ignored.
func (s *Surface) Blit(src *Surface, at Point, mode BlitMode) {
	if s.closed || src == nil || src.closed {
		return
	}
	if mode != BlitAlpha {
		return
	}
	if math.Abs(src.scale-s.scale) >= scaleEpsilon {
		Logger().Debug("blit skipped: scale mismatch", "dst", s.scale, "src", src.scale)
		return
	}
	if math.IsNaN(at.X) || math.IsNaN(at.Y) {
		return
	}

	d := at.Mul(s.scale)
	dstX, dstY := truncCoord(d.X), truncCoord(d.Y)
	srcX, srcY := 0, 0
	if dstX < 0 {
		srcX, dstX = -dstX, 0
	}
	if dstY < 0 {
		srcY, dstY = -dstY, 0
	}

	width := min(s.width-dstX, src.width-srcX)
	height := min(s.height-dstY, src.height-srcY)
	if width <= 0 || height <= 0 {
		return
	}

	n := width * bytesPerPixel
	for y := 0; y < height; y++ {
		di := (dstY+y)*s.stride + dstX*bytesPerPixel
		si := (srcY+y)*src.stride + srcX*bytesPerPixel
		blend.AlphaMaskRow(s.pix[di:di+n], src.pix[si:si+n])
	}
}
