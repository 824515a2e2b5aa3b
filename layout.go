package drawing

import (
	"math"

	"github.com/gogpu/drawing/internal/pixbuf"
)

// Cell and row geometry.
const (
	bytesPerPixel = 4
	rowAlign      = 16

	// maxPhysicalDim bounds each physical dimension before conversion to int.
	maxPhysicalDim = 1 << 28
)

// RowStride returns the byte distance between consecutive rows of a buffer
// that is physicalWidth pixels wide: 4 bytes per pixel, rounded up to a
// multiple of 16.
func RowStride(physicalWidth int) int {
	if physicalWidth <= 0 {
		return 0
	}
	return (bytesPerPixel*physicalWidth + rowAlign - 1) &^ (rowAlign - 1)
}

// physicalExtent converts a logical length to whole device pixels,
// truncating toward zero.
func physicalExtent(logical, scale float64) (int, error) {
	v := logical * scale
	if math.IsNaN(v) || v < 0 {
		return 0, nil
	}
	if v >= maxPhysicalDim {
		return 0, pixbuf.ErrTooLarge
	}
	return int(v), nil
}

// truncCoord converts a device coordinate to an int, truncating toward zero
// and saturating far outside any surface. NaN maps off-surface.
func truncCoord(v float64) int {
	switch {
	case math.IsNaN(v):
		return -maxPhysicalDim
	case v >= maxPhysicalDim:
		return maxPhysicalDim
	case v <= -maxPhysicalDim:
		return -maxPhysicalDim
	}
	return int(v)
}

// floorCoord is like truncCoord but rounds toward negative infinity.
func floorCoord(v float64) int {
	return truncCoord(math.Floor(v))
}

// ceilCoord is like truncCoord but rounds toward positive infinity.
func ceilCoord(v float64) int {
	return truncCoord(math.Ceil(v))
}
