package blend

// Bytes per packed cell and channel offsets inside a little-endian cell.
const (
	cellSize = 4

	offB = 0
	offG = 1
	offR = 2
	offA = 3
)

// AlphaMaskRow applies the alpha-mask blit to one row.
//
// For every cell pair, with α the alpha of the src cell:
//
//	dst.R = dst.R * α / 255
//	dst.G = dst.G * α / 255
//	dst.B = dst.B * α / 255
//	dst.A = α
//
// The color channels of src are ignored. Divisions truncate.
// Only whole cells present in both slices are processed.
func AlphaMaskRow(dst, src []byte) {
	n := min(len(dst), len(src)) / cellSize * cellSize
	dst = dst[:n]
	src = src[:n]
	for i := 0; i < n; i += cellSize {
		a := src[i+offA]
		dst[i+offB] = mulDiv255(dst[i+offB], a)
		dst[i+offG] = mulDiv255(dst[i+offG], a)
		dst[i+offR] = mulDiv255(dst[i+offR], a)
		dst[i+offA] = a
	}
}

// FillRow writes the same cell into every whole cell of row.
func FillRow(row []byte, a, r, g, b byte) {
	n := len(row) / cellSize * cellSize
	for i := 0; i < n; i += cellSize {
		row[i+offB] = b
		row[i+offG] = g
		row[i+offR] = r
		row[i+offA] = a
	}
}
