// Package blend provides the integer compositing kernels used by the
// drawing surface.
//
// All kernels operate on rows of packed 32-bit little-endian cells
// (A<<24 | R<<16 | G<<8 | B), so a cell occupies the bytes B, G, R, A in
// memory.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. For every product of two bytes
// (0..255*255) it equals the truncating quotient x / 255.
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255, truncating.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}
