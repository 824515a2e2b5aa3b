package drawing

import (
	"image"
	"image/color"
	"image/draw"
)

// target exposes a surface's pixels as a draw.Image in device coordinates.
// Colors read and written are premultiplied.
type target struct {
	s *Surface
}

var (
	_ draw.Image        = target{}
	_ draw.RGBA64Image = target{}
)

func (t target) ColorModel() color.Model {
	return PixelModel
}

func (t target) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.s.width, t.s.height)
}

func (t target) At(x, y int) color.Color {
	px, _ := t.s.PixelAt(x, y)
	return px
}

func (t target) Set(x, y int, c color.Color) {
	t.s.setPixel(x, y, PixelOf(c))
}

func (t target) RGBA64At(x, y int) color.RGBA64 {
	px, _ := t.s.PixelAt(x, y)
	r, g, b, a := px.RGBA()
	//nolint:gosec // G115: safe - channels are at most 0xffff
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

func (t target) SetRGBA64(x, y int, c color.RGBA64) {
	//nolint:gosec // G115: safe - x>>8 is always in [0, 255]
	t.s.setPixel(x, y, PackPixel(uint8(c.A>>8), uint8(c.R>>8), uint8(c.G>>8), uint8(c.B>>8)))
}
