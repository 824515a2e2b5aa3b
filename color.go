package drawing

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

// Pixel is one packed surface cell: premultiplied A<<24 | R<<16 | G<<8 | B.
//
// In memory the word is little-endian, so the bytes are B, G, R, A.
// Pixel implements color.Color.
type Pixel uint32

// Transparent is the fully transparent pixel. ColorAt returns it for
// coordinates outside the surface.
const Transparent Pixel = 0

// PackPixel packs premultiplied channels into a Pixel.
func PackPixel(a, r, g, b uint8) Pixel {
	return Pixel(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// R returns the premultiplied red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the premultiplied green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the premultiplied blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// Unpack returns the four channels.
func (p Pixel) Unpack() (a, r, g, b uint8) {
	return p.A(), p.R(), p.G(), p.B()
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R())
	r |= r << 8
	g = uint32(p.G())
	g |= g << 8
	b = uint32(p.B())
	b |= b << 8
	a = uint32(p.A())
	a |= a << 8
	return r, g, b, a
}

// String formats the pixel as #AARRGGBB.
func (p Pixel) String() string {
	return fmt.Sprintf("#%08X", uint32(p))
}

// PixelModel converts any color.Color to a Pixel.
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	return PixelOf(c)
}

// PixelOf converts a color to a Pixel.
func PixelOf(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, a := c.RGBA()
	//nolint:gosec // G115: safe - x>>8 is always in [0, 255]
	return PackPixel(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// loadPixel reads the cell starting at b[0].
func loadPixel(b []byte) Pixel {
	return Pixel(binary.LittleEndian.Uint32(b))
}

// storePixel writes p into the cell starting at b[0].
func storePixel(b []byte, p Pixel) {
	binary.LittleEndian.PutUint32(b, uint32(p))
}

// Hex parses a straight (non-premultiplied) color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
func Hex(hex string) (color.NRGBA, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [8]uint8
	for i := 0; i < len(hex) && i < len(v); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("drawing: invalid hex color %q", hex)
		}
		v[i] = d
	}

	switch len(hex) {
	case 3: // RGB
		return color.NRGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: 255}, nil
	case 4: // RGBA
		return color.NRGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: v[3] * 17}, nil
	case 6: // RRGGBB
		return color.NRGBA{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: 255}, nil
	case 8: // RRGGBBAA
		return color.NRGBA{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: v[6]<<4 | v[7]}, nil
	}
	return color.NRGBA{}, fmt.Errorf("drawing: invalid hex color %q", hex)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
