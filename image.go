package drawing

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync/atomic"

	"github.com/gogpu/drawing/internal/pixbuf"
)

// ColorSpace identifies how color channel values are interpreted.
type ColorSpace uint8

const (
	// ColorSpaceDeviceRGB is the output device's native RGB space.
	ColorSpaceDeviceRGB ColorSpace = iota
)

// AlphaInfo describes where alpha lives in a cell and how it is applied.
type AlphaInfo uint8

const (
	// AlphaPremultipliedFirst: alpha in the most significant byte of the
	// 32-bit cell, color channels already multiplied by alpha.
	AlphaPremultipliedFirst AlphaInfo = iota
)

// ByteOrder is the byte order of a 32-bit cell in memory.
type ByteOrder uint8

const (
	// ByteOrder32Little stores each 32-bit cell least significant byte
	// first.
	ByteOrder32Little ByteOrder = iota
)

// Descriptor describes an exported pixel buffer to consumers that draw it.
type Descriptor struct {
	Width            int // physical pixels
	Height           int // physical pixels
	BitsPerComponent int
	BitsPerPixel     int
	BytesPerRow      int
	ColorSpace       ColorSpace
	AlphaInfo        AlphaInfo
	ByteOrder        ByteOrder
}

// Image is a read-only view of a surface's pixels.
//
// An Image shares the surface's buffer instead of copying it, and holds its
// own reference: the buffer stays valid after the surface is closed, until
// Release. Later drawing on a still-open surface is visible through the
// image. Image implements image.Image with premultiplied Pixel colors.
type Image struct {
	desc     Descriptor
	buf      *pixbuf.Buffer
	pix      []byte
	released atomic.Bool
}

var _ image.Image = (*Image)(nil)

// Image exports the surface contents.
//
// It returns an error wrapping ErrNoImage when the surface is closed or has
// no pixels. The failure is not fatal; the surface stays usable.
func (s *Surface) Image() (*Image, error) {
	if s.closed {
		Logger().Warn("image export refused", "reason", "surface closed")
		return nil, fmt.Errorf("%w: surface closed", ErrNoImage)
	}
	if s.width == 0 || s.height == 0 {
		Logger().Warn("image export refused", "reason", "empty surface",
			"width", s.width, "height", s.height)
		return nil, fmt.Errorf("%w: empty %dx%d surface", ErrNoImage, s.width, s.height)
	}
	if !s.buf.Retain() {
		return nil, fmt.Errorf("%w: buffer released", ErrNoImage)
	}

	return &Image{
		desc: Descriptor{
			Width:            s.width,
			Height:           s.height,
			BitsPerComponent: 8,
			BitsPerPixel:     32,
			BytesPerRow:      s.stride,
			ColorSpace:       ColorSpaceDeviceRGB,
			AlphaInfo:        AlphaPremultipliedFirst,
			ByteOrder:        ByteOrder32Little,
		},
		buf: s.buf,
		pix: s.pix,
	}, nil
}

// Descriptor returns the layout of the image's pixels.
func (m *Image) Descriptor() Descriptor {
	return m.desc
}

// Bytes returns the shared pixel bytes, laid out as described by
// Descriptor. The slice must not be modified. It is nil after Release.
func (m *Image) Bytes() []byte {
	if m.released.Load() {
		return nil
	}
	return m.pix
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return PixelModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.desc.Width, m.desc.Height)
}

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	px, _ := m.PixelAt(x, y)
	return px
}

// PixelAt returns the pixel at (x, y); ok is false outside the image or
// after Release.
func (m *Image) PixelAt(x, y int) (px Pixel, ok bool) {
	pix := m.Bytes()
	if pix == nil || x < 0 || x >= m.desc.Width || y < 0 || y >= m.desc.Height {
		return Transparent, false
	}
	return loadPixel(pix[y*m.desc.BytesPerRow+x*bytesPerPixel:]), true
}

// ToRGBA copies the image into a new *image.RGBA (premultiplied, R G B A
// byte order).
func (m *Image) ToRGBA() (*image.RGBA, error) {
	pix := m.Bytes()
	if pix == nil {
		return nil, ErrReleased
	}
	img := image.NewRGBA(m.Bounds())
	for y := 0; y < m.desc.Height; y++ {
		src := pix[y*m.desc.BytesPerRow:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < m.desc.Width; x++ {
			i := x * bytesPerPixel
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = src[i+3]
		}
	}
	return img, nil
}

// EncodePNG writes the image to w in PNG format.
func (m *Image) EncodePNG(w io.Writer) error {
	img, err := m.ToRGBA()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Release drops the image's reference to the pixel buffer. When neither the
// surface nor any other image holds the buffer, it is recycled.
//
// Release is idempotent; multiple calls are safe.
func (m *Image) Release() {
	if m.released.Swap(true) {
		return
	}
	m.buf.Release()
}
