package drawing

import (
	"fmt"

	"github.com/gogpu/drawing/internal/pixbuf"
)

// Buffer pool limits: idle buffers per byte length and idle bytes overall.
const (
	maxPooledPerSize = 8
	maxPooledBytes   = 64 << 20
)

// bufferPool recycles pixel storage between surfaces of equal byte length.
var bufferPool = pixbuf.NewPool(maxPooledPerSize, maxPooledBytes)

// TrimBufferPool drops every idle pixel buffer kept for reuse and returns
// the number of bytes freed. Surfaces and images in use are unaffected.
//
// Call it after rendering a batch of unusually sized surfaces that will not
// be needed again.
func TrimBufferPool() int {
	n := bufferPool.Trim()
	Logger().Debug("buffer pool trimmed", "bytes", n)
	return n
}

// Surface is an off-screen, device-scaled pixel buffer.
//
// The buffer holds Height() rows of Width() cells, Stride() bytes apart.
// Each cell is a premultiplied, little-endian A<<24 | R<<16 | G<<8 | B word
// (see Pixel). Logical coordinates are multiplied by Scale() to reach
// device pixels; the origin is the top-left corner and y grows downward.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used. In particular the
// first WithSink call binds the canvas and must not race with another.
type Surface struct {
	size   Size
	scale  float64
	width  int // physical
	height int // physical
	stride int

	buf *pixbuf.Buffer
	pix []byte

	// canvas is nil until the first WithSink call, then bound for the
	// lifetime of the surface.
	canvas *Canvas

	closed bool
}

// New creates a surface of the given logical size.
//
// The physical size is the logical size times the scale, each dimension
// truncated to an integer. Negative or NaN sizes count as zero. If the
// buffer cannot be obtained New returns an error wrapping ErrAllocation
// and no surface.
func New(size Size, opts ...SurfaceOption) (*Surface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	size = size.sanitize()

	w, err := physicalExtent(size.Width, o.scale)
	if err != nil {
		return nil, allocationError(size, o.scale, err)
	}
	h, err := physicalExtent(size.Height, o.scale)
	if err != nil {
		return nil, allocationError(size, o.scale, err)
	}

	stride := RowStride(w)
	n, err := pixbuf.ByteLen(stride, h)
	if err != nil {
		return nil, allocationError(size, o.scale, err)
	}
	buf, err := bufferPool.Get(n, o.clear)
	if err != nil {
		return nil, allocationError(size, o.scale, err)
	}

	Logger().Debug("surface allocated",
		"width", w, "height", h, "stride", stride, "bytes", n, "cleared", o.clear)

	return &Surface{
		size:   size,
		scale:  o.scale,
		width:  w,
		height: h,
		stride: stride,
		buf:    buf,
		pix:    buf.Bytes(),
	}, nil
}

func allocationError(size Size, scale float64, err error) error {
	Logger().Warn("surface allocation failed",
		"width", size.Width, "height", size.Height, "scale", scale, "err", err)
	return fmt.Errorf("%w: %.0fx%.0f at scale %g: %w", ErrAllocation, size.Width, size.Height, scale, err)
}

// Size returns the logical size.
func (s *Surface) Size() Size {
	return s.size
}

// Scale returns the device scale.
func (s *Surface) Scale() float64 {
	return s.scale
}

// Width returns the physical width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the physical height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the number of bytes between the starts of two rows.
func (s *Surface) Stride() int {
	return s.stride
}

// Len returns the size of the pixel buffer in bytes.
func (s *Surface) Len() int {
	return s.stride * s.height
}

// WithSink calls fn with the surface's drawing canvas.
//
// The canvas is created on the first call, with the device scale applied,
// and the same canvas is passed to every later call; it is never rebound or
// rescaled. Nothing needs to be torn down when fn returns. On a closed
// surface fn is not called.
func (s *Surface) WithSink(fn func(c *Canvas)) {
	if s.closed {
		return
	}
	if s.canvas == nil {
		s.canvas = newCanvas(s)
		Logger().Debug("canvas bound", "width", s.width, "height", s.height, "scale", s.scale)
	}
	fn(s.canvas)
}

// ColorAt returns the pixel under the logical point p, found by flooring
// p times the scale. Points outside the surface (including NaN) yield
// Transparent.
func (s *Surface) ColorAt(p Point) Pixel {
	d := p.Mul(s.scale)
	px, _ := s.PixelAt(floorCoord(d.X), floorCoord(d.Y))
	return px
}

// PixelAt returns the pixel at physical coordinates (x, y). ok is false,
// and the pixel Transparent, when (x, y) is outside the surface.
func (s *Surface) PixelAt(x, y int) (px Pixel, ok bool) {
	i, ok := s.offset(x, y)
	if !ok {
		return Transparent, false
	}
	return loadPixel(s.pix[i:]), true
}

// setPixel stores px at physical coordinates (x, y) if they are inside.
func (s *Surface) setPixel(x, y int, px Pixel) {
	if i, ok := s.offset(x, y); ok {
		storePixel(s.pix[i:], px)
	}
}

// offset returns the byte index of cell (x, y).
func (s *Surface) offset(x, y int) (int, bool) {
	if s.closed || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.stride + x*bytesPerPixel, true
}

// row returns the cells of row y, excluding stride padding.
func (s *Surface) row(y int) []byte {
	i := y * s.stride
	return s.pix[i : i+s.width*bytesPerPixel]
}

// Close releases the surface's hold on its pixel buffer. Images exported
// earlier keep the buffer alive until they are released too. After Close,
// drawing, blitting and reads are no-ops.
//
// Close is idempotent; multiple calls are safe.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.pix = nil
	last := s.buf.Release()
	Logger().Debug("surface closed", "bytes", s.buf.Len(), "recycled", last)
	return nil
}
