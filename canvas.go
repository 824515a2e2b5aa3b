package drawing

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/drawing/internal/blend"
	"github.com/gogpu/drawing/svgpath"
)

// Canvas is the vector drawing target bound to a Surface.
//
// Coordinates passed to a Canvas are in user space. The user transform
// (identity at binding time, changed with Translate and Transform) maps them
// to logical units, and the device scale fixed at binding time maps those to
// device pixels. Points are transformed as they are added, so changing the
// transform does not move path segments already added. A Canvas
// accumulates a path with MoveTo, LineTo and CubicTo, and Fill paints it with
// the current color using anti-aliased non-zero coverage and source-over
// compositing, then starts a new path.
//
// Canvas implements svgpath.Sink. It is obtained from Surface.WithSink and
// shares the surface's thread-safety rules.
type Canvas struct {
	s     *Surface
	base  Matrix // device scale
	user  Matrix
	ctm   Matrix // base * user
	ras   *vector.Rasterizer
	color Pixel
	src   *image.Uniform

	// path holds the pending path in device coordinates.
	path []svgpath.Command
	// start is the device position of the current subpath's MoveTo.
	start svgpath.Point
}

var _ svgpath.Sink = (*Canvas)(nil)

func newCanvas(s *Surface) *Canvas {
	c := &Canvas{
		s:    s,
		base: Scale(s.scale, s.scale),
		ras:  vector.NewRasterizer(s.width, s.height),
	}
	c.ResetTransform()
	c.ras.DrawOp = draw.Over
	c.SetColor(color.Black)
	return c
}

// Matrix returns the user-to-device transform: the device scale applied
// after the user transform.
func (c *Canvas) Matrix() Matrix {
	return c.ctm
}

// Translate moves the user-space origin by (x, y) logical units in the
// current user space.
func (c *Canvas) Translate(x, y float64) {
	c.Transform(Translate(x, y))
}

// Transform applies m before the current user transform. The device scale is
// unaffected.
func (c *Canvas) Transform(m Matrix) {
	c.user = c.user.Multiply(m)
	c.ctm = c.base.Multiply(c.user)
}

// ResetTransform restores the identity user transform.
func (c *Canvas) ResetTransform() {
	c.user = Identity()
	c.ctm = c.base
}

// Transformed reports whether a user transform other than the identity is
// in effect.
func (c *Canvas) Transformed() bool {
	return !c.user.IsIdentity()
}

// SetColor sets the fill color for subsequent Fill, FillRect and Clear calls.
func (c *Canvas) SetColor(col color.Color) {
	c.color = PixelOf(col)
	c.src = image.NewUniform(c.color)
}

// Color returns the current fill color.
func (c *Canvas) Color() Pixel {
	return c.color
}

func (c *Canvas) device(x, y float64) svgpath.Point {
	p := c.ctm.TransformPoint(Pt(x, y))
	return svgpath.Point{X: p.X, Y: p.Y}
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	p := c.device(x, y)
	c.start = p
	c.path = append(c.path, svgpath.Command{Op: svgpath.OpMoveTo, Points: [3]svgpath.Point{p}})
}

// LineTo adds a line from the current point to (x, y). Without a current
// point it behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	p := c.device(x, y)
	c.path = append(c.path, svgpath.Command{Op: svgpath.OpLineTo, Points: [3]svgpath.Point{p}})
}

// CubicTo adds a cubic Bézier with control points (c1x, c1y), (c2x, c2y)
// ending at (x, y). Without a current point the curve starts at (c1x, c1y).
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(c1x, c1y)
	}
	c.path = append(c.path, svgpath.Command{
		Op:     svgpath.OpCubicTo,
		Points: [3]svgpath.Point{c.device(c1x, c1y), c.device(c2x, c2y), c.device(x, y)},
	})
}

// ClosePath adds a line back to the start of the current subpath.
// Fill closes every subpath implicitly, so this only matters for shape
// bookkeeping.
func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path = append(c.path, svgpath.Command{Op: svgpath.OpLineTo, Points: [3]svgpath.Point{c.start}})
}

// Fill fills the pending path with the current color and clears it.
// Filling an empty path does nothing.
func (c *Canvas) Fill() {
	c.fill(c.path)
	c.path = c.path[:0]
}

// FillRect fills a user-space rectangle without disturbing the pending path.
func (c *Canvas) FillRect(x, y, w, h float64) {
	p0 := Pt(x, y)
	p2 := p0.Add(Pt(w, h))
	rect := []svgpath.Command{
		{Op: svgpath.OpMoveTo, Points: [3]svgpath.Point{c.device(p0.X, p0.Y)}},
		{Op: svgpath.OpLineTo, Points: [3]svgpath.Point{c.device(p2.X, p0.Y)}},
		{Op: svgpath.OpLineTo, Points: [3]svgpath.Point{c.device(p2.X, p2.Y)}},
		{Op: svgpath.OpLineTo, Points: [3]svgpath.Point{c.device(p0.X, p2.Y)}},
	}
	c.fill(rect)
}

// SetPixel replaces the device pixel under the user-space point (x, y) with
// col, without blending. Without a user transform it is the pixel ColorAt
// reports for the same point.
func (c *Canvas) SetPixel(x, y float64, col color.Color) {
	p := c.device(x, y)
	c.s.setPixel(floorCoord(p.X), floorCoord(p.Y), PixelOf(col))
}

// Clear replaces every pixel with col. Row padding is left untouched.
func (c *Canvas) Clear(col color.Color) {
	if c.s.closed {
		return
	}
	a, r, g, b := PixelOf(col).Unpack()
	for y := 0; y < c.s.height; y++ {
		blend.FillRow(c.s.row(y), a, r, g, b)
	}
}

// DrawPath interprets an svgpath string against the canvas. On a syntax
// error the commands before the bad token have already been applied.
func (c *Canvas) DrawPath(path string) error {
	return svgpath.Draw(c, path)
}

// fill rasterizes device-space commands over the current color.
func (c *Canvas) fill(cmds []svgpath.Command) {
	if c.s.closed || len(cmds) == 0 {
		return
	}
	r, ok := c.coverRect(cmds)
	if !ok {
		return
	}

	// The rasterizer mask is addressed relative to r.Min, so the path is
	// replayed shifted into a rasterizer the size of r.
	dx, dy := float32(r.Min.X), float32(r.Min.Y)
	c.ras.Reset(r.Dx(), r.Dy())
	open := false
	for _, cmd := range cmds {
		p := cmd.Points
		switch cmd.Op {
		case svgpath.OpMoveTo:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(float32(p[0].X)-dx, float32(p[0].Y)-dy)
			open = true
		case svgpath.OpLineTo:
			c.ras.LineTo(float32(p[0].X)-dx, float32(p[0].Y)-dy)
		case svgpath.OpCubicTo:
			c.ras.CubeTo(
				float32(p[0].X)-dx, float32(p[0].Y)-dy,
				float32(p[1].X)-dx, float32(p[1].Y)-dy,
				float32(p[2].X)-dx, float32(p[2].Y)-dy,
			)
		}
	}
	if open {
		c.ras.ClosePath()
	}
	c.ras.Draw(target{c.s}, r, c.src, image.Point{})
}

// coverRect returns the device pixels the path can touch, clipped to the
// surface.
func (c *Canvas) coverRect(cmds []svgpath.Command) (image.Rectangle, bool) {
	b, ok := svgpath.Bounds(cmds)
	if !ok {
		return image.Rectangle{}, false
	}
	r := image.Rect(
		floorCoord(b.Min.X), floorCoord(b.Min.Y),
		ceilCoord(b.Max.X), ceilCoord(b.Max.Y),
	).Intersect(target{c.s}.Bounds())
	return r, !r.Empty()
}
