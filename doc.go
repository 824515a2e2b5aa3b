// Package drawing provides off-screen, device-scaled pixel surfaces for
// custom rendering.
//
// # Overview
//
// A Surface owns a premultiplied BGRA pixel buffer sized in logical units
// times a device scale (2 by default). It hands out a Canvas for vector
// drawing, reads pixels back, alpha-masks other surfaces onto itself with
// Blit, and exports a read-only Image that shares its buffer.
//
// # Quick Start
//
//	s, err := drawing.New(drawing.Sz(24, 24), drawing.WithClear(true))
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.WithSink(func(c *drawing.Canvas) {
//	    c.SetColor(color.RGBA{R: 0x2A, G: 0x9E, B: 0xF1, A: 0xFF})
//	    _ = c.DrawPath("M2,2 L22,12 L2,22 Z")
//	})
//
//	img, err := s.Image()
//	if err != nil {
//	    return err
//	}
//	defer img.Release()
//	err = img.SavePNG("arrow.png")
//
// # Pixel Layout
//
// Rows are Stride() bytes apart, where the stride is 4 bytes per pixel
// rounded up to a multiple of 16. Each cell is the little-endian 32-bit word
// A<<24 | R<<16 | G<<8 | B with color channels premultiplied by alpha, so in
// memory a cell reads B, G, R, A. See Pixel.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Logical units; multiply by Scale() for device pixels
//
// # Path Language
//
// Canvas.DrawPath accepts the compact path language of package svgpath
// (M, L, C and Z commands), where Z closes and fills.
//
// # Concurrency
//
// Surfaces and canvases must be confined to one goroutine. Images may be
// released from any goroutine.
package drawing
