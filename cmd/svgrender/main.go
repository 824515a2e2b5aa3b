// Command svgrender rasterizes a compact svgpath string into a PNG file.
//
// Usage:
//
//	svgrender -path "M2,2 L22,12 L2,22 Z" -color "#2A9EF1" -output arrow.png
//
// With -background the path is drawn on its own surface and alpha-masked
// onto a filled background, so the background shows only where the path
// has coverage.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/svgpath"
)

func main() {
	var (
		width      = flag.Float64("width", 24, "logical width")
		height     = flag.Float64("height", 24, "logical height")
		scale      = flag.Float64("scale", drawing.DefaultScale, "device scale")
		fill       = flag.String("color", "#000000", "fill color (#RGB, #RRGGBB or #RRGGBBAA)")
		background = flag.String("background", "", "mask a background of this color with the path")
		path       = flag.String("path", "", "path to draw (M, L, C and Z commands)")
		output     = flag.String("output", "out.png", "output file")
		verbose    = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		drawing.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *path == "" {
		log.Fatal("missing -path")
	}

	cmds, err := svgpath.Parse(*path)
	if err != nil {
		log.Fatalf("Invalid path: %v", err)
	}
	if b, ok := svgpath.Bounds(cmds); ok {
		drawing.Logger().Debug("path parsed", "commands", len(cmds),
			"min_x", b.Min.X, "min_y", b.Min.Y, "max_x", b.Max.X, "max_y", b.Max.Y)
	}

	col, err := drawing.Hex(*fill)
	if err != nil {
		log.Fatalf("Invalid -color: %v", err)
	}

	size := drawing.Sz(*width, *height)
	opts := []drawing.SurfaceOption{drawing.WithScale(*scale), drawing.WithClear(true)}

	s, err := drawing.New(size, opts...)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	defer func() { _ = s.Close() }()

	s.WithSink(func(c *drawing.Canvas) {
		c.SetColor(col)
		svgpath.Replay(c, cmds)
	})

	out := s
	if *background != "" {
		bg, err := drawing.Hex(*background)
		if err != nil {
			log.Fatalf("Invalid -background: %v", err)
		}
		masked, err := drawing.New(size, opts...)
		if err != nil {
			log.Fatalf("Failed to create surface: %v", err)
		}
		defer func() { _ = masked.Close() }()

		masked.WithSink(func(c *drawing.Canvas) { c.Clear(bg) })
		masked.Blit(s, drawing.Pt(0, 0), drawing.BlitAlpha)
		out = masked
	}

	img, err := out.Image()
	if err != nil {
		log.Fatalf("Failed to export image: %v", err)
	}
	defer img.Release()

	if err := img.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	d := img.Descriptor()
	log.Printf("Saved %s (%dx%d)\n", *output, d.Width, d.Height)
}
