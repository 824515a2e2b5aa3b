// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgpath

// Sink is a vector drawing target.
//
// Coordinates are in the sink's own user space. Fill fills and consumes the
// current path; there is no stroke.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Fill()
}

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Op identifies a path command.
type Op uint8

const (
	// OpMoveTo starts a new subpath at Points[0].
	OpMoveTo Op = iota + 1

	// OpLineTo adds a line to Points[0].
	OpLineTo

	// OpCubicTo adds a cubic Bézier with controls Points[0], Points[1]
	// ending at Points[2].
	OpCubicTo

	// OpFill closes and fills the current path.
	OpFill
)

// String returns the command letter.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "M"
	case OpLineTo:
		return "L"
	case OpCubicTo:
		return "C"
	case OpFill:
		return "Z"
	}
	return "?"
}

// Command is one parsed path command.
type Command struct {
	Op     Op
	Points [3]Point
}

// apply issues the command to sink.
func (c Command) apply(sink Sink) {
	p := c.Points
	switch c.Op {
	case OpMoveTo:
		sink.MoveTo(p[0].X, p[0].Y)
	case OpLineTo:
		sink.LineTo(p[0].X, p[0].Y)
	case OpCubicTo:
		sink.CubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
	case OpFill:
		sink.Fill()
	}
}

// Draw interprets path and issues the equivalent calls to sink as it goes.
//
// The first malformed token aborts the walk with a *SyntaxError. Calls made
// before that point are not undone. An empty path makes no calls.
func Draw(sink Sink, path string) error {
	s := scanner{src: []byte(path)}
	for {
		cmd, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		cmd.apply(sink)
	}
}

// Parse interprets the whole path without drawing. It returns every command,
// or nil and a *SyntaxError.
func Parse(path string) ([]Command, error) {
	s := scanner{src: []byte(path)}
	var cmds []Command
	for {
		cmd, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return cmds, nil
		}
		cmds = append(cmds, cmd)
	}
}

// Replay issues cmds to sink in order.
func Replay(sink Sink, cmds []Command) {
	for _, c := range cmds {
		c.apply(sink)
	}
}
