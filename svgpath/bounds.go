// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgpath

import (
	"honnef.co/go/curve"
)

// Rect is an axis-aligned rectangle in user space.
type Rect struct {
	Min, Max Point
}

// Elements converts cmds to curve path elements. OpFill becomes a close.
func Elements(cmds []Command) []curve.PathElement {
	els := make([]curve.PathElement, 0, len(cmds))
	for _, c := range cmds {
		p := c.Points
		switch c.Op {
		case OpMoveTo:
			els = append(els, curve.PathElement{Kind: curve.MoveToKind, P0: pt(p[0])})
		case OpLineTo:
			els = append(els, curve.PathElement{Kind: curve.LineToKind, P0: pt(p[0])})
		case OpCubicTo:
			els = append(els, curve.PathElement{
				Kind: curve.CubicToKind,
				P0:   pt(p[0]),
				P1:   pt(p[1]),
				P2:   pt(p[2]),
			})
		case OpFill:
			els = append(els, curve.PathElement{Kind: curve.ClosePathKind})
		}
	}
	return els
}

// Bounds returns the tight bounding box of the geometry described by cmds.
// Curve extrema are included, control points that lie outside the curve are
// not. It reports false when cmds contain no points.
func Bounds(cmds []Command) (Rect, bool) {
	hasPoint := false
	for _, c := range cmds {
		if c.Op != OpFill {
			hasPoint = true
			break
		}
	}
	if !hasPoint {
		return Rect{}, false
	}

	bb := curve.BezPath(Elements(cmds)).BoundingBox()
	return Rect{
		Min: Point{X: bb.X0, Y: bb.Y0},
		Max: Point{X: bb.X1, Y: bb.Y1},
	}, true
}

func pt(p Point) curve.Point {
	return curve.Point{X: p.X, Y: p.Y}
}
