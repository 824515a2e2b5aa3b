// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgpath

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestBoundsLines(t *testing.T) {
	cmds, err := Parse("M10,20 L30,40 L5,25 Z")
	if err != nil {
		t.Fatal(err)
	}
	r, ok := Bounds(cmds)
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	want := Rect{Min: Point{5, 20}, Max: Point{30, 40}}
	if r != want {
		t.Errorf("Bounds() = %+v, want %+v", r, want)
	}
}

// TestBoundsCurve verifies that control points outside the curve do not
// widen the box, while the curve's own extremum does.
func TestBoundsCurve(t *testing.T) {
	cmds, err := Parse("M0,0 C0,10 10,10 10,0 Z")
	if err != nil {
		t.Fatal(err)
	}
	r, ok := Bounds(cmds)
	if !ok {
		t.Fatal("Bounds() ok = false")
	}

	const eps = 1e-9
	if math.Abs(r.Max.Y-7.5) > eps {
		t.Errorf("Bounds().Max.Y = %v, want 7.5", r.Max.Y)
	}
	if r.Min.X != 0 || r.Max.X != 10 || r.Min.Y != 0 {
		t.Errorf("Bounds() = %+v, want x in [0,10], min y 0", r)
	}
}

func TestBoundsEmpty(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) ok = true")
	}
	if _, ok := Bounds([]Command{{Op: OpFill}}); ok {
		t.Error("Bounds(fill only) ok = true")
	}
}

func TestElements(t *testing.T) {
	cmds := []Command{
		{Op: OpMoveTo, Points: [3]Point{{1, 2}}},
		{Op: OpCubicTo, Points: [3]Point{{3, 4}, {5, 6}, {7, 8}}},
		{Op: OpFill},
	}
	els := Elements(cmds)
	if len(els) != 3 {
		t.Fatalf("len(Elements()) = %d, want 3", len(els))
	}
	if els[0].Kind != curve.MoveToKind || els[0].P0 != (curve.Point{X: 1, Y: 2}) {
		t.Errorf("Elements()[0] = %+v, want move to (1,2)", els[0])
	}
	if els[1].Kind != curve.CubicToKind || els[1].P2 != (curve.Point{X: 7, Y: 8}) {
		t.Errorf("Elements()[1] = %+v, want cubic ending at (7,8)", els[1])
	}
	if els[2].Kind != curve.ClosePathKind {
		t.Errorf("Elements()[2].Kind = %v, want ClosePathKind", els[2].Kind)
	}
}
