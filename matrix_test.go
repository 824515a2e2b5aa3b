package drawing

import (
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"device scale", Scale(2, 2), Pt(3.5, 4), Pt(7, 8)},
		{"scale then translate", Scale(2, 2).Multiply(Translate(1, 1)), Pt(3, 4), Pt(8, 10)},
		{"translate then scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(3, 4), Pt(7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("Matrix%+v.TransformPoint(%v) = %v, want %v", tt.m, tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"zero translation", Translate(0, 0), true},
		{"device scale", Scale(2, 2), false},
		{"translation", Translate(1, 0), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}
