package diagram

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	m := Identity()

	p := Pt(3, 4)
	if !pointsEqual(m.TransformPoint(p), p, epsilon) {
		t.Errorf("Identity transform changed %v to %v", p, m.TransformPoint(p))
	}
}

func TestMatrix_Translate(t *testing.T) {
	m := Translate(10, -5)

	got := m.TransformPoint(Pt(1, 2))
	if !pointsEqual(got, Pt(11, -3), epsilon) {
		t.Errorf("TransformPoint = %v, want (11, -3)", got)
	}
}

func TestMatrix_Scale(t *testing.T) {
	m := Scale(2, 3)
	got := m.TransformPoint(Pt(4, 5))
	if !pointsEqual(got, Pt(8, 15), epsilon) {
		t.Errorf("TransformPoint = %v, want (8, 15)", got)
	}
}

func TestMatrix_Rotate(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		p      Point
		expect Point
	}{
		{"90 deg", math.Pi / 2, Pt(1, 0), Pt(0, 1)},
		{"180 deg", math.Pi, Pt(1, 0), Pt(-1, 0)},
		{"270 deg", 3 * math.Pi / 2, Pt(1, 0), Pt(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.angle).TransformPoint(tt.p)
			if !pointsEqual(got, tt.expect, 1e-9) {
				t.Errorf("Rotate(%v).TransformPoint(%v) = %v, want %v",
					tt.angle, tt.p, got, tt.expect)
			}
		})
	}
}

func TestMatrix_RotateAbout(t *testing.T) {
	// Quarter turn about (50, 50) maps the rectangle corner (100, 50)
	// onto (50, 100).
	m := RotateAbout(math.Pi/2, 50, 50)

	got := m.TransformPoint(Pt(100, 50))
	if !pointsEqual(got, Pt(50, 100), 1e-9) {
		t.Errorf("TransformPoint = %v, want (50, 100)", got)
	}

	// The pivot stays fixed.
	center := m.TransformPoint(Pt(50, 50))
	if !pointsEqual(center, Pt(50, 50), 1e-9) {
		t.Errorf("pivot moved to %v", center)
	}
}

func TestMatrix_Multiply(t *testing.T) {
	// Translate then scale, applied to a point.
	m := Scale(2, 2).Multiply(Translate(5, 5))

	got := m.TransformPoint(Pt(0, 0))
	if !pointsEqual(got, Pt(10, 10), epsilon) {
		t.Errorf("TransformPoint = %v, want (10, 10)", got)
	}
}

func TestMatrix_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translate", Translate(7, -2)},
		{"scale", Scale(2, 4)},
		{"rotate", Rotate(0.7)},
		{"composite", Translate(3, 4).Multiply(Rotate(1.1)).Multiply(Scale(2, 0.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Invert()
			p := Pt(13, -7)
			roundTrip := inv.TransformPoint(tt.m.TransformPoint(p))
			if !pointsEqual(roundTrip, p, 1e-9) {
				t.Errorf("Invert round trip = %v, want %v", roundTrip, p)
			}
		})
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	// A collapsed matrix cannot be inverted; the identity fallback
	// keeps downstream transforms harmless.
	inv := Scale(0, 0).Invert()
	p := Pt(3, 4)
	if !pointsEqual(inv.TransformPoint(p), p, epsilon) {
		t.Errorf("singular Invert moved %v to %v", p, inv.TransformPoint(p))
	}
}
