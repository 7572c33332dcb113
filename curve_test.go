package diagram

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestQuadBez_Eval(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"start", 0, Pt(0, 0)},
		{"end", 1, Pt(10, 0)},
		{"apex", 0.5, Pt(5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Eval(tt.t)
			if !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestQuadBez_Subdivide(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	q1, q2 := q.Subdivide()

	if !pointsEqual(q1.P2, q2.P0, epsilon) {
		t.Errorf("halves do not meet: %v vs %v", q1.P2, q2.P0)
	}
	if !pointsEqual(q1.P0, q.P0, epsilon) || !pointsEqual(q2.P2, q.P2, epsilon) {
		t.Error("subdivision moved the endpoints")
	}

	// Both halves must trace the original curve.
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		want := q.Eval(tt)

		var got Point
		if tt <= 0.5 {
			got = q1.Eval(tt * 2)
		} else {
			got = q2.Eval((tt - 0.5) * 2)
		}

		if !pointsEqual(got, want, 1e-9) {
			t.Errorf("t=%v: subdivided %v, original %v", tt, got, want)
		}
	}
}

func TestQuadBez_Extrema(t *testing.T) {
	// Symmetric parabola, single y extremum at the apex.
	q := NewQuadBez(Pt(-1, 1), Pt(0, -1), Pt(1, 1))
	extrema := q.Extrema()

	if len(extrema) != 1 {
		t.Fatalf("Extrema() = %v, want one value", extrema)
	}
	if math.Abs(extrema[0]-0.5) > epsilon {
		t.Errorf("extremum at %v, want 0.5", extrema[0])
	}
}

func TestQuadBez_BoundingBox(t *testing.T) {
	q := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	bbox := q.BoundingBox()

	if !bbox.Contains(q.P0) || !bbox.Contains(q.P2) {
		t.Error("box must contain the endpoints")
	}
	// The control point pulls the curve up to y=5 at the apex.
	if !bbox.Contains(q.Eval(0.5)) {
		t.Errorf("box must contain the apex %v", q.Eval(0.5))
	}
	if bbox.Max.Y > 5+epsilon {
		t.Errorf("box reaches y=%v, curve only reaches y=5", bbox.Max.Y)
	}
}

func TestCubicBez_Eval(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 1.0/3.0), Pt(1, 1))

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"start", 0, Pt(0, 0)},
		{"end", 1, Pt(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Eval(tt.t)
			if !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	c1, c2 := c.Subdivide()

	if !pointsEqual(c1.P3, c2.P0, epsilon) {
		t.Errorf("halves do not meet: %v vs %v", c1.P3, c2.P0)
	}
	if !pointsEqual(c1.P0, c.P0, epsilon) || !pointsEqual(c2.P3, c.P3, epsilon) {
		t.Error("subdivision moved the endpoints")
	}

	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		want := c.Eval(tt)

		var got Point
		if tt <= 0.5 {
			got = c1.Eval(tt * 2)
		} else {
			got = c2.Eval((tt - 0.5) * 2)
		}

		if !pointsEqual(got, want, 1e-9) {
			t.Errorf("t=%v: subdivided %v, original %v", tt, got, want)
		}
	}
}

func TestCubicBez_Extrema(t *testing.T) {
	// Symmetric arch, y extremum at t=0.5 and none in x.
	c := NewCubicBez(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0))
	extrema := c.Extrema()

	if len(extrema) == 0 {
		t.Fatal("Extrema() returned none")
	}
	for _, e := range extrema {
		if e < 0 || e > 1 {
			t.Errorf("extremum %v outside [0, 1]", e)
		}
	}

	found := false
	for _, e := range extrema {
		if math.Abs(e-0.5) < 1e-6 {
			found = true
		}
	}
	if !found {
		t.Errorf("Extrema() = %v, want a value at 0.5", extrema)
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	bbox := c.BoundingBox()

	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100
		p := c.Eval(tt)
		if !bbox.Contains(p) {
			t.Errorf("point at t=%v outside box: %v", tt, p)
		}
	}

	// The arch peaks at y=7.5, not at the control points' y=10.
	if math.Abs(bbox.Max.Y-7.5) > 1e-9 {
		t.Errorf("box top = %v, want 7.5", bbox.Max.Y)
	}
}
