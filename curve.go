package diagram

import "sort"

// Bezier segment types backing the path model. Connection routes with
// rounded bends carry quadratic segments; ellipse and rounded-corner
// boundaries carry cubics. Flattening subdivides them into polylines
// and path bounds union their exact per-segment boxes.

// QuadBez is a quadratic Bezier segment: endpoints P0 and P2 with one
// control point P1.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez returns the quadratic segment (p0, p1, p2).
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval returns the point at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the segment at t=0.5 by de Casteljau's scheme. Each
// half traces exactly half of the original curve.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	left := q.P0.Lerp(q.P1, 0.5)
	right := q.P1.Lerp(q.P2, 0.5)
	mid := left.Lerp(right, 0.5)
	return QuadBez{P0: q.P0, P1: left, P2: mid},
		QuadBez{P0: mid, P1: right, P2: q.P2}
}

// Extrema returns the parameters in (0, 1) where the curve turns back
// along one of the axes. The derivative of a quadratic is linear, so
// there is at most one per axis.
func (q QuadBez) Extrema() []float64 {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)

	var ts []float64
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)
	return ts
}

// BoundingBox returns the tight axis-aligned box around the curve,
// covering the endpoints and every axis extremum.
func (q QuadBez) BoundingBox() Rect {
	box := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		p := q.Eval(t)
		box = box.Union(NewRect(p, p))
	}
	return box
}

// CubicBez is a cubic Bezier segment: endpoints P0 and P3 with control
// points P1 and P2.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez returns the cubic segment (p0, p1, p2, p3).
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Subdivide splits the segment at t=0.5 by de Casteljau's scheme.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Extrema returns the parameters in [0, 1] where the curve turns back
// along one of the axes, up to two per axis.
func (c CubicBez) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	// The derivative of a cubic is a quadratic in Bernstein form;
	// rewrite it per axis as a*t^2 + b*t + c and take the unit-interval
	// roots.
	ts := make([]float64, 0, 4)
	ts = append(ts, SolveQuadraticInUnitInterval(
		d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	ts = append(ts, SolveQuadraticInUnitInterval(
		d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(ts)
	return ts
}

// BoundingBox returns the tight axis-aligned box around the curve,
// covering the endpoints and every axis extremum.
func (c CubicBez) BoundingBox() Rect {
	box := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		box = box.Union(NewRect(p, p))
	}
	return box
}
