package diagram

import "math"

// DefaultTolerance is the maximum distance from a curve for flattening.
// Crossings computed on flattened paths deviate from the analytic curve
// by at most this amount.
const DefaultTolerance = 0.1

// Flatten converts path elements into polylines, one per subpath.
// Curves are subdivided until they deviate from their chord by less
// than tolerance. A non-positive tolerance falls back to
// DefaultTolerance.
func Flatten(elements []PathElement, tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var polylines [][]Point
	var points []Point
	var start, current Point

	flush := func() {
		if len(points) > 0 {
			polylines = append(polylines, points)
			points = nil
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = e.Point
			start = current
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case QuadTo:
			flattenQuadratic(NewQuadBez(current, e.Control, e.Point), tolerance, &points)
			current = e.Point

		case CubicTo:
			flattenCubic(NewCubicBez(current, e.Control1, e.Control2, e.Point), tolerance, &points)
			current = e.Point

		case Close:
			// Close returns to the start of the current subpath.
			if len(points) > 0 && current != start {
				points = append(points, start)
			}
			current = start
		}
	}

	flush()
	return polylines
}

// Flatten converts the path into polylines, one per subpath.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if p == nil {
		return nil
	}
	return Flatten(p.elements, tolerance)
}

// flattenQuadratic subdivides q until the control point sits within
// tolerance of the chord, appending the endpoints of the flat pieces.
func flattenQuadratic(q QuadBez, tolerance float64, points *[]Point) {
	if distanceToLine(q.P1, q.P0, q.P2) < tolerance {
		*points = append(*points, q.P2)
		return
	}
	left, right := q.Subdivide()
	flattenQuadratic(left, tolerance, points)
	flattenQuadratic(right, tolerance, points)
}

// flattenCubic subdivides c until both control points sit within
// tolerance of the chord, appending the endpoints of the flat pieces.
func flattenCubic(c CubicBez, tolerance float64, points *[]Point) {
	d1 := distanceToLine(c.P1, c.P0, c.P3)
	d2 := distanceToLine(c.P2, c.P0, c.P3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, c.P3)
		return
	}
	left, right := c.Subdivide()
	flattenCubic(left, tolerance, points)
	flattenCubic(right, tolerance, points)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
