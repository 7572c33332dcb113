package diagram

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the distance below which two boundary crossings are
// treated as the same crossing. A waypoint sitting exactly on a shape
// boundary produces coincident hits from adjacent segments; the epsilon
// collapses them to one.
const DefaultEpsilon = 1e-6

// crossing is one intersection of a connection path with a shape
// boundary, annotated with its arc-length position from the connection
// path's start.
type crossing struct {
	point Point
	pos   float64
}

// Intersect returns the point where connectionPath crosses the closed
// shapePath boundary. With preferFirst the crossing nearest the start of
// the connection path is returned, otherwise the crossing nearest its
// end. The second return value is false when the paths do not cross or
// either path is empty.
func Intersect(shapePath, connectionPath *Path, preferFirst bool) (Point, bool) {
	return intersectPaths(shapePath, connectionPath, preferFirst, DefaultEpsilon, DefaultTolerance)
}

// intersectPaths enumerates all crossings of connectionPath with
// shapePath on their flattened polylines, dedupes near-coincident hits
// within eps and picks by position along the connection path.
func intersectPaths(shapePath, connectionPath *Path, preferFirst bool, eps, tolerance float64) (Point, bool) {
	if shapePath.IsEmpty() || connectionPath.IsEmpty() {
		return Point{}, false
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	// Flattened polylines stay within tolerance of their curves, so
	// disjoint inflated bounds rule out a crossing before any
	// flattening work.
	if !shapePath.Bounds().Inflate(tolerance).Intersects(connectionPath.Bounds().Inflate(tolerance)) {
		return Point{}, false
	}

	boundary := shapePath.Flatten(tolerance)
	route := connectionPath.Flatten(tolerance)

	crossings := collectCrossings(boundary, route)
	if len(crossings) == 0 {
		return Point{}, false
	}

	crossings = dedupeCrossings(crossings, eps)

	picked := crossings[0]
	if !preferFirst {
		picked = crossings[len(crossings)-1]
	}
	return picked.point, true
}

// collectCrossings walks the route polylines segment by segment,
// accumulating arc length, and intersects each segment with every
// boundary segment.
func collectCrossings(boundary, route [][]Point) []crossing {
	var crossings []crossing
	pos := 0.0
	for _, poly := range route {
		for i := 0; i+1 < len(poly); i++ {
			segStart, segEnd := poly[i], poly[i+1]
			segLen := segStart.Distance(segEnd)
			for _, edge := range boundary {
				for j := 0; j+1 < len(edge); j++ {
					pt, t, ok := segmentIntersection(segStart, segEnd, edge[j], edge[j+1])
					if ok {
						crossings = append(crossings, crossing{point: pt, pos: pos + t*segLen})
					}
				}
			}
			pos += segLen
		}
	}
	return crossings
}

// dedupeCrossings sorts crossings by position and drops crossings whose
// point nearly coincides with an earlier one. The kept crossing of each
// cluster is the one closest to the route start.
func dedupeCrossings(crossings []crossing, eps float64) []crossing {
	sort.Slice(crossings, func(i, j int) bool {
		return crossings[i].pos < crossings[j].pos
	})

	kept := crossings[:0]
	for _, c := range crossings {
		duplicate := false
		for _, k := range kept {
			if pointsCoincide(c.point, k.point, eps) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, c)
		}
	}
	return kept
}

// pointsCoincide reports whether two points are within eps on both axes.
func pointsCoincide(p, q Point, eps float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, eps) && scalar.EqualWithinAbs(p.Y, q.Y, eps)
}

// segmentIntersection returns the intersection of segments a0-a1 and
// b0-b1 together with the parameter along a0-a1. Parallel and collinear
// segments do not intersect; endpoint touches count.
func segmentIntersection(a0, a1, b0, b1 Point) (Point, float64, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)

	denom := da.Cross(db)
	if math.Abs(denom) < 1e-12 {
		return Point{}, 0, false
	}

	d := b0.Sub(a0)
	ta := d.Cross(db) / denom
	tb := d.Cross(da) / denom

	// A touch at a segment endpoint is a crossing; allow a little slack
	// so corner hits survive floating point.
	const slack = 1e-9
	if ta < -slack || ta > 1+slack || tb < -slack || tb > 1+slack {
		return Point{}, 0, false
	}
	ta = clamp01(ta)

	return a0.Add(da.Mul(ta)), ta, true
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
