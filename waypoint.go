package diagram

// Waypoint is one point of a connection route. Cropping replaces endpoint
// waypoints with their boundary crossings and records the logical pre-crop
// coordinate in Original, so downstream editing keeps operating on the
// route the user actually laid out.
type Waypoint struct {
	Point

	// Original is the logical coordinate of the waypoint before any
	// cropping, nil when the waypoint was never cropped.
	Original *Point
}

// Wp is a convenience function to create a Waypoint.
func Wp(x, y float64) Waypoint {
	return Waypoint{Point: Pt(x, y)}
}

// WaypointAt wraps a point into a waypoint without an original anchor.
func WaypointAt(p Point) Waypoint {
	return Waypoint{Point: p}
}

// Anchor returns the logical coordinate of the waypoint: Original when
// set, the waypoint itself otherwise.
func (w Waypoint) Anchor() Point {
	if w.Original != nil {
		return *w.Original
	}
	return w.Point
}

// Route builds a waypoint sequence from points.
func Route(points ...Point) []Waypoint {
	route := make([]Waypoint, len(points))
	for i, p := range points {
		route[i] = WaypointAt(p)
	}
	return route
}

// routePoints extracts the coordinates of a waypoint sequence.
func routePoints(waypoints []Waypoint) []Point {
	points := make([]Point, len(waypoints))
	for i, w := range waypoints {
		points[i] = w.Point
	}
	return points
}
