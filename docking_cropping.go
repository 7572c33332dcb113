package diagram

import "fmt"

var (
	_ Docking = IdentityDocking{}
	_ Docking = (*CroppingDocking)(nil)
)

// CroppingDocking docks connection ends on the boundary of their shapes.
// It asks a PathProvider for the shape outline and the connection route,
// intersects the two and crops the connection at the crossing nearest to
// the respective end.
//
// Ends whose shape produces no boundary crossing keep their waypoint
// position unchanged.
type CroppingDocking struct {
	provider  PathProvider
	epsilon   float64
	tolerance float64
}

// NewCroppingDocking returns a cropping strategy backed by provider.
func NewCroppingDocking(provider PathProvider, opts ...CroppingOption) (*CroppingDocking, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	cfg := croppingConfig{
		epsilon:   DefaultEpsilon,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &CroppingDocking{
		provider:  provider,
		epsilon:   cfg.epsilon,
		tolerance: cfg.tolerance,
	}, nil
}

// DockingPoint crops one end of the route against the shape boundary.
// When the route does not cross the boundary, or the shape yields no
// boundary path at all, the end waypoint itself becomes the docking
// position.
func (d *CroppingDocking) DockingPoint(waypoints []Waypoint, shape *Shape, dockStart bool) (DockingPoint, error) {
	if len(waypoints) < 2 {
		return DockingPoint{}, ErrTooFewWaypoints
	}
	idx := 0
	if !dockStart {
		idx = len(waypoints) - 1
	}
	wp := waypoints[idx]

	actual, ok := d.boundaryCrossing(waypoints, shape, dockStart)
	if !ok {
		Logger().Debug("diagram: docking falls back to waypoint",
			"reason", "no boundary crossing",
			"dockStart", dockStart,
			"x", wp.X, "y", wp.Y)
		actual = wp.Point
	}

	return DockingPoint{Point: wp, Actual: actual, Idx: idx}, nil
}

// boundaryCrossing intersects the connection route with the shape
// boundary. dockStart picks the crossing nearest the route start,
// otherwise the one nearest its end.
func (d *CroppingDocking) boundaryCrossing(waypoints []Waypoint, shape *Shape, dockStart bool) (Point, bool) {
	if shape == nil {
		return Point{}, false
	}
	shapePath := d.provider.ShapePath(shape)
	connPath := d.provider.ConnectionPath(waypoints)
	return intersectPaths(shapePath, connPath, dockStart, d.epsilon, d.tolerance)
}

// CroppedWaypoints crops both ends of the connection. Interior
// waypoints pass through untouched; the end waypoints are replaced by
// their docked positions carrying the pre-crop point as anchor.
func (d *CroppingDocking) CroppedWaypoints(conn *Connection, source, target *Shape) ([]Waypoint, error) {
	if conn == nil {
		return nil, ErrNilConnection
	}
	if len(conn.Waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}
	if source == nil {
		source = conn.Source
	}
	if target == nil {
		target = conn.Target
	}
	if source == nil || target == nil {
		return nil, ErrMissingShape
	}

	sourceDocking, err := d.DockingPoint(conn.Waypoints, source, true)
	if err != nil {
		return nil, fmt.Errorf("crop source end: %w", err)
	}
	targetDocking, err := d.DockingPoint(conn.Waypoints, target, false)
	if err != nil {
		return nil, fmt.Errorf("crop target end: %w", err)
	}

	cropped := make([]Waypoint, 0, targetDocking.Idx-sourceDocking.Idx+1)
	cropped = append(cropped, dockedWaypoint(sourceDocking))
	cropped = append(cropped, conn.Waypoints[sourceDocking.Idx+1:targetDocking.Idx]...)
	cropped = append(cropped, dockedWaypoint(targetDocking))

	return cropped, nil
}

// dockedWaypoint turns a docking into the waypoint that replaces the
// connection end: the docked position, anchored at the waypoint the end
// was originally routed through.
func dockedWaypoint(docking DockingPoint) Waypoint {
	anchor := docking.Point.Anchor()
	return Waypoint{Point: docking.Actual, Original: &anchor}
}
