package diagram

// IdentityDocking docks every connection end exactly at its waypoint.
// It never consults shape geometry, so it works for shapes with no
// boundary path and serves as the strategy to compare cropping results
// against.
type IdentityDocking struct{}

// NewIdentityDocking returns the identity strategy.
func NewIdentityDocking() IdentityDocking {
	return IdentityDocking{}
}

// DockingPoint returns the end waypoint unchanged as the docking
// position. The shape may be nil.
func (IdentityDocking) DockingPoint(waypoints []Waypoint, shape *Shape, dockStart bool) (DockingPoint, error) {
	if len(waypoints) < 2 {
		return DockingPoint{}, ErrTooFewWaypoints
	}
	idx := 0
	if !dockStart {
		idx = len(waypoints) - 1
	}
	wp := waypoints[idx]
	return DockingPoint{Point: wp, Actual: wp.Point, Idx: idx}, nil
}

// CroppedWaypoints returns an unmodified copy of the connection's
// waypoints.
func (IdentityDocking) CroppedWaypoints(conn *Connection, source, target *Shape) ([]Waypoint, error) {
	if conn == nil {
		return nil, ErrNilConnection
	}
	if len(conn.Waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}
	out := make([]Waypoint, len(conn.Waypoints))
	copy(out, conn.Waypoints)
	return out, nil
}
