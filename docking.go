package diagram

// DockingPoint describes where a connection end attaches to a shape.
type DockingPoint struct {
	// Point is the waypoint the docking was computed for, including
	// its anchor if one is set.
	Point Waypoint

	// Actual is the position the connection end should visually dock
	// at. For a cropping strategy this lies on the shape boundary;
	// when no boundary crossing exists it falls back to the waypoint
	// itself.
	Actual Point

	// Idx is the index of the docked waypoint in the original
	// waypoint sequence: 0 for the source end, len(waypoints)-1 for
	// the target end.
	Idx int
}

// Docking computes how connection ends attach to their shapes.
//
// Implementations must not mutate the waypoints they are given;
// CroppedWaypoints returns a fresh slice.
type Docking interface {
	// DockingPoint resolves the docking for one end of a connection.
	// dockStart selects the source end (waypoints[0]), otherwise the
	// target end (waypoints[len-1]). The waypoint slice must hold at
	// least two entries.
	DockingPoint(waypoints []Waypoint, shape *Shape, dockStart bool) (DockingPoint, error)

	// CroppedWaypoints returns a copy of the connection's waypoints
	// with both end waypoints replaced by their docked positions. A
	// nil source or target falls back to the connection's own
	// endpoint shapes.
	CroppedWaypoints(conn *Connection, source, target *Shape) ([]Waypoint, error)
}
