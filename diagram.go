package diagram

import "fmt"

// Diagram holds shapes and the connections routed between them. Every
// mutation that changes geometry re-docks the touched connections, so
// connection endpoints always sit on their shapes' boundaries.
//
// Diagram is not safe for concurrent mutation.
type Diagram struct {
	docking Docking

	shapes      []*Shape
	connections []*Connection
	shapeByID   map[string]*Shape
	connByID    map[string]*Connection
}

// NewDiagram returns an empty diagram. Unless overridden by
// WithDocking, connections are cropped against shape outlines derived
// by a default GraphicsProvider.
func NewDiagram(opts ...DiagramOption) *Diagram {
	cfg := diagramConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.docking == nil {
		// NewCroppingDocking only fails on a nil provider.
		dock, _ := NewCroppingDocking(NewGraphicsProvider())
		cfg.docking = dock
	}
	return &Diagram{
		docking:   cfg.docking,
		shapeByID: make(map[string]*Shape),
		connByID:  make(map[string]*Connection),
	}
}

// Docking returns the docking strategy the diagram crops with.
func (d *Diagram) Docking() Docking {
	return d.docking
}

// AddShape registers a shape and returns it. Adding nil is a no-op.
func (d *Diagram) AddShape(s *Shape) *Shape {
	if s == nil {
		return nil
	}
	if _, ok := d.shapeByID[s.ID]; !ok {
		d.shapes = append(d.shapes, s)
	}
	d.shapeByID[s.ID] = s
	return s
}

// Shape returns the registered shape with the given ID, or nil.
func (d *Diagram) Shape(id string) *Shape {
	return d.shapeByID[id]
}

// Connection returns the registered connection with the given ID, or
// nil.
func (d *Diagram) Connection(id string) *Connection {
	return d.connByID[id]
}

// Shapes returns the registered shapes in insertion order.
func (d *Diagram) Shapes() []*Shape {
	out := make([]*Shape, len(d.shapes))
	copy(out, d.shapes)
	return out
}

// Connections returns the registered connections in insertion order.
func (d *Diagram) Connections() []*Connection {
	out := make([]*Connection, len(d.connections))
	copy(out, d.connections)
	return out
}

// Connect routes a connection from source to target and crops it with
// the diagram's docking strategy. With no waypoints given the route
// runs center to center. Endpoint shapes not yet registered are added
// to the diagram.
func (d *Diagram) Connect(source, target *Shape, waypoints ...Waypoint) (*Connection, error) {
	if source == nil || target == nil {
		return nil, ErrMissingShape
	}
	d.AddShape(source)
	d.AddShape(target)

	if len(waypoints) == 0 {
		waypoints = Route(source.Center(), target.Center())
	}
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	conn := NewConnection(source, target, waypoints)
	cropped, err := d.docking.CroppedWaypoints(conn, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	conn.Waypoints = cropped

	d.connections = append(d.connections, conn)
	d.connByID[conn.ID] = conn
	return conn, nil
}

// MoveShape translates a registered shape by (dx, dy) and re-docks
// every connection touching it. Connection ends attached to the shape
// move with it; the opposite ends and interior bends stay put.
func (d *Diagram) MoveShape(s *Shape, dx, dy float64) error {
	if s == nil || d.shapeByID[s.ID] != s {
		return ErrMissingShape
	}

	s.Bounds = s.Bounds.Translate(dx, dy)
	for i := range s.Points {
		s.Points[i] = s.Points[i].Add(Pt(dx, dy))
	}

	delta := Pt(dx, dy)
	for _, conn := range d.connections {
		if conn.Source != s && conn.Target != s {
			continue
		}
		route := logicalRoute(conn)
		if conn.Source == s {
			route[0] = WaypointAt(route[0].Point.Add(delta))
		}
		if conn.Target == s {
			last := len(route) - 1
			route[last] = WaypointAt(route[last].Point.Add(delta))
		}
		if err := d.recropRoute(conn, route); err != nil {
			return fmt.Errorf("move shape %s: %w", s.ID, err)
		}
	}
	return nil
}

// ResizeShape replaces a registered shape's bounds and re-docks every
// connection touching it. The routed endpoint anchors are preserved;
// only the boundary crossings move.
func (d *Diagram) ResizeShape(s *Shape, bounds Rect) error {
	if s == nil || d.shapeByID[s.ID] != s {
		return ErrMissingShape
	}
	s.Bounds = bounds
	for _, conn := range d.connections {
		if conn.Source != s && conn.Target != s {
			continue
		}
		if err := d.Recrop(conn); err != nil {
			return fmt.Errorf("resize shape %s: %w", s.ID, err)
		}
	}
	return nil
}

// Recrop re-docks a connection from its logical route, the route whose
// ends are the waypoint anchors rather than the cropped positions.
// Repeated recropping is stable: the boundary never erodes the route.
func (d *Diagram) Recrop(conn *Connection) error {
	if conn == nil {
		return ErrNilConnection
	}
	return d.recropRoute(conn, logicalRoute(conn))
}

// recropRoute replaces the connection's waypoints with route, crops and
// keeps the result. On error the previous waypoints stay in place.
func (d *Diagram) recropRoute(conn *Connection, route []Waypoint) error {
	prev := conn.Waypoints
	conn.Waypoints = route
	cropped, err := d.docking.CroppedWaypoints(conn, nil, nil)
	if err != nil {
		conn.Waypoints = prev
		return err
	}
	conn.Waypoints = cropped
	return nil
}

// logicalRoute rebuilds the pre-crop route of a connection: end
// waypoints are replaced by their anchors, interior bends are kept.
func logicalRoute(conn *Connection) []Waypoint {
	route := make([]Waypoint, len(conn.Waypoints))
	copy(route, conn.Waypoints)
	if len(route) == 0 {
		return route
	}
	route[0] = WaypointAt(route[0].Anchor())
	last := len(route) - 1
	route[last] = WaypointAt(route[last].Anchor())
	return route
}
