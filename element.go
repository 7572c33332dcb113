package diagram

import "github.com/google/uuid"

// Outline selects the boundary geometry of a shape.
type Outline int

const (
	// OutlineRect is an axis-aligned rectangle, the default outline.
	OutlineRect Outline = iota

	// OutlineRoundedRect is a rectangle with rounded corners. The
	// corner radius comes from the shape's CornerRadius field.
	OutlineRoundedRect

	// OutlineEllipse is the ellipse inscribed in the shape bounds.
	OutlineEllipse

	// OutlineDiamond is the rhombus spanned by the edge midpoints of
	// the shape bounds.
	OutlineDiamond

	// OutlinePolygon is an arbitrary closed polygon given by the
	// shape's Points in absolute coordinates.
	OutlinePolygon
)

// String returns the outline name.
func (o Outline) String() string {
	switch o {
	case OutlineRect:
		return "Rect"
	case OutlineRoundedRect:
		return "RoundedRect"
	case OutlineEllipse:
		return "Ellipse"
	case OutlineDiamond:
		return "Diamond"
	case OutlinePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Shape is a node of a diagram. Its boundary is derived from Bounds and
// Outline; connections attached to it are cropped against that
// boundary.
type Shape struct {
	// ID identifies the shape within a diagram.
	ID string

	// Bounds is the axis-aligned box of the unrotated shape.
	Bounds Rect

	// Rotation is applied about the center of Bounds, in radians.
	Rotation float64

	// Outline selects the boundary geometry.
	Outline Outline

	// CornerRadius is the corner radius for OutlineRoundedRect. Zero
	// or negative values fall back to the provider's default.
	CornerRadius float64

	// Points holds the polygon vertices for OutlinePolygon, in
	// absolute coordinates. Other outlines ignore it.
	Points []Point

	// Label is free text attached to the shape. Rendering draws it
	// centered; the geometry does not use it.
	Label string
}

// NewShape returns a rectangular shape with a fresh unique ID. Set
// Outline and the fields it reads to pick a different boundary.
func NewShape(x, y, w, h float64) *Shape {
	return &Shape{
		ID:     uuid.NewString(),
		Bounds: RectXYWH(x, y, w, h),
	}
}

// Center returns the center of the shape bounds.
func (s *Shape) Center() Point {
	return s.Bounds.Center()
}

// Connection is an edge of a diagram, routed through Waypoints from
// Source to Target. Waypoints[0] and Waypoints[len-1] are the docked
// end positions; their anchors keep the pre-crop routing.
type Connection struct {
	// ID identifies the connection within a diagram.
	ID string

	// Source and Target are the shapes the connection runs between.
	Source *Shape
	Target *Shape

	// Waypoints is the current route, at least two points.
	Waypoints []Waypoint

	// Label is free text attached to the connection midpoint.
	Label string
}

// NewConnection returns a connection with a fresh unique ID routed
// through the given waypoints.
func NewConnection(source, target *Shape, waypoints []Waypoint) *Connection {
	return &Connection{
		ID:        uuid.NewString(),
		Source:    source,
		Target:    target,
		Waypoints: waypoints,
	}
}
