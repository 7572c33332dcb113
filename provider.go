package diagram

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultCornerRadius is the corner radius used for rounded rectangle
// outlines when the shape does not carry its own.
const DefaultCornerRadius = 10.0

// PathProvider supplies the geometry a cropping strategy intersects.
//
// Both methods may return nil or an empty path to signal that no
// geometry exists; docking then falls back to the raw waypoint instead
// of failing.
type PathProvider interface {
	// ShapePath returns the closed boundary path of shape.
	ShapePath(shape *Shape) *Path

	// ConnectionPath returns the route path through waypoints.
	ConnectionPath(waypoints []Waypoint) *Path
}

var _ PathProvider = (*GraphicsProvider)(nil)

// GraphicsProvider derives paths from the diagram element model. Shape
// boundaries follow the shape's Outline and Rotation; connection routes
// are polylines, optionally with rounded bends.
type GraphicsProvider struct {
	cornerRadius float64
	bendRadius   float64
}

// NewGraphicsProvider returns a provider with the default geometry
// settings, adjusted by opts.
func NewGraphicsProvider(opts ...ProviderOption) *GraphicsProvider {
	cfg := providerConfig{
		cornerRadius: DefaultCornerRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GraphicsProvider{
		cornerRadius: cfg.cornerRadius,
		bendRadius:   cfg.bendRadius,
	}
}

// ShapePath builds the closed outline of shape. Shapes with empty
// bounds, and polygons with fewer than three points, have no boundary
// and yield nil.
func (p *GraphicsProvider) ShapePath(shape *Shape) *Path {
	if shape == nil {
		return nil
	}

	b := shape.Bounds
	path := NewPath()

	switch shape.Outline {
	case OutlinePolygon:
		if len(shape.Points) < 3 {
			return nil
		}
		path.Polygon(shape.Points...)
	case OutlineEllipse:
		if b.IsEmpty() {
			return nil
		}
		c := b.Center()
		path.Ellipse(c.X, c.Y, b.Width()/2, b.Height()/2)
	case OutlineDiamond:
		if b.IsEmpty() {
			return nil
		}
		path.Diamond(b.Min.X, b.Min.Y, b.Width(), b.Height())
	case OutlineRoundedRect:
		if b.IsEmpty() {
			return nil
		}
		r := shape.CornerRadius
		if r <= 0 {
			r = p.cornerRadius
		}
		path.RoundedRectangle(b.Min.X, b.Min.Y, b.Width(), b.Height(), r)
	default:
		if b.IsEmpty() {
			return nil
		}
		path.Rectangle(b.Min.X, b.Min.Y, b.Width(), b.Height())
	}

	if shape.Rotation != 0 {
		c := b.Center()
		path = path.Transform(RotateAbout(shape.Rotation, c.X, c.Y))
	}
	return path
}

// ConnectionPath builds the open route path through waypoints. Fewer
// than two waypoints yield nil. With a bend radius configured, interior
// bends are smoothed by quadratic curves whose extent is clamped to
// half of each adjacent segment.
func (p *GraphicsProvider) ConnectionPath(waypoints []Waypoint) *Path {
	if len(waypoints) < 2 {
		return nil
	}
	pts := routePoints(waypoints)

	path := NewPath()
	path.MoveTo(pts[0].X, pts[0].Y)

	if p.bendRadius <= 0 {
		for _, pt := range pts[1:] {
			path.LineTo(pt.X, pt.Y)
		}
		return path
	}

	for i := 1; i < len(pts)-1; i++ {
		prev, bend, next := pts[i-1], pts[i], pts[i+1]
		in := bend.Sub(prev)
		out := next.Sub(bend)
		inLen := in.Length()
		outLen := out.Length()

		// Zero-length segments leave no direction to round along.
		if scalar.EqualWithinAbs(inLen, 0, 1e-12) || scalar.EqualWithinAbs(outLen, 0, 1e-12) {
			path.LineTo(bend.X, bend.Y)
			continue
		}

		r := math.Min(p.bendRadius, math.Min(inLen, outLen)/2)
		entry := bend.Sub(in.Mul(r / inLen))
		exit := bend.Add(out.Mul(r / outLen))
		path.LineTo(entry.X, entry.Y)
		path.QuadraticTo(bend.X, bend.Y, exit.X, exit.Y)
	}

	last := pts[len(pts)-1]
	path.LineTo(last.X, last.Y)
	return path
}
