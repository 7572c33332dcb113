package diagram

import "math"

// PathElement is one drawing command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo extends the subpath with a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo extends the subpath with a quadratic Bezier segment through
// Control to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo extends the subpath with a cubic Bezier segment through
// Control1 and Control2 to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close returns the subpath to its starting point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of drawing commands. Shape boundaries
// are closed paths; connection routes are open ones. The docking
// engine treats paths as opaque values, only the intersection
// primitive looks inside.
type Path struct {
	elements []PathElement
	start    Point // start of the current subpath
	current  Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo adds a quadratic Bezier segment through the control
// point (cx, cy) to (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo adds a cubic Bezier segment through the control points
// (c1x, c1y) and (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements so the path can be rebuilt in place.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path's drawing commands.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements. An empty or nil
// path stands for "no boundary available".
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Bounds returns the axis-aligned box around the path. Curved
// segments contribute their exact extent, not their control points.
// An empty path has empty bounds.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}

	var box Rect
	first := true
	add := func(r Rect) {
		if first {
			box, first = r, false
			return
		}
		box = box.Union(r)
	}

	var current, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(NewRect(e.Point, e.Point))
			current, start = e.Point, e.Point
		case LineTo:
			add(NewRect(current, e.Point))
			current = e.Point
		case QuadTo:
			add(NewQuadBez(current, e.Control, e.Point).BoundingBox())
			current = e.Point
		case CubicTo:
			add(NewCubicBez(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		case Close:
			current = start
		}
	}
	return box
}

// Transform returns a copy of the path with every point mapped
// through m. The receiver is left untouched.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds the closed outline of a rectangle with top-left
// corner (x, y).
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Diamond adds the closed outline of a rhombus inscribed in the
// rectangle with top-left corner (x, y). Gateway shapes in process
// diagrams use this outline.
func (p *Path) Diamond(x, y, w, h float64) {
	cx := x + w/2
	cy := y + h/2
	p.MoveTo(cx, y)
	p.LineTo(x+w, cy)
	p.LineTo(cx, y+h)
	p.LineTo(x, cy)
	p.Close()
}

// Polygon adds the closed outline through the given points. Fewer
// than three points add nothing.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) < 3 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Ellipse adds the closed outline of an axis-aligned ellipse centered
// at (cx, cy), approximated by four cubic segments.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// 4/3 * (sqrt(2) - 1), the control offset that makes a cubic hug
	// a quarter circle.
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 in
// radians, split into cubic segments of at most a quarter turn.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	segments := int(math.Ceil((angle2 - angle1) / maxAngle))
	step := (angle2 - angle1) / float64(segments)

	for i := 0; i < segments; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

// arcSegment adds one cubic approximating an arc of at most a quarter
// turn.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	// Control distance per "Drawing an elliptical arc using polylines,
	// quadratic or cubic Bezier curves" (L. Maisonobe).
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2)
}

// RoundedRectangle adds the closed outline of a rectangle whose
// corners are rounded with radius r, clamped to half the smaller
// dimension.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
