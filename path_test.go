package diagram

import (
	"math"
	"testing"
)

func TestPath_Basics(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}

	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	if p.IsEmpty() {
		t.Error("path with elements should not be empty")
	}
	if len(p.Elements()) != 2 {
		t.Errorf("len(Elements()) = %d, want 2", len(p.Elements()))
	}
	last, ok := p.Elements()[1].(LineTo)
	if !ok || !pointsEqual(last.Point, Pt(3, 4), epsilon) {
		t.Errorf("last element = %v, want LineTo (3, 4)", p.Elements()[1])
	}
}

func TestPath_IsEmptyNil(t *testing.T) {
	var p *Path
	if !p.IsEmpty() {
		t.Error("nil path should report empty")
	}
}

func TestPath_Rectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 100, 50)

	elems := p.Elements()
	if len(elems) != 5 { // MoveTo, 3x LineTo, Close
		t.Fatalf("len(Elements()) = %d, want 5", len(elems))
	}
	if _, ok := elems[len(elems)-1].(Close); !ok {
		t.Error("rectangle should end with Close")
	}
}

func TestPath_PolygonTooFewPoints(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(10, 0))

	if !p.IsEmpty() {
		t.Error("polygon with two points should add nothing")
	}
}

func TestPath_Polygon(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(10, 0), Pt(5, 10))

	elems := p.Elements()
	if len(elems) != 4 { // MoveTo, 2x LineTo, Close
		t.Fatalf("len(Elements()) = %d, want 4", len(elems))
	}
}

func TestPath_Diamond(t *testing.T) {
	p := NewPath()
	p.Diamond(0, 0, 100, 80)

	elems := p.Elements()
	if len(elems) != 5 { // MoveTo, 3x LineTo, Close
		t.Fatalf("len(Elements()) = %d, want 5", len(elems))
	}

	first, ok := elems[0].(MoveTo)
	if !ok || !pointsEqual(first.Point, Pt(50, 0), epsilon) {
		t.Errorf("start = %v, want MoveTo (50, 0)", elems[0])
	}

	want := []Point{Pt(100, 40), Pt(50, 80), Pt(0, 40)}
	for i, w := range want {
		line, ok := elems[i+1].(LineTo)
		if !ok || !pointsEqual(line.Point, w, epsilon) {
			t.Errorf("vertex %d = %v, want LineTo %v", i+1, elems[i+1], w)
		}
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	moved := p.Transform(Translate(5, 5))

	first, ok := moved.Elements()[0].(MoveTo)
	if !ok {
		t.Fatalf("expected MoveTo, got %T", moved.Elements()[0])
	}
	if !pointsEqual(first.Point, Pt(5, 5), epsilon) {
		t.Errorf("transformed start = %v, want (5, 5)", first.Point)
	}

	// The source path is untouched.
	orig := p.Elements()[0].(MoveTo)
	if !pointsEqual(orig.Point, Pt(0, 0), epsilon) {
		t.Errorf("source path changed: %v", orig.Point)
	}
}

func TestPath_Bounds(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 20, 100, 50)

	b := p.Bounds()
	if !pointsEqual(b.Min, Pt(10, 20), epsilon) || !pointsEqual(b.Max, Pt(110, 70), epsilon) {
		t.Errorf("Bounds = %v..%v, want (10,20)..(110,70)", b.Min, b.Max)
	}
}

func TestPath_BoundsCurveExtent(t *testing.T) {
	// The arc rises to y=50 at its apex; the control point at y=100
	// must not leak into the bounds.
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(50, 100, 100, 0)

	b := p.Bounds()
	if !pointsEqual(b.Min, Pt(0, 0), epsilon) {
		t.Errorf("Min = %v, want (0, 0)", b.Min)
	}
	if !pointsEqual(b.Max, Pt(100, 50), epsilon) {
		t.Errorf("Max = %v, want (100, 50)", b.Max)
	}
}

func TestPath_BoundsEllipse(t *testing.T) {
	p := NewPath()
	p.Ellipse(50, 50, 40, 20)

	b := p.Bounds()
	if !pointsEqual(b.Min, Pt(10, 30), 1e-9) || !pointsEqual(b.Max, Pt(90, 70), 1e-9) {
		t.Errorf("Bounds = %v..%v, want (10,30)..(90,70)", b.Min, b.Max)
	}
}

func TestPath_BoundsEmpty(t *testing.T) {
	var p *Path
	if !p.Bounds().IsEmpty() {
		t.Error("nil path should have empty bounds")
	}
}

func TestPath_EllipseOnBoundary(t *testing.T) {
	p := NewPath()
	p.Ellipse(50, 50, 40, 20)

	// Sampling the flattened outline, every point satisfies the
	// ellipse equation within the flattening tolerance.
	for _, ring := range p.Flatten(0.01) {
		for _, pt := range ring {
			dx := (pt.X - 50) / 40
			dy := (pt.Y - 50) / 20
			r := math.Sqrt(dx*dx + dy*dy)
			if math.Abs(r-1) > 0.01 {
				t.Fatalf("point %v deviates from the ellipse: r = %v", pt, r)
			}
		}
	}
}

func TestPath_Clone(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 10)

	c := p.Clone()
	c.LineTo(20, 20)

	if len(p.Elements()) != 2 {
		t.Errorf("clone mutation leaked into source: %d elements", len(p.Elements()))
	}
	if len(c.Elements()) != 3 {
		t.Errorf("clone has %d elements, want 3", len(c.Elements()))
	}
}

func TestPath_Clear(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	p.Clear()

	if !p.IsEmpty() {
		t.Error("cleared path should be empty")
	}
}
