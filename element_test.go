package diagram

import "testing"

func TestNewShape(t *testing.T) {
	s := NewShape(10, 20, 100, 50)

	if s.ID == "" {
		t.Error("NewShape should assign an ID")
	}
	if !pointsEqual(s.Bounds.Min, Pt(10, 20), epsilon) {
		t.Errorf("Bounds.Min = %v, want (10, 20)", s.Bounds.Min)
	}
	if !pointsEqual(s.Bounds.Max, Pt(110, 70), epsilon) {
		t.Errorf("Bounds.Max = %v, want (110, 70)", s.Bounds.Max)
	}
	if s.Outline != OutlineRect {
		t.Errorf("Outline = %v, want OutlineRect", s.Outline)
	}
	if !pointsEqual(s.Center(), Pt(60, 45), epsilon) {
		t.Errorf("Center() = %v, want (60, 45)", s.Center())
	}
}

func TestNewShape_UniqueIDs(t *testing.T) {
	a := NewShape(0, 0, 10, 10)
	b := NewShape(0, 0, 10, 10)
	if a.ID == b.ID {
		t.Errorf("two shapes share ID %q", a.ID)
	}
}

func TestOutline_String(t *testing.T) {
	tests := []struct {
		outline Outline
		want    string
	}{
		{OutlineRect, "Rect"},
		{OutlineRoundedRect, "RoundedRect"},
		{OutlineEllipse, "Ellipse"},
		{OutlineDiamond, "Diamond"},
		{OutlinePolygon, "Polygon"},
		{Outline(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.outline.String(); got != tt.want {
			t.Errorf("Outline(%d).String() = %q, want %q", tt.outline, got, tt.want)
		}
	}
}

func TestNewConnection(t *testing.T) {
	source := NewShape(0, 0, 100, 100)
	target := NewShape(200, 0, 100, 100)
	route := Route(Pt(50, 50), Pt(250, 50))

	conn := NewConnection(source, target, route)

	if conn.ID == "" {
		t.Error("NewConnection should assign an ID")
	}
	if conn.Source != source || conn.Target != target {
		t.Error("connection endpoints not set")
	}
	if len(conn.Waypoints) != 2 {
		t.Errorf("len(Waypoints) = %d, want 2", len(conn.Waypoints))
	}
}
