// Command diagramdemo demonstrates connection docking on a small
// flowchart.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/gogpu/diagram"
	"github.com/gogpu/diagram/render"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "diagram.png", "output file")
	)
	flag.Parse()

	d := buildFlowchart()

	reportDocking(d)

	// Move a shape and show the connections following it.
	done := findShape(d, "Done")
	if err := d.MoveShape(done, 0, 60); err != nil {
		log.Fatalf("Failed to move: %v", err)
	}
	fmt.Println("after moving Done down by 60:")
	reportDocking(d)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()

	opts := render.DefaultOptions()
	opts.Width = *width
	opts.Height = *height
	if err := render.SavePNG(f, d, opts); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func buildFlowchart() *diagram.Diagram {
	d := diagram.NewDiagram()

	start := d.AddShape(diagram.NewShape(60, 60, 140, 70))
	start.Outline = diagram.OutlineRoundedRect
	start.Label = "Start"

	validate := d.AddShape(diagram.NewShape(320, 50, 160, 90))
	validate.Label = "Validate"
	validate.Rotation = math.Pi / 12

	decide := d.AddShape(diagram.NewShape(580, 40, 160, 110))
	decide.Outline = diagram.OutlineDiamond
	decide.Label = "OK?"

	done := d.AddShape(diagram.NewShape(580, 320, 160, 100))
	done.Outline = diagram.OutlineEllipse
	done.Label = "Done"

	retry := d.AddShape(diagram.NewShape(300, 330, 120, 90))
	retry.Outline = diagram.OutlinePolygon
	retry.Points = []diagram.Point{
		diagram.Pt(360, 330),
		diagram.Pt(420, 420),
		diagram.Pt(300, 420),
	}
	retry.Label = "Retry"

	mustConnect(d, start, validate, "")
	mustConnect(d, validate, decide, "")
	mustConnect(d, decide, done, "yes")

	// Route the retry branch around the decision with an explicit bend.
	no, err := d.Connect(decide, retry,
		diagram.WaypointAt(decide.Center()),
		diagram.Wp(decide.Center().X, retry.Center().Y),
		diagram.WaypointAt(retry.Center()),
	)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	no.Label = "no"

	back, err := d.Connect(retry, validate,
		diagram.WaypointAt(retry.Center()),
		diagram.Wp(retry.Center().X, validate.Center().Y),
		diagram.WaypointAt(validate.Center()),
	)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	back.Label = "retry"

	return d
}

func mustConnect(d *diagram.Diagram, from, to *diagram.Shape, label string) {
	conn, err := d.Connect(from, to)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	conn.Label = label
}

func findShape(d *diagram.Diagram, label string) *diagram.Shape {
	for _, s := range d.Shapes() {
		if s.Label == label {
			return s
		}
	}
	log.Fatalf("No shape labeled %q", label)
	return nil
}

func reportDocking(d *diagram.Diagram) {
	for _, conn := range d.Connections() {
		first := conn.Waypoints[0]
		last := conn.Waypoints[len(conn.Waypoints)-1]
		fmt.Printf("  %s -> %s: docks (%.1f, %.1f) to (%.1f, %.1f) via %d waypoints\n",
			conn.Source.Label, conn.Target.Label,
			first.X, first.Y, last.X, last.Y, len(conn.Waypoints))
	}
}
