// Package diagram provides the geometric core for interactive
// node-and-edge diagrams.
//
// # Overview
//
// diagram computes the visually correct endpoints of connections between
// shapes. A connection is an ordered sequence of waypoints; its endpoint
// shapes expose boundary outlines. The docking engine crops the connection
// so its rendered line starts and ends exactly where it crosses each
// shape's boundary, however the waypoints were produced.
//
// # Quick Start
//
//	import "github.com/gogpu/diagram"
//
//	d := diagram.NewDiagram()
//
//	a := d.AddShape(diagram.NewShape(0, 0, 100, 100))
//	b := d.AddShape(diagram.NewShape(200, 0, 100, 100))
//
//	// Connect crops the default center-to-center route to the
//	// shape boundaries: (100,50) -> (200,50).
//	conn, err := d.Connect(a, b)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(conn.Waypoints)
//
//	// Moving a shape re-docks every connection touching it.
//	_ = d.MoveShape(b, 50, 80)
//
// # Docking Strategies
//
// Two Docking implementations ship with the package. CroppingDocking
// intersects the connection path with each endpoint shape's outline and
// trims the route to the crossing points. IdentityDocking returns
// endpoints unmodified, for callers that manage endpoints themselves.
//
// Shape outlines and connection paths come from a PathProvider.
// GraphicsProvider is the standard implementation; custom providers can
// supply any closed boundary geometry.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package diagram

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
