package diagram

import "errors"

// Sentinel errors for docking and diagram operations.
var (
	// ErrNilProvider is returned when a docking engine is constructed
	// without a path provider.
	ErrNilProvider = errors.New("diagram: path provider is nil")

	// ErrNilConnection is returned when a nil connection is passed to a
	// docking operation.
	ErrNilConnection = errors.New("diagram: connection is nil")

	// ErrTooFewWaypoints is returned when a connection route has fewer
	// than two waypoints.
	ErrTooFewWaypoints = errors.New("diagram: connection needs at least two waypoints")

	// ErrMissingShape is returned when an endpoint shape is nil and
	// cannot be resolved from the connection.
	ErrMissingShape = errors.New("diagram: endpoint shape is missing")
)
