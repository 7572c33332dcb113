package diagram

// CroppingOption configures a CroppingDocking during creation.
//
// Example:
//
//	dock, err := diagram.NewCroppingDocking(provider,
//		diagram.WithEpsilon(1e-4),
//		diagram.WithFlattenTolerance(0.05))
type CroppingOption func(*croppingConfig)

// croppingConfig holds optional configuration for NewCroppingDocking.
type croppingConfig struct {
	epsilon   float64
	tolerance float64
}

// WithEpsilon sets the distance below which two boundary crossings are
// merged into one. Values of zero or below keep DefaultEpsilon.
func WithEpsilon(eps float64) CroppingOption {
	return func(c *croppingConfig) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithFlattenTolerance sets the maximum distance the flattened boundary
// polyline may deviate from the true curve. Smaller values cost more
// segments. Values of zero or below keep DefaultTolerance.
func WithFlattenTolerance(tolerance float64) CroppingOption {
	return func(c *croppingConfig) {
		if tolerance > 0 {
			c.tolerance = tolerance
		}
	}
}

// ProviderOption configures a GraphicsProvider during creation.
type ProviderOption func(*providerConfig)

// providerConfig holds optional configuration for NewGraphicsProvider.
type providerConfig struct {
	cornerRadius float64
	bendRadius   float64
}

// WithCornerRadius sets the corner radius applied to rounded rectangle
// outlines whose shape carries none.
func WithCornerRadius(r float64) ProviderOption {
	return func(c *providerConfig) {
		if r > 0 {
			c.cornerRadius = r
		}
	}
}

// WithBendRadius enables rounded connection bends with the given
// radius. Zero, the default, keeps routes as sharp polylines.
func WithBendRadius(r float64) ProviderOption {
	return func(c *providerConfig) {
		if r > 0 {
			c.bendRadius = r
		}
	}
}

// DiagramOption configures a Diagram during creation.
//
// Example:
//
//	// Keep connection ends exactly where they were routed.
//	d := diagram.NewDiagram(diagram.WithDocking(diagram.NewIdentityDocking()))
type DiagramOption func(*diagramConfig)

// diagramConfig holds optional configuration for NewDiagram.
type diagramConfig struct {
	docking Docking
}

// WithDocking sets the docking strategy the diagram crops connections
// with. A nil strategy keeps the default cropping strategy.
func WithDocking(dock Docking) DiagramOption {
	return func(c *diagramConfig) {
		if dock != nil {
			c.docking = dock
		}
	}
}
