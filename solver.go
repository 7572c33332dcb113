package diagram

import "math"

// Root solvers for the polynomials that come out of Bezier
// derivatives. The extrema of a cubic segment reduce to a quadratic
// per axis.

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in
// ascending order. A vanishing or overflowing leading coefficient
// degrades to the linear equation; no real roots yield nil.
func SolveQuadratic(a, b, c float64) []float64 {
	// Divide through by a first. If that overflows, a is (nearly)
	// zero and the equation is linear.
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			// Everything solves 0 = 0; report the conventional root.
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4*sc0
	var root1 float64
	switch {
	case !isFinite(arg):
		// The discriminant overflowed; the roots are far apart and
		// -sc1 approximates the dominant one.
		root1 = -sc1
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	default:
		// Form the larger-magnitude root first and derive the other
		// from the product of roots, avoiding cancellation.
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		root1, root2 = root2, root1
	}
	return []float64{root1, root2}
}

// SolveQuadraticInUnitInterval returns the roots of a*x^2 + b*x + c
// that lie in [0, 1], the parameter range of a Bezier segment. Roots
// within a hair of the interval ends are clamped onto them.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12

	var result []float64
	for _, r := range SolveQuadratic(a, b, c) {
		if r < -eps || r > 1+eps {
			continue
		}
		result = append(result, math.Max(0, math.Min(1, r)))
	}
	return result
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
