package contour

import "math"

// Tolerance collects the numeric thresholds used throughout this package.
// A zero field selects the corresponding field of [DefaultTolerance], so
// callers only need to set the values they care about.
type Tolerance struct {
	// Region is the absolute distance below which two points are
	// coincident.
	Region float64
	// Param is the distance in parameter space below which two parameters
	// on the same curve are equal, regardless of the curve's speed.
	Param float64
	// DegenerateRatio is the threshold on 1 - d·κ below which offsetting
	// by d at a point of signed curvature κ is degenerate.
	DegenerateRatio float64
	// Accuracy controls flattening, quadrature and polyline candidate
	// searches.
	Accuracy float64
	// MaxIterations bounds Newton refinement loops.
	MaxIterations int
}

// DefaultTolerance is suitable for geometry with coordinates roughly in the
// range of 1e-3 to 1e4.
var DefaultTolerance = Tolerance{
	Region:          1e-6,
	Param:           1e-9,
	DegenerateRatio: 1e-6,
	Accuracy:        1e-4,
	MaxIterations:   32,
}

func (tol Tolerance) withDefaults() Tolerance {
	if tol.Region <= 0 {
		tol.Region = DefaultTolerance.Region
	}
	if tol.Param <= 0 {
		tol.Param = DefaultTolerance.Param
	}
	if tol.DegenerateRatio <= 0 {
		tol.DegenerateRatio = DefaultTolerance.DegenerateRatio
	}
	if tol.Accuracy <= 0 {
		tol.Accuracy = DefaultTolerance.Accuracy
	}
	if tol.MaxIterations <= 0 {
		tol.MaxIterations = DefaultTolerance.MaxIterations
	}
	return tol
}

func (tol Tolerance) samePoint(a, b Point) bool {
	return a.Near(b, tol.Region)
}

// sameParam reports whether t0 and t1 denote the same location on c. Besides
// the raw parameter tolerance, parameters whose distance maps to less than
// Region along the curve are equal as well.
func (tol Tolerance) sameParam(c Curve, t0, t1 float64) bool {
	dt := paramDistance(c, t0, t1)
	if dt <= tol.Param {
		return true
	}
	return dt*c.Deriv(t0).Hypot() <= tol.Region
}

func equalWithin(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
