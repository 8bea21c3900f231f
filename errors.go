package contour

import "errors"

var (
	// ErrNoCurves is returned when an operation needs at least one curve.
	ErrNoCurves = errors.New("no curves")
	// ErrOpenBoundary is returned when a walk reaches the end of an open
	// curve before the boundary closes.
	ErrOpenBoundary = errors.New("boundary is not closed")
	// ErrWalkLimit is returned when a boundary walk does not close within
	// twice the number of candidate curves.
	ErrWalkLimit = errors.New("boundary walk did not terminate")
	// ErrDegenerate is returned when an offset collapses or inverts.
	ErrDegenerate = errors.New("degenerate offset")
	// ErrNotClosed is returned for open curves where a loop is required.
	ErrNotClosed = errors.New("curve is not closed")

	ErrInvalidKnots   = errors.New("invalid knot vector")
	ErrInvalidWeights = errors.New("invalid weights")
	ErrControlPoints  = errors.New("not enough control points")
)
