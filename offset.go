package contour

import (
	"math"
	"slices"
)

// OffsetCurve is the [offset curve] of Source at signed Distance along the
// left-hand normal. It shares the parametrization of its source.
//
// [offset curve]: https://en.wikipedia.org/wiki/Parallel_curve
type OffsetCurve struct {
	Source   Curve
	Distance float64
}

var _ Curve = OffsetCurve{}

// NewOffsetCurve returns the offset of c by d. Offsets of offsets fold into
// a single offset of the innermost source, and a zero total distance returns
// the source itself.
func NewOffsetCurve(c Curve, d float64) Curve {
	if o, ok := c.(OffsetCurve); ok {
		c = o.Source
		d += o.Distance
	}
	if d == 0 {
		return c
	}
	return OffsetCurve{Source: c, Distance: d}
}

func (o OffsetCurve) evalOffset(t float64) Vec2 {
	return Normal(o.Source, t).Mul(o.Distance)
}

func (o OffsetCurve) Domain() Interval { return o.Source.Domain() }

func (o OffsetCurve) Eval(t float64) Point {
	// Point on source curve.
	return o.Source.Eval(t).Translate(o.evalOffset(t))
}

// Deriv returns the derivative, which is that of the source scaled by
// [OffsetCurve.cuspSign].
func (o OffsetCurve) Deriv(t float64) Vec2 {
	return o.Source.Deriv(t).Mul(o.cuspSign(t))
}

// Deriv2 differentiates Deriv numerically.
func (o OffsetCurve) Deriv2(t float64) Vec2 {
	dom := o.Domain()
	h := max(dom.Length(), 1) * 1e-6
	t0 := dom.Clamp(t - h)
	t1 := dom.Clamp(t + h)
	if t1 == t0 {
		return Vec2{}
	}
	return o.Deriv(t1).Sub(o.Deriv(t0)).Div(t1 - t0)
}

func (o OffsetCurve) Closed() bool { return o.Source.Closed() }

func (o OffsetCurve) Trim(t0, t1 float64) Curve {
	if t0 > t1 && !o.Closed() {
		return o.Trim(t1, t0).Reverse()
	}
	return OffsetCurve{Source: o.Source.Trim(t0, t1), Distance: o.Distance}
}

// Reverse reverses the source, which swaps its sides.
func (o OffsetCurve) Reverse() Curve {
	return OffsetCurve{Source: o.Source.Reverse(), Distance: -o.Distance}
}

// Compute a function which has a zero-crossing at cusps, and is positive at low
// curvatures on the source curve.
func (o OffsetCurve) cuspSign(t float64) float64 {
	return 1 - o.Distance*Curvature(o.Source, t)
}

// firstDegenerate returns the smallest parameter at which cuspSign drops to
// ratio or below. The source is sampled on its flattening plus a uniform
// grid, then the first sign change is refined with the ITP method.
func (o OffsetCurve) firstDegenerate(ratio, accuracy float64) (float64, bool) {
	const gridSize = 64
	dom := o.Domain()
	var ts []float64
	for i := range gridSize + 1 {
		ts = append(ts, dom.Lerp(float64(i)/gridSize))
	}
	for _, s := range Flatten(o.Source, accuracy) {
		ts = append(ts, s.T)
	}
	slices.Sort(ts)

	f := func(t float64) float64 {
		return ratio - o.cuspSign(t)
	}
	prev := math.NaN()
	var fprev float64
	for _, t := range ts {
		ft := f(t)
		if ft >= 0 {
			if math.IsNaN(prev) || ft == 0 {
				return t, true
			}
			k1 := 0.2 / (t - prev)
			const itpEpsilon = 1e-12
			return SolveITP(f, prev, t, itpEpsilon, 1, k1, fprev, ft), true
		}
		prev, fprev = t, ft
	}
	return 0, false
}

func sign(x float64) float64 {
	if math.Signbit(x) {
		return -1
	} else {
		return 1
	}
}
