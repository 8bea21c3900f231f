package contour

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Interval is a closed parameter range.
type Interval struct {
	Min float64
	Max float64
}

// Length returns Max - Min.
func (iv Interval) Length() float64 { return iv.Max - iv.Min }

// Contains reports whether t lies in the interval.
func (iv Interval) Contains(t float64) bool { return t >= iv.Min && t <= iv.Max }

// Clamp restricts t to the interval.
func (iv Interval) Clamp(t float64) float64 { return min(max(t, iv.Min), iv.Max) }

// Lerp maps f ∈ [0, 1] onto the interval.
func (iv Interval) Lerp(f float64) float64 { return iv.Min + f*(iv.Max-iv.Min) }

// Curve describes a planar curve parametrized over [Curve.Domain].
//
// Curves are values: operations such as [Curve.Trim] and [Curve.Reverse]
// return new curves and never modify the receiver.
type Curve interface {
	// Domain returns the parameter range of the curve.
	Domain() Interval
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Deriv returns the first derivative with respect to t.
	Deriv(t float64) Vec2
	// Deriv2 returns the second derivative with respect to t.
	Deriv2(t float64) Vec2
	// Closed reports whether the curve ends where it starts.
	Closed() bool
	// Trim returns the piece of the curve from t0 to t1. On a closed curve,
	// t0 > t1 selects the piece that passes through the end of the domain.
	// On an open curve, t0 > t1 selects the reversed piece.
	Trim(t0, t1 float64) Curve
	// Reverse returns the curve traversed in the opposite direction. The
	// parametrization of the result is unspecified.
	Reverse() Curve
}

// Nearester describes curves that can find the point nearest to a given
// point without falling back to numeric search.
type Nearester interface {
	// Nearest returns the squared distance to and the parameter of the
	// point on the curve nearest to pt.
	Nearest(pt Point, accuracy float64) (distSq, t float64)
}

// Arclener describes curves that can measure their own length.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

// SignedAreaer describes curves that can compute the signed area enclosed
// between the curve and the origin, 0.5·∫(x dy − y dx).
//
// For a closed path, the signed area of the path is the sum of signed areas of
// the segments. This is a variant of the "shoelace formula."
type SignedAreaer interface {
	SignedArea() float64
}

// SelfIntersecter describes curves that can compute their own crossings.
type SelfIntersecter interface {
	SelfIntersections(tol Tolerance) []Intersection
}

// Start returns the point at the start of the domain.
func Start(c Curve) Point { return c.Eval(c.Domain().Min) }

// End returns the point at the end of the domain.
func End(c Curve) Point { return c.Eval(c.Domain().Max) }

// ClosedWithin reports whether c ends within tol.Region of its start.
// Closed methods that compare end points use DefaultTolerance.Region;
// callers with their own tolerance can check against it here.
func ClosedWithin(c Curve, tol Tolerance) bool {
	tol = tol.withDefaults()
	if isDegenerate(c) {
		return false
	}
	return tol.samePoint(Start(c), End(c))
}

// Period returns the length of the domain of a closed curve and 0 for open
// curves.
func Period(c Curve) float64 {
	if !c.Closed() {
		return 0
	}
	return c.Domain().Length()
}

// paramDistance measures the distance between two parameters, going round
// the domain for closed curves.
func paramDistance(c Curve, t0, t1 float64) float64 {
	d := math.Abs(t0 - t1)
	if p := Period(c); p > 0 {
		d = math.Mod(d, p)
		d = min(d, p-d)
	}
	return d
}

// wrapParam maps t into the domain of a closed curve.
func wrapParam(c Curve, t float64) float64 {
	dom := c.Domain()
	p := Period(c)
	if p <= 0 {
		return dom.Clamp(t)
	}
	t = math.Mod(t-dom.Min, p)
	if t < 0 {
		t += p
	}
	return dom.Min + t
}

// forwardDistance is the distance travelled from t0 to t1 in the direction of
// increasing parameter, wrapping on closed curves.
func forwardDistance(c Curve, t0, t1 float64) float64 {
	d := t1 - t0
	if p := Period(c); p > 0 {
		d = math.Mod(d, p)
		if d < 0 {
			d += p
		}
	}
	return d
}

// isDegenerate reports whether c has an empty domain or collapses onto a
// single point.
func isDegenerate(c Curve) bool {
	dom := c.Domain()
	if !(dom.Length() > 0) {
		return true
	}
	p := c.Eval(dom.Min)
	return p == c.Eval(dom.Max) && p == c.Eval(dom.Lerp(0.5)) && c.Deriv(dom.Min).IsZero(0)
}

// Tangent returns the unit tangent at t. Where the first derivative vanishes
// the second derivative, and then a finite difference, stand in for it.
func Tangent(c Curve, t float64) Vec2 {
	const epsilon = 1e-24
	d := c.Deriv(t)
	if d.Hypot2() > epsilon {
		return d.Normalize()
	}
	d = c.Deriv2(t)
	if d.Hypot2() > epsilon {
		return d.Normalize()
	}
	dom := c.Domain()
	h := dom.Length() * 1e-6
	d = c.Eval(dom.Clamp(t + h)).Sub(c.Eval(dom.Clamp(t - h)))
	if d.Hypot2() > epsilon {
		return d.Normalize()
	}
	return Vec2{}
}

// Normal returns the unit left-hand normal at t.
func Normal(c Curve, t float64) Vec2 {
	return Tangent(c, t).Perp()
}

// Curvature returns the signed curvature at t. It is positive where the curve
// turns counter-clockwise.
func Curvature(c Curve, t float64) float64 {
	d1 := c.Deriv(t)
	d2 := c.Deriv2(t)
	s := d1.Hypot()
	if s == 0 {
		return 0
	}
	return d1.Cross(d2) / (s * s * s)
}

// Project finds the parameter of the point on c nearest to pt and the
// distance to it.
func Project(c Curve, pt Point, tol Tolerance) (t, dist float64) {
	if n, ok := c.(Nearester); ok {
		distSq, t := n.Nearest(pt, tol.withDefaults().Accuracy)
		return t, math.Sqrt(distSq)
	}
	return projectNumeric(c, pt, tol.withDefaults())
}

// projectNumeric seeds Newton's method on C'(t)·(C(t) − P) = 0 from the best
// flattened sample.
func projectNumeric(c Curve, pt Point, tol Tolerance) (float64, float64) {
	dom := c.Domain()
	if isDegenerate(c) {
		return dom.Min, pt.Distance(c.Eval(dom.Min))
	}
	bestT := dom.Min
	bestD := math.Inf(1)
	for _, s := range Flatten(c, tol.Accuracy) {
		if d := s.Point.DistanceSquared(pt); d < bestD {
			bestT, bestD = s.T, d
		}
	}

	closed := c.Closed()
	u := bestT
	for range tol.MaxIterations {
		p := c.Eval(u)
		d1 := c.Deriv(u)
		d2 := c.Deriv2(u)
		diff := p.Sub(pt)
		f := d1.Dot(diff)
		df := d2.Dot(diff) + d1.Dot(d1)
		if df == 0 {
			break
		}
		next := u - f/df
		if closed {
			next = wrapParam(c, next)
		} else {
			next = dom.Clamp(next)
		}
		if math.Abs(next-u)*d1.Hypot() <= tol.Region*1e-3 {
			u = next
			break
		}
		u = next
	}
	if d := c.Eval(u).DistanceSquared(pt); d <= bestD {
		bestT, bestD = u, d
	}
	return bestT, math.Sqrt(bestD)
}

// Length returns the arc length of c.
func Length(c Curve, accuracy float64) float64 {
	if a, ok := c.(Arclener); ok {
		return a.Arclen(accuracy)
	}
	return integrate(c, func(t float64) float64 { return c.Deriv(t).Hypot() })
}

// SignedArea returns 0.5·∫(x dy − y dx) along c. For a closed curve this is
// the enclosed area, positive for counter-clockwise curves.
func SignedArea(c Curve) float64 {
	if a, ok := c.(SignedAreaer); ok {
		return a.SignedArea()
	}
	return 0.5 * integrate(c, func(t float64) float64 {
		return Vec2(c.Eval(t)).Cross(c.Deriv(t))
	})
}

// integrate applies fixed Gauss-Legendre quadrature over equal pieces of the
// domain of c.
func integrate(c Curve, f func(float64) float64) float64 {
	const pieces = 16
	const nodes = 16
	dom := c.Domain()
	if isDegenerate(c) {
		return 0
	}
	var sum float64
	for i := range pieces {
		a := dom.Lerp(float64(i) / pieces)
		b := dom.Lerp(float64(i+1) / pieces)
		sum += quad.Fixed(f, a, b, nodes, quad.Legendre{}, 0)
	}
	return sum
}

// Sample is a point on a curve together with its parameter.
type Sample struct {
	T     float64
	Point Point
}

// Flatten approximates c by a polyline whose chords deviate from the curve
// by less than tolerance. The first and last samples are at the ends of the
// domain.
func Flatten(c Curve, tolerance float64) []Sample {
	const minDepth = 3
	const maxDepth = 18
	dom := c.Domain()
	if isDegenerate(c) {
		return []Sample{{dom.Min, c.Eval(dom.Min)}}
	}
	switch u := unwrap(c).(type) {
	case Line:
		return []Sample{{0, u.P0}, {1, u.P1}}
	case *Contour:
		return u.flatten(tolerance)
	}
	tol2 := tolerance * tolerance
	out := []Sample{{dom.Min, c.Eval(dom.Min)}}
	var rec func(t0, t1 float64, p0, p1 Point, depth int)
	rec = func(t0, t1 float64, p0, p1 Point, depth int) {
		tm := 0.5 * (t0 + t1)
		pm := c.Eval(tm)
		if depth >= minDepth && depth < maxDepth {
			// Test the midpoint and both quarter points against the chord.
			chord := Line{p0, p1}
			flat := true
			for _, f := range [...]float64{0.25, 0.5, 0.75} {
				q := pm
				if f != 0.5 {
					q = c.Eval(t0 + f*(t1-t0))
				}
				if d, _ := chord.Nearest(q, 0); d > tol2 {
					flat = false
					break
				}
			}
			if flat {
				out = append(out, Sample{t1, p1})
				return
			}
		}
		if depth >= maxDepth {
			out = append(out, Sample{t1, p1})
			return
		}
		rec(t0, tm, p0, pm, depth+1)
		rec(tm, t1, pm, p1, depth+1)
	}
	rec(dom.Min, dom.Max, out[0].Point, c.Eval(dom.Max), 0)
	return out
}

// BoundingBox returns a rectangle enclosing c, computed from its flattening
// and inflated by the flattening tolerance.
func BoundingBox(c Curve, tolerance float64) Rect {
	switch c := unwrap(c).(type) {
	case Line:
		return NewRectFromPoints(c.P0, c.P1)
	case Circle:
		return c.BoundingBox()
	case Arc:
		return c.BoundingBox()
	case CubicBez:
		return c.BoundingBox()
	}
	samples := Flatten(c, tolerance)
	r := NewRectFromPoints(samples[0].Point, samples[0].Point)
	for _, s := range samples[1:] {
		r = r.UnionPoint(s.Point)
	}
	return r.Inflate(tolerance, tolerance)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
