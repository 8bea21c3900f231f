package contour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/combin"
)

// NurbsCurve is a non-uniform rational B-spline curve. Its domain is
// [knots[degree], knots[len(knots)-degree-1]].
type NurbsCurve struct {
	degree int
	// Homogeneous control points (w·x, w·y, w).
	points []r3.Vec
	knots  KnotVector
}

var _ Curve = (*NurbsCurve)(nil)

// NewNurbsCurve validates its arguments and returns the curve of the given
// degree. Weights must be positive.
func NewNurbsCurve(degree int, points []Point, weights []float64, knots []float64) (*NurbsCurve, error) {
	if degree < 1 {
		panic(fmt.Sprintf("contour: invalid NURBS degree %d", degree))
	}
	if len(points) < degree+1 {
		return nil, fmt.Errorf("%w: have %d, degree %d needs %d", ErrControlPoints, len(points), degree, degree+1)
	}
	if len(weights) != len(points) {
		return nil, fmt.Errorf("%w: have %d weights for %d control points", ErrInvalidWeights, len(weights), len(points))
	}
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %d is %g", ErrInvalidWeights, i, w)
		}
	}
	kv := KnotVector(knots)
	if !kv.Valid(degree, len(points)) {
		return nil, fmt.Errorf("%w: %d knots for %d control points of degree %d", ErrInvalidKnots, len(knots), len(points), degree)
	}
	hp := make([]r3.Vec, len(points))
	for i, p := range points {
		w := weights[i]
		hp[i] = r3.Vec{X: p.X * w, Y: p.Y * w, Z: w}
	}
	return &NurbsCurve{degree: degree, points: hp, knots: append(KnotVector(nil), kv...)}, nil
}

// NewBSpline returns the non-rational B-spline with unit weights.
func NewBSpline(degree int, points []Point, knots []float64) (*NurbsCurve, error) {
	weights := make([]float64, len(points))
	for i := range weights {
		weights[i] = 1
	}
	return NewNurbsCurve(degree, points, weights, knots)
}

// NewUniformBSpline returns the B-spline over clamped uniform knots on
// [0, 1].
func NewUniformBSpline(degree int, points []Point) (*NurbsCurve, error) {
	return NewBSpline(degree, points, UniformKnots(degree, len(points)))
}

// NurbsFromCubic returns the cubic Bézier as a degree 3 B-spline on [0, 1].
func NurbsFromCubic(c CubicBez) *NurbsCurve {
	n, err := NewBSpline(3, []Point{c.P0, c.P1, c.P2, c.P3}, []float64{0, 0, 0, 0, 1, 1, 1, 1})
	if err != nil {
		panic(err)
	}
	return n
}

// NurbsCircle returns the full circle as a rational quadratic curve made of
// four quarter arcs. The curve starts at angle 0 and runs
// counter-clockwise, but its parameter is not proportional to angle.
func NurbsCircle(center Point, radius float64) *NurbsCurve {
	w := math.Sqrt2 / 2
	unit := [...]Vec2{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}}
	points := make([]Point, len(unit))
	weights := make([]float64, len(unit))
	for i, u := range unit {
		points[i] = center.Translate(u.Mul(radius))
		weights[i] = 1
		if i%2 == 1 {
			weights[i] = w
		}
	}
	knots := []float64{0, 0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1, 1}
	n, err := NewNurbsCurve(2, points, weights, knots)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *NurbsCurve) Degree() int { return n.degree }

// ControlPoints returns the control points in Cartesian coordinates.
func (n *NurbsCurve) ControlPoints() []Point {
	out := make([]Point, len(n.points))
	for i, p := range n.points {
		out[i] = Pt(p.X/p.Z, p.Y/p.Z)
	}
	return out
}

func (n *NurbsCurve) Weights() []float64 {
	out := make([]float64, len(n.points))
	for i, p := range n.points {
		out[i] = p.Z
	}
	return out
}

func (n *NurbsCurve) Knots() KnotVector { return append(KnotVector(nil), n.knots...) }

func (n *NurbsCurve) Domain() Interval {
	return Interval{n.knots[n.degree], n.knots[len(n.knots)-n.degree-1]}
}

// homogeneousDerivs returns the derivatives of the curve in homogeneous
// space up to order nDerivs.
func (n *NurbsCurve) homogeneousDerivs(u float64, nDerivs int) []r3.Vec {
	p := n.degree
	span := n.knots.Span(p, u)
	ders := DerivBasisFunctions(span, u, p, nDerivs, n.knots)
	out := make([]r3.Vec, nDerivs+1)
	for k := range out {
		for j := 0; j <= p; j++ {
			out[k] = r3.Add(out[k], r3.Scale(ders[k][j], n.points[span-p+j]))
		}
	}
	return out
}

// Point evaluates the curve at u.
func (n *NurbsCurve) Point(u float64) Point {
	p := n.degree
	u = n.Domain().Clamp(u)
	span := n.knots.Span(p, u)
	basis := BasisFunctions(span, u, p, n.knots)
	var h r3.Vec
	for j, b := range basis {
		h = r3.Add(h, r3.Scale(b, n.points[span-p+j]))
	}
	return Pt(h.X/h.Z, h.Y/h.Z)
}

// Derivatives returns the point at u followed by the derivatives up to
// order nDerivs. This is algorithm A4.2 of The NURBS Book.
func (n *NurbsCurve) Derivatives(u float64, nDerivs int) []Vec2 {
	u = n.Domain().Clamp(u)
	ders := n.homogeneousDerivs(u, nDerivs)
	ck := make([]Vec2, 0, nDerivs+1)
	for k := 0; k <= nDerivs; k++ {
		v := Vec(ders[k].X, ders[k].Y)
		for i := 1; i <= k; i++ {
			v = v.Sub(ck[k-i].Mul(float64(combin.Binomial(k, i)) * ders[i].Z))
		}
		ck = append(ck, v.Div(ders[0].Z))
	}
	return ck
}

func (n *NurbsCurve) Eval(u float64) Point  { return n.Point(u) }
func (n *NurbsCurve) Deriv(u float64) Vec2  { return n.Derivatives(u, 1)[1] }
func (n *NurbsCurve) Deriv2(u float64) Vec2 { return n.Derivatives(u, 2)[2] }

// Closed reports whether the curve ends at its starting point, within
// DefaultTolerance.Region.
func (n *NurbsCurve) Closed() bool {
	return Start(n).Near(End(n), DefaultTolerance.Region)
}

// insertKnot inserts u once, using Boehm's algorithm (A5.1 of The NURBS
// Book with r = 1) on the homogeneous control points.
func (n *NurbsCurve) insertKnot(u float64) *NurbsCurve {
	p := n.degree
	k := n.knots.Span(p, u)
	s := n.knots.Multiplicity(u)
	pts := make([]r3.Vec, len(n.points)+1)
	for i := range pts {
		switch {
		case i <= k-p:
			pts[i] = n.points[i]
		case i >= k-s+1:
			pts[i] = n.points[i-1]
		default:
			alpha := (u - n.knots[i]) / (n.knots[i+p] - n.knots[i])
			pts[i] = r3.Add(r3.Scale(alpha, n.points[i]), r3.Scale(1-alpha, n.points[i-1]))
		}
	}
	return &NurbsCurve{degree: p, points: pts, knots: n.knots.inserted(k, u)}
}

// Split splits the curve at u into the pieces before and after it. It
// returns false if u does not lie strictly inside the domain.
func (n *NurbsCurve) Split(u float64) (*NurbsCurve, *NurbsCurve, bool) {
	dom := n.Domain()
	if !(u > dom.Min && u < dom.Max) {
		return nil, nil, false
	}
	p := n.degree
	c := n
	for c.knots.Multiplicity(u) < p {
		c = c.insertKnot(u)
	}
	a := 0
	for c.knots[a] != u {
		a++
	}

	leftKnots := append(append(KnotVector(nil), c.knots[:a+p]...), u)
	rightKnots := append(KnotVector{u}, c.knots[a:]...)
	left := &NurbsCurve{degree: p, points: append([]r3.Vec(nil), c.points[:a]...), knots: leftKnots}
	right := &NurbsCurve{degree: p, points: append([]r3.Vec(nil), c.points[a-1:]...), knots: rightKnots}
	return left, right, true
}

func (n *NurbsCurve) Trim(t0, t1 float64) Curve {
	dom := n.Domain()
	if t0 > t1 {
		if n.Closed() {
			return NewContour(n.Trim(t0, dom.Max), n.Trim(dom.Min, t1))
		}
		return n.Trim(t1, t0).Reverse()
	}
	t0 = dom.Clamp(t0)
	t1 = dom.Clamp(t1)
	c := n
	if _, right, ok := c.Split(t0); ok {
		c = right
	}
	if left, _, ok := c.Split(t1); ok {
		c = left
	}
	if t0 == t1 {
		p := n.Point(t0)
		return Line{p, p}
	}
	return c
}

func (n *NurbsCurve) Reverse() Curve {
	pts := make([]r3.Vec, len(n.points))
	for i, p := range n.points {
		pts[len(pts)-1-i] = p
	}
	return &NurbsCurve{degree: n.degree, points: pts, knots: n.knots.reversed()}
}
