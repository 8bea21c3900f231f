package contour

import (
	"math"
	"sort"
)

var _ Curve = CubicBez{}
var _ SignedAreaer = CubicBez{}

// CubicBez is a cubic Bézier segment, parametrized over [0, 1].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (q CubicBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() || q.P3.IsInf()
}

func (q CubicBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() || q.P3.IsNaN()
}

// BoundingBox returns the tight bounding box, from the endpoints and the
// interior extrema.
func (c CubicBez) BoundingBox() Rect {
	r := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		r = r.UnionPoint(c.Eval(t))
	}
	return r
}

func (c CubicBez) Domain() Interval { return Interval{0, 1} }

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(2 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(t * t)
	return d0.Add(d1).Add(d2).Mul(3)
}

func (c CubicBez) Deriv2(t float64) Vec2 {
	a := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	b := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return a.Mul(1 - t).Add(b.Mul(t)).Mul(6)
}

// Closed reports whether the segment starts and ends at the same point,
// within DefaultTolerance.Region.
func (c CubicBez) Closed() bool {
	return c.P0.Near(c.P3, DefaultTolerance.Region)
}

func (c CubicBez) Trim(t0, t1 float64) Curve {
	if t0 > t1 && c.Closed() {
		return NewContour(c.Subsegment(t0, 1), c.Subsegment(0, t1))
	}
	return c.Subsegment(t0, t1)
}

func (c CubicBez) Reverse() Curve {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the piece of the cubic between t0 and t1. For t0 > t1
// the piece runs backwards.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Deriv(t0).Mul(scale))
	p2 := p3.Translate(c.Deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Extrema returns the parameters in (0, 1) at which either coordinate of the
// cubic has a local extremum, in increasing order.
func (c CubicBez) Extrema() ([4]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// IntersectLine intersects the cubic with a line segment. T0 of each
// intersection is the parameter on the cubic, T1 the parameter on the line.
func (c CubicBez) IntersectLine(line Line, tol Tolerance) []Intersection {
	p0 := line.P0
	p1 := line.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx == 0 && dy == 0 {
		return nil
	}

	// The basic technique here is to determine x and y as a cubic polynomial
	// as a function of t. Then plug those values into the line equation for the
	// probe line (giving a sort of signed distance from the probe line) and solve
	// that for t.
	px0, px1, px2, px3 := cubicBezCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	c0 := dy*(px0-p0.X) - dx*(py0-p0.Y)
	c1 := dy*px1 - dx*py1
	c2 := dy*px2 - dx*py2
	c3 := dy*px3 - dx*py3
	invlen2 := 1.0 / (dx*dx + dy*dy)
	epsU := tol.Region * math.Sqrt(invlen2)
	ts, n := SolveCubic(c0, c1, c2, c3)
	var ret []Intersection
	for _, t := range ts[:n] {
		if t >= -tol.Param && t <= 1+tol.Param {
			t = clamp01(t)
			x := px0 + t*px1 + t*t*px2 + t*t*t*px3
			y := py0 + t*py1 + t*t*py2 + t*t*t*py3
			u := ((x-p0.X)*dx + (y-p0.Y)*dy) * invlen2
			if u >= -epsU && u <= 1+epsU {
				ret = append(ret, Intersection{T0: t, T1: clamp01(u), Point: Pt(x, y)})
			}
		}
	}
	return ret
}

// Return polynomial coefficients given cubic bezier coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}
