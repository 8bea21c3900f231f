package contour

import (
	"math"
)

// Arc is a piece of a circle, parametrized over [0, 1]. It runs
// counter-clockwise for a positive SweepAngle and clockwise for a negative
// one. Angles are in radians.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Curve = Arc{}
var _ Nearester = Arc{}
var _ Arclener = Arc{}
var _ SignedAreaer = Arc{}

// NewArcThrough returns the arc from p0 to p2 that passes through p1. It
// returns false if the points are collinear.
func NewArcThrough(p0, p1, p2 Point) (Arc, bool) {
	// Circumcenter of the triangle.
	a := p1.Sub(p0)
	b := p2.Sub(p0)
	d := 2 * a.Cross(b)
	if d == 0 {
		return Arc{}, false
	}
	ux := (b.Y*a.Hypot2() - a.Y*b.Hypot2()) / d
	uy := (a.X*b.Hypot2() - b.X*a.Hypot2()) / d
	center := p0.Translate(Vec(ux, uy))
	start := p0.Sub(center).Angle()
	mid := p1.Sub(center).Angle()
	end := p2.Sub(center).Angle()
	sweep := normalizeAngle(end - start)
	if normalizeAngle(mid-start) > sweep {
		sweep -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radius:     Vec(ux, uy).Hypot(),
		StartAngle: start,
		SweepAngle: sweep,
	}, true
}

func (a Arc) angle(t float64) float64 { return a.StartAngle + t*a.SweepAngle }

// EndAngle returns StartAngle + SweepAngle.
func (a Arc) EndAngle() float64 { return a.StartAngle + a.SweepAngle }

func (a Arc) IsInf() bool {
	return a.Center.IsInf() || math.IsInf(a.Radius, 0) || math.IsInf(a.StartAngle, 0) || math.IsInf(a.SweepAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() || math.IsNaN(a.Radius) || math.IsNaN(a.StartAngle) || math.IsNaN(a.SweepAngle)
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a Arc) Domain() Interval { return Interval{0, 1} }

func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(VecFromAngle(a.angle(t)).Mul(a.Radius))
}

func (a Arc) Deriv(t float64) Vec2 {
	return VecFromAngle(a.angle(t)).Perp().Mul(a.Radius * a.SweepAngle)
}

func (a Arc) Deriv2(t float64) Vec2 {
	return VecFromAngle(a.angle(t)).Mul(-a.Radius * a.SweepAngle * a.SweepAngle)
}

// Closed reports whether the arc sweeps a full turn.
func (a Arc) Closed() bool {
	const epsilon = 1e-12
	return math.Abs(a.SweepAngle) >= 2*math.Pi-epsilon
}

func (a Arc) Trim(t0, t1 float64) Curve {
	if t0 > t1 && a.Closed() {
		t1 += 1
	}
	return Arc{
		Center:     a.Center,
		Radius:     a.Radius,
		StartAngle: a.angle(t0),
		SweepAngle: (t1 - t0) * a.SweepAngle,
	}
}

func (a Arc) Reverse() Curve {
	return Arc{
		Center:     a.Center,
		Radius:     a.Radius,
		StartAngle: a.EndAngle(),
		SweepAngle: -a.SweepAngle,
	}
}

// paramOfAngle maps an angle on the underlying circle to a parameter of the
// arc. Angles within eps radians outside of the sweep snap to the nearest
// end.
func (a Arc) paramOfAngle(th, eps float64) (float64, bool) {
	if a.SweepAngle == 0 {
		return 0, false
	}
	sweep := math.Abs(a.SweepAngle)
	var d float64
	if a.SweepAngle > 0 {
		d = normalizeAngle(th - a.StartAngle)
	} else {
		d = normalizeAngle(a.StartAngle - th)
	}
	if sweep >= 2*math.Pi {
		return d / sweep, true
	}
	switch {
	case d <= sweep:
		return d / sweep, true
	case d <= sweep+eps:
		return 1, true
	case d >= 2*math.Pi-eps:
		return 0, true
	}
	return 0, false
}

func (a Arc) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	v := pt.Sub(a.Center)
	if !v.IsZero(0) {
		th := v.Angle()
		if a.Radius < 0 {
			th += math.Pi
		}
		if t, ok := a.paramOfAngle(th, 0); ok {
			d := v.Hypot() - math.Abs(a.Radius)
			return d * d, t
		}
	}
	d0 := pt.DistanceSquared(a.Eval(0))
	d1 := pt.DistanceSquared(a.Eval(1))
	if d1 < d0 {
		return d1, 1
	}
	return d0, 0
}

func (a Arc) Arclen(accuracy float64) float64 {
	return math.Abs(a.Radius * a.SweepAngle)
}

// SignedArea implements SignedAreaer, integrating x dy − y dx in closed form.
func (a Arc) SignedArea() float64 {
	r := a.Radius
	s0, c0 := math.Sincos(a.StartAngle)
	s1, c1 := math.Sincos(a.EndAngle())
	return 0.5 * (r*r*a.SweepAngle + r*a.Center.X*(s1-s0) - r*a.Center.Y*(c1-c0))
}

func (a Arc) BoundingBox() Rect {
	r := NewRectFromPoints(a.Eval(0), a.Eval(1))
	// Include every axis extremum the sweep passes.
	for k := range 4 {
		th := float64(k) * math.Pi / 2
		if _, ok := a.paramOfAngle(th, 0); ok {
			r = r.UnionPoint(a.Center.Translate(VecFromAngle(th).Mul(a.Radius)))
		}
	}
	return r
}

// Circle returns the circle the arc lies on.
func (a Arc) Circle() Circle {
	return Circle{Center: a.Center, Radius: a.Radius}
}
