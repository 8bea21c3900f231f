package contour

import (
	"math"
)

// Line represents a line segment, parametrized over [0, 1].
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

var _ Curve = Line{}
var _ Nearester = Line{}
var _ Arclener = Line{}
var _ SignedAreaer = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Domain() Interval { return Interval{0, 1} }

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Deriv(float64) Vec2  { return l.P1.Sub(l.P0) }
func (l Line) Deriv2(float64) Vec2 { return Vec2{} }
func (l Line) Closed() bool        { return false }

// Trim returns the line from Eval(t0) to Eval(t1). For t0 > t1 the result
// runs backwards.
func (l Line) Trim(t0, t1 float64) Curve {
	return Line{l.Eval(t0), l.Eval(t1)}
}

func (l Line) Reverse() Curve { return Line{l.P1, l.P0} }

func (l Line) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

// intersectLines intersects two segments. Collinear overlapping segments
// report the endpoints of their overlap.
func intersectLines(a, b Line, tol Tolerance) []Intersection {
	const parallelEpsilon = 1e-12
	da := a.P1.Sub(a.P0)
	db := b.P1.Sub(b.P0)
	la := da.Hypot()
	lb := db.Hypot()
	if la <= tol.Region || lb <= tol.Region {
		return nil
	}
	epsA := tol.Region / la
	epsB := tol.Region / lb
	w := b.P0.Sub(a.P0)
	den := da.Cross(db)

	if math.Abs(den) <= parallelEpsilon*la*lb {
		if math.Abs(da.Cross(w))/la > tol.Region {
			return nil
		}
		s0 := da.Dot(w) / (la * la)
		s1 := da.Dot(b.P1.Sub(a.P0)) / (la * la)
		lo := max(0, min(s0, s1))
		hi := min(1, max(s0, s1))
		if lo > hi+epsA {
			return nil
		}
		onB := func(s float64) Intersection {
			p := a.Eval(s)
			u := db.Dot(p.Sub(b.P0)) / (lb * lb)
			return Intersection{T0: s, T1: clamp01(u), Point: p}
		}
		if (hi-lo)*la <= tol.Region {
			return []Intersection{onB(0.5 * (lo + hi))}
		}
		return []Intersection{onB(lo), onB(hi)}
	}

	s := w.Cross(db) / den
	u := w.Cross(da) / den
	if s < -epsA || s > 1+epsA || u < -epsB || u > 1+epsB {
		return nil
	}
	s = clamp01(s)
	u = clamp01(u)
	return []Intersection{{T0: s, T1: u, Point: a.Eval(s)}}
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}
