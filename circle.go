package contour

import (
	"math"
)

// Circle is a full circle traversed counter-clockwise from angle 0. Its
// parameter is the angle in radians, over [0, 2π].
type Circle struct {
	Center Point
	Radius float64
}

var _ Curve = Circle{}
var _ Nearester = Circle{}
var _ Arclener = Circle{}
var _ SignedAreaer = Circle{}

// Contains reports whether pt lies inside the circle or on it.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot() <= math.Abs(c.Radius)
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Domain() Interval { return Interval{0, 2 * math.Pi} }

func (c Circle) Eval(t float64) Point {
	return c.Center.Translate(VecFromAngle(t).Mul(c.Radius))
}

func (c Circle) Deriv(t float64) Vec2 {
	return VecFromAngle(t).Perp().Mul(c.Radius)
}

func (c Circle) Deriv2(t float64) Vec2 {
	return VecFromAngle(t).Mul(-c.Radius)
}

func (c Circle) Closed() bool { return true }

// Trim returns the arc from angle t0 to angle t1, wrapping through 0 when
// t0 > t1.
func (c Circle) Trim(t0, t1 float64) Curve {
	sweep := t1 - t0
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return Arc{Center: c.Center, Radius: c.Radius, StartAngle: t0, SweepAngle: sweep}
}

// Reverse returns the circle as a clockwise arc starting at angle 0.
func (c Circle) Reverse() Curve {
	return Arc{Center: c.Center, Radius: c.Radius, StartAngle: 0, SweepAngle: -2 * math.Pi}
}

// Nearest implements Nearester. The center of the circle is nearest to every
// point and reports parameter 0.
func (c Circle) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	v := pt.Sub(c.Center)
	d := v.Hypot() - math.Abs(c.Radius)
	if v.IsZero(0) {
		return d * d, 0
	}
	t = normalizeAngle(v.Angle())
	if c.Radius < 0 {
		t = normalizeAngle(t + math.Pi)
	}
	return d * d, t
}

func (c Circle) Arclen(accuracy float64) float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) SignedArea() float64 { return c.Area() }

// normalizeAngle maps th into [0, 2π).
func normalizeAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	if th >= 2*math.Pi {
		th = 0
	}
	return th
}
