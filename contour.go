package contour

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// Contour is a composite curve: an ordered chain of segments. Its domain is
// [0, n] for n segments, with [i, i+1] mapping onto the domain of segment i.
//
// A Contour owns its segments. Adding a Contour to another appends the
// segments of the former so that contours never nest.
type Contour struct {
	segs []Curve
}

var _ Curve = (*Contour)(nil)
var _ Nearester = (*Contour)(nil)
var _ Arclener = (*Contour)(nil)
var _ SignedAreaer = (*Contour)(nil)
var _ SelfIntersecter = (*Contour)(nil)

// NewContour returns a contour made of the given segments.
func NewContour(segs ...Curve) *Contour {
	c := &Contour{}
	for _, s := range segs {
		c.Add(s)
	}
	return c
}

// Add appends a segment. Segments with an empty domain are dropped.
func (c *Contour) Add(seg Curve) {
	if seg == nil {
		return
	}
	if o, ok := seg.(*Contour); ok {
		c.segs = append(c.segs, o.segs...)
		return
	}
	if isDegenerate(seg) {
		return
	}
	c.segs = append(c.segs, seg)
}

// Len returns the number of segments.
func (c *Contour) Len() int { return len(c.segs) }

// Segment returns the i'th segment.
func (c *Contour) Segment(i int) Curve { return c.segs[i] }

// Segments returns a copy of the segments.
func (c *Contour) Segments() []Curve { return slices.Clone(c.segs) }

func (c *Contour) Domain() Interval { return Interval{0, float64(len(c.segs))} }

// locate maps a contour parameter onto a segment index and a parameter in
// that segment's domain. Integer parameters select the start of a segment,
// except for the end of the domain.
func (c *Contour) locate(t float64) (int, float64) {
	n := len(c.segs)
	i := int(math.Floor(t))
	i = min(max(i, 0), n-1)
	f := min(max(t-float64(i), 0), 1)
	return i, c.segs[i].Domain().Lerp(f)
}

// locateEnd is like locate but maps integer parameters to the end of the
// preceding segment.
func (c *Contour) locateEnd(t float64) (int, float64) {
	i := int(math.Ceil(t)) - 1
	i = min(max(i, 0), len(c.segs)-1)
	f := min(max(t-float64(i), 0), 1)
	return i, c.segs[i].Domain().Lerp(f)
}

// global maps parameter t on segment i onto the contour's domain.
func (c *Contour) global(i int, t float64) float64 {
	dom := c.segs[i].Domain()
	if dom.Length() == 0 {
		return float64(i)
	}
	return float64(i) + (t-dom.Min)/dom.Length()
}

func (c *Contour) Eval(t float64) Point {
	if len(c.segs) == 0 {
		return Point{}
	}
	i, u := c.locate(t)
	return c.segs[i].Eval(u)
}

func (c *Contour) Deriv(t float64) Vec2 {
	if len(c.segs) == 0 {
		return Vec2{}
	}
	i, u := c.locate(t)
	return c.segs[i].Deriv(u).Mul(c.segs[i].Domain().Length())
}

func (c *Contour) Deriv2(t float64) Vec2 {
	if len(c.segs) == 0 {
		return Vec2{}
	}
	i, u := c.locate(t)
	l := c.segs[i].Domain().Length()
	return c.segs[i].Deriv2(u).Mul(l * l)
}

// Closed reports whether the last segment ends where the first one starts,
// within DefaultTolerance.Region. Use [ClosedWithin] for another tolerance.
func (c *Contour) Closed() bool {
	if len(c.segs) == 0 {
		return false
	}
	return c.Start().Near(c.End(), DefaultTolerance.Region)
}

// Connected reports whether every segment starts where its predecessor
// ends.
func (c *Contour) Connected(tol Tolerance) bool {
	tol = tol.withDefaults()
	for i := 1; i < len(c.segs); i++ {
		if !tol.samePoint(End(c.segs[i-1]), Start(c.segs[i])) {
			return false
		}
	}
	return true
}

// Start returns the start point of the first segment.
func (c *Contour) Start() Point { return Start(c) }

// End returns the end point of the last segment.
func (c *Contour) End() Point { return End(c) }

func (c *Contour) Trim(t0, t1 float64) Curve {
	n := float64(len(c.segs))
	if len(c.segs) == 0 {
		return &Contour{}
	}
	if t0 > t1 {
		if c.Closed() {
			out := NewContour(c.Trim(t0, n))
			out.Add(c.Trim(0, t1))
			return out
		}
		return c.Trim(t1, t0).Reverse()
	}
	t0 = min(max(t0, 0), n)
	t1 = min(max(t1, 0), n)
	i0, u0 := c.locate(t0)
	i1, u1 := c.locateEnd(t1)
	out := &Contour{}
	if i0 == i1 {
		out.Add(c.segs[i0].Trim(u0, u1))
		return out
	}
	if i0 > i1 {
		// t0 == t1 on a segment boundary.
		out.Add(c.segs[i1].Trim(u1, u1))
		return out
	}
	out.Add(c.segs[i0].Trim(u0, c.segs[i0].Domain().Max))
	for i := i0 + 1; i < i1; i++ {
		out.Add(c.segs[i])
	}
	out.Add(c.segs[i1].Trim(c.segs[i1].Domain().Min, u1))
	return out
}

func (c *Contour) Reverse() Curve {
	out := &Contour{segs: make([]Curve, 0, len(c.segs))}
	for i := len(c.segs) - 1; i >= 0; i-- {
		out.Add(c.segs[i].Reverse())
	}
	return out
}

func (c *Contour) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	distSq = math.Inf(1)
	for i, s := range c.segs {
		u, d := Project(s, pt, Tolerance{Accuracy: accuracy})
		if d*d < distSq {
			distSq = d * d
			t = c.global(i, u)
		}
	}
	return distSq, t
}

func (c *Contour) Arclen(accuracy float64) float64 {
	var l float64
	for _, s := range c.segs {
		l += Length(s, accuracy)
	}
	return l
}

func (c *Contour) SignedArea() float64 {
	var a float64
	for _, s := range c.segs {
		a += SignedArea(s)
	}
	return a
}

// SelfIntersections reports the crossings between non-adjacent segments,
// crossings between adjacent segments away from their shared point, and
// the crossings of each segment with itself.
func (c *Contour) SelfIntersections(tol Tolerance) []Intersection {
	tol = tol.withDefaults()
	n := len(c.segs)
	closed := c.Closed()
	var out []Intersection
	for i, s := range c.segs {
		for _, x := range SelfIntersections(s, tol) {
			out = append(out, Intersection{T0: c.global(i, x.T0), T1: c.global(i, x.T1), Point: x.Point})
		}
		for j := i + 1; j < n; j++ {
			var joints []Point
			if j == i+1 {
				joints = append(joints, End(s))
			}
			if closed && i == 0 && j == n-1 {
				joints = append(joints, Start(s))
			}
			for _, x := range Intersect(s, c.segs[j], tol) {
				if slices.ContainsFunc(joints, func(pt Point) bool { return tol.samePoint(x.Point, pt) }) {
					continue
				}
				out = append(out, Intersection{T0: c.global(i, x.T0), T1: c.global(j, x.T1), Point: x.Point})
			}
		}
	}
	return out
}

func (c *Contour) flatten(tolerance float64) []Sample {
	var out []Sample
	for i, s := range c.segs {
		samples := Flatten(s, tolerance)
		if i > 0 {
			samples = samples[1:]
		}
		for _, smp := range samples {
			out = append(out, Sample{T: c.global(i, smp.T), Point: smp.Point})
		}
	}
	return out
}

// Ring flattens the contour into a closed [orb.Ring].
func (c *Contour) Ring(tolerance float64) orb.Ring {
	return Ring(c, tolerance)
}

// Ring flattens a closed curve into an [orb.Ring], repeating the first point
// at the end.
func Ring(c Curve, tolerance float64) orb.Ring {
	samples := Flatten(c, tolerance)
	ring := make(orb.Ring, 0, len(samples)+1)
	for _, s := range samples {
		ring = append(ring, s.Point.Orb())
	}
	if len(ring) > 0 && !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	return ring
}

// Segments of a curve: the segments of a contour, or the curve itself.
func segmentsOf(c Curve) []Curve {
	if ct, ok := unwrap(c).(*Contour); ok {
		return ct.segs
	}
	return []Curve{c}
}
