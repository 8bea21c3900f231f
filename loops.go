package contour

import (
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// LoopsResult classifies the outcome of [BooleanIntLoops].
type LoopsResult int

const (
	// LoopsError means the input was unusable: a loop was open or crossed
	// itself, or the result could not be assembled.
	LoopsError LoopsResult = iota
	// LoopsNotIntersect means the regions have no area in common.
	LoopsNotIntersect
	// LoopsFirstCurve means the intersection is the region of the first loop.
	LoopsFirstCurve
	// LoopsSecondCurve means the intersection is the region of the second
	// loop.
	LoopsSecondCurve
	// LoopsSuccess means the intersection was built as new loops.
	LoopsSuccess
)

func (r LoopsResult) String() string {
	switch r {
	case LoopsError:
		return "error"
	case LoopsNotIntersect:
		return "not intersecting"
	case LoopsFirstCurve:
		return "first curve"
	case LoopsSecondCurve:
		return "second curve"
	case LoopsSuccess:
		return "success"
	default:
		return fmt.Sprintf("LoopsResult(%d)", int(r))
	}
}

// region is one side of a closed loop, with the loop oriented so that the
// region lies on its left.
type region struct {
	loop     Curve
	interior bool
	ring     orb.Ring
	// disk is set when the loop is a full circle; containment is then
	// exact instead of going through the flattened ring.
	disk *Circle
}

func newRegion(loop Curve, interior bool, tol Tolerance) region {
	r := region{interior: interior}
	if c, ok := unwrap(loop).(Circle); ok {
		r.disk = &c
	}
	ccw := SignedArea(loop) >= 0
	if ccw != interior {
		loop = loop.Reverse()
	}
	r.loop = loop
	r.ring = Ring(loop, tol.Accuracy)
	return r
}

// inside reports whether pt lies inside the loop, ignoring orientation.
func (r region) inside(pt Point) bool {
	if r.disk != nil {
		return r.disk.Contains(pt)
	}
	return planar.RingContains(r.ring, pt.Orb())
}

// contains reports whether pt lies in the region. Points on the boundary
// count as inside the interior.
func (r region) contains(pt Point) bool {
	return r.inside(pt) == r.interior
}

// BooleanIntLoops intersects the regions bounded by two closed loops. For
// each loop, orient selects its interior (true) or exterior (false).
//
// LoopsFirstCurve and LoopsSecondCurve report that the intersection equals
// the region of one of the inputs; no curves are returned. LoopsSuccess
// returns the boundary loops of the intersection, each oriented with the
// region on its left.
func BooleanIntLoops(loop1 Curve, orient1 bool, loop2 Curve, orient2 bool, tol Tolerance) (LoopsResult, []Curve) {
	tol = tol.withDefaults()
	if loop1 == nil || loop2 == nil || !closedLoop(loop1, tol) || !closedLoop(loop2, tol) {
		return LoopsError, nil
	}
	if isDegenerate(loop1) || isDegenerate(loop2) {
		return LoopsError, nil
	}
	if len(SelfIntersections(loop1, tol)) > 0 || len(SelfIntersections(loop2, tol)) > 0 {
		return LoopsError, nil
	}

	if coincident(loop1, loop2, tol) {
		if orient1 == orient2 {
			return LoopsFirstCurve, nil
		}
		return LoopsNotIntersect, nil
	}

	r1 := newRegion(loop1, orient1, tol)
	r2 := newRegion(loop2, orient2, tol)
	xs := Intersect(r1.loop, r2.loop, tol)
	if len(xs) < 2 {
		return classifyDisjoint(r1, r2, xs, tol)
	}

	p1 := splitLoop(r1.loop, paramsOf(xs, true), tol)
	p2 := splitLoop(r2.loop, paramsOf(xs, false), tol)
	var kept []Curve
	kept1, kept2 := 0, 0
	for _, p := range p1 {
		if r2.contains(midpoint(p)) {
			kept = append(kept, p)
			kept1++
		}
	}
	for _, p := range p2 {
		if r1.contains(midpoint(p)) {
			kept = append(kept, p)
			kept2++
		}
	}
	switch {
	case len(kept) == 0:
		return LoopsNotIntersect, nil
	case kept1 == len(p1) && kept2 == 0:
		return LoopsFirstCurve, nil
	case kept2 == len(p2) && kept1 == 0:
		return LoopsSecondCurve, nil
	}
	loops, ok := stitch(kept, tol)
	if !ok {
		return LoopsError, nil
	}
	return LoopsSuccess, loops
}

// closedLoop reports whether c is closed both structurally and under tol.
func closedLoop(c Curve, tol Tolerance) bool {
	return c.Closed() && ClosedWithin(c, tol)
}

// classifyDisjoint handles loops that do not cross. A single touching
// point does not split either loop.
func classifyDisjoint(r1, r2 region, touch []Intersection, tol Tolerance) (LoopsResult, []Curve) {
	in12 := r2.inside(samplePoint(r1.loop, touch, true))
	in21 := r1.inside(samplePoint(r2.loop, touch, false))
	switch {
	case r1.interior && r2.interior:
		switch {
		case in12:
			return LoopsFirstCurve, nil
		case in21:
			return LoopsSecondCurve, nil
		}
		return LoopsNotIntersect, nil
	case r1.interior && !r2.interior:
		switch {
		case in12:
			return LoopsNotIntersect, nil
		case in21:
			return LoopsSuccess, []Curve{r1.loop, r2.loop}
		}
		return LoopsFirstCurve, nil
	case !r1.interior && r2.interior:
		switch {
		case in21:
			return LoopsNotIntersect, nil
		case in12:
			return LoopsSuccess, []Curve{r1.loop, r2.loop}
		}
		return LoopsSecondCurve, nil
	default:
		switch {
		case in12:
			return LoopsSecondCurve, nil
		case in21:
			return LoopsFirstCurve, nil
		}
		return LoopsSuccess, []Curve{r1.loop, r2.loop}
	}
}

// samplePoint picks a point on loop away from the touching points.
func samplePoint(loop Curve, touch []Intersection, first bool) Point {
	dom := loop.Domain()
	t := dom.Lerp(0.5)
	if len(touch) > 0 {
		tt := touch[0].T0
		if !first {
			tt = touch[0].T1
		}
		t = wrapParam(loop, tt+0.5*dom.Length())
	}
	return loop.Eval(t)
}

// coincident reports whether every sample of each loop lies on the other.
func coincident(a, b Curve, tol Tolerance) bool {
	const samples = 16
	eps := max(10*tol.Region, tol.Accuracy)
	on := func(c, other Curve) bool {
		dom := c.Domain()
		for i := range samples {
			p := c.Eval(dom.Lerp((float64(i) + 0.5) / samples))
			if _, d := Project(other, p, tol); d > eps {
				return false
			}
		}
		return true
	}
	return on(a, b) && on(b, a)
}

func paramsOf(xs []Intersection, first bool) []float64 {
	ts := make([]float64, len(xs))
	for i, x := range xs {
		if first {
			ts[i] = x.T0
		} else {
			ts[i] = x.T1
		}
	}
	slices.Sort(ts)
	return ts
}

// splitLoop cuts a closed loop at the parameters ts, which must be sorted.
func splitLoop(loop Curve, ts []float64, tol Tolerance) []Curve {
	ts = slices.CompactFunc(ts, func(a, b float64) bool { return tol.sameParam(loop, a, b) })
	if len(ts) > 1 && tol.sameParam(loop, ts[0], ts[len(ts)-1]) {
		ts = ts[:len(ts)-1]
	}
	if len(ts) < 2 {
		return []Curve{loop}
	}
	out := make([]Curve, 0, len(ts))
	for i := range ts {
		t0 := ts[i]
		t1 := ts[(i+1)%len(ts)]
		out = append(out, loop.Trim(t0, t1))
	}
	return out
}

func midpoint(c Curve) Point {
	return c.Eval(c.Domain().Lerp(0.5))
}

// stitch chains pieces head to tail into closed contours.
func stitch(pieces []Curve, tol Tolerance) ([]Curve, bool) {
	eps := max(tol.Region, tol.Accuracy)
	used := make([]bool, len(pieces))
	var loops []Curve
	for start := range pieces {
		if used[start] {
			continue
		}
		used[start] = true
		loop := NewContour(pieces[start])
		origin := Start(pieces[start])
		for !End(loop).Near(origin, eps) {
			next := -1
			bestD := math.Inf(1)
			end := End(loop)
			for i, p := range pieces {
				if used[i] {
					continue
				}
				if d := Start(p).Distance(end); d <= eps && d < bestD {
					next, bestD = i, d
				}
			}
			if next < 0 {
				return nil, false
			}
			used[next] = true
			loop.Add(pieces[next])
		}
		loops = append(loops, loop)
	}
	return loops, true
}
