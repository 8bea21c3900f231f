package contour

import (
	"fmt"
	"math"
)

// FindNearestCurve returns the curve of curves nearest to pt and its index.
// Ties go to the earliest curve. It returns false for an empty list.
func FindNearestCurve(curves []Curve, pt Point, tol Tolerance) (Curve, int, bool) {
	best := -1
	bestD := math.Inf(1)
	for i, c := range curves {
		if c == nil || isDegenerate(c) {
			continue
		}
		if _, d := Project(c, pt, tol); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return nil, -1, false
	}
	return curves[best], best, true
}

// envelopeStart is the piece of the seed curve bounded by the crossings
// nearest to the projection of the inside point.
type envelopeStart struct {
	tProj       float64
	left, right []CrossPoint
	t0, t1      float64
	piece       Curve
	// whole is set when the piece is the full closed curve.
	whole bool
}

func beginEnvelope(insidePoint Point, selected Curve, cross []CrossPoint, tol Tolerance) (envelopeStart, bool) {
	tProj, _ := Project(selected, insidePoint, tol)
	left, right := SortCrossPoints(tProj, selected, cross, tol)
	st := envelopeStart{tProj: tProj, left: left, right: right}
	closed := selected.Closed()
	dom := selected.Domain()

	if len(left) == 0 && len(right) == 0 {
		if !closed {
			return st, false
		}
		st.t0, st.t1 = dom.Min, dom.Max
		st.piece = selected
		st.whole = true
		return st, true
	}

	if !closed {
		if len(left) == 0 || len(right) == 0 {
			return st, false
		}
		st.t0 = left[0].OnParam
		st.t1 = right[0].OnParam
		if st.t1-st.t0 <= tol.Param {
			return st, false
		}
		st.piece = selected.Trim(st.t0, st.t1)
		return st, true
	}

	if len(left) > 0 {
		st.t0 = left[0].OnParam
	} else {
		st.t0 = right[len(right)-1].OnParam
	}
	if len(right) > 0 {
		st.t1 = right[0].OnParam
	} else {
		st.t1 = left[len(left)-1].OnParam
	}
	if tol.sameParam(selected, st.t0, st.t1) {
		// A single crossing bounds the whole loop.
		st.piece = loopFrom(selected, st.t1)
		return st, true
	}
	st.piece = selected.Trim(st.t0, st.t1)
	return st, true
}

// BeginEnvelopeContour starts an envelope contour on selected, the curve
// nearest to insidePoint, given the crossings of selected with the other
// candidates. It appends the piece of selected between the crossings
// surrounding the projection of insidePoint to contour and returns the
// crossings after the projection, nearest first.
//
// An open curve needs crossings on both sides of the projection. A closed
// curve without crossings contributes itself whole.
func BeginEnvelopeContour(insidePoint Point, selected Curve, cross []CrossPoint, contour *Contour, tol Tolerance) ([]CrossPoint, bool) {
	tol = tol.withDefaults()
	st, ok := beginEnvelope(insidePoint, selected, cross, tol)
	if !ok {
		return nil, false
	}
	contour.Add(st.piece)
	return st.right, true
}

// loopFrom returns the closed curve c traversed once starting at t.
func loopFrom(c Curve, t float64) Curve {
	dom := c.Domain()
	if t <= dom.Min || t >= dom.Max {
		return c
	}
	if circ, ok := unwrap(c).(Circle); ok {
		return WithNameOf(Arc{Center: circ.Center, Radius: circ.Radius, StartAngle: t, SweepAngle: 2 * math.Pi}, c)
	}
	return NewContour(c.Trim(t, dom.Max), c.Trim(dom.Min, t))
}

// WithNameOf labels c with the name of src, if any.
func WithNameOf(c, src Curve) Curve {
	if name, ok := NameOf(src); ok {
		return WithName(c, name)
	}
	return c
}

// envelopeWalk holds the crossings of every candidate curve, computed on
// demand.
type envelopeWalk struct {
	curves []Curve
	tol    Tolerance
	cross  map[int][]CrossPoint
}

func (w *envelopeWalk) crossings(i int) []CrossPoint {
	if cp, ok := w.cross[i]; ok {
		return cp
	}
	c := w.curves[i]
	cp := IntersectWithAll(c, w.curves[:i], 0, false, w.tol)
	cp = append(cp, IntersectWithAll(c, w.curves, i+1, false, w.tol)...)
	w.cross[i] = cp
	return cp
}

// direction is a way to leave a point along a curve.
type direction struct {
	curve   int
	t       float64
	forward bool
	tangent Vec2
}

// outgoing lists the directions in which the curves through the point at t
// on curve cur can be left.
func (w *envelopeWalk) outgoing(cur int, t float64) []direction {
	type at struct {
		curve int
		t     float64
	}
	p := w.curves[cur].Eval(t)
	locs := []at{{cur, t}}
	for _, cp := range w.crossings(cur) {
		if w.tol.samePoint(cp.Point, p) {
			locs = append(locs, at{cp.CurveIndex, cp.OtherParam})
		}
	}
	var out []direction
	for _, l := range locs {
		c := w.curves[l.curve]
		dom := c.Domain()
		tan := Tangent(c, l.t)
		if c.Closed() || !w.tol.sameParam(c, l.t, dom.Max) {
			out = append(out, direction{l.curve, l.t, true, tan})
		}
		if c.Closed() || !w.tol.sameParam(c, l.t, dom.Min) {
			out = append(out, direction{l.curve, l.t, false, tan.Negate()})
		}
	}
	return out
}

// nextCrossing finds the first crossing after t on curve i in the direction
// of travel. For a closed curve that meets nothing else, the walk comes back
// to t.
func (w *envelopeWalk) nextCrossing(i int, t float64, forward bool) (float64, bool) {
	c := w.curves[i]
	best := math.Inf(1)
	var bestT float64
	for _, cp := range w.crossings(i) {
		if w.tol.sameParam(c, cp.OnParam, t) {
			continue
		}
		var d float64
		if forward {
			d = forwardDistance(c, t, cp.OnParam)
		} else {
			d = forwardDistance(c, cp.OnParam, t)
		}
		if !c.Closed() && (forward && cp.OnParam < t || !forward && cp.OnParam > t) {
			continue
		}
		if d < best {
			best, bestT = d, cp.OnParam
		}
	}
	if math.IsInf(best, 1) {
		if c.Closed() {
			return t, true
		}
		return 0, false
	}
	return bestT, true
}

// tracePiece returns the piece of c between from and to in the direction of
// travel. Equal parameters on a closed curve select the full loop.
func tracePiece(c Curve, from, to float64, forward bool) Curve {
	if c.Closed() && from == to {
		if forward {
			return loopFrom(c, from)
		}
		return loopFrom(c, from).Reverse()
	}
	if forward {
		return c.Trim(from, to)
	}
	if c.Closed() {
		return c.Trim(to, from).Reverse()
	}
	return c.Trim(from, to)
}

// BuildEnvelopeContour traces the closed boundary around insidePoint formed
// by curves. The walk starts on the curve nearest to insidePoint, oriented
// so that insidePoint lies on its left, and at every crossing turns onto the
// leftmost outgoing direction until it returns to its start.
//
// The walk takes at most twice as many steps as there are curves and fails
// with ErrWalkLimit beyond that. It fails with ErrOpenBoundary when it runs
// off the end of an open curve.
func BuildEnvelopeContour(insidePoint Point, curves []Curve, tol Tolerance) (*Contour, error) {
	tol = tol.withDefaults()
	selected, idx, ok := FindNearestCurve(curves, insidePoint, tol)
	if !ok {
		return nil, ErrNoCurves
	}
	w := &envelopeWalk{curves: curves, tol: tol, cross: map[int][]CrossPoint{}}
	st, ok := beginEnvelope(insidePoint, selected, w.crossings(idx), tol)
	if !ok {
		return nil, fmt.Errorf("seed curve %d: %w", idx, ErrOpenBoundary)
	}

	side := Tangent(selected, st.tProj).Cross(insidePoint.Sub(selected.Eval(st.tProj)))
	forward := side >= 0
	contour := NewContour()
	if st.whole {
		if forward {
			contour.Add(st.piece)
		} else {
			contour.Add(st.piece.Reverse())
		}
		return contour, nil
	}

	cur := idx
	var curT float64
	var heading Vec2
	if forward {
		contour.Add(st.piece)
		curT = st.t1
		heading = Tangent(selected, curT)
	} else {
		contour.Add(st.piece.Reverse())
		curT = st.t0
		heading = Tangent(selected, curT).Negate()
	}
	origin := contour.Start()

	limit := 2 * len(curves)
	for step := 1; ; step++ {
		if tol.samePoint(contour.End(), origin) {
			return contour, nil
		}
		if step >= limit {
			return nil, fmt.Errorf("after %d steps: %w", step, ErrWalkLimit)
		}

		var next direction
		bestTurn := math.Inf(-1)
		for _, d := range w.outgoing(cur, curT) {
			turn := heading.AngleTo(d.tangent)
			if d.curve == cur && d.forward != forward {
				// Going back the way we came.
				continue
			}
			if turn > bestTurn {
				bestTurn, next = turn, d
			}
		}
		if math.IsInf(bestTurn, -1) {
			return nil, fmt.Errorf("curve %d: %w", cur, ErrOpenBoundary)
		}

		to, ok := w.nextCrossing(next.curve, next.t, next.forward)
		if !ok {
			return nil, fmt.Errorf("curve %d: %w", next.curve, ErrOpenBoundary)
		}
		c := w.curves[next.curve]
		contour.Add(tracePiece(c, next.t, to, next.forward))
		cur, curT, forward = next.curve, to, next.forward
		heading = Tangent(c, to)
		if !forward {
			heading = heading.Negate()
		}
	}
}
