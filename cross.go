package contour

import (
	"cmp"
	"math"
	"slices"
)

// SelfIndex is the CurveIndex of crossings of a curve with itself.
const SelfIndex = -1

// CrossPoint is an intersection of a selected curve with one of a list of
// candidates.
type CrossPoint struct {
	// OnParam is the parameter on the selected curve.
	OnParam float64
	// OtherParam is the parameter on the other curve.
	OtherParam float64
	Point      Point
	// CurveIndex indexes the candidate list, or is SelfIndex.
	CurveIndex int
}

// IntersectWithAll intersects selected with curves[from:] and returns the
// crossings in candidate order. Curves of zero length contribute nothing.
// With selfIntersect set, every crossing of selected with itself is
// appended twice, once from each of its two parameters.
func IntersectWithAll(selected Curve, curves []Curve, from int, selfIntersect bool, tol Tolerance) []CrossPoint {
	tol = tol.withDefaults()
	if isDegenerate(selected) {
		return nil
	}
	var out []CrossPoint
	for i := max(from, 0); i < len(curves); i++ {
		if curves[i] == nil || isDegenerate(curves[i]) {
			continue
		}
		for _, x := range Intersect(selected, curves[i], tol) {
			out = append(out, CrossPoint{OnParam: x.T0, OtherParam: x.T1, Point: x.Point, CurveIndex: i})
		}
	}
	if selfIntersect {
		for _, x := range SelfIntersections(selected, tol) {
			out = append(out,
				CrossPoint{OnParam: x.T0, OtherParam: x.T1, Point: x.Point, CurveIndex: SelfIndex},
				CrossPoint{OnParam: x.T1, OtherParam: x.T0, Point: x.Point, CurveIndex: SelfIndex},
			)
		}
	}
	return out
}

// SortCrossPoints partitions cross by their position on selected relative to
// tProj. Points before tProj go left, ordered from tProj backwards; points at
// or after it go right, ordered from tProj forwards.
//
// On a closed curve, position is circular: a point goes right when the
// forward distance from tProj to it is not larger than the backward
// distance. Points within the parameter tolerance of tProj always go right.
// The input order of points at the same position is preserved.
func SortCrossPoints(tProj float64, selected Curve, cross []CrossPoint, tol Tolerance) (left, right []CrossPoint) {
	tol = tol.withDefaults()
	type keyed struct {
		cp   CrossPoint
		dist float64
	}
	var l, r []keyed
	period := Period(selected)
	for _, cp := range cross {
		if tol.sameParam(selected, cp.OnParam, tProj) {
			r = append(r, keyed{cp, 0})
			continue
		}
		if period > 0 {
			fwd := forwardDistance(selected, tProj, cp.OnParam)
			back := period - fwd
			if fwd <= back {
				r = append(r, keyed{cp, fwd})
			} else {
				l = append(l, keyed{cp, back})
			}
			continue
		}
		if cp.OnParam < tProj {
			l = append(l, keyed{cp, tProj - cp.OnParam})
		} else {
			r = append(r, keyed{cp, cp.OnParam - tProj})
		}
	}
	byDist := func(a, b keyed) int {
		if math.Abs(a.dist-b.dist) <= tol.Param {
			return 0
		}
		return cmp.Compare(a.dist, b.dist)
	}
	slices.SortStableFunc(l, byDist)
	slices.SortStableFunc(r, byDist)
	for _, k := range l {
		left = append(left, k.cp)
	}
	for _, k := range r {
		right = append(right, k.cp)
	}
	return left, right
}

// RemoveEquPoints drops the points whose OnParam equals tProj within the
// parameter tolerance. If that would drop every point, cross is returned
// unchanged.
func RemoveEquPoints(tProj float64, cross []CrossPoint, tol Tolerance) []CrossPoint {
	tol = tol.withDefaults()
	return removeEquPoints(cross, func(t float64) bool {
		return math.Abs(t-tProj) <= tol.Param
	})
}

// RemoveEquPointsOn is like [RemoveEquPoints] but compares parameters on c,
// going round the domain of closed curves and treating parameters that map
// to coincident points as equal.
func RemoveEquPointsOn(c Curve, tProj float64, cross []CrossPoint, tol Tolerance) []CrossPoint {
	tol = tol.withDefaults()
	return removeEquPoints(cross, func(t float64) bool {
		return tol.sameParam(c, t, tProj)
	})
}

func removeEquPoints(cross []CrossPoint, equal func(float64) bool) []CrossPoint {
	out := make([]CrossPoint, 0, len(cross))
	for _, cp := range cross {
		if !equal(cp.OnParam) {
			out = append(out, cp)
		}
	}
	if len(out) == 0 {
		return cross
	}
	return out
}
