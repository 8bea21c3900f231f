package contour

import (
	"math"
	"testing"
)

func onParams(cps []CrossPoint) []float64 {
	var out []float64
	for _, cp := range cps {
		out = append(out, cp.OnParam)
	}
	return out
}

func TestIntersectWithAll(t *testing.T) {
	selected := Line{Pt(0, 0), Pt(10, 0)}
	curves := []Curve{
		Line{Pt(2, -1), Pt(2, 1)},
		Line{Pt(5, 0), Pt(5, 0)},
		Line{Pt(8, -1), Pt(8, 1)},
		Circle{Pt(5, 5), 1},
	}
	diff(t, []CrossPoint{
		{OnParam: 0.2, OtherParam: 0.5, Point: Pt(2, 0), CurveIndex: 0},
		{OnParam: 0.8, OtherParam: 0.5, Point: Pt(8, 0), CurveIndex: 2},
	}, IntersectWithAll(selected, curves, 0, false, DefaultTolerance), approx)
	diff(t, []CrossPoint{
		{OnParam: 0.8, OtherParam: 0.5, Point: Pt(8, 0), CurveIndex: 2},
	}, IntersectWithAll(selected, curves, 1, false, DefaultTolerance), approx)

	if got := IntersectWithAll(Line{Pt(1, 1), Pt(1, 1)}, curves, 0, true, DefaultTolerance); len(got) != 0 {
		t.Errorf("degenerate selected curve: got %v", got)
	}
}

func TestIntersectWithAllSelf(t *testing.T) {
	bowtie := polygon(Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10))
	diff(t, []CrossPoint{
		{OnParam: 0.5, OtherParam: 2.5, Point: Pt(5, 5), CurveIndex: SelfIndex},
		{OnParam: 2.5, OtherParam: 0.5, Point: Pt(5, 5), CurveIndex: SelfIndex},
	}, IntersectWithAll(bowtie, nil, 0, true, DefaultTolerance), approx)

	if got := IntersectWithAll(bowtie, nil, 0, false, DefaultTolerance); len(got) != 0 {
		t.Errorf("got %v without self intersections", got)
	}
}

func TestSortCrossPointsOpen(t *testing.T) {
	selected := Line{Pt(0, 0), Pt(10, 0)}
	var cross []CrossPoint
	for i, u := range []float64{0.9, 0.1, 0.5, 0.2, 0.7} {
		cross = append(cross, CrossPoint{OnParam: u, Point: selected.Eval(u), CurveIndex: i})
	}
	left, right := SortCrossPoints(0.5, selected, cross, DefaultTolerance)
	diff(t, []float64{0.2, 0.1}, onParams(left))
	diff(t, []float64{0.5, 0.7, 0.9}, onParams(right))
}

func TestSortCrossPointsClosed(t *testing.T) {
	c := Circle{Pt(0, 0), 1}
	var cross []CrossPoint
	for _, u := range []float64{6, 3, 3.5, 1} {
		cross = append(cross, CrossPoint{OnParam: u, Point: c.Eval(u)})
	}
	left, right := SortCrossPoints(0.1, c, cross, DefaultTolerance)
	diff(t, []float64{6, 3.5}, onParams(left))
	diff(t, []float64{1, 3}, onParams(right))
}

func TestSortCrossPointsStable(t *testing.T) {
	selected := Line{Pt(0, 0), Pt(10, 0)}
	cross := []CrossPoint{
		{OnParam: 0.7, CurveIndex: 3},
		{OnParam: 0.7, CurveIndex: 1},
		{OnParam: 0.3, CurveIndex: 2},
		{OnParam: 0.3, CurveIndex: 0},
	}
	left, right := SortCrossPoints(0.5, selected, cross, DefaultTolerance)
	diff(t, []CrossPoint{cross[2], cross[3]}, left)
	diff(t, []CrossPoint{cross[0], cross[1]}, right)

	left, right = SortCrossPoints(0.5, selected, nil, DefaultTolerance)
	if left != nil || right != nil {
		t.Errorf("got %v and %v for no points", left, right)
	}
}

func TestRemoveEquPoints(t *testing.T) {
	cross := []CrossPoint{{OnParam: 0.5}, {OnParam: 0.5 + 1e-12}, {OnParam: 0.7}}
	diff(t, []CrossPoint{{OnParam: 0.7}}, RemoveEquPoints(0.5, cross, DefaultTolerance))
	diff(t, cross, RemoveEquPoints(0.3, cross, DefaultTolerance))

	// Removing every point leaves the input as it is.
	same := cross[:2]
	diff(t, same, RemoveEquPoints(0.5, same, DefaultTolerance))
}

func TestRemoveEquPointsOn(t *testing.T) {
	c := Circle{Pt(0, 0), 1}
	cross := []CrossPoint{{OnParam: 2*math.Pi - 1e-12}, {OnParam: 1}, {OnParam: 1e-7}}
	diff(t, []CrossPoint{{OnParam: 1}}, RemoveEquPointsOn(c, 0, cross, DefaultTolerance))

	// Without a curve, the seam is not crossed.
	diff(t, []CrossPoint{cross[0], cross[1], cross[2]}, RemoveEquPoints(0, cross, DefaultTolerance))
}
