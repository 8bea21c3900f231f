package contour

import (
	"math"
	"testing"
)

func TestLineArclen(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 4)}
	if got := l.Arclen(1e-9); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
	if got := Length(l, 1e-9); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}
	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	for _, tt := range []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(3, 4), 16, 0.3},
		{Pt(-3, 4), 25, 0},
		{Pt(13, -4), 25, 1},
	} {
		distSq, u := l.Nearest(tt.pt, 0)
		near(t, distSq, tt.distSq, 1e-12)
		near(t, u, tt.t, 1e-12)
	}
}

func TestLineTrim(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	diff(t, l.Trim(0.2, 0.8), Curve(Line{Pt(2, 0), Pt(8, 0)}), approx)
	// Trimming backwards yields the reversed piece.
	diff(t, l.Trim(0.8, 0.2), Curve(Line{Pt(8, 0), Pt(2, 0)}), approx)
	diff(t, l.Reverse(), Curve(Line{Pt(10, 0), Pt(0, 0)}))
}

func TestLineCrossingPoint(t *testing.T) {
	a := Line{Pt(0, 0), Pt(1, 1)}
	b := Line{Pt(0, 4), Pt(1, 3)}
	p, ok := a.CrossingPoint(b)
	if !ok {
		t.Fatal("lines should cross")
	}
	nearPt(t, p, Pt(2, 2), 1e-12)
	if _, ok := a.CrossingPoint(a.Translate(Vec(0, 1))); ok {
		t.Error("parallel lines should not cross")
	}
}

func TestIntersectLines(t *testing.T) {
	tol := DefaultTolerance
	hLine := Line{Pt(0.0, 0.0), Pt(10.0, 0.0)}

	xs := intersectLines(hLine, Line{Pt(5, -5), Pt(5, 5)}, tol)
	diff(t, xs, []Intersection{{T0: 0.5, T1: 0.5, Point: Pt(5, 0)}}, approx)

	if xs := intersectLines(hLine, Line{Pt(-1, -5), Pt(-1, 5)}, tol); len(xs) != 0 {
		t.Errorf("expected no intersections, got %v", xs)
	}
	if xs := intersectLines(hLine, hLine.Translate(Vec(0, 1)), tol); len(xs) != 0 {
		t.Errorf("parallel lines should not meet, got %v", xs)
	}

	// Touching at an endpoint.
	xs = intersectLines(Line{Pt(0, 0), Pt(1, 0)}, Line{Pt(1, 0), Pt(1, 1)}, tol)
	diff(t, xs, []Intersection{{T0: 1, T1: 0, Point: Pt(1, 0)}}, approx)

	// Collinear overlap reports both ends of the shared piece.
	xs = intersectLines(hLine, Line{Pt(5, 0), Pt(15, 0)}, tol)
	diff(t, xs, []Intersection{
		{T0: 0.5, T1: 0, Point: Pt(5, 0)},
		{T0: 1, T1: 0.5, Point: Pt(10, 0)},
	}, approx)
}
