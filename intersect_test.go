package contour

import (
	"math"
	"testing"
)

func nearIntersections(t *testing.T, got, want []Intersection, epsilon float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d intersections %v, want %d", len(got), got, len(want))
	}
	for i := range got {
		near(t, got[i].T0, want[i].T0, epsilon)
		near(t, got[i].T1, want[i].T1, epsilon)
		nearPt(t, got[i].Point, want[i].Point, epsilon)
	}
}

func TestIntersectLineCircle(t *testing.T) {
	c := Circle{Pt(0, 0), 1}
	tests := []struct {
		name string
		l    Line
		want []Intersection
	}{
		{
			"secant",
			Line{Pt(-2, 0), Pt(2, 0)},
			[]Intersection{{0.25, math.Pi, Pt(-1, 0)}, {0.75, 0, Pt(1, 0)}},
		},
		{
			"tangent",
			Line{Pt(-2, 1), Pt(2, 1)},
			[]Intersection{{0.5, math.Pi / 2, Pt(0, 1)}},
		},
		{
			"miss",
			Line{Pt(-2, 2), Pt(2, 2)},
			nil,
		},
		{
			"short",
			Line{Pt(-0.5, 0), Pt(0.5, 0)},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearIntersections(t, Intersect(tt.l, c, DefaultTolerance), tt.want, 1e-9)

			var swapped []Intersection
			for _, x := range tt.want {
				swapped = append(swapped, Intersection{x.T1, x.T0, x.Point})
			}
			got := Intersect(c, tt.l, DefaultTolerance)
			if len(got) != len(swapped) {
				t.Fatalf("got %d intersections, want %d", len(got), len(swapped))
			}
			// Reordered by the parameter on the circle.
			for _, x := range swapped {
				found := false
				for _, y := range got {
					if y.Point.Near(x.Point, 1e-9) && math.Abs(y.T0-x.T0) < 1e-9 && math.Abs(y.T1-x.T1) < 1e-9 {
						found = true
					}
				}
				if !found {
					t.Errorf("missing intersection %v in %v", x, got)
				}
			}
		})
	}
}

func TestIntersectCircles(t *testing.T) {
	a := Circle{Pt(0, 0), 1}
	b := Circle{Pt(1, 0), 1}
	h := math.Sqrt(3) / 2
	nearIntersections(t, Intersect(a, b, DefaultTolerance), []Intersection{
		{math.Pi / 3, 2 * math.Pi / 3, Pt(0.5, h)},
		{5 * math.Pi / 3, 4 * math.Pi / 3, Pt(0.5, -h)},
	}, 1e-9)

	// Touching from outside.
	nearIntersections(t, Intersect(a, Circle{Pt(2, 0), 1}, DefaultTolerance), []Intersection{
		{0, math.Pi, Pt(1, 0)},
	}, 1e-9)

	if xs := Intersect(a, Circle{Pt(0, 0), 2}, DefaultTolerance); xs != nil {
		t.Errorf("concentric circles: got %v", xs)
	}
	if xs := Intersect(a, a, DefaultTolerance); xs != nil {
		t.Errorf("coincident circles: got %v", xs)
	}
	if xs := Intersect(a, Circle{Pt(5, 0), 1}, DefaultTolerance); xs != nil {
		t.Errorf("disjoint circles: got %v", xs)
	}
	if xs := Intersect(a, Circle{Pt(0.2, 0), 0.5}, DefaultTolerance); xs != nil {
		t.Errorf("nested circles: got %v", xs)
	}
}

func TestIntersectArc(t *testing.T) {
	upper := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: math.Pi}
	h := math.Sqrt(3) / 2
	s0 := (2 - h) / 4
	s1 := (2 + h) / 4
	nearIntersections(t, Intersect(Line{Pt(-2, 0.5), Pt(2, 0.5)}, upper, DefaultTolerance), []Intersection{
		{s0, 5.0 / 6, Pt(-h, 0.5)},
		{s1, 1.0 / 6, Pt(h, 0.5)},
	}, 1e-9)
	if xs := Intersect(Line{Pt(-2, -0.5), Pt(2, -0.5)}, upper, DefaultTolerance); len(xs) != 0 {
		t.Errorf("line below the arc: got %v", xs)
	}

	// Clockwise arcs report parameters along their own direction.
	cw := upper.Reverse().(Arc)
	nearIntersections(t, Intersect(Line{Pt(-2, 0.5), Pt(2, 0.5)}, cw, DefaultTolerance), []Intersection{
		{s0, 1.0 / 6, Pt(-h, 0.5)},
		{s1, 5.0 / 6, Pt(h, 0.5)},
	}, 1e-9)

	// The lower half of a circle meets the upper half at its ends.
	lower := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: math.Pi, SweepAngle: math.Pi}
	b := Arc{Center: Pt(1, 0), Radius: 1, StartAngle: math.Pi / 2, SweepAngle: math.Pi}
	nearIntersections(t, Intersect(upper, b, DefaultTolerance), []Intersection{
		{1.0 / 3, 1.0 / 6, Pt(0.5, h)},
	}, 1e-9)
	nearIntersections(t, Intersect(lower, b, DefaultTolerance), []Intersection{
		{2.0 / 3, 5.0 / 6, Pt(0.5, -h)},
	}, 1e-9)
}

func TestIntersectNumeric(t *testing.T) {
	// A straight cubic forces the numeric fallback against a circle.
	q := CubicBez{Pt(-2, 0), Pt(-2.0/3, 0), Pt(2.0/3, 0), Pt(2, 0)}
	c := Circle{Pt(0, 0.5), 1}
	h := math.Sqrt(3) / 2
	nearIntersections(t, Intersect(q, c, DefaultTolerance), []Intersection{
		{(2 - h) / 4, 7 * math.Pi / 6, Pt(-h, 0)},
		{(2 + h) / 4, 11 * math.Pi / 6, Pt(h, 0)},
	}, 1e-6)
}

func TestIntersectContour(t *testing.T) {
	sq := square(0, 0, 10, 10)
	l := Line{Pt(5, -5), Pt(5, 15)}
	nearIntersections(t, Intersect(sq, l, DefaultTolerance), []Intersection{
		{0.5, 0.25, Pt(5, 0)},
		{2.5, 0.75, Pt(5, 10)},
	}, 1e-9)
	nearIntersections(t, Intersect(l, sq, DefaultTolerance), []Intersection{
		{0.25, 0.5, Pt(5, 0)},
		{0.75, 2.5, Pt(5, 10)},
	}, 1e-9)

	// Names are transparent.
	nearIntersections(t, Intersect(WithName(sq, "sq"), WithName(l, "l"), DefaultTolerance), []Intersection{
		{0.5, 0.25, Pt(5, 0)},
		{2.5, 0.75, Pt(5, 10)},
	}, 1e-9)
}

func TestSelfIntersections(t *testing.T) {
	// The cubic is symmetric about x = 0.5 and loops over itself.
	q := CubicBez{Pt(0, 0), Pt(2, 1), Pt(-1, 1), Pt(1, 0)}
	r := math.Sqrt(15) / 10
	nearIntersections(t, SelfIntersections(q, DefaultTolerance), []Intersection{
		{0.5 - r, 0.5 + r, Pt(0.5, 0.3)},
	}, 1e-6)

	if xs := SelfIntersections(CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}, DefaultTolerance); len(xs) != 0 {
		t.Errorf("simple cubic: got %v", xs)
	}
	if xs := SelfIntersections(Circle{Pt(0, 0), 1}, DefaultTolerance); len(xs) != 0 {
		t.Errorf("circle: got %v", xs)
	}
}
