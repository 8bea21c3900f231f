package contour

import (
	"testing"
)

func TestNames(t *testing.T) {
	l := Line{Pt(0, 0), Pt(2, 0)}
	n := WithName(l, "edge")
	if name, ok := NameOf(n); !ok || name != "edge" {
		t.Errorf("got %q, %t", name, ok)
	}
	if _, ok := NameOf(l); ok {
		t.Error("plain line has a name")
	}

	// Renaming replaces rather than nests.
	r := WithName(n, "other")
	diff(t, Named{Curve: l, Name: "other"}, r)
	diff(t, l, WithName(n, ""))

	for _, c := range []Curve{n.Trim(0.25, 0.75), n.Reverse(), WithNameOf(Circle{}, n)} {
		if name, _ := NameOf(c); name != "edge" {
			t.Errorf("%T: got name %q", unwrap(c), name)
		}
	}
	diff(t, Curve(Circle{}), WithNameOf(Circle{}, l))

	// Names do not change geometry.
	near(t, Length(n, 0), 2, 0)
	near(t, SignedArea(WithName(Circle{Pt(0, 0), 1}, "c")), SignedArea(Circle{Pt(0, 0), 1}), 0)
	distSq, u := n.(Named).Nearest(Pt(1, 1), 0)
	near(t, distSq, 1, 1e-12)
	near(t, u, 0.5, 1e-12)
}

func TestNameCoincidences(t *testing.T) {
	curves := []Curve{
		WithName(Line{Pt(0, 0), Pt(1, 0)}, "a"),
		WithName(Circle{Pt(0, 0), 1}, "b"),
		Line{Pt(0, 0), Pt(0, 1)},
		WithName(Line{Pt(1, 0), Pt(1, 1)}, "a"),
		WithName(Arc{Radius: 1, SweepAngle: 1}, "a"),
	}
	diff(t, []NameIntersectionInfo{
		{Name: "a", Intersections: 3},
		{Name: "b", Intersections: 1},
	}, NameCoincidences(curves))

	if got := NameCoincidences([]Curve{Line{}}); got != nil {
		t.Errorf("got %v for unnamed curves", got)
	}
}
