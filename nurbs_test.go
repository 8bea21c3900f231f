package contour

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestUniformKnots(t *testing.T) {
	diff(t, UniformKnots(3, 6), KnotVector{0, 0, 0, 0, 1.0 / 3, 2.0 / 3, 1, 1, 1, 1}, approx)
	diff(t, UniformKnots(2, 3), KnotVector{0, 0, 0, 1, 1, 1})
	kv := UniformKnots(2, 5)
	test.That(t, kv.Valid(2, 5), "uniform knots are valid")
	test.That(t, kv.Clamped(2), "uniform knots are clamped")
	test.That(t, !kv.Valid(3, 5), "wrong degree")
	test.That(t, !KnotVector{0, 0, 1, 0.5, 1, 1}.Valid(2, 3), "decreasing knots")
	test.T(t, KnotVector{0, 0, 0, 0.5, 0.5, 1, 1, 1}.Multiplicity(0.5), 2)
}

func TestKnotSpan(t *testing.T) {
	kv := UniformKnots(2, 5)
	tts := []struct {
		u    float64
		span int
	}{
		{0, 2},
		{0.2, 2},
		{1.0 / 3, 3},
		{0.5, 3},
		{0.9, 4},
		{1, 4},
	}
	for _, tt := range tts {
		test.T(t, kv.Span(2, tt.u), tt.span)
	}
}

func TestBasisPartitionOfUnity(t *testing.T) {
	kv := KnotVector{0, 0, 0, 0, 0.2, 0.5, 0.5, 0.9, 1, 1, 1, 1}
	const p = 3
	for i := range 21 {
		u := float64(i) / 20
		span := kv.Span(p, u)
		var sum float64
		for _, b := range BasisFunctions(span, u, p, kv) {
			if b < -1e-15 {
				t.Errorf("negative basis function %v at %v", b, u)
			}
			sum += b
		}
		near(t, sum, 1, 1e-12)

		ders := DerivBasisFunctions(span, u, p, 4, kv)
		for j, b := range BasisFunctions(span, u, p, kv) {
			near(t, ders[0][j], b, 1e-12)
		}
		for k := 1; k <= 4; k++ {
			var s float64
			for _, d := range ders[k] {
				s += d
			}
			near(t, s, 0, 1e-7)
		}
		for _, d := range ders[4] {
			if d != 0 {
				t.Errorf("derivatives above the degree must vanish, got %v", d)
			}
		}
	}
}

func TestNurbsFromCubic(t *testing.T) {
	c := CubicBez{Pt(1, 0), Pt(2, 3), Pt(-1, 4), Pt(-2, 1)}
	n := NurbsFromCubic(c)
	diff(t, n.Domain(), Interval{0, 1})
	for i := range 11 {
		u := float64(i) / 10
		nearPt(t, n.Eval(u), c.Eval(u), 1e-12)
		if d := n.Deriv(u).Sub(c.Deriv(u)).Hypot(); d > 1e-12 {
			t.Errorf("derivative at %v is off by %v", u, d)
		}
		if d := n.Deriv2(u).Sub(c.Deriv2(u)).Hypot(); d > 1e-11 {
			t.Errorf("second derivative at %v is off by %v", u, d)
		}
	}
}

func TestNurbsCircle(t *testing.T) {
	center := Pt(1, -2)
	n := NurbsCircle(center, 3)
	test.That(t, n.Closed(), "circle is closed")
	test.T(t, n.Degree(), 2)
	nearPt(t, n.Eval(0), Pt(4, -2), 1e-12)
	nearPt(t, n.Eval(0.25), Pt(1, 1), 1e-12)
	nearPt(t, n.Eval(0.5), Pt(-2, -2), 1e-12)
	for i := range 41 {
		u := float64(i) / 40
		near(t, n.Eval(u).Distance(center), 3, 1e-12)
	}
	near(t, Length(n, 1e-9), 6*math.Pi, 1e-7)
	near(t, SignedArea(n), 9*math.Pi, 1e-7)

	// Rational derivatives against finite differences.
	const h = 1e-6
	for _, u := range []float64{0.1, 0.3, 0.6, 0.85} {
		fd := n.Eval(u + h).Sub(n.Eval(u - h)).Div(2 * h)
		if d := fd.Sub(n.Deriv(u)).Hypot(); d > 1e-5 {
			t.Errorf("derivative at %v is off by %v", u, d)
		}
		fd2 := n.Deriv(u + h).Sub(n.Deriv(u - h)).Div(2 * h)
		if d := fd2.Sub(n.Deriv2(u)).Hypot(); d > 1e-3 {
			t.Errorf("second derivative at %v is off by %v", u, d)
		}
	}
}

func TestNurbsSplit(t *testing.T) {
	n, err := NewUniformBSpline(3, []Point{Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0), Pt(6, -1), Pt(7, 1)})
	if err != nil {
		t.Fatal(err)
	}
	left, right, ok := n.Split(0.4)
	if !ok {
		t.Fatal("split failed")
	}
	diff(t, left.Domain(), Interval{0, 0.4})
	diff(t, right.Domain(), Interval{0.4, 1})
	nearPt(t, End(left), n.Eval(0.4), 1e-12)
	nearPt(t, Start(right), n.Eval(0.4), 1e-12)
	for _, u := range []float64{0, 0.1, 0.25, 0.39} {
		nearPt(t, left.Eval(u), n.Eval(u), 1e-12)
	}
	for _, u := range []float64{0.41, 0.6, 0.95, 1} {
		nearPt(t, right.Eval(u), n.Eval(u), 1e-12)
	}
	if _, _, ok := n.Split(0); ok {
		t.Error("split at the domain start should fail")
	}

	tr := n.Trim(0.2, 0.7)
	diff(t, tr.Domain(), Interval{0.2, 0.7})
	nearPt(t, tr.Eval(0.5), n.Eval(0.5), 1e-12)

	rev := n.Reverse()
	for _, u := range []float64{0, 0.3, 0.8} {
		nearPt(t, rev.Eval(1-u), n.Eval(u), 1e-12)
	}
}

func TestNurbsClosedTrim(t *testing.T) {
	n := NurbsCircle(Pt(0, 0), 1)
	ct, ok := n.Trim(0.75, 0.25).(*Contour)
	if !ok {
		t.Fatalf("got %T, want *Contour", n.Trim(0.75, 0.25))
	}
	nearPt(t, ct.Start(), Pt(0, -1), 1e-12)
	nearPt(t, ct.Eval(1), Pt(1, 0), 1e-12)
	nearPt(t, ct.End(), Pt(0, 1), 1e-12)
	near(t, Length(ct, 1e-9), math.Pi, 1e-7)
}

func TestNewNurbsCurveErrors(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	tts := []struct {
		name    string
		points  []Point
		weights []float64
		knots   []float64
		err     error
	}{
		{"too few points", pts[:2], []float64{1, 1}, []float64{0, 0, 0, 1, 1}, ErrControlPoints},
		{"weight count", pts, []float64{1, 1}, []float64{0, 0, 0, 1, 1, 1}, ErrInvalidWeights},
		{"negative weight", pts, []float64{1, -1, 1}, []float64{0, 0, 0, 1, 1, 1}, ErrInvalidWeights},
		{"knot count", pts, []float64{1, 1, 1}, []float64{0, 0, 1, 1, 1}, ErrInvalidKnots},
		{"decreasing knots", pts, []float64{1, 1, 1}, []float64{0, 0, 1, 0, 1, 1}, ErrInvalidKnots},
		{"empty domain", pts, []float64{1, 1, 1}, []float64{0, 0, 0, 0, 0, 0}, ErrInvalidKnots},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNurbsCurve(2, tt.points, tt.weights, tt.knots)
			test.That(t, errors.Is(err, tt.err), "got error", err)
		})
	}

	defer func() {
		if recover() == nil {
			t.Error("degree 0 should panic")
		}
	}()
	NewNurbsCurve(0, pts, []float64{1, 1, 1}, []float64{0, 0, 0, 1})
}
