package contour

import (
	"math"
	"testing"
)

func totalArea(curves []Curve) float64 {
	var a float64
	for _, c := range curves {
		a += SignedArea(c)
	}
	return a
}

func totalLength(curves []Curve) float64 {
	var l float64
	for _, c := range curves {
		l += Length(c, 1e-9)
	}
	return l
}

func TestBooleanIntLoops(t *testing.T) {
	unit := Circle{Pt(0, 0), 1}
	big := Circle{Pt(0, 0), 5}
	small := Circle{Pt(1, 0), 1}
	far := Circle{Pt(5, 0), 1}
	bowtie := polygon(Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10))

	tests := []struct {
		name    string
		loop1   Curve
		orient1 bool
		loop2   Curve
		orient2 bool
		want    LoopsResult
		loops   int
		area    float64
		length  float64
	}{
		{"lens", unit, true, small, true, LoopsSuccess, 1, 2*math.Pi/3 - math.Sqrt(3)/2, 4 * math.Pi / 3},
		{"squares", square(0, 0, 10, 10), true, square(5, 5, 15, 15), true, LoopsSuccess, 1, 25, 20},
		{"disjoint", unit, true, far, true, LoopsNotIntersect, 0, 0, 0},
		{"second inside first", big, true, small, true, LoopsSecondCurve, 0, 0, 0},
		{"first inside second", small, true, big, true, LoopsFirstCurve, 0, 0, 0},
		{"identical", unit, true, unit, true, LoopsFirstCurve, 0, 0, 0},
		{"identical reversed", unit, true, unit.Reverse(), true, LoopsFirstCurve, 0, 0, 0},
		{"identical opposite sides", unit, true, unit, false, LoopsNotIntersect, 0, 0, 0},
		{"hole", big, true, small, false, LoopsSuccess, 2, 24 * math.Pi, 12 * math.Pi},
		{"inside the hole", small, true, big, false, LoopsNotIntersect, 0, 0, 0},
		{"outside", big, false, small, true, LoopsNotIntersect, 0, 0, 0},
		{"outside both", unit, false, far, false, LoopsSuccess, 2, -2 * math.Pi, 4 * math.Pi},
		{"outside nested", big, false, small, false, LoopsFirstCurve, 0, 0, 0},
		{"first outside second", unit, false, far, true, LoopsSecondCurve, 0, 0, 0},
		{"open", Line{Pt(0, 0), Pt(1, 0)}, true, unit, true, LoopsError, 0, 0, 0},
		{"nil", nil, true, unit, true, LoopsError, 0, 0, 0},
		{"self intersecting", bowtie, true, unit, true, LoopsError, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, loops := BooleanIntLoops(tt.loop1, tt.orient1, tt.loop2, tt.orient2, DefaultTolerance)
			if res != tt.want {
				t.Fatalf("got %v, want %v", res, tt.want)
			}
			if len(loops) != tt.loops {
				t.Fatalf("got %d loops, want %d", len(loops), tt.loops)
			}
			for i, l := range loops {
				if !l.Closed() {
					t.Errorf("loop %d is open", i)
				}
			}
			near(t, totalArea(loops), tt.area, 1e-9)
			near(t, totalLength(loops), tt.length, 1e-9)
		})
	}
}

func TestBooleanIntLoopsTolerance(t *testing.T) {
	// The square misses closing by 5e-7: closed under the default region,
	// open under a tighter one.
	gap := NewContour(
		Line{Pt(0, 0), Pt(10, 0)},
		Line{Pt(10, 0), Pt(10, 10)},
		Line{Pt(10, 10), Pt(0, 10)},
		Line{Pt(0, 10), Pt(0, 5e-7)},
	)
	if !gap.Closed() || !ClosedWithin(gap, DefaultTolerance) {
		t.Error("gap square is open under the default tolerance")
	}
	tight := Tolerance{Region: 1e-8}
	if ClosedWithin(gap, tight) {
		t.Error("gap square is closed under a region of 1e-8")
	}
	if res, _ := BooleanIntLoops(gap, true, square(5, 5, 15, 15), true, tight); res != LoopsError {
		t.Errorf("got %v, want %v", res, LoopsError)
	}
	if res, _ := BooleanIntLoops(gap, true, square(5, 5, 15, 15), true, DefaultTolerance); res != LoopsSuccess {
		t.Errorf("got %v, want %v", res, LoopsSuccess)
	}

	if ClosedWithin(Line{Pt(0, 0), Pt(1, 0)}, DefaultTolerance) || !ClosedWithin(Circle{Pt(0, 0), 1}, tight) {
		t.Error("wrong closedness for line or circle")
	}
}

func TestLoopsResultString(t *testing.T) {
	diff(t, "success", LoopsSuccess.String())
	diff(t, "not intersecting", LoopsNotIntersect.String())
	diff(t, "LoopsResult(9)", LoopsResult(9).String())
}
