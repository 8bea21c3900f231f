package main

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
	"honnef.co/go/contour"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path     string
		segments int
		closed   bool
		area     float64
	}{
		{"M0,0 L10,0 L10,10 Z", 3, true, 50},
		{"M0 0 l10 0 v10 h-10 z", 4, true, 100},
		{"M0,0 10,0 10,10 0,10 Z", 4, true, 100},
		{"m1,1 H11 V11 H1 Z", 4, true, 100},
		{"M0,0 L1,0 L1,1", 2, false, 0},
		{"M0,0 C1,1 2,1 3,0", 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			shapes, err := parsePath([]byte(tt.path))
			test.Error(t, err)
			test.T(t, len(shapes), 1)
			c := shapes[0].(*contour.Contour)
			test.T(t, c.Len(), tt.segments)
			test.T(t, c.Closed(), tt.closed)
			if tt.closed {
				test.Float(t, c.SignedArea(), tt.area)
			}
		})
	}
}

func TestParsePathCubic(t *testing.T) {
	shapes, err := parsePath([]byte("M0,0 c1,1 2,1 3,0"))
	test.Error(t, err)
	seg, ok := shapes[0].(*contour.Contour).Segment(0).(contour.CubicBez)
	test.That(t, ok, "segment is a cubic")
	test.T(t, seg.P3, contour.Pt(3, 0))
}

func TestParseShapes(t *testing.T) {
	shapes, err := parseShapes("circle:1,2,3; M0,0 L1,0 M5,5 L6,5")
	test.Error(t, err)
	test.T(t, len(shapes), 3)
	var names []contour.Name
	for _, s := range shapes {
		name, _ := contour.NameOf(s)
		names = append(names, name)
	}
	test.T(t, names, []contour.Name{"s0", "s1.0", "s1.1"})

	circ, ok := shapes[0].(contour.Named).Curve.(contour.Circle)
	test.That(t, ok, "first shape is a circle")
	test.T(t, circ.Center, contour.Pt(1, 2))
	test.Float(t, circ.Radius, 3)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"L1,1",
		"M0,0 Q1,1 2,2",
		"M0,x",
		"Z",
		"circle:1,2",
		"circle:1,2,3,4",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := parseShapes(s)
			test.That(t, err != nil, "expected an error")
		})
	}
}

func TestParseLoop(t *testing.T) {
	_, err := parseLoop("circle:0,0,1")
	test.Error(t, err)
	_, err = parseLoop("M0,0 L1,0")
	test.That(t, errors.Is(err, contour.ErrNotClosed))
	_, err = parseLoop("circle:0,0,1;circle:5,0,1")
	test.That(t, errors.Is(err, contour.ErrNotClosed))
}
