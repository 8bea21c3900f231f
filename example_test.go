package contour_test

import (
	"fmt"

	"honnef.co/go/contour"
)

func square() *contour.Contour {
	pts := []contour.Point{contour.Pt(0, 0), contour.Pt(10, 0), contour.Pt(10, 10), contour.Pt(0, 10)}
	c := contour.NewContour()
	for i := range pts {
		c.Add(contour.Line{P0: pts[i], P1: pts[(i+1)%len(pts)]})
	}
	return c
}

func ExampleEquid() {
	// The square runs counter-clockwise, so its left side is the inside.
	left, right, err := contour.Equid(square(), contour.EquidParams{
		RadiusLeft:  1,
		RadiusRight: 1,
		Side:        contour.SideBoth,
		ArcMode:     true,
	}, contour.DefaultTolerance)
	if err != nil {
		panic(err)
	}
	opts := contour.SVGOptions{MaxPrecision: 3}
	fmt.Println(contour.SVG([]contour.Curve{contour.NewContour(left...)}, opts))
	fmt.Println(contour.SVG([]contour.Curve{contour.NewContour(right...)}, opts))
	// Output:
	// M1,1 L9,1 L9,9 L1,9 L1,1 Z
	// M0,-1 L10,-1 A1,1 0 0 1 11,0 L11,10 A1,1 0 0 1 10,11 L0,11 A1,1 0 0 1 -1,10 L-1,0 A1,1 0 0 1 0,-1 Z
}

func ExampleBuildEnvelopeContour() {
	// Four lines that overshoot each other at the corners.
	curves := []contour.Curve{
		contour.Line{P0: contour.Pt(-1, 0), P1: contour.Pt(11, 0)},
		contour.Line{P0: contour.Pt(10, -1), P1: contour.Pt(10, 11)},
		contour.Line{P0: contour.Pt(11, 10), P1: contour.Pt(-1, 10)},
		contour.Line{P0: contour.Pt(0, 11), P1: contour.Pt(0, -1)},
	}
	c, err := contour.BuildEnvelopeContour(contour.Pt(5, 4), curves, contour.DefaultTolerance)
	if err != nil {
		panic(err)
	}
	fmt.Println(contour.SVG([]contour.Curve{c}, contour.SVGOptions{MaxPrecision: 3}))
	fmt.Printf("area %.1f\n", c.SignedArea())
	// Output:
	// M0,0 L10,0 L10,10 L0,10 L0,0 Z
	// area 100.0
}

func ExampleBooleanIntLoops() {
	a := contour.Circle{Center: contour.Pt(0, 0), Radius: 1}
	b := contour.Circle{Center: contour.Pt(1, 0), Radius: 1}
	res, loops := contour.BooleanIntLoops(a, true, b, true, contour.DefaultTolerance)
	fmt.Println(res, len(loops))
	fmt.Printf("area %.4f\n", contour.SignedArea(loops[0]))
	// Output:
	// success 1
	// area 1.2284
}
