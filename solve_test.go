package contour

import (
	"math"
	"slices"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	roots = slices.Clone(roots)
	slices.Sort(roots)
	slices.Sort(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-4, 0, 1)), []float64{-2, 2})
	checkRoots(t, slice(SolveQuadratic(6, -5, 1)), []float64{2, 3})
	checkRoots(t, slice(SolveQuadratic(1, 0, 1)), []float64{})
	checkRoots(t, slice(SolveQuadratic(3, 1, 0)), []float64{-3})
	checkRoots(t, slice(SolveQuadratic(4, 4, 1)), []float64{-2})
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(-8, 0, 0, 1)), []float64{2})
	// (x-1)(x-2)(x-3)
	checkRoots(t, slice(SolveCubic(-6, 11, -6, 1)), []float64{1, 2, 3})
	// (x+1)²(x-2)
	checkRoots(t, slice(SolveCubic(-2, -3, 0, 1)), []float64{-1, 2})
	// Degenerates to a quadratic.
	checkRoots(t, slice(SolveCubic(-4, 0, 1, 0)), []float64{-2, 2})
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x - math.Cos(x) }
	x := SolveITP(f, 0, 1, 1e-12, 0, 0.2, f(0), f(1))
	if n := math.Abs(f(x)); n > 1e-11 {
		t.Errorf("%v > 1e-11", n)
	}
}
