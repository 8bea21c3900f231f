package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs of floats, within 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

func near(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("got %v, want %v (±%g)", got, want, epsilon)
	}
}

func nearPt(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if !got.Near(want, epsilon) {
		t.Errorf("got %v, want %v (±%g)", got, want, epsilon)
	}
}
