package contour

import "slices"

// KnotVector is a nondecreasing sequence of knot values.
type KnotVector []float64

// UniformKnots returns the clamped uniform knot vector on [0, 1] for n
// control points of the given degree.
func UniformKnots(degree, n int) KnotVector {
	kv := make(KnotVector, 0, n+degree+1)
	for range degree + 1 {
		kv = append(kv, 0)
	}
	spans := n - degree
	for i := 1; i < spans; i++ {
		kv = append(kv, float64(i)/float64(spans))
	}
	for range degree + 1 {
		kv = append(kv, 1)
	}
	return kv
}

// Valid reports whether kv can carry n control points of the given degree:
// it has n + degree + 1 nondecreasing values and a nonempty domain.
func (kv KnotVector) Valid(degree, n int) bool {
	if degree < 1 || len(kv) != n+degree+1 {
		return false
	}
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return kv[len(kv)-degree-1] > kv[degree]
}

// Clamped reports whether the first and last knots are repeated degree + 1
// times, so that the curve interpolates its end control points.
func (kv KnotVector) Clamped(degree int) bool {
	if len(kv) < 2*(degree+1) {
		return false
	}
	for i := 1; i <= degree; i++ {
		if kv[i] != kv[0] || kv[len(kv)-1-i] != kv[len(kv)-1] {
			return false
		}
	}
	return true
}

// Multiplicity returns how many times u occurs in kv.
func (kv KnotVector) Multiplicity(u float64) int {
	var n int
	for _, k := range kv {
		if k == u {
			n++
		}
	}
	return n
}

// Span returns the index i of the knot span with kv[i] <= u < kv[i+1],
// clamped to the valid range [degree, n-1]. This is algorithm A2.1 of The
// NURBS Book.
func (kv KnotVector) Span(degree int, u float64) int {
	n := len(kv) - degree - 2
	if u >= kv[n+1] {
		return n
	}
	if u < kv[degree] {
		return degree
	}

	low, high := degree, n+1
	mid := (low + high) / 2
	for u < kv[mid] || u >= kv[mid+1] {
		if u < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

func (kv KnotVector) reversed() KnotVector {
	out := make(KnotVector, len(kv))
	a, b := kv[0], kv[len(kv)-1]
	for i, k := range kv {
		out[len(kv)-1-i] = a + b - k
	}
	return out
}

func (kv KnotVector) inserted(k int, u float64) KnotVector {
	return slices.Insert(slices.Clone(kv), k+1, u)
}

// BasisFunctions returns the degree+1 nonvanishing B-spline basis functions
// at u, given the span of u. This is algorithm A2.2 of The NURBS Book.
func BasisFunctions(span int, u float64, degree int, knots KnotVector) []float64 {
	n := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	n[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		var saved float64
		for r := range j {
			temp := n[r] / (right[r+1] + left[j-r])
			n[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		n[j] = saved
	}
	return n
}

// DerivBasisFunctions returns the nonvanishing basis functions and their
// derivatives up to order nDerivs at u. Row k holds the k'th derivatives;
// rows above the degree are zero. This is algorithm A2.3 of The NURBS Book.
func DerivBasisFunctions(span int, u float64, degree, nDerivs int, knots KnotVector) [][]float64 {
	p := degree
	du := min(nDerivs, p)
	ders := zeros2d(nDerivs+1, p+1)
	ndu := zeros2d(p+1, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		var saved float64
		for r := range j {
			// Lower triangle holds the knot differences.
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			// Upper triangle holds the basis functions.
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	a := zeros2d(2, p+1)
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= du; k++ {
			var d float64
			rk := r - k
			pk := p - k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k - 1
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	f := float64(p)
	for k := 1; k <= du; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= f
		}
		f *= float64(p - k)
	}
	return ders
}

func zeros2d(n, m int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, m)
	}
	return out
}
