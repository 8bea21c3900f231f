package contour

import (
	"cmp"
	"math"
	"slices"
)

// Intersection is a point shared by two curves.
type Intersection struct {
	// T0 is the parameter on the first curve.
	T0 float64
	// T1 is the parameter on the second curve.
	T1    float64
	Point Point
}

// Intersect computes the points where a and b meet, ordered by parameter on
// a. Lines, circles and arcs intersect analytically, cubics against lines by
// solving a cubic, contours per segment. Everything else falls back to
// intersecting flattened polylines and refining each candidate with Newton's
// method.
//
// Coincident circles and arcs report no intersections; collinear
// overlapping lines report the ends of the overlap.
func Intersect(a, b Curve, tol Tolerance) []Intersection {
	tol = tol.withDefaults()
	a, b = unwrap(a), unwrap(b)
	if isDegenerate(a) || isDegenerate(b) {
		return nil
	}
	var xs []Intersection
	if ca, ok := a.(*Contour); ok {
		for i, s := range ca.segs {
			for _, x := range Intersect(s, b, tol) {
				x.T0 = ca.global(i, x.T0)
				xs = append(xs, x)
			}
		}
	} else if cb, ok := b.(*Contour); ok {
		for i, s := range cb.segs {
			for _, x := range Intersect(a, s, tol) {
				x.T1 = cb.global(i, x.T1)
				xs = append(xs, x)
			}
		}
	} else {
		if !BoundingBox(a, tol.Accuracy).Inflate(tol.Region, tol.Region).Bound().
			Intersects(BoundingBox(b, tol.Accuracy).Bound()) {
			return nil
		}
		xs = intersectPrimitive(a, b, tol)
	}
	return dedupIntersections(a, b, xs, tol)
}

func intersectPrimitive(a, b Curve, tol Tolerance) []Intersection {
	switch a := a.(type) {
	case Line:
		switch b := b.(type) {
		case Line:
			return intersectLines(a, b, tol)
		case Circle:
			return intersectLineArc(a, circleArc(b), b, tol)
		case Arc:
			return intersectLineArc(a, b, b, tol)
		case CubicBez:
			return swapped(b.IntersectLine(a, tol))
		}
	case Circle:
		switch b := b.(type) {
		case Line:
			return swapped(intersectLineArc(b, circleArc(a), a, tol))
		case Circle:
			return intersectArcs(circleArc(a), a, circleArc(b), b, tol)
		case Arc:
			return intersectArcs(circleArc(a), a, b, b, tol)
		}
	case Arc:
		switch b := b.(type) {
		case Line:
			return swapped(intersectLineArc(b, a, a, tol))
		case Circle:
			return intersectArcs(a, a, circleArc(b), b, tol)
		case Arc:
			return intersectArcs(a, a, b, b, tol)
		}
	case CubicBez:
		if l, ok := b.(Line); ok {
			return a.IntersectLine(l, tol)
		}
	}
	return intersectNumeric(a, b, tol)
}

func swapped(xs []Intersection) []Intersection {
	for i := range xs {
		xs[i].T0, xs[i].T1 = xs[i].T1, xs[i].T0
	}
	return xs
}

// circleArc describes a circle as a full counter-clockwise arc.
func circleArc(c Circle) Arc {
	return Arc{Center: c.Center, Radius: c.Radius, SweepAngle: 2 * math.Pi}
}

// arcParam maps an angle on the circle of a onto the parameter of owner,
// which is either a or the circle it was made from.
func arcParam(a Arc, owner Curve, th, eps float64) (float64, bool) {
	if _, ok := owner.(Circle); ok {
		if a.Radius < 0 {
			th += math.Pi
		}
		return normalizeAngle(th), true
	}
	if a.Radius < 0 {
		th += math.Pi
	}
	return a.paramOfAngle(th, eps)
}

func intersectLineArc(l Line, a Arc, owner Curve, tol Tolerance) []Intersection {
	d := l.P1.Sub(l.P0)
	length := d.Hypot()
	if length <= tol.Region {
		return nil
	}
	u := d.Div(length)
	w := a.Center.Sub(l.P0)
	r := math.Abs(a.Radius)
	proj := w.Dot(u)
	h := u.Cross(w)

	var along [2]float64
	var n int
	switch {
	case math.Abs(h) > r+tol.Region:
		return nil
	case math.Abs(math.Abs(h)-r) <= tol.Region:
		along[0] = proj
		n = 1
	default:
		half := math.Sqrt(r*r - h*h)
		along[0], along[1] = proj-half, proj+half
		n = 2
	}

	eps := tol.Region / length
	angEps := tol.Region / max(r, tol.Region)
	var out []Intersection
	for _, s := range along[:n] {
		s /= length
		if s < -eps || s > 1+eps {
			continue
		}
		s = clamp01(s)
		p := l.Eval(s)
		t, ok := arcParam(a, owner, p.Sub(a.Center).Angle(), angEps)
		if !ok {
			continue
		}
		out = append(out, Intersection{T0: s, T1: t, Point: p})
	}
	return out
}

func intersectArcs(a Arc, ownerA Curve, b Arc, ownerB Curve, tol Tolerance) []Intersection {
	r0 := math.Abs(a.Radius)
	r1 := math.Abs(b.Radius)
	v := b.Center.Sub(a.Center)
	d := v.Hypot()
	if d <= tol.Region {
		// Concentric circles either coincide or never meet.
		return nil
	}
	if d > r0+r1+tol.Region || d < math.Abs(r0-r1)-tol.Region {
		return nil
	}
	e := v.Div(d)
	x := (d*d + r0*r0 - r1*r1) / (2 * d)
	h2 := r0*r0 - x*x
	var pts [2]Point
	n := 1
	base := a.Center.Translate(e.Mul(x))
	if h2 <= tol.Region*tol.Region {
		pts[0] = base
	} else {
		h := math.Sqrt(h2)
		pts[0] = base.Translate(e.Perp().Mul(-h))
		pts[1] = base.Translate(e.Perp().Mul(h))
		n = 2
	}

	epsA := tol.Region / max(r0, tol.Region)
	epsB := tol.Region / max(r1, tol.Region)
	var out []Intersection
	for _, p := range pts[:n] {
		ta, ok := arcParam(a, ownerA, p.Sub(a.Center).Angle(), epsA)
		if !ok {
			continue
		}
		tb, ok := arcParam(b, ownerB, p.Sub(b.Center).Angle(), epsB)
		if !ok {
			continue
		}
		out = append(out, Intersection{T0: ta, T1: tb, Point: p})
	}
	return out
}

// intersectNumeric intersects the flattenings of a and b and refines every
// crossing of their chords.
func intersectNumeric(a, b Curve, tol Tolerance) []Intersection {
	fa := Flatten(a, tol.Accuracy)
	fb := Flatten(b, tol.Accuracy)
	boxesB := chordBoxes(fb, tol.Accuracy)
	var out []Intersection
	for i := 1; i < len(fa); i++ {
		ea := Line{fa[i-1].Point, fa[i].Point}
		boxA := NewRectFromPoints(ea.P0, ea.P1).Inflate(tol.Accuracy, tol.Accuracy)
		for j := 1; j < len(fb); j++ {
			if !boxA.Overlaps(boxesB[j-1]) {
				continue
			}
			eb := Line{fb[j-1].Point, fb[j].Point}
			for _, x := range intersectLines(ea, eb, Tolerance{Region: tol.Accuracy}.withDefaults()) {
				s := fa[i-1].T + x.T0*(fa[i].T-fa[i-1].T)
				u := fb[j-1].T + x.T1*(fb[j].T-fb[j-1].T)
				if r, ok := refineIntersection(a, b, s, u, tol); ok {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

func chordBoxes(samples []Sample, pad float64) []Rect {
	boxes := make([]Rect, 0, max(len(samples)-1, 0))
	for i := 1; i < len(samples); i++ {
		boxes = append(boxes, NewRectFromPoints(samples[i-1].Point, samples[i].Point).Inflate(pad, pad))
	}
	return boxes
}

// refineIntersection runs Newton's method on a(s) − b(u) = 0.
func refineIntersection(a, b Curve, s, u float64, tol Tolerance) (Intersection, bool) {
	da, db := a.Domain(), b.Domain()
	clampA := func(t float64) float64 {
		if a.Closed() {
			return wrapParam(a, t)
		}
		return da.Clamp(t)
	}
	clampB := func(t float64) float64 {
		if b.Closed() {
			return wrapParam(b, t)
		}
		return db.Clamp(t)
	}
	for range tol.MaxIterations {
		f := a.Eval(s).Sub(b.Eval(u))
		if f.Hypot() <= tol.Region*1e-3 {
			break
		}
		ja := a.Deriv(s)
		jb := b.Deriv(u).Negate()
		det := ja.Cross(jb)
		if det == 0 {
			break
		}
		// Solve [ja jb]·[ds du]ᵀ = −f by Cramer's rule.
		ds := -f.Cross(jb) / det
		du := -ja.Cross(f) / det
		s = clampA(s + ds)
		u = clampB(u + du)
	}
	pa := a.Eval(s)
	pb := b.Eval(u)
	if !pa.Near(pb, tol.Region) {
		return Intersection{}, false
	}
	return Intersection{T0: s, T1: u, Point: pa.Midpoint(pb)}, true
}

// dedupIntersections sorts by parameter on a and merges intersections that
// denote the same location on both curves.
func dedupIntersections(a, b Curve, xs []Intersection, tol Tolerance) []Intersection {
	slices.SortStableFunc(xs, func(x, y Intersection) int { return cmp.Compare(x.T0, y.T0) })
	out := xs[:0]
outer:
	for _, x := range xs {
		for _, y := range out {
			if tol.samePoint(x.Point, y.Point) && tol.sameParam(a, x.T0, y.T0) && tol.sameParam(b, x.T1, y.T1) {
				continue outer
			}
		}
		out = append(out, x)
	}
	return out
}

// SelfIntersections computes the points where c crosses itself. Both
// parameters of every crossing are reported, with T0 < T1.
func SelfIntersections(c Curve, tol Tolerance) []Intersection {
	tol = tol.withDefaults()
	if s, ok := c.(SelfIntersecter); ok {
		return s.SelfIntersections(tol)
	}
	switch c.(type) {
	case Line, Circle, Arc:
		return nil
	}
	if isDegenerate(c) {
		return nil
	}
	samples := Flatten(c, tol.Accuracy)
	n := len(samples) - 1
	closed := c.Closed()
	minSep := 4 * tol.Region
	var out []Intersection
	for i := 1; i <= n; i++ {
		ea := Line{samples[i-1].Point, samples[i].Point}
		for j := i + 2; j <= n; j++ {
			if closed && i == 1 && j == n {
				continue
			}
			eb := Line{samples[j-1].Point, samples[j].Point}
			for _, x := range intersectLines(ea, eb, Tolerance{Region: tol.Accuracy}.withDefaults()) {
				s := samples[i-1].T + x.T0*(samples[i].T-samples[i-1].T)
				u := samples[j-1].T + x.T1*(samples[j].T-samples[j-1].T)
				r, ok := refineIntersection(c, c, s, u, tol)
				if !ok || paramDistance(c, r.T0, r.T1)*c.Deriv(r.T0).Hypot() <= minSep {
					continue
				}
				if r.T0 > r.T1 {
					r.T0, r.T1 = r.T1, r.T0
				}
				out = append(out, r)
			}
		}
	}
	return dedupIntersections(c, c, out, tol)
}
