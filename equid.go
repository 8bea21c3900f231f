package contour

import (
	"errors"
	"fmt"
	"math"
)

// Side selects which offsets [Equid] builds.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideBoth
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideBoth:
		return "both"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) left() bool  { return s == SideLeft || s == SideBoth }
func (s Side) right() bool { return s == SideRight || s == SideBoth }

// EquidParams configures [Equid].
type EquidParams struct {
	// RadiusLeft is the offset distance on the left, the side of the
	// counter-clockwise normal of the direction of travel.
	RadiusLeft float64
	// RadiusRight is the offset distance on the right.
	RadiusRight float64
	Side        Side
	// ArcMode joins offset pieces around convex corners with arcs centred on
	// the corner. Otherwise corners are chamfered with straight lines.
	ArcMode bool
	// DegenerateAllowed passes collapsed or inverted offsets through
	// instead of failing with ErrDegenerate.
	DegenerateAllowed bool
}

// Equid builds the equidistant curves of c. Lines offset to lines, circles
// to circles and arcs to arcs; other curves offset to [OffsetCurve]s.
// Contours are offset per segment and the pieces are joined at corners: on
// the side where adjacent pieces leave a gap, by an arc or a chamfer; on the
// side where they overlap, by trimming both at their intersection.
//
// The offset by d is degenerate where 1 − d·κ ≤ tol.DegenerateRatio for the
// signed curvature κ, or where a piece collapses. Unless DegenerateAllowed
// is set, a degenerate side fails with an error wrapping ErrDegenerate and
// returns no curves. The errors of both sides are joined; a successful side
// is returned regardless.
func Equid(c Curve, p EquidParams, tol Tolerance) (left, right []Curve, err error) {
	tol = tol.withDefaults()
	if !p.Side.left() && !p.Side.right() {
		return nil, nil, fmt.Errorf("invalid side %v", p.Side)
	}
	var errs []error
	if p.Side.left() {
		left, err = equidSide(c, p.RadiusLeft, p, tol)
		if err != nil {
			errs = append(errs, fmt.Errorf("left side: %w", err))
			left = nil
		}
	}
	if p.Side.right() {
		right, err = equidSide(c, -p.RadiusRight, p, tol)
		if err != nil {
			errs = append(errs, fmt.Errorf("right side: %w", err))
			right = nil
		}
	}
	return left, right, errors.Join(errs...)
}

// equidSide offsets c by the signed distance d.
func equidSide(c Curve, d float64, p EquidParams, tol Tolerance) ([]Curve, error) {
	segs := segmentsOf(c)
	if len(segs) == 0 {
		return nil, nil
	}
	pieces := make([]Curve, len(segs))
	for i, s := range segs {
		o, err := offsetSegment(s, d, p, tol)
		if err != nil {
			if len(segs) > 1 {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			return nil, err
		}
		pieces[i] = WithNameOf(WithNameOf(o, c), s)
	}
	if len(segs) == 1 {
		return pieces, nil
	}

	j := joiner{d: d, p: p, tol: tol, src: c}
	out := []Curve{pieces[0]}
	for i := 1; i < len(segs); i++ {
		var err error
		out, err = j.join(out, pieces[i], segs[i-1], segs[i])
		if err != nil {
			return nil, fmt.Errorf("corner %d: %w", i, err)
		}
	}
	if c.Closed() {
		last := len(segs) - 1
		var err error
		out, err = j.close(out, segs[last], segs[0])
		if err != nil {
			return nil, fmt.Errorf("corner %d: %w", len(segs), err)
		}
	}
	if !p.DegenerateAllowed && j.inverted(out) {
		return nil, fmt.Errorf("%w: offset turns inside out", ErrDegenerate)
	}
	return out, nil
}

// joiner connects the offsets of consecutive segments.
type joiner struct {
	d   float64
	p   EquidParams
	tol Tolerance
	src Curve
}

// inverted reports whether the joined pieces cross each other or, for a
// closed source, enclose area of the opposite sign.
func (j joiner) inverted(out []Curve) bool {
	ct := NewContour(out...)
	if j.src.Closed() && SignedArea(j.src)*ct.SignedArea() <= 0 {
		return true
	}
	return len(ct.SelfIntersections(j.tol)) > 0
}

type cornerKind int

const (
	cornerSmooth cornerKind = iota
	cornerGap
	cornerOverlap
)

// corner classifies the joint between s0 and s1 for the offset side, and
// returns the turning angle.
func (j joiner) corner(s0, s1 Curve) (cornerKind, float64) {
	const joinThresh = 1e-9
	t0 := Tangent(s0, s0.Domain().Max)
	t1 := Tangent(s1, s1.Domain().Min)
	cross := t0.Cross(t1)
	dot := t0.Dot(t1)
	if dot > 0 && math.Abs(cross) <= joinThresh {
		return cornerSmooth, 0
	}
	angle := math.Atan2(cross, dot)
	if cross == 0 {
		// The path turns back on itself; go round the front of the corner.
		angle = -sign(j.d) * math.Pi
	}
	if j.d*angle < 0 {
		return cornerGap, angle
	}
	return cornerOverlap, angle
}

func (j joiner) fill(a, b, vertex Point, angle float64) Curve {
	var fill Curve
	if j.p.ArcMode {
		fill = Arc{
			Center:     vertex,
			Radius:     math.Abs(j.d),
			StartAngle: a.Sub(vertex).Angle(),
			SweepAngle: angle,
		}
	} else {
		fill = Line{a, b}
	}
	return WithNameOf(fill, j.src)
}

// trimOverlap trims prev and next at the intersection nearest to the
// corner. It returns false if they do not meet.
func (j joiner) trimOverlap(prev, next Curve, vertex Point) (Curve, Curve, bool, error) {
	var best option[Intersection]
	bestD := math.Inf(1)
	for _, x := range Intersect(prev, next, j.tol) {
		if d := x.Point.DistanceSquared(vertex); d < bestD {
			best.set(x)
			bestD = d
		}
	}
	if !best.isSet {
		return prev, next, false, nil
	}
	x := best.value
	p := prev.Trim(prev.Domain().Min, x.T0)
	n := next.Trim(x.T1, next.Domain().Max)
	for _, c := range [...]Curve{p, n} {
		if isDegenerate(c) || Length(c, j.tol.Accuracy) <= j.tol.Region {
			if !j.p.DegenerateAllowed {
				return nil, nil, false, fmt.Errorf("%w: piece collapses at %v", ErrDegenerate, x.Point)
			}
			return prev, next, false, nil
		}
	}
	return p, n, true, nil
}

func (j joiner) join(out []Curve, next Curve, s0, s1 Curve) ([]Curve, error) {
	kind, angle := j.corner(s0, s1)
	prev := out[len(out)-1]
	vertex := End(s0)
	switch kind {
	case cornerGap:
		out = append(out, j.fill(End(prev), Start(next), vertex, angle))
	case cornerOverlap:
		p, n, ok, err := j.trimOverlap(prev, next, vertex)
		if err != nil {
			return nil, err
		}
		if ok {
			out[len(out)-1] = p
			next = n
		} else {
			out = append(out, WithNameOf(Line{End(prev), Start(next)}, j.src))
		}
	}
	return append(out, next), nil
}

// close joins the last piece of out to the first.
func (j joiner) close(out []Curve, s0, s1 Curve) ([]Curve, error) {
	kind, angle := j.corner(s0, s1)
	prev := out[len(out)-1]
	first := out[0]
	vertex := End(s0)
	switch kind {
	case cornerGap:
		out = append(out, j.fill(End(prev), Start(first), vertex, angle))
	case cornerOverlap:
		p, n, ok, err := j.trimOverlap(prev, first, vertex)
		if err != nil {
			return nil, err
		}
		if ok {
			out[len(out)-1] = p
			out[0] = n
		} else {
			out = append(out, WithNameOf(Line{End(prev), Start(first)}, j.src))
		}
	}
	return out, nil
}

// offsetSegment offsets a single smooth curve by the signed distance d.
func offsetSegment(s Curve, d float64, p EquidParams, tol Tolerance) (Curve, error) {
	if d == 0 {
		return s, nil
	}
	if isDegenerate(s) {
		if !p.DegenerateAllowed {
			return nil, fmt.Errorf("%w: zero-length segment", ErrDegenerate)
		}
		return s, nil
	}
	degenerate := func(t float64) error {
		return fmt.Errorf("%w at t=%g", ErrDegenerate, t)
	}
	switch u := unwrap(s).(type) {
	case Line:
		n := u.P1.Sub(u.P0).Normalize().Perp().Mul(d)
		return u.Translate(n), nil
	case Circle:
		if 1-d*Curvature(u, 0) <= tol.DegenerateRatio {
			if !p.DegenerateAllowed {
				return nil, degenerate(0)
			}
			return OffsetCurve{Source: u, Distance: d}, nil
		}
		return Circle{Center: u.Center, Radius: u.Radius - d*sign(u.Radius)}, nil
	case Arc:
		if 1-d*Curvature(u, 0) <= tol.DegenerateRatio {
			if !p.DegenerateAllowed {
				return nil, degenerate(0)
			}
			return OffsetCurve{Source: u, Distance: d}, nil
		}
		u.Radius -= d * sign(u.SweepAngle) * sign(u.Radius)
		return u, nil
	case OffsetCurve:
		return offsetGeneric(u.Source, u.Distance+d, p, tol)
	default:
		return offsetGeneric(u, d, p, tol)
	}
}

func offsetGeneric(s Curve, d float64, p EquidParams, tol Tolerance) (Curve, error) {
	if d == 0 {
		return s, nil
	}
	o := OffsetCurve{Source: s, Distance: d}
	if t, ok := o.firstDegenerate(tol.DegenerateRatio, tol.Accuracy); ok && !p.DegenerateAllowed {
		return nil, fmt.Errorf("%w at t=%g", ErrDegenerate, t)
	}
	return o, nil
}
