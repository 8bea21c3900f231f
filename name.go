package contour

// Name labels a curve. The empty name means "unnamed".
type Name string

// Named attaches a name to a curve. Trimming, reversing and offsetting a
// named curve produce curves carrying the same name.
type Named struct {
	Curve
	Name Name
}

var _ Nearester = Named{}
var _ Arclener = Named{}
var _ SignedAreaer = Named{}
var _ SelfIntersecter = Named{}

// WithName returns c labelled with name, replacing any previous name. An
// empty name returns the unnamed curve.
func WithName(c Curve, name Name) Curve {
	c = unwrap(c)
	if name == "" {
		return c
	}
	return Named{Curve: c, Name: name}
}

// NameOf returns the name of c, if it has one.
func NameOf(c Curve) (Name, bool) {
	if n, ok := c.(Named); ok && n.Name != "" {
		return n.Name, true
	}
	return "", false
}

// unwrap strips names.
func unwrap(c Curve) Curve {
	for {
		n, ok := c.(Named)
		if !ok {
			return c
		}
		c = n.Curve
	}
}

func (n Named) Trim(t0, t1 float64) Curve { return WithName(n.Curve.Trim(t0, t1), n.Name) }
func (n Named) Reverse() Curve            { return WithName(n.Curve.Reverse(), n.Name) }

func (n Named) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	t, d := Project(n.Curve, pt, Tolerance{Accuracy: accuracy})
	return d * d, t
}

func (n Named) Arclen(accuracy float64) float64 { return Length(n.Curve, accuracy) }
func (n Named) SignedArea() float64             { return SignedArea(n.Curve) }

func (n Named) SelfIntersections(tol Tolerance) []Intersection {
	return SelfIntersections(n.Curve, tol)
}

// NameIntersectionInfo reports how many curves of a set carry a name.
type NameIntersectionInfo struct {
	Name          Name
	Intersections int
}

// NameCoincidences counts, for every name used in curves, the number of
// curves carrying it. The result is ordered by first appearance; unnamed
// curves are skipped.
func NameCoincidences(curves []Curve) []NameIntersectionInfo {
	var out []NameIntersectionInfo
	idx := map[Name]int{}
	for _, c := range curves {
		name, ok := NameOf(c)
		if !ok {
			continue
		}
		if i, ok := idx[name]; ok {
			out[i].Intersections++
			continue
		}
		idx[name] = len(out)
		out = append(out, NameIntersectionInfo{Name: name, Intersections: 1})
	}
	return out
}
