package contour

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Accuracy is the flattening accuracy for curves that have no SVG path
	// command of their own. It defaults to DefaultTolerance.Accuracy.
	Accuracy float64
}

// SVG converts curves to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(curves []Curve, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, curves, opts)
	return sb.String()
}

// WriteSVG converts curves to a string of SVG path commands and writes it to
// w. Lines, arcs, circles and cubic Béziers map to their own commands; other
// curves are flattened. Each curve starts a new subpath unless it continues
// from the end of the previous one, and closed contours end with Z.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, curves []Curve, opts SVGOptions) error {
	if opts.Accuracy <= 0 {
		opts.Accuracy = DefaultTolerance.Accuracy
	}
	sw := svgWriter{w: w, opts: opts, first: true}
	for _, c := range curves {
		if c == nil {
			continue
		}
		if ct, ok := unwrap(c).(*Contour); ok {
			sw.contour(ct)
		} else {
			sw.curve(c)
		}
		if sw.err != nil {
			return sw.err
		}
	}
	return sw.err
}

type svgWriter struct {
	w     io.Writer
	opts  SVGOptions
	err   error
	first bool
	open  bool
	pen   Point
}

func (sw *svgWriter) format(n float64) string {
	maxPrec := sw.opts.MaxPrecision
	var s string
	if maxPrec <= 0 {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

func (sw *svgWriter) writef(s string, v ...any) {
	if sw.err != nil {
		return
	}
	if !sw.first {
		s = " " + s
	}
	sw.first = false
	_, sw.err = fmt.Fprintf(sw.w, s, v...)
}

func (sw *svgWriter) point(cmd string, p Point) {
	sw.writef("%s%s,%s", cmd, sw.format(p.X), sw.format(p.Y))
	sw.pen = p
}

func (sw *svgWriter) moveTo(p Point) {
	if sw.open && sw.pen.Near(p, DefaultTolerance.Region) {
		return
	}
	sw.point("M", p)
	sw.open = true
}

func (sw *svgWriter) contour(ct *Contour) {
	sw.open = false
	for _, s := range ct.segs {
		sw.curve(s)
	}
	if ct.Closed() {
		sw.writef("Z")
		sw.pen = ct.Start()
	}
	sw.open = false
}

func (sw *svgWriter) curve(c Curve) {
	sw.moveTo(Start(c))
	switch c := unwrap(c).(type) {
	case Line:
		sw.point("L", c.P1)
	case Circle:
		sw.arc(Arc{Center: c.Center, Radius: c.Radius, SweepAngle: 2 * math.Pi})
	case Arc:
		sw.arc(c)
	case CubicBez:
		sw.writef("C%s,%s %s,%s %s,%s",
			sw.format(c.P1.X), sw.format(c.P1.Y),
			sw.format(c.P2.X), sw.format(c.P2.Y),
			sw.format(c.P3.X), sw.format(c.P3.Y))
		sw.pen = c.P3
	default:
		samples := Flatten(c, sw.opts.Accuracy)
		for _, s := range samples[1:] {
			sw.point("L", s.Point)
		}
	}
}

func (sw *svgWriter) arc(a Arc) {
	if a.Closed() {
		// A single arc command cannot describe a full turn.
		h0, h1 := a.Trim(0, 0.5).(Arc), a.Trim(0.5, 1).(Arc)
		sw.arc(h0)
		sw.arc(h1)
		return
	}
	r := sw.format(math.Abs(a.Radius))
	large, sweep := 0, 0
	if math.Abs(a.SweepAngle) > math.Pi {
		large = 1
	}
	if a.SweepAngle > 0 {
		sweep = 1
	}
	end := a.Eval(1)
	sw.writef("A%s,%s 0 %d %d %s,%s", r, r, large, sweep, sw.format(end.X), sw.format(end.Y))
	sw.pen = end
}
