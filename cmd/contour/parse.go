package main

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"honnef.co/go/contour"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int, error) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0, 0, fmt.Errorf("expected number at %q", path[i:])
	}
	return f, i + n, nil
}

// parseShapes reads a list of shapes separated by semicolons. A shape is
// either "circle:x,y,r" or SVG path data; every subpath of the path data
// becomes its own contour.
func parseShapes(s string) ([]contour.Curve, error) {
	var out []contour.Curve
	for i, shape := range strings.Split(s, ";") {
		shape = strings.TrimSpace(shape)
		if shape == "" {
			continue
		}
		var cs []contour.Curve
		var err error
		if rest, ok := strings.CutPrefix(shape, "circle:"); ok {
			var c contour.Curve
			c, err = parseCircle([]byte(rest))
			cs = []contour.Curve{c}
		} else {
			cs, err = parsePath([]byte(shape))
		}
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		for j, c := range cs {
			name := contour.Name(fmt.Sprintf("s%d", i))
			if len(cs) > 1 {
				name = contour.Name(fmt.Sprintf("s%d.%d", i, j))
			}
			out = append(out, contour.WithName(c, name))
		}
	}
	return out, nil
}

func parseCircle(b []byte) (contour.Curve, error) {
	var v [3]float64
	i := 0
	for k := range v {
		f, n, err := parseNum(b[i:])
		if err != nil {
			return nil, err
		}
		v[k] = f
		i += n
	}
	if i += skipCommaWhitespace(b[i:]); i != len(b) {
		return nil, fmt.Errorf("trailing data %q", b[i:])
	}
	return contour.Circle{Center: contour.Pt(v[0], v[1]), Radius: v[2]}, nil
}

// parsePath reads SVG path data with the M, L, H, V, C and Z commands, in
// absolute and relative form.
func parsePath(path []byte) ([]contour.Curve, error) {
	var out []contour.Curve
	var cur *contour.Contour
	var pos, start contour.Point
	flush := func() {
		if cur != nil && cur.Len() > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	nums := func(i int, k int) ([]float64, int, error) {
		v := make([]float64, k)
		for j := range v {
			f, n, err := parseNum(path[i:])
			if err != nil {
				return nil, 0, err
			}
			v[j] = f
			i += n
		}
		return v, i, nil
	}

	var prevCmd byte
	i := 0
	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}
		cmd := prevCmd
		if path[i] >= 'A' {
			cmd = path[i]
			i++
		}
		rel := 'a' <= cmd && cmd <= 'z'
		abs := func(x, y float64) contour.Point {
			if rel {
				return contour.Pt(pos.X+x, pos.Y+y)
			}
			return contour.Pt(x, y)
		}
		var err error
		var v []float64
		switch cmd {
		case 'M', 'm':
			if v, i, err = nums(i, 2); err != nil {
				return nil, err
			}
			flush()
			pos = abs(v[0], v[1])
			start = pos
			cur = contour.NewContour()
			// Coordinates following a move are implicit line commands.
			cmd = 'L' + (cmd - 'M')
		case 'L', 'l':
			if v, i, err = nums(i, 2); err != nil {
				return nil, err
			}
			p := abs(v[0], v[1])
			cur, err = appendSeg(cur, contour.Line{P0: pos, P1: p})
			pos = p
		case 'H', 'h':
			if v, i, err = nums(i, 1); err != nil {
				return nil, err
			}
			p := contour.Pt(v[0], pos.Y)
			if rel {
				p.X += pos.X
			}
			cur, err = appendSeg(cur, contour.Line{P0: pos, P1: p})
			pos = p
		case 'V', 'v':
			if v, i, err = nums(i, 1); err != nil {
				return nil, err
			}
			p := contour.Pt(pos.X, v[0])
			if rel {
				p.Y += pos.Y
			}
			cur, err = appendSeg(cur, contour.Line{P0: pos, P1: p})
			pos = p
		case 'C', 'c':
			if v, i, err = nums(i, 6); err != nil {
				return nil, err
			}
			c := contour.CubicBez{P0: pos, P1: abs(v[0], v[1]), P2: abs(v[2], v[3]), P3: abs(v[4], v[5])}
			cur, err = appendSeg(cur, c)
			pos = c.P3
		case 'Z', 'z':
			if cur == nil {
				return nil, fmt.Errorf("close without subpath")
			}
			if !pos.Near(start, contour.DefaultTolerance.Region) {
				cur.Add(contour.Line{P0: pos, P1: start})
			}
			pos = start
			flush()
		default:
			return nil, fmt.Errorf("unsupported path command %q", cmd)
		}
		if err != nil {
			return nil, err
		}
		prevCmd = cmd
	}
	flush()
	return out, nil
}

func appendSeg(c *contour.Contour, seg contour.Curve) (*contour.Contour, error) {
	if c == nil {
		return nil, fmt.Errorf("path must start with a move")
	}
	c.Add(seg)
	return c, nil
}
