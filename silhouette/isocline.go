package silhouette

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Options controls the sampling of [Isoclines].
type Options struct {
	// U and V are the number of grid cells in each parameter direction.
	// They default to 64.
	U, V int
	// Tolerance is the parameter precision of the refined crossings. It
	// defaults to 1e-10.
	Tolerance float64
}

func (o Options) withDefaults() Options {
	if o.U <= 0 {
		o.U = 64
	}
	if o.V <= 0 {
		o.V = 64
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-10
	}
	return o
}

// Sample is a point of an isocline, in parameter space and in space.
type Sample struct {
	U, V float64
	P    r3.Vec
}

// Polyline is a chain of isocline samples. A closed polyline does not
// repeat its first sample.
type Polyline struct {
	Samples []Sample
	Closed  bool
}

// Points returns the points in space.
func (p Polyline) Points() []r3.Vec {
	out := make([]r3.Vec, len(p.Samples))
	for i, s := range p.Samples {
		out[i] = s.P
	}
	return out
}

// Silhouette returns the silhouette of s as seen from view.
func Silhouette(s Surface, view View, opts Options) []Polyline {
	return Isoclines(s, view, math.Pi/2, opts)
}

// Isoclines returns the curves on s along which the angle between the
// surface normal and the viewing direction equals angle.
//
// The surface is sampled on a grid in parameter space. Grid edges across
// which the angle crosses the requested value are refined by bisection and
// the crossings are chained into polylines, marching-squares style.
func Isoclines(s Surface, view View, angle float64, opts Options) []Polyline {
	opts = opts.withDefaults()
	m := newMarcher(s, view, math.Cos(angle), opts)
	m.march()
	return m.chain()
}

// edge identifies a grid edge. A horizontal edge joins vertex (i, j) to
// (i+1, j); a vertical one joins (i, j) to (i, j+1).
type edge struct {
	i, j       int
	horizontal bool
}

type marcher struct {
	s          Surface
	view       View
	level      float64
	opts       Options
	u0, u1     float64
	v0, v1     float64
	uPer, vPer bool
	values     [][]float64

	crossings map[edge]Sample
	adjacent  map[edge][]edge
	// order records edges in discovery order, for deterministic chaining.
	order []edge
}

func newMarcher(s Surface, view View, level float64, opts Options) *marcher {
	m := &marcher{
		s:         s,
		view:      view,
		level:     level,
		opts:      opts,
		crossings: map[edge]Sample{},
		adjacent:  map[edge][]edge{},
	}
	m.u0, m.u1, m.v0, m.v1 = s.Domain()
	m.uPer, m.vPer = periodic(s)
	m.values = make([][]float64, opts.U+1)
	for i := range m.values {
		m.values[i] = make([]float64, opts.V+1)
		for j := range m.values[i] {
			ii, jj := m.wrap(i, j)
			if ii != i || jj != j {
				continue
			}
			u, v := m.param(i, j)
			m.values[i][j] = m.f(u, v)
		}
	}
	for i := range m.values {
		for j := range m.values[i] {
			ii, jj := m.wrap(i, j)
			m.values[i][j] = m.values[ii][jj]
		}
	}
	return m
}

func (m *marcher) f(u, v float64) float64 {
	p := m.s.Eval(u, v)
	return r3.Dot(m.s.Normal(u, v), m.view.Direction(p)) - m.level
}

func (m *marcher) param(i, j int) (float64, float64) {
	u := m.u0 + (m.u1-m.u0)*float64(i)/float64(m.opts.U)
	v := m.v0 + (m.v1-m.v0)*float64(j)/float64(m.opts.V)
	return u, v
}

// wrap maps vertex indices on periodic seams onto their first occurrence.
func (m *marcher) wrap(i, j int) (int, int) {
	if m.uPer && i == m.opts.U {
		i = 0
	}
	if m.vPer && j == m.opts.V {
		j = 0
	}
	return i, j
}

func (m *marcher) key(e edge) edge {
	e.i, e.j = m.wrap(e.i, e.j)
	return e
}

func (m *marcher) positive(i, j int) bool { return m.values[i][j] >= 0 }

// crossing returns the refined crossing on e, computing it on first use.
func (m *marcher) crossing(e edge) Sample {
	e = m.key(e)
	if s, ok := m.crossings[e]; ok {
		return s
	}
	i1, j1 := e.i, e.j+1
	if e.horizontal {
		i1, j1 = e.i+1, e.j
	}
	ua, va := m.param(e.i, e.j)
	ub, vb := m.param(i1, j1)
	fa := m.values[e.i][e.j]
	if fa >= 0 {
		// Keep a on the negative side.
		ua, va, ub, vb = ub, vb, ua, va
	}
	for math.Abs(ub-ua)+math.Abs(vb-va) > m.opts.Tolerance {
		um, vm := 0.5*(ua+ub), 0.5*(va+vb)
		if m.f(um, vm) >= 0 {
			ub, vb = um, vm
		} else {
			ua, va = um, vm
		}
	}
	u, v := 0.5*(ua+ub), 0.5*(va+vb)
	s := Sample{U: u, V: v, P: m.s.Eval(u, v)}
	m.crossings[e] = s
	return s
}

func (m *marcher) connect(a, b edge) {
	a, b = m.key(a), m.key(b)
	m.crossing(a)
	m.crossing(b)
	for _, e := range [...]edge{a, b} {
		if _, ok := m.adjacent[e]; !ok {
			m.order = append(m.order, e)
		}
	}
	m.adjacent[a] = append(m.adjacent[a], b)
	m.adjacent[b] = append(m.adjacent[b], a)
}

func (m *marcher) march() {
	for i := range m.opts.U {
		for j := range m.opts.V {
			m.cell(i, j)
		}
	}
}

// cell emits the isocline segments inside grid cell (i, j).
func (m *marcher) cell(i, j int) {
	// Corners counter-clockwise from (i, j), and the edge leaving each.
	corners := [4]bool{
		m.positive(i, j),
		m.positive(i+1, j),
		m.positive(i+1, j+1),
		m.positive(i, j+1),
	}
	edges := [4]edge{
		{i, j, true},
		{i + 1, j, false},
		{i, j + 1, true},
		{i, j, false},
	}
	var cut []int
	for k := range 4 {
		if corners[k] != corners[(k+1)%4] {
			cut = append(cut, k)
		}
	}
	switch len(cut) {
	case 2:
		m.connect(edges[cut[0]], edges[cut[1]])
	case 4:
		// Saddle: resolve with the value at the center of the cell.
		ua, va := m.param(i, j)
		ub, vb := m.param(i+1, j+1)
		center := m.f(0.5*(ua+ub), 0.5*(va+vb)) >= 0
		if center == corners[0] {
			m.connect(edges[0], edges[1])
			m.connect(edges[2], edges[3])
		} else {
			m.connect(edges[3], edges[0])
			m.connect(edges[1], edges[2])
		}
	}
}

// chain walks the adjacency graph into polylines, open chains first.
func (m *marcher) chain() []Polyline {
	visited := map[edge]bool{}
	var out []Polyline
	walk := func(start edge) Polyline {
		var pl Polyline
		prev := edge{i: -1}
		cur := start
		for {
			visited[cur] = true
			pl.Samples = append(pl.Samples, m.crossings[cur])
			next := edge{i: -1}
			for _, n := range m.adjacent[cur] {
				if n != prev && !visited[n] {
					next = n
					break
				}
			}
			if next.i < 0 {
				for _, n := range m.adjacent[cur] {
					if n == start && n != prev && len(pl.Samples) > 2 {
						pl.Closed = true
					}
				}
				return pl
			}
			prev, cur = cur, next
		}
	}
	for _, e := range m.order {
		if !visited[e] && len(m.adjacent[e]) == 1 {
			out = append(out, walk(e))
		}
	}
	for _, e := range m.order {
		if !visited[e] {
			out = append(out, walk(e))
		}
	}
	return out
}
