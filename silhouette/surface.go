// Package silhouette computes silhouette and isocline curves of parametric
// surfaces.
//
// An isocline of a surface is the locus of points where the surface normal
// makes a fixed angle with the view direction. The silhouette is the
// isocline at a right angle: the curve along which the surface turns away
// from the viewer.
package silhouette

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is a parametric surface patch.
type Surface interface {
	// Domain returns the parameter rectangle [u0, u1] × [v0, v1].
	Domain() (u0, u1, v0, v1 float64)
	// Eval evaluates the surface.
	Eval(u, v float64) r3.Vec
	// Normal returns the unit outward normal.
	Normal(u, v float64) r3.Vec
}

// Periodic describes surfaces that close up on themselves in u or v.
type Periodic interface {
	Periodic() (u, v bool)
}

func periodic(s Surface) (bool, bool) {
	if p, ok := s.(Periodic); ok {
		return p.Periodic()
	}
	return false, false
}

// Sphere is parametrized by longitude u ∈ [0, 2π] and latitude
// v ∈ [−π/2, π/2].
type Sphere struct {
	Center r3.Vec
	Radius float64
}

var _ Surface = Sphere{}
var _ Periodic = Sphere{}

func (s Sphere) Domain() (u0, u1, v0, v1 float64) { return 0, 2 * math.Pi, -math.Pi / 2, math.Pi / 2 }
func (s Sphere) Periodic() (u, v bool)            { return true, false }

func (s Sphere) Normal(u, v float64) r3.Vec {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	return r3.Vec{X: cv * cu, Y: cv * su, Z: sv}
}

func (s Sphere) Eval(u, v float64) r3.Vec {
	return r3.Add(s.Center, r3.Scale(s.Radius, s.Normal(u, v)))
}

// Cylinder has its axis along z, starting at Origin. It is parametrized by
// angle u ∈ [0, 2π] and height v ∈ [0, Height].
type Cylinder struct {
	Origin r3.Vec
	Radius float64
	Height float64
}

var _ Surface = Cylinder{}
var _ Periodic = Cylinder{}

func (c Cylinder) Domain() (u0, u1, v0, v1 float64) { return 0, 2 * math.Pi, 0, c.Height }
func (c Cylinder) Periodic() (u, v bool)            { return true, false }

func (c Cylinder) Normal(u, v float64) r3.Vec {
	su, cu := math.Sincos(u)
	return r3.Vec{X: cu, Y: su}
}

func (c Cylinder) Eval(u, v float64) r3.Vec {
	su, cu := math.Sincos(u)
	return r3.Add(c.Origin, r3.Vec{X: c.Radius * cu, Y: c.Radius * su, Z: v})
}

// Torus has its axis along z. Major is the distance from the center to the
// center of the tube, Minor the radius of the tube. u runs around the axis,
// v around the tube.
type Torus struct {
	Center r3.Vec
	Major  float64
	Minor  float64
}

var _ Surface = Torus{}
var _ Periodic = Torus{}

func (t Torus) Domain() (u0, u1, v0, v1 float64) { return 0, 2 * math.Pi, 0, 2 * math.Pi }
func (t Torus) Periodic() (u, v bool)            { return true, true }

func (t Torus) Normal(u, v float64) r3.Vec {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	return r3.Vec{X: cv * cu, Y: cv * su, Z: sv}
}

func (t Torus) Eval(u, v float64) r3.Vec {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	r := t.Major + t.Minor*cv
	return r3.Add(t.Center, r3.Vec{X: r * cu, Y: r * su, Z: t.Minor * sv})
}

// View is a parallel projection along a direction, or a perspective
// projection from an eye point.
type View struct {
	dir         r3.Vec
	eye         r3.Vec
	perspective bool
}

// Parallel returns the view looking along dir.
func Parallel(dir r3.Vec) View {
	return View{dir: r3.Unit(dir)}
}

// Perspective returns the view from the eye point.
func Perspective(eye r3.Vec) View {
	return View{eye: eye, perspective: true}
}

// Direction returns the unit viewing direction towards p.
func (v View) Direction(p r3.Vec) r3.Vec {
	if v.perspective {
		return r3.Unit(r3.Sub(p, v.eye))
	}
	return v.dir
}
