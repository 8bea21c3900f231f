// Package contour builds offset curves, envelopes and region intersections of
// planar curves.
//
// # Curves
//
// [Curve] describes parametrized planar curves. A curve has a parameter
// [Interval], can be evaluated together with its first two derivatives, and
// can be trimmed to a piece or reversed. Closed curves wrap: trimming from a
// larger to a smaller parameter goes through the seam.
//
// This package includes the following curves:
//   - [Line]
//   - [Arc]
//   - [Circle]
//   - [CubicBez]
//   - [NurbsCurve]
//   - [OffsetCurve]
//   - [Contour], a chain of curves traversed one after another
//
// [Named] attaches a [Name] to any curve. Curves derived from a named curve,
// such as its offsets, its pieces and the joins between them, keep the name.
//
// Curves may implement optional interfaces to provide exact answers in place
// of the numeric defaults: [Nearester] for projection, [Arclener] for length,
// [SignedAreaer] for area and [SelfIntersecter] for self-intersections.
//
// # Offsets
//
// [Equid] offsets a curve to the left, to the right, or to both sides. Lines,
// arcs and circles offset to curves of the same kind. Contours are offset
// segment by segment, and where the offsets of two segments part, the corner
// is filled with an arc or a chamfer. Offsets that collapse or turn inside out
// are degenerate and reported with [ErrDegenerate].
//
// # Envelopes
//
// [BuildEnvelopeContour] traces the closed boundary around a point formed by
// a set of curves. It starts on the nearest curve ([FindNearestCurve]), begins
// with the piece between the crossings surrounding the projection of the point
// ([BeginEnvelopeContour]), and at every crossing turns onto the curve that
// keeps the point closest on its left. Crossings are found with
// [IntersectWithAll], split into the two sides of a parameter with
// [SortCrossPoints] and deduplicated with [RemoveEquPoints].
//
// # Regions
//
// [BooleanIntLoops] intersects the regions bounded by two closed loops, where
// each region may be the inside or the outside of its loop.
//
// # Tolerances
//
// All algorithms take a [Tolerance]. Zero fields fall back to the values of
// [DefaultTolerance].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [The NURBS Book] by Piegl and Tiller
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Parallel curves of cubic Béziers] by Raph Levien
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Parallel curves of cubic Béziers]: https://raphlinus.github.io/curves/2022/09/09/parallel-beziers.html
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package contour
