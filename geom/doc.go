// Package geom provides the integer 2D primitives shared by every lvgrid
// container: Point, Size and Rect.
//
// What:
//
//   - Point[S,N] is a lattice coordinate (X, Y).
//   - Size[S,N] is a (Width, Height) extent.
//   - Rect[S,N] is an Origin plus a Size, treated as half-open: it contains
//     (x, y) iff Origin.X ≤ x < Origin.X+Width and Origin.Y ≤ y < Origin.Y+Height.
//
// Type parameters:
//
//   - S is a phantom coordinate space. It appears in no field, so it costs
//     nothing at runtime, but Point[World,int] and Point[Screen,int] are
//     different types and cannot be mixed. Use UnknownSpace when a single
//     space is enough.
//   - N is the integer width of each coordinate (any signed or unsigned
//     integer type, see golang.org/x/exp/constraints.Integer).
//
// Complexity:
//
//   - Every operation is O(1) time and memory.
package geom
