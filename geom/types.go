// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integer is the set of coordinate types accepted by geom and the packages
// built on it.
type Integer = constraints.Integer

// UnknownSpace is the default phantom space for callers that work with a
// single coordinate system.
type UnknownSpace struct{}

// Point is an integer coordinate tagged with the phantom space S.
type Point[S any, N Integer] struct {
	X, Y N
}

// Pt is shorthand for Point[S,N]{X: x, Y: y}.
// With untyped constants N defaults to int: geom.Pt[geom.UnknownSpace](2, 3).
func Pt[S any, N Integer](x, y N) Point[S, N] {
	return Point[S, N]{X: x, Y: y}
}

// String formats p as "(x,y)".
func (p Point[S, N]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height extent tagged with the phantom space S.
type Size[S any, N Integer] struct {
	Width, Height N
}

// Sz is shorthand for Size[S,N]{Width: w, Height: h}.
func Sz[S any, N Integer](w, h N) Size[S, N] {
	return Size[S, N]{Width: w, Height: h}
}

// Empty reports whether the extent covers no lattice points.
func (s Size[S, N]) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns Width*Height as an int, or 0 for an empty size.
func (s Size[S, N]) Area() int {
	if s.Empty() {
		return 0
	}

	return int(s.Width) * int(s.Height)
}

// String formats s as "WxH".
func (s Size[S, N]) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is an axis-aligned, half-open rectangle tagged with the phantom space S.
// The zero Rect sits at the origin with zero size and contains nothing.
type Rect[S any, N Integer] struct {
	Origin Point[S, N]
	Size   Size[S, N]
}

// R builds the rectangle with origin (x, y) and size w×h.
func R[S any, N Integer](x, y, w, h N) Rect[S, N] {
	return Rect[S, N]{Origin: Point[S, N]{X: x, Y: y}, Size: Size[S, N]{Width: w, Height: h}}
}
