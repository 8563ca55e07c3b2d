// SPDX-License-Identifier: MIT

package geom

import "fmt"

// MinX returns the inclusive left edge.
func (r Rect[S, N]) MinX() N { return r.Origin.X }

// MinY returns the inclusive top edge.
func (r Rect[S, N]) MinY() N { return r.Origin.Y }

// MaxX returns the exclusive right edge, Origin.X + Width.
func (r Rect[S, N]) MaxX() N { return r.Origin.X + r.Size.Width }

// MaxY returns the exclusive bottom edge, Origin.Y + Height.
func (r Rect[S, N]) MaxY() N { return r.Origin.Y + r.Size.Height }

// Width returns Size.Width.
func (r Rect[S, N]) Width() N { return r.Size.Width }

// Height returns Size.Height.
func (r Rect[S, N]) Height() N { return r.Size.Height }

// Empty reports whether r contains no lattice points.
func (r Rect[S, N]) Empty() bool {
	return r.Size.Empty()
}

// Contains reports whether p lies inside r (half-open on the max edges).
// An empty rectangle contains nothing.
// Complexity: O(1).
func (r Rect[S, N]) Contains(p Point[S, N]) bool {
	return r.Origin.X <= p.X && p.X < r.MaxX() &&
		r.Origin.Y <= p.Y && p.Y < r.MaxY()
}

// ContainsRect reports whether every point of o lies inside r.
// An empty o is contained by any r.
func (r Rect[S, N]) ContainsRect(o Rect[S, N]) bool {
	if o.Empty() {
		return true
	}

	return r.MinX() <= o.MinX() && o.MaxX() <= r.MaxX() &&
		r.MinY() <= o.MinY() && o.MaxY() <= r.MaxY()
}

// Intersects reports whether r and o share at least one lattice point.
func (r Rect[S, N]) Intersects(o Rect[S, N]) bool {
	_, ok := r.Intersection(o)
	return ok
}

// Intersection returns the overlap of r and o.
// ok is false, and the returned Rect is the zero Rect, when the overlap
// contains no lattice points.
// Complexity: O(1).
func (r Rect[S, N]) Intersection(o Rect[S, N]) (Rect[S, N], bool) {
	if r.Empty() || o.Empty() {
		return Rect[S, N]{}, false
	}
	minX, maxX := max(r.MinX(), o.MinX()), min(r.MaxX(), o.MaxX())
	minY, maxY := max(r.MinY(), o.MinY()), min(r.MaxY(), o.MaxY())
	if minX >= maxX || minY >= maxY {
		return Rect[S, N]{}, false
	}

	return R[S](minX, minY, maxX-minX, maxY-minY), true
}

// Union returns the smallest rectangle covering both r and o.
// Empty operands are ignored; the union of two empty rectangles is the zero Rect.
func (r Rect[S, N]) Union(o Rect[S, N]) Rect[S, N] {
	switch {
	case r.Empty() && o.Empty():
		return Rect[S, N]{}
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	minX, maxX := min(r.MinX(), o.MinX()), max(r.MaxX(), o.MaxX())
	minY, maxY := min(r.MinY(), o.MinY()), max(r.MaxY(), o.MaxY())

	return R[S](minX, minY, maxX-minX, maxY-minY)
}

// String formats r as "(x,y) WxH".
func (r Rect[S, N]) String() string {
	return fmt.Sprintf("%v %v", r.Origin, r.Size)
}
