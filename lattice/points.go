// SPDX-License-Identifier: MIT

package lattice

import (
	"iter"

	"github.com/katalvlaran/lvgrid/geom"
)

// Points is the finite, restartable, double-ended sequence of lattice
// points inside a rectangle. It is a plain value and may be copied freely.
type Points[S any, N geom.Integer] struct {
	rect geom.Rect[S, N]
}

// In returns the lattice points of r. Rectangles with a zero or negative
// width or height produce an empty sequence.
func In[S any, N geom.Integer](r geom.Rect[S, N]) Points[S, N] {
	return Points[S, N]{rect: r}
}

// Rect returns the rectangle being enumerated.
func (ps Points[S, N]) Rect() geom.Rect[S, N] {
	return ps.rect
}

// Len returns the number of points, W×H, or 0 for an empty rectangle.
// Complexity: O(1).
func (ps Points[S, N]) Len() int {
	return ps.rect.Size.Area()
}

// At returns the i-th point in row-major order.
// ok is false when i is outside [0, Len()).
// Complexity: O(1).
func (ps Points[S, N]) At(i int) (p geom.Point[S, N], ok bool) {
	if i < 0 || i >= ps.Len() {
		return p, false
	}
	w := int(ps.rect.Size.Width)
	p.X = ps.rect.Origin.X + N(i%w)
	p.Y = ps.rect.Origin.Y + N(i/w)

	return p, true
}

// All yields every point in row-major order.
// Offsets are counted from the origin, so a rectangle whose last point is
// the largest value of N still enumerates even though MaxX/MaxY wrap.
func (ps Points[S, N]) All() iter.Seq[geom.Point[S, N]] {
	r := ps.rect
	return func(yield func(geom.Point[S, N]) bool) {
		if r.Empty() {
			return
		}
		for dy := N(0); dy < r.Size.Height; dy++ {
			for dx := N(0); dx < r.Size.Width; dx++ {
				if !yield(geom.Point[S, N]{X: r.Origin.X + dx, Y: r.Origin.Y + dy}) {
					return
				}
			}
		}
	}
}

// Backward yields every point in reverse row-major order, the mirror of All.
func (ps Points[S, N]) Backward() iter.Seq[geom.Point[S, N]] {
	r := ps.rect
	return func(yield func(geom.Point[S, N]) bool) {
		if r.Empty() {
			return
		}
		for dy := r.Size.Height; dy > 0; dy-- {
			for dx := r.Size.Width; dx > 0; dx-- {
				if !yield(geom.Point[S, N]{X: r.Origin.X + dx - 1, Y: r.Origin.Y + dy - 1}) {
					return
				}
			}
		}
	}
}

// Collect materializes All into a slice of length Len().
func (ps Points[S, N]) Collect() []geom.Point[S, N] {
	out := make([]geom.Point[S, N], 0, ps.Len())
	for p := range ps.All() {
		out = append(out, p)
	}

	return out
}
