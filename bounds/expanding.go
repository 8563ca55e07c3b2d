// SPDX-License-Identifier: MIT

package bounds

import "github.com/katalvlaran/lvgrid/geom"

// Expanding is the running bounding box of observed points.
// The zero value is ready to use and has observed nothing.
type Expanding[S any, N geom.Integer] struct {
	rect geom.Rect[S, N]
	seen bool // false until the first Observe
}

// Observed reports whether at least one point has been observed.
func (b *Expanding[S, N]) Observed() bool {
	return b.seen
}

// Contains reports whether p lies inside the current bounding box.
// It is always false before the first Observe.
// Complexity: O(1).
func (b *Expanding[S, N]) Contains(p geom.Point[S, N]) bool {
	return b.seen && b.rect.Contains(p)
}

// Observe grows the bounding box to cover p.
// The first call produces the unit rectangle at p. Later calls extend the
// left/top edge down to p, or the right/bottom (exclusive) edge out to p+1,
// per axis; a point already inside leaves the box untouched.
// Complexity: O(1).
func (b *Expanding[S, N]) Observe(p geom.Point[S, N]) {
	if !b.seen {
		b.rect = geom.R[S](p.X, p.Y, 1, 1)
		b.seen = true
		return
	}
	if b.rect.Contains(p) {
		return
	}

	r := b.rect
	// x: at most one of the two branches applies to a well-formed rect.
	if p.X < r.MinX() {
		r = geom.R[S](p.X, r.MinY(), r.MaxX()-p.X, r.Height())
	} else if r.MaxX() <= p.X {
		r = geom.R[S](r.MinX(), r.MinY(), p.X-r.MinX()+1, r.Height())
	}
	// y: same rule on the vertical edges.
	if p.Y < r.MinY() {
		r = geom.R[S](r.MinX(), p.Y, r.Width(), r.MaxY()-p.Y)
	} else if r.MaxY() <= p.Y {
		r = geom.R[S](r.MinX(), r.MinY(), r.Width(), p.Y-r.MinY()+1)
	}
	b.rect = r
}

// Rect returns the bounding box, or the zero Rect (origin, size 0×0) when
// nothing has been observed.
// Complexity: O(1).
func (b *Expanding[S, N]) Rect() geom.Rect[S, N] {
	if !b.seen {
		return geom.Rect[S, N]{}
	}

	return b.rect
}
