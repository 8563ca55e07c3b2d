// SPDX-License-Identifier: MIT

package sparse

import (
	"iter"
	"maps"

	"github.com/katalvlaran/lvgrid/bounds"
	"github.com/katalvlaran/lvgrid/geom"
	"github.com/katalvlaran/lvgrid/lattice"
)

// CopyGrid is an unbounded grid for small values that are cheap to copy.
// Get never reports absence: cells that were never set read as the grid's
// default. The zero value is an empty grid whose default is the zero value
// of T.
type CopyGrid[S any, T any] struct {
	bounds bounds.Expanding[S, int]
	data   map[key]T
	def    T
}

// NewCopy returns an empty grid whose unset cells read as def.
func NewCopy[S any, T any](def T) *CopyGrid[S, T] {
	return &CopyGrid[S, T]{data: make(map[key]T), def: def}
}

// Default returns the value reported for unset cells.
func (g *CopyGrid[S, T]) Default() T {
	return g.def
}

// Contains reports whether p lies inside the bounding rectangle of every
// cell ever set.
// Complexity: O(1).
func (g *CopyGrid[S, T]) Contains(p geom.Point[S, int]) bool {
	return g.bounds.Contains(p)
}

// Rect returns the bounding rectangle of every cell ever set, or the zero
// Rect if none has been.
func (g *CopyGrid[S, T]) Rect() geom.Rect[S, int] {
	return g.bounds.Rect()
}

// Size returns Rect().Size.
func (g *CopyGrid[S, T]) Size() geom.Size[S, int] {
	return g.bounds.Rect().Size
}

// Len returns the number of set cells.
func (g *CopyGrid[S, T]) Len() int {
	return len(g.data)
}

// Get returns the value set at p, or Default() if p was never set.
// Complexity: O(1).
func (g *CopyGrid[S, T]) Get(p geom.Point[S, int]) T {
	if v, ok := g.data[keyOf(p)]; ok {
		return v
	}

	return g.def
}

// Set stores v at p and adds p to the bounds.
// Complexity: O(1) amortized.
func (g *CopyGrid[S, T]) Set(p geom.Point[S, int], v T) {
	g.bounds.Observe(p)
	if g.data == nil {
		g.data = make(map[key]T)
	}
	g.data[keyOf(p)] = v
}

// All yields (point, Get(point)) for every point of Rect() in row-major
// order, so unset cells inside the bounds appear with the default.
func (g *CopyGrid[S, T]) All() iter.Seq2[geom.Point[S, int], T] {
	return g.walk(lattice.In(g.Rect()).All())
}

// Backward is All in reverse order.
func (g *CopyGrid[S, T]) Backward() iter.Seq2[geom.Point[S, int], T] {
	return g.walk(lattice.In(g.Rect()).Backward())
}

func (g *CopyGrid[S, T]) walk(points iter.Seq[geom.Point[S, int]]) iter.Seq2[geom.Point[S, int], T] {
	return func(yield func(geom.Point[S, int], T) bool) {
		for p := range points {
			if !yield(p, g.Get(p)) {
				return
			}
		}
	}
}

// Populated yields only the cells that were set, ordered by x, then y.
// This is not the row-major order of All; use All when one consistent
// order across both views matters.
func (g *CopyGrid[S, T]) Populated() iter.Seq2[geom.Point[S, int], T] {
	return func(yield func(geom.Point[S, int], T) bool) {
		for _, k := range sortedKeys(g.data) {
			v, ok := g.data[k]
			if !ok {
				continue
			}
			if !yield(pointOf[S](k), v) {
				return
			}
		}
	}
}

// Clone returns a grid with the same default, bounds and set cells.
func (g *CopyGrid[S, T]) Clone() *CopyGrid[S, T] {
	return &CopyGrid[S, T]{bounds: g.bounds, data: maps.Clone(g.data), def: g.def}
}
