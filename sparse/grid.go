// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgrid/bounds"
	"github.com/katalvlaran/lvgrid/geom"
)

// Grid is an unbounded grid holding values of any type.
// Cells are stored behind pointers so GetMutable and GetOrInsert can hand
// out stable references. The zero value is an empty grid whose lazily
// created cells hold the zero value of T.
type Grid[S any, T any] struct {
	bounds  bounds.Expanding[S, int]
	data    map[key]*T
	factory func() T // nil means the zero value of T
}

// New returns an empty grid whose lazily created cells hold the zero value of T.
func New[S any, T any]() *Grid[S, T] {
	return &Grid[S, T]{data: make(map[key]*T)}
}

// NewFunc returns an empty grid whose lazily created cells are produced by
// factory, called once per created cell.
// Panics with ErrNilFactory if factory is nil.
func NewFunc[S any, T any](factory func() T) *Grid[S, T] {
	if factory == nil {
		panic(fmt.Errorf("sparse.NewFunc: %w", ErrNilFactory))
	}

	return &Grid[S, T]{data: make(map[key]*T), factory: factory}
}

func (g *Grid[S, T]) manufacture() T {
	if g.factory == nil {
		var zero T
		return zero
	}

	return g.factory()
}

// Contains reports whether p lies inside the bounding rectangle of every
// cell ever inserted. It does not check for a stored value at p; use Get
// for that.
// Complexity: O(1).
func (g *Grid[S, T]) Contains(p geom.Point[S, int]) bool {
	return g.bounds.Contains(p)
}

// Rect returns the bounding rectangle of every cell ever inserted, or the
// zero Rect if none has been.
func (g *Grid[S, T]) Rect() geom.Rect[S, int] {
	return g.bounds.Rect()
}

// Size returns Rect().Size.
func (g *Grid[S, T]) Size() geom.Size[S, int] {
	return g.bounds.Rect().Size
}

// Len returns the number of stored cells.
func (g *Grid[S, T]) Len() int {
	return len(g.data)
}

// Get returns the value stored at p, or ok=false if p has no entry.
// It never inserts and never touches the bounds.
// Complexity: O(1).
func (g *Grid[S, T]) Get(p geom.Point[S, int]) (v T, ok bool) {
	cell, ok := g.data[keyOf(p)]
	if !ok {
		return v, false
	}

	return *cell, true
}

// GetMutable returns a pointer to the value stored at p, or ok=false if p
// has no entry. It never inserts and never touches the bounds.
// Complexity: O(1).
func (g *Grid[S, T]) GetMutable(p geom.Point[S, int]) (*T, bool) {
	cell, ok := g.data[keyOf(p)]
	return cell, ok
}

// GetOrInsert returns a pointer to the value at p. A missing entry is
// created from the default factory and p is added to the bounds; an
// existing entry is returned as is.
// Complexity: O(1) amortized.
func (g *Grid[S, T]) GetOrInsert(p geom.Point[S, int]) *T {
	k := keyOf(p)
	if cell, ok := g.data[k]; ok {
		return cell
	}
	if g.data == nil {
		g.data = make(map[key]*T)
	}
	cell := new(T)
	*cell = g.manufacture()
	g.data[k] = cell
	g.bounds.Observe(p)

	return cell
}

// Set stores v at p and adds p to the bounds. An existing entry is
// overwritten in place, so pointers from GetMutable observe the new value.
// Complexity: O(1) amortized.
func (g *Grid[S, T]) Set(p geom.Point[S, int], v T) {
	g.bounds.Observe(p)
	k := keyOf(p)
	if cell, ok := g.data[k]; ok {
		*cell = v
		return
	}
	if g.data == nil {
		g.data = make(map[key]*T)
	}
	g.data[k] = &v
}

// Delete removes the entry at p and reports whether one existed.
// The bounds keep covering p.
func (g *Grid[S, T]) Delete(p geom.Point[S, int]) bool {
	k := keyOf(p)
	if _, ok := g.data[k]; !ok {
		return false
	}
	delete(g.data, k)

	return true
}

// All yields every stored (point, value) pair ordered by x, then y.
// Keys are snapshotted when iteration starts; entries deleted during the
// walk are skipped.
func (g *Grid[S, T]) All() iter.Seq2[geom.Point[S, int], T] {
	return func(yield func(geom.Point[S, int], T) bool) {
		for _, k := range sortedKeys(g.data) {
			cell, ok := g.data[k]
			if !ok {
				continue
			}
			if !yield(pointOf[S](k), *cell) {
				return
			}
		}
	}
}

// Clone returns a grid with the same bounds, factory and stored values.
// Each value is copied into a new cell with plain assignment.
func (g *Grid[S, T]) Clone() *Grid[S, T] {
	data := make(map[key]*T, len(g.data))
	for k, cell := range g.data {
		v := *cell
		data[k] = &v
	}

	return &Grid[S, T]{bounds: g.bounds, data: data, factory: g.factory}
}
