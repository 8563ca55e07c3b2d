// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgrid/geom"
	"github.com/katalvlaran/lvgrid/lattice"
)

// Grid stores one T per lattice point of a fixed rectangle.
// data holds Width×Height values in row-major order.
type Grid[S any, T any] struct {
	rect geom.Rect[S, int]
	data []T
}

// New allocates a grid over r and fills every cell with its own result of
// factory (called once per cell, in row-major order).
// Panics with ErrNegativeSize if r has a negative width or height, and
// with ErrNilFactory if factory is nil.
// Complexity: O(W×H) time and memory.
func New[S any, T any](r geom.Rect[S, int], factory func() T) *Grid[S, T] {
	validate("New", r, factory)

	n := r.Size.Area()
	data := make([]T, n)
	for i := range data {
		data[i] = factory()
	}

	return &Grid[S, T]{rect: r, data: data}
}

// validate panics on the preconditions shared by New and Resize.
func validate[S any, T any](method string, r geom.Rect[S, int], factory func() T) {
	if r.Size.Width < 0 || r.Size.Height < 0 {
		panic(fmt.Errorf("dense.%s(%v): %w", method, r, ErrNegativeSize))
	}
	if factory == nil {
		panic(fmt.Errorf("dense.%s: %w", method, ErrNilFactory))
	}
}

// Rect returns the grid's extent.
func (g *Grid[S, T]) Rect() geom.Rect[S, int] {
	return g.rect
}

// Size returns the grid's width and height.
func (g *Grid[S, T]) Size() geom.Size[S, int] {
	return g.rect.Size
}

// Len returns the number of cells, Width×Height.
func (g *Grid[S, T]) Len() int {
	return len(g.data)
}

// Contains reports whether p lies inside Rect().
// Complexity: O(1).
func (g *Grid[S, T]) Contains(p geom.Point[S, int]) bool {
	return g.rect.Contains(p)
}

// index maps p to its flat offset. Callers check Contains first.
func (g *Grid[S, T]) index(p geom.Point[S, int]) int {
	return (p.Y-g.rect.Origin.Y)*g.rect.Size.Width + (p.X - g.rect.Origin.X)
}

// Get returns the value at p, or ok=false when p is outside Rect().
// Complexity: O(1).
func (g *Grid[S, T]) Get(p geom.Point[S, int]) (v T, ok bool) {
	if !g.rect.Contains(p) {
		return v, false
	}

	return g.data[g.index(p)], true
}

// GetMutable returns a pointer to the cell at p, or ok=false when p is
// outside Rect(). The pointer stays valid until the next Resize.
// Complexity: O(1).
func (g *Grid[S, T]) GetMutable(p geom.Point[S, int]) (*T, bool) {
	if !g.rect.Contains(p) {
		return nil, false
	}

	return &g.data[g.index(p)], true
}

// Set stores v at p. Points outside Rect() are ignored; the grid never grows.
// Complexity: O(1).
func (g *Grid[S, T]) Set(p geom.Point[S, int], v T) {
	if cell, ok := g.GetMutable(p); ok {
		*cell = v
	}
}

// Resize moves the grid onto r.
// Stage 1: allocate a fresh grid over r, one factory call per cell.
// Stage 2: swap the values of every point in old∩new into the fresh grid.
// Stage 3: replace the backing storage; the old slice is dropped.
// Pointers from GetMutable taken before Resize no longer alias the grid.
// Panics like New.
// Complexity: O(W×H) of the new rect plus O(|old∩new|).
func (g *Grid[S, T]) Resize(r geom.Rect[S, int], factory func() T) {
	validate("Resize", r, factory)
	next := New(r, factory)

	if overlap, ok := r.Intersection(g.rect); ok {
		for p := range lattice.In(overlap).All() {
			i, j := g.index(p), next.index(p)
			next.data[j], g.data[i] = g.data[i], next.data[j]
		}
	}

	g.rect, g.data = next.rect, next.data
}

// All yields (point, value) for every cell in row-major order.
func (g *Grid[S, T]) All() iter.Seq2[geom.Point[S, int], T] {
	return func(yield func(geom.Point[S, int], T) bool) {
		i := 0
		for p := range lattice.In(g.rect).All() {
			if !yield(p, g.data[i]) {
				return
			}
			i++
		}
	}
}

// Backward yields (point, value) for every cell in reverse row-major order.
func (g *Grid[S, T]) Backward() iter.Seq2[geom.Point[S, int], T] {
	return func(yield func(geom.Point[S, int], T) bool) {
		i := len(g.data) - 1
		for p := range lattice.In(g.rect).Backward() {
			if !yield(p, g.data[i]) {
				return
			}
			i--
		}
	}
}

// Clone returns a grid with the same rect and a copy of the backing slice.
// Values are copied with plain assignment; pointer-like T values are shared.
// Complexity: O(W×H).
func (g *Grid[S, T]) Clone() *Grid[S, T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[S, T]{rect: g.rect, data: data}
}
