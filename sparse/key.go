// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"maps"
	"slices"

	"github.com/katalvlaran/lvgrid/geom"
)

// key is the map key for a cell; the phantom space is dropped.
type key struct {
	x, y int
}

func keyOf[S any](p geom.Point[S, int]) key {
	return key{x: p.X, y: p.Y}
}

func pointOf[S any](k key) geom.Point[S, int] {
	return geom.Point[S, int]{X: k.x, Y: k.y}
}

// compareKeys orders keys by x, then y.
func compareKeys(a, b key) int {
	if c := cmp.Compare(a.x, b.x); c != 0 {
		return c
	}

	return cmp.Compare(a.y, b.y)
}

// sortedKeys returns the keys of m in compareKeys order.
func sortedKeys[V any](m map[key]V) []key {
	return slices.SortedFunc(maps.Keys(m), compareKeys)
}
