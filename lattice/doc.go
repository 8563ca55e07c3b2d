// Package lattice enumerates the integer points inside a geom.Rect.
//
// What:
//
//   - In(r) returns a Points value describing every (x, y) with
//     r.MinX() ≤ x < r.MaxX() and r.MinY() ≤ y < r.MaxY().
//   - All yields them in row-major order: y ascending outer, x ascending inner.
//   - Backward yields the exact mirror of All.
//   - Points never materializes the sequence; both iterators restart from
//     scratch each time they are ranged over.
//
// The coordinate width is a type parameter, so the same code serves
// int8…int64, uint8…uint64, int and uint rectangles.
//
// Complexity:
//
//   - In, Len, At: O(1).
//   - All, Backward: O(W×H) time, O(1) memory.
//   - Collect: O(W×H) time and memory.
package lattice
