// Package dense provides Grid, a fixed-rectangle 2D container backed by a
// flat row-major slice.
//
// What:
//
//   - Every cell inside Rect() always holds a value; there is no "unset"
//     state. New and Resize fill cells by calling a factory once per cell.
//   - Lookups outside Rect() are a normal outcome reported through the
//     comma-ok result, never an error. Set outside Rect() is a no-op.
//   - Resize swaps a fresh backing slice in, moving the values of the
//     old∩new overlap across and default-filling the rest.
//
// Storage:
//
//	index(x, y) = (y - Origin.Y) * Width + (x - Origin.X)
//
// Errors:
//
//   - ErrNegativeSize: New or Resize was given a negative width or height.
//     This is a programming error and panics.
//   - ErrNilFactory: New or Resize was given a nil factory. Panics.
//
// Complexity:
//
//   - Get, GetMutable, Set, Contains: O(1).
//   - New, Resize, Clone: O(W×H) time and memory.
//   - All, Backward: O(W×H) time, O(1) memory.
//
// A Grid is owned by one goroutine at a time; callers sharing one must
// synchronize externally.
package dense
