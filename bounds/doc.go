// Package bounds tracks the smallest rectangle covering every point it has
// been shown.
//
// An Expanding starts empty and contains nothing. Each Observe grows the
// rectangle just enough to include the new point, moving only the edges
// that need to move. It never shrinks.
//
// Complexity:
//
//   - Observe, Contains, Rect: O(1) time and memory.
package bounds
