// Package sparse provides unbounded 2D grids backed by a map.
//
// What:
//
//   - Grid[S,T] stores values of any type. Get reports absence with a
//     comma-ok result; GetOrInsert creates missing cells lazily through a
//     default factory; GetMutable hands out pointers to stored cells.
//   - CopyGrid[S,T] is meant for small value types. Get always returns a
//     value: the stored one, or a single default fixed at construction.
//
// Bounds:
//
// Both grids track the bounding rectangle of every cell inserted through
// Set or GetOrInsert with bounds.Expanding. Contains answers "is p inside
// that rectangle", not "does p have a stored value": a point between two
// set cells reports Contains=true while Get reports it absent. Reads never
// change the bounds, and neither does Delete.
//
// Iteration order:
//
//   - Grid.All and CopyGrid.Populated visit stored cells by ascending
//     (x, y), x first.
//   - CopyGrid.All and CopyGrid.Backward visit every point of Rect() in
//     row-major order, filling untouched cells with the default.
//
// Complexity:
//
//   - Get, GetMutable, GetOrInsert, Set, Delete, Contains: O(1) amortized.
//   - Grid.All, CopyGrid.Populated: O(n log n) for n stored cells.
//   - CopyGrid.All, CopyGrid.Backward: O(W×H) over Rect().
package sparse
