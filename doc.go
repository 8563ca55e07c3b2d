// Package lvgrid is a small set of 2D grid containers addressed by integer
// lattice coordinates.
//
// What:
//
//	geom/     Point, Size, Rect generic over a phantom space and integer width
//	lattice/  row-major, double-ended enumeration of the points in a Rect
//	bounds/   Expanding, the running bounding box of observed points
//	dense/    Grid, a fixed-rect grid over a flat slice, with Resize
//	sparse/   Grid and CopyGrid, unbounded map-backed grids with bounds
//
// Every container is a single-owner value: no locks, no goroutines, no I/O.
// Out-of-range lookups return comma-ok results; only programmer errors
// (negative sizes, nil factories) panic.
//
// Quick ASCII example, a CopyGrid with default '.' after three Sets:
//
//	      x=2 x=3
//	y=3    b   c
//	y=4    .   d     Rect() = (2,3) 2x2
//
// The gridctl command (cmd/gridctl) loads YAML scenes into these grids.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
