package dense_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/dense"
	"github.com/katalvlaran/lvgrid/geom"
)

// ExampleGrid_Resize grows a 2×2 grid to the right and down.
// The original four cells keep their values; new cells take the default.
func ExampleGrid_Resize() {
	g := dense.New(geom.R[geom.UnknownSpace](0, 0, 2, 2), func() rune { return '.' })
	g.Set(geom.Pt[geom.UnknownSpace](0, 0), 'a')
	g.Set(geom.Pt[geom.UnknownSpace](1, 1), 'b')

	g.Resize(geom.R[geom.UnknownSpace](0, 0, 3, 3), func() rune { return '#' })
	for p, v := range g.All() {
		fmt.Print(string(v))
		if p.X == g.Rect().MaxX()-1 {
			fmt.Println()
		}
	}

	// Output:
	// a.#
	// .b#
	// ###
}
