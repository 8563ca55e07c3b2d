package lattice_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgrid/geom"
	"github.com/katalvlaran/lvgrid/lattice"
)

// ExamplePoints_All walks a 3×2 rectangle forwards and backwards.
func ExamplePoints_All() {
	ps := lattice.In(geom.R[geom.UnknownSpace](0, 0, 3, 2))

	var fwd, back []string
	for p := range ps.All() {
		fwd = append(fwd, p.String())
	}
	for p := range ps.Backward() {
		back = append(back, p.String())
	}
	fmt.Println(strings.Join(fwd, " "))
	fmt.Println(strings.Join(back, " "))

	// Output:
	// (0,0) (1,0) (2,0) (0,1) (1,1) (2,1)
	// (2,1) (1,1) (0,1) (2,0) (1,0) (0,0)
}
