package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/geom"
	"github.com/katalvlaran/lvgrid/sparse"
)

// ExampleCopyGrid shows the bounding rect growing with each Set and the
// dense walk filling untouched cells with the default.
func ExampleCopyGrid() {
	g := sparse.NewCopy[geom.UnknownSpace]('.')
	g.Set(geom.Pt[geom.UnknownSpace](2, 3), 'b')
	g.Set(geom.Pt[geom.UnknownSpace](3, 3), 'c')
	g.Set(geom.Pt[geom.UnknownSpace](3, 4), 'd')

	fmt.Println("rect:", g.Rect())
	for p, v := range g.All() {
		fmt.Print(string(v))
		if p.X == g.Rect().MaxX()-1 {
			fmt.Println()
		}
	}

	// Output:
	// rect: (2,3) 2x2
	// bc
	// .d
}

// ExampleGrid_GetOrInsert groups words by cell, creating buckets lazily.
func ExampleGrid_GetOrInsert() {
	g := sparse.New[geom.UnknownSpace, []string]()
	words := []struct {
		x, y int
		w    string
	}{{0, 0, "alpha"}, {1, 0, "beta"}, {0, 0, "gamma"}}
	for _, e := range words {
		bucket := g.GetOrInsert(geom.Pt[geom.UnknownSpace](e.x, e.y))
		*bucket = append(*bucket, e.w)
	}
	for p, v := range g.All() {
		fmt.Println(p, v)
	}
	fmt.Println("contains (1,0):", g.Contains(geom.Pt[geom.UnknownSpace](1, 0)))

	// Output:
	// (0,0) [alpha gamma]
	// (1,0) [beta]
	// contains (1,0): true
}
