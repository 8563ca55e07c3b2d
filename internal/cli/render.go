package cli

import (
	"bufio"
	"io"
	"iter"

	"github.com/katalvlaran/lvgrid/geom"
)

// render writes one line per row of r. cells must yield the points of r in
// row-major order, as CopyGrid.All and dense.Grid.All do.
func render(w io.Writer, r geom.Rect[Scene, int], cells iter.Seq2[geom.Point[Scene, int], rune]) error {
	bw := bufio.NewWriter(w)
	for p, v := range cells {
		bw.WriteRune(v)
		if p.X == r.MaxX()-1 {
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
