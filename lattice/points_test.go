package lattice_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/geom"
	"github.com/katalvlaran/lvgrid/lattice"
)

type space = geom.UnknownSpace

func pt(x, y int) geom.Point[space, int] { return geom.Pt[space](x, y) }

//----------------------------------------------------------------------------//
// Ordering
//----------------------------------------------------------------------------//

// TestAll_RowMajor checks y-outer, x-inner ordering on a 3×2 rect.
func TestAll_RowMajor(t *testing.T) {
	ps := lattice.In(geom.R[space](1, -1, 3, 2))
	want := []geom.Point[space, int]{
		pt(1, -1), pt(2, -1), pt(3, -1),
		pt(1, 0), pt(2, 0), pt(3, 0),
	}
	if diff := cmp.Diff(want, ps.Collect()); diff != "" {
		t.Fatalf("All() mismatch (-want +got):\n%s", diff)
	}
}

// TestBackward_MirrorsAll verifies Backward yields All reversed.
func TestBackward_MirrorsAll(t *testing.T) {
	ps := lattice.In(geom.R[space](-2, 5, 4, 3))
	fwd := slices.Collect(ps.All())
	back := slices.Collect(ps.Backward())
	slices.Reverse(back)
	if diff := cmp.Diff(fwd, back); diff != "" {
		t.Fatalf("reverse(Backward()) != All() (-all +reversed):\n%s", diff)
	}
}

// TestAll_Restartable ranges twice over the same value.
func TestAll_Restartable(t *testing.T) {
	ps := lattice.In(geom.R[space](0, 0, 2, 2))
	first := slices.Collect(ps.All())
	second := slices.Collect(ps.All())
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

// TestAll_EarlyBreak stops the iterator after the first row.
func TestAll_EarlyBreak(t *testing.T) {
	ps := lattice.In(geom.R[space](0, 0, 3, 3))
	var got []geom.Point[space, int]
	for p := range ps.All() {
		if p.Y > 0 {
			break
		}
		got = append(got, p)
	}
	assert.Equal(t, []geom.Point[space, int]{pt(0, 0), pt(1, 0), pt(2, 0)}, got)
}

//----------------------------------------------------------------------------//
// Counting and bounds
//----------------------------------------------------------------------------//

// TestAll_CountUniqueInBounds checks W×H unique, in-bounds points for a grid of sizes.
func TestAll_CountUniqueInBounds(t *testing.T) {
	for w := 0; w <= 4; w++ {
		for h := 0; h <= 4; h++ {
			r := geom.R[space](-1, 2, w, h)
			ps := lattice.In(r)
			seen := make(map[geom.Point[space, int]]bool)
			for p := range ps.All() {
				require.Truef(t, r.Contains(p), "point %v outside %v", p, r)
				require.Falsef(t, seen[p], "duplicate point %v", p)
				seen[p] = true
			}
			require.Equal(t, w*h, len(seen))
			require.Equal(t, w*h, ps.Len())
		}
	}
}

// TestEmpty covers zero and negative extents.
func TestEmpty(t *testing.T) {
	for _, r := range []geom.Rect[space, int]{
		geom.R[space](0, 0, 0, 3),
		geom.R[space](0, 0, 3, 0),
		geom.R[space](0, 0, -1, 3),
	} {
		ps := lattice.In(r)
		assert.Empty(t, slices.Collect(ps.All()))
		assert.Empty(t, slices.Collect(ps.Backward()))
		assert.Equal(t, 0, ps.Len())
		_, ok := ps.At(0)
		assert.False(t, ok)
	}
}

// TestAt matches At(i) against the i-th element of All.
func TestAt(t *testing.T) {
	ps := lattice.In(geom.R[space](3, 4, 5, 2))
	i := 0
	for p := range ps.All() {
		got, ok := ps.At(i)
		require.True(t, ok)
		require.Equal(t, p, got)
		i++
	}
	_, ok := ps.At(i)
	assert.False(t, ok)
	_, ok = ps.At(-1)
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Integer widths
//----------------------------------------------------------------------------//

func checkWidth[N geom.Integer](t *testing.T, x, y N) {
	t.Helper()
	ps := lattice.In(geom.R[space](x, y, 2, 2))
	want := []geom.Point[space, N]{
		geom.Pt[space](x, y), geom.Pt[space](x+1, y),
		geom.Pt[space](x, y+1), geom.Pt[space](x+1, y+1),
	}
	assert.Equal(t, want, ps.Collect())
}

// TestWidths instantiates the sequence for every supported integer type.
func TestWidths(t *testing.T) {
	checkWidth[int8](t, -5, 7)
	checkWidth[int16](t, -300, 2)
	checkWidth[int32](t, 1<<20, -1)
	checkWidth[int64](t, -1<<40, 1<<40)
	checkWidth[int](t, -1, -1)
	checkWidth[uint8](t, 10, 0)
	checkWidth[uint16](t, 60000, 1)
	checkWidth[uint32](t, 1<<31, 3)
	checkWidth[uint64](t, 1<<63, 0)
	checkWidth[uint](t, 0, 0)
}

// TestTopOfRange enumerates a rect whose exclusive edge wraps the type.
func TestTopOfRange(t *testing.T) {
	ps := lattice.In(geom.R[space, uint8](254, 255, 2, 1))
	assert.Equal(t, []geom.Point[space, uint8]{
		geom.Pt[space, uint8](254, 255),
		geom.Pt[space, uint8](255, 255),
	}, ps.Collect())
	assert.Equal(t, []geom.Point[space, uint8]{
		geom.Pt[space, uint8](255, 255),
		geom.Pt[space, uint8](254, 255),
	}, slices.Collect(ps.Backward()))
}
