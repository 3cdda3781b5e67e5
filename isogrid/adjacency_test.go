package isogrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isopath/isogrid"
)

const none = isogrid.None

// sizes covers degenerate strips, squares and the fixed-width reference map.
var sizes = [][2]int{{1, 1}, {1, 4}, {4, 1}, {2, 2}, {3, 5}, {4, 4}, {7, 3}, {14, 20}}

// TestAdjacentCells_TwoByTwo pins adjacency on the 8-cell grid.
func TestAdjacentCells_TwoByTwo(t *testing.T) {
	g, err := isogrid.NewGrid(2, 2)
	require.NoError(t, err)

	want := map[int][4]int{
		0: {none, none, 3, none},
		3: {6, none, 4, 0},
		4: {none, 1, 7, 3},
		7: {none, none, none, 4},
	}
	for id, nb := range want {
		got, err := g.AdjacentCells(id)
		require.NoError(t, err)
		assert.Equal(t, nb, got, "id=%d", id)
	}
}

// TestAdjacentCells_DeltaTable checks every emitted neighbor against the
// per-parity id delta table.
func TestAdjacentCells_DeltaTable(t *testing.T) {
	const rows, cols = 5, 4
	g, err := isogrid.NewGrid(rows, cols)
	require.NoError(t, err)

	deltas := map[isogrid.Parity][4]int{
		isogrid.Even: {2*rows - 1, -(2*rows - 1), rows + 1, -(rows - 1)},
		isogrid.Odd:  {2*rows - 1, -(2*rows - 1), rows - 1, -(rows + 1)},
	}
	seen := 0
	for id := 0; id < g.Len(); id++ {
		info, err := g.CellInfo(id)
		require.NoError(t, err)
		nb, err := g.AdjacentCells(id)
		require.NoError(t, err)
		for slot, n := range nb {
			if n == none {
				continue
			}
			seen++
			assert.Equal(t, deltas[info.Parity][slot], n-id, "id=%d dir=%s", id, isogrid.Directions[slot])
		}
	}
	assert.Positive(t, seen)
}

// TestAdjacentCells_Symmetry: if b is a's neighbor in direction d then a is
// b's neighbor in the opposite direction.
func TestAdjacentCells_Symmetry(t *testing.T) {
	for _, dim := range sizes {
		g, err := isogrid.NewGrid(dim[0], dim[1])
		require.NoError(t, err)
		for a := 0; a < g.Len(); a++ {
			nb, err := g.AdjacentCells(a)
			require.NoError(t, err)
			for _, d := range isogrid.Directions {
				b := nb[d]
				if b == none {
					continue
				}
				back, err := g.AdjacentCells(b)
				require.NoError(t, err)
				assert.Equal(t, a, back[d.Opposite()], "rows=%d cols=%d a=%d b=%d dir=%s", dim[0], dim[1], a, b, d)
			}
		}
	}
}

// TestNeighbors_RangeClosure: no neighbor id ever leaves [0, 2·rows·cols).
func TestNeighbors_RangeClosure(t *testing.T) {
	for _, dim := range sizes {
		g, err := isogrid.NewGrid(dim[0], dim[1])
		require.NoError(t, err)
		for id := 0; id < g.Len(); id++ {
			nb, err := g.AdjacentCells(id)
			require.NoError(t, err)
			diag, err := g.DiagonalCells(id)
			require.NoError(t, err)
			for _, n := range append(nb[:], diag[:]...) {
				if n != none {
					assert.True(t, g.Contains(n), "rows=%d cols=%d id=%d neighbor=%d", dim[0], dim[1], id, n)
				}
			}
		}
	}
}

// TestAdjacentCells_NoBlockWrap checks that steps across the X boundary are
// dropped rather than wrapped into the next block.
func TestAdjacentCells_NoBlockWrap(t *testing.T) {
	const rows, cols = 3, 3
	g, err := isogrid.NewGrid(rows, cols)
	require.NoError(t, err)

	// x == 0 has no right neighbor; x == rows-1 has no left neighbor.
	for id := 0; id < g.Len(); id++ {
		info, _ := g.CellInfo(id)
		nb, _ := g.AdjacentCells(id)
		if info.X == 0 {
			assert.Equal(t, none, nb[isogrid.Right], "id=%d", id)
		}
		if info.X == rows-1 {
			assert.Equal(t, none, nb[isogrid.Left], "id=%d", id)
		}
		for _, n := range nb {
			if n == none {
				continue
			}
			ni, _ := g.CellInfo(n)
			assert.LessOrEqual(t, abs(ni.X-info.X), 1, "id=%d neighbor=%d", id, n)
		}
	}
}

// TestDiagonalCells covers fixed values and symmetry of id-adjacent moves.
func TestDiagonalCells(t *testing.T) {
	g, err := isogrid.NewGrid(2, 2)
	require.NoError(t, err)

	got, err := g.DiagonalCells(0)
	require.NoError(t, err)
	assert.Equal(t, [4]int{1, none, 4, none}, got)

	got, err = g.DiagonalCells(1)
	require.NoError(t, err)
	assert.Equal(t, [4]int{none, 0, 5, none}, got)

	// slot pairs (0,1) and (2,3) mirror each other
	mirror := [4]int{1, 0, 3, 2}
	for _, dim := range sizes {
		g, err := isogrid.NewGrid(dim[0], dim[1])
		require.NoError(t, err)
		for a := 0; a < g.Len(); a++ {
			diag, _ := g.DiagonalCells(a)
			for slot, b := range diag {
				if b == none {
					continue
				}
				back, _ := g.DiagonalCells(b)
				assert.Equal(t, a, back[mirror[slot]], "a=%d b=%d", a, b)
			}
		}
	}
}

// TestCells_NeighborsStored checks construction stores the computed adjacency.
func TestCells_NeighborsStored(t *testing.T) {
	g, err := isogrid.NewGrid(3, 4)
	require.NoError(t, err)
	for _, c := range g.Cells() {
		nb, err := g.AdjacentCells(c.ID)
		require.NoError(t, err)
		assert.Equal(t, nb, c.Neighbors)

		info, _ := g.CellInfo(c.ID)
		assert.Equal(t, info, isogrid.Info{X: c.X, Y: c.Y, Parity: c.Parity})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
