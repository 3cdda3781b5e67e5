// Package isogrid addresses the cells of an isometric diamond grid and
// derives their adjacency from the cell id alone.
//
// What:
//
//   - A grid of rows×cols logical positions holds 2·rows·cols diamond cells.
//   - Cells belong to one of two interleaved diagonal families (Even, Odd).
//   - Every cell has a dense integer id in [0, 2·rows·cols).
//   - The four topological neighbors (right, left, up, down) and the four
//     diagonal id-adjacent cells are computed from the id, never stored
//     beyond construction.
//   - Per-cell walkability is the only mutable state; it is guarded by a
//     sync.RWMutex and read by searches through an immutable View snapshot.
//
// Id layout:
//
// Ids are laid out in blocks of length rows. Block k holds the cells of
// diagonal k; even blocks form the Even family, odd blocks the Odd family:
//
//	id     = x + k·rows
//	X      = id mod rows        ∈ [0, rows)
//	Y      = (id / rows) / 2    ∈ [0, cols)
//	Parity = (id / rows) mod 2
//
// Adjacency (id deltas, order is significant):
//
//	direction   Even          Odd
//	right       +(2·rows−1)   +(2·rows−1)
//	left        −(2·rows−1)   −(2·rows−1)
//	up          +(rows+1)     +(rows−1)
//	down        −(rows−1)     −(rows+1)
//
// A slot whose target leaves [0, rows) on X or [0, cols) on Y is None.
//
// Diagonal id-adjacency adds id+1, id−1, id+2·rows and id−2·rows, again
// None when the step leaves the grid or wraps into another block.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is not positive.
//   - ErrInvalidCellID: id outside [0, 2·rows·cols).
//
// Complexity:
//
//   - NewGrid:        O(R·C·log(R·C)) time, O(R·C) memory.
//   - CellInfo, AdjacentCells, DiagonalCells, Links: O(1).
//   - Snapshot:       O(R·C).
package isogrid
