// Package astar finds lowest-cost walkable paths between two cells of an
// isogrid.Grid using A* search.
//
// What:
//
//   - FindPath: one query over a snapshot of the grid taken at call time.
//   - FindPaths: many queries over one shared snapshot, run concurrently on a
//     bounded errgroup.
//
// Move model:
//
//   - Topological neighbors (right, left, up, down) cost 1.
//   - Diagonal id-adjacent cells (id±1, id±2·rows) cost √2; WithDiagonals(false)
//     disables them.
//   - A move may only enter a walkable cell. The start cell is never checked.
//
// Heuristic:
//
// Every move changes X by at most 1 and the diagonal block (2·Y + parity) by
// at most 2, and no move costs less than 1, so
//
//	h(a, b) = max(|ΔX|, |Δblock| / 2)
//
// never overestimates and never drops by more than the cost of a move. The
// heuristic is therefore consistent and a finalized cell is never reopened.
//
// Ordering:
//
// The open set is ordered by f = g + h, then by smaller g, then by discovery
// order (right, left, up, down, id+1, id−1, id+2·rows, id−2·rows). Equal
// inputs always produce equal paths.
//
// Errors:
//
//   - ErrNilGrid: grid pointer is nil.
//   - isogrid.ErrInvalidCellID: start or goal outside the grid.
//   - ErrUnreachable: the open set emptied before the goal was reached.
//   - ErrExpansionLimit: WithMaxExpansions cap hit first.
//   - ErrOptionViolation: an option was given an invalid value.
//
// Complexity:
//
//   - Time:   O(N log N) for N = 2·rows·cols cells (at most 8 moves per cell).
//   - Memory: O(N) per query; no search state is shared between queries.
package astar
