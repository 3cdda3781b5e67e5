package isogrid

import "fmt"

// topoSteps holds the (Δx, Δblock) step of each topological direction,
// indexed by parity and then by Direction. With id = x + block·rows these
// reproduce the id deltas of the adjacency table.
var topoSteps = [2][4][2]int{
	Even: {{-1, 2}, {1, -2}, {1, 1}, {1, -1}},
	Odd:  {{-1, 2}, {1, -2}, {-1, 1}, {-1, -1}},
}

// diagSteps holds the (Δx, Δblock) step of id+1, id−1, id+2·rows, id−2·rows.
var diagSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 2}, {0, -2}}

// layout is the pure id arithmetic shared by Grid and View.
type layout struct {
	rows, cols int
}

// Rows returns the configured row count.
func (l layout) Rows() int { return l.rows }

// Cols returns the configured column count.
func (l layout) Cols() int { return l.cols }

// Len returns the number of cells, 2·rows·cols.
func (l layout) Len() int { return 2 * l.rows * l.cols }

// Contains reports whether id lies in [0, Len()).
func (l layout) Contains(id int) bool {
	return id >= 0 && id < l.Len()
}

// CellInfo decodes id into its grid coordinates and parity.
// Returns ErrInvalidCellID for ids outside the grid.
func (l layout) CellInfo(id int) (Info, error) {
	if err := l.check(id); err != nil {
		return Info{}, err
	}

	return l.info(id), nil
}

// AdjacentCells returns the right, left, up and down neighbors of id, with
// None in each slot whose target falls outside the grid.
func (l layout) AdjacentCells(id int) ([4]int, error) {
	if err := l.check(id); err != nil {
		return [4]int{None, None, None, None}, err
	}

	return l.adjacent(id), nil
}

// DiagonalCells returns id+1, id−1, id+2·rows and id−2·rows, with None in
// each slot whose step leaves the grid or wraps into another block.
func (l layout) DiagonalCells(id int) ([4]int, error) {
	if err := l.check(id); err != nil {
		return [4]int{None, None, None, None}, err
	}

	return l.diagonal(id), nil
}

func (l layout) check(id int) error {
	if !l.Contains(id) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCellID, id, l.Len())
	}

	return nil
}

func (l layout) info(id int) Info {
	block := id / l.rows

	return Info{X: id % l.rows, Y: block / 2, Parity: Parity(block % 2)}
}

// step applies (dx, db) to id in (x, block) space. Bounds are checked on the
// decoded coordinates so a delta never wraps into a neighboring block.
func (l layout) step(id, dx, db int) int {
	x, b := id%l.rows+dx, id/l.rows+db
	if x < 0 || x >= l.rows || b < 0 || b >= 2*l.cols {
		return None
	}

	return b*l.rows + x
}

func (l layout) adjacent(id int) [4]int {
	steps := &topoSteps[(id/l.rows)%2]
	var out [4]int
	for i, s := range steps {
		out[i] = l.step(id, s[0], s[1])
	}

	return out
}

func (l layout) diagonal(id int) [4]int {
	var out [4]int
	for i, s := range diagSteps {
		out[i] = l.step(id, s[0], s[1])
	}

	return out
}
