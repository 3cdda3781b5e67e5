package isogrid

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Grid is an isometric diamond grid. Its topology is fixed at construction;
// only per-cell walkability changes afterwards.
//
// Grid is safe for concurrent use: walkability updates take the write lock,
// reads and Snapshot take the read lock.
type Grid struct {
	layout

	cells []Cell // ascending id; CanWalk is filled on read

	mu       sync.RWMutex
	walkable []bool
}

// NewGrid builds a rows×cols isometric grid of 2·rows·cols cells, all
// walkable. Returns ErrInvalidDimensions if rows or cols is not positive.
//
// Cells are generated in two passes, one per diagonal family, and then
// sorted by id:
//
//	Even: id = i + j·rows·2
//	Odd:  id = i + j·rows + (j+1)·rows
//
// for i ∈ [0, rows), j ∈ [0, cols).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidDimensions, rows, cols)
	}
	l := layout{rows: rows, cols: cols}
	cells := make([]Cell, 0, l.Len())

	// Even family.
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			cells = append(cells, Cell{ID: i + j*rows*2})
		}
	}
	// Odd family.
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			cells = append(cells, Cell{ID: i + j*rows + (j+1)*rows})
		}
	}
	slices.SortFunc(cells, func(a, b Cell) int { return cmp.Compare(a.ID, b.ID) })

	for k := range cells {
		c := &cells[k]
		info := l.info(c.ID)
		c.X, c.Y, c.Parity = info.X, info.Y, info.Parity
		c.Neighbors = l.adjacent(c.ID)
	}

	walkable := make([]bool, len(cells))
	for k := range walkable {
		walkable[k] = true
	}

	return &Grid{layout: l, cells: cells, walkable: walkable}, nil
}

// Cell returns a copy of the cell with the given id.
func (g *Grid) Cell(id int) (Cell, error) {
	if err := g.check(id); err != nil {
		return Cell{}, err
	}
	c := g.cells[id]
	g.mu.RLock()
	c.CanWalk = g.walkable[id]
	g.mu.RUnlock()

	return c, nil
}

// Cells returns a copy of all cells in ascending id order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	g.mu.RLock()
	for k := range out {
		out[k].CanWalk = g.walkable[k]
	}
	g.mu.RUnlock()

	return out
}

// SetWalkable sets whether a path may pass through id.
func (g *Grid) SetWalkable(id int, walkable bool) error {
	if err := g.check(id); err != nil {
		return err
	}
	g.mu.Lock()
	g.walkable[id] = walkable
	g.mu.Unlock()

	return nil
}

// Walkable reports whether a path may pass through id.
func (g *Grid) Walkable(id int) (bool, error) {
	if err := g.check(id); err != nil {
		return false, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.walkable[id], nil
}

// Reset marks every cell walkable again.
func (g *Grid) Reset() {
	g.mu.Lock()
	for k := range g.walkable {
		g.walkable[k] = true
	}
	g.mu.Unlock()
}

// ApplyWalkable resets every cell to walkable, marks blocked cells
// unwalkable and then re-opens the walkable ones, all under one write lock.
// Every id is checked first; on ErrInvalidCellID the grid is left untouched.
// A Snapshot taken concurrently sees either the old or the new state.
func (g *Grid) ApplyWalkable(blocked, walkable []int) error {
	for _, ids := range [2][]int{blocked, walkable} {
		for _, id := range ids {
			if err := g.check(id); err != nil {
				return err
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for k := range g.walkable {
		g.walkable[k] = true
	}
	for _, id := range blocked {
		g.walkable[id] = false
	}
	for _, id := range walkable {
		g.walkable[id] = true
	}

	return nil
}

// Snapshot copies the current walkability into an immutable View.
// Later SetWalkable calls do not affect the returned View.
func (g *Grid) Snapshot() *View {
	g.mu.RLock()
	walkable := slices.Clone(g.walkable)
	g.mu.RUnlock()

	return &View{layout: g.layout, walkable: walkable}
}
