package isogrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for isogrid operations.
var (
	// ErrInvalidDimensions indicates rows or cols is zero or negative.
	ErrInvalidDimensions = errors.New("isogrid: rows and cols must be positive")
	// ErrInvalidCellID indicates an id outside [0, 2·rows·cols).
	ErrInvalidCellID = errors.New("isogrid: cell id out of range")
)

// None marks an empty neighbor slot.
const None = -1

// Parity selects one of the two interleaved diagonal families.
type Parity uint8

const (
	// Even cells sit on even diagonal blocks.
	Even Parity = iota
	// Odd cells sit on odd diagonal blocks.
	Odd
)

// String implements fmt.Stringer.
func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Parity(%d)", uint8(p))
	}
}

// Direction names a topological neighbor slot.
type Direction int

const (
	// Right is slot 0.
	Right Direction = iota
	// Left is slot 1.
	Left
	// Up is slot 2.
	Up
	// Down is slot 3.
	Down
)

// Directions lists the neighbor slots in the order adjacency is emitted.
var Directions = [4]Direction{Right, Left, Up, Down}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the mirror direction (right↔left, up↔down).
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// Info is the decoded position of a cell.
type Info struct {
	X, Y   int    // X ∈ [0, rows), Y ∈ [0, cols)
	Parity Parity // diagonal family
}

// Cell is one diamond tile of the grid.
//
// Neighbors holds the right, left, up and down neighbor ids in that order,
// with None where the neighbor would fall outside the grid.
type Cell struct {
	ID        int
	X, Y      int
	Parity    Parity
	Neighbors [4]int
	CanWalk   bool
}

// Link is one traversable connection out of a cell, as produced by View.Links.
type Link struct {
	To       int  // target cell id
	Diagonal bool // true for id-adjacent diagonal moves, false for topological ones
}
