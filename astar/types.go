package astar

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates a nil *isogrid.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrUnreachable indicates no walkable path connects start and goal.
	ErrUnreachable = errors.New("astar: goal unreachable")

	// ErrExpansionLimit indicates the search stopped at the MaxExpansions cap.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Move costs.
const (
	// StraightCost is the cost of a move to a topological neighbor.
	StraightCost = 1.0
	// DiagonalCost is the cost of a move to a diagonal id-adjacent cell.
	DiagonalCost = math.Sqrt2
)

// Options configures a search.
type Options struct {
	// MaxExpansions caps the number of cells finalized; 0 means no cap.
	MaxExpansions int

	// Diagonals enables the id±1 and id±2·rows moves.
	Diagonals bool

	// Workers bounds the goroutines FindPaths runs at once.
	Workers int

	// OnExpand is called each time a cell is finalized, with its path cost
	// from start. Under FindPaths it is called from several goroutines.
	OnExpand func(id int, g float64)

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the search runs.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - no expansion cap
//   - diagonal moves enabled
//   - runtime.NumCPU() batch workers
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Diagonals:     true,
		Workers:       runtime.NumCPU(),
		OnExpand:      func(int, float64) {},
	}
}

// WithMaxExpansions stops the search after n cells have been finalized.
//
//	n > 0: cap at n
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithDiagonals enables or disables the diagonal id-adjacent moves.
func WithDiagonals(enabled bool) Option {
	return func(o *Options) {
		o.Diagonals = enabled
	}
}

// WithWorkers bounds FindPaths concurrency. 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithOnExpand registers a hook run when a cell is finalized.
func WithOnExpand(fn func(id int, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// Result is the outcome of one search.
type Result struct {
	Path     []int   // start..goal inclusive; nil when not found
	Cost     float64 // total move cost of Path
	Expanded int     // cells finalized during the search
	Found    bool
}

// Query is one (start, goal) request for FindPaths.
type Query struct {
	Start, Goal int
}

// Outcome pairs a Query with its Result. Err carries per-query failures such
// as ErrUnreachable or isogrid.ErrInvalidCellID.
type Outcome struct {
	Query
	Result Result
	Err    error
}
