package astar

import (
	"container/heap"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/isopath/isogrid"
)

// FindPath returns the lowest-cost walkable path from start to goal on g.
// It searches a snapshot taken at call time, so concurrent SetWalkable calls
// never affect a running search.
//
// Validation order:
//  1. options (ErrOptionViolation)
//  2. g non-nil (ErrNilGrid)
//  3. start and goal in range (isogrid.ErrInvalidCellID)
//
// A goal that cannot be reached yields ErrUnreachable with Result.Found false.
func FindPath(g *isogrid.Grid, start, goal int, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}

	return search(context.Background(), g.Snapshot(), start, goal, cfg)
}

// Search is FindPath over an existing snapshot.
func Search(v *isogrid.View, start, goal int, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if v == nil {
		return Result{}, ErrNilGrid
	}

	return search(context.Background(), v, start, goal, cfg)
}

// ctxCheckEvery is how many expansions pass between context checks.
const ctxCheckEvery = 64

func search(ctx context.Context, v *isogrid.View, start, goal int, cfg Options) (Result, error) {
	for _, id := range [2]int{start, goal} {
		if !v.Contains(id) {
			return Result{}, fmt.Errorf("%w: %d not in [0, %d)", isogrid.ErrInvalidCellID, id, v.Len())
		}
	}
	goalInfo, _ := v.CellInfo(goal)

	r := &runner{
		ctx:      ctx,
		v:        v,
		goal:     goal,
		goalInfo: goalInfo,
		opts:     cfg,
		prev:     make([]int, v.Len()),
		closed:   make([]bool, v.Len()),
		open:     make([]*item, v.Len()),
		pq:       make(queue, 0, 64),
		links:    make([]isogrid.Link, 0, 8),
	}
	for i := range r.prev {
		r.prev[i] = isogrid.None
	}
	r.push(start, 0)

	return r.run()
}

// runner holds the mutable state of a single search.
type runner struct {
	ctx      context.Context
	v        *isogrid.View
	goal     int
	goalInfo isogrid.Info
	opts     Options

	prev   []int   // back-pointers; None for start and undiscovered cells
	closed []bool  // finalized cells
	open   []*item // open-set entry per cell, nil when absent
	pq     queue
	seq    int

	links []isogrid.Link // reused per expansion
}

func (r *runner) run() (Result, error) {
	expanded := 0
	for r.pq.Len() > 0 {
		if expanded%ctxCheckEvery == 0 {
			if err := r.ctx.Err(); err != nil {
				return Result{Expanded: expanded}, err
			}
		}
		if r.opts.MaxExpansions > 0 && expanded >= r.opts.MaxExpansions {
			return Result{Expanded: expanded}, fmt.Errorf("%w: %d cells", ErrExpansionLimit, expanded)
		}

		cur := heap.Pop(&r.pq).(*item)
		r.open[cur.id] = nil
		r.closed[cur.id] = true
		expanded++
		r.opts.OnExpand(cur.id, cur.g)

		if cur.id == r.goal {
			return Result{
				Path:     r.path(cur.id),
				Cost:     cur.g,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		r.links = r.v.Links(r.links[:0], cur.id, r.opts.Diagonals)
		for _, l := range r.links {
			if r.closed[l.To] {
				continue
			}
			g := cur.g + StraightCost
			if l.Diagonal {
				g = cur.g + DiagonalCost
			}

			if it := r.open[l.To]; it != nil {
				// strictly better only; equal g keeps the earlier parent
				if g >= it.g {
					continue
				}
				it.g = g
				it.f = g + it.h
				heap.Fix(&r.pq, it.index)
			} else {
				r.push(l.To, g)
			}
			r.prev[l.To] = cur.id
		}
	}

	return Result{Expanded: expanded}, ErrUnreachable
}

func (r *runner) push(id int, g float64) {
	info, _ := r.v.CellInfo(id)
	h := Heuristic(info, r.goalInfo)
	it := &item{id: id, g: g, h: h, f: g + h, seq: r.seq}
	r.seq++
	r.open[id] = it
	heap.Push(&r.pq, it)
}

// path follows back-pointers from id to the start and returns them in
// start→id order.
func (r *runner) path(id int) []int {
	path := []int{id}
	for p := r.prev[id]; p != isogrid.None; p = r.prev[p] {
		path = append(path, p)
	}
	slices.Reverse(path)

	return path
}
