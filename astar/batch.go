package astar

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isopath/isogrid"
)

// FindPaths runs every query against one snapshot of g, at most
// Options.Workers at a time. Outcomes are returned in query order; a query
// that fails (unreachable, invalid id, expansion cap) records its error in
// Outcome.Err without stopping the others.
//
// Cancelling ctx stops queries that have not started and interrupts running
// ones within a few dozen expansions; FindPaths then returns ctx.Err(). The
// returned error is otherwise non-nil only for invalid options or a nil grid.
func FindPaths(ctx context.Context, g *isogrid.Grid, queries []Query, opts ...Option) ([]Outcome, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	v := g.Snapshot()

	out := make([]Outcome, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, q := range queries {
		i, q := i, q // per-iteration copy (go directive < 1.22)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := search(ctx, v, q.Start, q.Goal, cfg)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			out[i] = Outcome{Query: q, Result: res, Err: err}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
