// isopath builds an isometric grid, applies an optional map context and
// prints the best walkable path for each requested pair of cells.
//
// Usage:
//
//	go run ./cmd/isopath/ -config isopath.toml -from 0 -to 7
//	go run ./cmd/isopath/ -config isopath.toml -pairs "0:7,3:12"
//
// Without -config the 14×20 reference map is used. See package config for
// the environment overrides.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/isopath/astar"
	"github.com/katalvlaran/isopath/config"
	"github.com/katalvlaran/isopath/isogrid"
	"github.com/katalvlaran/isopath/mapctx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("isopath", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "TOML configuration file")
	from := fs.Int("from", -1, "start cell id")
	to := fs.Int("to", -1, "goal cell id")
	pairs := fs.String("pairs", "", `comma-separated start:goal list, e.g. "0:7,3:12"`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	queries, err := parseQueries(*from, *to, *pairs)
	if err != nil {
		return err
	}

	g, err := isogrid.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return err
	}
	if cfg.Grid.MapContext != "" {
		mc, err := mapctx.Load(cfg.Grid.MapContext)
		if err != nil {
			return err
		}
		if err := mc.Apply(g, log); err != nil {
			return err
		}
	}
	log.Info("grid ready",
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Int("cells", g.Len()),
		zap.String("map_context", cfg.Grid.MapContext))

	outs, err := astar.FindPaths(ctx, g, queries,
		astar.WithMaxExpansions(cfg.Search.MaxExpansions),
		astar.WithDiagonals(cfg.Search.Diagonals),
		astar.WithWorkers(cfg.Search.Workers))
	if err != nil {
		return err
	}

	for _, o := range outs {
		reqLog := log.With(
			zap.String("request_id", uuid.NewString()),
			zap.Int("start", o.Start),
			zap.Int("goal", o.Goal))
		switch {
		case o.Err == nil:
			reqLog.Info("path found",
				zap.Int("length", len(o.Result.Path)),
				zap.Float64("cost", o.Result.Cost),
				zap.Int("expanded", o.Result.Expanded))
			fmt.Fprintf(out, "%s (cost=%.3f)\n", formatPath(o.Result.Path), o.Result.Cost)
		case errors.Is(o.Err, astar.ErrUnreachable), errors.Is(o.Err, astar.ErrExpansionLimit):
			reqLog.Info("no path", zap.Int("expanded", o.Result.Expanded), zap.Error(o.Err))
			fmt.Fprintf(out, "%d -> %d: %v\n", o.Start, o.Goal, o.Err)
		default:
			reqLog.Error("query rejected", zap.Error(o.Err))
			fmt.Fprintf(out, "%d -> %d: %v\n", o.Start, o.Goal, o.Err)
		}
	}

	return nil
}

// parseQueries merges -from/-to with the -pairs list.
func parseQueries(from, to int, pairs string) ([]astar.Query, error) {
	var qs []astar.Query
	if from >= 0 || to >= 0 {
		if from < 0 || to < 0 {
			return nil, errors.New("-from and -to must be given together")
		}
		qs = append(qs, astar.Query{Start: from, Goal: to})
	}
	for _, p := range strings.Split(pairs, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		a, b, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("pair %q: want start:goal", p)
		}
		start, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", p, err)
		}
		goal, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", p, err)
		}
		qs = append(qs, astar.Query{Start: start, Goal: goal})
	}
	if len(qs) == 0 {
		return nil, errors.New("no queries: use -from/-to or -pairs")
	}

	return qs, nil
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " -> ")
}
