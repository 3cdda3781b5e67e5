// Package isopath is the addressing and pathfinding core behind an
// interactive isometric map: diamond cells, their ids, their neighbors, and
// the best walkable route between two of them.
//
// Under the hood, everything is organized under these subpackages:
//
//	isogrid/    — id ⇄ (X, Y, parity) decoding, topological and diagonal adjacency,
//	              walkability flags under an RW lock, immutable View snapshots
//	astar/      — A* search over a View: single queries, concurrent batches,
//	              expansion caps and expansion hooks
//	mapctx/     — YAML map-context documents applied to a grid
//	config/     — TOML + .env + ISOPATH_* tool configuration, zap logger setup
//	cmd/isopath — command-line front end
//
// Quick ASCII example (rows=2, cols=2, ids 0..7; ─ topological, ┄ diagonal):
//
//	0 ─── 3 ┄┄┄ 7
//	 ┄         │
//	  4 ───────┘
//
//	astar.FindPath(grid, 0, 7) → [0 3 7], cost 1+√2
//
// Drawing, pointer hit-testing and serving the page are left to the caller;
// the core only hands back ordered id sequences.
//
//	go get github.com/katalvlaran/isopath
package isopath
