// Package mapctx loads map-context documents and applies their walkability
// data to an isogrid.Grid.
//
// A document names the grid it was authored for and lists the cells that
// cannot be walked:
//
//	rows: 14
//	cols: 20
//	blocked: [3, 17, 42]
//	walkable: [17]
//
// walkable entries are applied after blocked ones, so they re-open cells.
package mapctx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isopath/isogrid"
)

// ErrDimensionMismatch indicates a document authored for another grid size.
var ErrDimensionMismatch = errors.New("mapctx: dimensions do not match grid")

// Context is a decoded map-context document.
type Context struct {
	Rows     int   `yaml:"rows"`
	Cols     int   `yaml:"cols"`
	Blocked  []int `yaml:"blocked"`
	Walkable []int `yaml:"walkable"`
}

// Decode reads one YAML document. Unknown fields are rejected.
func Decode(r io.Reader) (*Context, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Context
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("mapctx: empty document")
		}
		return nil, fmt.Errorf("mapctx: decode: %w", err)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, fmt.Errorf("mapctx: %w: rows=%d cols=%d", isogrid.ErrInvalidDimensions, c.Rows, c.Cols)
	}

	return &c, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapctx: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data))
}

// Apply replaces the walkability of g with the document's: every cell is
// opened, blocked ids are closed and walkable ids re-opened. The grid must
// have the document's dimensions. The update is atomic, so an out-of-range
// id returns isogrid.ErrInvalidCellID with g unchanged and concurrent
// searches never see a partial map. Duplicate ids are logged at warn level.
func (c *Context) Apply(g *isogrid.Grid, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if g.Rows() != c.Rows || g.Cols() != c.Cols {
		return fmt.Errorf("%w: document %dx%d, grid %dx%d", ErrDimensionMismatch, c.Rows, c.Cols, g.Rows(), g.Cols())
	}

	if err := g.ApplyWalkable(c.Blocked, c.Walkable); err != nil {
		return fmt.Errorf("mapctx: %w", err)
	}
	warnDuplicates(log, "blocked", c.Blocked)
	warnDuplicates(log, "walkable", c.Walkable)
	log.Debug("map context applied",
		zap.Int("rows", c.Rows),
		zap.Int("cols", c.Cols),
		zap.Int("blocked", len(c.Blocked)),
		zap.Int("walkable", len(c.Walkable)))

	return nil
}

func warnDuplicates(log *zap.Logger, list string, ids []int) {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			log.Warn("duplicate cell id in map context", zap.String("list", list), zap.Int("id", id))
			continue
		}
		seen[id] = struct{}{}
	}
}
