// Package config holds the isopath tool configuration.
//
// Values come from, in increasing precedence: built-in defaults, a TOML
// file, a .env file in the working directory, and ISOPATH_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig indicates a configuration value failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by Load.
const (
	EnvRows     = "ISOPATH_ROWS"
	EnvCols     = "ISOPATH_COLS"
	EnvMap      = "ISOPATH_MAP"
	EnvLogLevel = "ISOPATH_LOG_LEVEL"
)

// Config is the full tool configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Search  SearchConfig  `toml:"search"`
	Logging LoggingConfig `toml:"logging"`
}

// GridConfig selects the grid size and optional map context.
type GridConfig struct {
	Rows       int    `toml:"rows"`
	Cols       int    `toml:"cols"`
	MapContext string `toml:"map_context"` // optional YAML walkability file
}

// SearchConfig maps onto astar options.
type SearchConfig struct {
	MaxExpansions int  `toml:"max_expansions"` // 0 = no cap
	Diagonals     bool `toml:"diagonals"`
	Workers       int  `toml:"workers"` // 0 = one per CPU
}

// LoggingConfig controls the zap logger built by Logger.
type LoggingConfig struct {
	Level       string `toml:"level"` // debug, info, warn, error
	Development bool   `toml:"development"`
}

// Default returns the configuration of the 14×20 reference map.
func Default() Config {
	return Config{
		Grid:    GridConfig{Rows: 14, Cols: 20},
		Search:  SearchConfig{Diagonals: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty), .env and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return Config{}, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidConfig, path, keys)
		}
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvRows); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, EnvRows, err)
		}
		c.Grid.Rows = n
	}
	if v, ok := os.LookupEnv(EnvCols); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, EnvCols, err)
		}
		c.Grid.Cols = n
	}
	if v, ok := os.LookupEnv(EnvMap); ok {
		c.Grid.MapContext = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logging.Level = v
	}

	return nil
}

// Validate rejects non-positive grid dimensions, negative search limits and
// unknown log levels.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid rows and cols must be positive (rows=%d cols=%d)", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions cannot be negative (%d)", ErrInvalidConfig, c.Search.MaxExpansions)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers cannot be negative (%d)", ErrInvalidConfig, c.Search.Workers)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Logger builds a zap logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
