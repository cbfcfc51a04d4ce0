// Package config loads runtime settings for the gridplan binaries from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridplan/planner"
)

// Environment variable names.
const (
	EnvAddr      = "GRIDPLAN_ADDR"
	EnvOutputDir = "GRIDPLAN_OUTPUT_DIR"
	EnvMaxCells  = "GRIDPLAN_MAX_CELLS"
	EnvPlanner   = "GRIDPLAN_PLANNER"
)

// ErrInvalid is returned when a variable holds a value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings shared by the server and the CLI.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// OutputDir is where the CLI writes its files.
	OutputDir string
	// MaxCells caps width·height of any configuration space built on request.
	MaxCells uint64
	// Planner is the planner used when a request names none.
	Planner planner.Kind
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		Addr:      ":8080",
		OutputDir: "./output",
		MaxCells:  4_000_000,
		Planner:   planner.AStar,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and then resolves the configuration from it.
// A missing file is reported through loaded=false, not as an error.
// Variables already set in the environment win over the file.
func Load(files ...string) (cfg Config, loaded bool, err error) {
	switch err = godotenv.Load(files...); {
	case err == nil:
		loaded = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, false, fmt.Errorf("config: reading env file: %w", err)
	}
	cfg, err = FromEnv(os.LookupEnv)

	return cfg, loaded, err
}

// FromEnv resolves the configuration through lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		cfg.OutputDir = v
	}
	if v, ok := lookup(EnvMaxCells); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalid, EnvMaxCells, v)
		}
		cfg.MaxCells = n
	}
	if v, ok := lookup(EnvPlanner); ok && v != "" {
		k, err := planner.ParseKind(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvPlanner, err)
		}
		cfg.Planner = k
	}

	return cfg, nil
}

// Env flattens cfg back into KEY=value pairs, in the format godotenv writes.
func (c Config) Env() map[string]string {
	return map[string]string{
		EnvAddr:      c.Addr,
		EnvOutputDir: c.OutputDir,
		EnvMaxCells:  strconv.FormatUint(c.MaxCells, 10),
		EnvPlanner:   c.Planner.String(),
	}
}
