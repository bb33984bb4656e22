// Package config loads the headless runner configuration. Values come from
// built-in defaults, then an optional YAML file, then OFC_* environment
// variables; command-line flags are applied last by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"ofc-quake/internal/sims/ofc"
)

// File is the complete runner configuration.
type File struct {
	Grid    GridConfig    `yaml:"grid"`
	Model   ModelConfig   `yaml:"model"`
	Run     RunConfig     `yaml:"run"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig sizes and seeds the lattice.
type GridConfig struct {
	N    int   `yaml:"n"    env:"OFC_N"`
	Seed int64 `yaml:"seed" env:"OFC_SEED"`
}

// ModelConfig holds the physical parameters.
type ModelConfig struct {
	FCrit float64 `yaml:"f_crit" env:"OFC_F_CRIT"`
	FOut  float64 `yaml:"f_out"  env:"OFC_F_OUT"`
	Alpha float64 `yaml:"alpha"  env:"OFC_ALPHA"`
}

// RunConfig bounds the run.
type RunConfig struct {
	Steps int `yaml:"steps" env:"OFC_STEPS"`
	// MaxSweeps caps sweeps per tick; 0 disables the cap.
	MaxSweeps int `yaml:"max_sweeps" env:"OFC_MAX_SWEEPS"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level is "info" (default), "debug" or "trace".
	Level string `yaml:"level" env:"OFC_LOG_LEVEL"`
}

// Default returns the configuration used when nothing overrides it.
func Default() File {
	d := ofc.DefaultConfig()
	return File{
		Grid:    GridConfig{N: d.N, Seed: d.Seed},
		Model:   ModelConfig{FCrit: d.FCrit, FOut: d.FOut, Alpha: d.Alpha},
		Run:     RunConfig{Steps: d.Steps, MaxSweeps: d.MaxSweeps},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load layers the YAML file at path (skipped when empty) and the environment
// over the defaults.
func Load(path string) (File, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return File{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Sim converts the file layout into a simulation config.
func (f File) Sim() ofc.Config {
	return ofc.Config{
		N:         f.Grid.N,
		FCrit:     f.Model.FCrit,
		FOut:      f.Model.FOut,
		Alpha:     f.Model.Alpha,
		Steps:     f.Run.Steps,
		Seed:      f.Grid.Seed,
		MaxSweeps: f.Run.MaxSweeps,
	}
}
