package ofc

import (
	"errors"
	"fmt"
	"strconv"
)

// Config holds the physical parameters and run length of an OFC simulation.
type Config struct {
	// N is the side length of the square lattice.
	N int
	// FCrit is the discharge threshold.
	FCrit float64
	// FOut is the uniform load added to every cell per tick.
	FOut float64
	// Alpha is the fraction of a discharging cell's stress sent to each
	// neighbor. 0.25 is conservative for interior cells.
	Alpha float64
	// Steps is the number of ticks Run executes.
	Steps int

	Seed int64

	// MaxSweeps caps sweeps per tick. Zero disables the cap.
	MaxSweeps int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		N:     10,
		FCrit: 4.0,
		FOut:  0.001,
		Alpha: 0.25,
		Steps: 50000,
		Seed:  1337,
	}
}

// Validate reports every rule the configuration breaks. Each reported
// problem wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}
	if c.N < 1 {
		bad("grid size %d must be at least 1", c.N)
	}
	if c.Steps < 1 {
		bad("steps %d must be at least 1", c.Steps)
	}
	if !(c.FCrit > 0) {
		bad("critical threshold %g must be positive", c.FCrit)
	}
	if !(c.FOut > 0) {
		bad("drive increment %g must be positive", c.FOut)
	} else if c.FCrit > 0 && c.FOut >= c.FCrit {
		bad("drive increment %g must be below the critical threshold %g", c.FOut, c.FCrit)
	}
	if !(c.Alpha > 0) || c.Alpha > 1 {
		bad("transfer fraction %g must be in (0, 1]", c.Alpha)
	}
	if c.MaxSweeps < 0 {
		bad("sweep limit %d must not be negative", c.MaxSweeps)
	}
	return errors.Join(errs...)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.N = parsed
		}
	}
	if v, ok := cfg["f_crit"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.FCrit = parsed
		}
	}
	if v, ok := cfg["f_out"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.FOut = parsed
		}
	}
	if v, ok := cfg["alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Alpha = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["max_sweeps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxSweeps = parsed
		}
	}
	return c
}
