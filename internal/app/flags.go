package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	// Rate is the number of simulation ticks per second, independent of the
	// frame rate.
	Rate int
	Seed int64
	Set  KVList
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ofc", Scale: 24, TPS: 60, Rate: 600, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(&c.Set, "set", "simulation parameter in key=value form (repeatable)")
}

// SimParams returns the -set overrides as a map for the sim factory. Later
// values win.
func (c *Config) SimParams() map[string]string {
	if len(c.Set) == 0 {
		return nil
	}
	params := make(map[string]string, len(c.Set))
	for _, kv := range c.Set {
		key, value, _ := strings.Cut(kv, "=")
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}
