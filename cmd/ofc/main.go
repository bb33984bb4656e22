// Command ofc runs Olami-Feder-Christensen earthquake simulations headlessly
// and reports avalanche statistics.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ofc-quake/internal/config"
	"ofc-quake/internal/logging"
	"ofc-quake/internal/sims/ofc"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ofc",
		Short: "OFC earthquake model - self-organized criticality on a grid",
		Long: `ofc simulates the Olami-Feder-Christensen earthquake model: a lattice of
cells is loaded slowly and uniformly, and any cell reaching the critical
threshold discharges into its neighbors, possibly setting off an avalanche.

Configuration is read from defaults, an optional YAML file (--config),
OFC_* environment variables and finally command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: info, debug or trace")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ofc version %s\n", version)
		},
	}
}

// loadConfig layers the config file and environment, then builds the logger.
func loadConfig(cmd *cobra.Command) (config.File, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	file, err := config.Load(path)
	if err != nil {
		return config.File{}, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		file.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	return file, logging.NewLogger(file.Logging.Level, cmd.ErrOrStderr()), nil
}

// addSimFlags registers the lattice and physics flags shared by commands.
// The drive increment is registered by each command because sweep takes a
// list of them.
func addSimFlags(cmd *cobra.Command) {
	d := ofc.DefaultConfig()
	cmd.Flags().Int("n", d.N, "grid side length")
	cmd.Flags().Int("steps", d.Steps, "ticks to simulate")
	cmd.Flags().Float64("f-crit", d.FCrit, "critical stress threshold")
	cmd.Flags().Float64("alpha", d.Alpha, "fraction of stress sent to each neighbor")
	cmd.Flags().Int64("seed", d.Seed, "seed for the initial lattice")
	cmd.Flags().Int("max-sweeps", d.MaxSweeps, "sweep limit per tick (0 = unlimited)")
}

// applySimFlags copies explicitly set flags over cfg.
func applySimFlags(cmd *cobra.Command, cfg *ofc.Config) {
	fs := cmd.Flags()
	if fs.Changed("n") {
		cfg.N, _ = fs.GetInt("n")
	}
	if fs.Changed("steps") {
		cfg.Steps, _ = fs.GetInt("steps")
	}
	if fs.Changed("f-crit") {
		cfg.FCrit, _ = fs.GetFloat64("f-crit")
	}
	if fs.Changed("f-out") {
		cfg.FOut, _ = fs.GetFloat64("f-out")
	}
	if fs.Changed("alpha") {
		cfg.Alpha, _ = fs.GetFloat64("alpha")
	}
	if fs.Changed("seed") {
		cfg.Seed, _ = fs.GetInt64("seed")
	}
	if fs.Changed("max-sweeps") {
		cfg.MaxSweeps, _ = fs.GetInt("max-sweeps")
	}
}

// configView is the JSON shape of a simulation config.
type configView struct {
	N         int     `json:"n"`
	FCrit     float64 `json:"f_crit"`
	FOut      float64 `json:"f_out"`
	Alpha     float64 `json:"alpha"`
	Steps     int     `json:"steps"`
	Seed      int64   `json:"seed"`
	MaxSweeps int     `json:"max_sweeps"`
}

func viewOf(c ofc.Config) configView {
	return configView{
		N:         c.N,
		FCrit:     c.FCrit,
		FOut:      c.FOut,
		Alpha:     c.Alpha,
		Steps:     c.Steps,
		Seed:      c.Seed,
		MaxSweeps: c.MaxSweeps,
	}
}
