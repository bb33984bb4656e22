package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ofc-quake/internal/sims/ofc"
)

type runOutput struct {
	Config     configView  `json:"config"`
	Summary    ofc.Summary `json:"summary"`
	TimeSeries []int       `json:"time_series,omitempty"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and report avalanche statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg := file.Sim()
			applySimFlags(cmd, &cfg)

			res, err := ofc.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			withSeries, _ := cmd.Flags().GetBool("series")
			out := cmd.OutOrStdout()

			if jsonOut {
				payload := runOutput{Config: viewOf(cfg), Summary: res.Summary}
				if withSeries {
					payload.TimeSeries = res.TimeSeries
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}

			fmt.Fprintf(out, "OFC %dx%d grid, %d ticks (f_crit=%g f_out=%g alpha=%g seed=%d)\n",
				cfg.N, cfg.N, cfg.Steps, cfg.FCrit, cfg.FOut, cfg.Alpha, cfg.Seed)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			s := res.Summary
			fmt.Fprintf(tw, "ticks\t%d\n", s.Ticks)
			fmt.Fprintf(tw, "events\t%d\n", s.Events)
			fmt.Fprintf(tw, "event rate\t%.4f\n", s.EventRate)
			fmt.Fprintf(tw, "discharges\t%d\n", s.Discharges)
			fmt.Fprintf(tw, "mean size\t%.2f\n", s.MeanSize)
			fmt.Fprintf(tw, "max size\t%d\n", s.MaxSize)
			if err := tw.Flush(); err != nil {
				return err
			}
			if withSeries {
				for _, v := range res.TimeSeries {
					fmt.Fprintln(out, v)
				}
			}
			return nil
		},
	}

	addSimFlags(cmd)
	cmd.Flags().Float64("f-out", ofc.DefaultConfig().FOut, "stress added to every cell per tick")
	cmd.Flags().Bool("series", false, "also print the per-tick avalanche sizes")
	return cmd
}
