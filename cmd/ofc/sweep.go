package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ofc-quake/internal/sims/ofc"
)

type sweepJob struct {
	fOut float64
	seed int64
}

type sweepResult struct {
	job     sweepJob
	summary ofc.Summary
	err     error
}

// sweepRow aggregates every replica run for one drive increment.
type sweepRow struct {
	FOut      float64 `json:"f_out"`
	Runs      int     `json:"runs"`
	EventRate float64 `json:"event_rate"`
	MeanSize  float64 `json:"mean_size"`
	MaxSize   int     `json:"max_size"`
}

type sweepOutput struct {
	Config    configView `json:"config"`
	Rows      []sweepRow `json:"rows"`
	Monotonic bool       `json:"monotonic"`
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare event rates across drive increments",
		Long: `sweep runs independent simulations for every drive increment in
--f-out (and every replica seed) on a pool of workers, then reports the mean
rate of nonzero avalanches per tick for each increment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			base := file.Sim()
			applySimFlags(cmd, &base)

			drives, _ := cmd.Flags().GetFloat64Slice("f-out")
			replicas, _ := cmd.Flags().GetInt("replicas")
			workers, _ := cmd.Flags().GetInt("workers")
			if len(drives) == 0 {
				return errors.New("at least one --f-out value is required")
			}
			if replicas < 1 {
				replicas = 1
			}
			if workers < 1 {
				workers = 1
			}

			var jobList []sweepJob
			for _, fOut := range drives {
				for r := 0; r < replicas; r++ {
					jobList = append(jobList, sweepJob{fOut: fOut, seed: base.Seed + int64(r)})
				}
			}
			logger.Info("starting sweep", "runs", len(jobList), "workers", workers, "steps", base.Steps)

			jobs := make(chan sweepJob)
			results := make(chan sweepResult)
			var wg sync.WaitGroup

			ctx := cmd.Context()
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for job := range jobs {
						cfg := base
						cfg.FOut = job.fOut
						cfg.Seed = job.seed
						res, err := ofc.Run(ctx, cfg, logger.With("f_out", job.fOut, "seed", job.seed))
						results <- sweepResult{job: job, summary: res.Summary, err: err}
					}
				}()
			}

			go func() {
				wg.Wait()
				close(results)
			}()

			go func() {
				for _, job := range jobList {
					jobs <- job
				}
				close(jobs)
			}()

			start := time.Now()
			var all []sweepResult
			var errs []error
			for res := range results {
				if res.err != nil {
					errs = append(errs, fmt.Errorf("f_out=%g seed=%d: %w", res.job.fOut, res.job.seed, res.err))
					continue
				}
				all = append(all, res)
			}
			if len(errs) > 0 {
				return errors.Join(errs...)
			}
			logger.Info("sweep complete", "elapsed", time.Since(start).Round(time.Millisecond))

			rows := aggregateSweep(all)
			out := sweepOutput{Config: viewOf(base), Rows: rows, Monotonic: nonDecreasing(rows)}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "f_out\truns\tevent rate\tmean size\tmax size")
			for _, row := range rows {
				fmt.Fprintf(tw, "%g\t%d\t%.4f\t%.2f\t%d\n", row.FOut, row.Runs, row.EventRate, row.MeanSize, row.MaxSize)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "event rate non-decreasing with drive: %v\n", out.Monotonic)
			return nil
		},
	}

	addSimFlags(cmd)
	cmd.Flags().Float64Slice("f-out", []float64{0.0005, 0.001, 0.002, 0.004}, "drive increments to compare")
	cmd.Flags().Int("replicas", 1, "runs per drive increment, with consecutive seeds")
	cmd.Flags().Int("workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}

func aggregateSweep(results []sweepResult) []sweepRow {
	byDrive := map[float64]*sweepRow{}
	meanTotals := map[float64]float64{}
	for _, res := range results {
		row, ok := byDrive[res.job.fOut]
		if !ok {
			row = &sweepRow{FOut: res.job.fOut}
			byDrive[res.job.fOut] = row
		}
		row.Runs++
		row.EventRate += res.summary.EventRate
		meanTotals[res.job.fOut] += res.summary.MeanSize
		if res.summary.MaxSize > row.MaxSize {
			row.MaxSize = res.summary.MaxSize
		}
	}

	rows := make([]sweepRow, 0, len(byDrive))
	for fOut, row := range byDrive {
		row.EventRate /= float64(row.Runs)
		row.MeanSize = meanTotals[fOut] / float64(row.Runs)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].FOut < rows[j].FOut })
	return rows
}

func nonDecreasing(rows []sweepRow) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i].EventRate < rows[i-1].EventRate {
			return false
		}
	}
	return true
}
