package ofc

import (
	"context"
	"fmt"
	"log/slog"

	"ofc-quake/internal/logging"
)

// Result is the output of a complete run.
type Result struct {
	// TimeSeries holds one avalanche size per tick, zeros included.
	TimeSeries []int
	// Magnitudes holds the nonzero entries of TimeSeries in order.
	Magnitudes []int
	Summary    Summary
}

// Run validates cfg, seeds a fresh Model and executes cfg.Steps ticks. ctx is
// checked between ticks only; a tick always relaxes to completion. On error
// the returned Result holds the ticks completed so far.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	m, err := NewWithConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	logger.Info("starting OFC simulation",
		"n", cfg.N, "steps", cfg.Steps, "f_crit", cfg.FCrit,
		"f_out", cfg.FOut, "alpha", cfg.Alpha, "seed", cfg.Seed)

	spanning := cfg.N * cfg.N
	trace := logger.Enabled(ctx, logging.LevelTrace)
	for t := 0; t < cfg.Steps; t++ {
		if err := ctx.Err(); err != nil {
			return m.result(), fmt.Errorf("run interrupted at tick %d: %w", t, err)
		}
		av, err := m.Tick()
		if err != nil {
			return m.result(), err
		}
		if trace && av.Size > 0 {
			logger.Log(ctx, logging.LevelTrace, "avalanche", "tick", t, "size", av.Size, "sweeps", av.Sweeps)
		}
		if av.Size >= spanning {
			logger.Debug("system-spanning avalanche", "tick", t, "size", av.Size, "sweeps", av.Sweeps)
		}
	}

	res := m.result()
	logger.Info("simulation complete",
		"ticks", res.Summary.Ticks, "events", res.Summary.Events,
		"max_size", res.Summary.MaxSize, "mean_size", res.Summary.MeanSize)
	return res, nil
}

func (m *Model) result() Result {
	series := m.recorder.TimeSeries()
	return Result{
		TimeSeries: series,
		Magnitudes: m.recorder.Magnitudes(),
		Summary:    Summarize(series),
	}
}
