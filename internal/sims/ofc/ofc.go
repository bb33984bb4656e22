package ofc

import (
	"fmt"

	"ofc-quake/internal/core"
)

// Model owns the complete state of one OFC simulation: the stress lattice,
// the relaxation buffers, the avalanche record and the RNG. Independent
// Models share nothing.
type Model struct {
	cfg Config

	grid     *StressGrid
	relaxer  *Relaxer
	recorder *Recorder
	rng      *core.RNG

	tick int
	last Avalanche
	err  error

	display []uint8
}

// NewWithConfig validates cfg and returns a Model seeded with cfg.Seed.
func NewWithConfig(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewStressGrid(cfg.N)
	if err != nil {
		return nil, err
	}
	m := &Model{
		cfg:      cfg,
		grid:     grid,
		relaxer:  NewRelaxer(cfg.FCrit, cfg.Alpha, cfg.MaxSweeps),
		recorder: NewRecorder(cfg.Steps),
		display:  make([]uint8, cfg.N*cfg.N),
	}
	m.Reset(0)
	return m, nil
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return "ofc" }

// Size reports the grid dimensions.
func (m *Model) Size() core.Size { return core.Size{W: m.cfg.N, H: m.cfg.N} }

// Cells exposes the display buffer refreshed by Step.
func (m *Model) Cells() []uint8 { return m.display }

// Config returns the configuration the model was built with.
func (m *Model) Config() Config { return m.cfg }

// Grid exposes the live stress lattice.
func (m *Model) Grid() *StressGrid { return m.grid }

// Recorder exposes the avalanche record.
func (m *Model) Recorder() *Recorder { return m.recorder }

// Ticks returns the number of completed ticks since the last Reset.
func (m *Model) Ticks() int { return m.tick }

// Last returns the avalanche produced by the most recent tick.
func (m *Model) Last() Avalanche { return m.last }

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error { return m.err }

// Reset draws a fresh uniform initial lattice and clears the record. A zero
// seed falls back to the configured seed.
func (m *Model) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = m.cfg.Seed
	}
	m.rng = core.NewRNG(effective)
	m.grid.Randomize(m.rng, m.cfg.FCrit)
	m.recorder.Reset()
	m.relaxer.resetDischarges(len(m.grid.data))
	m.tick = 0
	m.last = Avalanche{}
	m.err = nil
	m.rebuildDisplay()
}

// Tick drives the lattice once, relaxes it to stability and records the
// avalanche size. After a failed tick the model refuses further ticks until
// Reset.
func (m *Model) Tick() (Avalanche, error) {
	if m.err != nil {
		return Avalanche{}, m.err
	}
	Drive(m.grid, m.cfg.FOut)
	av, err := m.relaxer.Relax(m.grid)
	if err != nil {
		m.err = fmt.Errorf("tick %d: %w", m.tick, err)
		m.last = av
		return av, m.err
	}
	m.recorder.Record(av.Size)
	m.tick++
	m.last = av
	return av, nil
}

// Step advances the simulation by one tick and refreshes the display buffer.
func (m *Model) Step() {
	if m.err != nil {
		return
	}
	_, _ = m.Tick()
	m.rebuildDisplay()
}

func init() {
	core.Register("ofc", func(cfg map[string]string) (core.Sim, error) {
		m, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}
