package ofc

import "fmt"

// Avalanche summarizes one relaxation.
type Avalanche struct {
	// Size counts individual discharges. A cell discharging in two sweeps
	// counts twice.
	Size int
	// Sweeps counts the synchronous passes that discharged at least one cell.
	Sweeps int
}

// Relaxer drains a grid to stability through synchronous sweeps. Every cell
// found unstable in a sweep discharges from the same pre-sweep snapshot: its
// transfers land in a private buffer that is only merged into the grid once
// the whole sweep has been computed.
//
// A Relaxer reuses its buffers between calls and is not safe for concurrent
// use.
type Relaxer struct {
	FCrit float64
	Alpha float64
	// MaxSweeps bounds the sweeps per relaxation. Zero means unlimited.
	MaxSweeps int

	unstable  []Cell
	neighbors []Cell
	transfer  []float64
	hits      []int32
	dirty     bool
}

// NewRelaxer returns a Relaxer for the threshold and transfer fraction.
func NewRelaxer(fCrit, alpha float64, maxSweeps int) *Relaxer {
	return &Relaxer{FCrit: fCrit, Alpha: alpha, MaxSweeps: maxSweeps}
}

// Relax discharges unstable cells until none remain and reports the
// avalanche. When MaxSweeps is exceeded it stops with ErrNotStabilized and
// the partial avalanche; the grid is left mid-cascade.
func (r *Relaxer) Relax(g *StressGrid) (Avalanche, error) {
	r.prepare(len(g.data))

	var av Avalanche
	for {
		r.unstable = g.appendUnstable(r.unstable[:0], r.FCrit)
		if len(r.unstable) == 0 {
			return av, nil
		}
		if r.MaxSweeps > 0 && av.Sweeps >= r.MaxSweeps {
			return av, fmt.Errorf("%w: %d cells still unstable after %d sweeps (%d discharges)",
				ErrNotStabilized, len(r.unstable), av.Sweeps, av.Size)
		}
		av.Sweeps++
		av.Size += len(r.unstable)
		r.sweep(g)
	}
}

// Discharges reports how often each cell discharged during the last Relax,
// in row-major order. The slice is owned by the Relaxer.
func (r *Relaxer) Discharges() []int32 { return r.hits }

func (r *Relaxer) prepare(total int) {
	if len(r.transfer) != total {
		r.transfer = make([]float64, total)
		r.hits = make([]int32, total)
		r.dirty = false
		return
	}
	if r.dirty {
		clear(r.hits)
		r.dirty = false
	}
}

func (r *Relaxer) resetDischarges(total int) {
	r.dirty = true
	r.prepare(total)
}

func (r *Relaxer) sweep(g *StressGrid) {
	clear(r.transfer)
	for _, c := range r.unstable {
		idx := g.index(c)
		amount := g.data[idx] * r.Alpha
		r.neighbors = g.appendNeighbors(r.neighbors[:0], c)
		for _, nb := range r.neighbors {
			r.transfer[g.index(nb)] += amount
		}
		// The discharging cell resets fully regardless of how much of its
		// stress stayed in the lattice.
		g.data[idx] = 0
		r.hits[idx]++
	}
	for i, d := range r.transfer {
		g.data[i] += d
	}
	r.dirty = true
}
