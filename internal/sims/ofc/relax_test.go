package ofc

import (
	"errors"
	"math"
	"slices"
	"testing"

	"ofc-quake/internal/core"
)

const eps = 1e-9

func mustGrid(t *testing.T, n int, fill float64, cells map[Cell]float64) *StressGrid {
	t.Helper()
	g, err := NewStressGrid(n)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(fill)
	for c, v := range cells {
		if err := g.Set(c, v); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func get(t *testing.T, g *StressGrid, c Cell) float64 {
	t.Helper()
	v, err := g.Get(c)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestRelaxSingleCenterDischarge(t *testing.T) {
	g := mustGrid(t, 3, 1, map[Cell]float64{{1, 1}: 4})
	r := NewRelaxer(4, 0.25, 0)

	av, err := r.Relax(g)
	if err != nil {
		t.Fatal(err)
	}
	if av.Size != 1 || av.Sweeps != 1 {
		t.Fatalf("avalanche = %+v, want size 1 in 1 sweep", av)
	}

	want := []float64{
		1, 2, 1,
		2, 0, 2,
		1, 2, 1,
	}
	if got := g.Values(); !slices.Equal(got, want) {
		t.Fatalf("grid after relax = %v, want %v", got, want)
	}
}

func TestRelaxCascadeAcrossSweeps(t *testing.T) {
	g := mustGrid(t, 3, 1, map[Cell]float64{{1, 1}: 4, {0, 1}: 3})
	r := NewRelaxer(4, 0.25, 0)

	av, err := r.Relax(g)
	if err != nil {
		t.Fatal(err)
	}
	if av.Size != 2 || av.Sweeps != 2 {
		t.Fatalf("avalanche = %+v, want size 2 in 2 sweeps", av)
	}
	want := []float64{
		2, 0, 2,
		2, 1, 2,
		1, 2, 1,
	}
	if got := g.Values(); !slices.Equal(got, want) {
		t.Fatalf("grid after relax = %v, want %v", got, want)
	}
}

func TestRelaxDischargesFromPreSweepSnapshot(t *testing.T) {
	g := mustGrid(t, 4, 0, map[Cell]float64{{1, 1}: 4, {1, 2}: 6})
	r := NewRelaxer(4, 0.25, 0)

	av, err := r.Relax(g)
	if err != nil {
		t.Fatal(err)
	}
	if av.Size != 2 || av.Sweeps != 1 {
		t.Fatalf("avalanche = %+v, want two simultaneous discharges", av)
	}
	// Each cell receives its partner's pre-sweep quarter, not a value
	// updated earlier in the same sweep.
	if v := get(t, g, Cell{1, 1}); v != 1.5 {
		t.Fatalf("(1,1) = %f, want 1.5", v)
	}
	if v := get(t, g, Cell{1, 2}); v != 1.0 {
		t.Fatalf("(1,2) = %f, want 1.0", v)
	}
}

func TestRelaxCountsRepeatedDischarges(t *testing.T) {
	g := mustGrid(t, 3, 3.5, map[Cell]float64{{1, 1}: 4})
	r := NewRelaxer(4, 0.25, 0)

	av, err := r.Relax(g)
	if err != nil {
		t.Fatal(err)
	}
	if av.Size != 15 || av.Sweeps != 5 {
		t.Fatalf("avalanche = %+v, want size 15 in 5 sweeps", av)
	}
	hits := r.Discharges()
	if hits[4] != 3 {
		t.Fatalf("center discharged %d times, want 3", hits[4])
	}
	want := []float64{
		2, 1, 2,
		1, 0, 1,
		2, 1, 2,
	}
	if got := g.Values(); !slices.Equal(got, want) {
		t.Fatalf("grid after relax = %v, want %v", got, want)
	}
}

func TestRelaxInteriorConservation(t *testing.T) {
	g := mustGrid(t, 5, 1, map[Cell]float64{{2, 2}: 4.4})
	before := g.Sum()

	av, err := NewRelaxer(4, 0.25, 0).Relax(g)
	if err != nil {
		t.Fatal(err)
	}
	if av.Size != 1 {
		t.Fatalf("avalanche size = %d, want 1", av.Size)
	}
	if after := g.Sum(); math.Abs(after-before) > eps {
		t.Fatalf("interior discharge changed total stress: before %f after %f", before, after)
	}
}

func TestRelaxCornerLosesHalf(t *testing.T) {
	g := mustGrid(t, 4, 1, map[Cell]float64{{0, 0}: 4})
	before := g.Sum()

	if _, err := NewRelaxer(4, 0.25, 0).Relax(g); err != nil {
		t.Fatal(err)
	}
	if lost := before - g.Sum(); math.Abs(lost-0.5*4) > eps {
		t.Fatalf("corner discharge lost %f, want %f", lost, 2.0)
	}
}

func TestRelaxStableGridIsNoop(t *testing.T) {
	g, _ := NewStressGrid(8)
	g.Randomize(core.NewRNG(3), 4)
	before := g.Values()

	r := NewRelaxer(4, 0.25, 0)
	for i := 0; i < 2; i++ {
		av, err := r.Relax(g)
		if err != nil {
			t.Fatal(err)
		}
		if av != (Avalanche{}) {
			t.Fatalf("relaxing a stable grid produced %+v", av)
		}
	}
	if !slices.Equal(before, g.Values()) {
		t.Fatal("relaxing a stable grid modified it")
	}
	for i, h := range r.Discharges() {
		if h != 0 {
			t.Fatalf("cell %d recorded %d discharges on a stable grid", i, h)
		}
	}
}

func TestRelaxSweepLimit(t *testing.T) {
	// With alpha=1 on a 2x2 lattice every discharge doubles into the
	// neighbors, so the cascade never settles.
	g := mustGrid(t, 2, 0, map[Cell]float64{{0, 0}: 4, {0, 1}: 3.5})
	r := NewRelaxer(4, 1, 10)

	av, err := r.Relax(g)
	if !errors.Is(err, ErrNotStabilized) {
		t.Fatalf("error = %v, want ErrNotStabilized", err)
	}
	if av.Sweeps != 10 {
		t.Fatalf("sweeps = %d, want 10", av.Sweeps)
	}
	if av.Size != 19 {
		t.Fatalf("size = %d, want 19", av.Size)
	}
}

func TestRelaxDischargesResetBetweenCalls(t *testing.T) {
	g := mustGrid(t, 3, 1, map[Cell]float64{{1, 1}: 4})
	r := NewRelaxer(4, 0.25, 0)
	if _, err := r.Relax(g); err != nil {
		t.Fatal(err)
	}
	if r.Discharges()[4] != 1 {
		t.Fatalf("expected center discharge to be tracked")
	}
	if _, err := r.Relax(g); err != nil {
		t.Fatal(err)
	}
	if r.Discharges()[4] != 0 {
		t.Fatalf("discharge counts should reset for each relaxation")
	}
}
