package ofc

import (
	"fmt"
	"slices"

	"ofc-quake/internal/core"
)

// Cell addresses a grid position by 0-indexed row and column.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// neighborOffsets lists the von Neumann neighborhood as Up, Down, Left, Right.
var neighborOffsets = [4]Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// StressGrid stores per-cell stress for an N×N lattice in row-major order.
// Boundaries are open: cells on the edge have fewer than four neighbors.
type StressGrid struct {
	n    int
	data []float64
}

// NewStressGrid allocates a zeroed n×n grid.
func NewStressGrid(n int) (*StressGrid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: grid size %d must be at least 1", ErrInvalidConfig, n)
	}
	return &StressGrid{n: n, data: make([]float64, n*n)}, nil
}

// Size returns the side length of the grid.
func (g *StressGrid) Size() int { return g.n }

// Randomize fills every cell with an independent uniform draw from [0, fCrit).
func (g *StressGrid) Randomize(rng *core.RNG, fCrit float64) {
	rng.FillUniform(g.data, fCrit)
}

// Fill sets every cell to v.
func (g *StressGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Get returns the stress stored at c.
func (g *StressGrid) Get(c Cell) (float64, error) {
	if err := g.check(c); err != nil {
		return 0, err
	}
	return g.data[g.index(c)], nil
}

// Set overwrites the stress stored at c.
func (g *StressGrid) Set(c Cell, v float64) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.data[g.index(c)] = v
	return nil
}

// Neighbors returns the in-range neighbors of c in Up, Down, Left, Right order.
func (g *StressGrid) Neighbors(c Cell) ([]Cell, error) {
	if err := g.check(c); err != nil {
		return nil, err
	}
	return g.appendNeighbors(make([]Cell, 0, len(neighborOffsets)), c), nil
}

// UnstableCells returns every cell whose stress is at or above fCrit, in
// row-major order. The scan only reads the grid.
func (g *StressGrid) UnstableCells(fCrit float64) []Cell {
	return g.appendUnstable(nil, fCrit)
}

// Sum returns the total stress held by the grid.
func (g *StressGrid) Sum() float64 {
	total := 0.0
	for _, v := range g.data {
		total += v
	}
	return total
}

// Max returns the largest stress value in the grid.
func (g *StressGrid) Max() float64 {
	m := g.data[0]
	for _, v := range g.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Values returns a row-major copy of the stress values.
func (g *StressGrid) Values() []float64 { return slices.Clone(g.data) }

func (g *StressGrid) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

func (g *StressGrid) check(c Cell) error {
	if !g.inBounds(c) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrOutOfBounds, c, g.n, g.n)
	}
	return nil
}

func (g *StressGrid) index(c Cell) int { return c.Row*g.n + c.Col }

func (g *StressGrid) appendNeighbors(dst []Cell, c Cell) []Cell {
	for _, off := range neighborOffsets {
		nb := Cell{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if g.inBounds(nb) {
			dst = append(dst, nb)
		}
	}
	return dst
}

func (g *StressGrid) appendUnstable(dst []Cell, fCrit float64) []Cell {
	for r := 0; r < g.n; r++ {
		row := g.data[r*g.n : (r+1)*g.n]
		for c, v := range row {
			if v >= fCrit {
				dst = append(dst, Cell{Row: r, Col: c})
			}
		}
	}
	return dst
}
