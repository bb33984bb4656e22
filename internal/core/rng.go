package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64n returns a uniform value in [0, hi). It returns 0 when hi <= 0.
func (r *RNG) Float64n(hi float64) float64 {
	if !(hi > 0) {
		return 0
	}
	v := r.r.Float64() * hi
	if v >= hi {
		// Rounding can push the product onto hi itself.
		v = math.Nextafter(hi, 0)
	}
	return v
}

// FillUniform fills buf with independent uniform draws from [0, hi).
func (r *RNG) FillUniform(buf []float64, hi float64) {
	for i := range buf {
		buf[i] = r.Float64n(hi)
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
