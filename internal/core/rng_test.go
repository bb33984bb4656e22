package core

import "testing"

func TestFillUniformRange(t *testing.T) {
	r := NewRNG(42)
	buf := make([]float64, 4096)
	r.FillUniform(buf, 4)
	for i, v := range buf {
		if v < 0 || v >= 4 {
			t.Fatalf("value %d = %f outside [0, 4)", i, v)
		}
	}
	if got := r.Float64n(0); got != 0 {
		t.Fatalf("Float64n(0) = %f, want 0", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(5), NewRNG(5)
	for i := 0; i < 100; i++ {
		if a.Float64n(1) != b.Float64n(1) {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}
