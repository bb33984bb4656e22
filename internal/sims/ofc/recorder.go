package ofc

import "slices"

// Recorder accumulates per-tick avalanche sizes.
type Recorder struct {
	series     []int
	magnitudes []int
}

// NewRecorder returns a Recorder with room for the expected tick count.
func NewRecorder(capacity int) *Recorder {
	if capacity < 0 {
		capacity = 0
	}
	return &Recorder{series: make([]int, 0, capacity)}
}

// Record appends size to the time series and, when positive, to the
// magnitude sample.
func (r *Recorder) Record(size int) {
	r.series = append(r.series, size)
	if size > 0 {
		r.magnitudes = append(r.magnitudes, size)
	}
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int { return len(r.series) }

// TimeSeries returns a copy of every recorded tick in order.
func (r *Recorder) TimeSeries() []int { return slices.Clone(r.series) }

// Magnitudes returns a copy of the nonzero tick records in order.
func (r *Recorder) Magnitudes() []int { return slices.Clone(r.magnitudes) }

// Reset discards all recorded ticks.
func (r *Recorder) Reset() {
	r.series = r.series[:0]
	r.magnitudes = r.magnitudes[:0]
}
