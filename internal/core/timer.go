package core

import "time"

// FixedStep converts elapsed wall-clock time into a count of due simulation
// ticks at a steady ticks-per-second rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to Due always yields one tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
	if f.step <= 0 {
		f.step = 1
	}
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Due reports how many ticks should run at now. A backlog is capped at one
// second worth of ticks so a stalled frame does not trigger a long catch-up.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	n := int(f.accumulator / f.step)
	if n > f.tps {
		f.accumulator = 0
		return f.tps
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}
