package core

import "time"

// DefaultStepsPerSecond is the continuous-run rate when none is configured.
const DefaultStepsPerSecond = 50.0

// FixedStep converts elapsed wall time into a whole number of simulation
// steps at a steady rate. Leftover time carries over to the next frame.
type FixedStep struct {
	rate        float64
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(stepsPerSecond float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(stepsPerSecond)
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(stepsPerSecond float64) {
	if stepsPerSecond <= 0 {
		stepsPerSecond = DefaultStepsPerSecond
	}
	f.rate = stepsPerSecond
	f.step = time.Duration(float64(time.Second) / stepsPerSecond)
	if f.step <= 0 {
		f.step = 1
	}
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() float64 { return f.rate }

// Period returns the duration of one step.
func (f *FixedStep) Period() time.Duration { return f.step }

// Prime fills the accumulator with exactly one step so the first frame of a
// run always advances once.
func (f *FixedStep) Prime() {
	f.accumulator = f.step
}

// Advance adds delta to the accumulator and returns how many whole steps are
// due, keeping the remainder.
func (f *FixedStep) Advance(delta time.Duration) uint64 {
	if delta > 0 {
		f.accumulator += delta
	}
	return f.drain()
}

// Drain returns the steps currently due without adding time.
func (f *FixedStep) Drain() uint64 {
	return f.drain()
}

func (f *FixedStep) drain() uint64 {
	n := uint64(f.accumulator / f.step)
	f.accumulator %= f.step
	return n
}

// Pending returns the time carried over towards the next step.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Elapsed returns the wall time since the previous call. The first call
// returns zero.
func (f *FixedStep) Elapsed() time.Duration {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return delta
}

// Reset drops any carried-over time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
}
