package core

import (
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(50)
	if fs.Period() != 20*time.Millisecond {
		t.Fatalf("period = %v, expected 20ms", fs.Period())
	}

	fs.Prime()
	if n := fs.Drain(); n != 1 {
		t.Fatalf("primed accumulator yielded %d steps, expected 1", n)
	}
	if n := fs.Advance(45 * time.Millisecond); n != 2 {
		t.Fatalf("45ms yielded %d steps, expected 2", n)
	}
	if fs.Pending() != 5*time.Millisecond {
		t.Fatalf("pending = %v, expected 5ms", fs.Pending())
	}
	if n := fs.Advance(15 * time.Millisecond); n != 1 {
		t.Fatalf("carry-over yielded %d steps, expected 1", n)
	}
	if n := fs.Advance(-time.Second); n != 0 {
		t.Fatalf("negative delta yielded %d steps", n)
	}
	if n := fs.Advance(time.Second); n != 50 {
		t.Fatalf("one second yielded %d steps, expected 50", n)
	}
}

func TestFixedStepRateDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Rate() != DefaultStepsPerSecond {
		t.Fatalf("rate = %f, expected default", fs.Rate())
	}
	fs.SetRate(1000)
	if fs.Period() != time.Millisecond {
		t.Fatalf("period at 1000/s = %v", fs.Period())
	}
}

func TestFixedStepElapsed(t *testing.T) {
	fs := NewFixedStep(50)
	clock := time.Unix(100, 0)
	fs.now = func() time.Time { return clock }

	if d := fs.Elapsed(); d != 0 {
		t.Fatalf("first Elapsed = %v, expected 0", d)
	}
	clock = clock.Add(16 * time.Millisecond)
	if d := fs.Elapsed(); d != 16*time.Millisecond {
		t.Fatalf("Elapsed = %v, expected 16ms", d)
	}
}
