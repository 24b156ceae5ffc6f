// Package timer provides the countdown primitive that drives skill animation
// cadence and lifetime expiry. Semantics are tick-driven: the owner calls
// Tick once per simulation tick with the elapsed delta.
package timer

import (
	"fmt"
	"time"
)

// Mode selects what happens when elapsed time reaches the duration.
type Mode int

const (
	// Once clamps at the duration and stays finished.
	Once Mode = iota
	// Repeating subtracts the duration (preserving overshoot) and re-arms.
	Repeating
)

func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Repeating:
		return "repeating"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Timer counts elapsed tick time toward a fixed duration.
// time.Duration arithmetic keeps crossing counts exact: over a total elapsed
// T a Repeating timer fires exactly T/duration times (integer division).
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     Mode
	finished bool // Once only: sticky after the clamp
	times    int  // crossings during the most recent Tick call
}

// New creates a timer. A non-positive duration is a caller contract
// violation and is rejected.
func New(d time.Duration, mode Mode) (*Timer, error) {
	if d <= 0 {
		return nil, fmt.Errorf("timer: non-positive duration %v", d)
	}
	return &Timer{duration: d, mode: mode}, nil
}

// Tick advances the timer by dt. A zero or negative dt makes no progress.
//
// Once mode: elapsed clamps at the duration on the crossing call and the
// timer stays finished from then on.
//
// Repeating mode: every crossing within dt is accounted for, so a dt larger
// than the duration yields multiple firings in one call.
func (t *Timer) Tick(dt time.Duration) {
	t.times = 0
	if dt <= 0 {
		return
	}
	switch t.mode {
	case Once:
		if t.finished {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.times = 1
		}
	case Repeating:
		t.elapsed += dt
		for t.elapsed >= t.duration {
			t.elapsed -= t.duration
			t.times++
		}
	}
}

// JustFinished reports whether the most recent Tick crossed the threshold.
// It is false again on the next Tick until another crossing occurs.
func (t *Timer) JustFinished() bool {
	return t.times > 0
}

// TimesFinished returns how many times the threshold was crossed during the
// most recent Tick. Zero when nothing fired. Only Repeating timers can
// return values above one.
func (t *Timer) TimesFinished() int {
	return t.times
}

// Finished reports completion. For Once it is sticky once the duration is
// reached; for Repeating it is true only immediately after a crossing and
// is cleared implicitly by the next Tick.
func (t *Timer) Finished() bool {
	if t.mode == Once {
		return t.finished
	}
	return t.times > 0
}

func (t *Timer) Elapsed() time.Duration  { return t.elapsed }
func (t *Timer) Duration() time.Duration { return t.duration }
func (t *Timer) Mode() Mode              { return t.mode }

// Reset rewinds the timer to its initial state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.times = 0
}
