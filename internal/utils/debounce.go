package utils

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single delayed execution.
//
// Every call to Trigger restarts the quiet-period timer; the supplied
// function runs exactly once, on a timer goroutine, after delay has elapsed
// with no further triggers. This is the trailing-edge debounce used to
// collapse rapid configuration updates into one persistence write.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given quiet period.
// A zero or negative delay makes every trigger fire (almost) immediately,
// which is occasionally useful in tests.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period. A pending execution
// scheduled by an earlier Trigger is cancelled first, so only the latest
// fn survives a burst.
//
// fn runs on a timer goroutine; it must do its own synchronization.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending execution. It does not wait for an execution
// that has already started. The Debouncer remains usable after Stop.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttler permits at most one action per interval (leading edge).
//
// Unlike Debouncer it never delays work: the first Allow in a window
// reports true immediately and the rest of the window reports false.
// Used to keep repeated failure logging from flooding the output.
type Throttler struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewThrottler returns a Throttler with the given minimum interval between
// permitted actions. A zero or negative interval permits every action.
func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval}
}

// Allow reports whether an action is permitted now. The first call always
// returns true; subsequent calls return true only after the interval has
// elapsed since the last permitted action.
func (t *Throttler) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if t.last.IsZero() || now.Sub(t.last) >= t.interval {
		t.last = now
		return true
	}

	return false
}
