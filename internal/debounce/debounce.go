// Package debounce implements a single-shot coalescing timer.
//
// A Timer holds at most one pending value. Every Start supersedes the
// previous one, so only the last value started within the delay window is
// ever fired. The timer never spawns goroutines: callers either deliver the
// returned Token back after the delay (Bubble Tea does this with tea.Tick)
// or poll Due against a Clock, which lets tests drive time by hand.
package debounce

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Token identifies one scheduled firing. Tokens from superseded or stopped
// starts never fire.
type Token struct {
	gen      uint64
	Deadline time.Time
}

// Timer coalesces values. The zero value is not usable; call New.
type Timer struct {
	delay    time.Duration
	clock    Clock
	gen      uint64
	pending  bool
	deadline time.Time
	value    string
}

// New builds a timer with the given delay. A nil clock uses the wall clock.
func New(delay time.Duration, clock Clock) Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return Timer{delay: delay, clock: clock}
}

// Delay returns the coalescing window.
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Start (re)arms the timer with value and returns the token for this arming.
func (t *Timer) Start(value string) Token {
	t.gen++
	t.pending = true
	t.value = value
	t.deadline = t.clock.Now().Add(t.delay)
	return Token{gen: t.gen, Deadline: t.deadline}
}

// Stop cancels any pending value.
func (t *Timer) Stop() {
	if !t.pending {
		return
	}
	t.gen++
	t.pending = false
	t.value = ""
}

// Pending reports whether a value is waiting to fire.
func (t *Timer) Pending() bool {
	return t.pending
}

// Fire releases the pending value when tok belongs to the latest Start.
// The caller is trusted to deliver tok no earlier than its deadline.
func (t *Timer) Fire(tok Token) (string, bool) {
	if !t.pending || tok.gen != t.gen {
		return "", false
	}
	return t.release(), true
}

// Due releases the pending value when the clock has reached the deadline.
func (t *Timer) Due() (string, bool) {
	if !t.pending || t.clock.Now().Before(t.deadline) {
		return "", false
	}
	return t.release(), true
}

func (t *Timer) release() string {
	v := t.value
	t.pending = false
	t.value = ""
	return v
}
