package engine

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer is a restartable fixed-interval tick source
// Start on a running timer and Stop on a stopped timer are no-ops
type Timer struct {
	clock    clockwork.Clock
	interval time.Duration
	ticker   clockwork.Ticker
}

// NewTimer creates a stopped timer ticking every interval on clock
func NewTimer(clock clockwork.Clock, interval time.Duration) *Timer {
	return &Timer{
		clock:    clock,
		interval: interval,
	}
}

// Start begins ticking, the first tick arrives one interval later
func (t *Timer) Start() {
	if t.ticker != nil {
		return
	}
	t.ticker = t.clock.NewTicker(t.interval)
}

// Stop halts ticking, pending ticks are discarded
func (t *Timer) Stop() {
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	t.ticker = nil
}

// Running reports whether the timer is started
func (t *Timer) Running() bool {
	return t.ticker != nil
}

// C returns the tick channel, or nil while stopped so a select on it blocks
func (t *Timer) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.Chan()
}

// Interval returns the tick period
func (t *Timer) Interval() time.Duration {
	return t.interval
}
