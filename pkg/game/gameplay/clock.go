package gameplay

import "time"

// MaxTicksPerAdvance caps the ticks a single Advance returns, so a stalled
// frame does not trigger a burst of catch-up steps.
const MaxTicksPerAdvance = 250

// Clock converts elapsed wall time into whole engine ticks for backends
// that are driven by frames rather than a ticker.
type Clock struct {
	interval time.Duration
	last     time.Time
	carry    time.Duration
	started  bool
}

// NewClock creates a clock that emits one tick per interval
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Clock{interval: interval}
}

// Interval returns the tick interval
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Reset restarts the clock at now, dropping any partial tick
func (c *Clock) Reset(now time.Time) {
	c.last = now
	c.carry = 0
	c.started = true
}

// Advance returns the number of ticks elapsed since the previous call.
// The first call only starts the clock.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.Reset(now)
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}

	c.carry += elapsed
	ticks := int(c.carry / c.interval)
	c.carry -= time.Duration(ticks) * c.interval

	if ticks > MaxTicksPerAdvance {
		ticks = MaxTicksPerAdvance
		c.carry = 0
	}
	return ticks
}
