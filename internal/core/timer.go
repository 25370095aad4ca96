package core

import "math"

// Countdown is a periodic tick counter.
// It fires on the tick its counter reaches zero and reloads to its interval.
type Countdown struct {
	interval  int
	remaining int
}

// NewCountdown creates a countdown that fires every seconds×tickRate ticks
// (at least every tick).
func NewCountdown(seconds float64, tickRate int) Countdown {
	ticks := int(math.Round(seconds * float64(tickRate)))
	if ticks < 1 {
		ticks = 1
	}
	return Countdown{interval: ticks, remaining: ticks}
}

// Tick advances the countdown by one tick and reports whether it fired.
func (c *Countdown) Tick() bool {
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = c.interval
		return true
	}
	return false
}

// Reset reloads the countdown to its full interval.
func (c *Countdown) Reset() {
	c.remaining = c.interval
}
