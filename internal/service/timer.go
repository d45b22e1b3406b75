package service

// Countdown tracks the seconds left in a session. It never goes below zero.
type Countdown struct {
	budget    int
	remaining int
}

// NewCountdown creates a countdown starting at budget
func NewCountdown(budget int) *Countdown {
	if budget < 0 {
		budget = 0
	}
	return &Countdown{budget: budget, remaining: budget}
}

// Decrement takes one second off the clock. It reports whether anything changed.
func (c *Countdown) Decrement() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return true
}

// Reset restores the full budget
func (c *Countdown) Reset() {
	c.remaining = c.budget
}

func (c *Countdown) Remaining() int { return c.remaining }

// Expired reports whether the countdown reached zero
func (c *Countdown) Expired() bool {
	return c.remaining <= 0
}
