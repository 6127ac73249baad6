package sim

// Clock tracks elapsed session time in milliseconds.
// Time advances by a fixed step per tick, never by wall clock.
type Clock struct {
	Elapsed int
	Step    int
	Budget  int
}

// NewClock creates a clock with the given tick step and session budget.
func NewClock(step, budget int) Clock {
	return Clock{Step: step, Budget: budget}
}

// Advance moves the clock forward one tick and reports whether the budget
// has been reached. Elapsed never exceeds the budget.
func (c *Clock) Advance() bool {
	c.Elapsed += c.Step
	if c.Elapsed >= c.Budget {
		c.Elapsed = c.Budget
		return true
	}
	return false
}

// Expired reports whether the budget has been used up.
func (c Clock) Expired() bool {
	return c.Elapsed >= c.Budget
}

// Remaining returns the milliseconds left in the session.
func (c Clock) Remaining() int {
	return max(c.Budget-c.Elapsed, 0)
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.Elapsed = 0
}
