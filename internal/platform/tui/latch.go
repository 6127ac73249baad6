package tui

import "time"

// Default hold windows. The first press must outlast the terminal's key
// repeat delay; later repeats arrive every few tens of milliseconds.
const (
	DefaultFirstHold  = 450 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

// DescendLatch turns descend key presses into a held state.
// Terminals deliver presses and auto-repeats but no key-up event, so the
// latch stays active for a short window after each press.
type DescendLatch struct {
	firstHold  time.Duration
	repeatHold time.Duration
	until      time.Time
	sticky     bool
}

// NewDescendLatch creates a latch with the given hold windows.
func NewDescendLatch(firstHold, repeatHold time.Duration) DescendLatch {
	return DescendLatch{firstHold: firstHold, repeatHold: repeatHold}
}

// Press records a press or auto-repeat at now.
func (l *DescendLatch) Press(now time.Time) {
	if !now.Before(l.until) {
		l.until = now.Add(l.firstHold)
		return
	}
	if next := now.Add(l.repeatHold); next.After(l.until) {
		l.until = next
	}
}

// Toggle flips sticky mode and returns the new setting.
func (l *DescendLatch) Toggle() bool {
	l.sticky = !l.sticky
	return l.sticky
}

// Sticky reports whether sticky mode is on.
func (l DescendLatch) Sticky() bool {
	return l.sticky
}

// Active reports whether the hook should sink at now.
func (l DescendLatch) Active(now time.Time) bool {
	return l.sticky || now.Before(l.until)
}

// Release drops any held or sticky state.
func (l *DescendLatch) Release() {
	l.until = time.Time{}
	l.sticky = false
}
