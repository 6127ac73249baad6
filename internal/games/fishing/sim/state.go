package sim

import "github.com/vovakirdan/deepline/internal/core"

// Phase is the session lifecycle stage.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// FeedbackKind tags transient score popups.
type FeedbackKind int

const (
	FeedbackCatch FeedbackKind = iota
	FeedbackPenalty
)

// Feedback is a short-lived score popup.
type Feedback struct {
	Kind      FeedbackKind
	Value     int // Score delta actually applied
	Species   string
	Color     core.Color
	CreatedAt int // Session millis
}

// State is the single source of truth for a session.
type State struct {
	Phase    Phase
	Score    int
	Catches  int
	Hits     int // Hazard collisions
	Depth    float64
	Clock    Clock
	Fish     []Entity
	Hazards  []Entity
	Feedback []Feedback
}

// zero clears everything except the clock configuration.
func (s *State) zero() {
	clock := s.Clock
	clock.Reset()
	*s = State{Clock: clock}
}

// purgeFeedback drops popups older than window milliseconds.
func (s *State) purgeFeedback(window int) {
	now := s.Clock.Elapsed
	kept := s.Feedback[:0]
	for _, f := range s.Feedback {
		if now-f.CreatedAt <= window {
			kept = append(kept, f)
		}
	}
	clear(s.Feedback[len(kept):])
	s.Feedback = kept
}
