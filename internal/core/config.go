package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Catches  int  // Number of successful catches
	Hits     int  // Number of penalties taken
	Running  bool // Whether the session clock is ticking
	GameOver bool // Whether the game has ended
}

// EventKind tags a gameplay event as good or bad for the player.
type EventKind int

const (
	EventPositive EventKind = iota
	EventNegative
)

// String returns the storage name of the event kind.
func (k EventKind) String() string {
	if k == EventNegative {
		return "negative"
	}
	return "positive"
}

// Event describes something that happened during a single tick.
// The platform forwards events to the session ledger.
type Event struct {
	Kind     EventKind
	Label    string // What was hit (species name)
	Value    int    // Score delta actually applied, always non-negative
	Depth    int    // Hook depth at the time of the event
	AtMillis int    // Session time of the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
