package fishing

import (
	"math"

	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/games/fishing/sim"
)

// Policy decides whether the hook should sink on the next tick.
// Used by headless runs in place of a player.
type Policy interface {
	Descend(snap sim.Snapshot) bool
}

// DiveCycle sinks for Dive ticks, then reels in for Rise ticks, repeating.
type DiveCycle struct {
	Dive int
	Rise int
}

// Descend implements Policy.
func (p DiveCycle) Descend(snap sim.Snapshot) bool {
	period := p.Dive + p.Rise
	if period <= 0 {
		return false
	}
	return snap.Ticks%period < p.Dive
}

// Seeker steers the hook to the depth of the most valuable fish that is
// swimming toward the line, and pulls away from hazards about to cross it.
type Seeker struct {
	Lookahead float64 // Horizontal distance in world pixels worth considering
	Clearance float64 // Depth margin kept from approaching hazards
}

// DefaultSeeker returns a seeker tuned for the default world.
func DefaultSeeker() Seeker {
	return Seeker{Lookahead: 250, Clearance: 20}
}

// Descend implements Policy.
func (p Seeker) Descend(snap sim.Snapshot) bool {
	depth := float64(snap.Depth)

	for _, h := range snap.Hazards {
		if !approaching(h, snap.Hook.X, h.Size+p.Clearance*2) {
			continue
		}
		if math.Abs(h.Depth-depth) < p.Clearance {
			// Move away from the hazard, toward whichever side has room
			if h.Depth > depth || depth >= float64(snap.MaxDepth) {
				return false
			}
			return true
		}
	}

	target, best := -1.0, 0.0
	for _, f := range snap.Fish {
		if !approaching(f, snap.Hook.X, p.Lookahead) {
			continue
		}
		dist := math.Abs(snap.Hook.X - f.X)
		// Prefer valuable fish that arrive soon and need little travel
		reach := math.Abs(f.Depth-depth) / 2
		worth := float64(f.Value) / (1 + dist/50 + reach/50)
		if worth > best {
			target, best = f.Depth, worth
		}
	}
	if target < 0 {
		return false
	}
	return depth < target
}

// approaching reports whether e is within reach horizontally and heading
// toward the line, or already on it.
func approaching(e sim.EntityView, hookX, reach float64) bool {
	dx := hookX - e.X
	if math.Abs(dx) > reach {
		return false
	}
	return math.Abs(dx) < e.Size || dx*float64(e.Direction) > 0
}

// Play drives g from NotStarted to Over with policy p.
// record receives the events of every tick; a record error stops the run.
func Play(g *Game, p Policy, record func([]core.Event) error) (core.GameState, error) {
	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	g.Step(start)

	frame := core.NewInputFrame()
	for {
		frame.Clear()
		if p.Descend(g.Snapshot()) {
			frame.Set(core.ActionDescend)
		}
		res := g.Step(frame)
		if record != nil && len(res.Events) > 0 {
			if err := record(res.Events); err != nil {
				return res.State, err
			}
		}
		if res.State.GameOver {
			return res.State, nil
		}
	}
}
