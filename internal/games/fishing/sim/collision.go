package sim

import (
	"slices"

	"github.com/vovakirdan/deepline/internal/core"
)

// Hit records one hook collision resolved during a tick.
type Hit struct {
	Entity  Entity
	Applied int // Score delta actually applied, never negative
	Depth   float64
	At      int // Session millis
}

// Resolver applies hook collisions to a state.
type Resolver struct {
	geo     Geometry
	spawner *Spawner
}

// NewResolver creates a resolver that refills through spawner.
func NewResolver(geo Geometry, spawner *Spawner) *Resolver {
	return &Resolver{geo: geo, spawner: spawner}
}

// Resolve checks every fish and hazard against the hook.
// A hit needs geometric overlap and the hook's depth inside the species band.
// Lists are walked in reverse so removal keeps earlier indices valid;
// replacements are appended and not checked until the next tick.
func (r *Resolver) Resolve(s *State) []Hit {
	var hits []Hit
	hook := r.geo.HookPoint(s.Depth)

	for i := len(s.Fish) - 1; i >= 0; i-- {
		e := s.Fish[i]
		if !r.touches(e, hook, s.Depth) {
			continue
		}
		s.Score += e.Species.Value
		s.Catches++
		s.Feedback = append(s.Feedback, Feedback{
			Kind:      FeedbackCatch,
			Value:     e.Species.Value,
			Species:   e.Species.Name,
			Color:     e.Species.Color,
			CreatedAt: s.Clock.Elapsed,
		})
		hits = append(hits, Hit{Entity: e, Applied: e.Species.Value, Depth: s.Depth, At: s.Clock.Elapsed})
		s.Fish = slices.Delete(s.Fish, i, i+1)
		r.spawner.RespawnFish(s)
	}

	for i := len(s.Hazards) - 1; i >= 0; i-- {
		e := s.Hazards[i]
		if !r.touches(e, hook, s.Depth) {
			continue
		}
		applied := min(s.Score, e.Species.Value)
		s.Score -= applied
		s.Hits++
		s.Feedback = append(s.Feedback, Feedback{
			Kind:      FeedbackPenalty,
			Value:     applied,
			Species:   e.Species.Name,
			Color:     e.Species.Color,
			CreatedAt: s.Clock.Elapsed,
		})
		hits = append(hits, Hit{Entity: e, Applied: applied, Depth: s.Depth, At: s.Clock.Elapsed})
		s.Hazards = slices.Delete(s.Hazards, i, i+1)
		r.spawner.RespawnHazard(s)
	}

	return hits
}

func (r *Resolver) touches(e Entity, hook core.Vec2, depth float64) bool {
	if !e.Species.InBand(depth) {
		return false
	}
	return e.Pos().Dist(hook) < e.Species.Size+r.geo.HookRadius
}
