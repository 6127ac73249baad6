package sim

import (
	"math/rand"

	"github.com/vovakirdan/deepline/internal/config"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Hits  []Hit
	Ended bool // The session reached its time budget on this tick
}

// Summary is the end-of-session score line.
type Summary struct {
	Score         int
	Catches       int
	Hits          int
	Ticks         int
	ElapsedMillis int
}

// Session owns one game: its state, RNG, spawner and resolver.
// It is not safe for concurrent use; the platform drives it from one loop.
type Session struct {
	cfg      config.FishingConfig
	geo      Geometry
	catalog  *Catalog
	spawner  *Spawner
	resolver *Resolver
	state    State
	ticks    int
}

// NewSession builds a session in the NotStarted phase with a full population.
// The RNG is seeded once; restarts keep drawing from the same stream.
func NewSession(cfg config.FishingConfig, seed int64) (*Session, error) {
	catalog, err := NewCatalog(cfg.Species)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		geo:     NewGeometry(cfg),
		catalog: catalog,
	}
	s.spawner = NewSpawner(rand.New(rand.NewSource(seed)), catalog, &s.cfg)
	s.resolver = NewResolver(s.geo, s.spawner)
	s.state.Clock = NewClock(cfg.Clock.TickMillis, cfg.Clock.SessionMillis)
	s.populate()
	return s, nil
}

func (s *Session) populate() {
	s.spawner.PopulateFish(&s.state, s.cfg.Population.FishCount)
	s.spawner.PopulateHazards(&s.state)
}

// Start begins the session clock. Ignored unless NotStarted.
func (s *Session) Start() bool {
	if s.state.Phase != PhaseNotStarted {
		return false
	}
	s.state.Phase = PhaseRunning
	s.state.Clock.Reset()
	return true
}

// Restart fully resets and repopulates after a finished session.
// Ignored unless Over.
func (s *Session) Restart() bool {
	if s.state.Phase != PhaseOver {
		return false
	}
	s.state.zero()
	s.ticks = 0
	s.populate()
	return true
}

// Tick advances the session by one fixed step.
// Order: clock, depth, entity motion, collisions, feedback purge.
// Outside the Running phase it does nothing.
func (s *Session) Tick(descend bool) TickResult {
	if s.state.Phase != PhaseRunning {
		return TickResult{}
	}

	s.ticks++
	if s.state.Clock.Advance() {
		s.state.Phase = PhaseOver
		s.state.purgeFeedback(s.cfg.Clock.FeedbackMillis)
		return TickResult{Ended: true}
	}

	s.state.Depth = UpdateDepth(s.state.Depth, descend, s.cfg.Physics)
	MoveEntities(s.state.Fish, s.geo)
	MoveEntities(s.state.Hazards, s.geo)

	hits := s.resolver.Resolve(&s.state)
	s.state.purgeFeedback(s.cfg.Clock.FeedbackMillis)
	return TickResult{Hits: hits}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.state.Score
}

// Depth returns the hook depth in meters.
func (s *Session) Depth() float64 {
	return s.state.Depth
}

// Catalog returns the species table the session spawns from.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Geometry returns the resolved world layout.
func (s *Session) Geometry() Geometry {
	return s.geo
}

// Summary returns the score line for the current session.
func (s *Session) Summary() Summary {
	return Summary{
		Score:         s.state.Score,
		Catches:       s.state.Catches,
		Hits:          s.state.Hits,
		Ticks:         s.ticks,
		ElapsedMillis: s.state.Clock.Elapsed,
	}
}
