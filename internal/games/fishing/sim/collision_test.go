package sim

import (
	"testing"

	"github.com/vovakirdan/deepline/internal/config"
)

// collisionFixture returns a resolver and an empty state with the hook at depth.
func collisionFixture(t *testing.T, depth float64) (*Resolver, *Spawner, *State) {
	t.Helper()
	cfg := config.DefaultFishingConfig()
	sp := newTestSpawner(t, &cfg, 42)
	s := &State{
		Phase: PhaseRunning,
		Depth: depth,
		Clock: NewClock(cfg.Clock.TickMillis, cfg.Clock.SessionMillis),
	}
	return NewResolver(sp.geo, sp), sp, s
}

func placeAtHook(t *testing.T, sp *Spawner, name string, depth float64, layer int) Entity {
	t.Helper()
	def, ok := sp.catalog.Lookup(name)
	if !ok {
		t.Fatalf("species %q missing", name)
	}
	hook := sp.geo.HookPoint(depth)
	return Entity{X: hook.X, Y: hook.Y, Depth: depth, Species: def, Direction: DirRight, Speed: 1, Layer: layer}
}

func TestCatchAddsValue(t *testing.T) {
	r, sp, s := collisionFixture(t, 20)
	s.Fish = []Entity{placeAtHook(t, sp, "Minnow", 20, NoLayer)}
	s.Clock.Elapsed = 480

	hits := r.Resolve(s)

	if len(hits) != 1 || hits[0].Applied != 10 {
		t.Fatalf("expected one catch worth 10, got %+v", hits)
	}
	if s.Score != 10 || s.Catches != 1 {
		t.Errorf("score=%d catches=%d, expected 10 and 1", s.Score, s.Catches)
	}
	if len(s.Fish) != 1 {
		t.Errorf("caught fish should be replaced, got %d fish", len(s.Fish))
	}
	if s.Fish[0].X != -50 && s.Fish[0].X != 850 {
		t.Errorf("replacement should enter from an edge, got x=%v", s.Fish[0].X)
	}
	if len(s.Feedback) != 1 {
		t.Fatalf("expected one feedback entry, got %d", len(s.Feedback))
	}
	fb := s.Feedback[0]
	if fb.Kind != FeedbackCatch || fb.Value != 10 || fb.CreatedAt != 480 || fb.Species != "Minnow" {
		t.Errorf("unexpected feedback %+v", fb)
	}
}

func TestHookDepthGatesCollision(t *testing.T) {
	r, sp, s := collisionFixture(t, 100)

	// Geometrically on the hook, but the hook is below the Minnow band
	minnow := placeAtHook(t, sp, "Minnow", 100, NoLayer)
	s.Fish = []Entity{minnow}

	if hits := r.Resolve(s); len(hits) != 0 {
		t.Fatalf("hook outside band should not catch, got %+v", hits)
	}
	if s.Score != 0 || s.Catches != 0 || len(s.Fish) != 1 {
		t.Errorf("state should be unchanged: score=%d catches=%d fish=%d", s.Score, s.Catches, len(s.Fish))
	}
}

func TestOverlapRequiresDistance(t *testing.T) {
	r, sp, s := collisionFixture(t, 20)

	near := placeAtHook(t, sp, "Minnow", 20, NoLayer)
	near.X += 22.9 // size 15 + radius 8
	far := placeAtHook(t, sp, "Minnow", 20, NoLayer)
	far.X -= 23
	s.Fish = []Entity{near, far}

	hits := r.Resolve(s)
	if len(hits) != 1 {
		t.Fatalf("expected exactly one catch, got %d", len(hits))
	}
	if hits[0].Entity.X != near.X {
		t.Errorf("the nearer fish should be caught")
	}
}

func TestPenaltyClampsScore(t *testing.T) {
	r, sp, s := collisionFixture(t, 150)
	s.Score = 20
	s.Hazards = []Entity{placeAtHook(t, sp, "Sea Mine", 150, 1)}

	hits := r.Resolve(s)

	if len(hits) != 1 || hits[0].Applied != 20 {
		t.Fatalf("expected one hit applying 20, got %+v", hits)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, expected 0", s.Score)
	}
	if s.Hits != 1 {
		t.Errorf("hits = %d, expected 1", s.Hits)
	}
	if s.Feedback[0].Kind != FeedbackPenalty || s.Feedback[0].Value != 20 {
		t.Errorf("unexpected feedback %+v", s.Feedback[0])
	}
	if len(s.Hazards) != 1 {
		t.Errorf("hazard should be replaced, got %d", len(s.Hazards))
	}
}

func TestFullPenalty(t *testing.T) {
	r, sp, s := collisionFixture(t, 150)
	s.Score = 120
	s.Hazards = []Entity{placeAtHook(t, sp, "Ghost Net", 150, 1)}

	r.Resolve(s)

	if s.Score != 90 {
		t.Errorf("score = %d, expected 90", s.Score)
	}
}

func TestMultipleHitsInOneTick(t *testing.T) {
	r, sp, s := collisionFixture(t, 120)
	s.Fish = []Entity{
		placeAtHook(t, sp, "Tropical Fish", 120, NoLayer),
		placeAtHook(t, sp, "Tuna", 120, NoLayer),
	}
	s.Hazards = []Entity{placeAtHook(t, sp, "Jellyfish", 120, 0)}

	hits := r.Resolve(s)

	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
	// 25 + 50 - 20
	if s.Score != 55 {
		t.Errorf("score = %d, expected 55", s.Score)
	}
	if s.Catches != 2 || s.Hits != 1 {
		t.Errorf("catches=%d hits=%d, expected 2 and 1", s.Catches, s.Hits)
	}
	if len(s.Feedback) != 3 {
		t.Errorf("expected 3 feedback entries, got %d", len(s.Feedback))
	}
}
