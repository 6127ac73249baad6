package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/deepline/internal/config"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultFishingConfig(), seed)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// checkInvariants verifies the state properties that must hold after every tick.
func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	st := &s.state
	cfg := s.cfg

	if st.Depth < 0 || st.Depth > cfg.Physics.MaxDepth {
		t.Fatalf("depth %v outside bounds", st.Depth)
	}
	if st.Score < 0 || st.Catches < 0 {
		t.Fatalf("score %d / catches %d negative", st.Score, st.Catches)
	}
	if len(st.Fish) > cfg.Population.FishCap {
		t.Fatalf("fish %d over cap", len(st.Fish))
	}
	if len(st.Hazards) > cfg.Population.HazardCap {
		t.Fatalf("hazards %d over cap", len(st.Hazards))
	}
	counts := LayerCounts(st.Hazards, len(cfg.Population.HazardLayers))
	for i, layer := range cfg.Population.HazardLayers {
		if counts[i] > layer.Quota {
			t.Fatalf("layer %d over quota", i)
		}
	}
	for _, list := range [][]Entity{st.Fish, st.Hazards} {
		for _, e := range list {
			if e.X < -s.geo.Margin || e.X > s.geo.Width+s.geo.Margin {
				t.Fatalf("entity %s at x=%v outside wrap band", e.Species.Name, e.X)
			}
		}
	}
	for _, f := range st.Feedback {
		if st.Clock.Elapsed-f.CreatedAt > cfg.Clock.FeedbackMillis {
			t.Fatalf("stale feedback survived: %+v at %d", f, st.Clock.Elapsed)
		}
	}
}

func TestNewSessionPopulates(t *testing.T) {
	s := newTestSession(t, 1)

	if s.Phase() != PhaseNotStarted {
		t.Errorf("new session phase = %v, expected not_started", s.Phase())
	}
	if len(s.state.Fish) != 20 {
		t.Errorf("expected 20 fish, got %d", len(s.state.Fish))
	}
	if len(s.state.Hazards) != 10 {
		t.Errorf("expected 10 hazards, got %d", len(s.state.Hazards))
	}
	checkInvariants(t, s)
}

func TestTickIgnoredBeforeStart(t *testing.T) {
	s := newTestSession(t, 1)
	before := s.Snapshot()

	for i := 0; i < 10; i++ {
		s.Tick(true)
	}

	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("ticks before Start should not change state")
	}
}

func TestPhaseTransitions(t *testing.T) {
	s := newTestSession(t, 1)

	if s.Restart() {
		t.Error("Restart should be ignored before the session ends")
	}
	if !s.Start() {
		t.Fatal("Start should succeed from not_started")
	}
	if s.Start() {
		t.Error("second Start should be ignored")
	}
	if s.Restart() {
		t.Error("Restart should be ignored while running")
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("phase = %v, expected running", s.Phase())
	}
}

func TestSessionEndsAtBudget(t *testing.T) {
	s := newTestSession(t, 3)
	s.Start()

	for i := 1; i < 1875; i++ {
		if res := s.Tick(i%100 < 60); res.Ended {
			t.Fatalf("session ended early at tick %d", i)
		}
		checkInvariants(t, s)
	}

	res := s.Tick(true)
	if !res.Ended {
		t.Fatal("session should end on tick 1875")
	}
	if s.Phase() != PhaseOver {
		t.Fatalf("phase = %v, expected over", s.Phase())
	}

	snap := s.Snapshot()
	if snap.ElapsedMillis != 30000 || snap.RemainingMillis != 0 {
		t.Errorf("elapsed=%d remaining=%d", snap.ElapsedMillis, snap.RemainingMillis)
	}

	// Over is terminal and frozen
	frozen := snap.Hash()
	for i := 0; i < 50; i++ {
		if res := s.Tick(true); res.Ended || len(res.Hits) != 0 {
			t.Fatal("ticks after Over should be no-ops")
		}
	}
	after := s.Snapshot()
	if after.Hash() != frozen {
		t.Error("state changed after Over")
	}
	if s.Start() {
		t.Error("Start should be ignored when over")
	}
}

func TestRestartResetsEverything(t *testing.T) {
	s := newTestSession(t, 5)
	s.Start()
	for s.Phase() == PhaseRunning {
		s.Tick(s.state.Clock.Elapsed%4000 < 2500)
	}

	if !s.Restart() {
		t.Fatal("Restart should succeed from over")
	}

	if s.Phase() != PhaseNotStarted {
		t.Errorf("phase = %v, expected not_started", s.Phase())
	}
	sum := s.Summary()
	if sum.Score != 0 || sum.Catches != 0 || sum.Hits != 0 || sum.Ticks != 0 || sum.ElapsedMillis != 0 {
		t.Errorf("summary not reset: %+v", sum)
	}
	if s.Depth() != 0 {
		t.Errorf("depth = %v, expected 0", s.Depth())
	}
	if len(s.state.Feedback) != 0 {
		t.Errorf("feedback not cleared: %d entries", len(s.state.Feedback))
	}
	if len(s.state.Fish) != 20 || len(s.state.Hazards) != 10 {
		t.Errorf("population not restored: %d fish, %d hazards", len(s.state.Fish), len(s.state.Hazards))
	}
	if s.state.Clock.Budget != 30000 || s.state.Clock.Step != 16 {
		t.Errorf("clock configuration lost: %+v", s.state.Clock)
	}

	if !s.Start() {
		t.Error("a restarted session should start again")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, 12345)
		s.Start()
		for i := 0; i < 1500; i++ {
			s.Tick((i/90)%2 == 0)
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := newTestSession(t, 1).Snapshot()
	b := newTestSession(t, 2).Snapshot()
	if a.Hash() == b.Hash() {
		t.Error("different seeds should produce different populations")
	}
}

func TestTickDepthScenario(t *testing.T) {
	s := newTestSession(t, 9)
	s.Start()

	for i := 0; i < 100; i++ {
		s.Tick(true)
	}
	for i := 0; i < 40; i++ {
		s.Tick(false)
	}

	if s.Depth() != 140 {
		t.Errorf("depth = %v, expected 140", s.Depth())
	}
	snap := s.Snapshot()
	if snap.Depth != 140 {
		t.Errorf("snapshot depth = %d, expected 140", snap.Depth)
	}
	if math.Abs(snap.Hook.LineLength-190) > 1e-9 {
		t.Errorf("line length = %v, expected 190", snap.Hook.LineLength)
	}
}

func TestFeedbackFadesAndPurges(t *testing.T) {
	s := newTestSession(t, 11)
	s.Start()
	// Keep the hook at the surface and away from everything
	s.state.Fish = nil
	s.state.Hazards = nil
	s.state.Feedback = []Feedback{{Kind: FeedbackCatch, Value: 25, CreatedAt: 0}}

	s.Tick(false) // 16 ms
	snap := s.Snapshot()
	if len(snap.Feedback) != 1 {
		t.Fatalf("fresh feedback should survive, got %d", len(snap.Feedback))
	}
	if snap.Feedback[0].Text != "+25" {
		t.Errorf("text = %q, expected +25", snap.Feedback[0].Text)
	}
	if f := snap.Feedback[0].Fade; f <= 0.99 || f >= 1 {
		t.Errorf("fade = %v, expected just under 1", f)
	}

	for s.state.Clock.Elapsed <= 2000 {
		s.Tick(false)
	}
	if len(s.state.Feedback) != 0 {
		t.Errorf("feedback older than 2000 ms should be purged, %d left", len(s.state.Feedback))
	}
}

func TestPenaltyFeedbackText(t *testing.T) {
	s := newTestSession(t, 13)
	s.state.Feedback = []Feedback{{Kind: FeedbackPenalty, Value: 30}}

	snap := s.Snapshot()
	if snap.Feedback[0].Text != "-30" {
		t.Errorf("text = %q, expected -30", snap.Feedback[0].Text)
	}
}

func TestScoreMatchesHits(t *testing.T) {
	s := newTestSession(t, 21)
	s.Start()

	score := 0
	for s.Phase() == PhaseRunning {
		res := s.Tick(s.state.Clock.Elapsed%6000 < 3500)
		for _, h := range res.Hits {
			if h.Entity.Species.Kind == KindFish {
				score += h.Applied
			} else {
				score -= h.Applied
			}
			if !h.Entity.Species.InBand(h.Depth) {
				t.Fatalf("hit on %s at depth %v outside its band", h.Entity.Species.Name, h.Depth)
			}
		}
		if score != s.Score() {
			t.Fatalf("score drifted: tracked %d, session %d", score, s.Score())
		}
		checkInvariants(t, s)
	}
}
