package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/storage"
)

// scriptedGame catches a Minnow every tenth running tick and ends after endAt ticks.
type scriptedGame struct {
	endAt    int
	steps    int
	descends int
	started  bool
	over     bool
	score    int
	catches  int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	*g = scriptedGame{endAt: g.endAt}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) && !g.started && !g.over {
		g.started = true
	}
	if in.Has(core.ActionRestart) && g.over {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}
	if !g.started || g.over {
		return core.StepResult{State: g.State()}
	}

	g.steps++
	if in.Has(core.ActionDescend) {
		g.descends++
	}
	var events []core.Event
	if g.steps%10 == 0 {
		g.score += 10
		g.catches++
		events = append(events, core.Event{Kind: core.EventPositive, Label: "Minnow", Value: 10, Depth: 20, AtMillis: g.steps * 16})
	}
	if g.steps >= g.endAt {
		g.over = true
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted", core.ColorCyan)
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Catches:  g.catches,
		Running:  g.started && !g.over,
		GameOver: g.over,
	}
}

func newTestModel(t *testing.T, game *scriptedGame) (Model, *storage.Ledger) {
	t.Helper()
	ledger, err := storage.OpenLedger(storage.MemoryPath)
	if err != nil {
		t.Fatalf("OpenLedger() failed: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })

	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{Ledger: ledger})
	return m, ledger
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelDescendLatch(t *testing.T) {
	game := &scriptedGame{endAt: 1000}
	m, _ := newTestModel(t, game)
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return t0 }

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg(t0))
	if !m.State().Running {
		t.Fatal("enter should start the game")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	m = send(t, m, TickMsg(t0.Add(200*time.Millisecond)))
	if game.descends != 2 {
		t.Errorf("held key should sink on both ticks, got %d", game.descends)
	}

	m = send(t, m, TickMsg(t0.Add(time.Second)))
	if game.descends != 2 {
		t.Errorf("latch should release without repeats, got %d sinking ticks", game.descends)
	}

	m = send(t, m, runeKey('t'))
	m = send(t, m, TickMsg(t0.Add(5*time.Second)))
	if game.descends != 3 {
		t.Errorf("sticky mode should sink, got %d sinking ticks", game.descends)
	}
	if !strings.Contains(m.View(), "SINKING") {
		t.Error("status line should show sticky mode")
	}
}

func TestModelPause(t *testing.T) {
	game := &scriptedGame{endAt: 1000}
	m, _ := newTestModel(t, game)
	t0 := time.Now()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg(t0))
	m = send(t, m, runeKey('p'))
	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg(t0))
	}
	if game.steps != 1 {
		t.Errorf("paused model should not step, got %d steps", game.steps)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("status line should show pause")
	}

	m = send(t, m, runeKey('p'))
	send(t, m, TickMsg(t0))
	if game.steps != 2 {
		t.Errorf("unpaused model should step, got %d steps", game.steps)
	}
}

func TestModelCatchLog(t *testing.T) {
	game := &scriptedGame{endAt: 35}
	m, ledger := newTestModel(t, game)
	t0 := time.Now()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 40 && !m.State().GameOver; i++ {
		m = send(t, m, TickMsg(t0))
	}
	if !m.State().GameOver {
		t.Fatal("scripted game should be over")
	}

	if len(m.tallies) != 1 || m.tallies[0].Species != "Minnow" || m.tallies[0].Count != 3 || m.tallies[0].Total != 30 {
		t.Fatalf("unexpected catch log %+v", m.tallies)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if view := m.View(); !strings.Contains(view, "CATCH LOG") || !strings.Contains(view, "Minnow") {
		t.Error("tab should show the catch log")
	}

	first := m.sessionID
	m = send(t, m, runeKey('r'))
	m = send(t, m, TickMsg(t0))
	if m.State().GameOver {
		t.Fatal("r should restart")
	}
	if m.showLog || m.tallies != nil {
		t.Error("restart should close the catch log")
	}
	if m.sessionID == first {
		t.Error("restart should open a new ledger session")
	}

	stats, err := ledger.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 1 || stats.HighScore != 30 {
		t.Errorf("unexpected ledger stats %+v", stats)
	}
}

func TestModelWithoutLedger(t *testing.T) {
	game := &scriptedGame{endAt: 12}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})
	t0 := time.Now()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 20; i++ {
		m = send(t, m, TickMsg(t0))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if !strings.Contains(m.View(), "Nothing on the line") {
		t.Error("catch log without a ledger should be empty")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{endAt: 1000}
	m, _ := newTestModel(t, game)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg(time.Now()))
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if !m.State().Running || game.steps != 1 {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &scriptedGame{endAt: 10})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "deep", core.ColorCyan)
	s.DrawText(5, 0, "line", core.ColorBrightYellow)
	s.DrawText(0, 1, "~~~", core.ColorBlue)

	out := RenderScreen(s)
	for _, want := range []string{"deep", "line", "~~~"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output should contain %q", want)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("expected 1 newline, got %d", n)
	}
}
