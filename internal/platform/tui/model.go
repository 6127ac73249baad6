package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/registry"
	"github.com/vovakirdan/deepline/internal/storage"
)

// Options carries the optional collaborators of the play model.
type Options struct {
	Ledger     *storage.Ledger // Catch ledger; nil disables the catch log
	Logger     *log.Logger     // nil discards log output
	FirstHold  time.Duration   // Descend latch window after a fresh press
	RepeatHold time.Duration   // Descend latch window after a key repeat
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	flagStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	ledger     *storage.Ledger
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	latch      DescendLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	sessionID  int64
	tallies    []storage.SpeciesTally
	summary    table.Model
	width      int
	height     int
	paused     bool
	showLog    bool
	quitting   bool
	now        func() time.Time
}

// NewModel creates a play model and resets the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.FirstHold <= 0 {
		opts.FirstHold = DefaultFirstHold
	}
	if opts.RepeatHold <= 0 {
		opts.RepeatHold = DefaultRepeatHold
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)), // Last row holds the help line
		ledger:     opts.Ledger,
		logger:     opts.Logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		latch:      NewDescendLatch(opts.FirstHold, opts.RepeatHold),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		now:        time.Now,
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.gameState = game.State()
	m.beginSession()
	m.logger.Info("game ready", "game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Summary):
		if m.gameState.GameOver {
			m.showLog = !m.showLog
		}
		return m, nil
	case key.Matches(msg, m.keys.Sticky):
		sticky := m.latch.Toggle()
		m.logger.Debug("sticky descend", "on", sticky)
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionDescend:
		m.latch.Press(m.now())
	case core.ActionStart:
		m.inputFrame.Set(core.ActionStart)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionPause:
		if m.gameState.Running {
			m.paused = !m.paused
			m.logger.Debug("pause", "paused", m.paused)
		}
	}

	return m, nil
}

// handleResize keeps the session and only resizes the screen buffer;
// the game scales its world to whatever size it is given.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	if m.gameState.GameOver {
		m.summary = newSummaryTable(m.tallies, m.height)
	}
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.latch.Active(now) {
		m.inputFrame.Set(core.ActionDescend)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.record(result.Events)

	switch {
	case !prev.Running && result.State.Running:
		m.logger.Info("session started", "session", m.sessionID)
	case !prev.GameOver && result.State.GameOver:
		m.finishSession()
	case prev.GameOver && !result.State.GameOver:
		m.logger.Info("restart")
		m.showLog = false
		m.tallies = nil
		m.beginSession()
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) beginSession() {
	if m.ledger == nil {
		return
	}
	id, err := m.ledger.BeginSession(m.config.Seed)
	if err != nil {
		m.logger.Error("ledger unavailable", "err", err)
		m.ledger = nil
		return
	}
	m.sessionID = id
}

func (m *Model) record(events []core.Event) {
	if m.ledger == nil || len(events) == 0 {
		return
	}
	if err := m.ledger.Record(m.sessionID, events); err != nil {
		m.logger.Error("cannot record events", "err", err)
	}
}

func (m *Model) finishSession() {
	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "catches", st.Catches, "hits", st.Hits)
	m.latch.Release()
	m.paused = false

	if m.ledger == nil {
		return
	}
	if err := m.ledger.FinishSession(m.sessionID, st); err != nil {
		m.logger.Error("cannot finish session", "err", err)
	}
	tallies, err := m.ledger.Breakdown(m.sessionID)
	if err != nil {
		m.logger.Error("cannot load catch log", "err", err)
	}
	m.tallies = tallies
	m.summary = newSummaryTable(tallies, m.height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showLog && m.gameState.GameOver {
		return renderSummary(m.gameState, m.summary, len(m.tallies) == 0, m.width, m.height)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// statusLine renders mode flags followed by the key help.
func (m Model) statusLine() string {
	var flags string
	if m.paused {
		flags += flagStyle.Render("PAUSED") + " "
	}
	if m.latch.Sticky() {
		flags += flagStyle.Render("SINKING") + " "
	}
	return flags + statusStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
