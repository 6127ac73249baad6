// Package fishing adapts the Deep Line simulation to the arcade platform.
// The player holds a key to let the hook sink, releases it to reel in,
// and scores by hooking fish while dodging hazards before time runs out.
package fishing

import (
	"math"

	"github.com/vovakirdan/deepline/internal/config"
	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/games/fishing/sim"
	"github.com/vovakirdan/deepline/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "deepline"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game wraps a simulation session behind the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.FishingConfig
	session *sim.Session
	loadErr error // Config problem that forced built-in defaults
}

// New creates a new Deep Line game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Deep Line"
}

// Reset loads configuration and builds a new session seeded from cfg.Seed.
// A broken config file falls back to the built-in defaults; the error is
// kept for the platform to report.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.loadErr = nil

	cfg, err := config.LoadFishing(configPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultFishingConfig()
	}

	session, err := sim.NewSession(cfg, rc.Seed)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultFishingConfig()
		session, _ = sim.NewSession(cfg, rc.Seed) // Built-in catalog always parses
	}

	g.cfg = cfg
	g.session = session
}

// ConfigError returns the config load error from the last Reset, if any.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Config returns the configuration the session runs with.
func (g *Game) Config() config.FishingConfig {
	return g.cfg
}

// Step applies commands and advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) {
		g.session.Start()
	}
	if in.Has(core.ActionRestart) {
		g.session.Restart()
	}

	res := g.session.Tick(in.Has(core.ActionDescend))
	return core.StepResult{
		State:  g.State(),
		Events: toEvents(res.Hits),
	}
}

func toEvents(hits []sim.Hit) []core.Event {
	if len(hits) == 0 {
		return nil
	}
	events := make([]core.Event, len(hits))
	for i, h := range hits {
		kind := core.EventPositive
		if h.Entity.Species.Kind == sim.KindHazard {
			kind = core.EventNegative
		}
		events[i] = core.Event{
			Kind:     kind,
			Label:    h.Entity.Species.Name,
			Value:    h.Applied,
			Depth:    int(math.Round(h.Depth)),
			AtMillis: h.At,
		}
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	sum := g.session.Summary()
	phase := g.session.Phase()
	return core.GameState{
		Score:    sum.Score,
		Catches:  sum.Catches,
		Hits:     sum.Hits,
		Running:  phase == sim.PhaseRunning,
		GameOver: phase == sim.PhaseOver,
	}
}

// Snapshot exposes the simulation snapshot for headless drivers.
func (g *Game) Snapshot() sim.Snapshot {
	return g.session.Snapshot()
}

// Summary returns the end-of-session score line.
func (g *Game) Summary() sim.Summary {
	return g.session.Summary()
}

// Catalog returns the species table in use.
func (g *Game) Catalog() *sim.Catalog {
	return g.session.Catalog()
}

// Register the game on package import
func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
