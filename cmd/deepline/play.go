package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/deepline/internal/config"
	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/games/fishing"
	"github.com/vovakirdan/deepline/internal/platform/tui"
	"github.com/vovakirdan/deepline/internal/registry"
	"github.com/vovakirdan/deepline/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Deep Line",
	Long: `Start a fishing session in the terminal.

Controls:
  Space/Down/J  - Hold to sink the hook, release to reel in
  T             - Toggle sticky sinking
  Enter         - Start
  P/Esc         - Pause
  R             - Restart (after time is up)
  Tab           - Catch log (after time is up)
  ?             - All keys
  Q/Ctrl+C      - Quit

Examples:
  deepline play
  deepline play --seed 42
  deepline play --config ./my-deepline.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal owns the screen, so logs go to a file
	logFile, err := openLogFile(flagLogFile)
	exitOnError("opening log file", err)
	defer logFile.Close()

	logger, err := newLogger(logFile)
	exitOnError("configuring logger", err)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// A broken config still plays with the built-in defaults
	fishing.SetConfigPath(flagConfig)
	if _, cfgErr := config.LoadFishing(flagConfig); cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using built-in defaults\n", cfgErr)
		logger.Warn("config rejected", "path", flagConfig, "err", cfgErr)
	}

	game, err := registry.Create(fishing.ID)
	exitOnError("creating game", err)

	// The catch log lives for this process only
	ledger, err := storage.OpenLedger(storage.MemoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: catch log unavailable: %v\n", err)
		logger.Warn("ledger unavailable", "err", err)
		ledger = nil
	}

	final, runErr := tui.Run(game, cfg, tui.Options{Ledger: ledger, Logger: logger})

	// Close ledger before potential exit
	if ledger != nil {
		ledger.Close()
	}
	exitOnError("running game", runErr)

	fmt.Printf("Score: %d  Catches: %d  Hazards hit: %d\n", final.Score, final.Catches, final.Hits)
}
