package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/games/fishing"
	"github.com/vovakirdan/deepline/internal/storage"
)

var (
	flagRuns   int
	flagPolicy string
	flagLedger string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless sessions with an autopilot",
	Long: `Play full sessions without a terminal and report the results.

Run i uses seed --seed + i, so a fixed seed reproduces the whole batch.

Policies:
  seek   - Chase valuable fish, dodge hazards crossing the line
  cycle  - Sink for a second, reel in for a second, repeat

Examples:
  deepline simulate --runs 50
  deepline simulate --seed 7 --policy cycle
  deepline simulate --runs 200 --ledger ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of sessions to play")
	simulateCmd.Flags().StringVar(&flagPolicy, "policy", "seek", "Autopilot policy: seek, cycle")
	simulateCmd.Flags().StringVar(&flagLedger, "ledger", storage.MemoryPath, "Ledger database path (default keeps it in memory)")
}

func policyByName(name string) (fishing.Policy, error) {
	switch name {
	case "seek":
		return fishing.DefaultSeeker(), nil
	case "cycle":
		return fishing.DiveCycle{Dive: 60, Rise: 60}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want seek or cycle)", name)
	}
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	exitOnError("configuring logger", err)

	policy, err := policyByName(flagPolicy)
	exitOnError("selecting policy", err)
	if flagRuns <= 0 {
		exitOnError("checking runs", fmt.Errorf("--runs must be positive, got %d", flagRuns))
	}

	ledger, err := storage.OpenLedger(flagLedger)
	exitOnError("opening ledger", err)
	defer ledger.Close()

	fishing.SetConfigPath(flagConfig)
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulating", "runs", flagRuns, "policy", flagPolicy, "seed", seed)

	for i := 0; i < flagRuns; i++ {
		rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed + int64(i)}
		if err := simulateOne(ledger, policy, rc); err != nil {
			ledger.Close()
			exitOnError(fmt.Sprintf("in run %d", i+1), err)
		}
		logger.Debug("run finished", "run", i+1, "seed", rc.Seed)
	}

	printReport(ledger)
}

// simulateOne plays one session and records it in the ledger.
func simulateOne(ledger *storage.Ledger, policy fishing.Policy, rc core.RuntimeConfig) error {
	game := fishing.New()
	game.Reset(rc)
	if err := game.ConfigError(); err != nil {
		return err
	}

	id, err := ledger.BeginSession(rc.Seed)
	if err != nil {
		return err
	}
	final, err := fishing.Play(game, policy, func(events []core.Event) error {
		return ledger.Record(id, events)
	})
	if err != nil {
		return err
	}
	return ledger.FinishSession(id, final)
}

func printReport(ledger *storage.Ledger) {
	stats, err := ledger.Stats()
	exitOnError("reading stats", err)
	tallies, err := ledger.BreakdownAll()
	exitOnError("reading catch log", err)

	fmt.Printf("Sessions: %d\n", stats.Sessions)
	fmt.Printf("Score:    best %d  worst %d  mean %.1f\n", stats.HighScore, stats.LowScore, stats.AvgScore)
	fmt.Printf("Catches:  %d  Hazards hit: %d\n", stats.Catches, stats.Hits)
	fmt.Println()

	if len(tallies) == 0 {
		fmt.Println("Nothing was caught.")
		return
	}

	fmt.Printf("  %-14s  %-6s  %6s  %7s  %9s\n", "Species", "Kind", "Count", "Points", "Avg depth")
	fmt.Printf("  %-14s  %-6s  %6s  %7s  %9s\n", "-------", "----", "-----", "------", "---------")
	for _, t := range tallies {
		kind, sign := "catch", "+"
		if t.Kind == core.EventNegative.String() {
			kind, sign = "hazard", "-"
		}
		fmt.Printf("  %-14s  %-6s  %6d  %7s  %8.0fm\n", t.Species, kind, t.Count, fmt.Sprintf("%s%d", sign, t.Total), t.AvgDepth)
	}
}
