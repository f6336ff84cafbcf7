package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/registry"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	flagSimMode      string
	flagSimTicks     int64
	flagSimVerbose   bool
	flagSimSave      bool
	flagSimUnlimited bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot paddle",
	Long: `Run the simulation without a terminal UI. An autopilot launches the ball
and keeps the paddle under it. The run stops when every wall is destroyed,
when the last ball is lost, or after --ticks ticks.

Runs with the same config and seed are identical; the printed hash
identifies the final state of the wall.

Examples:
  brickbreaker simulate --seed 42
  brickbreaker simulate --mode rush --ticks 500000 --verbose
  brickbreaker simulate --unlimited-balls --save`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "classic", "Mode to simulate")
	simulateCmd.Flags().Int64Var(&flagSimTicks, "ticks", 1_000_000, "Maximum number of ticks")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every wall event")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
	simulateCmd.Flags().BoolVar(&flagSimUnlimited, "unlimited-balls", false, "Refill balls so the run never ends in game over")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	created, err := registry.Create(flagSimMode, cfg)
	if err != nil {
		exitf("%v", err)
	}
	game, ok := created.(*brickbreaker.Game)
	if !ok {
		exitf("mode %q cannot be simulated", flagSimMode)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	game.SetLogger(logger)

	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     cfg.Gameplay.Seed,
	})
	if err := game.Err(); err != nil {
		exitf("%v", err)
	}

	var ticks int64
	for ; ticks < flagSimTicks; ticks++ {
		if flagSimUnlimited {
			game.Wall().ResetBallCount()
		}
		game.Step(game.Autopilot())

		if phase := game.Phase(); phase == brickbreaker.StateWin || phase == brickbreaker.StateGameOver {
			break
		}
	}

	stats := game.Stats()
	logger.Info("simulation finished", "ticks", ticks, "phase", game.Phase())

	fmt.Printf("Mode:             %s\n", game.ID())
	fmt.Printf("Seed:             %d\n", stats.Seed)
	fmt.Printf("Result:           %s\n", game.Message())
	fmt.Printf("Level reached:    %d/%d\n", stats.Level, game.Wall().Levels())
	fmt.Printf("Bricks destroyed: %d\n", stats.BricksDestroyed)
	fmt.Printf("Balls lost:       %d\n", stats.BallsLost)
	fmt.Printf("Playing ticks:    %d\n", stats.Ticks)
	snap := game.Wall().Snapshot()
	fmt.Printf("Hash:             %016x\n", snap.Hash())

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if err := tui.SaveResult(store, game); err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	fmt.Println("Run saved.")
}
