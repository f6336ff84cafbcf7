package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/registry"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (classic if omitted).

Controls:
  Left/Right, A/D  - Move paddle
  Space            - Launch the ball
  P/Esc            - Pause
  R                - Restart
  B                - Back (when paused or over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options (speed ramps apply to rush only):
  easy   - More balls, wide paddle, soft steel
  normal - Default wall, rush starts at 30% speed
  hard   - Fewer balls, narrow paddle, tough steel
  fixed  - No speed progression

Examples:
  brickbreaker play
  brickbreaker play rush
  brickbreaker play --difficulty easy
  brickbreaker play --config ./my-breaker.toml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := "classic"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'brickbreaker list' to see available modes.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	game, err := registry.Create(modeID, cfg)
	if err != nil {
		exitf("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(cfg))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(cfg config.BreakerConfig) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = cfg.Gameplay.TickRate
	rt.Seed = cfg.Gameplay.Seed
	return rt
}
