// brickbreaker is a terminal brick breaker: four walls of clay, steel and
// cement bricks to knock down with a ball and a paddle.
//
// Usage:
//
//	brickbreaker list              - List available modes
//	brickbreaker play [mode]       - Play a mode
//	brickbreaker menu              - Pick modes interactively
//	brickbreaker simulate          - Run a headless game with an autopilot
//	brickbreaker serve             - Start SSH server for remote play
//	brickbreaker scores [mode]     - Show high scores and recent runs
//	brickbreaker config            - Print the config schema or defaults
//
// Global flags:
//
//	--config <path>      - Custom config file (YAML or TOML)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>         - Override the tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.brickbreaker/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
	_ "github.com/vovakirdan/brick-breaker/internal/games/brickbreaker" // registers modes
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - knock down walls in your terminal",
	Long: `Brick Breaker is a terminal game: bounce the ball off your paddle and
break through four walls of clay, steel and cement bricks.

Clay breaks on the first hit. Steel only gives way now and then.
Cement cracks first and breaks on the second hit.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  simulate  - Run a headless game with an autopilot paddle
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  config    - Print the config schema or defaults

Examples:
  brickbreaker play
  brickbreaker play rush --difficulty hard
  brickbreaker simulate --seed 42 --ticks 100000
  brickbreaker serve --ssh :2222
  brickbreaker scores classic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the global flags.
func loadConfig() (config.BreakerConfig, error) {
	cfg, err := config.LoadBreaker(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyBreakerPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Gameplay.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Gameplay.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// exitf prints an error in the CLI's format and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
