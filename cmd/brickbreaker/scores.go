package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/registry"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresRuns  int
	flagScoresClear bool
	flagScoresSum   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores (bricks destroyed) and the latest runs for a mode.

Examples:
  brickbreaker scores
  brickbreaker scores rush --runs 10
  brickbreaker scores --tui
  brickbreaker scores --summary
  brickbreaker scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of top scores to show")
	scoresCmd.Flags().IntVar(&flagScoresRuns, "runs", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresSum, "summary", false, "Show totals for every mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg, err := loadConfig()
		if err != nil {
			exitf("%v", err)
		}
		rt := runtimeConfig(cfg)
		if _, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH); err != nil {
			exitf("%v", err)
		}
		return
	}

	if flagScoresSum {
		printSummary(store)
		return
	}

	modeID := "classic"
	if len(args) > 0 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'brickbreaker list' to see available modes.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			exitf("%v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", modeID)
		return
	}

	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", modeID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickbreaker play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Bricks", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(modeID, flagScoresRuns)
	if err != nil {
		exitf("retrieving runs: %v", err)
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-20s  %-5s  %-6s  %-4s  %-7s  %s\n", "Seed", "Level", "Bricks", "Lost", "Cleared", "Date")
	for _, r := range runs {
		cleared := "no"
		if r.Cleared {
			cleared = "yes"
		}
		fmt.Printf("  %-20d  %-5d  %-6d  %-4d  %-7s  %s\n",
			r.Seed, r.LevelReached, r.BricksDestroyed, r.BallsLost, cleared, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		exitf("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-5s  %-4s  %-7s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-5d  %-4d  %-7.1f  %s\n",
			st.Mode, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
