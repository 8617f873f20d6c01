package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-dash/internal/platform/tui"
	"github.com/vovakirdan/zombie-dash/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresRuns  int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the high scores, recent runs and statistics for one difficulty
board. Each difficulty preset keeps its own board.

Examples:
  zombiedash scores
  zombiedash scores --difficulty hard
  zombiedash scores --tui
  zombiedash scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the scoreboard interactively")
	scoresCmd.Flags().IntVar(&flagScoresRuns, "runs", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the board's scores and runs")
}

func runScores(cmd *cobra.Command, args []string) {
	preset := loadPreset()
	board := string(preset)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(board); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared the %s board.\n", board)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(board, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - Zombie Dash (%s)\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'zombiedash play --difficulty %s' to set the first high score!\n", board)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	if flagScoresRuns > 0 {
		runs, err := store.RecentRuns(board, flagScoresRuns)
		if err == nil && len(runs) > 0 {
			fmt.Println()
			fmt.Println("Recent runs:")
			for _, r := range runs {
				fmt.Printf("  %s  %-11s  score %-6d  level %d->%d  deaths %d  ticks %d\n",
					r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Score,
					r.StartLevel, r.LevelReached, r.Deaths, r.Ticks)
			}
		}
	}

	// Show stats
	fmt.Println()
	if stats, err := store.GetStats(board); err == nil && stats.Runs > 0 {
		fmt.Printf("Best: %d  Runs: %d  Wins: %d  Avg: %.0f  Best level: %d\n",
			stats.HighScore, stats.Runs, stats.Wins, stats.AvgScore, stats.BestLevel)
	} else if highScore, err := store.HighScore(board); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
