package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs for a game",
	Long: `Display the best runs for the specified game (default: jumper),
ranked by score and then height.

Examples:
  jumper scores
  jumper scores jumper_night --limit 20
  jumper scores --recent
  jumper scores --tui
  jumper scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the game")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "jumper"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'jumper list' to see available games)", gameID)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	heading := "Best Runs"
	load := store.TopRuns
	if flagScoresRecent {
		heading = "Recent Runs"
		load = store.RecentRuns
	}
	runs, err := load(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jumper play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-6s  %s\n", "Rank", "Score", "Height", "Landed", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-7d  %-6d  %-6s  %s\n",
			i+1,
			r.Stats.Score,
			r.Stats.MaxHeight,
			r.Stats.PlatformsLanded,
			fmt.Sprintf("%d:%02d", r.Stats.ElapsedSeconds/60, r.Stats.ElapsedSeconds%60),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Show aggregates
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Highest: %d   Runs: %d   Avg: %.1f\n",
			stats.HighScore, stats.BestHeight, stats.RunsCount, stats.AvgScore)
	}
	return nil
}
