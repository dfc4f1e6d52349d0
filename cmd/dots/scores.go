package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/games/dots"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best rounds",
	Long: `Display the best finished boards: most squares first, the faster
round wins a tie.

Examples:
  dots scores
  dots scores --limit 20
  dots scores --player ann
  dots scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show one player's rounds, newest first")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded round")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRounds(dots.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	var rounds []storage.RoundResult
	title := "Best Rounds - Dots & Boxes"
	if flagScoresPlayer != "" {
		rounds, err = store.PlayerRounds(flagScoresPlayer, flagScoresLimit)
		title = fmt.Sprintf("Rounds - %s", flagScoresPlayer)
	} else {
		rounds, err = store.TopRounds(dots.GameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Complete a board with 'dots play' to get on the list!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-12s  %-5s  %-7s  %-6s  %s\n", "Rank", "Player", "Grid", "Squares", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-5s  %-7s  %-6s  %s\n", "----", "------", "----", "-------", "----", "----")

	for i, r := range rounds {
		grid := fmt.Sprintf("%dx%d", r.Width, r.Height)
		fmt.Fprintf(out, "  %-4d  %-12s  %-5s  %-7d  %-6s  %s\n",
			i+1, r.Player, grid, r.Squares, formatSecs(r.DurationSecs),
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(dots.GameID)
	if err == nil && stats.Rounds > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Rounds: %d  Players: %d  Best: %d  Average: %.1f  Fastest: %s\n",
			stats.Rounds, stats.Players, stats.BestSquares, stats.AvgSquares, formatSecs(stats.FastestSecs))
	}
	return nil
}

// formatSecs renders seconds as m:ss.
func formatSecs(secs int) string {
	if secs <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
