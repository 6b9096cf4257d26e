package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cplxtris/internal/registry"
	"github.com/vovakirdan/cplxtris/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores for the specified mode.

Examples:
  cplxtris scores tetris
  cplxtris scores tetris_complex --scores redis
  cplxtris scores tetris --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'cplxtris list' to see available modes)", gameID)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearScores(ctx, gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Fprintf(out, "Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(ctx, gameID, storage.DefaultLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'cplxtris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-5d  %s\n",
			i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(ctx, gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
