package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tadpole-arcade/internal/registry"
	"github.com/vovakirdan/tadpole-arcade/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best runs",
	Long: `Display the best runs for a variant, or for every variant when none
is given.

Examples:
  tadpole scores
  tadpole scores tadpole_classic
  tadpole scores --recent --limit 5
  tadpole scores tadpole --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	var ids []string
	if len(args) > 0 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'tadpole list' to see available variants.")
			os.Exit(1)
		}
		ids = []string{args[0]}
	} else {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
			return
		}
		if err := store.ClearRuns(ids[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("runs cleared", "game", ids[0])
		fmt.Printf("Cleared all runs of %s.\n", ids[0])
		return
	}

	for i, id := range ids {
		if i > 0 {
			fmt.Println()
		}
		if err := printRuns(store, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			return
		}
	}
}

func printRuns(store *storage.Store, gameID string) error {
	var (
		runs []storage.Run
		err  error
	)
	heading := "Best Runs"
	if flagScoresRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, registry.Title(gameID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("Play 'tadpole play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-8s  %-12s  %s\n", "Rank", "Score", "Stage", "Coins", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "-----", "----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.Stage, r.Coins, r.Duration.Round(time.Second), player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Best stage: %d  Runs: %d  Avg: %.0f  Coins: %d  Played: %s\n",
		stats.HighScore, stats.BestStage, stats.RunsCount, stats.AvgScore,
		stats.TotalCoins, stats.PlayTime.Round(time.Second))
	return nil
}
