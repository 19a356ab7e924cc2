package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished runs and the boss record",
	Long: `Display the furthest campaign runs and the recent boss duels.

Examples:
  platformer scores
  platformer scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs and duels to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printRuns(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	fmt.Println()
	if err := printDuels(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving duels: %v\n", err)
	}
}

func printRuns(store *storage.Store) error {
	runs, err := store.TopRuns(platformer.GameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Furthest Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Play 'platformer play' and see how far you get!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Level", "Outcome", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-10s  %s\n", i+1, r.LevelReached, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(platformer.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: level %d   Runs: %d   Average: %.1f\n", stats.BestLevel, stats.RunsCount, stats.AvgLevel)
	}
	return nil
}

func printDuels(store *storage.Store) error {
	wins, losses, err := store.BossRecord()
	if err != nil {
		return err
	}
	duels, err := store.RecentBossDuels(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Boss Duels (won %d, lost %d)\n", wins, losses)
	fmt.Println()
	if len(duels) == 0 {
		fmt.Println("No boss duels yet.")
		return nil
	}

	fmt.Printf("  %-5s  %-6s  %-5s  %-12s  %s\n", "Level", "Result", "X:O", "Reason", "Date")
	fmt.Printf("  %-5s  %-6s  %-5s  %-12s  %s\n", "-----", "------", "---", "------", "----")
	for _, d := range duels {
		result := "lost"
		if d.Won {
			result = "won"
		}
		fmt.Printf("  %-5d  %-6s  %-5s  %-12s  %s\n",
			d.Level, result, fmt.Sprintf("%d:%d", d.PlayerMarks, d.BossMarks), d.Reason,
			d.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
