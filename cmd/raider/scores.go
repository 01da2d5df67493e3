package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raider/internal/registry"
	"github.com/vovakirdan/tui-raider/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mission>",
	Short: "Show run records for a mission",
	Long: `Display the top 10 runs for the specified mission.

Examples:
  raider scores citadel
  raider scores warrens`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	missionID := args[0]

	// Check if mission exists
	if !registry.Exists(missionID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mission %q\n", missionID)
		fmt.Fprintln(os.Stderr, "Run 'raider maps' to see available missions.")
		os.Exit(1)
	}

	// Get mission title
	g, err := registry.Create(missionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mission: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(missionID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mission Records - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'raider play %s' to set the first record!\n", missionID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Kills", "Ammo", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, entry := range runs {
		result := "aborted"
		if entry.Cleared {
			result = "cleared"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-8s  %s\n",
			i+1, entry.Score, entry.Kills, entry.AmmoUsed, result, dateStr)
	}

	// Summary stats
	fmt.Println()
	stats, err := store.GetMissionStats(missionID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Printf("Best: %d  |  Runs: %d  |  Cleared: %d  |  Avg score: %.0f\n",
			stats.HighScore, stats.RunsCount, stats.Clears, stats.AvgScore)
	}
}
