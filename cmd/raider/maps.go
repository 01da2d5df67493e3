package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raider/internal/engine"
	"github.com/vovakirdan/tui-raider/internal/registry"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available missions",
	Long:  `Shows a list of all missions known to the platform.`,
	Run:   runMaps,
}

func runMaps(cmd *cobra.Command, args []string) {
	missions := registry.List()

	if len(missions) == 0 {
		fmt.Println("No missions available.")
		return
	}

	fmt.Println("Available missions:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range missions {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %-9s  %s\n", maxIDLen, "ID", "Title", "Size", "Enemies")
	fmt.Printf("  %-*s  %-24s  %-9s  %s\n", maxIDLen, "--", "-----", "----", "-------")

	// Print missions with level details where known
	for _, m := range missions {
		size := "-"
		enemies := "-"
		if lvl := engine.LevelByID(m.ID); lvl != nil {
			size = fmt.Sprintf("%dx%d", len(lvl.Layout[0]), len(lvl.Layout))
			enemies = fmt.Sprintf("%d", len(lvl.Spawns))
		}
		fmt.Printf("  %-*s  %-24s  %-9s  %s\n", maxIDLen, m.ID, m.Title, size, enemies)
	}

	fmt.Println()
	fmt.Println("Run 'raider play <id>' to start a mission.")
}
