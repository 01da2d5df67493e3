// raider is a first-person shooter rendered entirely in the terminal.
//
// Usage:
//
//	raider maps               - List available missions
//	raider play <mission>     - Play a mission
//	raider menu               - Start menu to pick missions interactively
//	raider serve              - Start SSH server for remote play
//	raider scores <mission>   - Show run records for a mission
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.raider/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import missions to register them
	_ "github.com/vovakirdan/tui-raider/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raider",
	Short: "Raider - a first-person shooter in your terminal",
	Long: `Raider is a terminal-based first-person shooter. Walls, enemies and
weapons are drawn with nothing but text, straight into your terminal.

Available commands:
  maps     - Show all available missions
  play     - Play a specific mission directly
  menu     - Interactive mission picker menu
  serve    - Start SSH server for remote play
  scores   - View run records

Examples:
  raider maps
  raider play citadel
  raider menu
  raider serve --ssh :2222
  raider scores citadel`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raider/scores.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
