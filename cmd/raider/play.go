package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raider/internal/config"
	"github.com/vovakirdan/tui-raider/internal/core"
	"github.com/vovakirdan/tui-raider/internal/game"
	"github.com/vovakirdan/tui-raider/internal/platform/tui"
	"github.com/vovakirdan/tui-raider/internal/registry"
	"github.com/vovakirdan/tui-raider/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mission>",
	Short: "Play a mission",
	Long: `Start playing the specified mission.

Controls:
  W/S        - Move forward/backward
  A/D        - Strafe left/right
  Q/E        - Turn left/right
  Space      - Shoot
  P          - Pause
  R          - Restart (after clearing a sector)
  X/Ctrl+C   - Quit

Difficulty options:
  easy   - Better accuracy and extra ammo
  normal - Default balance
  hard   - Reduced accuracy and less ammo
  fixed  - Use config values exactly as written

Examples:
  raider play citadel
  raider play warrens --difficulty easy
  raider play citadel --difficulty hard
  raider play citadel --config ./my-raider.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameplayConfig loads the gameplay config, applies the difficulty
// preset and installs the resulting tunables for new missions.
func applyGameplayConfig() error {
	cfg, err := config.LoadRaider(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return presetErr
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	tun := cfg.Tunables()
	game.SetTunables(&tun)
	return nil
}

// terminalSize returns the current terminal size, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	missionID := args[0]

	// Check if mission exists
	if !registry.Exists(missionID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mission %q\n", missionID)
		fmt.Fprintln(os.Stderr, "Run 'raider maps' to see available missions.")
		os.Exit(1)
	}

	if err := applyGameplayConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create mission instance
	g, err := registry.Create(missionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mission: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the mission still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running mission: %v\n", runErr)
		os.Exit(1)
	}
}
