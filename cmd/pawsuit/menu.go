package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pawsuit/internal/core"
	"github.com/vovakirdan/pawsuit/internal/games/pawsuit"
	"github.com/vovakirdan/pawsuit/internal/platform/tui"
	"github.com/vovakirdan/pawsuit/internal/registry"
	"github.com/vovakirdan/pawsuit/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive level picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a level.
After a run ends, you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Pick level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  pawsuit menu
  pawsuit menu --fps 30
  pawsuit menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom level YAML files")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := loadCustomLevels(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	pawsuit.SetConfigPath(flagConfig)
	pawsuit.SetDifficultyPreset(flagDifficulty)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		// Show picker and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to picker
			}
			break // User quit from scoreboard
		}

		if menuResult.StartLevel == 0 {
			break
		}
		pawsuit.SetStartLevel(menuResult.StartLevel)

		// Create game instance
		game, err := registry.Create("pawsuit")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each run
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to the picker
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
