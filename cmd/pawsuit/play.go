package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pawsuit/internal/core"
	"github.com/vovakirdan/pawsuit/internal/games/pawsuit"
	"github.com/vovakirdan/pawsuit/internal/games/pawsuit/levels"
	"github.com/vovakirdan/pawsuit/internal/platform/tui"
	"github.com/vovakirdan/pawsuit/internal/registry"
	"github.com/vovakirdan/pawsuit/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start playing, optionally from a given level (1-based number or
level ID).

Controls:
  WASD/Arrows/hjkl - Move
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow cat and obstacles, mild speedup per level
  normal - Default cadences
  hard   - Fast cat and obstacles, strong speedup per level
  fixed  - Normal cadences, no per-level speedup

Examples:
  pawsuit play
  pawsuit play 2
  pawsuit play kitchen --difficulty hard
  pawsuit play --config ./my-pawsuit.yaml
  pawsuit play --levels-dir ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom level YAML files")
}

// loadCustomLevels replaces the builtin campaign when --levels-dir is set.
func loadCustomLevels() error {
	if flagLevelsDir == "" {
		return nil
	}

	loaded, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		return err
	}
	if len(loaded) == 0 {
		return fmt.Errorf("no valid levels found in %s", flagLevelsDir)
	}
	pawsuit.SetCustomLevels(loaded)
	return nil
}

// resolveStartLevel maps a level argument (number or ID) to a 1-based
// campaign position.
func resolveStartLevel(arg string) (int, error) {
	campaign := pawsuit.Campaign()

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(campaign) {
			return 0, fmt.Errorf("level %d out of range (campaign has %d levels)", n, len(campaign))
		}
		return n, nil
	}

	for i, l := range campaign {
		if l.ID == arg {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q, run 'pawsuit list' to see levels", arg)
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := loadCustomLevels(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	pawsuit.SetConfigPath(flagConfig)
	pawsuit.SetDifficultyPreset(flagDifficulty)

	if len(args) == 1 {
		start, err := resolveStartLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		pawsuit.SetStartLevel(start)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Create game instance
	game, err := registry.Create("pawsuit")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
