// pawsuit is a terminal stealth-chase game: sneak a mouse past a
// patrolling cat, grab every cheese, and escape through the hole.
//
// Usage:
//
//	pawsuit list              - List campaign levels
//	pawsuit play [level]      - Play, optionally starting at a level
//	pawsuit menu              - Interactive level picker
//	pawsuit serve             - Start SSH server for remote play
//	pawsuit scores            - Show high scores and run history
//	pawsuit validate <dir>    - Check custom level files
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pawsuit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/pawsuit/internal/games/pawsuit"
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
	Use:   "pawsuit",
	Short: "Pawsuit - Outrun the cat in your terminal",
	Long: `Pawsuit is a terminal stealth game. You are a mouse in a walled
pantry: collect every cheese and reach the mouse hole before the cat
catches you or a rolling obstacle flattens you.

Available commands:
  list     - Show the campaign levels
  play     - Play, optionally starting at a given level
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View high scores and run history
  validate - Check a directory of custom level files

Examples:
  pawsuit list
  pawsuit play
  pawsuit play 2 --difficulty hard
  pawsuit play --levels-dir ./my-levels
  pawsuit serve --ssh :2222
  pawsuit scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pawsuit/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
}
