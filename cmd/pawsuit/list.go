package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pawsuit/internal/games/pawsuit"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaign levels",
	Long: `Shows the levels of the campaign in play order.

With --levels-dir, lists the custom levels from that directory instead.`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom level YAML files")
}

func runList(cmd *cobra.Command, args []string) {
	if err := loadCustomLevels(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	campaign := pawsuit.Campaign()

	if len(campaign) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range campaign {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-20s  %s\n", "#", maxIDLen, "ID", "Name", "Cheese")
	fmt.Printf("  %-3s  %-*s  %-20s  %s\n", "-", maxIDLen, "--", "----", "------")

	// Print levels
	for i, l := range campaign {
		fmt.Printf("  %-3d  %-*s  %-20s  %d\n", i+1, maxIDLen, l.ID, l.Name, l.CheeseCount())
	}

	fmt.Println()
	fmt.Println("Run 'pawsuit play <#>' to start at a level.")
}
