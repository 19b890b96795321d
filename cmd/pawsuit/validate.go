package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pawsuit/internal/games/pawsuit/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check custom level files",
	Long: `Validate a level YAML file or a directory of level files.

Each file is parsed and checked the same way the game does on load:
layout shape, glyphs, spawn and hole counts, patrol waypoints,
obstacle placement, vision and search timeout ranges.

Examples:
  pawsuit validate ./my-levels
  pawsuit validate ./my-levels/attic.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	root := args[0]

	info, err := os.Stat(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var files []string
	if info.IsDir() {
		walkErr := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext == ".yaml" || ext == ".yml" {
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", walkErr)
			os.Exit(1)
		}
	} else {
		files = []string{root}
	}

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No level files found under %s\n", root)
		os.Exit(1)
	}

	loader := levels.NewLoader(root)
	bad := 0
	for _, path := range files {
		level, err := loader.LoadFile(path)
		if err != nil {
			bad++
			fmt.Printf("FAIL  %s\n      %v\n", path, err)
			continue
		}
		fmt.Printf("ok    %s  (%s, %d cheese)\n", path, level.ID, level.CheeseCount())
	}

	fmt.Println()
	fmt.Printf("%d file(s) checked, %d invalid\n", len(files), bad)
	if bad > 0 {
		os.Exit(1)
	}
}
