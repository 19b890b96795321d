// Package levels provides YAML level loading for Pawsuit.
// This package depends on the game package but not the other way around.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pawsuit/internal/core"
	"github.com/vovakirdan/pawsuit/internal/games/pawsuit"
)

// YAMLLevel represents the YAML structure of a level file.
type YAMLLevel struct {
	ID                 string         `yaml:"id"`
	Name               string         `yaml:"name"`
	Layout             []string       `yaml:"layout"`
	Patrol             []YAMLCell     `yaml:"patrol"`
	Obstacles          []YAMLObstacle `yaml:"obstacles,omitempty"`
	VisionRange        int            `yaml:"vision_range"`
	SearchTimeoutTicks int            `yaml:"search_timeout_ticks"`
}

// YAMLCell represents one grid coordinate.
type YAMLCell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// YAMLObstacle represents a rolling obstacle spawn.
type YAMLObstacle struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
	DX  int `yaml:"dx"`
	DY  int `yaml:"dy"`
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]pawsuit.Level, error) {
	var levels []pawsuit.Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (pawsuit.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pawsuit.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := Parse(data)
	if err != nil {
		return pawsuit.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (pawsuit.Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return pawsuit.Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return pawsuit.Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Parse parses and validates a YAML level definition.
func Parse(data []byte) (pawsuit.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return pawsuit.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	patrol := make([]core.Cell, len(yl.Patrol))
	for i, p := range yl.Patrol {
		patrol[i] = core.C(p.Row, p.Col)
	}
	obstacles := make([]pawsuit.ObstacleSpawn, len(yl.Obstacles))
	for i, o := range yl.Obstacles {
		obstacles[i] = pawsuit.ObstacleSpawn{Row: o.Row, Col: o.Col, DX: o.DX, DY: o.DY}
	}

	level := pawsuit.Level{
		ID:                 yl.ID,
		Name:               yl.Name,
		Layout:             yl.Layout,
		Patrol:             patrol,
		Obstacles:          obstacles,
		VisionRange:        yl.VisionRange,
		SearchTimeoutTicks: yl.SearchTimeoutTicks,
	}
	if err := level.Validate(); err != nil {
		return pawsuit.Level{}, err
	}
	return level, nil
}
