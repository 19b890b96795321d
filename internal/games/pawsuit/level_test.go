package pawsuit

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pawsuit/internal/core"
)

func validLevel() Level {
	return Level{
		ID:   "test",
		Name: "Test",
		Layout: []string{
			"#####",
			"#M.c#",
			"#..H#",
			"#####",
		},
		Patrol:             []core.Cell{core.C(2, 1), core.C(2, 2)},
		VisionRange:        3,
		SearchTimeoutTicks: 30,
	}
}

func TestValidateAcceptsGoodLevel(t *testing.T) {
	l := validLevel()
	if err := l.Validate(); err != nil {
		t.Fatalf("Valid level rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Level)
		wantCode string
	}{
		{
			name:     "empty layout",
			mutate:   func(l *Level) { l.Layout = nil },
			wantCode: "empty_layout",
		},
		{
			name:     "ragged rows",
			mutate:   func(l *Level) { l.Layout[1] = "#M.c##" },
			wantCode: "ragged_layout",
		},
		{
			name:     "unknown glyph",
			mutate:   func(l *Level) { l.Layout[2] = "#.?H#" },
			wantCode: "bad_glyph",
		},
		{
			name:     "missing spawn",
			mutate:   func(l *Level) { l.Layout[1] = "#..c#" },
			wantCode: "bad_spawn",
		},
		{
			name:     "two holes",
			mutate:   func(l *Level) { l.Layout[2] = "#.HH#" },
			wantCode: "bad_hole",
		},
		{
			name:     "no cheese",
			mutate:   func(l *Level) { l.Layout[1] = "#M..#" },
			wantCode: "no_cheese",
		},
		{
			name:     "no patrol",
			mutate:   func(l *Level) { l.Patrol = nil },
			wantCode: "no_patrol",
		},
		{
			name:     "patrol on wall",
			mutate:   func(l *Level) { l.Patrol = []core.Cell{core.C(0, 0)} },
			wantCode: "patrol_blocked",
		},
		{
			name: "obstacle on wall",
			mutate: func(l *Level) {
				l.Obstacles = []ObstacleSpawn{{Row: 0, Col: 0, DX: 1}}
			},
			wantCode: "obstacle_blocked",
		},
		{
			name: "stationary obstacle",
			mutate: func(l *Level) {
				l.Obstacles = []ObstacleSpawn{{Row: 1, Col: 2}}
			},
			wantCode: "bad_obstacle_dir",
		},
		{
			name:     "zero vision",
			mutate:   func(l *Level) { l.VisionRange = 0 },
			wantCode: "bad_vision",
		},
		{
			name:     "zero timeout",
			mutate:   func(l *Level) { l.SearchTimeoutTicks = 0 },
			wantCode: "bad_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLevel()
			tt.mutate(&l)

			err := l.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			var invalid *InvalidLevelError
			if !errors.As(err, &invalid) {
				t.Fatalf("Expected *InvalidLevelError, got %T", err)
			}
			if invalid.Code != tt.wantCode {
				t.Errorf("Expected code %q, got %q (%s)", tt.wantCode, invalid.Code, invalid.Message)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	l := validLevel()
	g, spawn, cheese, hole := l.Build()

	if g.Rows() != 4 || g.Cols() != 5 {
		t.Errorf("Expected 4x5 grid, got %dx%d", g.Rows(), g.Cols())
	}
	if spawn != (core.C(1, 1)) {
		t.Errorf("Expected spawn (1,1), got %v", spawn)
	}
	if hole != (core.C(2, 3)) {
		t.Errorf("Expected hole (2,3), got %v", hole)
	}
	if len(cheese) != 1 || !cheese[core.C(1, 3)] {
		t.Errorf("Expected one cheese at (1,3), got %v", cheese)
	}
	if g.Walkable(core.C(0, 0)) {
		t.Error("Border should be blocked")
	}
	if !g.Walkable(spawn) || !g.Walkable(hole) {
		t.Error("Spawn and hole cells must be walkable")
	}
}

func TestBuiltinLevelsValid(t *testing.T) {
	if LevelCount() == 0 {
		t.Fatal("No builtin levels")
	}
	for _, l := range Levels() {
		if err := l.Validate(); err != nil {
			t.Errorf("Builtin level %q invalid: %v", l.ID, err)
		}
	}
}

func TestBuiltinLevelsCompletable(t *testing.T) {
	// Every cheese, the hole, and all patrol waypoints must be
	// reachable from the spawn cell.
	for _, l := range Levels() {
		g, spawn, cheese, hole := l.Build()
		dist := g.Distances(spawn)

		for c := range cheese {
			if _, ok := dist[c]; !ok {
				t.Errorf("Level %q: cheese at %v unreachable from spawn", l.ID, c)
			}
		}
		if _, ok := dist[hole]; !ok {
			t.Errorf("Level %q: hole at %v unreachable from spawn", l.ID, hole)
		}
		for _, p := range l.Patrol {
			if _, ok := dist[p]; !ok {
				t.Errorf("Level %q: patrol waypoint %v unreachable", l.ID, p)
			}
		}
		for _, o := range l.Obstacles {
			if !g.Walkable(core.C(o.Row, o.Col)) {
				t.Errorf("Level %q: obstacle spawn (%d,%d) not walkable", l.ID, o.Row, o.Col)
			}
		}
	}
}

func TestGetLevelClamps(t *testing.T) {
	if GetLevel(-5).ID != builtinLevels[0].ID {
		t.Error("Negative index should clamp to first level")
	}
	if GetLevel(999).ID != builtinLevels[len(builtinLevels)-1].ID {
		t.Error("Large index should clamp to last level")
	}
}

func TestLevelNames(t *testing.T) {
	names := LevelNames()
	if len(names) != LevelCount() {
		t.Fatalf("Expected %d names, got %d", LevelCount(), len(names))
	}
	for i, n := range names {
		if n == "" {
			t.Errorf("Level %d has empty name", i)
		}
	}
}
