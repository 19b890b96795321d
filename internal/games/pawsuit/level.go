package pawsuit

import (
	"fmt"

	"github.com/vovakirdan/pawsuit/internal/core"
)

// Layout glyphs. Anything else in a layout row is rejected by Validate.
const (
	glyphWall   = '#'
	glyphFloor  = '.'
	glyphSpawn  = 'M'
	glyphHole   = 'H'
	glyphCheese = 'c'
)

// ObstacleSpawn places one rolling obstacle with its initial direction.
type ObstacleSpawn struct {
	Row, Col int
	DX, DY   int // column and row direction, -1, 0 or 1
}

// Level is a static map definition. Layout rows must be equal length;
// exactly one spawn and one hole are required.
type Level struct {
	ID                 string
	Name               string
	Layout             []string
	Patrol             []core.Cell
	Obstacles          []ObstacleSpawn
	VisionRange        int
	SearchTimeoutTicks int
}

// InvalidLevelError describes why a level definition was rejected.
type InvalidLevelError struct {
	Code    string
	Message string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level [%s]: %s", e.Code, e.Message)
}

func invalidLevel(code, format string, args ...any) *InvalidLevelError {
	return &InvalidLevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the level definition for structural errors without
// building it. Returns an *InvalidLevelError on failure.
func (l *Level) Validate() error {
	if len(l.Layout) == 0 {
		return invalidLevel("empty_layout", "level %q has no layout rows", l.ID)
	}
	width := len(l.Layout[0])
	if width == 0 {
		return invalidLevel("empty_layout", "level %q has zero-width rows", l.ID)
	}

	spawns, holes, cheeses := 0, 0, 0
	for r, row := range l.Layout {
		if len(row) != width {
			return invalidLevel("ragged_layout", "level %q row %d has length %d, want %d", l.ID, r, len(row), width)
		}
		for _, ch := range row {
			switch ch {
			case glyphWall, glyphFloor:
			case glyphCheese:
				cheeses++
			case glyphSpawn:
				spawns++
			case glyphHole:
				holes++
			default:
				return invalidLevel("bad_glyph", "level %q row %d: unknown glyph %q", l.ID, r, ch)
			}
		}
	}
	if spawns != 1 {
		return invalidLevel("bad_spawn", "level %q has %d spawn cells, want 1", l.ID, spawns)
	}
	if holes != 1 {
		return invalidLevel("bad_hole", "level %q has %d hole cells, want 1", l.ID, holes)
	}
	// A cheese-free level would make the hole active from tick one.
	if cheeses == 0 {
		return invalidLevel("no_cheese", "level %q has no cheese cells, want >= 1", l.ID)
	}

	walkable := func(c core.Cell) bool {
		return c.Row >= 0 && c.Row < len(l.Layout) &&
			c.Col >= 0 && c.Col < width &&
			l.Layout[c.Row][c.Col] != glyphWall
	}
	if len(l.Patrol) == 0 {
		return invalidLevel("no_patrol", "level %q has no patrol waypoints", l.ID)
	}
	for i, p := range l.Patrol {
		if !walkable(p) {
			return invalidLevel("patrol_blocked", "level %q patrol waypoint %d at (%d,%d) is not walkable", l.ID, i, p.Row, p.Col)
		}
	}
	for i, o := range l.Obstacles {
		if !walkable(core.C(o.Row, o.Col)) {
			return invalidLevel("obstacle_blocked", "level %q obstacle %d at (%d,%d) is not walkable", l.ID, i, o.Row, o.Col)
		}
		if o.DX < -1 || o.DX > 1 || o.DY < -1 || o.DY > 1 || (o.DX == 0 && o.DY == 0) {
			return invalidLevel("bad_obstacle_dir", "level %q obstacle %d has direction (%d,%d)", l.ID, i, o.DX, o.DY)
		}
	}
	if l.VisionRange <= 0 {
		return invalidLevel("bad_vision", "level %q vision range %d, want > 0", l.ID, l.VisionRange)
	}
	if l.SearchTimeoutTicks <= 0 {
		return invalidLevel("bad_timeout", "level %q search timeout %d, want > 0", l.ID, l.SearchTimeoutTicks)
	}
	return nil
}

// Build materializes the level into a grid plus the placed entities.
// The level must already have passed Validate.
func (l *Level) Build() (g *Grid, spawn core.Cell, cheese map[core.Cell]bool, hole core.Cell) {
	g = NewGrid(len(l.Layout), len(l.Layout[0]))
	cheese = make(map[core.Cell]bool)

	for r, row := range l.Layout {
		for c, ch := range row {
			cell := core.C(r, c)
			switch ch {
			case glyphWall:
				g.Block(cell)
			case glyphSpawn:
				spawn = cell
			case glyphHole:
				hole = cell
			case glyphCheese:
				cheese[cell] = true
			}
		}
	}
	return g, spawn, cheese, hole
}

// CheeseCount returns how many cheese cells the layout contains.
func (l *Level) CheeseCount() int {
	n := 0
	for _, row := range l.Layout {
		for _, ch := range row {
			if ch == glyphCheese {
				n++
			}
		}
	}
	return n
}

// builtinLevels are the shipped maps, ordered by difficulty.
var builtinLevels = []Level{
	{
		ID:   "pantry",
		Name: "The Pantry",
		Layout: []string{
			"################",
			"#M...........c.#",
			"#.####.#####...#",
			"#.#..#.#...#.#.#",
			"#.#c.....#.#.#.#",
			"#.####.#.#...#.#",
			"#......#.####..#",
			"#.####.#....#.##",
			"#.#c...####.#..#",
			"#.#.##....#.##.#",
			"#...#..##......#",
			"##############H#",
		},
		Patrol: []core.Cell{
			core.C(6, 1), core.C(6, 6), core.C(10, 6), core.C(10, 1),
		},
		Obstacles: []ObstacleSpawn{
			{Row: 1, Col: 8, DX: 1, DY: 0},
		},
		VisionRange:        6,
		SearchTimeoutTicks: 90,
	},
	{
		ID:   "kitchen",
		Name: "Kitchen Floor",
		Layout: []string{
			"####################",
			"#M.......#.......c.#",
			"#.#####..#..#####..#",
			"#.#...#..#..#...#..#",
			"#.#.c.#..#..#.c.#..#",
			"#.#.............#..#",
			"#.#####..#..#####..#",
			"#........#.........#",
			"#..####..#..####...#",
			"#..#c.#..#..#..#.###",
			"#..#..........c#...#",
			"#..####..#..####.#.#",
			"#........#.......#H#",
			"####################",
		},
		Patrol: []core.Cell{
			core.C(7, 1), core.C(7, 18), core.C(12, 16), core.C(12, 1),
		},
		Obstacles: []ObstacleSpawn{
			{Row: 5, Col: 10, DX: 0, DY: 1},
			{Row: 10, Col: 6, DX: 1, DY: 0},
		},
		VisionRange:        7,
		SearchTimeoutTicks: 80,
	},
	{
		ID:   "cellar",
		Name: "Dark Cellar",
		Layout: []string{
			"######################",
			"#M..#.....c#.....#...#",
			"#.#.#.####.#.###.#.#.#",
			"#.#...#c.#...#.#...#.#",
			"#.#####..#####.#####.#",
			"#.....#..#...........#",
			"#####.#..#.#########.#",
			"#c....#....#.....#...#",
			"#.#####.####.###.#.###",
			"#.#...#.#..#.#c#.#...#",
			"#.#.#...#..#.#.#.###.#",
			"#...#.####.#.#.....#.#",
			"#.###.#....#.#####.#.#",
			"#.#...#.####.....#...#",
			"#...#.....#..###.##.##",
			"###.#####.#..#c...#H##",
			"######################",
		},
		Patrol: []core.Cell{
			core.C(5, 1), core.C(5, 5), core.C(11, 3), core.C(14, 1),
		},
		Obstacles: []ObstacleSpawn{
			{Row: 5, Col: 12, DX: 1, DY: 0},
			{Row: 7, Col: 2, DX: 1, DY: 0},
			{Row: 13, Col: 14, DX: 1, DY: 0},
		},
		VisionRange:        8,
		SearchTimeoutTicks: 70,
	},
}

// Levels returns copies of the builtin level definitions.
func Levels() []Level {
	out := make([]Level, len(builtinLevels))
	copy(out, builtinLevels)
	return out
}

// LevelCount returns the number of builtin levels.
func LevelCount() int { return len(builtinLevels) }

// GetLevel returns the builtin level with the given index, clamped to
// the valid range.
func GetLevel(idx int) Level {
	idx = core.Clamp(idx, 0, len(builtinLevels)-1)
	return builtinLevels[idx]
}

// LevelNames returns the display names of the builtin levels in order.
func LevelNames() []string {
	names := make([]string, len(builtinLevels))
	for i, l := range builtinLevels {
		names[i] = l.Name
	}
	return names
}
