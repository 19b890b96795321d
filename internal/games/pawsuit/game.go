// Package pawsuit implements the stealth arcade game: guide the mouse
// through a maze, collect every cheese, and reach the mouse hole without
// getting caught by the patrolling cat or the rolling obstacles.
package pawsuit

import (
	"fmt"

	"github.com/vovakirdan/pawsuit/internal/config"
	"github.com/vovakirdan/pawsuit/internal/core"
	"github.com/vovakirdan/pawsuit/internal/registry"
)

// Game implements the Pawsuit stealth game.
type Game struct {
	cfg  config.PawsuitConfig
	tick uint64

	levelIdx int
	level    Level
	grid     *Grid

	player    *Player
	cat       *Cat
	obstacles []*Obstacle
	cheese    map[core.Cell]bool
	hole      core.Cell

	catEvery   int
	obstEvery  int
	catTicker  int
	obstTicker int

	score int
	cause GameOverCause

	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	screenW    int
	screenH    int

	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool

	levelClearTicks int
}

// Package-level variables for config/difficulty (set by the CLI before Reset).
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
	customLevels       []Level
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-based). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetCustomLevels replaces the builtin campaign with externally loaded
// levels. An empty slice restores the builtin set.
func SetCustomLevels(levels []Level) {
	customLevels = levels
}

func campaignLevels() []Level {
	if len(customLevels) > 0 {
		return customLevels
	}
	return Levels()
}

// Campaign returns the active level set: custom levels when any are
// loaded, the builtin set otherwise.
func Campaign() []Level {
	return campaignLevels()
}

// New creates a new Pawsuit game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pawsuit", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pawsuit" }

// Title returns the display name.
func (g *Game) Title() string { return "Pawsuit" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadPawsuit(configPath)
	if err != nil {
		loaded = config.DefaultPawsuitConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPawsuitPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded

	g.tick = 0
	g.score = 0
	g.cause = ""
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.levelClearTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	levels := campaignLevels()
	if selectedStartLevel > 0 && selectedStartLevel <= len(levels) {
		g.levelIdx = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIdx = 0
	}

	g.loadLevel()
}

// loadLevel builds the current level and places all entities.
func (g *Game) loadLevel() {
	levels := campaignLevels()
	g.level = levels[g.levelIdx%len(levels)]

	grid, spawn, cheese, hole := g.level.Build()
	g.grid = grid
	g.cheese = cheese
	g.hole = hole
	g.player = NewPlayer(spawn)

	vision := g.level.VisionRange
	if g.cfg.Cat.VisionRange > 0 {
		vision = g.cfg.Cat.VisionRange
	}
	timeout := g.level.SearchTimeoutTicks
	if g.cfg.Cat.SearchTimeoutTicks > 0 {
		timeout = g.cfg.Cat.SearchTimeoutTicks
	}
	g.cat = NewCat(g.level.Patrol, vision, timeout, ChaseTrigger(g.cfg.Cat.Trigger))

	g.obstacles = g.obstacles[:0]
	for _, spec := range g.level.Obstacles {
		g.obstacles = append(g.obstacles,
			NewObstacle(core.C(spec.Row, spec.Col), spec.DX, spec.DY, g.cfg.Obstacles.Speed))
	}

	g.catEvery = config.CatCadence(g.cfg.Cat, g.levelIdx)
	g.obstEvery = config.ObstacleCadence(g.cfg.Obstacles, g.levelIdx)
	g.catTicker = 0
	g.obstTicker = 0
	g.levelCleared = false

	// Check if screen is too small
	requiredW := g.grid.Cols() + 2
	requiredH := g.grid.Rows() + g.hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	if g.tooSmall {
		return
	}

	// Center the map
	g.mapOffsetX = (g.screenW - g.grid.Cols()) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: 60,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 90 { // ~1.5 seconds at 60 FPS
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	var cues []core.Cue

	// Player moves first, then hazards, then collisions. The resolution
	// order is fixed so a tick's outcome never depends on map iteration.
	g.player.Move(g.grid, input.Move())

	g.obstTicker++
	if g.obstTicker >= g.obstEvery {
		g.obstTicker = 0
		for _, o := range g.obstacles {
			o.Advance(g.grid)
		}
	}

	g.catTicker++
	catMoves := g.catTicker >= g.catEvery
	if catMoves {
		g.catTicker = 0
	}
	g.cat.Update(g.grid, g.player, int(g.tick), catMoves)

	for _, ev := range ResolveCollisions(g.player, g.cat, g.obstacles, g.cheese, g.hole) {
		switch ev.Kind {
		case EventCaught:
			g.gameOver = true
			g.cause = ev.Cause
			cues = append(cues, core.CueGameOver)
		case EventCheese:
			g.score += g.cfg.Gameplay.CheesePoints
			cues = append(cues, core.CueCheeseCollected)
		case EventVictory:
			g.levelCleared = true
			g.levelClearTicks = 0
			cues = append(cues, core.CueVictory)
		}
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// advanceLevel moves to the next level, or wins the campaign after the last.
func (g *Game) advanceLevel() {
	g.levelIdx++
	if g.levelIdx >= len(campaignLevels()) {
		g.won = true
		return
	}
	g.loadLevel()
}

// Cause returns what ended the run, or empty while the mouse lives.
func (g *Game) Cause() GameOverCause { return g.cause }

// Level returns the 1-based index of the current level.
func (g *Game) Level() int { return g.levelIdx + 1 }

// CheeseLeft returns how many cheese cells remain uncollected.
func (g *Game) CheeseLeft() int { return len(g.cheese) }

// RunInfo describes the finished run for persistence.
func (g *Game) RunInfo() (levelID, outcome string, durationTicks int) {
	outcome = "victory"
	if g.gameOver {
		outcome = string(g.cause)
	}
	return g.level.ID, outcome, int(g.tick)
}

// AudioCuesEnabled reports whether the config asks for audible feedback.
func (g *Game) AudioCuesEnabled() bool { return g.cfg.Gameplay.AudioCues }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderEntities(dst)

	switch {
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIdx+1), g.level.Name)
	case g.won:
		g.renderOverlay(dst, "You Escaped!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, g.gameOverLine(), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) gameOverLine() string {
	if g.cause == CauseObstacle {
		return "Squashed!"
	}
	return "Caught!"
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Pawsuit — Score: %d  Level: %d/%d  Cheese left: %d  Cat: %s",
		g.score, g.levelIdx+1, len(campaignLevels()), len(g.cheese), g.cat.State)

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws walls, cheese, and the mouse hole.
func (g *Game) renderMap(dst *core.Screen) {
	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			cell := core.C(r, c)
			x := g.mapOffsetX + c
			y := g.mapOffsetY + r
			switch {
			case !g.grid.Walkable(cell):
				dst.SetCell(x, y, '#', core.ColorWall)
			case g.cheese[cell]:
				dst.SetCell(x, y, '*', core.ColorCheese)
			case cell == g.hole:
				dst.SetCell(x, y, 'H', core.ColorHole)
			}
		}
	}
}

// renderEntities draws obstacles, the cat, and the mouse.
// The cat's color tracks its state so the player can read it at a glance.
func (g *Game) renderEntities(dst *core.Screen) {
	for _, o := range g.obstacles {
		c := o.Cell()
		dst.SetCell(g.mapOffsetX+c.Col, g.mapOffsetY+c.Row, 'o', core.ColorObstacle)
	}

	catColor := core.ColorCatCalm
	switch g.cat.State {
	case StateChase:
		catColor = core.ColorCatChase
	case StateSearch:
		catColor = core.ColorCatSearch
	}
	dst.SetCell(g.mapOffsetX+g.cat.Cell.Col, g.mapOffsetY+g.cat.Cell.Row, 'C', catColor)

	dst.SetCell(g.mapOffsetX+g.player.Cell.Col, g.mapOffsetY+g.player.Cell.Row,
		playerGlyph(g.player.Facing), core.ColorMouse)
}

func playerGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '^'
	case core.DirDown:
		return 'v'
	case core.DirLeft:
		return '<'
	default:
		return '>'
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
