package pawsuit

import (
	"sort"

	"github.com/vovakirdan/pawsuit/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Level      int // 1-indexed for display
	Score      int
	CheeseLeft int
	Player     core.Cell
	Facing     core.Direction
	Cat        core.Cell
	CatState   CatState
	Obstacles  []core.Cell // spawn order
	Cheese     []core.Cell // uncollected, in (row, col) order
	Cause      GameOverCause
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	obstacles := make([]core.Cell, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = o.Cell()
	}
	cheese := make([]core.Cell, 0, len(g.cheese))
	for c := range g.cheese {
		cheese = append(cheese, c)
	}
	sort.Slice(cheese, func(i, j int) bool {
		if cheese[i].Row != cheese[j].Row {
			return cheese[i].Row < cheese[j].Row
		}
		return cheese[i].Col < cheese[j].Col
	})

	return Snapshot{
		Tick:       g.tick,
		Level:      g.levelIdx + 1,
		Score:      g.score,
		CheeseLeft: len(g.cheese),
		Player:     g.player.Cell,
		Facing:     g.player.Facing,
		Cat:        g.cat.Cell,
		CatState:   g.cat.State,
		Obstacles:  obstacles,
		Cheese:     cheese,
		Cause:      g.cause,
		State:      state,
	}
}
