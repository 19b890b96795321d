package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, kept for API stability; the stealth core is seed-free
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a discrete audio cue emitted by the game core.
// The platform decides how (and whether) to map cues to actual sound;
// the core never plays audio itself.
type Cue int

const (
	CueNone Cue = iota
	CueCheeseCollected
	CueGameOver
	CueVictory
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueCheeseCollected:
		return "cheese_collected"
	case CueGameOver:
		return "game_over"
	case CueVictory:
		return "victory"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues that fired this tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
