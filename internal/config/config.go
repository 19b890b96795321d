// Package config provides YAML-based game configuration loading and
// difficulty management for the pawsuit platform.
package config

// PawsuitConfig contains all tunable parameters of the stealth game.
type PawsuitConfig struct {
	Cat       CatConfig       `yaml:"cat"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// CatConfig defines cat AI parameters.
// VisionRange and SearchTimeoutTicks of 0 mean "use the level's value".
type CatConfig struct {
	VisionRange        int    `yaml:"vision_range"`
	SearchTimeoutTicks int    `yaml:"search_timeout_ticks"`
	MoveEveryTicks     int    `yaml:"move_every_ticks"`
	PerLevelSpeedup    int    `yaml:"per_level_speedup"` // ticks shaved off cadence per level index
	Trigger            string `yaml:"trigger"`           // "sight" or "movement"
}

// ObstaclesConfig defines rolling obstacle parameters.
type ObstaclesConfig struct {
	Speed           float64 `yaml:"speed"` // cells per movement step
	MoveEveryTicks  int     `yaml:"move_every_ticks"`
	PerLevelSpeedup int     `yaml:"per_level_speedup"`
}

// GameplayConfig defines scoring and feedback parameters.
type GameplayConfig struct {
	CheesePoints int  `yaml:"cheese_points"`
	AudioCues    bool `yaml:"audio_cues"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables per-level speedup.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPawsuitPreset modifies the config based on a difficulty preset.
// The preset sets movement cadences and the per-level speedup; "fixed"
// keeps normal cadences but disables speedup entirely.
func ApplyPawsuitPreset(cfg *PawsuitConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Cat.MoveEveryTicks = 14
		cfg.Obstacles.MoveEveryTicks = 8
		cfg.Cat.PerLevelSpeedup = 1
		cfg.Obstacles.PerLevelSpeedup = 0
	case DifficultyHard:
		cfg.Cat.MoveEveryTicks = 7
		cfg.Obstacles.MoveEveryTicks = 4
		cfg.Cat.PerLevelSpeedup = 2
		cfg.Obstacles.PerLevelSpeedup = 1
	case DifficultyFixed:
		cfg.Cat.PerLevelSpeedup = 0
		cfg.Obstacles.PerLevelSpeedup = 0
	}
}
