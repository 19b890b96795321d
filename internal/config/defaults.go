package config

import (
	_ "embed"
)

//go:embed defaults/pawsuit.yaml
var defaultPawsuitYAML []byte

// DefaultPawsuitConfig returns the default stealth game configuration.
func DefaultPawsuitConfig() PawsuitConfig {
	return PawsuitConfig{
		Cat: CatConfig{
			VisionRange:        0, // use the level's value
			SearchTimeoutTicks: 0, // use the level's value
			MoveEveryTicks:     10,
			PerLevelSpeedup:    1,
			Trigger:            "sight",
		},
		Obstacles: ObstaclesConfig{
			Speed:           0.5,
			MoveEveryTicks:  6,
			PerLevelSpeedup: 0,
		},
		Gameplay: GameplayConfig{
			CheesePoints: 10,
			AudioCues:    true,
		},
	}
}
