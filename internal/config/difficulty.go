package config

// minCadence is the fastest allowed movement cadence. Anything quicker
// would move entities nearly every tick and is unplayable.
const minCadence = 2

// CatCadence returns how many ticks pass between cat moves on the given
// level index, after per-level speedup.
func CatCadence(cfg CatConfig, levelIdx int) int {
	return cadence(cfg.MoveEveryTicks, cfg.PerLevelSpeedup, levelIdx)
}

// ObstacleCadence returns how many ticks pass between obstacle moves on
// the given level index, after per-level speedup.
func ObstacleCadence(cfg ObstaclesConfig, levelIdx int) int {
	return cadence(cfg.MoveEveryTicks, cfg.PerLevelSpeedup, levelIdx)
}

func cadence(base, speedup, levelIdx int) int {
	if levelIdx < 0 {
		levelIdx = 0
	}
	c := base - speedup*levelIdx
	if c < minCadence {
		c = minCadence
	}
	return c
}
