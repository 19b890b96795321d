package pawsuit

import (
	"math"

	"github.com/vovakirdan/pawsuit/internal/core"
)

// Obstacle is a rolling hazard. It moves in continuous coordinates so
// speed multipliers under a cell per tick are possible; its occupied
// cell is the rounded position. On hitting a wall it reflects the
// blocked axis elastically and never leaves the walkable area.
type Obstacle struct {
	X, Y   float64 // continuous position: X along columns, Y along rows
	VX, VY int     // direction per axis, -1, 0 or 1
	Speed  float64 // cells per movement step
}

// NewObstacle creates a rolling obstacle at the given cell moving with
// direction (dx, dy) in column/row terms.
func NewObstacle(at core.Cell, dx, dy int, speed float64) *Obstacle {
	return &Obstacle{
		X:     float64(at.Col),
		Y:     float64(at.Row),
		VX:    dx,
		VY:    dy,
		Speed: speed,
	}
}

// Cell returns the grid cell the obstacle currently occupies.
func (o *Obstacle) Cell() core.Cell {
	return core.C(int(math.Round(o.Y)), int(math.Round(o.X)))
}

// Advance moves the obstacle one step. Each axis is resolved
// independently: every cell crossed along an axis is checked in order,
// and at the first blocked one the axis velocity flips sign and the
// coordinate clamps to the last valid cell. A diagonal mover can
// bounce off a wall on one axis while continuing on the other, and a
// speed above one cell cannot tunnel through a thin wall.
func (o *Obstacle) Advance(g *Grid) {
	row := o.Cell().Row
	col := o.Cell().Col

	nx := o.X + float64(o.VX)*o.Speed
	if stop, blocked := slideTo(col, nx, func(c int) bool {
		return g.Walkable(core.C(row, c))
	}); blocked {
		o.VX = -o.VX
		o.X = float64(stop)
	} else {
		o.X = nx
	}

	curCol := int(math.Round(o.X))
	ny := o.Y + float64(o.VY)*o.Speed
	if stop, blocked := slideTo(row, ny, func(r int) bool {
		return g.Walkable(core.C(r, curCol))
	}); blocked {
		o.VY = -o.VY
		o.Y = float64(stop)
	} else {
		o.Y = ny
	}
}

// slideTo walks the integer cells between from and round(target) in
// travel order. It returns the last walkable cell and whether a
// blocked cell was hit before reaching the target.
func slideTo(from int, target float64, walkable func(int) bool) (stop int, blocked bool) {
	to := int(math.Round(target))
	step := 1
	if to < from {
		step = -1
	}
	last := from
	for c := from + step; (step > 0 && c <= to) || (step < 0 && c >= to); c += step {
		if !walkable(c) {
			return last, true
		}
		last = c
	}
	return last, false
}
