package pawsuit

import "github.com/vovakirdan/pawsuit/internal/core"

// Player is the mouse. It moves one cell per accepted input and tracks
// the last direction it faced for rendering.
type Player struct {
	Cell   core.Cell
	Facing core.Direction
	Moved  bool // true once the player has made any move this run
}

// NewPlayer places the mouse at its spawn cell facing right.
func NewPlayer(spawn core.Cell) *Player {
	return &Player{Cell: spawn, Facing: core.DirRight}
}

// Move attempts a one-cell step. A step into a wall or out of bounds is
// a no-op: the position is unchanged but facing still updates so the
// sprite turns toward the pressed direction. Returns true if the
// position changed.
func (p *Player) Move(g *Grid, dir core.Direction) bool {
	if dir == core.DirNone {
		return false
	}
	p.Facing = dir

	dest := p.Cell.Add(dir)
	if !g.Walkable(dest) {
		return false
	}
	p.Cell = dest
	p.Moved = true
	return true
}
