package pawsuit

import (
	"errors"

	"github.com/vovakirdan/pawsuit/internal/core"
)

// ErrOutOfBounds is returned by grid queries targeting a cell outside
// the map extents. Movement attempts to such cells are no-ops.
var ErrOutOfBounds = errors.New("pawsuit: cell out of bounds")

// Grid is the static world map: walkable and blocked cells.
// It answers placement queries and has no mutable per-tick state.
type Grid struct {
	rows    int
	cols    int
	blocked map[core.Cell]bool
}

// NewGrid creates an empty (fully walkable) grid with the given extents.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make(map[core.Cell]bool),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Block marks a cell as a wall. Out-of-bounds cells are ignored.
func (g *Grid) Block(c core.Cell) {
	if g.InBounds(c) {
		g.blocked[c] = true
	}
}

// InBounds reports whether the cell lies within the map extents.
func (g *Grid) InBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Walkable reports whether an entity may occupy the cell.
// Out-of-bounds cells are not walkable.
func (g *Grid) Walkable(c core.Cell) bool {
	return g.InBounds(c) && !g.blocked[c]
}

// neighborOffsets lists 4-directional steps in ascending (row, col)
// order, which makes every traversal below deterministic.
var neighborOffsets = [4]struct{ dr, dc int }{
	{-1, 0}, // up
	{0, -1}, // left
	{0, 1},  // right
	{1, 0},  // down
}

// Neighbors returns the walkable 4-directional neighbors of a cell in
// ascending (row, col) order. Returns ErrOutOfBounds if the queried cell
// itself lies outside the map extents.
func (g *Grid) Neighbors(c core.Cell) ([]core.Cell, error) {
	if !g.InBounds(c) {
		return nil, ErrOutOfBounds
	}

	result := make([]core.Cell, 0, 4)
	for _, off := range neighborOffsets {
		n := core.C(c.Row+off.dr, c.Col+off.dc)
		if g.Walkable(n) {
			result = append(result, n)
		}
	}
	return result, nil
}

// LineOfSight reports whether a straight line between two cells passes
// only through walkable cells. Uses integer Bresenham traversal so the
// result is exact and deterministic.
func (g *Grid) LineOfSight(a, b core.Cell) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}

	r0, c0 := a.Row, a.Col
	r1, c1 := b.Row, b.Col

	dr := core.Abs(r1 - r0)
	dc := core.Abs(c1 - c0)
	sr := 1
	if r0 > r1 {
		sr = -1
	}
	sc := 1
	if c0 > c1 {
		sc = -1
	}

	errTerm := dr - dc
	for {
		if !g.Walkable(core.C(r0, c0)) {
			return false
		}
		if r0 == r1 && c0 == c1 {
			return true
		}
		e2 := 2 * errTerm
		if e2 > -dc {
			errTerm -= dc
			r0 += sr
		}
		if e2 < dr {
			errTerm += dr
			c0 += sc
		}
	}
}

// Distances computes a BFS distance field over walkable cells from the
// given target. Cells missing from the map are unreachable.
func (g *Grid) Distances(to core.Cell) map[core.Cell]int {
	dist := make(map[core.Cell]int)
	if !g.Walkable(to) {
		return dist
	}

	dist[to] = 0
	queue := []core.Cell{to}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, off := range neighborOffsets {
			n := core.C(cur.Row+off.dr, cur.Col+off.dc)
			if !g.Walkable(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// NextStep returns the next cell on a shortest path from one cell to
// another. Among equal-shortest first steps it prefers the neighbor with
// the lowest (row, then column) index, guaranteeing determinism.
// Returns false when no path exists.
func (g *Grid) NextStep(from, to core.Cell) (core.Cell, bool) {
	if from == to {
		return from, true
	}

	dist := g.Distances(to)
	if _, reachable := dist[from]; !reachable {
		return core.Cell{}, false
	}

	best := from
	bestDist := dist[from]
	for _, off := range neighborOffsets {
		n := core.C(from.Row+off.dr, from.Col+off.dc)
		d, ok := dist[n]
		if !ok {
			continue
		}
		// Offsets are already in (row, col) order, so strict < keeps
		// the lowest-indexed neighbor among ties.
		if d < bestDist {
			best = n
			bestDist = d
		}
	}
	if best == from {
		return core.Cell{}, false
	}
	return best, true
}
