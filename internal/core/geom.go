// Package core provides fundamental types and utilities for the game core.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is a discrete grid coordinate, addressed as (row, column).
type Cell struct {
	Row, Col int
}

// C creates a cell at the given row and column.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns the cell one step away in the given direction.
func (c Cell) Add(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// DistSq returns the squared Euclidean distance to another cell.
// Avoids floating point so range checks stay exact.
func (c Cell) DistSq(o Cell) int {
	dr := c.Row - o.Row
	dc := c.Col - o.Col
	return dr*dr + dc*dc
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(o Cell) int {
	return Abs(c.Row-o.Row) + Abs(c.Col-o.Col)
}

// Less orders cells by row, then column. Used for deterministic tie-breaks.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Direction is a 4-way movement direction on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, column) offset for one step in this direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
