package pawsuit

import "github.com/vovakirdan/pawsuit/internal/core"

// CatState is the behavioral mode of the cat.
type CatState int

const (
	// StatePatrol walks the fixed route and watches for the mouse.
	StatePatrol CatState = iota
	// StateChase pursues the mouse along shortest paths.
	StateChase
	// StateSearch heads to the last known mouse position and lingers.
	StateSearch
)

func (s CatState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateSearch:
		return "search"
	default:
		return "unknown"
	}
}

// ChaseTrigger selects what wakes the cat from patrol.
type ChaseTrigger string

const (
	// TriggerSight starts a chase only while the mouse is visible.
	TriggerSight ChaseTrigger = "sight"
	// TriggerMovement starts a permanent chase once the mouse has
	// moved at all, regardless of visibility.
	TriggerMovement ChaseTrigger = "movement"
)

// Transition records one state change of the cat FSM.
type Transition struct {
	From CatState
	To   CatState
	Tick int
}

// Cat is the pursuing AI. Perception and state transitions run every
// tick; actual movement is gated by the caller via the move flag so the
// cat's cadence can differ from the player's.
type Cat struct {
	Cell    core.Cell
	State   CatState
	Vision  int // vision range in cells
	Trigger ChaseTrigger

	route    []core.Cell
	routeIdx int

	lastKnown     core.Cell
	searchTicks   int
	searchTimeout int

	log []Transition
}

// NewCat creates a patrolling cat at the first route waypoint.
func NewCat(route []core.Cell, vision, searchTimeout int, trigger ChaseTrigger) *Cat {
	c := &Cat{
		State:         StatePatrol,
		Vision:        vision,
		Trigger:       trigger,
		route:         route,
		searchTimeout: searchTimeout,
	}
	if len(route) > 0 {
		c.Cell = route[0]
	}
	return c
}

// Transitions returns the state change log, oldest first.
func (c *Cat) Transitions() []Transition { return c.log }

func (c *Cat) transition(to CatState, tick int) {
	if c.State == to {
		return
	}
	c.log = append(c.log, Transition{From: c.State, To: to, Tick: tick})
	c.State = to
}

// Sees reports whether the mouse is within vision range with a clear
// line of sight. Range is compared on squared Euclidean distance so no
// floating point is involved.
func (c *Cat) Sees(g *Grid, player core.Cell) bool {
	if c.Cell.DistSq(player) > c.Vision*c.Vision {
		return false
	}
	return g.LineOfSight(c.Cell, player)
}

// Update advances perception, the state machine, and (when move is set)
// one cell of movement. tick is the current simulation tick, used only
// for the transition log.
func (c *Cat) Update(g *Grid, player *Player, tick int, move bool) {
	sees := c.Sees(g, player.Cell)
	if sees {
		c.lastKnown = player.Cell
	}

	switch c.State {
	case StatePatrol:
		if c.shouldChase(sees, player) {
			c.transition(StateChase, tick)
		}
	case StateChase:
		if c.Trigger == TriggerSight && !sees {
			c.transition(StateSearch, tick)
			c.searchTicks = 0
		}
	case StateSearch:
		if sees {
			c.transition(StateChase, tick)
		} else if c.Cell == c.lastKnown {
			c.searchTicks++
			if c.searchTicks >= c.searchTimeout {
				c.resumePatrol()
				c.transition(StatePatrol, tick)
			}
		}
	}

	if !move {
		return
	}

	switch c.State {
	case StatePatrol:
		c.stepPatrol(g)
	case StateChase:
		c.stepToward(g, player.Cell, tick)
	case StateSearch:
		if c.Cell != c.lastKnown {
			c.stepToward(g, c.lastKnown, tick)
		}
	}
}

func (c *Cat) shouldChase(sees bool, player *Player) bool {
	switch c.Trigger {
	case TriggerMovement:
		return player.Moved
	default:
		return sees
	}
}

// stepPatrol walks toward the current waypoint and advances to the next
// one on arrival. The route is cyclic.
func (c *Cat) stepPatrol(g *Grid) {
	if len(c.route) == 0 {
		return
	}
	target := c.route[c.routeIdx]
	if c.Cell == target {
		c.routeIdx = (c.routeIdx + 1) % len(c.route)
		target = c.route[c.routeIdx]
	}
	if next, ok := g.NextStep(c.Cell, target); ok {
		c.Cell = next
	}
}

// stepToward takes one shortest-path step to the target. If no path
// exists the cat abandons the pursuit and resumes its patrol.
func (c *Cat) stepToward(g *Grid, target core.Cell, tick int) {
	next, ok := g.NextStep(c.Cell, target)
	if !ok {
		c.resumePatrol()
		c.transition(StatePatrol, tick)
		return
	}
	if next != c.Cell {
		c.Cell = next
	}
}

// resumePatrol points the route index at the waypoint nearest to the
// cat's current cell, ties broken by lowest index.
func (c *Cat) resumePatrol() {
	c.searchTicks = 0
	if len(c.route) == 0 {
		return
	}
	bestIdx := 0
	bestDist := c.Cell.DistSq(c.route[0])
	for i := 1; i < len(c.route); i++ {
		if d := c.Cell.DistSq(c.route[i]); d < bestDist {
			bestIdx, bestDist = i, d
		}
	}
	c.routeIdx = bestIdx
}
