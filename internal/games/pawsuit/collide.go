package pawsuit

import "github.com/vovakirdan/pawsuit/internal/core"

// EventKind classifies a collision outcome for one tick.
type EventKind int

const (
	// EventCaught ends the run: the cat or an obstacle reached the mouse.
	EventCaught EventKind = iota
	// EventCheese awards points for a collected cheese.
	EventCheese
	// EventVictory ends the run at the mouse hole with all cheese held.
	EventVictory
)

// GameOverCause names what ended a lost run.
type GameOverCause string

const (
	CauseCat      GameOverCause = "caught_by_cat"
	CauseObstacle GameOverCause = "hit_by_obstacle"
)

// Event is one collision result. Cause is set only for EventCaught,
// Cell only for EventCheese.
type Event struct {
	Kind  EventKind
	Cause GameOverCause
	Cell  core.Cell
}

// ResolveCollisions checks same-cell overlaps in a fixed order so the
// outcome of a tick never depends on iteration order: cat first, then
// obstacles, then cheese pickup, then the mouse hole. A terminal event
// (caught or victory) stops further checks for the tick.
//
// cheese is mutated: a collected cell is removed from the set.
func ResolveCollisions(player *Player, cat *Cat, obstacles []*Obstacle, cheese map[core.Cell]bool, hole core.Cell) []Event {
	var events []Event

	if cat.Cell == player.Cell {
		return append(events, Event{Kind: EventCaught, Cause: CauseCat})
	}
	for _, o := range obstacles {
		if o.Cell() == player.Cell {
			return append(events, Event{Kind: EventCaught, Cause: CauseObstacle})
		}
	}

	if cheese[player.Cell] {
		delete(cheese, player.Cell)
		events = append(events, Event{Kind: EventCheese, Cell: player.Cell})
	}

	if player.Cell == hole && len(cheese) == 0 {
		events = append(events, Event{Kind: EventVictory})
	}
	return events
}
