package pawsuit

import (
	"testing"

	"github.com/vovakirdan/pawsuit/internal/core"
)

func TestCatSpotsPlayer(t *testing.T) {
	g := openGrid(5, 5)
	cat := NewCat([]core.Cell{core.C(0, 0), core.C(0, 4)}, 5, 10, TriggerSight)
	player := NewPlayer(core.C(2, 0))

	cat.Update(g, player, 1, false)

	if cat.State != StateChase {
		t.Fatalf("Expected chase after spotting player, got %v", cat.State)
	}
	log := cat.Transitions()
	if len(log) != 1 {
		t.Fatalf("Expected 1 transition, got %d", len(log))
	}
	if log[0].From != StatePatrol || log[0].To != StateChase || log[0].Tick != 1 {
		t.Errorf("Unexpected transition %+v", log[0])
	}
}

func TestCatIgnoresHiddenPlayer(t *testing.T) {
	g := openGrid(5, 5, core.C(1, 0), core.C(1, 1))
	cat := NewCat([]core.Cell{core.C(0, 0), core.C(0, 4)}, 5, 10, TriggerSight)
	player := NewPlayer(core.C(2, 0))

	cat.Update(g, player, 1, false)

	if cat.State != StatePatrol {
		t.Errorf("Expected patrol while player is hidden, got %v", cat.State)
	}
	if len(cat.Transitions()) != 0 {
		t.Errorf("Expected empty transition log, got %v", cat.Transitions())
	}
}

func TestCatOutOfVisionRange(t *testing.T) {
	g := openGrid(10, 10)
	cat := NewCat([]core.Cell{core.C(0, 0)}, 3, 10, TriggerSight)
	player := NewPlayer(core.C(0, 9))

	cat.Update(g, player, 1, false)

	if cat.State != StatePatrol {
		t.Errorf("Expected patrol beyond vision range, got %v", cat.State)
	}
}

func TestCatChaseSearchPatrolCycle(t *testing.T) {
	g := openGrid(5, 5, core.C(2, 2))
	cat := NewCat([]core.Cell{core.C(2, 0)}, 10, 3, TriggerSight)
	player := NewPlayer(core.C(1, 1))

	// Tick 1: player visible, patrol -> chase, cat steps toward the player.
	cat.Update(g, player, 1, true)
	if cat.State != StateChase {
		t.Fatalf("Expected chase, got %v", cat.State)
	}

	// Player slips behind the wall: chase -> search toward last known cell.
	player.Cell = core.C(3, 3)
	cat.Update(g, player, 2, true)
	if cat.State != StateSearch {
		t.Fatalf("Expected search, got %v", cat.State)
	}

	// Let the cat reach the last known position and wait out the timeout.
	for tick := 3; tick <= 6; tick++ {
		cat.Update(g, player, tick, true)
	}
	if cat.State != StatePatrol {
		t.Fatalf("Expected patrol after search timeout, got %v", cat.State)
	}

	log := cat.Transitions()
	want := []Transition{
		{From: StatePatrol, To: StateChase, Tick: 1},
		{From: StateChase, To: StateSearch, Tick: 2},
	}
	if len(log) != 3 {
		t.Fatalf("Expected 3 transitions, got %d: %v", len(log), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Transition %d: expected %+v, got %+v", i, want[i], log[i])
		}
	}
	if log[2].From != StateSearch || log[2].To != StatePatrol {
		t.Errorf("Final transition should be search -> patrol, got %+v", log[2])
	}
}

func TestCatSearchReacquiresPlayer(t *testing.T) {
	g := openGrid(5, 5, core.C(2, 2))
	cat := NewCat([]core.Cell{core.C(2, 0)}, 10, 50, TriggerSight)
	player := NewPlayer(core.C(1, 1))

	cat.Update(g, player, 1, false) // chase
	player.Cell = core.C(2, 4)      // dead behind the wall from (2,0)
	cat.Update(g, player, 2, false) // search
	player.Cell = core.C(1, 1)
	cat.Update(g, player, 3, false) // player steps back into view

	if cat.State != StateChase {
		t.Errorf("Expected chase after reacquiring player, got %v", cat.State)
	}
}

func TestCatMovementTrigger(t *testing.T) {
	// Player far out of sight; with the movement trigger the chase
	// starts as soon as the player has moved at all.
	g := openGrid(10, 10)
	cat := NewCat([]core.Cell{core.C(0, 0)}, 2, 10, TriggerMovement)
	player := NewPlayer(core.C(9, 9))

	cat.Update(g, player, 1, false)
	if cat.State != StatePatrol {
		t.Fatalf("Expected patrol before first player move, got %v", cat.State)
	}

	player.Move(g, core.DirLeft)
	cat.Update(g, player, 2, false)
	if cat.State != StateChase {
		t.Errorf("Expected chase after first player move, got %v", cat.State)
	}
}

func TestCatNoPathResumesPatrol(t *testing.T) {
	// Player sealed in the far corner; a chase with no path falls back
	// to patrol within the same update.
	g := openGrid(5, 5, core.C(3, 4), core.C(4, 3))
	cat := NewCat([]core.Cell{core.C(0, 0)}, 20, 10, TriggerMovement)
	player := NewPlayer(core.C(4, 4))
	player.Moved = true

	cat.Update(g, player, 1, true)

	if cat.State != StatePatrol {
		t.Errorf("Expected patrol fallback with no path, got %v", cat.State)
	}
	log := cat.Transitions()
	if len(log) != 2 {
		t.Fatalf("Expected chase and fallback transitions, got %v", log)
	}
}

func TestCatPatrolRoute(t *testing.T) {
	g := openGrid(5, 5)
	cat := NewCat([]core.Cell{core.C(0, 0), core.C(0, 4)}, 1, 10, TriggerSight)
	player := NewPlayer(core.C(4, 4)) // out of range, never seen

	// Walk to the far waypoint and back; route is cyclic.
	for tick := 1; tick <= 8; tick++ {
		cat.Update(g, player, tick, true)
	}

	if cat.State != StatePatrol {
		t.Fatalf("Expected patrol, got %v", cat.State)
	}
	if cat.Cell != core.C(0, 0) {
		t.Errorf("Expected cat back at its start after 8 moves, got %v", cat.Cell)
	}
}

func TestCatStaysOnWalkableCells(t *testing.T) {
	g := openGrid(5, 5, core.C(1, 1), core.C(2, 2), core.C(3, 1))
	cat := NewCat([]core.Cell{core.C(0, 0), core.C(4, 4)}, 10, 5, TriggerSight)
	player := NewPlayer(core.C(4, 0))

	for tick := 1; tick <= 60; tick++ {
		cat.Update(g, player, tick, true)
		if !g.Walkable(cat.Cell) {
			t.Fatalf("Cat on unwalkable cell %v at tick %d", cat.Cell, tick)
		}
	}
}
