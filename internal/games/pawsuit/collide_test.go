package pawsuit

import (
	"testing"

	"github.com/vovakirdan/pawsuit/internal/core"
)

func TestCatCatchBeatsCheese(t *testing.T) {
	player := NewPlayer(core.C(1, 1))
	cat := NewCat([]core.Cell{core.C(1, 1)}, 5, 10, TriggerSight)
	cheese := map[core.Cell]bool{core.C(1, 1): true}

	events := ResolveCollisions(player, cat, nil, cheese, core.C(4, 4))

	if len(events) != 1 || events[0].Kind != EventCaught {
		t.Fatalf("Expected single caught event, got %v", events)
	}
	if events[0].Cause != CauseCat {
		t.Errorf("Expected cause %q, got %q", CauseCat, events[0].Cause)
	}
	if !cheese[core.C(1, 1)] {
		t.Error("Cheese should not be collected on the tick the cat strikes")
	}
}

func TestObstacleCatch(t *testing.T) {
	player := NewPlayer(core.C(2, 2))
	cat := NewCat([]core.Cell{core.C(0, 0)}, 5, 10, TriggerSight)
	obstacle := NewObstacle(core.C(2, 2), 1, 0, 1.0)

	events := ResolveCollisions(player, cat, []*Obstacle{obstacle}, map[core.Cell]bool{}, core.C(4, 4))

	if len(events) != 1 || events[0].Kind != EventCaught {
		t.Fatalf("Expected single caught event, got %v", events)
	}
	if events[0].Cause != CauseObstacle {
		t.Errorf("Expected cause %q, got %q", CauseObstacle, events[0].Cause)
	}
}

func TestCheesePickup(t *testing.T) {
	player := NewPlayer(core.C(1, 2))
	cat := NewCat([]core.Cell{core.C(0, 0)}, 5, 10, TriggerSight)
	cheese := map[core.Cell]bool{core.C(1, 2): true, core.C(3, 3): true}

	events := ResolveCollisions(player, cat, nil, cheese, core.C(4, 4))

	if len(events) != 1 || events[0].Kind != EventCheese {
		t.Fatalf("Expected single cheese event, got %v", events)
	}
	if events[0].Cell != (core.C(1, 2)) {
		t.Errorf("Expected cheese cell (1,2), got %v", events[0].Cell)
	}
	if cheese[core.C(1, 2)] {
		t.Error("Collected cheese should be removed")
	}
	if !cheese[core.C(3, 3)] {
		t.Error("Remaining cheese should stay")
	}
}

func TestNoVictoryWithCheeseLeft(t *testing.T) {
	hole := core.C(4, 4)
	player := NewPlayer(hole)
	cat := NewCat([]core.Cell{core.C(0, 0)}, 5, 10, TriggerSight)
	cheese := map[core.Cell]bool{core.C(3, 3): true}

	events := ResolveCollisions(player, cat, nil, cheese, hole)

	if len(events) != 0 {
		t.Errorf("Hole with cheese remaining should yield no events, got %v", events)
	}
}

func TestVictory(t *testing.T) {
	hole := core.C(4, 4)
	player := NewPlayer(hole)
	cat := NewCat([]core.Cell{core.C(0, 0)}, 5, 10, TriggerSight)

	events := ResolveCollisions(player, cat, nil, map[core.Cell]bool{}, hole)

	if len(events) != 1 || events[0].Kind != EventVictory {
		t.Errorf("Expected victory event, got %v", events)
	}
}

func TestLastCheeseOnHoleWinsSameTick(t *testing.T) {
	hole := core.C(4, 4)
	player := NewPlayer(hole)
	cat := NewCat([]core.Cell{core.C(0, 0)}, 5, 10, TriggerSight)
	cheese := map[core.Cell]bool{hole: true}

	events := ResolveCollisions(player, cat, nil, cheese, hole)

	if len(events) != 2 {
		t.Fatalf("Expected cheese then victory, got %v", events)
	}
	if events[0].Kind != EventCheese || events[1].Kind != EventVictory {
		t.Errorf("Expected [cheese, victory] order, got %v", events)
	}
}
