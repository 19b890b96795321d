package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("pawsuit", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("pawsuit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("Score %d: expected %d, got %d", i, w, scores[i].Score)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore("pawsuit", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("pawsuit", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit 3, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty store
	high, err := store.HighScore("pawsuit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	store.SaveScore("pawsuit", 70)
	store.SaveScore("pawsuit", 130)

	high, err = store.HighScore("pawsuit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 130 {
		t.Errorf("Expected high score 130, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pawsuit", 42)
	if err := store.ClearScores("pawsuit"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("pawsuit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{LevelID: "pantry", Outcome: "victory", Score: 30, DurationTicks: 1800},
		{LevelID: "pantry", Outcome: "caught_by_cat", Score: 10, DurationTicks: 600},
		{LevelID: "kitchen", Outcome: "hit_by_obstacle", Score: 20, DurationTicks: 900},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].LevelID != "kitchen" || recent[0].Outcome != "hit_by_obstacle" {
		t.Errorf("Unexpected newest run: %+v", recent[0])
	}
	if recent[1].Outcome != "caught_by_cat" {
		t.Errorf("Unexpected second run: %+v", recent[1])
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: "pantry", Outcome: "victory", Score: 30})
	store.SaveRun(RunEntry{LevelID: "pantry", Outcome: "caught_by_cat", Score: 10})
	store.SaveRun(RunEntry{LevelID: "pantry", Outcome: "victory", Score: 50})
	store.SaveRun(RunEntry{LevelID: "kitchen", Outcome: "caught_by_cat", Score: 0})

	stats, err := store.LevelStats()
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}

	// Ordered by level ID: kitchen before pantry.
	if stats[0].LevelID != "kitchen" || stats[0].Runs != 1 || stats[0].Victories != 0 {
		t.Errorf("Unexpected kitchen stats: %+v", stats[0])
	}
	if stats[1].LevelID != "pantry" || stats[1].Runs != 3 || stats[1].Victories != 2 || stats[1].BestScore != 50 {
		t.Errorf("Unexpected pantry stats: %+v", stats[1])
	}
}
