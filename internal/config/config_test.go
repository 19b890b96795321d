package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPawsuitConfig(t *testing.T) {
	cfg := DefaultPawsuitConfig()

	if cfg.Cat.MoveEveryTicks <= 0 {
		t.Error("Default cat cadence must be positive")
	}
	if cfg.Cat.Trigger != "sight" {
		t.Errorf("Expected default trigger sight, got %q", cfg.Cat.Trigger)
	}
	if cfg.Obstacles.Speed <= 0 {
		t.Error("Default obstacle speed must be positive")
	}
	if cfg.Gameplay.CheesePoints != 10 {
		t.Errorf("Expected 10 cheese points, got %d", cfg.Gameplay.CheesePoints)
	}
}

func TestLoadPawsuitEmbeddedDefault(t *testing.T) {
	// No custom path and no user config: the embedded YAML must match
	// the hardcoded defaults.
	cfg, err := LoadPawsuit("")
	if err != nil {
		t.Fatalf("LoadPawsuit failed: %v", err)
	}

	def := DefaultPawsuitConfig()
	if cfg.Cat.MoveEveryTicks != def.Cat.MoveEveryTicks {
		t.Errorf("Cat cadence: embedded %d, default %d", cfg.Cat.MoveEveryTicks, def.Cat.MoveEveryTicks)
	}
	if cfg.Cat.Trigger != def.Cat.Trigger {
		t.Errorf("Trigger: embedded %q, default %q", cfg.Cat.Trigger, def.Cat.Trigger)
	}
	if cfg.Obstacles.Speed != def.Obstacles.Speed {
		t.Errorf("Obstacle speed: embedded %v, default %v", cfg.Obstacles.Speed, def.Obstacles.Speed)
	}
	if cfg.Gameplay.CheesePoints != def.Gameplay.CheesePoints {
		t.Errorf("Cheese points: embedded %d, default %d", cfg.Gameplay.CheesePoints, def.Gameplay.CheesePoints)
	}
}

func TestLoadPawsuitCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawsuit.yaml")
	content := []byte("cat:\n  move_every_ticks: 4\n  trigger: movement\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPawsuit(path)
	if err != nil {
		t.Fatalf("LoadPawsuit failed: %v", err)
	}

	if cfg.Cat.MoveEveryTicks != 4 {
		t.Errorf("Expected cadence 4 from custom config, got %d", cfg.Cat.MoveEveryTicks)
	}
	if cfg.Cat.Trigger != "movement" {
		t.Errorf("Expected movement trigger, got %q", cfg.Cat.Trigger)
	}
	// Unset fields fall back to defaults.
	if cfg.Obstacles.Speed != DefaultPawsuitConfig().Obstacles.Speed {
		t.Errorf("Unset obstacle speed should default, got %v", cfg.Obstacles.Speed)
	}
}

func TestLoadPawsuitMissingCustomPath(t *testing.T) {
	if _, err := LoadPawsuit("/nonexistent/pawsuit.yaml"); err == nil {
		t.Error("Expected error for missing custom config")
	}
}

func TestNormalizeRejectsBadTrigger(t *testing.T) {
	cfg := normalize(PawsuitConfig{Cat: CatConfig{Trigger: "psychic"}})
	if cfg.Cat.Trigger != "sight" {
		t.Errorf("Unknown trigger should fall back to sight, got %q", cfg.Cat.Trigger)
	}
}

func TestApplyPawsuitPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantCat     int
		wantSpeedup int
	}{
		{DifficultyEasy, 14, 1},
		{DifficultyNormal, 10, 1},
		{DifficultyHard, 7, 2},
		{DifficultyFixed, 10, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPawsuitConfig()
			ApplyPawsuitPreset(&cfg, tt.preset)

			if cfg.Cat.MoveEveryTicks != tt.wantCat {
				t.Errorf("Cat cadence: expected %d, got %d", tt.wantCat, cfg.Cat.MoveEveryTicks)
			}
			if cfg.Cat.PerLevelSpeedup != tt.wantSpeedup {
				t.Errorf("Speedup: expected %d, got %d", tt.wantSpeedup, cfg.Cat.PerLevelSpeedup)
			}
		})
	}
}

func TestCadenceClamp(t *testing.T) {
	cat := CatConfig{MoveEveryTicks: 6, PerLevelSpeedup: 3}

	if got := CatCadence(cat, 0); got != 6 {
		t.Errorf("Level 0: expected 6, got %d", got)
	}
	if got := CatCadence(cat, 1); got != 3 {
		t.Errorf("Level 1: expected 3, got %d", got)
	}
	// Never below the playable minimum.
	if got := CatCadence(cat, 10); got != minCadence {
		t.Errorf("Deep level: expected %d, got %d", minCadence, got)
	}
	if got := CatCadence(cat, -5); got != 6 {
		t.Errorf("Negative level clamps to 0: expected 6, got %d", got)
	}
}
