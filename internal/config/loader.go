package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPawsuit loads the game configuration.
// Search order: customPath -> ~/.pawsuit/configs/pawsuit.yaml -> ./configs/pawsuit.yaml -> embedded default
func LoadPawsuit(customPath string) (PawsuitConfig, error) {
	var cfg PawsuitConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pawsuit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pawsuit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPawsuitYAML, &cfg); err != nil {
		return DefaultPawsuitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize fills unset fields with safe values so a partial user
// config never produces a frozen cat or zero-point cheese.
func normalize(cfg PawsuitConfig) PawsuitConfig {
	def := DefaultPawsuitConfig()
	if cfg.Cat.MoveEveryTicks <= 0 {
		cfg.Cat.MoveEveryTicks = def.Cat.MoveEveryTicks
	}
	if cfg.Cat.Trigger != "sight" && cfg.Cat.Trigger != "movement" {
		cfg.Cat.Trigger = def.Cat.Trigger
	}
	if cfg.Obstacles.Speed <= 0 {
		cfg.Obstacles.Speed = def.Obstacles.Speed
	}
	if cfg.Obstacles.MoveEveryTicks <= 0 {
		cfg.Obstacles.MoveEveryTicks = def.Obstacles.MoveEveryTicks
	}
	if cfg.Gameplay.CheesePoints <= 0 {
		cfg.Gameplay.CheesePoints = def.Gameplay.CheesePoints
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pawsuit", "configs", filename)
}
