package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVolley loads the volleyball configuration.
// Search order: customPath -> ~/.volley/configs/volley.yaml -> ./configs/volley.yaml -> embedded default
func LoadVolley(customPath string) (VolleyConfig, error) {
	return loadGame(customPath, "volley.yaml", defaultVolleyYAML, DefaultVolleyConfig)
}

// LoadRally loads the rally variant configuration.
// Search order: customPath -> ~/.volley/configs/rally.yaml -> ./configs/rally.yaml -> embedded default
func LoadRally(customPath string) (VolleyConfig, error) {
	return loadGame(customPath, "rally.yaml", defaultRallyYAML, DefaultRallyConfig)
}

// loadGame resolves a config through the standard search order.
// Every loaded config passes through Clamp so degenerate values never
// reach the simulation.
func loadGame(customPath, filename string, embedded []byte, fallback func() VolleyConfig) (VolleyConfig, error) {
	var cfg VolleyConfig

	// A custom path is authoritative: failures are errors, not fallbacks.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Clamp()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Clamp()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Clamp()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Clamp()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".volley", "configs", filename)
}

// ApplyVolleyPreset modifies the config based on a difficulty preset.
func ApplyVolleyPreset(cfg *VolleyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
