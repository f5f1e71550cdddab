package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var fromYAML VolleyConfig
	if err := yaml.Unmarshal(defaultVolleyYAML, &fromYAML); err != nil {
		t.Fatalf("embedded volley.yaml does not parse: %v", err)
	}
	if fromYAML != DefaultVolleyConfig() {
		t.Errorf("embedded volley.yaml drifted from DefaultVolleyConfig:\nyaml: %+v\ncode: %+v", fromYAML, DefaultVolleyConfig())
	}

	if err := yaml.Unmarshal(defaultRallyYAML, &fromYAML); err != nil {
		t.Fatalf("embedded rally.yaml does not parse: %v", err)
	}
	if fromYAML != DefaultRallyConfig() {
		t.Errorf("embedded rally.yaml drifted from DefaultRallyConfig")
	}
}

func TestRallyVariantFlags(t *testing.T) {
	cfg := DefaultRallyConfig()
	if cfg.Variant.VerticalControl {
		t.Error("rally config should disable vertical control")
	}
	if cfg.Variant.ServeCharge {
		t.Error("rally config should disable serve charging")
	}
}

func TestClampRejectsDegenerateValues(t *testing.T) {
	cfg := DefaultVolleyConfig()
	cfg.Gameplay.WinScore = 0
	cfg.Gameplay.PointPause = -10
	cfg.Serve.PowerRate = -1
	cfg.Serve.AIMinPower = 150
	cfg.Serve.AIMaxPower = 20
	cfg.Physics.MaxSpeed = 0
	cfg.Physics.Deceleration = 1.5
	cfg.Court.Width = 10
	cfg.Court.BallRadius = 0

	cfg.Clamp()

	if cfg.Gameplay.WinScore < 1 {
		t.Errorf("WinScore = %d after clamp", cfg.Gameplay.WinScore)
	}
	if cfg.Gameplay.PointPause < 0 {
		t.Errorf("PointPause = %d after clamp", cfg.Gameplay.PointPause)
	}
	if cfg.Serve.PowerRate <= 0 {
		t.Errorf("PowerRate = %v after clamp", cfg.Serve.PowerRate)
	}
	if cfg.Serve.AIMinPower > 100 {
		t.Errorf("AIMinPower = %v after clamp", cfg.Serve.AIMinPower)
	}
	if cfg.Serve.AIMaxPower < cfg.Serve.AIMinPower {
		t.Errorf("AIMaxPower %v below AIMinPower %v after clamp", cfg.Serve.AIMaxPower, cfg.Serve.AIMinPower)
	}
	if cfg.Physics.MaxSpeed <= 0 {
		t.Errorf("MaxSpeed = %v after clamp", cfg.Physics.MaxSpeed)
	}
	if cfg.Physics.Deceleration >= 1 {
		t.Errorf("Deceleration = %v after clamp", cfg.Physics.Deceleration)
	}
	if cfg.Court.Width < 100 {
		t.Errorf("Width = %d after clamp", cfg.Court.Width)
	}
	if cfg.Court.BallRadius < 1 {
		t.Errorf("BallRadius = %d after clamp", cfg.Court.BallRadius)
	}
}

func TestLoadVolleyCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := DefaultVolleyConfig()
	custom.Gameplay.WinScore = 7
	custom.Physics.Gravity = 0.6
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadVolley(path)
	if err != nil {
		t.Fatalf("LoadVolley(%s): %v", path, err)
	}
	if cfg.Gameplay.WinScore != 7 || cfg.Physics.Gravity != 0.6 {
		t.Errorf("custom config not applied: %+v", cfg.Gameplay)
	}
}

func TestLoadVolleyCustomPathErrors(t *testing.T) {
	// A missing custom path is an error, not a silent fallback.
	if _, err := LoadVolley(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	// Broken YAML is an error too.
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadVolley(path); err == nil {
		t.Error("expected error for unparseable custom config")
	}
}

func TestApplyVolleyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tc := range tests {
		cfg := DefaultVolleyConfig()
		ApplyVolleyPreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.wantEnabled {
			t.Errorf("%s: Enabled = %v", tc.preset, cfg.Difficulty.Enabled)
		}
		if cfg.Difficulty.InitialLevel != tc.wantLevel {
			t.Errorf("%s: InitialLevel = %v, expected %v", tc.preset, cfg.Difficulty.InitialLevel, tc.wantLevel)
		}
	}

	// Fixed disables progression entirely.
	cfg := DefaultVolleyConfig()
	ApplyVolleyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
