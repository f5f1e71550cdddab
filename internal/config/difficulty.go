package config

import "math"

// SkillManager calculates the opponent's effective skill based on match
// progress. Skill only tunes the AI's reaction parameters; it never touches
// ball physics, so both sides always play under the same rules.
type SkillManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewSkillManager creates a new skill manager.
func NewSkillManager(cfg DifficultyConfig) *SkillManager {
	return &SkillManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial skill level (0.0 to 1.0).
func (d *SkillManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether skill progression is active.
func (d *SkillManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current skill level (0.0 to 1.0).
// Under "score" progression the total points played drive the ramp;
// under "time" it is the tick count.
func (d *SkillManager) Level(totalPoints int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(totalPoints) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SteerFactor returns the AI's chase acceleration factor at the current skill.
func (d *SkillManager) SteerFactor(base float64, totalPoints, ticks int) float64 {
	level := d.Level(totalPoints, ticks)
	return base + level*d.cfg.Scaling.SteerBoost
}

// JumpCooldown returns the AI's jump cooldown at the current skill.
// Higher skill means shorter cooldowns, floored at a playable minimum.
func (d *SkillManager) JumpCooldown(base int, totalPoints, ticks int) int {
	level := d.Level(totalPoints, ticks)
	result := base - int(level*float64(d.cfg.Scaling.CooldownReduction))
	if result < 10 {
		result = 10
	}
	return result
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
