package config

import (
	"math"
	"testing"
)

func newTestSkill(initial float64, progType string, maxAt int) *SkillManager {
	return NewSkillManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: progType, MaxAt: maxAt},
		Scaling:      ScalingConfig{SteerBoost: 0.2, CooldownReduction: 20},
	})
}

func TestSkillLevelScoreProgression(t *testing.T) {
	d := newTestSkill(0.0, "score", 10)

	if level := d.Level(0, 0); level != 0.0 {
		t.Errorf("Level at 0 points = %v, expected 0.0", level)
	}
	if level := d.Level(5, 0); math.Abs(level-0.5) > 1e-9 {
		t.Errorf("Level at 5 points = %v, expected 0.5", level)
	}
	if level := d.Level(10, 0); level != 1.0 {
		t.Errorf("Level at max points = %v, expected 1.0", level)
	}
	// Past the max the level saturates.
	if level := d.Level(50, 0); level != 1.0 {
		t.Errorf("Level past max = %v, expected 1.0", level)
	}
}

func TestSkillLevelTimeProgression(t *testing.T) {
	d := newTestSkill(0.5, "time", 1000)

	if level := d.Level(0, 0); level != 0.5 {
		t.Errorf("Level at tick 0 = %v, expected initial 0.5", level)
	}
	// Halfway through: interpolates from 0.5 toward 1.0.
	if level := d.Level(0, 500); math.Abs(level-0.75) > 1e-9 {
		t.Errorf("Level at tick 500 = %v, expected 0.75", level)
	}
}

func TestSkillDisabledHoldsInitial(t *testing.T) {
	d := NewSkillManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if level := d.Level(100, 100000); level != 0.4 {
		t.Errorf("disabled Level = %v, expected fixed 0.4", level)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled should be false when disabled")
	}
}

func TestSkillSteerFactor(t *testing.T) {
	d := newTestSkill(0.0, "score", 10)

	if f := d.SteerFactor(0.8, 0, 0); f != 0.8 {
		t.Errorf("SteerFactor at level 0 = %v, expected base 0.8", f)
	}
	if f := d.SteerFactor(0.8, 10, 0); math.Abs(f-1.0) > 1e-9 {
		t.Errorf("SteerFactor at max level = %v, expected 1.0", f)
	}
}

func TestSkillJumpCooldown(t *testing.T) {
	d := newTestSkill(0.0, "score", 10)

	if cd := d.JumpCooldown(45, 0, 0); cd != 45 {
		t.Errorf("JumpCooldown at level 0 = %d, expected base 45", cd)
	}
	if cd := d.JumpCooldown(45, 10, 0); cd != 25 {
		t.Errorf("JumpCooldown at max level = %d, expected 25", cd)
	}

	// Reductions never push the cooldown below the floor.
	if cd := d.JumpCooldown(15, 10, 0); cd != 10 {
		t.Errorf("JumpCooldown floored = %d, expected 10", cd)
	}
}

func TestSkillSetInitialLevelClamps(t *testing.T) {
	d := newTestSkill(0.0, "none", 0)
	d.SetInitialLevel(1.7)
	if level := d.Level(0, 0); level != 1.0 {
		t.Errorf("Level after oversized SetInitialLevel = %v, expected 1.0", level)
	}
	d.SetInitialLevel(-0.5)
	if level := d.Level(0, 0); level != 0.0 {
		t.Errorf("Level after negative SetInitialLevel = %v, expected 0.0", level)
	}
}
