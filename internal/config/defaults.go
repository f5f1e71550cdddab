package config

import (
	_ "embed"
)

//go:embed defaults/volley.yaml
var defaultVolleyYAML []byte

//go:embed defaults/rally.yaml
var defaultRallyYAML []byte

// DefaultVolleyConfig returns the default volleyball configuration.
// World constants mirror an 800x600 court with the ground 80 units above
// the bottom edge and a 10x150 net at center court.
func DefaultVolleyConfig() VolleyConfig {
	return VolleyConfig{
		Physics: VolleyPhysics{
			Gravity:       0.5,
			Acceleration:  0.8,
			Deceleration:  0.85,
			MaxSpeed:      8,
			JumpImpulse:   -12,
			SpeedEpsilon:  0.1,
			HitPower:      7,
			MomentumShare: 0.6,
		},
		Court: VolleyCourt{
			Width:           800,
			Height:          600,
			GroundOffset:    80,
			NetWidth:        10,
			NetHeight:       150,
			CharacterWidth:  80,
			CharacterHeight: 80,
			BallRadius:      15,
		},
		Serve: VolleyServe{
			BaseDX:     4,
			BaseDY:     -7,
			PowerRate:  2,
			AIDelay:    60,
			AIMinPower: 60,
			AIMaxPower: 90,
			FixedPower: 75,
		},
		AI: VolleyAI{
			SteerFactor:  0.8,
			HomeFactor:   0.4,
			DeadZone:     0.3,
			JumpCooldown: 45,
			JumpBandY:    50,
			JumpBandX:    100,
			HomeEpsilon:  4,
			ServeEpsilon: 10,
		},
		Gameplay: VolleyGameplay{
			WinScore:      5,
			PointPause:    60,
			WalkToRun:     20,
			MoveThreshold: 0.1,
		},
		Variant: VolleyVariant{
			VerticalControl: true,
			ServeCharge:     true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SteerBoost:        0.15,
				CooldownReduction: 15,
			},
		},
	}
}

// DefaultRallyConfig returns the default configuration for the rally variant:
// pure horizontal play, no jumping, instant fixed-power serves.
func DefaultRallyConfig() VolleyConfig {
	cfg := DefaultVolleyConfig()
	cfg.Variant.VerticalControl = false
	cfg.Variant.ServeCharge = false
	return cfg
}
