// Package config provides YAML-based game configuration loading and
// opponent-difficulty management for the volleyball arcade.
package config

// VolleyConfig contains all configuration for a volleyball match.
// The simulation runs in a fixed world coordinate space defined by Court;
// the render layer maps world units onto terminal cells.
type VolleyConfig struct {
	Physics    VolleyPhysics    `yaml:"physics"`
	Court      VolleyCourt      `yaml:"court"`
	Serve      VolleyServe      `yaml:"serve"`
	AI         VolleyAI         `yaml:"ai"`
	Gameplay   VolleyGameplay   `yaml:"gameplay"`
	Variant    VolleyVariant    `yaml:"variant"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// VolleyPhysics defines movement physics in world units per tick.
type VolleyPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration per tick²
	Acceleration  float64 `yaml:"acceleration"`   // Horizontal accel quantum per input tick
	Deceleration  float64 `yaml:"deceleration"`   // Friction factor applied on coasting ticks
	MaxSpeed      float64 `yaml:"max_speed"`      // Horizontal speed cap
	JumpImpulse   float64 `yaml:"jump_impulse"`   // Vertical velocity on jump (negative = up)
	SpeedEpsilon  float64 `yaml:"speed_epsilon"`  // Below this, horizontal velocity snaps to zero
	HitPower      float64 `yaml:"hit_power"`      // Horizontal ball speed at full hit angle
	MomentumShare float64 `yaml:"momentum_share"` // Fraction of character velocity passed to the ball
}

// VolleyCourt defines the world geometry. All values are world units.
type VolleyCourt struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	GroundOffset    int `yaml:"ground_offset"` // Ground line sits this far above the bottom
	NetWidth        int `yaml:"net_width"`
	NetHeight       int `yaml:"net_height"`
	CharacterWidth  int `yaml:"character_width"`
	CharacterHeight int `yaml:"character_height"`
	BallRadius      int `yaml:"ball_radius"`
}

// VolleyServe defines serve mechanics.
type VolleyServe struct {
	BaseDX     float64 `yaml:"base_dx"`      // Horizontal serve speed at reference power
	BaseDY     float64 `yaml:"base_dy"`      // Vertical serve speed at reference power (negative = up)
	PowerRate  float64 `yaml:"power_rate"`   // Charge meter fill per held tick
	AIDelay    int     `yaml:"ai_delay"`     // Ticks the AI waits in position before serving
	AIMinPower float64 `yaml:"ai_min_power"` // AI serve power range, percent
	AIMaxPower float64 `yaml:"ai_max_power"`
	FixedPower float64 `yaml:"fixed_power"` // Serve power when charging is disabled
}

// VolleyAI defines the opponent movement policy. Deliberately imperfect:
// a reaction-delay model, not optimal play.
type VolleyAI struct {
	SteerFactor  float64 `yaml:"steer_factor"`   // Fraction of human accel when chasing the ball
	HomeFactor   float64 `yaml:"home_factor"`    // Fraction of human accel when drifting home
	DeadZone     float64 `yaml:"dead_zone"`      // Fraction of character width; no steering inside it
	JumpCooldown int     `yaml:"jump_cooldown"`  // Ticks between AI jumps
	JumpBandY    float64 `yaml:"jump_band_y"`    // Ball must be within this above the AI's top
	JumpBandX    float64 `yaml:"jump_band_x"`    // ...and within this horizontal distance
	HomeEpsilon  float64 `yaml:"home_epsilon"`   // Dead zone around the home position
	ServeEpsilon float64 `yaml:"serve_epsilon"`  // Dead zone around the serve staging position
}

// VolleyGameplay defines match rules and timers.
type VolleyGameplay struct {
	WinScore        int     `yaml:"win_score"`          // First to this many points wins
	PointPause      int     `yaml:"point_pause"`        // Ticks of pause after a point
	WalkToRun       int     `yaml:"walk_to_run"`        // Continuous moving ticks before walk becomes run
	MoveThreshold   float64 `yaml:"move_threshold"`     // |dx| above this counts as moving
}

// VolleyVariant toggles the two rule sets that share this core.
// The canonical "volley" game enables both; "rally" disables both for pure
// horizontal play with instant fixed-power serves.
type VolleyVariant struct {
	VerticalControl bool `yaml:"vertical_control"` // Characters may jump
	ServeCharge     bool `yaml:"serve_charge"`     // Human serve is charge-and-release
}

// WinScoreOptions are the win score choices offered by the match setup menu.
// A UI convenience only; any positive win score is valid.
var WinScoreOptions = []int{3, 5, 7, 10}

// DifficultyConfig defines the opponent skill model.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how opponent skill increases over a match.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Total points / ticks at which max skill is reached
}

// ScalingConfig defines the magnitude of skill changes.
type ScalingConfig struct {
	SteerBoost        float64 `yaml:"steer_boost"`        // Added to steer factor at max skill
	CooldownReduction int     `yaml:"cooldown_reduction"` // Jump cooldown reduction at max skill
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Clamp rejects degenerate values at the configuration boundary so the tick
// loop never has to guard against them.
func (c *VolleyConfig) Clamp() {
	if c.Gameplay.WinScore < 1 {
		c.Gameplay.WinScore = 1
	}
	if c.Gameplay.PointPause < 0 {
		c.Gameplay.PointPause = 0
	}
	if c.Gameplay.WalkToRun < 1 {
		c.Gameplay.WalkToRun = 1
	}
	if c.Serve.PowerRate <= 0 {
		c.Serve.PowerRate = 1
	}
	c.Serve.AIMinPower = clampF(c.Serve.AIMinPower, 0, 100)
	c.Serve.AIMaxPower = clampF(c.Serve.AIMaxPower, c.Serve.AIMinPower, 100)
	c.Serve.FixedPower = clampF(c.Serve.FixedPower, 0, 100)
	if c.Serve.AIDelay < 1 {
		c.Serve.AIDelay = 1
	}
	if c.Physics.MaxSpeed <= 0 {
		c.Physics.MaxSpeed = 1
	}
	if c.Physics.Deceleration < 0 || c.Physics.Deceleration >= 1 {
		c.Physics.Deceleration = 0.85
	}
	if c.AI.JumpCooldown < 0 {
		c.AI.JumpCooldown = 0
	}
	c.AI.SteerFactor = clampF(c.AI.SteerFactor, 0, 2)
	c.AI.HomeFactor = clampF(c.AI.HomeFactor, 0, 2)
	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0, 1)
	if c.Court.Width < 100 {
		c.Court.Width = 100
	}
	if c.Court.Height < 100 {
		c.Court.Height = 100
	}
	if c.Court.BallRadius < 1 {
		c.Court.BallRadius = 1
	}
}
