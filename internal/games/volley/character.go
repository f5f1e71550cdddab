package volley

import (
	"math"

	"github.com/vovakirdan/doggo-volley/internal/config"
	"github.com/vovakirdan/doggo-volley/internal/core"
)

// Side identifies which half-court an entity or point belongs to.
type Side int

const (
	SidePlayer Side = iota // Left half, human controlled
	SideAI                 // Right half, policy controlled
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "ai"
}

// AnimState classifies a character's movement for the render layer.
// Not purely cosmetic: the idle/walk/run transitions are part of the
// observable entity state machine.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimRun
)

// String returns a human-readable name for the animation state.
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimRun:
		return "run"
	default:
		return "unknown"
	}
}

// Character is one playable entity. Both sides share the same type; only the
// control source differs (human input vs. AI policy), issued through
// ApplyAccel and Jump before each Tick.
type Character struct {
	Body
	W, H     float64
	Side     Side
	Grounded bool
	Anim     AnimState
	Facing   int // -1 left, +1 right

	movingTicks int  // Consecutive ticks above the movement threshold
	accelTick   bool // Whether acceleration input was applied this tick

	phys     config.VolleyPhysics
	gameplay config.VolleyGameplay
	court    Court
}

// NewCharacter creates a character for the given side, standing on the ground
// at its home position.
func NewCharacter(side Side, cfg config.VolleyConfig, court Court) *Character {
	c := &Character{
		W:        float64(cfg.Court.CharacterWidth),
		H:        float64(cfg.Court.CharacterHeight),
		Side:     side,
		phys:     cfg.Physics,
		gameplay: cfg.Gameplay,
		court:    court,
		Facing:   1,
	}
	if side == SideAI {
		c.Facing = -1
	}
	c.ResetAt(c.HomeX())
	return c
}

// HomeX returns the default standing position (left edge) for this side:
// a quarter court in from the character's back wall.
func (c *Character) HomeX() float64 {
	if c.Side == SidePlayer {
		return float64(c.court.W)/4 - c.W/2
	}
	return float64(c.court.W)*3/4 - c.W/2
}

// ResetAt places the character on the ground at x with all motion and
// animation state cleared.
func (c *Character) ResetAt(x float64) {
	c.X = x
	c.Y = float64(c.court.GroundY) - c.H
	c.DX = 0
	c.DY = 0
	c.Grounded = true
	c.Anim = AnimIdle
	c.movingTicks = 0
	c.accelTick = false
}

// Rect returns the integer bounding box derived from the float position.
func (c *Character) Rect() core.Rect {
	return core.NewRect(int(c.X), int(c.Y), int(c.W), int(c.H))
}

// CenterX returns the horizontal center of the bounding box.
func (c *Character) CenterX() float64 {
	return c.X + c.W/2
}

// ApplyAccel adds an acceleration quantum to horizontal velocity in the given
// direction (-1 left, +1 right), scaled by scale (1.0 for human input, the
// policy factors for the AI). Callers issue at most one call per tick; when
// both directions are requested in one tick, right wins by convention.
func (c *Character) ApplyAccel(dir int, scale float64) {
	if dir == 0 {
		return
	}
	c.DX += float64(dir) * c.phys.Acceleration * scale
	c.accelTick = true
	if dir > 0 {
		c.Facing = 1
	} else {
		c.Facing = -1
	}
}

// Jump sets the vertical jump impulse if the character is grounded.
// Airborne calls are a no-op: no double-jump, no air-jump.
func (c *Character) Jump() {
	if !c.Grounded {
		return
	}
	c.DY = c.phys.JumpImpulse
	c.Grounded = false
}

// Tick advances the animation-state classifier, then kinematics, in that
// order. Callers clamp to the half-court afterwards via ClampHalfCourt.
func (c *Character) Tick() {
	c.updateAnim()
	c.applyPhysics()
}

// updateAnim runs the idle/walk/run classifier. Walk becomes run after the
// character has been continuously moving for the configured tick count; any
// drop below the movement threshold resets straight to idle.
func (c *Character) updateAnim() {
	moving := math.Abs(c.DX) > c.gameplay.MoveThreshold
	switch {
	case !moving:
		c.Anim = AnimIdle
		c.movingTicks = 0
	case c.movingTicks < c.gameplay.WalkToRun:
		c.Anim = AnimWalk
		c.movingTicks++
	default:
		c.Anim = AnimRun
		c.movingTicks++
	}
}

// applyPhysics integrates gravity and velocity, damping horizontal speed on
// ticks without acceleration input, and resolves the ground landing edge.
func (c *Character) applyPhysics() {
	c.ApplyGravity(c.phys.Gravity)

	if !c.accelTick {
		c.DampX(c.phys.Deceleration, c.phys.SpeedEpsilon)
	}
	c.accelTick = false

	c.CapX(c.phys.MaxSpeed)
	c.Integrate()

	// Single landing edge: clamp, zero vertical velocity, ground.
	if c.Y+c.H >= float64(c.court.GroundY) {
		c.Y = float64(c.court.GroundY) - c.H
		c.DY = 0
		c.Grounded = true
	}
}

// ClampHalfCourt keeps the character inside its assigned half of the court.
// The float position and the derived bounding box move together; clamping one
// without the other causes visible jitter.
func (c *Character) ClampHalfCourt() {
	r := c.Rect()
	switch c.Side {
	case SidePlayer:
		if r.X < 0 {
			c.X = 0
		}
		if r.Right() > c.court.Net.X {
			c.X = float64(c.court.Net.X) - c.W
		}
	case SideAI:
		if r.X < c.court.Net.Right() {
			c.X = float64(c.court.Net.Right())
		}
		if r.Right() > c.court.W {
			c.X = float64(c.court.W) - c.W
		}
	}
}
