package volley

import (
	"math"
	"testing"

	"github.com/vovakirdan/doggo-volley/internal/config"
)

func newTestCharacter(side Side) *Character {
	cfg := config.DefaultVolleyConfig()
	court := NewCourt(cfg.Court)
	return NewCharacter(side, cfg, court)
}

func TestCharacterGravityMonotonic(t *testing.T) {
	c := newTestCharacter(SidePlayer)
	c.Jump()

	cfg := config.DefaultVolleyConfig()
	prev := c.DY
	for i := 0; i < 10; i++ {
		c.Tick()
		if c.Grounded {
			break
		}
		got := c.DY - prev
		if math.Abs(got-cfg.Physics.Gravity) > 1e-9 {
			t.Fatalf("tick %d: vertical velocity increased by %v, want gravity %v", i, got, cfg.Physics.Gravity)
		}
		prev = c.DY
	}
}

func TestCharacterGroundClampIdempotent(t *testing.T) {
	c := newTestCharacter(SidePlayer)

	// Already resting on the ground: further no-input ticks change nothing.
	for i := 0; i < 5; i++ {
		c.Tick()
		if !c.Grounded {
			t.Fatalf("tick %d: character left the ground with no input", i)
		}
		if c.DY != 0 {
			t.Fatalf("tick %d: vertical velocity %v, want 0", i, c.DY)
		}
		if bottom := c.Y + c.H; bottom != float64(c.court.GroundY) {
			t.Fatalf("tick %d: bottom %v, want ground line %d", i, bottom, c.court.GroundY)
		}
	}
}

func TestCharacterJumpOnlyWhenGrounded(t *testing.T) {
	c := newTestCharacter(SidePlayer)
	cfg := config.DefaultVolleyConfig()

	c.Jump()
	if c.Grounded {
		t.Fatal("character still grounded after jump")
	}
	if c.DY != cfg.Physics.JumpImpulse {
		t.Fatalf("jump impulse %v, want %v", c.DY, cfg.Physics.JumpImpulse)
	}

	// Airborne jump is a no-op, not a double jump.
	c.Tick()
	before := c.DY
	c.Jump()
	if c.DY != before {
		t.Fatalf("airborne Jump changed velocity from %v to %v", before, c.DY)
	}
}

func TestCharacterDecelerationAndSpeedCap(t *testing.T) {
	cfg := config.DefaultVolleyConfig()
	c := newTestCharacter(SidePlayer)
	c.DX = cfg.Physics.MaxSpeed

	// One no-input tick decays by the deceleration factor.
	c.Tick()
	want := cfg.Physics.MaxSpeed * cfg.Physics.Deceleration
	if c.DX > want+1e-9 {
		t.Fatalf("after coasting tick DX = %v, want <= %v", c.DX, want)
	}

	// Accelerating for many ticks never exceeds the cap in either direction.
	for i := 0; i < 100; i++ {
		c.ApplyAccel(1, 1.0)
		c.Tick()
		if math.Abs(c.DX) > cfg.Physics.MaxSpeed {
			t.Fatalf("tick %d: |DX| = %v exceeds cap %v", i, math.Abs(c.DX), cfg.Physics.MaxSpeed)
		}
	}
	for i := 0; i < 100; i++ {
		c.ApplyAccel(-1, 1.0)
		c.Tick()
		if math.Abs(c.DX) > cfg.Physics.MaxSpeed {
			t.Fatalf("tick %d: |DX| = %v exceeds cap %v", i, math.Abs(c.DX), cfg.Physics.MaxSpeed)
		}
	}
}

func TestCharacterVelocitySnapsToZero(t *testing.T) {
	cfg := config.DefaultVolleyConfig()
	c := newTestCharacter(SidePlayer)
	c.DX = cfg.Physics.SpeedEpsilon / 2

	c.Tick()
	if c.DX != 0 {
		t.Fatalf("DX below epsilon did not snap to zero, got %v", c.DX)
	}
}

func TestAnimClassifier(t *testing.T) {
	cfg := config.DefaultVolleyConfig()
	c := newTestCharacter(SidePlayer)

	if c.Anim != AnimIdle {
		t.Fatalf("initial state %v, want idle", c.Anim)
	}

	// Moving flips idle to walk, then to run after the threshold.
	for i := 0; i < cfg.Gameplay.WalkToRun; i++ {
		c.ApplyAccel(1, 1.0)
		c.Tick()
		if c.Anim != AnimWalk {
			t.Fatalf("tick %d: state %v, want walk", i, c.Anim)
		}
	}
	c.ApplyAccel(1, 1.0)
	c.Tick()
	if c.Anim != AnimRun {
		t.Fatalf("state %v after threshold, want run", c.Anim)
	}

	// Any drop below the movement threshold resets straight to idle.
	c.DX = 0
	c.Tick()
	if c.Anim != AnimIdle {
		t.Fatalf("state %v after stopping, want idle", c.Anim)
	}
	if c.movingTicks != 0 {
		t.Fatalf("moving counter %d after stopping, want 0", c.movingTicks)
	}
}

func TestClampHalfCourt(t *testing.T) {
	tests := []struct {
		name string
		side Side
		x    float64
	}{
		{"player left wall", SidePlayer, -50},
		{"player into net", SidePlayer, 700},
		{"ai into net", SideAI, 10},
		{"ai right wall", SideAI, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter(tt.side)
			c.X = tt.x
			c.ClampHalfCourt()

			r := c.Rect()
			if tt.side == SidePlayer {
				if r.X < 0 || r.Right() > c.court.Net.X {
					t.Fatalf("player box %+v outside left half (net at %d)", r, c.court.Net.X)
				}
			} else {
				if r.X < c.court.Net.Right() || r.Right() > c.court.W {
					t.Fatalf("ai box %+v outside right half", r)
				}
			}
			// Float position and box were clamped together.
			if int(c.X) != r.X {
				t.Fatalf("float X %v desynced from box X %d", c.X, r.X)
			}
		})
	}
}

func TestApplyAccelSetsFacing(t *testing.T) {
	c := newTestCharacter(SidePlayer)
	c.ApplyAccel(-1, 1.0)
	if c.Facing != -1 {
		t.Fatalf("facing %d after moving left, want -1", c.Facing)
	}
	c.ApplyAccel(1, 1.0)
	if c.Facing != 1 {
		t.Fatalf("facing %d after moving right, want 1", c.Facing)
	}
}
