package volley

import (
	"math/rand"

	"github.com/vovakirdan/doggo-volley/internal/config"
	"github.com/vovakirdan/doggo-volley/internal/core"
)

// Bounce restitution factors. Walls and the net top eat a little energy;
// the net side adds some, which keeps clipped serves lively.
const (
	wallRestitution    = 0.9
	netSideRestitution = 1.1
	netTopRestitution  = 0.9
)

// Ball is the single match ball. X,Y track the center; the integer bounding
// box is derived for collision tests. Reset between points, no identity
// beyond the one instance.
type Ball struct {
	Body
	Radius float64

	phys  config.VolleyPhysics
	serve config.VolleyServe
	court Court
}

// NewBall creates the match ball at rest above the player side.
func NewBall(cfg config.VolleyConfig, court Court) *Ball {
	b := &Ball{
		Radius: float64(cfg.Court.BallRadius),
		phys:   cfg.Physics,
		serve:  cfg.Serve,
		court:  court,
	}
	b.Reset(SidePlayer)
	return b
}

// Rect returns the integer bounding box derived from the center position.
func (b *Ball) Rect() core.Rect {
	d := int(b.Radius * 2)
	return core.NewRect(int(b.X-b.Radius), int(b.Y-b.Radius), d, d)
}

// Tick integrates physics and resolves wall, ceiling, and net collisions.
// While a serve is being held the ball is frozen at its staging position, so
// integration only runs when active is true. At most one collision category
// resolves per tick; the net is checked after the walls and ceiling.
func (b *Ball) Tick(active bool) {
	if active {
		b.ApplyGravity(b.phys.Gravity)
		b.Integrate()
	}

	r := b.Rect()
	switch {
	case r.X <= 0:
		b.X = b.Radius
		b.DX *= -wallRestitution
	case r.Right() >= b.court.W:
		b.X = float64(b.court.W) - b.Radius
		b.DX *= -wallRestitution
	case r.Y <= 0:
		b.Y = b.Radius
		b.DY *= -netTopRestitution
	default:
		b.collideNet()
	}
}

// collideNet resolves a rectangle overlap with the net. The axis with the
// smaller penetration determines the collision normal: a side hit inverts dx
// and nudges the ball clear of the net edge, a top hit inverts dy and nudges
// it above. Resolution never leaves the ball overlapping the net.
func (b *Ball) collideNet() {
	r := b.Rect()
	net := b.court.Net
	if !r.Intersects(net) {
		return
	}

	overlapX, overlapY := r.Overlap(net)
	if overlapX < overlapY {
		b.DX *= -netSideRestitution
		if b.X < float64(net.X+net.W/2) {
			b.X = float64(net.X) - b.Radius - 1
		} else {
			b.X = float64(net.Right()) + b.Radius + 1
		}
	} else {
		b.DY *= -netTopRestitution
		if b.Y < float64(net.Y+net.H/2) {
			b.Y = float64(net.Y) - b.Radius - 1
		} else {
			b.Y = float64(net.Bottom()) + b.Radius + 1
		}
	}
}

// CheckGround reports whether the ball reached the ground line and, if so,
// which side scores: a landing left of the court midline is a point for the
// AI, anything else for the player. This is the sole scoring trigger, called
// once per tick after physics resolution.
func (b *Ball) CheckGround() (Side, bool) {
	if b.Y+b.Radius < float64(b.court.GroundY) {
		return SidePlayer, false
	}
	b.Y = float64(b.court.GroundY) - b.Radius

	if b.X < b.court.MidX() {
		return SideAI, true
	}
	return SidePlayer, true
}

// Reset stages the ball above the serving side at a fixed height with zero
// velocity. Serve velocity is set separately by ServeWithPower.
func (b *Ball) Reset(serveSide Side) {
	b.DX = 0
	b.DY = 0
	b.Y = float64(b.court.H) / 3
	if serveSide == SidePlayer {
		b.X = float64(b.court.W) / 4
	} else {
		b.X = float64(b.court.W) * 3 / 4
	}
}

// ServeWithPower launches the ball from its staging position. Power in
// [0,100] scales the base serve speeds by 0.5 + power/100; the horizontal
// direction follows the serving side. Small jitter (±0.5 per axis) from the
// injected RNG keeps serves from being identical.
func (b *Ball) ServeWithPower(serveSide Side, power float64, rng *rand.Rand) {
	factor := 0.5 + core.ClampF(power, 0, 100)/100

	dir := 1.0
	if serveSide == SideAI {
		dir = -1.0
	}

	b.DX = dir*b.serve.BaseDX*factor + (rng.Float64() - 0.5)
	b.DY = b.serve.BaseDY*factor + (rng.Float64() - 0.5)
}
