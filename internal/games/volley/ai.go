package volley

import (
	"math"

	"github.com/vovakirdan/doggo-volley/internal/config"
)

// AIPolicy decides the AI character's horizontal intent and jump timing from
// the ball state. It reads the ball, never mutates it: all ball changes flow
// through the shared collision path in the match. The decision itself is
// stateless per tick; only the jump cooldown and serve timer persist.
type AIPolicy struct {
	cfg   config.VolleyAI
	skill *config.SkillManager

	cooldown   int // Ticks until the next allowed jump
	serveTimer int // Countdown while staging a serve; 0 means not started
}

// NewAIPolicy creates the opponent policy with the given tuning and skill.
func NewAIPolicy(cfg config.VolleyAI, skill *config.SkillManager) *AIPolicy {
	return &AIPolicy{cfg: cfg, skill: skill}
}

// ResetPoint clears the per-point timers. Called on match reset and whenever
// a new serve phase begins.
func (p *AIPolicy) ResetPoint() {
	p.cooldown = 0
	p.serveTimer = 0
}

// Control steers the AI character for one playing tick. The policy is
// intentionally imperfect: reduced acceleration, a dead-zone around
// alignment, and a jump cooldown model a reaction delay rather than
// optimal play.
func (p *AIPolicy) Control(c *Character, ball *Ball, totalPoints, ticks int, canJump bool) {
	if p.cooldown > 0 {
		p.cooldown--
	}

	steer := p.skill.SteerFactor(p.cfg.SteerFactor, totalPoints, ticks)

	ballToward := ball.DX > 0 || ball.X > c.court.MidX()
	if ballToward {
		// Chase the ball's x-position, ignoring small misalignment.
		deadZone := c.W * p.cfg.DeadZone
		switch {
		case c.CenterX() < ball.X-deadZone:
			c.ApplyAccel(1, steer)
		case c.CenterX() > ball.X+deadZone:
			c.ApplyAccel(-1, steer)
		}

		if canJump && p.shouldJump(c, ball, totalPoints, ticks) {
			c.Jump()
			p.cooldown = p.skill.JumpCooldown(p.cfg.JumpCooldown, totalPoints, ticks)
		}
		return
	}

	// Ball is far on the player side: drift gently back home.
	home := c.HomeX() + c.W/2
	switch {
	case c.CenterX() < home-p.cfg.HomeEpsilon:
		c.ApplyAccel(1, p.cfg.HomeFactor)
	case c.CenterX() > home+p.cfg.HomeEpsilon:
		c.ApplyAccel(-1, p.cfg.HomeFactor)
	}
}

// shouldJump checks the jump bands: ball above the character's top within a
// short vertical window and close enough horizontally, character grounded,
// cooldown expired.
func (p *AIPolicy) shouldJump(c *Character, ball *Ball, totalPoints, ticks int) bool {
	if p.cooldown > 0 || !c.Grounded {
		return false
	}
	ballBottom := ball.Y + ball.Radius
	if ballBottom >= c.Y+p.cfg.JumpBandY {
		return false
	}
	return math.Abs(ball.X-c.CenterX()) < p.cfg.JumpBandX
}

// ControlServe drifts the AI toward its serve staging position and runs the
// serve countdown once in place. It returns the current charge display power
// and whether the serve should be released this tick.
func (p *AIPolicy) ControlServe(c *Character, delay int) (power float64, release bool) {
	staging := float64(c.court.W) * 3 / 4

	switch {
	case c.CenterX() < staging-p.cfg.ServeEpsilon:
		c.ApplyAccel(1, p.cfg.HomeFactor)
	case c.CenterX() > staging+p.cfg.ServeEpsilon:
		c.ApplyAccel(-1, p.cfg.HomeFactor)
	default:
		// In position: start the countdown once.
		if p.serveTimer == 0 {
			p.serveTimer = delay
		}
	}

	if p.serveTimer > 0 {
		p.serveTimer--
		// Power meter ramps linearly over the wait for display purposes;
		// the actual serve power is drawn randomly at release.
		power = 100 * (1 - float64(p.serveTimer)/float64(delay))
		if p.serveTimer == 0 {
			return power, true
		}
	}
	return power, false
}
