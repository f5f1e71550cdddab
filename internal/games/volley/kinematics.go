// Package volley implements a two-player arcade volleyball match: a human
// and a simple AI bounce a ball over a net and score when it lands on the
// opponent's side. The simulation runs in a fixed world coordinate space
// (default 800x600) at one tick per frame; the render layer scales world
// coordinates onto the terminal grid.
package volley

import (
	"math"

	"github.com/vovakirdan/doggo-volley/internal/config"
	"github.com/vovakirdan/doggo-volley/internal/core"
)

// Body holds the shared kinematic state of a moving entity: an authoritative
// floating-point position and a per-tick velocity. Characters anchor X,Y at
// their top-left corner; the ball anchors at its center.
type Body struct {
	X, Y   float64
	DX, DY float64
}

// ApplyGravity accelerates the body downward by g.
func (b *Body) ApplyGravity(g float64) {
	b.DY += g
}

// Integrate advances the position by one tick of velocity.
func (b *Body) Integrate() {
	b.X += b.DX
	b.Y += b.DY
}

// DampX applies exponential horizontal friction, snapping to a full stop
// below epsilon so entities do not drift forever.
func (b *Body) DampX(factor, epsilon float64) {
	if math.Abs(b.DX) > epsilon {
		b.DX *= factor
	} else {
		b.DX = 0
	}
}

// CapX hard-limits horizontal speed to ±limit.
func (b *Body) CapX(limit float64) {
	b.DX = core.ClampF(b.DX, -limit, limit)
}

// Court is the immutable world geometry shared by all collision tests.
type Court struct {
	W, H    int
	GroundY int       // Ground line; entities rest with their bottom here
	Net     core.Rect // Static net rectangle at center court
}

// NewCourt derives the court geometry from configuration.
func NewCourt(cfg config.VolleyCourt) Court {
	groundY := cfg.Height - cfg.GroundOffset
	netX := cfg.Width/2 - cfg.NetWidth/2
	return Court{
		W:       cfg.Width,
		H:       cfg.Height,
		GroundY: groundY,
		Net:     core.NewRect(netX, groundY-cfg.NetHeight, cfg.NetWidth, cfg.NetHeight),
	}
}

// MidX returns the horizontal midline dividing the two half-courts.
func (c Court) MidX() float64 {
	return float64(c.W) / 2
}
