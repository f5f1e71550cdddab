package volley

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/doggo-volley/internal/config"
	"github.com/vovakirdan/doggo-volley/internal/core"
)

// Phase is the match state machine:
//
//	serving -> playing -> (point_pause -> serving) | game_over
type Phase int

const (
	PhaseServing Phase = iota
	PhasePlaying
	PhasePointPause
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseServing:
		return "serving"
	case PhasePlaying:
		return "playing"
	case PhasePointPause:
		return "point_pause"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is the per-tick boolean signal set for the human character.
// No raw device or event types cross this boundary.
type Input struct {
	Left, Right bool
	Jump        bool
	ServeHeld   bool
}

// MaxServePower caps the serve charge meter.
const MaxServePower = 100

// Match owns the whole simulation: both characters, the ball, the AI policy,
// scores, serve state, and the phase machine. All mutation happens inside
// Tick in a fixed order: input, character updates, ball update, collision
// checks, scoring, state transition.
type Match struct {
	cfg   config.VolleyConfig
	court Court
	rng   *rand.Rand
	skill *config.SkillManager

	Player *Character
	AI     *Character
	Ball   *Ball
	policy *AIPolicy

	phase       Phase
	playerScore int
	aiScore     int
	winScore    int
	serveSide   Side
	servePower  float64
	charging    bool
	prevHeld    bool
	pauseTimer  int
	winner      Side
	decided     bool
	ticks       int
}

// NewMatch creates a match with the given configuration and RNG seed, ready
// in the serving phase with a random initial server.
func NewMatch(cfg config.VolleyConfig, seed int64) *Match {
	cfg.Clamp()
	court := NewCourt(cfg.Court)
	skill := config.NewSkillManager(cfg.Difficulty)

	m := &Match{
		cfg:      cfg,
		court:    court,
		rng:      rand.New(rand.NewSource(seed)),
		skill:    skill,
		Player:   NewCharacter(SidePlayer, cfg, court),
		AI:       NewCharacter(SideAI, cfg, court),
		Ball:     NewBall(cfg, court),
		policy:   NewAIPolicy(cfg.AI, skill),
		winScore: cfg.Gameplay.WinScore,
	}
	m.Reset()
	return m
}

// Reset restarts the match: scores cleared, characters back at home, a random
// serve side, and the serving phase entered.
func (m *Match) Reset() {
	m.playerScore = 0
	m.aiScore = 0
	m.decided = false
	m.ticks = 0
	m.servePower = 0
	m.charging = false
	m.prevHeld = false
	m.pauseTimer = 0

	m.Player.ResetAt(m.Player.HomeX())
	m.AI.ResetAt(m.AI.HomeX())

	if m.rng.Float64() < 0.5 {
		m.serveSide = SidePlayer
	} else {
		m.serveSide = SideAI
	}
	m.beginServe()
}

// SetWinScore overrides the configured winning score. Values below 1 are
// rejected at this boundary; the tick loop never sees them.
func (m *Match) SetWinScore(n int) {
	if n < 1 {
		return
	}
	m.winScore = n
}

// Tick advances the simulation by one step.
func (m *Match) Tick(in Input) {
	switch m.phase {
	case PhaseGameOver:
		return

	case PhasePointPause:
		m.ticks++
		m.pauseTimer--
		if m.pauseTimer <= 0 {
			m.beginServe()
		}
		return
	}

	m.ticks++

	// Input and control policies first.
	m.controlPlayer(in)
	m.controlAI()

	// Characters update, then the ball, then collisions, then scoring.
	m.Player.Tick()
	m.Player.ClampHalfCourt()
	m.AI.Tick()
	m.AI.ClampHalfCourt()

	m.Ball.Tick(m.phase == PhasePlaying)
	m.resolveCharacterHit()

	if side, landed := m.Ball.CheckGround(); landed && m.phase == PhasePlaying {
		m.scorePoint(side)
	}

	m.prevHeld = in.ServeHeld
}

// controlPlayer applies the human input signals to the player character and
// drives the serve charge while the player is the server.
func (m *Match) controlPlayer(in Input) {
	if m.phase == PhaseServing && m.serveSide == SidePlayer {
		m.controlPlayerServe(in)
	}

	// Movement is allowed while serving and while playing.
	// Right wins when both directions are held in the same tick.
	switch {
	case in.Right:
		m.Player.ApplyAccel(1, 1.0)
	case in.Left:
		m.Player.ApplyAccel(-1, 1.0)
	}

	if m.phase == PhasePlaying && in.Jump && m.cfg.Variant.VerticalControl {
		m.Player.Jump()
	}
}

// controlPlayerServe runs the charge-and-release serve. With charging
// disabled (the rally variant), a fresh serve press releases immediately at
// the fixed power.
func (m *Match) controlPlayerServe(in Input) {
	if !m.cfg.Variant.ServeCharge {
		if in.ServeHeld && !m.prevHeld {
			m.releaseServe(SidePlayer, m.cfg.Serve.FixedPower)
		}
		return
	}

	switch {
	case in.ServeHeld && !m.charging:
		m.charging = true
		m.servePower = 0
	case in.ServeHeld && m.charging:
		m.servePower = math.Min(m.servePower+m.cfg.Serve.PowerRate, MaxServePower)
	case !in.ServeHeld && m.charging && m.prevHeld:
		m.charging = false
		m.releaseServe(SidePlayer, m.servePower)
	}
}

// controlAI drives the opponent: the serve script while it is the server,
// the chase policy while playing.
func (m *Match) controlAI() {
	switch {
	case m.phase == PhaseServing && m.serveSide == SideAI:
		power, release := m.policy.ControlServe(m.AI, m.cfg.Serve.AIDelay)
		m.servePower = power
		if release {
			span := m.cfg.Serve.AIMaxPower - m.cfg.Serve.AIMinPower
			m.releaseServe(SideAI, m.cfg.Serve.AIMinPower+m.rng.Float64()*span)
		}

	case m.phase == PhasePlaying:
		total := m.playerScore + m.aiScore
		m.policy.Control(m.AI, m.Ball, total, m.ticks, m.cfg.Variant.VerticalControl)
	}
}

// releaseServe launches the ball and enters the playing phase. Guarded:
// outside the serving phase this is a no-op, not a crash.
func (m *Match) releaseServe(side Side, power float64) {
	if m.phase != PhaseServing {
		return
	}
	m.Ball.ServeWithPower(side, power, m.rng)
	m.servePower = 0
	m.phase = PhasePlaying
}

// resolveCharacterHit checks ball-character overlap and launches the ball off
// the hitting character. The player is checked before the AI: on a
// simultaneous overlap the player's hit wins, a deliberate tie-break. At most
// one character registers a hit per tick.
func (m *Match) resolveCharacterHit() {
	br := m.Ball.Rect()
	for _, c := range []*Character{m.Player, m.AI} {
		cr := c.Rect()
		if !br.Intersects(cr) {
			continue
		}

		// Horizontal hit angle in [-1,1] from the ball's offset off center.
		angle := core.ClampF((m.Ball.X-c.CenterX())/(c.W/2), -1, 1)
		m.Ball.DX = angle*m.cfg.Physics.HitPower + c.DX*m.cfg.Physics.MomentumShare

		if c.DY < 0 {
			// Rising character: extra bounce from the jump.
			m.Ball.DY = -10 - m.rng.Float64()*2 - math.Abs(c.DY*0.3)
		} else {
			m.Ball.DY = -8 - m.rng.Float64()*2
		}

		// Lift the ball clear of the character so it cannot re-collide
		// next tick.
		m.Ball.Y = float64(cr.Y) - m.Ball.Radius - 1
		return
	}
}

// scorePoint credits a point, hands the serve to the side that did not score,
// and either pauses before the next serve or ends the match.
func (m *Match) scorePoint(side Side) {
	if side == SidePlayer {
		m.playerScore++
	} else {
		m.aiScore++
	}
	m.serveSide = side.Other()

	switch {
	case m.playerScore >= m.winScore:
		m.winner = SidePlayer
		m.decided = true
		m.phase = PhaseGameOver
	case m.aiScore >= m.winScore:
		m.winner = SideAI
		m.decided = true
		m.phase = PhaseGameOver
	default:
		m.Ball.Reset(m.serveSide)
		m.pauseTimer = m.cfg.Gameplay.PointPause
		m.phase = PhasePointPause
	}
}

// beginServe enters the serving phase for the current serve side.
func (m *Match) beginServe() {
	m.phase = PhaseServing
	m.servePower = 0
	m.charging = false
	m.Ball.Reset(m.serveSide)
	m.policy.ResetPoint()
}

// Phase returns the current match phase.
func (m *Match) Phase() Phase { return m.phase }

// Scores returns the player and AI scores.
func (m *Match) Scores() (player, ai int) { return m.playerScore, m.aiScore }

// WinScore returns the score needed to win.
func (m *Match) WinScore() int { return m.winScore }

// ServeSide returns which side serves the current or next point.
func (m *Match) ServeSide() Side { return m.serveSide }

// ServePower returns the current charge meter value in [0,100].
func (m *Match) ServePower() float64 { return m.servePower }

// Charging reports whether the human serve is currently being charged.
func (m *Match) Charging() bool { return m.charging }

// PauseTimer returns the remaining point-pause ticks.
func (m *Match) PauseTimer() int { return m.pauseTimer }

// Winner returns the winning side once the match is decided.
func (m *Match) Winner() (Side, bool) { return m.winner, m.decided }

// Ticks returns the number of simulation ticks since the last reset.
func (m *Match) Ticks() int { return m.ticks }

// Court returns the world geometry for rendering.
func (m *Match) Court() Court { return m.court }
