package volley

import (
	"testing"

	"github.com/vovakirdan/doggo-volley/internal/config"
)

// newPlayingMatch builds a match with the player serving and releases the
// serve, leaving the match in the playing phase.
func newPlayingMatch(t *testing.T, seed int64) *Match {
	t.Helper()
	m := NewMatch(config.DefaultVolleyConfig(), seed)
	m.serveSide = SidePlayer
	m.beginServe()
	m.Tick(Input{ServeHeld: true})
	m.Tick(Input{})
	if m.Phase() != PhasePlaying {
		t.Fatalf("phase %v after serve release, want playing", m.Phase())
	}
	return m
}

// dropBall parks the ball just above the ground at x, clear of both
// characters, falling. The next tick lands it.
func dropBall(m *Match, x float64) {
	m.Ball.X = x
	m.Ball.Y = float64(m.court.GroundY) - m.Ball.Radius - 0.1
	m.Ball.DX = 0
	m.Ball.DY = 2
}

func TestMatchStartsServing(t *testing.T) {
	m := NewMatch(config.DefaultVolleyConfig(), 1)

	if m.Phase() != PhaseServing {
		t.Fatalf("initial phase %v, want serving", m.Phase())
	}
	p, a := m.Scores()
	if p != 0 || a != 0 {
		t.Fatalf("initial score %d-%d, want 0-0", p, a)
	}
	if m.WinScore() != config.DefaultVolleyConfig().Gameplay.WinScore {
		t.Fatalf("win score %d, want config default", m.WinScore())
	}
	if m.Ball.DX != 0 || m.Ball.DY != 0 {
		t.Fatal("staged ball has velocity before the serve")
	}
}

func TestPlayerServeChargeAndRelease(t *testing.T) {
	m := NewMatch(config.DefaultVolleyConfig(), 3)
	m.serveSide = SidePlayer
	m.beginServe()

	stagedX, stagedY := m.Ball.X, m.Ball.Y

	// Charging: power ramps monotonically, capped at the meter max, and
	// the ball stays frozen at its staging spot.
	prev := -1.0
	for i := 0; i < 80; i++ {
		m.Tick(Input{ServeHeld: true})
		if !m.Charging() {
			t.Fatalf("tick %d: not charging while serve held", i)
		}
		if m.ServePower() < prev {
			t.Fatalf("tick %d: power %v dropped below %v", i, m.ServePower(), prev)
		}
		if m.ServePower() > MaxServePower {
			t.Fatalf("tick %d: power %v above cap", i, m.ServePower())
		}
		prev = m.ServePower()
		if m.Ball.X != stagedX || m.Ball.Y != stagedY {
			t.Fatalf("tick %d: ball moved to (%v,%v) during charge", i, m.Ball.X, m.Ball.Y)
		}
	}
	if m.ServePower() != MaxServePower {
		t.Fatalf("power %v after 80 held ticks, want full %d", m.ServePower(), MaxServePower)
	}

	// Release: the match enters playing, the ball flies toward the AI, the
	// meter resets.
	m.Tick(Input{})
	if m.Phase() != PhasePlaying {
		t.Fatalf("phase %v after release, want playing", m.Phase())
	}
	if m.Ball.DX <= 0 {
		t.Fatalf("ball DX = %v after player serve, want positive", m.Ball.DX)
	}
	if m.Charging() || m.ServePower() != 0 {
		t.Fatal("charge state not cleared after release")
	}
}

func TestAIServesAfterDelay(t *testing.T) {
	cfg := config.DefaultVolleyConfig()
	m := NewMatch(cfg, 5)
	m.serveSide = SideAI
	m.beginServe()

	served := false
	for i := 0; i < cfg.Serve.AIDelay+10; i++ {
		m.Tick(Input{})
		if m.Phase() == PhasePlaying {
			served = true
			break
		}
	}
	if !served {
		t.Fatalf("AI did not serve within %d ticks", cfg.Serve.AIDelay+10)
	}
	if m.Ball.DX >= 0 {
		t.Fatalf("ball DX = %v after AI serve, want negative", m.Ball.DX)
	}
}

func TestScoringAndLoserServes(t *testing.T) {
	m := newPlayingMatch(t, 7)

	// Ball lands on the player half: point for the AI, and the side that
	// did not score serves next.
	dropBall(m, 60)
	m.Tick(Input{})

	p, a := m.Scores()
	if p != 0 || a != 1 {
		t.Fatalf("score %d-%d, want 0-1", p, a)
	}
	if m.ServeSide() != SidePlayer {
		t.Fatalf("serve side %v, want player (the side that conceded)", m.ServeSide())
	}
	if m.Phase() != PhasePointPause {
		t.Fatalf("phase %v, want point_pause", m.Phase())
	}
	if m.Ball.DX != 0 || m.Ball.DY != 0 {
		t.Fatal("ball not restaged at rest after the point")
	}
	if _, decided := m.Winner(); decided {
		t.Fatal("match decided after a single point")
	}
}

func TestPointPauseCountsDownToServe(t *testing.T) {
	cfg := config.DefaultVolleyConfig()
	m := newPlayingMatch(t, 9)

	dropBall(m, 60)
	m.Tick(Input{})
	if m.Phase() != PhasePointPause {
		t.Fatalf("phase %v, want point_pause", m.Phase())
	}
	if m.PauseTimer() != cfg.Gameplay.PointPause {
		t.Fatalf("pause timer %d, want %d", m.PauseTimer(), cfg.Gameplay.PointPause)
	}

	for i := 0; i < cfg.Gameplay.PointPause; i++ {
		if m.Phase() != PhasePointPause {
			t.Fatalf("pause ended early on tick %d", i)
		}
		m.Tick(Input{})
	}
	if m.Phase() != PhaseServing {
		t.Fatalf("phase %v after pause, want serving", m.Phase())
	}
}

func TestWinScoreEndsMatch(t *testing.T) {
	m := newPlayingMatch(t, 11)
	m.SetWinScore(1)

	// Ball lands on the AI half: the player reaches the win score.
	dropBall(m, 740)
	m.Tick(Input{})

	if m.Phase() != PhaseGameOver {
		t.Fatalf("phase %v at win score, want game_over", m.Phase())
	}
	winner, decided := m.Winner()
	if !decided || winner != SidePlayer {
		t.Fatalf("winner %v decided=%v, want player decided", winner, decided)
	}

	// A finished match is inert: no further ticks, no further scoring.
	ticks := m.Ticks()
	p, a := m.Scores()
	m.Tick(Input{ServeHeld: true, Right: true})
	if m.Ticks() != ticks {
		t.Fatal("finished match still ticking")
	}
	if p2, a2 := m.Scores(); p2 != p || a2 != a {
		t.Fatal("finished match changed the score")
	}
}

func TestSetWinScoreRejectsNonPositive(t *testing.T) {
	m := NewMatch(config.DefaultVolleyConfig(), 1)
	want := m.WinScore()
	m.SetWinScore(0)
	m.SetWinScore(-3)
	if m.WinScore() != want {
		t.Fatalf("win score %d after rejecting overrides, want %d", m.WinScore(), want)
	}
	m.SetWinScore(7)
	if m.WinScore() != 7 {
		t.Fatalf("win score %d, want 7", m.WinScore())
	}
}

func TestResetClearsMatchState(t *testing.T) {
	m := newPlayingMatch(t, 13)
	m.SetWinScore(1)
	dropBall(m, 740)
	m.Tick(Input{})
	if m.Phase() != PhaseGameOver {
		t.Fatalf("phase %v, want game_over before reset", m.Phase())
	}

	m.Reset()
	if m.Phase() != PhaseServing {
		t.Fatalf("phase %v after reset, want serving", m.Phase())
	}
	p, a := m.Scores()
	if p != 0 || a != 0 {
		t.Fatalf("score %d-%d after reset, want 0-0", p, a)
	}
	if _, decided := m.Winner(); decided {
		t.Fatal("winner still decided after reset")
	}
	if m.Ticks() != 0 {
		t.Fatalf("tick count %d after reset, want 0", m.Ticks())
	}
}

func TestRightWinsConflictingInput(t *testing.T) {
	m := newPlayingMatch(t, 15)
	m.Tick(Input{Left: true, Right: true})
	if m.Player.DX <= 0 {
		t.Fatalf("player DX = %v with both directions held, want positive", m.Player.DX)
	}
}

func TestJumpIgnoredWhileServing(t *testing.T) {
	m := NewMatch(config.DefaultVolleyConfig(), 17)
	m.serveSide = SidePlayer
	m.beginServe()

	m.Tick(Input{Jump: true})
	if !m.Player.Grounded {
		t.Fatal("player jumped during the serving phase")
	}
}

func TestRallyVariantInstantServeNoJump(t *testing.T) {
	m := NewMatch(config.DefaultRallyConfig(), 19)
	m.serveSide = SidePlayer
	m.beginServe()

	// A fresh serve press releases immediately at the fixed power.
	m.Tick(Input{ServeHeld: true})
	if m.Phase() != PhasePlaying {
		t.Fatalf("phase %v after serve press, want playing", m.Phase())
	}
	if m.Ball.DX <= 0 {
		t.Fatalf("ball DX = %v, want positive", m.Ball.DX)
	}

	// Jump input is disabled in this variant.
	m.Tick(Input{Jump: true})
	if !m.Player.Grounded {
		t.Fatal("player jumped with vertical control disabled")
	}
}

func TestCharacterHitLaunchesBall(t *testing.T) {
	m := newPlayingMatch(t, 21)

	// Ball overlapping the player right of center, grounded hit.
	m.Ball.X = m.Player.CenterX() + 20
	m.Ball.Y = m.Player.Y + 10
	m.Ball.DX = 0
	m.Ball.DY = 3
	m.Player.DX = 0
	m.Player.DY = 0
	m.resolveCharacterHit()

	if m.Ball.DX <= 0 {
		t.Fatalf("ball DX = %v off the right side of the player, want positive", m.Ball.DX)
	}
	if m.Ball.DY < -10 || m.Ball.DY > -8 {
		t.Fatalf("ball DY = %v from a grounded hit, want within [-10,-8]", m.Ball.DY)
	}
	wantY := float64(m.Player.Rect().Y) - m.Ball.Radius - 1
	if m.Ball.Y != wantY {
		t.Fatalf("ball Y = %v after hit, want lifted to %v", m.Ball.Y, wantY)
	}
	if m.Ball.Rect().Intersects(m.Player.Rect()) {
		t.Fatal("ball still overlaps the player after hit resolution")
	}
}

func TestRisingHitAddsJumpBounce(t *testing.T) {
	m := newPlayingMatch(t, 23)

	m.Ball.X = m.Player.CenterX()
	m.Ball.Y = m.Player.Y + 10
	m.Player.DY = -5 // Rising
	m.resolveCharacterHit()

	// -10 - rand(0..2) - |0.3 * -5| puts the launch in [-13.5, -11.5].
	if m.Ball.DY < -13.5 || m.Ball.DY > -11.5 {
		t.Fatalf("ball DY = %v from a rising hit, want within [-13.5,-11.5]", m.Ball.DY)
	}
}

func TestHitMomentumShare(t *testing.T) {
	cfg := config.DefaultVolleyConfig()
	m := newPlayingMatch(t, 25)

	// Ball dead-center so the angle term is zero; all horizontal speed
	// comes from the character's momentum.
	m.Ball.X = m.Player.CenterX()
	m.Ball.Y = m.Player.Y + 10
	m.Player.DX = 6
	m.Player.DY = 0
	m.resolveCharacterHit()

	want := 6 * cfg.Physics.MomentumShare
	if m.Ball.DX != want {
		t.Fatalf("ball DX = %v, want momentum share %v", m.Ball.DX, want)
	}
}

func TestMatchDeterministicWithSeed(t *testing.T) {
	run := func() *Match {
		m := NewMatch(config.DefaultVolleyConfig(), 99)
		for i := 0; i < 600; i++ {
			in := Input{
				ServeHeld: i%40 < 20,
				Right:     i%7 == 0,
				Left:      i%11 == 0,
				Jump:      i%31 == 0,
			}
			m.Tick(in)
		}
		return m
	}

	a, b := run(), run()
	ap, aa := a.Scores()
	bp, ba := b.Scores()
	if ap != bp || aa != ba {
		t.Fatalf("scores diverged: %d-%d vs %d-%d", ap, aa, bp, ba)
	}
	if a.Phase() != b.Phase() {
		t.Fatalf("phases diverged: %v vs %v", a.Phase(), b.Phase())
	}
	if a.Ball.X != b.Ball.X || a.Ball.Y != b.Ball.Y {
		t.Fatalf("ball diverged: (%v,%v) vs (%v,%v)", a.Ball.X, a.Ball.Y, b.Ball.X, b.Ball.Y)
	}
	if a.Player.X != b.Player.X || a.AI.X != b.AI.X {
		t.Fatal("character positions diverged")
	}
}

func TestScoreInvariantOverFullMatch(t *testing.T) {
	// Drive points by dropping the ball alternately until someone wins.
	// Total points never exceeds what the phase machine allows and the
	// match ends exactly when a side reaches the win score.
	m := newPlayingMatch(t, 27)
	m.SetWinScore(3)

	side := 0
	for safety := 0; safety < 1000; safety++ {
		switch m.Phase() {
		case PhasePlaying:
			if side == 0 {
				dropBall(m, 60)
			} else {
				dropBall(m, 740)
			}
			side = 1 - side
			m.Tick(Input{})
		case PhaseServing:
			if m.ServeSide() == SidePlayer {
				m.Tick(Input{ServeHeld: true})
				m.Tick(Input{})
			} else {
				m.Tick(Input{})
			}
		case PhasePointPause:
			m.Tick(Input{})
		case PhaseGameOver:
			p, a := m.Scores()
			if p != m.WinScore() && a != m.WinScore() {
				t.Fatalf("game over at %d-%d with win score %d", p, a, m.WinScore())
			}
			if p > m.WinScore() || a > m.WinScore() {
				t.Fatalf("score %d-%d overshot win score %d", p, a, m.WinScore())
			}
			return
		}
	}
	t.Fatal("match did not finish within the safety bound")
}
