package volley

import (
	"testing"

	"github.com/vovakirdan/doggo-volley/internal/core"
	"github.com/vovakirdan/doggo-volley/internal/registry"
)

func resetOverrides() {
	SetConfigPath("")
	SetDifficultyPreset("")
	SetWinScore(0)
}

func TestGameRegistration(t *testing.T) {
	for _, id := range []string{"volley", "rally"} {
		if !registry.Exists(id) {
			t.Fatalf("game %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Fatalf("created game ID %q, want %q", g.ID(), id)
		}
		if _, ok := g.(registry.MatchReporter); !ok {
			t.Fatalf("game %q does not report match outcomes", id)
		}
	}
}

func TestGameResetAndStep(t *testing.T) {
	defer resetOverrides()
	resetOverrides()

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Fatalf("fresh state %+v, want zeroed", st)
	}

	// Stepping before Reset must not panic and returns a zero state.
	var empty Game
	if st := empty.Step(core.NewInputFrame()); st.State.Score != 0 {
		t.Fatalf("unreset game state %+v", st.State)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.match.Player.DX <= 0 {
		t.Fatalf("player DX = %v after a right step, want positive", g.match.Player.DX)
	}
}

func TestGamePauseToggle(t *testing.T) {
	defer resetOverrides()
	resetOverrides()

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	st := g.Step(pause)
	if !st.State.Paused {
		t.Fatal("pause action did not pause")
	}

	// Ticks stand still while paused.
	ticks := g.match.Ticks()
	move := core.NewInputFrame()
	move.Set(core.ActionRight)
	g.Step(move)
	if g.match.Ticks() != ticks {
		t.Fatal("match advanced while paused")
	}

	if st := g.Step(pause); st.State.Paused {
		t.Fatal("second pause action did not resume")
	}
}

func TestGameWinScoreOverride(t *testing.T) {
	defer resetOverrides()
	resetOverrides()

	SetWinScore(3)
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.match.WinScore() != 3 {
		t.Fatalf("win score %d, want overridden 3", g.match.WinScore())
	}

	SetWinScore(0)
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.match.WinScore() == 3 {
		t.Fatal("cleared override still applied")
	}
}

func TestGameMatchOutcome(t *testing.T) {
	defer resetOverrides()
	resetOverrides()

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 31})

	// Finish a 1-point match by direct simulation control.
	g.match.SetWinScore(1)
	g.match.serveSide = SidePlayer
	g.match.beginServe()
	g.match.Tick(Input{ServeHeld: true})
	g.match.Tick(Input{})
	dropBall(g.match, 740)
	g.match.Tick(Input{})

	if !g.State().GameOver {
		t.Fatalf("phase %v, want game over", g.match.Phase())
	}
	player, ai, winScore, ticks, won := g.MatchOutcome()
	if player != 1 || ai != 0 || winScore != 1 || !won {
		t.Fatalf("outcome %d-%d to %d won=%v, want 1-0 to 1 won", player, ai, winScore, won)
	}
	if ticks == 0 {
		t.Fatal("finished match reports zero duration")
	}
}

func TestGameSeedDeterminism(t *testing.T) {
	defer resetOverrides()
	resetOverrides()

	run := func() Side {
		g := New()
		g.Reset(core.RuntimeConfig{Seed: 1234})
		return g.match.ServeSide()
	}
	if run() != run() {
		t.Fatal("same seed produced different initial serve sides")
	}
}

func TestGameRenderSmoke(t *testing.T) {
	defer resetOverrides()
	resetOverrides()

	for _, mk := range []func() *Game{New, NewRally} {
		g := mk()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
		s := core.NewScreen(80, 24)
		g.Render(s)

		// The ground line lands somewhere in the lower rows.
		found := false
		for y := 0; y < 24 && !found; y++ {
			for x := 0; x < 80; x++ {
				if s.Get(x, y) == GroundChar {
					found = true
					break
				}
			}
		}
		if !found {
			t.Fatalf("%s: no ground line rendered", g.ID())
		}
	}
}
