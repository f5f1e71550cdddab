package volley

import (
	"github.com/vovakirdan/doggo-volley/internal/config"
	"github.com/vovakirdan/doggo-volley/internal/core"
	"github.com/vovakirdan/doggo-volley/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the opponent difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// winScoreOverride stores the win score chosen via CLI or the match setup
// menu; 0 means use the config value.
var winScoreOverride int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the opponent difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetWinScore sets the winning score for new matches (0 = config default).
func SetWinScore(n int) {
	if n < 0 {
		n = 0
	}
	winScoreOverride = n
}

// Game wraps a Match behind the platform's registry.Game interface. Two
// variants register themselves: "volley" (jump + serve charge) and "rally"
// (pure horizontal, instant serves).
type Game struct {
	id      string
	title   string
	load    func(string) (config.VolleyConfig, error)
	defCfg  func() config.VolleyConfig
	match   *Match
	runtime core.RuntimeConfig
	paused  bool
}

// New creates the canonical volleyball game.
func New() *Game {
	return &Game{
		id:     "volley",
		title:  "Doggo Volleyball",
		load:   config.LoadVolley,
		defCfg: config.DefaultVolleyConfig,
	}
}

// NewRally creates the horizontal-only rally variant.
func NewRally() *Game {
	return &Game{
		id:     "rally",
		title:  "Doggo Rally",
		load:   config.LoadRally,
		defCfg: config.DefaultRallyConfig,
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := g.load(configPath)
	if err != nil {
		cfg = g.defCfg()
	}
	if difficultyPreset != "" {
		config.ApplyVolleyPreset(&cfg, difficultyPreset)
	}

	g.match = NewMatch(cfg, runtime.Seed)
	if winScoreOverride > 0 {
		g.match.SetWinScore(winScoreOverride)
	}
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.match == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.match.Phase() != PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused || g.match.Phase() == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.match.Tick(Input{
		Left:      in.Has(core.ActionLeft),
		Right:     in.Has(core.ActionRight),
		Jump:      in.Has(core.ActionJump),
		ServeHeld: in.Has(core.ActionServe),
	})

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.match == nil {
		return core.GameState{}
	}
	player, _ := g.match.Scores()
	return core.GameState{
		Score:    player,
		GameOver: g.match.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// MatchOutcome implements registry.MatchReporter so the platform can persist
// finished matches.
func (g *Game) MatchOutcome() (playerScore, opponentScore, winScore, durationTicks int, playerWon bool) {
	if g.match == nil {
		return 0, 0, 0, 0, false
	}
	player, ai := g.match.Scores()
	winner, decided := g.match.Winner()
	return player, ai, g.match.WinScore(), g.match.Ticks(), decided && winner == SidePlayer
}

// Register both variants with the registry.
func init() {
	registry.Register("volley", func() registry.Game { return New() })
	registry.Register("rally", func() registry.Game { return NewRally() })
}
