package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/doggo-volley/internal/core"
	"github.com/vovakirdan/doggo-volley/internal/games/volley"
	"github.com/vovakirdan/doggo-volley/internal/platform/tui"
	"github.com/vovakirdan/doggo-volley/internal/registry"
	"github.com/vovakirdan/doggo-volley/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPoints     int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a match",
	Long: `Start a match against the CPU opponent. Defaults to the "volley"
variant when no variant is given.

Controls:
  A/D or Left/Right - Move
  W/Up              - Jump (volley variant)
  Space (hold)      - Charge serve, release to launch
  P                 - Pause
  R                 - Restart (after the match ends)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Opponent starts weak, sharpens as you score
  normal - Opponent starts at 30% strength
  hard   - Opponent starts at 70% strength
  fixed  - Opponent strength never changes

Examples:
  volley play
  volley play rally
  volley play volley --points 10
  volley play volley --difficulty hard
  volley play volley --config ./my-court.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Opponent difficulty: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagPoints, "points", 0, "Points needed to win (0 = ask in setup menu)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "volley"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'volley list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size early for the setup menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	volley.SetConfigPath(flagConfig)
	volley.SetDifficultyPreset(flagDifficulty)
	volley.SetWinScore(flagPoints)

	// Show the match setup menu unless both options came from flags
	if flagPoints == 0 || flagDifficulty == "" {
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		selection, updatedCfg, selErr := tui.RunMatchSetup(game.Title(), cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Flags take precedence over menu defaults
		if flagPoints == 0 {
			volley.SetWinScore(selection.WinScore)
		}
		if flagDifficulty == "" {
			volley.SetDifficultyPreset(string(selection.Difficulty))
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the match
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
