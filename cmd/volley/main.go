// volley is a terminal volleyball game: one player against a CPU opponent.
//
// Usage:
//
//	volley list              - List available game variants
//	volley play <variant>    - Play a variant directly
//	volley menu              - Start menu to pick a variant interactively
//	volley serve             - Start SSH server for remote play
//	volley scores <variant>  - Show match history for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.volley/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/vovakirdan/doggo-volley/internal/games/volley"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "volley",
	Short: "Doggo Volley - Terminal volleyball against a CPU opponent",
	Long: `Doggo Volley is a terminal volleyball game. Keep the ball off your
half of the court and score points past your CPU opponent.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View match history and scores

Examples:
  volley list
  volley play volley
  volley play rally --difficulty hard
  volley menu
  volley serve --ssh :2222
  volley scores volley`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.volley/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
