package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/doggo-volley/internal/registry"
	"github.com/vovakirdan/doggo-volley/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show match history for a variant",
	Long: `Display the win/loss record and recent matches for the specified
variant.

Examples:
  volley scores volley
  volley scores rally`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'volley list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Match History - %s\n", title)
	fmt.Println()

	// Win/loss record
	stats, err := store.GetMatchStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if stats.Played == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'volley play %s' to record the first match!\n", gameID)
		return
	}

	fmt.Printf("Record: %d played, %d won, %d lost\n", stats.Played, stats.Won, stats.Lost)
	fmt.Printf("Points: %d for, %d against\n", stats.PointsFor, stats.PointsLost)
	fmt.Println()

	// Recent matches
	matches, err := store.RecentMatches(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	// Print header
	fmt.Printf("  %-6s  %-8s  %-4s  %s\n", "Result", "Score", "To", "Date")
	fmt.Printf("  %-6s  %-8s  %-4s  %s\n", "------", "-----", "--", "----")

	// Print matches
	for _, m := range matches {
		result := "LOSS"
		if m.Winner == "player" {
			result = "WIN"
		}
		score := fmt.Sprintf("%d - %d", m.PlayerScore, m.OpponentScore)
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6s  %-8s  %-4d  %s\n", result, score, m.WinScore, dateStr)
	}

	// Best points in a single match
	highScore, err := store.HighScore(gameID)
	if err == nil && highScore > 0 {
		fmt.Println()
		fmt.Printf("Most points in one match: %d\n", highScore)
	}
}
