package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show the stored high score",
	Long: `Display the best level reached so far.

Examples:
  crossing highscore
  crossing --store sqlite highscore
  crossing highscore reset`,
	Args: cobra.NoArgs,
	Run:  runHighscore,
}

var highscoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored high score",
	Args:  cobra.NoArgs,
	Run:   runHighscoreReset,
}

func init() {
	highscoreCmd.AddCommand(highscoreResetCmd)
}

func runHighscore(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	score, err := store.Load()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Score - Road Crossing")
	fmt.Println()

	if score == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossing play' to set the first one!")
		return
	}

	fmt.Printf("  Level %d\n", score)
	if sq, ok := store.(*storage.SQLiteStore); ok {
		if at, err := sq.UpdatedAt(); err == nil && !at.IsZero() {
			fmt.Printf("  Set %s\n", at.Local().Format("2006-01-02 15:04"))
		}
	}
	fmt.Println()
	fmt.Printf("Stored in %s\n", store.Location())
}

func runHighscoreReset(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
		os.Exit(1)
	}

	logger.Info("high score reset", "store", store.Location())
}
