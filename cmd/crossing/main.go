// crossing is a road crossing arcade game for the terminal.
//
// Usage:
//
//	crossing play              - Play the game
//	crossing highscore         - Show the stored high score
//	crossing highscore reset   - Clear the stored high score
//	crossing config            - Print the effective configuration
//
// Global flags:
//
//	--store <file|sqlite>  - High score backend (default: file)
//	--score-path <path>    - High score location (default depends on backend)
//	--log-level <level>    - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagStore     string
	flagScorePath string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Road Crossing - get across the road without getting hit",
	Long: `Road Crossing is a terminal arcade game. Step up the road while traffic
streams in from the right. Every crossing raises the level and speeds the
traffic up. Touch an obstacle and the run is over.

Available commands:
  play       - Start a game
  highscore  - Show or reset the stored high score
  config     - Print the effective configuration

Examples:
  crossing play
  crossing play --difficulty hard --sound
  crossing highscore
  crossing --store sqlite highscore reset`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "file", "High score backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagScorePath, "score-path", "", "High score location (default depends on --store)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}
