package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagSound      bool
	flagVolume     float64
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Road Crossing.

Controls:
  Up/W       - Step forward
  Down/S     - Step back
  Space      - Restart (after game over)
  Esc/Q      - Quit

Difficulty options:
  easy   - Slower traffic, fewer obstacles
  normal - The default staircase
  hard   - Faster traffic, more obstacles

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --seed 42
  crossing play --sound --volume 0.3
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.crossing/crossing.log", "Where to write the game log")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The TUI owns the terminal, so the log goes to a file
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With("session", uuid.New().String())

	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyCrossingPreset(&cfg, preset)

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := crossing.New(cfg, store, seed, logger)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.Rules.TickInterval(),
	}

	sound, closeSound := openSound(flagSound, flagVolume, logger)
	defer closeSound()

	logger.Info("game start",
		"seed", seed,
		"difficulty", preset,
		"store", store.Location(),
		"high_score", game.State().HighScore,
	)

	if err := tui.Run(game, runtime, sound, logger); err != nil {
		logger.Error("game exited with error", "error", err)
		store.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("game end", "high_score", game.State().HighScore)
}
