// Package crossing implements a road crossing arcade game.
// The player steps up a road while obstacles stream in from the right;
// each crossing raises the level and speeds the traffic up, and touching an
// obstacle ends the run.
package crossing

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Game wires the obstacle field, the player, and the progression together
// and advances them one tick at a time. It is not safe for concurrent use;
// the platform drives it from a single goroutine.
type Game struct {
	field       *ObstacleField
	player      *Player
	progress    *Progression
	cfg         config.CrossingConfig
	playerColor core.Color
	logger      *log.Logger
	tick        uint64
}

// New creates a game from a validated config. The high score is loaded from
// store; a load failure is returned and the game cannot start.
func New(cfg config.CrossingConfig, store ScoreStore, seed int64, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	palette, err := cfg.Field.PaletteColors()
	if err != nil {
		return nil, err
	}
	playerColor, err := core.ParseColor(cfg.Player.Color)
	if err != nil {
		return nil, fmt.Errorf("player color: %w", err)
	}

	progress, err := NewProgression(cfg.Rules, store, logger)
	if err != nil {
		return nil, err
	}

	return &Game{
		field:       NewObstacleField(cfg.Field, palette, rand.New(rand.NewSource(seed))),
		player:      NewPlayer(cfg.Player),
		progress:    progress,
		cfg:         cfg,
		playerColor: playerColor,
		logger:      logger,
	}, nil
}

// Step advances the game by one tick. While the game is over it does
// nothing until Restart is called.
//
// Order within a tick: spawn and advance traffic, apply the sampled move,
// check for a crossing, then scan for a collision.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.progress.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	var events []core.Event

	g.field.SpawnAttempt()
	g.field.Advance()
	if g.cfg.Field.EvictOffscreen {
		g.field.Evict(g.evictionLimit())
	}

	switch {
	case in.Has(core.ActionForward):
		g.player.MoveForward()
	case in.Has(core.ActionBackward):
		g.player.MoveBackward()
	}

	if g.player.SuccessfulCrossing() {
		g.player.ResetToStart()
		g.progress.LevelUp()
		g.field.IncreaseDifficulty()
		events = append(events, core.EventLevelUp)

		g.logger.Info("level up", "level", g.progress.Level())
		g.logger.Debug("difficulty", "speed", g.field.Speed(), "spawn_rate", g.field.SpawnRate())
	}

	for _, o := range g.field.obstacles {
		if g.player.DistanceTo(o.Pos) < g.cfg.Rules.CollisionDistance {
			before := g.progress.HighScore()
			g.progress.TriggerGameOver()
			events = append(events, core.EventCollision)
			if g.progress.HighScore() > before {
				events = append(events, core.EventNewHighScore)
			}

			g.logger.Info("collision", "level", g.progress.Level(), "tick", g.tick, "obstacles", g.field.Len())
			break
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// evictionLimit is the X left of which an obstacle is both off the road and
// out of the player's reach. The player never moves along X.
func (g *Game) evictionLimit() float64 {
	return min(-g.cfg.Field.SpawnX, g.player.Position().X) - g.cfg.Rules.CollisionDistance
}

// Restart starts a new run. It is only honored after a game over and
// reports whether the restart happened.
func (g *Game) Restart() bool {
	if !g.progress.GameOver() {
		return false
	}

	g.progress.Restart()
	g.player.ResetToStart()
	g.field.Reset()
	g.tick = 0

	g.logger.Info("restart", "high_score", g.progress.HighScore())
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:     g.progress.Level(),
		HighScore: g.progress.HighScore(),
		GameOver:  g.progress.GameOver(),
	}
}

// FinishLineY returns the Y the player has to pass to cross.
func (g *Game) FinishLineY() float64 {
	return g.player.FinishLineY()
}

// World returns the playfield size in world units.
func (g *Game) World() config.WorldConfig {
	return g.cfg.World
}
