package crossing

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// ScoreStore persists the high score between runs.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Progression tracks the level, the high score, and the game-over state,
// and keeps the HUD labels in sync with them.
//
// States: playing -> game over on collision, game over -> playing on
// restart. There are no other transitions.
type Progression struct {
	level     int
	highScore int
	gameOver  bool
	labels    []Label
	store     ScoreStore
	cfg       config.RulesConfig
	logger    *log.Logger
}

// NewProgression loads the high score from the store and starts at the
// configured starting level. A nil store keeps the high score in memory only.
func NewProgression(cfg config.RulesConfig, store ScoreStore, logger *log.Logger) (*Progression, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Progression{
		level:  cfg.StartingLevel,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}

	if store != nil {
		hs, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("load high score: %w", err)
		}
		p.highScore = hs
	}

	p.refresh()
	return p, nil
}

// LevelUp advances the level and refreshes the HUD.
func (p *Progression) LevelUp() {
	p.level += p.cfg.LevelIncrement
	p.refresh()
}

// TriggerGameOver ends the run: it freezes the level, reconciles the high
// score, and shows the game-over prompts. It reports whether a transition
// happened; calling it while already over does nothing.
func (p *Progression) TriggerGameOver() bool {
	if p.gameOver {
		return false
	}
	p.gameOver = true
	p.reconcile()
	p.refresh()
	return true
}

// Restart reconciles the high score (again, harmlessly) and starts a new
// run from the starting level.
func (p *Progression) Restart() {
	p.reconcile()
	p.level = p.cfg.StartingLevel
	p.gameOver = false
	p.refresh()
}

// reconcile raises and persists the high score if the current level beats
// it. Returns true when a new high score was set.
func (p *Progression) reconcile() bool {
	if p.level <= p.highScore {
		return false
	}

	p.highScore = p.level
	p.logger.Info("new high score", "score", p.highScore)

	if p.store != nil {
		if err := p.store.Save(p.highScore); err != nil {
			p.logger.Error("could not save high score", "score", p.highScore, "error", err)
		}
	}
	return true
}

// refresh rebuilds the HUD labels from the current state.
func (p *Progression) refresh() {
	p.labels = p.labels[:0]
	p.labels = append(p.labels,
		Label{Text: fmt.Sprintf("Level: %d", p.level), Pos: levelLabelPos, Align: AlignLeft, Style: StyleMedium},
		Label{Text: fmt.Sprintf("High Score: %d", p.highScore), Pos: highScoreLabelPos, Align: AlignLeft, Style: StyleHighScore},
	)

	if p.gameOver {
		p.labels = append(p.labels,
			Label{Text: "GAME OVER", Pos: gameOverLabelPos, Align: AlignCenter, Style: StyleTitle},
			Label{Text: "Press Space to restart", Pos: restartLabelPos, Align: AlignCenter, Style: StyleMedium},
			Label{Text: "Press Esc to exit game", Pos: exitLabelPos, Align: AlignCenter, Style: StyleSmall},
		)
	}
}

// Level returns the current level.
func (p *Progression) Level() int {
	return p.level
}

// HighScore returns the best level reached so far.
func (p *Progression) HighScore() int {
	return p.highScore
}

// GameOver reports whether the run has ended.
func (p *Progression) GameOver() bool {
	return p.gameOver
}

// Labels returns a copy of the HUD text to draw.
func (p *Progression) Labels() []Label {
	out := make([]Label, len(p.labels))
	copy(out, p.labels)
	return out
}
