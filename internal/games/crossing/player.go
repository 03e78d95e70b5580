package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Player is the sprite the user steers across the road.
// It only ever moves along Y and always faces the finish line.
type Player struct {
	pos core.Vec2
	cfg config.PlayerConfig
}

// NewPlayer creates a player standing at the start position.
func NewPlayer(cfg config.PlayerConfig) *Player {
	p := &Player{cfg: cfg}
	p.ResetToStart()
	return p
}

// MoveForward steps toward the finish line.
func (p *Player) MoveForward() {
	p.pos.Y += p.cfg.MoveDistance
}

// MoveBackward steps back toward the start.
func (p *Player) MoveBackward() {
	p.pos.Y -= p.cfg.MoveDistance
}

// SuccessfulCrossing reports whether the player is strictly past the finish line.
func (p *Player) SuccessfulCrossing() bool {
	return p.pos.Y > p.cfg.FinishLineY
}

// ResetToStart puts the player back on the start position.
func (p *Player) ResetToStart() {
	p.pos = core.V(p.cfg.StartX, p.cfg.StartY)
}

// DistanceTo returns the Euclidean distance from the player to a point.
func (p *Player) DistanceTo(pt core.Vec2) float64 {
	return p.pos.Distance(pt)
}

// Position returns the player's current position.
func (p *Player) Position() core.Vec2 {
	return p.pos
}

// FinishLineY returns the Y coordinate the player must exceed.
func (p *Player) FinishLineY() float64 {
	return p.cfg.FinishLineY
}
