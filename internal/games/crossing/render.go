package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteObstacle
)

// Sprite is a drawable entity at a world position.
type Sprite struct {
	Kind  SpriteKind
	Pos   core.Vec2
	Color core.Color
}

// Align controls how a label is placed relative to its position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// LabelStyle selects the text size/weight for a label.
type LabelStyle int

const (
	StyleMedium LabelStyle = iota
	StyleSmall
	StyleHighScore
	StyleTitle
)

// Label is a line of HUD text at a world position.
type Label struct {
	Text  string
	Pos   core.Vec2
	Align Align
	Style LabelStyle
}

// Canvas is the display collaborator the game draws into.
// Coordinates are world coordinates; the implementation projects them.
type Canvas interface {
	DrawSprite(s Sprite)
	DrawLabel(l Label)
}

// HUD positions in world coordinates.
var (
	levelLabelPos     = core.V(-275, 250)
	highScoreLabelPos = core.V(-275, 230)
	gameOverLabelPos  = core.V(0, 0)
	restartLabelPos   = core.V(0, -240)
	exitLabelPos      = core.V(0, -270)
)

// Render draws obstacles, then the player, then the HUD.
func (g *Game) Render(c Canvas) {
	for _, o := range g.field.obstacles {
		c.DrawSprite(Sprite{Kind: SpriteObstacle, Pos: o.Pos, Color: o.Color})
	}

	c.DrawSprite(Sprite{Kind: SpritePlayer, Pos: g.player.Position(), Color: g.playerColor})

	for _, l := range g.progress.Labels() {
		c.DrawLabel(l)
	}
}
