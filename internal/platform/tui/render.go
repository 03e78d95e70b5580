package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorIvory:       lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
}

// Sprite glyphs. The player faces the finish line, traffic faces left.
const (
	playerRune   = '▲'
	obstacleRune = '◄'
	finishRune   = '·'
)

// labelColors gives each HUD label style its color.
var labelColors = map[crossing.LabelStyle]core.Color{
	crossing.StyleMedium:    core.ColorIvory,
	crossing.StyleSmall:     core.ColorDim,
	crossing.StyleHighScore: core.ColorIvory,
	crossing.StyleTitle:     core.ColorBrightWhite,
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// worldCanvas projects world coordinates onto a Screen. The world origin
// is the centre of the screen and +Y points up.
type worldCanvas struct {
	screen *core.Screen
	world  config.WorldConfig
}

func newWorldCanvas(screen *core.Screen, world config.WorldConfig) *worldCanvas {
	return &worldCanvas{screen: screen, world: world}
}

// project maps a world position to a screen cell.
func (c *worldCanvas) project(p core.Vec2) (col, row int) {
	w, h := c.world.Width, c.world.Height
	col = int((p.X + w/2) / w * float64(c.screen.Width()))
	row = int((h/2 - p.Y) / h * float64(c.screen.Height()))
	return col, row
}

// DrawSprite implements crossing.Canvas.
func (c *worldCanvas) DrawSprite(s crossing.Sprite) {
	r := obstacleRune
	if s.Kind == crossing.SpritePlayer {
		r = playerRune
	}
	col, row := c.project(s.Pos)
	c.screen.SetColored(col, row, r, s.Color)
}

// DrawLabel implements crossing.Canvas.
func (c *worldCanvas) DrawLabel(l crossing.Label) {
	col, row := c.project(l.Pos)
	color := labelColors[l.Style]

	switch l.Align {
	case crossing.AlignCenter:
		c.screen.DrawTextCentered(col, row, l.Text, color)
	default:
		c.screen.DrawText(col, row, l.Text, color)
	}
}

// drawFinishLine marks the row the player has to pass.
func (c *worldCanvas) drawFinishLine(y float64) {
	_, row := c.project(core.V(0, y))
	c.screen.DrawHLine(0, row, c.screen.Width(), finishRune, core.ColorDim)
}
