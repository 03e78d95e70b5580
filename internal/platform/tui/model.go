package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Sounder plays a cue for a game event.
type Sounder interface {
	Play(e core.Event)
}

// helpRows is the space reserved under the playfield for the key help.
const helpRows = 1

// Model is the Bubble Tea model running one crossing game.
type Model struct {
	game     *crossing.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	pending  core.InputFrame // Input collected since the last tick
	sound    Sounder
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for the given game. sound and logger may be nil.
func NewModel(game *crossing.Game, cfg core.RuntimeConfig, sound Sounder, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		pending: core.NewInputFrame(),
		sound:   sound,
		logger:  logger,
	}
}

func playfieldRows(height int) int {
	return max(1, height-helpRows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records movement for the next tick and handles restart and
// quit immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "level", m.game.State().Level)
		return m, tea.Quit

	case core.ActionRestart:
		if m.game.Restart() {
			m.pending.Clear()
		}

	case core.ActionForward, core.ActionBackward:
		if !m.game.State().GameOver {
			m.pending.SetMove(action)
		}
	}

	return m, nil
}

// handleResize re-projects the world onto the new size. The game keeps
// running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width

	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the game once with the pending input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.pending)
	m.pending.Clear()

	if m.sound != nil {
		for _, e := range result.Events {
			m.sound.Play(e)
		}
	}

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	canvas := newWorldCanvas(m.screen, m.game.World())
	canvas.drawFinishLine(m.game.FinishLineY())
	m.game.Render(canvas)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *crossing.Game, cfg core.RuntimeConfig, sound Sounder, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, sound, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
