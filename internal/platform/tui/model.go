package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
	"github.com/vovakirdan/badge-arcade/internal/registry"
)

// Model is the Bubble Tea model running one badge app.
type Model struct {
	app      registry.App
	canvas   *core.Canvas
	screen   *core.Screen
	renderer *Renderer
	input    *core.InputFrame
	keys     KeyMap
	help     help.Model
	tickRate int
	frames   *uint64
	quitting bool
}

// NewModel creates a model for app. lg may be nil outside SSH sessions.
func NewModel(app registry.App, rc core.RuntimeConfig, keys config.KeysConfig, lg *lipgloss.Renderer) Model {
	cols, rows := core.HalfBlockSize(rc.CanvasW, rc.CanvasH)
	input := core.NewInputFrame()

	h := help.New()
	h.ShowAll = false

	return Model{
		app:      app,
		canvas:   core.NewCanvas(rc.CanvasW, rc.CanvasH),
		screen:   core.NewScreen(cols, rows),
		renderer: NewRenderer(lg),
		input:    &input,
		keys:     NewKeyMap(keys),
		help:     h,
		tickRate: rc.TickRate,
		frames:   new(uint64),
	}
}

// Init initializes the app and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.app.Init()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, m.input) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs exactly one app frame with the presses gathered since
// the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.app.Update(*m.input, m.canvas)
	m.input.Clear()
	*m.frames++

	core.RasterizeHalfBlocks(m.canvas.Image(), m.screen)
	return m, tickCmd(m.tickRate)
}

// Frames returns how many app frames have run.
func (m Model) Frames() uint64 {
	return *m.frames
}

// Screen returns the half-block buffer of the last frame.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for app in the local terminal.
func Run(app registry.App, rc core.RuntimeConfig, keys config.KeysConfig) error {
	model := NewModel(app, rc, keys, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
