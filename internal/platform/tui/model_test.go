package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
)

// countingApp records how it is driven and paints one white pixel.
type countingApp struct {
	inits   int
	updates int
	pressed map[core.Button]int
}

func (a *countingApp) ID() string    { return "counting" }
func (a *countingApp) Title() string { return "Counting" }
func (a *countingApp) Init()         { a.inits++ }

func (a *countingApp) Update(in core.InputFrame, dst core.Surface) {
	a.updates++
	if a.pressed == nil {
		a.pressed = make(map[core.Button]int)
	}
	for _, b := range core.Buttons {
		if in.Has(b) {
			a.pressed[b]++
		}
	}
	dst.SetBrush(core.ColorBlack)
	dst.Clear()
	dst.SetBrush(core.ColorWhite)
	dst.Rect(core.NewRect(0, 0, 1, 1))
}

func newTestModel(app *countingApp) Model {
	return NewModel(app, core.DefaultConfig(), config.Default().Keys, lipgloss.NewRenderer(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelInitStartsApp(t *testing.T) {
	app := &countingApp{}
	m := newTestModel(app)

	cmd := m.Init()
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, app.inits)
	assert.Equal(t, 0, app.updates)
}

func TestModelOneUpdatePerTick(t *testing.T) {
	app := &countingApp{}
	m := newTestModel(app)

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, runeKey('c'))
	assert.Equal(t, 0, app.updates)

	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, app.updates)
	assert.Equal(t, 1, app.pressed[core.ButtonA])
	assert.Equal(t, 1, app.pressed[core.ButtonC])

	// Presses are cleared after the frame that consumed them.
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 2, app.updates)
	assert.Equal(t, 1, app.pressed[core.ButtonA])
	assert.Equal(t, uint64(2), m.Frames())
}

func TestModelViewShowsCanvasAndHelp(t *testing.T) {
	app := &countingApp{}
	m := newTestModel(app)
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	assert.Contains(t, view, string(core.HalfBlockUpper))
	assert.Contains(t, view, "button A")
	assert.Equal(t, core.HalfBlockUpper, m.Screen().Get(0, 0))
}

func TestModelQuit(t *testing.T) {
	app := &countingApp{}
	m := newTestModel(app)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
