package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
)

// KeyMap binds terminal keys to the badge buttons.
type KeyMap struct {
	A    key.Binding
	B    key.Binding
	C    key.Binding
	Quit key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		A: buttonBinding(keys.A, "A"),
		B: buttonBinding(keys.B, "B"),
		C: buttonBinding(keys.C, "C"),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func buttonBinding(names []string, label string) key.Binding {
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(names, "/"), "button "+label),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.A, k.B, k.C, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.A, k.B, k.C}, {k.Quit}}
}

// Button returns the badge button bound to msg.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.A):
		return core.ButtonA, true
	case key.Matches(msg, k.B):
		return core.ButtonB, true
	case key.Matches(msg, k.C):
		return core.ButtonC, true
	}
	return 0, false
}

// MapKeyToFrame records the button bound to msg in frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		return true
	}
	if b, ok := k.Button(msg); ok {
		frame.Set(b)
	}
	return false
}
