package core

import (
	"fmt"
	"strings"
)

// Button is one of the badge's logical front buttons.
// Hosts map their physical keys onto these; apps only ever see buttons.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonC
)

// Buttons lists every logical button in display order.
var Buttons = []Button{ButtonA, ButtonB, ButtonC}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonC:
		return "C"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of buttons newly pressed during one frame.
// Holding a button does not re-trigger it; the host only reports presses.
type InputFrame struct {
	// Pressed maps buttons to whether they were pressed this frame.
	Pressed map[Button]bool
}

// NewInputFrame creates an input frame with the given buttons pressed.
func NewInputFrame(pressed ...Button) InputFrame {
	f := InputFrame{Pressed: make(map[Button]bool, len(pressed))}
	for _, b := range pressed {
		f.Pressed[b] = true
	}
	return f
}

// Set marks a button as pressed for this frame.
func (f *InputFrame) Set(b Button) {
	if f.Pressed == nil {
		f.Pressed = make(map[Button]bool)
	}
	f.Pressed[b] = true
}

// Has returns true if the given button was pressed this frame.
func (f InputFrame) Has(b Button) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[b]
}

// Empty reports whether no button was pressed this frame.
func (f InputFrame) Empty() bool {
	for _, pressed := range f.Pressed {
		if pressed {
			return false
		}
	}
	return true
}

// Clear resets all buttons for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// ParseButton parses a button name ("a", "B", ...).
func ParseButton(name string) (Button, error) {
	for _, b := range Buttons {
		if strings.EqualFold(name, b.String()) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("core: unknown button %q", name)
}
