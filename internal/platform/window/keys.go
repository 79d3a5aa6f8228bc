package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
)

// keyNames maps configured key names to ebiten keys. Names follow the
// terminal host ("a", "1", "enter", "left", ...).
var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8, "9": ebiten.KeyDigit9,

	"space":     ebiten.KeySpace,
	" ":         ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
}

// quitKey closes the window. It cannot be bound to a button.
const quitKey = ebiten.KeyEscape

// ParseKey returns the ebiten key for a configured key name.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("window: unsupported key %q", name)
	}
	return k, nil
}

type binding struct {
	key    ebiten.Key
	button core.Button
}

// bindingsFor resolves the configured keys of every button.
func bindingsFor(keys config.KeysConfig) ([]binding, error) {
	var out []binding
	for _, b := range core.Buttons {
		for _, name := range keys.ForButton(b) {
			k, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("window: button %s: %w", b, err)
			}
			out = append(out, binding{key: k, button: b})
		}
	}
	return out, nil
}
