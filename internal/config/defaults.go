package config

import (
	_ "embed"
)

//go:embed defaults/badge.yaml
var defaultBadgeYAML []byte

// Default returns the built-in badge configuration.
// It matches defaults/badge.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:    160,
			Height:   120,
			TickRate: 30,
			Scale:    4,
		},
		Font: FontConfig{
			Path:   "/system/assets/fonts/bacteria.ttf",
			Loader: "auto",
			Size:   8,
		},
		Glyph: GlyphConfig{
			Layout:     GlyphMeasured,
			Reference:  "#",
			CellWidth:  8,
			CellHeight: 10,
		},
		Theme: ThemeConfig{
			Background: "#000000",
			Foreground: "#ffffff",
			Accent:     "#50c878",
		},
		Keys: KeysConfig{
			A: []string{"a", "z", "1"},
			B: []string{"b", "x", "2"},
			C: []string{"c", "3"},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultBadgeYAML
}
