// Package config provides YAML-based configuration loading for the badge
// platform and its apps.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/badge-arcade/internal/core"
)

// Glyph layout policies.
const (
	GlyphMeasured = "measured"
	GlyphFixed    = "fixed"
)

// Config is the full badge configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Font    FontConfig    `yaml:"font"`
	Glyph   GlyphConfig   `yaml:"glyph"`
	Theme   ThemeConfig   `yaml:"theme"`
	Keys    KeysConfig    `yaml:"keys"`
}

// DisplayConfig describes the logical canvas and frame rate.
type DisplayConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
	Scale    int `yaml:"scale"` // Window pixels per canvas pixel
}

// FontConfig selects the optional custom font.
type FontConfig struct {
	Path   string  `yaml:"path"`
	Loader string  `yaml:"loader"` // "auto", "opentype", "plan9" or "none"
	Size   float64 `yaml:"size"`   // Point size for scalable fonts
}

// GlyphConfig selects how the hidden-move glyph is laid out.
type GlyphConfig struct {
	Layout     string `yaml:"layout"`    // "measured" or "fixed"
	Reference  string `yaml:"reference"` // Character measured by the measured layout
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
}

// ThemeConfig holds brush colours as "#rrggbb" or SVG colour names.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
}

// KeysConfig maps each badge button to host key names.
type KeysConfig struct {
	A []string `yaml:"a"`
	B []string `yaml:"b"`
	C []string `yaml:"c"`
}

// ForButton returns the key names bound to a button.
func (k KeysConfig) ForButton(b core.Button) []string {
	switch b {
	case core.ButtonA:
		return k.A
	case core.ButtonB:
		return k.B
	case core.ButtonC:
		return k.C
	default:
		return nil
	}
}

// Runtime converts the display section into a core.RuntimeConfig.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		CanvasW:  c.Display.Width,
		CanvasH:  c.Display.Height,
		TickRate: c.Display.TickRate,
		Seed:     seed,
	}
}

// Colors holds parsed theme colours.
type Colors struct {
	Background core.Color
	Foreground core.Color
	Accent     core.Color
}

// Colors parses the theme section.
func (t ThemeConfig) Colors() (Colors, error) {
	var c Colors
	var err error
	if c.Background, err = core.ParseColor(t.Background); err != nil {
		return c, fmt.Errorf("config: theme.background: %w", err)
	}
	if c.Foreground, err = core.ParseColor(t.Foreground); err != nil {
		return c, fmt.Errorf("config: theme.foreground: %w", err)
	}
	if c.Accent, err = core.ParseColor(t.Accent); err != nil {
		return c, fmt.Errorf("config: theme.accent: %w", err)
	}
	return c, nil
}

// Validate checks the configuration for values no host can run with.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: display size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config: display.tick_rate %d must be positive", c.Display.TickRate))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("config: display.scale %d must be positive", c.Display.Scale))
	}

	switch c.Font.Loader {
	case "", "auto", "opentype", "plan9", "none":
	default:
		errs = append(errs, fmt.Errorf("config: unknown font.loader %q", c.Font.Loader))
	}

	switch c.Glyph.Layout {
	case GlyphMeasured, GlyphFixed:
	default:
		errs = append(errs, fmt.Errorf("config: unknown glyph.layout %q", c.Glyph.Layout))
	}
	if c.Glyph.CellWidth <= 0 || c.Glyph.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: glyph cell %dx%d must be positive", c.Glyph.CellWidth, c.Glyph.CellHeight))
	}
	if c.Glyph.Layout == GlyphMeasured && c.Glyph.Reference == "" {
		errs = append(errs, errors.New("config: glyph.reference is required for the measured layout"))
	}

	if _, err := c.Theme.Colors(); err != nil {
		errs = append(errs, err)
	}

	for _, b := range core.Buttons {
		if len(c.Keys.ForButton(b)) == 0 {
			errs = append(errs, fmt.Errorf("config: no keys bound to button %s", b))
		}
	}

	return errors.Join(errs...)
}
