package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/badge-arcade/internal/core"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())

	colors, err := Default().Theme.Colors()
	require.NoError(t, err)
	assert.Equal(t, core.ColorBlack, colors.Background)
	assert.Equal(t, core.ColorWhite, colors.Foreground)
	assert.Equal(t, core.RGB(80, 200, 120), colors.Accent)
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.yaml")
	doc := []byte("glyph:\n  layout: fixed\nkeys:\n  a: [space]\n")
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	cfg, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, GlyphFixed, cfg.Glyph.Layout)
	assert.Equal(t, []string{"space"}, cfg.Keys.A)

	// Untouched sections keep their defaults
	assert.Equal(t, 160, cfg.Display.Width)
	assert.Equal(t, []string{"b", "x", "2"}, cfg.Keys.B)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("glyph:\n  layout: sideways\n"), 0o600))
	_, _, err = Load(bad)
	assert.ErrorContains(t, err, "glyph.layout")
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPrefersLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "badge.yaml"), []byte("display:\n  tick_rate: 60\n"), 0o600))

	cfg, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "badge.yaml"), source)
	assert.Equal(t, 60, cfg.Display.TickRate)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }, "display size"},
		{"zero tick rate", func(c *Config) { c.Display.TickRate = 0 }, "tick_rate"},
		{"zero scale", func(c *Config) { c.Display.Scale = 0 }, "scale"},
		{"unknown loader", func(c *Config) { c.Font.Loader = "ppf" }, "font.loader"},
		{"unknown layout", func(c *Config) { c.Glyph.Layout = "grid" }, "glyph.layout"},
		{"zero cell", func(c *Config) { c.Glyph.CellHeight = 0 }, "glyph cell"},
		{"no reference", func(c *Config) { c.Glyph.Reference = "" }, "glyph.reference"},
		{"bad colour", func(c *Config) { c.Theme.Accent = "greenish" }, "theme.accent"},
		{"unbound button", func(c *Config) { c.Keys.C = nil }, "button C"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}

func TestRuntime(t *testing.T) {
	rc := Default().Runtime(99)
	assert.Equal(t, core.RuntimeConfig{CanvasW: 160, CanvasH: 120, TickRate: 30, Seed: 99}, rc)
}

func TestThemeAcceptsColourNames(t *testing.T) {
	cfg, err := Parse([]byte("theme:\n  accent: seagreen\n"))
	require.NoError(t, err)

	colors, err := cfg.Theme.Colors()
	require.NoError(t, err)
	assert.Equal(t, core.RGB(46, 139, 87), colors.Accent)
}
