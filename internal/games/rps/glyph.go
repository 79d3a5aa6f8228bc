package rps

import (
	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
)

// hiddenGlyph is the question mark shown in place of the badge's move.
var hiddenGlyph = [...]string{
	"  ###  ",
	" #   # ",
	"     # ",
	"   ##  ",
	"   #   ",
	"       ",
	"   #   ",
}

// Top-left corner of the hidden glyph.
const (
	glyphX = 10
	glyphY = 20
)

// Fixed glyph cell used when nothing better is known.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 10
)

// GlyphLayout decides the grid cell size for the hidden glyph.
type GlyphLayout interface {
	Cell(dst core.Surface) (w, h int)
}

// FixedCell always uses the same cell size.
type FixedCell struct {
	W, H int
}

// Cell returns the fixed size.
func (f FixedCell) Cell(core.Surface) (int, int) {
	return f.W, f.H
}

// MeasuredCell sizes cells from the active custom font, measuring
// Reference. Without a custom font it uses Fallback.
type MeasuredCell struct {
	Reference string
	Fallback  FixedCell
}

// Cell measures the reference character with the surface's current font.
func (m MeasuredCell) Cell(dst core.Surface) (int, int) {
	if m.Reference == "" || !dst.HasCustomFont() {
		return m.Fallback.Cell(dst)
	}
	w, h := dst.MeasureText(m.Reference)
	if w <= 0 || h <= 0 {
		return m.Fallback.Cell(dst)
	}
	return w, h
}

// GlyphLayoutFor builds the layout selected in configuration.
// Unknown layouts get the measured policy.
func GlyphLayoutFor(cfg config.GlyphConfig) GlyphLayout {
	fixed := FixedCell{W: cfg.CellWidth, H: cfg.CellHeight}
	if fixed.W <= 0 || fixed.H <= 0 {
		fixed = FixedCell{W: DefaultCellWidth, H: DefaultCellHeight}
	}
	if cfg.Layout == config.GlyphFixed {
		return fixed
	}
	return MeasuredCell{Reference: cfg.Reference, Fallback: fixed}
}

// drawHiddenGlyph renders the glyph one character per grid cell.
func drawHiddenGlyph(dst core.Surface, layout GlyphLayout) {
	cw, ch := layout.Cell(dst)
	for row, line := range hiddenGlyph {
		for col, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			dst.Text(string(r), glyphX+col*cw, glyphY+row*ch)
		}
	}
}
