package core

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the face used when no custom font is active.
var DefaultFace font.Face = basicfont.Face7x13

// Canvas is a software Surface backed by an RGBA image.
// Every host renders through a Canvas and then presents its pixels in
// whatever way suits it (half-block text, GPU texture, ...).
type Canvas struct {
	img    *image.RGBA
	dc     *gg.Context
	brush  Color
	face   font.Face
	custom bool
}

// NewCanvas creates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := &Canvas{
		img: img,
		dc:  gg.NewContextForRGBA(img),
	}
	c.SetFont(nil)
	c.SetBrush(ColorBlack)
	c.Clear()
	c.SetBrush(ColorWhite)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// SetBrush sets the current drawing colour.
func (c *Canvas) SetBrush(col Color) {
	c.brush = col
	c.dc.SetColor(col.RGBA())
}

// Brush returns the current drawing colour.
func (c *Canvas) Brush() Color {
	return c.brush
}

// SetFont sets the current face; nil restores DefaultFace.
func (c *Canvas) SetFont(face font.Face) {
	c.custom = face != nil
	if face == nil {
		face = DefaultFace
	}
	c.face = face
	c.dc.SetFontFace(face)
}

// HasCustomFont reports whether a face other than DefaultFace is active.
func (c *Canvas) HasCustomFont() bool {
	return c.custom
}

// Clear fills the whole canvas with the current brush.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// Rect fills r with the current brush.
func (c *Canvas) Rect(r Rect) {
	if r.Empty() {
		return
	}
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	c.dc.Fill()
}

// RoundedRect fills r with corners of the given radius.
func (c *Canvas) RoundedRect(r Rect, radius int) {
	if r.Empty() {
		return
	}
	radius = Clamp(radius, 0, Min(r.W, r.H)/2)
	c.dc.DrawRoundedRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), float64(radius))
	c.dc.Fill()
}

// Text draws s with its top-left corner at (x, y).
func (c *Canvas) Text(s string, x, y int) {
	if s == "" {
		return
	}
	ascent := c.face.Metrics().Ascent.Ceil()
	c.dc.DrawString(s, float64(x), float64(y+ascent))
}

// MeasureText returns the advance width and line height of s.
func (c *Canvas) MeasureText(s string) (w, h int) {
	fw, fh := c.dc.MeasureString(s)
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}

// At returns the colour of the pixel at (x, y).
// Out-of-bounds coordinates return black.
func (c *Canvas) At(x, y int) Color {
	if !image.Pt(x, y).In(c.img.Bounds()) {
		return ColorBlack
	}
	return ColorOf(c.img.RGBAAt(x, y))
}

// Image exposes the backing image. Callers must not retain it across frames
// if they need a stable copy.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

var _ Surface = (*Canvas)(nil)
