package core

import "golang.org/x/image/font"

// Surface is the immediate-mode drawing API a badge app renders into.
// It mirrors the badge firmware: a current brush and font are set, then
// shapes and text are drawn with them. Coordinates are canvas pixels and
// may lie partly or wholly off-canvas; such drawing is clipped.
type Surface interface {
	// Width and Height return the logical canvas size.
	Width() int
	Height() int

	// SetBrush sets the colour used by subsequent drawing calls.
	SetBrush(c Color)
	// Brush returns the current brush colour.
	Brush() Color

	// SetFont sets the face used for text. nil selects the default face.
	SetFont(face font.Face)
	// HasCustomFont reports whether a non-default face is active.
	HasCustomFont() bool

	// Clear fills the whole canvas with the current brush.
	Clear()
	// Rect fills a rectangle with the current brush.
	Rect(r Rect)
	// RoundedRect fills a rectangle with rounded corners.
	RoundedRect(r Rect, radius int)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y int)
	// MeasureText returns the rendered width and line height of s.
	MeasureText(s string) (w, h int)
}
