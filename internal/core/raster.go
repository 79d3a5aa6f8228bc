package core

import "image"

// Half-block glyphs used to fold two pixel rows into one character row.
const (
	HalfBlockUpper = '▀'
	FullBlock      = '█'
	Blank          = ' '
)

// HalfBlockSize returns the screen size needed to show an image of the
// given pixel size with RasterizeHalfBlocks.
func HalfBlockSize(width, height int) (cols, rows int) {
	return width, (height + 1) / 2
}

// RasterizeHalfBlocks folds img into dst, two vertical pixels per cell.
// The upper pixel becomes the foreground of '▀' and the lower pixel the
// background. Uniform cells collapse to a space (or full block) so that
// plain-text dumps stay readable.
func RasterizeHalfBlocks(img *image.RGBA, dst *Screen) {
	b := img.Bounds()
	for row := 0; row < dst.Height(); row++ {
		py := b.Min.Y + row*2
		for col := 0; col < dst.Width(); col++ {
			px := b.Min.X + col
			if px >= b.Max.X || py >= b.Max.Y {
				dst.SetCell(col, row, blankCell)
				continue
			}
			top := ColorOf(img.RGBAAt(px, py))
			bottom := ColorBlack
			if py+1 < b.Max.Y {
				bottom = ColorOf(img.RGBAAt(px, py+1))
			}
			dst.SetCell(col, row, halfBlockCell(top, bottom))
		}
	}
}

func halfBlockCell(top, bottom Color) Cell {
	if top == bottom {
		if top == ColorBlack {
			return Cell{Rune: Blank, FG: top, BG: bottom}
		}
		return Cell{Rune: FullBlock, FG: top, BG: bottom}
	}
	return Cell{Rune: HalfBlockUpper, FG: top, BG: bottom}
}
