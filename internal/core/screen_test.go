package core

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds writes are ignored, reads are blank
	assert.NotPanics(t, func() {
		s.Set(-1, 0, 'A')
		s.Set(100, 0, 'A')
		s.Set(0, -1, 'A')
		s.Set(0, 100, 'A')
	})
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenSetCellKeepsColours(t *testing.T) {
	s := NewScreen(4, 4)
	green := RGB(80, 200, 120)

	s.SetCell(1, 1, Cell{Rune: '▀', FG: green, BG: ColorWhite})
	c := s.GetCell(1, 1)
	assert.Equal(t, '▀', c.Rune)
	assert.Equal(t, green, c.FG)
	assert.Equal(t, ColorWhite, c.BG)

	// Set only touches the rune
	s.Set(1, 1, 'x')
	assert.Equal(t, green, s.GetCell(1, 1).FG)
}

func writeRow(s *Screen, x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(-1, 0, 'X')
	s.Set(3, 0, 'X')
	s.SetCell(0, 2, Cell{Rune: 'X'})

	assert.Equal(t, "   \n   ", s.String())
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		writeRow(s, 0, y, strings.Repeat("X", 10))
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		assert.Equal(t, strings.Repeat(" ", 10), s.Row(y))
	}
}

func TestScreenSetClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(5, 1)
	writeRow(s, 2, 0, "▀▀▀▀")

	assert.Equal(t, "  ▀▀▀", s.Row(0))
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	writeRow(s, 0, 0, "ABC")
	writeRow(s, 0, 1, "DEF")

	assert.Equal(t, "ABC\nDEF", s.String())
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	assert.Equal(t, "   ", s.Row(-1))
	assert.Equal(t, "   ", s.Row(1))
}

func TestRasterizeHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{255, 0, 0, 255}

	// Column 0: white over red, column 1: white over white, column 2: black
	img.SetRGBA(0, 0, white)
	img.SetRGBA(0, 1, red)
	img.SetRGBA(1, 0, white)
	img.SetRGBA(1, 1, white)
	img.SetRGBA(2, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(2, 1, color.RGBA{0, 0, 0, 255})
	// Odd last row pairs with implicit black
	img.SetRGBA(0, 2, white)

	cols, rows := HalfBlockSize(3, 3)
	require.Equal(t, 3, cols)
	require.Equal(t, 2, rows)

	s := NewScreen(cols, rows)
	RasterizeHalfBlocks(img, s)

	c := s.GetCell(0, 0)
	assert.Equal(t, HalfBlockUpper, c.Rune)
	assert.Equal(t, ColorWhite, c.FG)
	assert.Equal(t, RGB(255, 0, 0), c.BG)

	assert.Equal(t, FullBlock, s.Get(1, 0))
	assert.Equal(t, Blank, s.Get(2, 0))

	last := s.GetCell(0, 1)
	assert.Equal(t, HalfBlockUpper, last.Rune)
	assert.Equal(t, ColorBlack, last.BG)
}
