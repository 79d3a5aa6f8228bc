package rps

import (
	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
)

// Layout of the fixed screen elements.
const (
	headerHeight = 14
	titleX       = 4
	titleY       = 2

	choicesX      = 100
	choicesMargin = 2
	chooseY       = 24

	boxY       = 30
	boxSize    = 60
	boxRadius  = 6
	playerBoxX = 90
)

var choiceRows = [...]struct {
	label string
	y     int
}{
	{"A: Rock", 40},
	{"B: Paper", 60},
	{"C: Scissors", 80},
}

// Theme holds the three brushes the app draws with.
type Theme struct {
	Background core.Color
	Foreground core.Color
	Accent     core.Color
}

// DefaultTheme is black background, white text and a green accent.
func DefaultTheme() Theme {
	return Theme{
		Background: core.ColorBlack,
		Foreground: core.ColorWhite,
		Accent:     core.RGB(80, 200, 120),
	}
}

// ThemeFromConfig parses the configured theme colours.
func ThemeFromConfig(t config.ThemeConfig) (Theme, error) {
	c, err := t.Colors()
	if err != nil {
		return DefaultTheme(), err
	}
	return Theme{Background: c.Background, Foreground: c.Foreground, Accent: c.Accent}, nil
}

// drawChrome clears the surface and draws the header bar with the title.
// It leaves the foreground brush and the app font selected.
func (c *Controller) drawChrome(dst core.Surface) {
	dst.SetBrush(c.theme.Background)
	dst.Clear()

	dst.SetBrush(c.theme.Accent)
	dst.Rect(core.NewRect(0, 0, dst.Width(), headerHeight))

	dst.SetBrush(c.theme.Foreground)
	dst.SetFont(c.face)
	dst.Text(AppTitle, titleX, titleY)
}

// drawTextCenter centres s horizontally with its vertical middle at y.
func (c *Controller) drawTextCenter(dst core.Surface, s string, y int, col core.Color) {
	w, h := dst.MeasureText(s)
	dst.SetBrush(col)
	dst.Text(s, dst.Width()/2-w/2, y-h/2)
}

// drawChoices draws the "Choose:" prompt and the three labelled buttons.
func (c *Controller) drawChoices(dst core.Surface) {
	widest, _ := dst.MeasureText("Choose:")
	for _, row := range choiceRows {
		if w, _ := dst.MeasureText(row.label); w > widest {
			widest = w
		}
	}
	x := choicesX
	if x+widest > dst.Width()-choicesMargin {
		x = core.Max(0, dst.Width()-choicesMargin-widest)
	}

	dst.SetBrush(c.theme.Foreground)
	dst.Text("Choose:", x, chooseY)
	for _, row := range choiceRows {
		dst.Text(row.label, x, row.y)
	}
}

// drawMoveBox draws a rounded box at x with the move label centred inside.
func (c *Controller) drawMoveBox(dst core.Surface, m Move, x int) {
	dst.SetBrush(c.theme.Foreground)
	dst.RoundedRect(core.NewRect(x, boxY, boxSize, boxSize), boxRadius)

	label := m.Label()
	w, h := dst.MeasureText(label)
	dst.SetBrush(c.theme.Background)
	dst.Text(label, x+boxSize/2-w/2, boxY+boxSize/2-h/2)
}
