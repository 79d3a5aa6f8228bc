package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/badge-arcade/internal/core"
)

type cellColors struct {
	fg, bg core.Color
}

// Renderer turns a half-block Screen into styled terminal output.
// Styles are cached per colour pair and bound to one lipgloss renderer,
// so each SSH session gets its own.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer; nil uses the process-wide lipgloss renderer.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[cellColors]lipgloss.Style),
	}
}

func (r *Renderer) style(c cellColors) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := r.lg.NewStyle().
		Foreground(lipgloss.Color(c.fg.Hex())).
		Background(lipgloss.Color(c.bg.Hex()))
	r.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
