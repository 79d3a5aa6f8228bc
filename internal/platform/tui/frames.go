package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/badge-arcade/internal/core"
	"github.com/vovakirdan/badge-arcade/internal/registry"
)

// ParseScript parses a comma-separated press script, one entry per frame.
// An entry holds button names joined by "+"; an empty entry is no press.
// "a,,b+c" presses A on frame 1, nothing on frame 2, B and C on frame 3.
func ParseScript(script string) ([]core.InputFrame, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}
	entries := strings.Split(script, ",")
	frames := make([]core.InputFrame, 0, len(entries))
	for i, entry := range entries {
		frame := core.NewInputFrame()
		for _, name := range strings.Split(entry, "+") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			b, err := core.ParseButton(name)
			if err != nil {
				return nil, fmt.Errorf("tui: press script entry %d: %w", i+1, err)
			}
			frame.Set(b)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// RunFrames drives app headless for n frames, feeding script[i] on frame i
// and no presses once the script runs out. It returns the canvas and the
// half-block screen of the last frame.
func RunFrames(app registry.App, rc core.RuntimeConfig, script []core.InputFrame, n int) (*core.Canvas, *core.Screen) {
	canvas := core.NewCanvas(rc.CanvasW, rc.CanvasH)
	cols, rows := core.HalfBlockSize(rc.CanvasW, rc.CanvasH)
	screen := core.NewScreen(cols, rows)

	app.Init()
	idle := core.NewInputFrame()
	for i := 0; i < n; i++ {
		in := idle
		if i < len(script) {
			in = script[i]
		}
		app.Update(in, canvas)
	}

	core.RasterizeHalfBlocks(canvas.Image(), screen)
	return canvas, screen
}
