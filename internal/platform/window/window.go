// Package window hosts a badge app in a desktop window with ebiten.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
	"github.com/vovakirdan/badge-arcade/internal/registry"
)

// Game implements ebiten.Game around one badge app.
// Ebiten calls Update at the configured TPS; each call is one app frame.
type Game struct {
	app      registry.App
	canvas   *core.Canvas
	frame    *ebiten.Image
	bindings []binding
	input    core.InputFrame
	logger   *log.Logger
	showTPS  bool
}

// Options tune the window host.
type Options struct {
	ShowTPS bool // overlay the measured ticks per second
}

// NewGame creates the window game for app.
func NewGame(app registry.App, rc core.RuntimeConfig, keys config.KeysConfig, opts Options, logger *log.Logger) (*Game, error) {
	bindings, err := bindingsFor(keys)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		app:      app,
		canvas:   core.NewCanvas(rc.CanvasW, rc.CanvasH),
		bindings: bindings,
		input:    core.NewInputFrame(),
		logger:   logger,
		showTPS:  opts.ShowTPS,
	}, nil
}

// Update polls the keys pressed this tick and runs one app frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(quitKey) {
		g.logger.Debug("quit key pressed", "key", quitKey)
		return ebiten.Termination
	}
	g.step(inpututil.IsKeyJustPressed)
	return nil
}

// step maps the keys reported by justPressed to buttons and runs one frame.
func (g *Game) step(justPressed func(ebiten.Key) bool) {
	for _, b := range g.bindings {
		if justPressed(b.key) && !g.input.Has(b.button) {
			g.input.Set(b.button)
			g.logger.Debug("button pressed", "button", b.button, "key", b.key)
		}
	}

	g.app.Update(g.input, g.canvas)
	g.input.Clear()
}

// Draw uploads the canvas and scales it onto the window.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.canvas.Width(), g.canvas.Height())
	}
	g.frame.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.frame, nil)

	if g.showTPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()))
	}
}

// Layout returns the logical canvas size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}

// Run opens a window of canvas size times scale and blocks until it closes.
func Run(app registry.App, rc core.RuntimeConfig, settings config.Config, opts Options, logger *log.Logger) error {
	g, err := NewGame(app, rc, settings.Keys, opts, logger)
	if err != nil {
		return err
	}

	scale := core.Max(1, settings.Display.Scale)
	ebiten.SetWindowSize(rc.CanvasW*scale, rc.CanvasH*scale)
	ebiten.SetWindowTitle(app.Title())
	ebiten.SetTPS(rc.TickRate)

	app.Init()
	logger.Info("window opened", "app", app.ID(), "scale", scale, "tps", rc.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	logger.Info("window closed", "app", app.ID())
	return nil
}
