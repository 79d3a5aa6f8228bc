package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/badge-arcade/internal/core"
	"github.com/vovakirdan/badge-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <app>",
	Short: "Play an app in the terminal",
	Long: `Start the specified app in the terminal.

The 160x120 badge display is drawn with half-block characters, so the
terminal needs at least 160 columns and 61 rows (60 for the display, one
for the help line). Use a small font or zoom out if needed.

Controls (default, see 'badge config'):
  A / Z / 1  - Button A
  B / X / 2  - Button B
  C / 3      - Button C
  Esc/Ctrl+C - Quit

Examples:
  badge play rps
  badge play rps --seed 42
  badge play rps --config ./my-badge.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	s, err := newSetup(args[0], true)
	if err != nil {
		return err
	}

	cols, rows := core.HalfBlockSize(s.runtime.CanvasW, s.runtime.CanvasH)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cols || h < rows+1 {
			s.logger.Warn("terminal is smaller than the badge display",
				"have", [2]int{w, h},
				"need", [2]int{cols, rows + 1},
			)
		}
	}

	s.logger.Info("starting", "app", s.app.ID(), "seed", s.runtime.Seed)
	return tui.Run(s.app, s.runtime, s.settings.Keys)
}
