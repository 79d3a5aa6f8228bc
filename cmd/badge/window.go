package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/badge-arcade/internal/platform/window"
)

var flagShowTPS bool

var windowCmd = &cobra.Command{
	Use:   "window <app>",
	Short: "Play an app in a desktop window",
	Long: `Open a desktop window showing the badge display scaled by
display.scale from the configuration.

Examples:
  badge window rps
  badge window rps --fps 60 --show-tps`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagShowTPS, "show-tps", false, "Overlay the measured ticks per second")
}

func runWindow(_ *cobra.Command, args []string) error {
	s, err := newSetup(args[0], false)
	if err != nil {
		return err
	}
	return window.Run(s.app, s.runtime, s.settings, window.Options{ShowTPS: flagShowTPS}, s.logger.WithPrefix("window"))
}
