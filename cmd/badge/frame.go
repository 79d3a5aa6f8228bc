package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/badge-arcade/internal/platform/tui"
)

var (
	flagFrames int
	flagPress  string
)

var frameCmd = &cobra.Command{
	Use:   "frame <app>",
	Short: "Run frames headless and print the final screen",
	Long: `Run an app for a number of frames without a terminal UI, feeding one
scripted entry of button presses per frame, and print the last frame as
plain half-block text.

Press script: comma-separated entries, one per frame. An entry lists
buttons joined with '+'; an empty entry presses nothing.

Examples:
  badge frame rps                            # Start screen
  badge frame rps --press a --frames 2       # Select screen
  badge frame rps --press a,b --frames 20    # Paper, revealed`,
	Args: cobra.ExactArgs(1),
	RunE: runFrame,
}

func init() {
	frameCmd.Flags().IntVar(&flagFrames, "frames", 1, "Number of frames to run")
	frameCmd.Flags().StringVar(&flagPress, "press", "", "Press script, e.g. a,,b+c")
}

func runFrame(cmd *cobra.Command, args []string) error {
	script, err := tui.ParseScript(flagPress)
	if err != nil {
		return err
	}
	if flagFrames < 1 {
		return fmt.Errorf("--frames must be at least 1")
	}

	s, err := newSetup(args[0], false)
	if err != nil {
		return err
	}

	_, screen := tui.RunFrames(s.app, s.runtime, script, max(flagFrames, len(script)))
	fmt.Fprintln(cmd.OutOrStdout(), screen.String())
	return nil
}
