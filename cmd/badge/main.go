// badge runs badge apps (Rock Paper Scissors and friends) on a simulated
// 160x120 badge display.
//
// Usage:
//
//	badge list               - List available apps
//	badge play <app>         - Play an app in the terminal
//	badge window <app>       - Play an app in a desktop window
//	badge serve              - Start SSH server for remote play
//	badge frame <app>        - Run frames headless and print the screen
//	badge config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Use a specific badge.yaml
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import apps to register them
	_ "github.com/vovakirdan/badge-arcade/internal/games/rps"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "badge",
	Short: "Badge Arcade - badge apps in your terminal, a window or over SSH",
	Long: `Badge Arcade runs apps written for a small 160x120 badge with three
buttons (A, B, C). The same app can be played in the terminal, in a desktop
window or by anyone connecting over SSH.

Available commands:
  list     - Show all available apps
  play     - Play an app in the terminal
  window   - Play an app in a desktop window
  serve    - Start SSH server for remote play
  frame    - Run frames headless and print the final screen
  config   - Print the effective configuration

Examples:
  badge list
  badge play rps
  badge window rps
  badge serve --ssh :2222
  badge frame rps --press a,,b --frames 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to badge config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(configCmd)
}
