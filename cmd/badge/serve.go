package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/badge-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeApp    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the badge SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own badge with its own random seed; nothing
is shared between sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.badge/host_key

Examples:
  badge serve                           # Listen on :23234 with auto-generated key
  badge serve --ssh :2222               # Listen on port 2222
  badge serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeApp, "app", "rps", "App every session plays")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	settings, err := loadSettings(logger)
	if err != nil {
		return err
	}
	newFont, err := fontSource(settings, logger)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.AppID = flagServeApp
	cfg.Settings = settings
	cfg.Seed = flagSeed
	cfg.NewFont = newFont

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("badge-ssh"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	return server.ListenAndServe(ctx)
}
