package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSSHServerRejectsUnknownApp(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.AppID = "no-such-app"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	_, err := NewSSHServer(cfg, log.New(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown app")
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	assert.Equal(t, ":23234", cfg.Address)
	assert.Equal(t, "rps", cfg.AppID)
	assert.NoError(t, cfg.Settings.Validate())
}
