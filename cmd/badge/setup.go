package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"

	"github.com/vovakirdan/badge-arcade/internal/assets"
	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
	"github.com/vovakirdan/badge-arcade/internal/registry"
)

// newLogger builds the root logger at the level given by --log-level.
func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "badge",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// loadSettings loads the configuration and applies command-line overrides.
func loadSettings(logger *log.Logger) (config.Config, error) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		settings.Display.TickRate = flagFPS
	}
	logger.Debug("configuration loaded", "source", source)
	return settings, nil
}

// fontSource returns a function loading a fresh custom face, or nil when
// the configured loader is invalid.
func fontSource(settings config.Config, logger *log.Logger) (func() font.Face, error) {
	loader, err := assets.LoaderFor(settings.Font.Loader, settings.Font.Size)
	if err != nil {
		return nil, err
	}
	return func() font.Face {
		return assets.LoadOrDefault(loader, settings.Font.Path, logger)
	}, nil
}

// setup holds what every single-badge command needs.
type setup struct {
	logger   *log.Logger
	settings config.Config
	runtime  core.RuntimeConfig
	app      registry.App
}

// newSetup loads configuration and the font, resolves the seed and creates
// the app with the given id. A quiet app only logs warnings and errors,
// for hosts that own the terminal while running.
func newSetup(appID string, quiet bool) (*setup, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	if !registry.Exists(appID) {
		return nil, fmt.Errorf("unknown app %q (run 'badge list' to see available apps)", appID)
	}

	settings, err := loadSettings(logger)
	if err != nil {
		return nil, err
	}

	newFont, err := fontSource(settings, logger)
	if err != nil {
		return nil, err
	}

	rc := settings.Runtime(flagSeed)
	rc.Seed = core.ResolveSeed(rc, core.NewMonotonicClock())

	appLogger := logger
	if quiet {
		appLogger = logger.With()
		appLogger.SetLevel(max(logger.GetLevel(), log.WarnLevel))
	}

	app, err := registry.Create(appID, registry.NewEnv(rc, settings, newFont(), appLogger))
	if err != nil {
		return nil, err
	}
	logger.Debug("app created", "app", appID, "seed", rc.Seed, "tps", rc.TickRate)

	return &setup{
		logger:   logger,
		settings: settings,
		runtime:  rc,
		app:      app,
	}, nil
}
