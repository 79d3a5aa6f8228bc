package rps

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/badge-arcade/internal/core"
	"github.com/vovakirdan/badge-arcade/internal/registry"
)

func init() {
	registry.Register(AppID, AppTitle, func(env registry.Env) registry.App {
		return NewFromEnv(env)
	})
}

// NewFromEnv builds a controller from host settings. A zero seed is
// resolved from the clock. An invalid theme is logged and replaced with
// the default one.
func NewFromEnv(env registry.Env) *Controller {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix(AppID)

	theme, err := ThemeFromConfig(env.Settings.Theme)
	if err != nil {
		logger.Warn("invalid theme, using defaults", "err", err)
		theme = DefaultTheme()
	}

	return New(
		WithSeed(core.ResolveSeed(env.Runtime, core.NewMonotonicClock())),
		WithTheme(theme),
		WithGlyphLayout(GlyphLayoutFor(env.Settings.Glyph)),
		WithFont(env.Font),
		WithRoundHook(func(r Round) {
			logger.Info("round finished",
				"player", r.Player,
				"badge", r.Badge,
				"outcome", r.Outcome,
			)
		}),
	)
}
