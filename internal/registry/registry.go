// Package registry provides a global registry for badge apps.
// Apps register themselves in init() functions, allowing hosts to discover
// and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"

	"github.com/vovakirdan/badge-arcade/internal/config"
	"github.com/vovakirdan/badge-arcade/internal/core"
)

// App is the interface every badge app implements.
// Apps contain pure logic: the host owns the frame loop, input and display.
type App interface {
	// ID returns a unique identifier for this app (e.g., "rps").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Init is called once before the first frame.
	Init()

	// Update advances the app by one frame and draws the whole frame.
	// It is called exactly once per displayed frame.
	Update(in core.InputFrame, dst core.Surface)
}

// Env carries what a host hands to an app factory.
type Env struct {
	Runtime  core.RuntimeConfig
	Settings config.Config
	Font     font.Face   // nil means the surface default
	Logger   *log.Logger // never nil when built by NewEnv
}

// NewEnv builds an Env, substituting a discarding logger for nil.
func NewEnv(rc core.RuntimeConfig, settings config.Config, face font.Face, logger *log.Logger) Env {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Env{Runtime: rc, Settings: settings, Font: face, Logger: logger}
}

// AppInfo contains metadata about a registered app.
type AppInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of an app.
type Factory func(env Env) App

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an app factory to the registry.
// Typically called from an app's init() function.
// Panics if an app with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: app %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered apps, sorted by ID.
func List() []AppInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AppInfo, 0, len(factories))
	for id := range factories {
		result = append(result, AppInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new app by its ID.
// Returns an error if the app ID is not registered.
func Create(id string, env Env) (App, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown app %q", id)
	}

	return f(env), nil
}

// Exists checks if an app with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
