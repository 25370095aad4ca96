// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no frontend dependencies (no ebiten, no Bubble Tea).
// The platform handles input mapping, timing, and presentation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy", "pong4p").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns the window title (e.g., "Flappy Box").
	Title() string

	// Field returns the fixed logical resolution in pixels.
	Field() (w, h int)

	// Bindings lists the keys this game reads, including Escape to quit.
	Bindings() []core.Binding

	// Reset initializes or resets the game state.
	// Called once before the first Step. The RuntimeConfig provides the
	// tick rate for second-based timers and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick: entity update,
	// collision and removal, then timers.
	Step(in core.MultiInputFrame) core.StepResult

	// Render draws the current game state into the canvas in z-order.
	// The canvas is pre-cleared before this call.
	Render(dst *core.Canvas)

	// State returns the current game state.
	State() core.GameState
}

// Options carries construction-time settings for a factory.
type Options struct {
	// ConfigPath overrides the config search order when non-empty.
	ConfigPath string

	// Embedded skips every file on disk and uses the built-in tuning.
	// ConfigPath is ignored when set.
	Embedded bool
}

// LoadConfig resolves a game's config for opts: the built-in tuning when
// opts.Embedded is set, otherwise load with the config search order.
func LoadConfig[T any](opts Options, load func(customPath string) (T, error), builtin func() (T, error)) (T, error) {
	if opts.Embedded {
		return builtin()
	}
	return load(opts.ConfigPath)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Width  int
	Height int
}

// Factory creates a new instance of a game.
// Configuration problems are returned as errors and are fatal to the caller.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: game registered without an ID")
	}
	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata registered for id.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or its factory fails.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
