// Package registry keeps the games the platform can launch.
// Games register a factory from init(), so the CLI and the SSH menu find
// them without importing each game by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is what the platform drives: pure logic, no terminal, no clock.
// The platform decodes keys into actions, paces the ticks and paints the screen.
type Game interface {
	// ID returns a unique identifier, used by the CLI and the run history.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts the game from scratch for the given surface and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick, applying the frame's
	// actions in order.
	Step(in core.InputFrame) core.StepResult

	// Render clears dst and draws the current state.
	Render(dst *core.Screen)

	// State returns the summary shown in the status line.
	State() core.GameState
}

// Resizer is implemented by games that keep playing across a terminal
// resize instead of being reset.
type Resizer interface {
	Resize(w, h int)
}

// Reconfigurer is implemented by games that accept a reloaded config
// while running.
type Reconfigurer interface {
	UpdateConfig(cfg config.PlatformerConfig)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. Panics if the ID is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
