// Package registry maps game IDs to factories so the command line and the
// terminal frontend can start a mode without importing it directly.
// Modes register themselves from init().
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/cplxtris/internal/core"
)

// Game is the contract between a game mode and the frontend.
// Implementations hold pure logic; the frontend owns input, timing and output.
type Game interface {
	// ID is the stable identifier used on the command line and as the score key.
	ID() string

	// Title is the name shown in menus and score tables.
	Title() string

	// Reset starts a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick, applying the queued actions in order.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, lines, level and the paused/over flags.
	State() core.GameState
}

// Controller is implemented by games that describe their own key bindings.
type Controller interface {
	Controls() string
}

// Resizer is implemented by games that react to terminal size changes
// without a full reset.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Controls string // empty unless the game is a Controller
}

// Factory creates a new, not yet reset, game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a factory. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	info := GameInfo{ID: id}
	g := f()
	info.Title = g.Title()
	if c, ok := g.(Controller); ok {
		info.Controls = c.Controls()
	}
	factories[id] = f
	infos[id] = info
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if info, ok := infos[id]; ok {
		return info.Title
	}
	return id
}
