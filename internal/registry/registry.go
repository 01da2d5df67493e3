// Package registry provides a global registry for mission factories.
// Each built-in map registers itself in an init() function, so the
// platform and the CLI discover missions without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raider/internal/core"
)

// Game is the contract between a mission and the platform. Missions hold
// pure simulation logic with no terminal dependencies (especially no
// Bubble Tea); the platform owns input mapping, timing and drawing.
type Game interface {
	// ID returns the unique mission identifier (e.g. "citadel").
	// Used for CLI flags and score storage.
	ID() string

	// Title returns the display name (e.g. "The Citadel").
	Title() string

	// Reset initializes or restarts the mission. The RuntimeConfig
	// provides screen dimensions, tick rate and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the
	// platform-level actions held in the input frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into the screen buffer. The
	// buffer is pre-cleared before this call.
	Render(dst *core.Screen)

	// State reports score, pause and game-over status.
	State() core.GameState
}

// GameInfo is the metadata of one registered mission.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh mission instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mission factory under the given ID. Called from
// init(); panics on a duplicate ID because that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mission %q already registered", id))
	}

	factories[id] = f

	// Resolve the title once via a throwaway instance.
	g := f()
	titles[id] = g.Title()
}

// List returns all registered missions, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the mission registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mission %q", id)
	}

	return f(), nil
}

// Exists reports whether a mission with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
