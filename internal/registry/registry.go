// Package registry provides a global registry for decision engine factories.
// Engines register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/threesus/internal/engine"
)

// Options configures an engine instance.
type Options struct {
	// Depth is the search depth for in-process engines.
	Depth int

	// Command and Args start an out-of-process engine.
	Command string
	Args    []string

	Logger *log.Logger
}

// EngineInfo contains metadata about a registered engine.
type EngineInfo struct {
	ID    string
	Title string
}

// Factory creates a new engine instance.
type Factory func(opts Options) (engine.Engine, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an engine factory to the registry.
// Panics if an engine with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: engine %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered engines, sorted by ID.
func List() []EngineInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EngineInfo, 0, len(factories))
	for id := range factories {
		result = append(result, EngineInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates an engine by its ID.
func Create(id string, opts Options) (engine.Engine, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown engine %q", id)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return f(opts)
}

// Exists checks if an engine with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
