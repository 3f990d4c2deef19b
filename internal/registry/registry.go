// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the command
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// ErrUnknownFrontend is returned by Create for an unregistered ID.
var ErrUnknownFrontend = errors.New("registry: unknown frontend")

// Frontend hosts the frame loop on a real display: it supplies the input
// source, the draw surface and the pacing, and drives the loop until quit.
type Frontend interface {
	// ID returns a unique identifier (e.g., "tui", "window").
	// Used for the --frontend flag and the config file.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run builds a loop around opts.Simulation and drives it until the
	// player quits or ctx is cancelled. Startup failures of the display
	// are returned as errors.
	Run(ctx context.Context, opts RunOptions) error
}

// RunOptions carries everything a frontend needs to host a session.
type RunOptions struct {
	Simulation   engine.Simulation
	Observer     engine.Observer // Optional, e.g. a replay recorder
	Logger       *log.Logger     // Optional
	TickRate     int             // Nominal ticks per second for frontends without vsync
	ReleaseAfter time.Duration   // Key-release window for frontends without key-up events
	RepeatDelay  time.Duration   // Release window before a held key first auto-repeats
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFrontend, id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
