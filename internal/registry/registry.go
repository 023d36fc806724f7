// Package registry provides the character capability table.
// Characters register themselves in init() functions, allowing the
// simulation to resolve a character's artwork by identifier without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// DrawFunc paints a character into dst at the given cell rectangle.
// frame is the simulation frame counter, used for animation.
// It must not retain dst.
type DrawFunc func(dst *core.Screen, x, y, w, h int, frame int)

// Character is one entry of the capability table.
type Character struct {
	ID    string
	Title string
	Color core.Color // Menu highlight
	Draw  DrawFunc
}

// CharacterInfo contains metadata about a registered character.
type CharacterInfo struct {
	ID    string
	Title string
}

var (
	characters = make(map[string]Character)
	mu         sync.RWMutex
)

// Register adds a character to the table.
// Typically called from an init() function.
// Panics on a duplicate ID or a missing draw function.
func Register(c Character) {
	mu.Lock()
	defer mu.Unlock()

	if c.ID == "" {
		panic("registry: character with empty ID")
	}
	if c.Draw == nil {
		panic(fmt.Sprintf("registry: character %q has no draw function", c.ID))
	}
	if _, exists := characters[c.ID]; exists {
		panic(fmt.Sprintf("registry: character %q already registered", c.ID))
	}

	characters[c.ID] = c
}

// List returns information about all registered characters, sorted by ID.
func List() []CharacterInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CharacterInfo, 0, len(characters))
	for id, c := range characters {
		result = append(result, CharacterInfo{
			ID:    id,
			Title: c.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup resolves a character by its ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Character, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := characters[id]
	if !ok {
		return Character{}, fmt.Errorf("registry: unknown character %q", id)
	}

	return c, nil
}

// Exists checks if a character with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := characters[id]
	return ok
}
