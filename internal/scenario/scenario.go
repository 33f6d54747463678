// Package scenario provides a global registry of named world presets.
// Presets register themselves in init(), allowing the platform to list and
// instantiate worlds without hardcoded dependencies. Each scenario keeps its
// own persistent overlay, keyed by its name.
package scenario

import (
	"fmt"
	"sort"
	"sync"
)

// Scenario bundles the parameters that define one world preset. Zero-valued
// fields fall back to the loaded configuration at session construction.
type Scenario struct {
	Name             string  // Unique identifier, used in CLI and blob keys
	Title            string  // Human-readable name for display
	Seed             int64   // World seed (0 = use config/flag seed)
	SpawnProbability float64 // Token spawn chance per cell (0 = config value)
	Target           int     // Win target value (0 = config value)
	Radius           int     // Interaction radius in cells (0 = config value)
}

// BlobKey returns the overlay blob key for this scenario.
func (sc Scenario) BlobKey() string {
	return "overlay/" + sc.Name
}

var (
	presets = make(map[string]Scenario)
	mu      sync.RWMutex
)

// Register adds a scenario to the registry.
// Panics if a scenario with the same name is already registered.
func Register(sc Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[sc.Name]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", sc.Name))
	}
	presets[sc.Name] = sc
}

// List returns all registered scenarios, sorted by name.
func List() []Scenario {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Scenario, 0, len(presets))
	for _, sc := range presets {
		result = append(result, sc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Get looks up a scenario by name.
func Get(name string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	sc, ok := presets[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario: unknown scenario %q", name)
	}
	return sc, nil
}

// Exists checks whether a scenario with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[name]
	return ok
}

func init() {
	Register(Scenario{
		Name:  "classic",
		Title: "Classic (craft a 256 token)",
	})
	Register(Scenario{
		Name:             "dense",
		Title:            "Dense (crowded fields, short walks)",
		Seed:             7316,
		SpawnProbability: 0.30,
	})
	Register(Scenario{
		Name:             "scarce",
		Title:            "Scarce (sparse tokens, wide radius)",
		Seed:             911,
		SpawnProbability: 0.06,
		Radius:           5,
	})
	Register(Scenario{
		Name:   "marathon",
		Title:  "Marathon (craft all the way to 1024)",
		Seed:   2048,
		Target: 1024,
	})
}
