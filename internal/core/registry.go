package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Profile)
	registryMu sync.RWMutex
)

// Register adds a profile to the registry.
// Panics if the profile is invalid or a profile with the same name is
// already registered. Use it from init functions.
func Register(p Profile) {
	if err := TryRegister(p); err != nil {
		panic(err.Error())
	}
}

// TryRegister adds a profile to the registry, returning an error instead of
// panicking. Used for profiles loaded from files at runtime.
func TryRegister(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[p.Name]; exists {
		return fmt.Errorf("profile already registered: %s", p.Name)
	}

	if p.Output == "" {
		p.Output = p.Name + ".json"
	}

	registry[p.Name] = p
	return nil
}

// Get returns a profile by name.
// Returns false if not found.
func Get(name string) (Profile, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[name]
	return p, ok
}

// Lookup returns a profile by name or an error naming the known profiles.
func Lookup(name string) (Profile, error) {
	if p, ok := Get(name); ok {
		return p, nil
	}
	return Profile{}, fmt.Errorf("unknown profile %q (known: %v)", name, Names())
}

// All returns all registered profiles sorted by name.
func All() []Profile {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Profile, 0, len(registry))
	for _, p := range registry {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns all registered profile names, sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// ProfileCount returns the number of registered profiles.
func ProfileCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered profiles.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Profile)
}
