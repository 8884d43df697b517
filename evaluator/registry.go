package evaluator

import (
	"fmt"
	"slices"
	"sync"

	"github.com/liamcoop/tagval/values"
)

// Registry holds compiled guard engines by table name.
// Replacing a table compiles the new engine first and swaps it in only on
// success, so readers never see a half-built table.
type Registry struct {
	engines map[string]*GuardEngine
	mu      sync.RWMutex
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]*GuardEngine)}
}

// Register compiles table and stores it under its name, replacing any previous engine
func (r *Registry) Register(table GuardTable) error {
	engine, err := NewGuardEngine(table)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.engines[table.Name] = engine
	r.mu.Unlock()

	return nil
}

// Get retrieves the engine for a table
func (r *Registry) Get(name string) (*GuardEngine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	en, exists := r.engines[name]
	if !exists {
		return nil, fmt.Errorf("guard table %s not found", name)
	}
	return en, nil
}

// Classify runs v through the named table
func (r *Registry) Classify(name string, v values.Value) (string, error) {
	en, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return en.Classify(v)
}

// List returns the registered table names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Remove drops a table from the registry
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; !exists {
		return fmt.Errorf("guard table %s not found", name)
	}
	delete(r.engines, name)
	return nil
}
