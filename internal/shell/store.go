package shell

import (
	"sort"
)

// Preset values seeded into every session.
const (
	PresetPI = 3.14159265359
	PresetE  = 2.71828182846
)

// Store maps variable names to values. Entries are never removed.
type Store struct {
	values map[string]float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]float64)}
}

// NewPresetStore creates a store holding PI and E.
func NewPresetStore() *Store {
	s := NewStore()
	s.Set("PI", PresetPI)
	s.Set("E", PresetE)
	return s
}

// Get returns the value stored under name and whether it exists.
func (s *Store) Get(name string) (float64, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set inserts or overwrites name.
func (s *Store) Set(name string, value float64) {
	s.values[name] = value
}

// Len returns the number of variables.
func (s *Store) Len() int {
	return len(s.values)
}

// List returns all variables sorted by name.
func (s *Store) List() []Variable {
	vars := make([]Variable, 0, len(s.values))
	for name, value := range s.values {
		vars = append(vars, Variable{Name: name, Value: value})
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
	return vars
}
