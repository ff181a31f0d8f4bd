// Package memory implements an in-memory state store for development and testing.
package memory

import (
	"sync"
)

// StateStore implements repository.StateStore without durability
type StateStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewStateStore creates a new in-memory state store
func NewStateStore() *StateStore {
	return &StateStore{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key, reporting whether it exists
func (s *StateStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.values[key]
	return value, found, nil
}

// Set writes value under key, overwriting any previous value
func (s *StateStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes key; deleting an absent key is not an error
func (s *StateStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
