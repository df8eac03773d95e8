// Package memkv is an in-memory key-value store. It backs tests and
// configurations without a database; contents do not survive a restart.
package memkv

import (
	"context"
	"sync"

	"hatbazar/internal/core/ports"
)

// Store is a thread-safe in-memory implementation of ports.KeyValueStore.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ ports.KeyValueStore = &Store{}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Get returns the value for key; found is false when the key is absent.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.values[key]
	if !found {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}

// Delete removes the key; deleting an absent key is a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
