package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
)

// Store keeps preferences in process memory.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New constructs an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the stored value or ErrNotFound.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	return v, nil
}

// Set stores value.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}
