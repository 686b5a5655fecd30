package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
)

// PreferenceRepositoryStub stores preferences in-memory for tests.
type PreferenceRepositoryStub struct {
	mu     sync.Mutex
	Values map[string]string
	GetErr error
	SetErr error
	Sets   int
}

// NewPreferenceRepositoryStub constructs stub with initialized map.
func NewPreferenceRepositoryStub() *PreferenceRepositoryStub {
	return &PreferenceRepositoryStub{Values: make(map[string]string)}
}

// Get returns stored value or ErrNotFound.
func (s *PreferenceRepositoryStub) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", s.GetErr
	}
	v, ok := s.Values[key]
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	return v, nil
}

// Set stores value unless stub has explicit error.
func (s *PreferenceRepositoryStub) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
	s.Sets++
	return nil
}
