package app

import (
	"sync"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/usecase"
)

// Registry tracks live sessions by id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Add stores session and returns the new session count.
func (r *Registry) Add(s *Session) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return len(r.sessions)
}

// Get returns session by id or ErrNotFound.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return s, nil
}

// Remove deletes session by id and returns it.
func (r *Registry) Remove(id string) (*Session, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, len(r.sessions), domainErrors.ErrNotFound
	}
	delete(r.sessions, id)
	return s, len(r.sessions), nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Stores returns the root stores of all live sessions.
func (r *Registry) Stores() []*usecase.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*usecase.Store, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.Store)
	}
	return out
}

// CloseAll ends every session's chat and empties the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
