// Package kv provides the single-slot token store.
package kv

import (
	"context"
	"sync"

	"twashell/internal/domain/repository"
)

type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryTokenStore creates an in-memory token store holding the last
// acquired registration token.
func NewMemoryTokenStore() repository.TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return "", repository.ErrNoToken
	}

	return s.token, nil
}

func (s *memoryTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true

	return nil
}

func (s *memoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false

	return nil
}
