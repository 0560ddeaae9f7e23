// Package cachestore provides the in-memory CacheStorage implementation used
// by the asset cache manager.
package cachestore

import (
	"context"
	"sync"
	"time"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/domain/repository"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStorage struct {
	mu     sync.RWMutex
	ttl    time.Duration
	stores map[string]*memoryStore
}

// NewMemoryStorage creates an in-memory cache storage. A non-zero entry TTL
// from the cache config expires individual entries; generations themselves
// live until deleted on activation.
func NewMemoryStorage(cfg *config.CacheConfig) repository.CacheStorage {
	var ttl time.Duration
	if cfg != nil {
		ttl = cfg.EntryTTL
	}

	return &memoryStorage{
		ttl:    ttl,
		stores: make(map[string]*memoryStore),
	}
}

func (s *memoryStorage) Open(_ context.Context, name string) (repository.CacheStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[name]; ok {
		return store, nil
	}

	ttl := s.ttl
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	store := &memoryStore{
		entries: gocache.New(ttl, 0),
	}
	s.stores[name] = store

	return store, nil
}

func (s *memoryStorage) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.stores))
	for name := range s.stores {
		names = append(names, name)
	}

	return names, nil
}

func (s *memoryStorage) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.stores[name]
	if !ok {
		return false, nil
	}

	store.entries.Flush()
	delete(s.stores, name)

	return true, nil
}

type memoryStore struct {
	entries *gocache.Cache
}

func (s *memoryStore) Match(_ context.Context, url string) (*entity.FetchResponse, bool) {
	value, ok := s.entries.Get(url)
	if !ok {
		return nil, false
	}

	resp, ok := value.(*entity.FetchResponse)
	if !ok {
		return nil, false
	}

	// Hand back a copy so callers cannot mutate the stored entry.
	return resp.Clone(), true
}

func (s *memoryStore) Put(_ context.Context, url string, resp *entity.FetchResponse) error {
	s.entries.SetDefault(url, resp.Clone())

	return nil
}
