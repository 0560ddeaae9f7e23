// Package repository defines interfaces for the stores the worker keeps its
// state in. Implementations live under internal/infra.
package repository

import (
	"context"

	"twashell/internal/domain/entity"
)

// CacheStorage manages named cache generations, mirroring the platform cache
// store: opening is idempotent, deletion removes a whole generation at once.
type CacheStorage interface {
	// Open returns the store for the given generation name, creating it if absent.
	Open(ctx context.Context, name string) (CacheStore, error)

	// Names lists every existing generation.
	Names(ctx context.Context) ([]string, error)

	// Delete removes a generation and all its entries. Returns false when the
	// generation did not exist.
	Delete(ctx context.Context, name string) (bool, error)
}

// CacheStore holds responses for one generation, keyed by exact request URL.
// Put is last-write-wins per key; Match and Put are individually atomic.
type CacheStore interface {
	// Match looks up an exact URL key.
	Match(ctx context.Context, url string) (*entity.FetchResponse, bool)

	// Put stores a response under the URL key, replacing any prior entry.
	Put(ctx context.Context, url string, resp *entity.FetchResponse) error
}
