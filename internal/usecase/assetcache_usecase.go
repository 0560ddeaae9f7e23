// Package usecase defines the interfaces for the worker and gateway use cases.
package usecase

import (
	"context"

	"twashell/internal/domain/entity"
)

// AssetCacheUsecase is the asset cache manager: a versioned cache of static
// assets with a cache-first, network-fallback fetch policy.
type AssetCacheUsecase interface {
	// Install opens the configured cache generation and precaches the asset
	// manifest. Caching is best-effort per URL; Install completes even when
	// individual adds fail.
	Install(ctx context.Context) error

	// Activate deletes every cache generation other than the configured one
	// and claims control of all open clients.
	Activate(ctx context.Context) error

	// HandleFetch serves a request cache-first. Excluded and non-GET requests
	// bypass the cache; cache misses fall through to exactly one network
	// fetch, storing success same-origin responses before returning them.
	HandleFetch(ctx context.Context, req *entity.FetchRequest) (*entity.FetchResponse, error)
}
