// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/domain/repository"
	"twashell/internal/domain/service"
	"twashell/internal/usecase"

	"github.com/pkg/errors"
)

type assetCacheService struct {
	logger  *slog.Logger
	cfg     *config.CacheConfig
	storage repository.CacheStorage
	fetcher service.Fetcher
	clients service.ClientRegistry
}

// NewAssetCacheService creates the asset cache manager.
func NewAssetCacheService(
	logger *slog.Logger,
	cfg *config.CacheConfig,
	storage repository.CacheStorage,
	fetcher service.Fetcher,
	clients service.ClientRegistry,
) usecase.AssetCacheUsecase {
	return &assetCacheService{
		logger:  logger,
		cfg:     cfg,
		storage: storage,
		fetcher: fetcher,
		clients: clients,
	}
}

// Install precaches the asset manifest into the configured generation. Each
// URL is added independently; a failed add is logged and skipped so install
// always completes.
func (s *assetCacheService) Install(ctx context.Context) error {
	store, err := s.storage.Open(ctx, s.cfg.Version)
	if err != nil {
		s.logger.Error("cache installation failed",
			slog.String("cache", s.cfg.Version),
			slog.Any("error", err),
		)

		return nil
	}

	for _, url := range s.cfg.Manifest {
		if err := s.addToCache(ctx, store, url); err != nil {
			s.logger.Warn("failed to cache asset",
				slog.String("url", url),
				slog.Any("error", err),
			)
		}
	}

	s.logger.Info("cache installation completed", slog.String("cache", s.cfg.Version))

	return nil
}

// addToCache fetches one manifest URL and stores it when eligible.
func (s *assetCacheService) addToCache(ctx context.Context, store repository.CacheStore, url string) error {
	resp, err := s.fetcher.Fetch(ctx, &entity.FetchRequest{Method: http.MethodGet, URL: url})
	if err != nil {
		return err
	}
	if !resp.Cacheable() {
		return errors.Errorf("response for %s is not cacheable (status %d, type %s)", url, resp.StatusCode, resp.Type)
	}

	return store.Put(ctx, url, resp.Clone())
}

// Activate garbage-collects stale cache generations and claims all clients.
func (s *assetCacheService) Activate(ctx context.Context) error {
	names, err := s.storage.Names(ctx)
	if err != nil {
		return errors.Wrap(err, "enumerate cache generations")
	}

	for _, name := range names {
		if name == s.cfg.Version {
			continue
		}
		if _, err := s.storage.Delete(ctx, name); err != nil {
			return errors.Wrapf(err, "delete stale cache %s", name)
		}
		s.logger.Info("deleted stale cache generation", slog.String("cache", name))
	}

	if err := s.clients.Claim(ctx); err != nil {
		return errors.Wrap(err, "claim clients")
	}

	return nil
}

// HandleFetch applies the cache-first, network-fallback policy.
func (s *assetCacheService) HandleFetch(ctx context.Context, req *entity.FetchRequest) (*entity.FetchResponse, error) {
	// Non-GET and excluded requests go straight to network, untouched by the cache.
	if req.Method != http.MethodGet || s.excluded(req.URL) {
		return s.fetcher.Fetch(ctx, req)
	}

	store, err := s.storage.Open(ctx, s.cfg.Version)
	if err != nil {
		s.logger.Warn("cache open failed, falling through to network", slog.Any("error", err))

		return s.fetcher.Fetch(ctx, req)
	}

	if cached, ok := store.Match(ctx, req.URL); ok {
		return cached, nil
	}

	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		// No cache entry and no network: the error propagates to the caller.
		return nil, err
	}

	if resp.Cacheable() {
		if err := store.Put(ctx, req.URL, resp.Clone()); err != nil {
			s.logger.Warn("cache put failed",
				slog.String("url", req.URL),
				slog.Any("error", err),
			)
		}
	}

	return resp, nil
}

func (s *assetCacheService) excluded(url string) bool {
	for _, pattern := range s.cfg.Exclusions {
		if strings.Contains(url, pattern) {
			return true
		}
	}

	return false
}
