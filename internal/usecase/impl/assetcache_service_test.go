package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/infra/cachestore"
	"twashell/internal/infra/platform"
	mockRepo "twashell/internal/mocks/repository"
	mockSvc "twashell/internal/mocks/service"
	"twashell/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAssetCacheService(t *testing.T) (
	usecase.AssetCacheUsecase,
	*mockRepo.MockCacheStorage,
	*mockSvc.MockFetcher,
	*platform.MemoryClientRegistry,
) {
	storage := mockRepo.NewMockCacheStorage(t)
	fetcher := mockSvc.NewMockFetcher(t)
	registry := platform.NewMemoryClientRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewAssetCacheService(
		logger,
		&config.CacheConfig{
			Version:    "twa-test-v1",
			Manifest:   []string{"/", "/manifest.json"},
			Exclusions: []string{"/api/", "googleapis.com", "firebase"},
		},
		storage,
		fetcher,
		registry,
	)

	return service, storage, fetcher, registry
}

func cacheableResponse(url string) *entity.FetchResponse {
	return &entity.FetchResponse{
		URL:        url,
		StatusCode: http.StatusOK,
		Body:       []byte("payload"),
		Type:       entity.ResponseTypeBasic,
	}
}

func TestAssetCacheService_Install_PrecachesManifest(t *testing.T) {
	service, storage, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	store := mockRepo.NewMockCacheStore(t)
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(store, nil)

	for _, url := range []string{"/", "/manifest.json"} {
		fetcher.EXPECT().
			Fetch(ctx, &entity.FetchRequest{Method: http.MethodGet, URL: url}).
			Return(cacheableResponse(url), nil)
		store.EXPECT().Put(ctx, url, cacheableResponse(url)).Return(nil)
	}

	require.NoError(t, service.Install(ctx))
}

func TestAssetCacheService_Install_CompletesWhenOneAssetFails(t *testing.T) {
	service, storage, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	store := mockRepo.NewMockCacheStore(t)
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(store, nil)

	fetcher.EXPECT().
		Fetch(ctx, &entity.FetchRequest{Method: http.MethodGet, URL: "/"}).
		Return(nil, errors.New("network down"))
	fetcher.EXPECT().
		Fetch(ctx, &entity.FetchRequest{Method: http.MethodGet, URL: "/manifest.json"}).
		Return(cacheableResponse("/manifest.json"), nil)
	store.EXPECT().Put(ctx, "/manifest.json", cacheableResponse("/manifest.json")).Return(nil)

	require.NoError(t, service.Install(ctx))
}

func TestAssetCacheService_Install_TwiceReplacesEntries(t *testing.T) {
	fetcher := mockSvc.NewMockFetcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAssetCacheService(
		logger,
		&config.CacheConfig{Version: "twa-test-v1", Manifest: []string{"/"}},
		cachestore.NewMemoryStorage(&config.CacheConfig{}),
		fetcher,
		platform.NewMemoryClientRegistry(),
	)

	ctx := context.Background()
	req := &entity.FetchRequest{Method: http.MethodGet, URL: "/"}
	first := cacheableResponse("/")
	first.Body = []byte("stale")
	second := cacheableResponse("/")
	second.Body = []byte("fresh")
	fetcher.EXPECT().Fetch(ctx, req).Return(first, nil).Once()
	fetcher.EXPECT().Fetch(ctx, req).Return(second, nil).Once()

	require.NoError(t, service.Install(ctx))
	require.NoError(t, service.Install(ctx))

	// One entry per URL, carrying the latest install's response.
	resp, err := service.HandleFetch(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), resp.Body)
}

func TestAssetCacheService_Install_OpenFailureIsNotFatal(t *testing.T) {
	service, storage, _, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(nil, errors.New("storage unavailable"))

	require.NoError(t, service.Install(ctx))
}

func TestAssetCacheService_Activate_DeletesStaleGenerationsAndClaims(t *testing.T) {
	service, storage, _, registry := createTestAssetCacheService(t)

	ctx := context.Background()
	window := registry.AddWindow("https://app.example.com/", false)

	storage.EXPECT().Names(ctx).Return([]string{"twa-test-v0", "twa-test-v1"}, nil)
	storage.EXPECT().Delete(ctx, "twa-test-v0").Return(true, nil)

	require.NoError(t, service.Activate(ctx))

	// Claim took control of the previously uncontrolled window.
	clients, err := registry.MatchAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, window.URL(), clients[0].URL())
}

func TestAssetCacheService_HandleFetch_ExcludedURLBypassesCache(t *testing.T) {
	service, _, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	req := &entity.FetchRequest{Method: http.MethodGet, URL: "/api/send-notification"}
	fetcher.EXPECT().Fetch(ctx, req).Return(cacheableResponse(req.URL), nil)

	resp, err := service.HandleFetch(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, req.URL, resp.URL)
}

func TestAssetCacheService_HandleFetch_NonGETBypassesCache(t *testing.T) {
	service, _, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	req := &entity.FetchRequest{Method: http.MethodPost, URL: "/submit"}
	fetcher.EXPECT().Fetch(ctx, req).Return(cacheableResponse(req.URL), nil)

	_, err := service.HandleFetch(ctx, req)

	require.NoError(t, err)
}

func TestAssetCacheService_HandleFetch_CacheHitSkipsNetwork(t *testing.T) {
	service, storage, _, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	store := mockRepo.NewMockCacheStore(t)
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(store, nil)

	cached := cacheableResponse("/manifest.json")
	store.EXPECT().Match(ctx, "/manifest.json").Return(cached, true)

	resp, err := service.HandleFetch(ctx, &entity.FetchRequest{Method: http.MethodGet, URL: "/manifest.json"})

	require.NoError(t, err)
	assert.Equal(t, cached, resp)
}

func TestAssetCacheService_HandleFetch_MissFetchesOnceAndStores(t *testing.T) {
	service, storage, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	store := mockRepo.NewMockCacheStore(t)
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(store, nil)
	store.EXPECT().Match(ctx, "/icons/icon-192x192.svg").Return(nil, false)

	req := &entity.FetchRequest{Method: http.MethodGet, URL: "/icons/icon-192x192.svg"}
	fetcher.EXPECT().Fetch(ctx, req).Return(cacheableResponse(req.URL), nil).Once()
	store.EXPECT().Put(ctx, req.URL, cacheableResponse(req.URL)).Return(nil).Once()

	resp, err := service.HandleFetch(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAssetCacheService_HandleFetch_NonCacheableResponseNotStored(t *testing.T) {
	service, storage, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	store := mockRepo.NewMockCacheStore(t)
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(store, nil)
	store.EXPECT().Match(ctx, "/cdn/font.woff2").Return(nil, false)

	req := &entity.FetchRequest{Method: http.MethodGet, URL: "/cdn/font.woff2"}
	fetcher.EXPECT().Fetch(ctx, req).Return(&entity.FetchResponse{
		URL:        req.URL,
		StatusCode: http.StatusOK,
		Type:       entity.ResponseTypeCORS,
	}, nil)

	resp, err := service.HandleFetch(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, entity.ResponseTypeCORS, resp.Type)
}

func TestAssetCacheService_HandleFetch_MissWithNetworkErrorPropagates(t *testing.T) {
	service, storage, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	store := mockRepo.NewMockCacheStore(t)
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(store, nil)
	store.EXPECT().Match(ctx, "/offline.html").Return(nil, false)

	req := &entity.FetchRequest{Method: http.MethodGet, URL: "/offline.html"}
	fetcher.EXPECT().Fetch(ctx, req).Return(nil, errors.New("network unreachable"))

	resp, err := service.HandleFetch(ctx, req)

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestAssetCacheService_HandleFetch_CacheOpenFailureFallsThroughToNetwork(t *testing.T) {
	service, storage, fetcher, _ := createTestAssetCacheService(t)

	ctx := context.Background()
	storage.EXPECT().Open(ctx, "twa-test-v1").Return(nil, errors.New("storage unavailable"))

	req := &entity.FetchRequest{Method: http.MethodGet, URL: "/manifest.json"}
	fetcher.EXPECT().Fetch(ctx, req).Return(cacheableResponse(req.URL), nil)

	resp, err := service.HandleFetch(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, req.URL, resp.URL)
}
