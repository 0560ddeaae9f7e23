package cachestore

import (
	"context"
	"net/http"
	"testing"
	"time"

	"twashell/config"
	"twashell/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_OpenIsIdempotent(t *testing.T) {
	storage := NewMemoryStorage(&config.CacheConfig{})
	ctx := context.Background()

	store, err := storage.Open(ctx, "twa-test-v1")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "/manifest.json", &entity.FetchResponse{
		URL:        "/manifest.json",
		StatusCode: http.StatusOK,
		Type:       entity.ResponseTypeBasic,
	}))

	// A second open returns the same generation, entries included.
	again, err := storage.Open(ctx, "twa-test-v1")
	require.NoError(t, err)

	_, ok := again.Match(ctx, "/manifest.json")
	assert.True(t, ok)
}

func TestMemoryStorage_NamesAndDelete(t *testing.T) {
	storage := NewMemoryStorage(&config.CacheConfig{})
	ctx := context.Background()

	_, err := storage.Open(ctx, "twa-test-v0")
	require.NoError(t, err)
	_, err = storage.Open(ctx, "twa-test-v1")
	require.NoError(t, err)

	names, err := storage.Names(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"twa-test-v0", "twa-test-v1"}, names)

	existed, err := storage.Delete(ctx, "twa-test-v0")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = storage.Delete(ctx, "twa-test-v0")
	require.NoError(t, err)
	assert.False(t, existed)

	names, err = storage.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"twa-test-v1"}, names)
}

func TestMemoryStore_MatchReturnsCopy(t *testing.T) {
	storage := NewMemoryStorage(&config.CacheConfig{})
	ctx := context.Background()

	store, err := storage.Open(ctx, "twa-test-v1")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "/", &entity.FetchResponse{
		URL:        "/",
		StatusCode: http.StatusOK,
		Body:       []byte("original"),
		Type:       entity.ResponseTypeBasic,
	}))

	first, ok := store.Match(ctx, "/")
	require.True(t, ok)
	first.Body[0] = 'X'

	second, ok := store.Match(ctx, "/")
	require.True(t, ok)
	assert.Equal(t, []byte("original"), second.Body)
}

func TestMemoryStore_PutReplacesExistingEntry(t *testing.T) {
	storage := NewMemoryStorage(&config.CacheConfig{})
	ctx := context.Background()

	store, err := storage.Open(ctx, "twa-test-v1")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "/", &entity.FetchResponse{
		URL:        "/",
		StatusCode: http.StatusOK,
		Body:       []byte("stale"),
		Type:       entity.ResponseTypeBasic,
	}))
	require.NoError(t, store.Put(ctx, "/", &entity.FetchResponse{
		URL:        "/",
		StatusCode: http.StatusOK,
		Body:       []byte("fresh"),
		Type:       entity.ResponseTypeBasic,
	}))

	resp, ok := store.Match(ctx, "/")
	require.True(t, ok)
	assert.Equal(t, []byte("fresh"), resp.Body)
}

func TestMemoryStore_MatchMiss(t *testing.T) {
	storage := NewMemoryStorage(&config.CacheConfig{})
	ctx := context.Background()

	store, err := storage.Open(ctx, "twa-test-v1")
	require.NoError(t, err)

	resp, ok := store.Match(ctx, "/missing")
	assert.False(t, ok)
	assert.Nil(t, resp)
}

func TestMemoryStore_EntryTTLExpiresEntries(t *testing.T) {
	storage := NewMemoryStorage(&config.CacheConfig{EntryTTL: 10 * time.Millisecond})
	ctx := context.Background()

	store, err := storage.Open(ctx, "twa-test-v1")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "/", &entity.FetchResponse{
		URL:        "/",
		StatusCode: http.StatusOK,
		Type:       entity.ResponseTypeBasic,
	}))

	time.Sleep(20 * time.Millisecond)

	_, ok := store.Match(ctx, "/")
	assert.False(t, ok)
}
