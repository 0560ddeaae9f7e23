package kv

import (
	"context"
	"testing"

	"twashell/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore_EmptySlot(t *testing.T) {
	store := NewMemoryTokenStore()

	_, err := store.Get(context.Background())

	require.ErrorIs(t, err, repository.ErrNoToken)
}

func TestMemoryTokenStore_SetOverwrites(t *testing.T) {
	store := NewMemoryTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token-1"))
	require.NoError(t, store.Set(ctx, "token-2"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
}

func TestMemoryTokenStore_ClearEmptiesSlot(t *testing.T) {
	store := NewMemoryTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token-1"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, repository.ErrNoToken)
}
