package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/clothing-shop/internal/domain/storage"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))
	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), value)

	// Set replaces the whole value.
	require.NoError(t, store.Set(ctx, "k", []byte("v2")))
	value, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStoreCopiesValues(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	original := []byte("snapshot")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'X'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("snapshot"), value)

	// Mutating what Get returned must not leak back in.
	value[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("snapshot"), again)
}
