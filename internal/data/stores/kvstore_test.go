package stores

import (
	"context"
	"database/sql"
	"testing"

	"github.com/colonyops/reel/internal/data/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrefStore(t *testing.T) *PrefStore {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewPrefStore(database)
}

func TestPrefStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefStore(t)

	type payload struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	require.NoError(t, store.Set(ctx, "test-key", payload{Name: "hello", Value: 42}))

	var got payload
	require.NoError(t, store.Get(ctx, "test-key", &got))
	assert.Equal(t, "hello", got.Name)
	assert.Equal(t, 42, got.Value)
}

func TestPrefStore_GetNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefStore(t)

	var v string
	err := store.Get(ctx, "nonexistent", &v)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPrefStore_SetOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefStore(t)

	require.NoError(t, store.Set(ctx, "key", "first"))
	require.NoError(t, store.Set(ctx, "key", "second"))

	var got string
	require.NoError(t, store.Get(ctx, "key", &got))
	assert.Equal(t, "second", got)

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"key"}, keys)
}

func TestPrefStore_DeleteAndHas(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefStore(t)

	has, err := store.Has(ctx, "key")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.Set(ctx, "key", true))
	has, err = store.Has(ctx, "key")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, store.Delete(ctx, "key"))
	has, err = store.Has(ctx, "key")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPrefStore_ListKeysSorted(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefStore(t)

	require.NoError(t, store.Set(ctx, "b", 1))
	require.NoError(t, store.Set(ctx, "a", 2))
	require.NoError(t, store.Set(ctx, "c", 3))

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
