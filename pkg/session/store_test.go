package session

import (
	"context"
	"testing"
	"time"
	"travel/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.Get(ctx, "", "k")
	assert.ErrorIs(t, err, ErrEmptySession)
	assert.ErrorIs(t, store.Set(ctx, "", "k", "v"), ErrEmptySession)

	_, err = store.Get(ctx, "s1", "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "s1", "k", "v1"))
	require.NoError(t, store.Set(ctx, "s1", "other", "x"))
	require.NoError(t, store.Set(ctx, "s2", "k", "v2"))

	v, err := store.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	require.NoError(t, store.Set(ctx, "s1", "k", "v1b"))
	v, err = store.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.Equal(t, "v1b", v)

	require.NoError(t, store.Clear(ctx, "s1"))
	_, err = store.Get(ctx, "s1", "other")
	assert.ErrorIs(t, err, ErrNotFound)

	// other sessions are untouched
	v, err = store.Get(ctx, "s2", "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, store.Clear(ctx, "missing"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	testStore(t, store)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "s1", "k", "v"))
	now = now.Add(30 * time.Second)
	_, err := store.Get(ctx, "s1", "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "s1", "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "s2", "k", "v"))
	now = now.Add(2 * time.Minute)
	store.removeExpired()
	assert.Empty(t, store.sessions)
}

func TestCacheStore(t *testing.T) {
	testStore(t, NewCacheStore(cache.NewMemoryCache(), time.Hour))
}

func TestCacheStore_Layout(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()
	store := NewCacheStore(c, time.Hour)

	require.NoError(t, store.Set(ctx, "abc", "booking_draft", `{"kind":"flight"}`))

	raw, err := c.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"booking_draft":"{\"kind\":\"flight\"}"}`, raw)
}
