package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bunny-video/infrastructure/cache"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore().WithClock(func() time.Time { return now })

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "empty store should miss")

	input := []byte(`{"items":[]}`)
	require.NoError(t, store.Set(ctx, "k", input, 120*time.Second))
	input[0] = 'X'

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, string(got), "stored value must not alias the caller's slice")

	now = now.Add(120 * time.Second)
	_, ok, _ = store.Get(ctx, "k")
	assert.True(t, ok, "entry is live exactly at expiresAt")

	now = now.Add(time.Nanosecond)
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok, "entry past expiresAt must not be served")
}

func TestMemoryStore_SetReplaces(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, store.Set(ctx, "k", []byte("new"), time.Minute))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(got))
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "short", []byte("a"), time.Second))
	require.NoError(t, store.Set(ctx, "long", []byte("b"), time.Hour))

	now = now.Add(time.Minute)
	assert.Equal(t, 1, store.Sweep())

	_, ok, _ := store.Get(ctx, "long")
	assert.True(t, ok)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client, err := cache.NewCache(ctx, mr.Addr(), "", "", 0)
	require.NoError(t, err)
	defer client.Close()

	store := cache.NewRedisStore(client)

	_, ok, err := store.Get(ctx, "bunny:videos:1:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "bunny:videos:1:abc", []byte(`{"items":[]}`), 120*time.Second))
	got, ok, err := store.Get(ctx, "bunny:videos:1:abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, string(got))
	assert.Equal(t, 120*time.Second, mr.TTL("bunny:videos:1:abc"))

	mr.FastForward(121 * time.Second)
	_, ok, err = store.Get(ctx, "bunny:videos:1:abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewCache_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client, err := cache.NewCache(context.Background(), addr, "", "", 0)
	assert.Error(t, err)
	assert.Nil(t, client)
}
