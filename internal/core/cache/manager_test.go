package cache

import (
	"context"
	"testing"
	"time"

	"smarty-chef/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerGetSet(t *testing.T) {
	m := newManager(10, time.Minute)
	ctx := context.Background()

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "recipe:1", []byte(`{"id":1}`)))
	got, ok := m.Get(ctx, "recipe:1")
	require.True(t, ok)
	assert.Equal(t, `{"id":1}`, string(got))

	stats := m.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 1, stats["size"])
}

func TestManagerExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newManager(10, time.Minute)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	now = now.Add(2 * time.Minute)

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Stats()["size"])
}

func TestManagerEvictsLeastUsed(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newManager(2, time.Hour)
	m.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1")))
	require.NoError(t, m.Set(ctx, "b", []byte("2")))
	_, ok := m.Get(ctx, "a")
	require.True(t, ok)

	require.NoError(t, m.Set(ctx, "c", []byte("3")))

	_, ok = m.Get(ctx, "b")
	assert.False(t, ok, "b was never read and should be evicted")
	_, ok = m.Get(ctx, "a")
	assert.True(t, ok)
	_, ok = m.Get(ctx, "c")
	assert.True(t, ok)
}

func TestManagerOverwriteDoesNotEvict(t *testing.T) {
	m := newManager(1, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1")))
	require.NoError(t, m.Set(ctx, "a", []byte("2")))

	got, ok := m.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "2", string(got))
}

func TestManagerCloseIsIdempotent(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{
		Enabled:         true,
		MaxSize:         5,
		TTL:             time.Minute,
		CleanupInterval: 10 * time.Millisecond,
	}}
	m := NewManager(cfg)
	require.NoError(t, m.Set(context.Background(), "k", []byte("v")))

	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
	assert.Equal(t, 0, m.Stats()["size"])
}

func TestNewDisabled(t *testing.T) {
	store, err := New(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNewMemory(t *testing.T) {
	store, err := New(&config.Config{Cache: config.CacheConfig{
		Enabled:         true,
		MaxSize:         5,
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	}})
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	assert.Equal(t, "memory", store.Stats()["backend"])
}
