package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/internal/config"
	"go-storefront/internal/models"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: srv.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), srv
}

func stores(t *testing.T) map[string]CartStore {
	redisStore, _ := newRedisStore(t, time.Hour)
	return map[string]CartStore{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}
}

func TestCartStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			cart, err := store.Load(context.Background(), "unknown")

			require.NoError(t, err)
			assert.True(t, cart.IsEmpty())
		})
	}
}

func TestCartStore_SaveLoadDelete(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cart := models.NewCart()
			require.NoError(t, cart.AddItem(&models.Product{ID: 3, Name: "JVC", Price: 69.99}, 2))

			require.NoError(t, store.Save(ctx, "s1", cart))

			loaded, err := store.Load(ctx, "s1")
			require.NoError(t, err)
			require.Equal(t, 1, loaded.Len())
			assert.Equal(t, 2, loaded.Lines()[0].Quantity)
			assert.InDelta(t, 139.98, loaded.TotalValue(), 1e-9)

			require.NoError(t, store.Delete(ctx, "s1"))
			loaded, err = store.Load(ctx, "s1")
			require.NoError(t, err)
			assert.True(t, loaded.IsEmpty())
		})
	}
}

func TestCartStore_RejectsEmptySessionID(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Load(context.Background(), "")
			assert.ErrorIs(t, err, ErrEmptySessionID)

			err = store.Save(context.Background(), "", models.NewCart())
			assert.ErrorIs(t, err, ErrEmptySessionID)
		})
	}
}

func TestMemoryStore_LoadedCartsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "s1", models.NewCart()))

	cart, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(&models.Product{ID: 1, Price: 1}, 1))

	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, again.IsEmpty())
}

func TestRedisStore_AppliesTTL(t *testing.T) {
	store, srv := newRedisStore(t, 30*time.Minute)

	require.NoError(t, store.Save(context.Background(), "s1", models.NewCart()))

	assert.True(t, srv.Exists("cart:s1"))
	assert.Equal(t, 30*time.Minute, srv.TTL("cart:s1"))

	srv.FastForward(31 * time.Minute)
	assert.False(t, srv.Exists("cart:s1"))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: addr})

	assert.Error(t, err)
}
