package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Set Get Delete", func(t *testing.T) {
		mr, client := newTestRedis(t)
		s := NewRedisStore(client, "grocer", 0)

		require.NoError(t, s.Ping(ctx))
		require.NoError(t, s.Set(ctx, "cart", []byte("[]")))
		assert.True(t, mr.Exists("grocer:cart"))

		got, err := s.Get(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))

		require.NoError(t, s.Delete(ctx, "cart"))
		_, err = s.Get(ctx, "cart")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("TTL expires values", func(t *testing.T) {
		mr, client := newTestRedis(t)
		s := NewRedisStore(client, "grocer", time.Hour)

		require.NoError(t, s.Set(ctx, "userData", []byte(`{}`)))
		assert.Equal(t, time.Hour, mr.TTL("grocer:userData"))

		mr.FastForward(2 * time.Hour)
		_, err := s.Get(ctx, "userData")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Server down", func(t *testing.T) {
		mr, client := newTestRedis(t)
		s := NewRedisStore(client, "grocer", 0)
		mr.Close()

		_, err := s.Get(ctx, "cart")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
