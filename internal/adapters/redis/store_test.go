package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posykit/posy/internal/adapters/redis"
	"github.com/posykit/posy/pkg/domain"
	"github.com/posykit/posy/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunPresetStoreContract(t, store)
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Preset{ID: "ephemeral"}))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}

func TestRedisStore_CustomPrefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Preset{ID: "p1"}))
	assert.True(t, mr.Exists("custom:p1"))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids)
}
