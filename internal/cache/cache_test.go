package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCacheDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("configured functions run", func(t *testing.T) {
		f := &FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("v:"+key, nil)
			},
			SetFn: func(_ context.Context, _ string, _ any, _ time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				return redis.NewIntResult(int64(len(keys)), nil)
			},
			CloseFn: func() error { return nil },
		}
		require.Equal(t, "v:k", f.Get(ctx, "k").Val())
		require.Equal(t, "OK", f.Set(ctx, "k", "v", time.Minute).Val())
		require.EqualValues(t, 2, f.Del(ctx, "a", "b").Val())
		require.NoError(t, f.Close())
	})

	t.Run("unset functions panic", func(t *testing.T) {
		f := &FakeCache{}
		require.Panics(t, func() { f.Get(ctx, "k") })
		require.Panics(t, func() { f.Set(ctx, "k", "v", 0) })
		require.Panics(t, func() { f.Del(ctx, "k") })
		require.NoError(t, f.Close())
	})
}
