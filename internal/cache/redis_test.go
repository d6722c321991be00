package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeRedisClient struct {
	pingErr error
}

func (f *fakeRedisClient) Get(context.Context, string) *redis.StringCmd { panic("unexpected Get") }

func (f *fakeRedisClient) Set(context.Context, string, interface{}, time.Duration) *redis.StatusCmd {
	panic("unexpected Set")
}

func (f *fakeRedisClient) Del(context.Context, ...string) *redis.IntCmd { panic("unexpected Del") }

func (f *fakeRedisClient) Close() error { return nil }

func (f *fakeRedisClient) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.pingErr)
}

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() {
		redisNewClient = func(opt *redis.Options) redisClient { return redis.NewClient(opt) }
	})

	t.Run("success", func(t *testing.T) {
		var gotOpt *redis.Options
		redisNewClient = func(opt *redis.Options) redisClient {
			gotOpt = opt
			return &fakeRedisClient{}
		}
		c, err := NewRedisClient("localhost:6379", "pw", 2)
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Equal(t, "localhost:6379", gotOpt.Addr)
		require.Equal(t, "pw", gotOpt.Password)
		require.Equal(t, 2, gotOpt.DB)
	})

	t.Run("ping failure", func(t *testing.T) {
		redisNewClient = func(*redis.Options) redisClient {
			return &fakeRedisClient{pingErr: errors.New("refused")}
		}
		c, err := NewRedisClient("localhost:6379", "", 0)
		require.Error(t, err)
		require.Nil(t, c)
	})
}
