package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func useTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestAside_PopulatesAndServesFromCache(t *testing.T) {
	mr := useTestRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			fetches++
			dest.ID = 1
			dest.Username = "cachedwriter"
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &first, UserTTL, fetch(&first)))
	assert.Equal(t, "cachedwriter", first.Username)
	assert.Equal(t, 1, fetches)
	assert.True(t, mr.Exists(UserKey(1)))

	// Second read is served from Redis; the loader must not run again.
	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &second, UserTTL, fetch(&second)))
	assert.Equal(t, "cachedwriter", second.Username)
	assert.Equal(t, 1, fetches)
}

func TestAside_ExpiryRefetches(t *testing.T) {
	mr := useTestRedis(t)
	ctx := context.Background()

	fetches := 0
	load := func(dest *cachedUser) func() error {
		return func() error {
			fetches++
			dest.ID = 2
			dest.Username = "expiring"
			return nil
		}
	}

	var u cachedUser
	require.NoError(t, Aside(ctx, UserKey(2), &u, time.Minute, load(&u)))
	require.Equal(t, 1, fetches)

	mr.FastForward(time.Minute + time.Second)

	var again cachedUser
	require.NoError(t, Aside(ctx, UserKey(2), &again, time.Minute, load(&again)))
	assert.Equal(t, 2, fetches)
}

func TestInvalidateUser_DropsKey(t *testing.T) {
	mr := useTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), cachedUser{ID: 3, Username: "stale"}, UserTTL))
	require.True(t, mr.Exists(UserKey(3)))

	InvalidateUser(ctx, 3)
	assert.False(t, mr.Exists(UserKey(3)))
}

func TestAside_WithoutClientFallsThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var u cachedUser
	loader := func() error {
		fetches++
		u.Username = "uncached"
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(4), &u, UserTTL, loader))
	require.NoError(t, Aside(ctx, UserKey(4), &u, UserTTL, loader))
	assert.Equal(t, 2, fetches, "every read hits the loader when Redis is absent")
	assert.Equal(t, "uncached", u.Username)
}
