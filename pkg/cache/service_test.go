package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}

func newTestService(t *testing.T) (Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client), mr
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Set(ctx, "k", snapshot{Count: 2, Name: "a"}, time.Minute))

	var got snapshot
	require.NoError(t, svc.Get(ctx, "k", &got))
	assert.Equal(t, snapshot{Count: 2, Name: "a"}, got)

	require.NoError(t, svc.Delete(ctx, "k"))
	assert.ErrorIs(t, svc.Get(ctx, "k", &got), ErrCacheMiss)
	assert.NoError(t, svc.Delete(ctx))
}

func TestSetHonoursTTL(t *testing.T) {
	ctx := context.Background()
	svc, mr := newTestService(t)

	require.NoError(t, svc.Set(ctx, "k", snapshot{Count: 1}, 10*time.Second))
	mr.FastForward(11 * time.Second)

	var got snapshot
	assert.ErrorIs(t, svc.Get(ctx, "k", &got), ErrCacheMiss)
}

func TestDeletePattern(t *testing.T) {
	ctx := context.Background()
	svc, mr := newTestService(t)

	require.NoError(t, svc.Set(ctx, "waitwise:staff:dashboard:event:a", 1, time.Minute))
	require.NoError(t, svc.Set(ctx, "waitwise:staff:dashboard:event:b", 1, time.Minute))
	require.NoError(t, svc.Set(ctx, "waitwise:other", 1, time.Minute))

	require.NoError(t, svc.DeletePattern(ctx, "waitwise:staff:dashboard:*"))

	assert.False(t, mr.Exists("waitwise:staff:dashboard:event:a"))
	assert.False(t, mr.Exists("waitwise:staff:dashboard:event:b"))
	assert.True(t, mr.Exists("waitwise:other"))
}

func TestGetOrSetCachesFetchedValue(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	var calls int32
	fetch := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return snapshot{Count: 7, Name: "fresh"}, nil
	}

	var first, second snapshot
	require.NoError(t, svc.GetOrSet(ctx, "k", time.Minute, fetch, &first))
	require.NoError(t, svc.GetOrSet(ctx, "k", time.Minute, fetch, &second))

	assert.Equal(t, 7, first.Count)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrSetSharesConcurrentFetch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	var calls int32
	release := make(chan struct{})
	fetch := func() (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return snapshot{Count: 1}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got snapshot
			assert.NoError(t, svc.GetOrSet(ctx, "shared", time.Minute, fetch, &got))
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(5))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}

func TestGetOrSetFetcherError(t *testing.T) {
	ctx := context.Background()
	svc, mr := newTestService(t)

	boom := errors.New("boom")
	var got snapshot
	err := svc.GetOrSet(ctx, "k", time.Minute, func() (interface{}, error) { return nil, boom }, &got)

	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
}
