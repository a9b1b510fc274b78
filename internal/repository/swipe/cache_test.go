package swipeRepo

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*swipedCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return newSwipedCache(rdb), mr
}

func TestCacheMissUntilFilled(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok := cache.members(1)
	assert.False(t, ok)

	cache.fill(1, []uint{4, 2})

	ids, ok := cache.members(1)
	require.True(t, ok)
	assert.ElementsMatch(t, []uint{2, 4}, ids)
}

func TestCacheFillEmptyListIsComplete(t *testing.T) {
	cache, _ := newTestCache(t)

	cache.fill(7, nil)

	ids, ok := cache.members(7)
	require.True(t, ok)
	assert.Empty(t, ids)
}

func TestCacheAddWithoutFillStaysIncomplete(t *testing.T) {
	cache, _ := newTestCache(t)

	cache.add(1, 9)

	_, ok := cache.members(1)
	assert.False(t, ok, "a partial set must not be served")
}

func TestCacheAddBeforeFillIsKept(t *testing.T) {
	cache, _ := newTestCache(t)

	// a write racing a fill that read postgres before the write landed
	cache.add(1, 9)
	cache.fill(1, []uint{3})

	ids, ok := cache.members(1)
	require.True(t, ok)
	assert.ElementsMatch(t, []uint{3, 9}, ids)
}

func TestCacheAddAfterFill(t *testing.T) {
	cache, mr := newTestCache(t)

	cache.fill(1, []uint{3})
	cache.add(1, 5)

	ids, ok := cache.members(1)
	require.True(t, ok)
	assert.ElementsMatch(t, []uint{3, 5}, ids)
	assert.True(t, mr.TTL(swipedKey(1)) > 0)
}

func TestCacheUnavailableRedisFallsBack(t *testing.T) {
	cache, mr := newTestCache(t)
	cache.fill(1, []uint{3})
	mr.Close()

	_, ok := cache.members(1)
	assert.False(t, ok)
}

func TestNilCacheIsNoop(t *testing.T) {
	cache := newSwipedCache(nil)
	cache.add(1, 2)
	cache.fill(1, []uint{2})
	_, ok := cache.members(1)
	assert.False(t, ok)
}
