package lru

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicLRU(t *testing.T) {
	cache := NewBasicLRU[int, int](128)

	for i := 0; i < 256; i++ {
		cache.Add(i, i)
	}
	require.Equal(t, 128, cache.Len())

	// Keys returns the most recently used key first.
	keys := cache.Keys()
	require.Len(t, keys, 128)
	require.Equal(t, 255, keys[0])
	require.Equal(t, 128, keys[127])

	for _, k := range keys {
		v, ok := cache.Get(k)
		require.True(t, ok, "key %d missing", k)
		require.Equal(t, k, v)
	}
	for i := 0; i < 128; i++ {
		_, ok := cache.Get(i)
		require.False(t, ok, "key %d should be evicted", i)
	}
}

func TestBasicLRUAddExistingKey(t *testing.T) {
	cache := NewBasicLRU[int, int](1)

	cache.Add(1, 1)
	require.False(t, cache.Add(1, 2))

	v, _ := cache.Get(1)
	require.Equal(t, 2, v)
}

func TestBasicLRURemoveAndPurge(t *testing.T) {
	cache := NewBasicLRU[string, int](2)
	cache.Add("a", 1)
	cache.Add("b", 2)

	require.True(t, cache.Remove("a"))
	require.False(t, cache.Remove("a"))
	require.Equal(t, 1, cache.Len())

	cache.Purge()
	require.Equal(t, 0, cache.Len())
	require.Empty(t, cache.Keys())
}

func TestBasicLRUEvictionOrder(t *testing.T) {
	cache := NewBasicLRU[int, int](2)
	cache.Add(1, 1)
	cache.Add(2, 2)
	cache.Get(1)
	require.True(t, cache.Add(3, 3))

	require.True(t, cache.Contains(1))
	require.False(t, cache.Contains(2))
	require.True(t, cache.Contains(3))
}

func TestCacheConcurrentStringKeys(t *testing.T) {
	cache := NewCache[string, int](64)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("%d-%d", w, i%16)
				cache.Add(key, i)
				cache.Get(key)
			}
		}(w)
	}
	wg.Wait()
	require.LessOrEqual(t, cache.Len(), 64)
}
