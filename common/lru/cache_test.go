package lru

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	cache := NewCache[string, int](2)

	require.False(t, cache.Add("a", 1))
	require.False(t, cache.Add("b", 2))
	require.True(t, cache.Contains("a"))

	// Peek does not refresh "a", so it is evicted next.
	v, ok := cache.Peek("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.True(t, cache.Add("c", 3))
	require.False(t, cache.Contains("a"))
	require.ElementsMatch(t, []string{"b", "c"}, cache.Keys())

	require.True(t, cache.Remove("b"))
	require.False(t, cache.Remove("b"))
	require.Equal(t, 1, cache.Len())

	cache.Purge()
	require.Zero(t, cache.Len())
	_, ok = cache.Get("c")
	require.False(t, ok)
}

func TestCacheConcurrent(t *testing.T) {
	cache := NewCache[int, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				cache.Add(g*100+i, i)
				cache.Get(g*100 + i)
			}
		}(g)
	}
	wg.Wait()
	require.Equal(t, 64, cache.Len())
}
