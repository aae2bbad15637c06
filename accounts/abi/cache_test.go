package abi

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCache(t *testing.T) {
	cache := NewTypeCache(2)

	first, err := cache.Get("uint")
	require.NoError(t, err)
	require.Equal(t, "uint256", first.String())
	second, err := cache.Get("uint")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, cache.Len())

	_, err = cache.Get("uint9999999")
	require.ErrorIs(t, err, ErrInvalidType)
	require.Equal(t, 1, cache.Len())

	for _, typ := range []string{"bool", "string[]", "bytes32"} {
		_, err := cache.Get(typ)
		require.NoError(t, err)
	}
	require.Equal(t, 2, cache.Len())

	_, err = cache.Get("tuple")
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestTypeCacheConcurrent(t *testing.T) {
	var (
		cache = NewTypeCache(8)
		types = []string{"uint8", "int256", "address[]", "bytes", "string[3]", "bool"}
		wg    sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				typ, err := cache.Get(types[j%len(types)])
				if err != nil || typ.String() == "" {
					t.Errorf("unexpected descriptor %v: %v", typ, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	require.Equal(t, len(types), cache.Len())
}

func TestParseTypes(t *testing.T) {
	types, err := ParseTypes("uint", " address ", "bytes[]")
	require.NoError(t, err)
	require.Equal(t, []string{"uint256", "address", "bytes[]"}, []string{types[0].String(), types[1].String(), types[2].String()})

	_, err = ParseTypes("uint8", "uint7")
	require.ErrorIs(t, err, ErrInvalidType)
}
