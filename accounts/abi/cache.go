// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"strings"

	"github.com/sunyihoo/go-web3/common/lru"
)

// defaultTypeCacheSize is the capacity of the package level descriptor cache.
const defaultTypeCacheSize = 512

var typeCache = NewTypeCache(defaultTypeCacheSize)

// TypeCache memoises compiled descriptors of plain type strings. Tuples are
// compiled on every call since their layout depends on the component list.
// It is safe for concurrent use.
// TypeCache 缓存已编译的类型描述符，可安全地并发使用。元组不会被缓存。
type TypeCache struct {
	types *lru.Cache[string, Type]
}

// NewTypeCache creates a descriptor cache holding at most size entries.
// NewTypeCache 创建最多容纳 size 个条目的描述符缓存。
func NewTypeCache(size int) *TypeCache {
	return &TypeCache{types: lru.NewCache[string, Type](size)}
}

// Get returns the descriptor of t, compiling it on a miss. Failed
// compilations are not cached.
// Get 返回 t 的描述符，未命中时编译并缓存，编译失败不缓存。
func (c *TypeCache) Get(t string) (Type, error) {
	if typ, ok := c.types.Get(t); ok {
		return typ, nil
	}
	typ, err := NewType(t, "", nil)
	if err != nil {
		return Type{}, err
	}
	if !strings.HasPrefix(t, "tuple") {
		c.types.Add(t, typ)
	}
	return typ, nil
}

// Len returns the number of cached descriptors.
// Len 返回缓存中描述符的数量。
func (c *TypeCache) Len() int {
	return c.types.Len()
}

// ParseTypes compiles a list of plain type strings through the shared cache.
// ParseTypes 通过共享缓存编译一组类型字符串。
func ParseTypes(types ...string) ([]Type, error) {
	out := make([]Type, len(types))
	for i, t := range types {
		typ, err := typeCache.Get(strings.TrimSpace(t))
		if err != nil {
			return nil, err
		}
		out[i] = typ
	}
	return out, nil
}
