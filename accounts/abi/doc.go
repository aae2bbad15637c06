// Copyright 2015 The go-ethereum Authors
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

// Package abi implements the Ethereum ABI (Application Binary
// Interface).
//
// A type string such as "uint256[]" or "(address,bytes)" is compiled once by
// NewType into an immutable Type descriptor. Arguments.Pack encodes Go values
// against a list of descriptors using the head/tail layout: static values sit
// in the head region, dynamic values are appended to the tail region and
// referenced from the head by a byte offset. Arguments.Unpack and Decode walk
// the head region with a cursor and follow the offsets back into the tail.
//
// Integers are accepted as any Go integer kind, *big.Int or *uint256.Int and
// are range checked against the declared width. Decoded integers of 8, 16, 32
// and 64 bits map onto the matching Go types, wider ones onto *big.Int.
//
// abi 包实现了以太坊的 ABI（应用二进制接口）。
//
// 类型字符串由 NewType 编译为不可变的 Type 描述符。编码采用 head/tail 布局：
// 静态值位于头部区域，动态值追加到尾部区域，并在头部以字节偏移量引用。
package abi
