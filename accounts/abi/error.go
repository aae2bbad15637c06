// Copyright 2021 The go-ethereum Authors
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
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/crypto"
)

// Error is a custom error declared in a contract ABI. Reverts with a custom
// error carry its 4 byte selector followed by the encoded inputs.
// Error 是合约 ABI 中声明的自定义错误，revert 数据为 4 字节选择器加上编码后的参数。
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the string signature according to the ABI spec.
	// e.g. error foo(uint32 a, int b) = "foo(uint32,int256)"
	Sig string

	// ID returns the canonical representation of the error's signature used by the
	// abi definition to identify event names and types.
	ID common.Hash
}

// NewError creates a new Error, naming unnamed inputs argN and precomputing
// the signature and ID.
// NewError 创建一个新的 Error，为未命名参数补全名称并预先计算签名和 ID。
func NewError(name string, inputs Arguments) Error {
	names := make([]string, len(inputs))
	types := make([]string, len(inputs))
	for i, input := range inputs {
		if input.Name == "" {
			inputs[i] = Argument{
				Name:    fmt.Sprintf("arg%d", i),
				Indexed: input.Indexed,
				Type:    input.Type,
			}
		} else {
			inputs[i] = input
		}
		names[i] = fmt.Sprintf("%v %v", input.Type, inputs[i].Name)
		if input.Indexed {
			names[i] = fmt.Sprintf("%v indexed %v", input.Type, inputs[i].Name)
		}
		types[i] = input.Type.String()
	}

	str := fmt.Sprintf("error %v(%v)", name, strings.Join(names, ", "))
	sig := fmt.Sprintf("%v(%v)", name, strings.Join(types, ","))
	id := crypto.Keccak256Hash([]byte(sig))

	return Error{
		Name:   name,
		Inputs: inputs,
		str:    str,
		Sig:    sig,
		ID:     id,
	}
}

func (e Error) String() string {
	return e.str
}

// Unpack checks the 4 byte selector of data and decodes the error inputs
// that follow it.
// Unpack 校验 data 的 4 字节选择器，并解码其后的错误参数。
func (e *Error) Unpack(data []byte) (interface{}, error) {
	if len(data) < 4 {
		return "", invalidDataErr("insufficient data for unpacking: have %d, want at least 4", len(data))
	}
	if !bytes.Equal(data[:4], e.ID[:4]) {
		return "", fmt.Errorf("invalid identifier, have %#x want %#x", data[:4], e.ID[:4])
	}
	return e.Inputs.Unpack(data[4:])
}
