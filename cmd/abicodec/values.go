// Copyright 2017 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sunyihoo/go-web3/accounts/abi"
	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/common/hexutil"
	"golang.org/x/exp/slices"
)

// Command line values are given as literals. Scalars may be written bare
// (5, dog, 0xdead, true), lists and tuples as JSON ([1,2], ["a",{"x":1}]).
// 命令行值以字面量给出：标量可直接书写，列表和元组使用 JSON。

// parseArgs converts the command line literals into values accepted by the
// encoder, one per type.
// parseArgs 将命令行字面量转换为编码器可接受的值。
func parseArgs(types []abi.Type, literals []string) ([]interface{}, error) {
	if len(literals) != len(types) {
		return nil, fmt.Errorf("%w: have %d values, want %d", abi.ErrParameterCount, len(literals), len(types))
	}
	values := make([]interface{}, len(types))
	for i, t := range types {
		v, err := parseValue(t, literals[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %v", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// parseValue converts a single literal into a value of type t.
func parseValue(t abi.Type, literal string) (interface{}, error) {
	var v interface{} = literal
	switch t.T {
	case abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		dec := json.NewDecoder(strings.NewReader(literal))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("invalid JSON literal for %v: %v", t, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("invalid JSON literal for %v: trailing data", t)
		}
	}
	return convertValue(t, v)
}

// convertValue maps a decoded JSON value onto the Go representation of t.
// convertValue 将解码后的 JSON 值映射为类型 t 的 Go 表示。
func convertValue(t abi.Type, v interface{}) (interface{}, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		return parseInteger(t, v)
	case abi.BoolTy:
		switch v := v.(type) {
		case bool:
			return v, nil
		case string:
			return strconv.ParseBool(v)
		}
	case abi.StringTy:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case abi.AddressTy:
		if s, ok := v.(string); ok {
			if !common.IsHexAddress(s) {
				return nil, fmt.Errorf("invalid address %q", s)
			}
			return common.HexToAddress(s), nil
		}
	case abi.BytesTy, abi.FixedBytesTy, abi.FunctionTy:
		if s, ok := v.(string); ok {
			b, err := hexutil.Decode(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %v value %q: %v", t, s, err)
			}
			return b, nil
		}
	case abi.SliceTy, abi.ArrayTy:
		if list, ok := v.([]interface{}); ok {
			out := make([]interface{}, len(list))
			for i, item := range list {
				elem, err := convertValue(*t.Elem, item)
				if err != nil {
					return nil, fmt.Errorf("element %d: %v", i, err)
				}
				out[i] = elem
			}
			return out, nil
		}
	case abi.TupleTy:
		return convertTuple(t, v)
	}
	return nil, fmt.Errorf("cannot use %T as type %v", v, t)
}

// convertTuple accepts either a positional JSON array or an object keyed by
// the component names.
func convertTuple(t abi.Type, v interface{}) (interface{}, error) {
	var fields []interface{}
	switch v := v.(type) {
	case []interface{}:
		if len(v) != len(t.TupleElems) {
			return nil, fmt.Errorf("%w: tuple %v has %d components, have %d", abi.ErrParameterCount, t, len(t.TupleElems), len(v))
		}
		fields = v
	case map[string]interface{}:
		known := mapset.NewThreadUnsafeSet(t.TupleRawNames...)
		given := mapset.NewThreadUnsafeSet[string]()
		for name := range v {
			given.Add(name)
		}
		if unknown := given.Difference(known); unknown.Cardinality() > 0 {
			names := unknown.ToSlice()
			slices.Sort(names)
			return nil, fmt.Errorf("unknown tuple components %v", names)
		}
		fields = make([]interface{}, len(t.TupleRawNames))
		for i, name := range t.TupleRawNames {
			field, ok := v[name]
			if !ok {
				return nil, fmt.Errorf("missing tuple component %q", name)
			}
			fields[i] = field
		}
	default:
		return nil, fmt.Errorf("cannot use %T as type %v", v, t)
	}
	out := make([]interface{}, len(fields))
	for i, field := range fields {
		elem, err := convertValue(*t.TupleElems[i], field)
		if err != nil {
			return nil, fmt.Errorf("component %s: %v", t.TupleRawNames[i], err)
		}
		out[i] = elem
	}
	return out, nil
}

// parseInteger reads a decimal or 0x prefixed hexadecimal integer. Range
// checks are left to the encoder.
// parseInteger 解析十进制或 0x 前缀的十六进制整数，范围检查由编码器完成。
func parseInteger(t abi.Type, v interface{}) (*big.Int, error) {
	var s string
	switch v := v.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return nil, fmt.Errorf("cannot use %T as type %v", v, t)
	}
	var (
		n   = new(big.Int)
		ok  bool
		neg = strings.HasPrefix(s, "-")
	)
	digits := strings.TrimPrefix(s, "-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		_, ok = n.SetString(digits[2:], 16)
	} else {
		_, ok = n.SetString(digits, 10)
	}
	if !ok || digits == "" {
		return nil, fmt.Errorf("invalid %v value %q", t, s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}
