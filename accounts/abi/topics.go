// Copyright 2018 The go-ethereum Authors
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
	"encoding/binary"
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/common/math"
	"github.com/sunyihoo/go-web3/crypto"
)

// 索引事件参数存储在日志主题中：值类型直接按 32 字节字编码，
// string、bytes 等动态类型则存储其 Keccak256 哈希。

// MakeTopics converts a filter query argument list into a filter topic set.
// MakeTopics 将过滤器查询参数列表转换为过滤器主题集合。
func MakeTopics(query ...[]interface{}) ([][]common.Hash, error) {
	topics := make([][]common.Hash, len(query))
	for i, filter := range query {
		for _, rule := range filter {
			topic, err := makeTopic(rule)
			if err != nil {
				return nil, err
			}
			topics[i] = append(topics[i], topic)
		}
	}
	return topics, nil
}

// PackTopics packs a list of indexed values into one topic each.
// PackTopics 将一组索引值各打包为一个主题。
func PackTopics(filter []interface{}) ([]common.Hash, error) {
	topics, err := MakeTopics(filter)
	if err != nil {
		return nil, err
	}
	return topics[0], nil
}

func makeTopic(rule interface{}) (common.Hash, error) {
	var topic common.Hash

	switch rule := rule.(type) {
	case common.Hash:
		copy(topic[:], rule[:])
	case common.Address:
		copy(topic[common.HashLength-common.AddressLength:], rule[:])
	case *big.Int:
		copy(topic[:], math.U256Bytes(new(big.Int).Set(rule)))
	case *uint256.Int:
		topic = rule.Bytes32()
	case bool:
		if rule {
			topic[common.HashLength-1] = 1
		}
	case int8:
		copy(topic[:], genIntType(int64(rule), 1))
	case int16:
		copy(topic[:], genIntType(int64(rule), 2))
	case int32:
		copy(topic[:], genIntType(int64(rule), 4))
	case int64:
		copy(topic[:], genIntType(rule, 8))
	case uint8:
		topic = uint256.NewInt(uint64(rule)).Bytes32()
	case uint16:
		topic = uint256.NewInt(uint64(rule)).Bytes32()
	case uint32:
		topic = uint256.NewInt(uint64(rule)).Bytes32()
	case uint64:
		topic = uint256.NewInt(rule).Bytes32()
	case string:
		topic = crypto.Keccak256Hash([]byte(rule))
	case []byte:
		topic = crypto.Keccak256Hash(rule)
	default:
		// static byte arrays (bytesN) are stored left aligned
		// 静态字节数组（bytesN）左对齐存储
		val := reflect.ValueOf(rule)
		if val.Kind() == reflect.Array && val.Type().Elem().Kind() == reflect.Uint8 && val.Len() <= common.HashLength {
			reflect.Copy(reflect.ValueOf(topic[:val.Len()]), val)
			return topic, nil
		}
		return common.Hash{}, fmt.Errorf("unsupported indexed type: %T", rule)
	}
	return topic, nil
}

// genIntType generates the canonical representation of an integer type with the given size.
// genIntType 生成给定大小整数的规范表示，负数按补码扩展到 32 字节。
func genIntType(rule int64, size uint) []byte {
	var topic [common.HashLength]byte
	if rule < 0 {
		for i := range topic {
			topic[i] = 0xff
		}
	}
	for i := uint(0); i < size; i++ {
		topic[common.HashLength-i-1] = byte(rule >> (i * 8))
	}
	return topic[:]
}

// ParseTopics converts the indexed topic fields into actual log field values.
// ParseTopics 将索引主题转换为实际的日志字段值并写入 out 结构体。
func ParseTopics(out interface{}, fields Arguments, topics []common.Hash) error {
	return parseTopicWithSetter(fields, topics,
		func(arg Argument, reconstr interface{}) error {
			field := reflect.ValueOf(out).Elem().FieldByName(ToCamelCase(arg.Name))
			if !field.IsValid() {
				return fmt.Errorf("abi: field %s can't be found in the given value", arg.Name)
			}
			return set(field, reflect.ValueOf(reconstr))
		})
}

// ParseTopicsIntoMap converts the indexed topic field-value pairs into map key-value pairs.
// ParseTopicsIntoMap 将索引主题转换为映射中的键值对。
func ParseTopicsIntoMap(out map[string]interface{}, fields Arguments, topics []common.Hash) error {
	return parseTopicWithSetter(fields, topics,
		func(arg Argument, reconstr interface{}) error {
			out[arg.Name] = reconstr
			return nil
		})
}

// parseTopicWithSetter converts the indexed topic field-value pairs and stores them using the
// provided set function.
//
// Note, dynamic types cannot be reconstructed since they get mapped to Keccak256
// hashes as the topic value!
// 注意：动态类型无法重建，因为主题中存储的是它们的 Keccak256 哈希。
func parseTopicWithSetter(fields Arguments, topics []common.Hash, setter func(Argument, interface{}) error) error {
	if len(fields) != len(topics) {
		return invalidDataErr("topic/field count mismatch")
	}
	for i, arg := range fields {
		if !arg.Indexed {
			return fmt.Errorf("abi: non-indexed field %s in topic reconstruction", arg.Name)
		}
		var reconstr interface{}
		switch arg.Type.T {
		case TupleTy:
			return fmt.Errorf("abi: tuple type in topic reconstruction")
		case StringTy, BytesTy, SliceTy, ArrayTy:
			// only the hash of the value is stored
			reconstr = topics[i]
		case FunctionTy:
			if garbage := binary.BigEndian.Uint64(topics[i][24:32]); garbage != 0 {
				return invalidDataErr("got improperly encoded function type, got %v", topics[i].Bytes())
			}
			var tmp [24]byte
			copy(tmp[:], topics[i][0:24])
			reconstr = tmp
		default:
			var err error
			reconstr, err = toGoType(0, arg.Type, topics[i].Bytes())
			if err != nil {
				return err
			}
		}
		if err := setter(arg, reconstr); err != nil {
			return err
		}
	}
	return nil
}
