// Copyright 2017 The go-ethereum Authors
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
	"errors"
	"math"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-web3/common"
)

var (
	// MaxUint256 is the maximum value that can be represented by a uint256.
	// MaxUint256 是 uint256 可以表示的最大值。
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1)
	// MaxInt256 is the maximum value that can be represented by a int256.
	// MaxInt256 是 int256 可以表示的最大值。
	MaxInt256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 255), common.Big1)
)

// ReadInteger reads the integer based on its kind and returns the appropriate value.
// Words that do not fit the declared width are rejected.
// ReadInteger 根据整数类型读取整数并返回适当的值，超出声明宽度的字会被拒绝。
func ReadInteger(typ Type, b []byte) (interface{}, error) {
	ret := new(big.Int).SetBytes(b)

	if typ.T == UintTy {
		u64, isu64 := ret.Uint64(), ret.IsUint64()
		switch typ.Size {
		case 8:
			if !isu64 || u64 > math.MaxUint8 {
				return nil, errBadUint8
			}
			return byte(u64), nil
		case 16:
			if !isu64 || u64 > math.MaxUint16 {
				return nil, errBadUint16
			}
			return uint16(u64), nil
		case 32:
			if !isu64 || u64 > math.MaxUint32 {
				return nil, errBadUint32
			}
			return uint32(u64), nil
		case 64:
			if !isu64 {
				return nil, errBadUint64
			}
			return u64, nil
		default:
			if ret.BitLen() > typ.Size {
				return nil, invalidDataErr("value %v overflows %v", ret, typ)
			}
			return ret, nil
		}
	}

	// big.SetBytes can't tell if a number is negative or positive in itself.
	// On EVM, if the returned number > max int256, it is negative.
	// A number is > max int256 if the bit at position 255 is set.
	// 在 EVM 上，如果第 255 位被置位，则该数为负数。
	if ret.Bit(255) == 1 {
		ret.Add(MaxUint256, new(big.Int).Neg(ret))
		ret.Add(ret, common.Big1)
		ret.Neg(ret)
	}
	i64, isi64 := ret.Int64(), ret.IsInt64()
	switch typ.Size {
	case 8:
		if !isi64 || i64 < math.MinInt8 || i64 > math.MaxInt8 {
			return nil, errBadInt8
		}
		return int8(i64), nil
	case 16:
		if !isi64 || i64 < math.MinInt16 || i64 > math.MaxInt16 {
			return nil, errBadInt16
		}
		return int16(i64), nil
	case 32:
		if !isi64 || i64 < math.MinInt32 || i64 > math.MaxInt32 {
			return nil, errBadInt32
		}
		return int32(i64), nil
	case 64:
		if !isi64 {
			return nil, errBadInt64
		}
		return i64, nil
	default:
		limit := new(big.Int).Lsh(common.Big1, uint(typ.Size-1))
		if ret.Cmp(limit) >= 0 || ret.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, invalidDataErr("value %v overflows %v", ret, typ)
		}
		return ret, nil
	}
}

// readBool reads a bool.
// readBool 读取布尔值，只接受 0 或 1。
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, errBadBool
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errBadBool
	}
}

// A function type is simply the address with the function selection signature at the end.
//
// readFunctionType enforces that standard by always presenting it as a 24-array (address + sig = 24 bytes)
// 函数类型是地址加上函数选择器，总是表示为 24 字节数组。
func readFunctionType(t Type, word []byte) (funcTy [24]byte, err error) {
	if t.T != FunctionTy {
		return [24]byte{}, errors.New("abi: invalid type in call to make function type byte array")
	}
	if garbage := binary.BigEndian.Uint64(word[24:32]); garbage != 0 {
		err = invalidDataErr("got improperly encoded function type, got %v", word)
	} else {
		copy(funcTy[:], word[0:24])
	}
	return
}

// ReadFixedBytes uses reflection to create a fixed array to be read from.
// ReadFixedBytes 使用反射创建一个定长字节数组。
func ReadFixedBytes(t Type, word []byte) (interface{}, error) {
	if t.T != FixedBytesTy {
		return nil, errors.New("abi: invalid type in call to make fixed byte array")
	}
	array := reflect.New(t.GetType()).Elem()

	reflect.Copy(array, reflect.ValueOf(word[0:t.Size]))
	return array.Interface(), nil
}

// readWord interprets the 32 byte word at index as a position or length that
// must not exceed limit.
// readWord 将 index 处的 32 字节字解释为不超过 limit 的位置或长度。
func readWord(output []byte, index int, limit int) (int, error) {
	var word uint256.Int
	word.SetBytes(output[index : index+32])
	if !word.IsUint64() || word.Uint64() > uint64(limit) {
		return 0, invalidDataErr("word %v at %d exceeds limit %d", &word, index, limit)
	}
	return int(word.Uint64()), nil
}

// decodeBlock decodes a head/tail block: the heads of types are laid out from
// the start of block and dynamic offsets are relative to it.
// decodeBlock 解码一个 head/tail 块，动态偏移量相对于块的起始位置。
func decodeBlock(types []*Type, block []byte) ([]interface{}, error) {
	headSize := 0
	for _, typ := range types {
		headSize += typ.headSize()
	}
	if headSize > len(block) {
		return nil, invalidDataErr("length insufficient %d require %d", len(block), headSize)
	}
	var (
		values = make([]interface{}, len(types))
		cursor = 0
	)
	for i, typ := range types {
		v, err := toGoType(cursor, *typ, block)
		if err != nil {
			return nil, err
		}
		values[i] = v
		cursor += typ.headSize()
	}
	return values, nil
}

// forEachUnpack decodes size elements of an array laid out as a block.
// forEachUnpack 解码以块形式排列的 size 个数组元素。
func forEachUnpack(t Type, block []byte, size int) (interface{}, error) {
	var refSlice reflect.Value
	switch t.T {
	case SliceTy:
		refSlice = reflect.MakeSlice(t.GetType(), size, size)
	case ArrayTy:
		refSlice = reflect.New(t.GetType()).Elem()
	default:
		return nil, errors.New("abi: invalid type in array/slice unpacking stage")
	}
	types := make([]*Type, size)
	for i := range types {
		types[i] = t.Elem
	}
	values, err := decodeBlock(types, block)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		refSlice.Index(i).Set(reflect.ValueOf(v))
	}
	return refSlice.Interface(), nil
}

func forTupleUnpack(t Type, block []byte) (interface{}, error) {
	values, err := decodeBlock(t.TupleElems, block)
	if err != nil {
		return nil, err
	}
	retval := reflect.New(t.GetType()).Elem()
	for i, v := range values {
		retval.Field(i).Set(reflect.ValueOf(v))
	}
	return retval.Interface(), nil
}

// toGoType decodes the value of type t whose head starts at index in output.
// Dynamic values follow their offset word; offsets are relative to output.
// toGoType 解码 head 位于 output[index] 的类型 t 的值，动态值根据偏移字定位。
func toGoType(index int, t Type, output []byte) (interface{}, error) {
	if index+t.headSize() > len(output) {
		return nil, invalidDataErr("length insufficient %d require %d", len(output), index+t.headSize())
	}
	if t.dynamic {
		begin, err := readWord(output, index, len(output))
		if err != nil {
			return nil, err
		}
		payload := output[begin:]
		switch t.T {
		case TupleTy:
			return forTupleUnpack(t, payload)
		case ArrayTy:
			return forEachUnpack(t, payload, t.Size)
		}
		// length prefixed types
		if len(payload) < 32 {
			return nil, invalidDataErr("missing length word at offset %d (len=%d)", begin, len(output))
		}
		body := payload[32:]
		switch t.T {
		case SliceTy:
			// every element occupies at least one word of the element block
			count, err := readWord(payload, 0, len(body)/32)
			if err != nil {
				return nil, err
			}
			return forEachUnpack(t, body, count)
		case StringTy, BytesTy:
			length, err := readWord(payload, 0, len(body))
			if err != nil {
				return nil, err
			}
			if t.T == StringTy {
				return string(body[:length]), nil
			}
			return common.CopyBytes(body[:length]), nil
		}
		return nil, invalidDataErr("unknown dynamic type %v", t)
	}

	word := output[index : index+32]
	switch t.T {
	case TupleTy:
		return forTupleUnpack(t, output[index:index+t.headSize()])
	case ArrayTy:
		return forEachUnpack(t, output[index:index+t.headSize()], t.Size)
	case IntTy, UintTy:
		return ReadInteger(t, word)
	case BoolTy:
		return readBool(word)
	case AddressTy:
		return common.BytesToAddress(word), nil
	case FixedBytesTy:
		return ReadFixedBytes(t, word)
	case FunctionTy:
		return readFunctionType(t, word)
	default:
		return nil, invalidDataErr("unknown type %v", t.T)
	}
}

// Decode decodes data against the given descriptors. The values are
// addressable by position only since the descriptors carry no names.
// Decode 按描述符解码数据，由于描述符没有名称，结果只能按位置访问。
func Decode(types []Type, data []byte) (*Decoded, error) {
	args := make(Arguments, len(types))
	for i, typ := range types {
		args[i] = Argument{Type: typ}
	}
	return args.Decode(data)
}
