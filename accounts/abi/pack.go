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
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/common/math"
)

// 编码采用 head/tail 布局：
//
//	enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
//
// 静态类型的 head 就是它的编码，tail 为空；动态类型的 head 是一个偏移量，
// 指向该值在 tail 区域中的位置（相对于当前块的起始位置）。

// segment is the encoding of a single parameter. head is its slot in the head
// region, tail the payload appended after all heads. When refreshHead is set
// the head is a placeholder that assemble overwrites with the payload offset.
// segment 是单个参数的编码。refreshHead 为真时，head 是占位符，由 assemble 改写为偏移量。
type segment struct {
	head        []byte
	tail        []byte
	refreshHead bool
}

// assemble lays segments out as one block: all heads, then all tails. Every
// placeholder head is replaced by headSize + the tail length of the segments
// before it.
// assemble 将段组装为一个块：先所有 head，再所有 tail，并写入占位符的偏移量。
func assemble(segs []segment) []byte {
	var headSize, tailSize int
	for _, s := range segs {
		headSize += len(s.head)
		tailSize += len(s.tail)
	}
	offset := headSize
	for i := range segs {
		if segs[i].refreshHead {
			word := uint256.NewInt(uint64(offset)).Bytes32()
			segs[i].head = word[:]
		}
		offset += len(segs[i].tail)
	}
	out := make([]byte, 0, headSize+tailSize)
	for _, s := range segs {
		out = append(out, s.head...)
	}
	for _, s := range segs {
		out = append(out, s.tail...)
	}
	return out
}

// encodeSegment encodes v as a parameter of type t. Static values are placed
// in the head, dynamic ones in the tail behind a placeholder.
// encodeSegment 将 v 编码为类型 t 的参数段。
func (t Type) encodeSegment(v reflect.Value) (segment, error) {
	enc, err := t.pack(v)
	if err != nil {
		return segment{}, err
	}
	if t.dynamic {
		return segment{head: make([]byte, 32), tail: enc, refreshHead: true}, nil
	}
	return segment{head: enc}, nil
}

// encodeBlock encodes values against types as a nested head/tail block.
// encodeBlock 将一组值编码为嵌套的 head/tail 块。
func encodeBlock(types []*Type, values []reflect.Value) ([]byte, error) {
	segs := make([]segment, len(types))
	for i, typ := range types {
		seg, err := typ.encodeSegment(values[i])
		if err != nil {
			return nil, err
		}
		segs[i] = seg
	}
	return assemble(segs), nil
}

// pack returns the full encoding enc(v) of v under t.
// pack 返回 v 在类型 t 下的完整编码 enc(v)。
func (t Type) pack(v reflect.Value) ([]byte, error) {
	v = indirect(v)
	if !v.IsValid() || ((v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil()) {
		return nil, fmt.Errorf("abi: cannot use nil as type %v as argument", t)
	}
	switch t.T {
	case SliceTy, ArrayTy:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return nil, typeErr(t, v.Type())
		}
		if t.T == ArrayTy && v.Len() != t.Size {
			return nil, typeErr(t, fmt.Sprintf("%v of length %d", v.Type(), v.Len()))
		}
		types := make([]*Type, v.Len())
		values := make([]reflect.Value, v.Len())
		for i := range types {
			types[i], values[i] = t.Elem, v.Index(i)
		}
		block, err := encodeBlock(types, values)
		if err != nil {
			return nil, err
		}
		if t.T == SliceTy {
			return append(packNum(v.Len()), block...), nil
		}
		return block, nil

	case TupleTy:
		values, err := tupleValues(t, v)
		if err != nil {
			return nil, err
		}
		return encodeBlock(t.TupleElems, values)

	default:
		return packElement(t, v)
	}
}

// tupleValues resolves the component values of a tuple given as a struct,
// a positional slice or array, or a map keyed by component name.
// tupleValues 从结构体、按位置的切片/数组或按名称的映射中解析元组的各个组成值。
func tupleValues(t Type, v reflect.Value) ([]reflect.Value, error) {
	values := make([]reflect.Value, len(t.TupleElems))
	switch v.Kind() {
	case reflect.Struct:
		fieldmap, err := mapArgNamesToStructFields(t.TupleRawNames, v)
		if err != nil {
			return nil, err
		}
		for i, name := range t.TupleRawNames {
			field := v.FieldByName(fieldmap[name])
			if !field.IsValid() {
				return nil, fmt.Errorf("field %s for tuple not found in the given struct", name)
			}
			values[i] = field
		}
	case reflect.Slice, reflect.Array:
		if v.Len() != len(t.TupleElems) {
			return nil, fmt.Errorf("%w: tuple %v has %d components, got %d", ErrParameterCount, t, len(t.TupleElems), v.Len())
		}
		for i := range values {
			values[i] = v.Index(i)
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, typeErr(t, v.Type())
		}
		for i, name := range t.TupleRawNames {
			field := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if !field.IsValid() {
				return nil, fmt.Errorf("field %s for tuple not found in the given map", name)
			}
			values[i] = field
		}
	default:
		return nil, typeErr(t, v.Type())
	}
	return values, nil
}

// packElement packs an elementary value into its 32 byte word, or into the
// length-prefixed payload for string and bytes.
// packElement 将基本类型的值打包为 32 字节字，string 和 bytes 打包为带长度前缀的数据。
func packElement(t Type, v reflect.Value) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		return packInteger(t, v)
	case BoolTy:
		if v.Kind() != reflect.Bool {
			return nil, typeErr(t, v.Type())
		}
		if v.Bool() {
			return math.PaddedBigBytes(common.Big1, 32), nil
		}
		return math.PaddedBigBytes(common.Big0, 32), nil
	case StringTy:
		if v.Kind() != reflect.String {
			return nil, typeErr(t, v.Type())
		}
		return packBytesSlice([]byte(v.String())), nil
	case AddressTy:
		b, ok := byteSequence(v)
		if !ok || len(b) != common.AddressLength {
			return nil, typeErr(t, v.Type())
		}
		return common.LeftPadBytes(b, 32), nil
	case BytesTy:
		b, ok := byteSequence(v)
		if !ok {
			return nil, typeErr(t, v.Type())
		}
		return packBytesSlice(b), nil
	case FixedBytesTy, FunctionTy:
		b, ok := byteSequence(v)
		if !ok {
			return nil, typeErr(t, v.Type())
		}
		if len(b) > t.Size {
			return nil, overflowErr(fmt.Sprintf("%d bytes", len(b)), t)
		}
		return common.RightPadBytes(b, 32), nil
	default:
		return nil, fmt.Errorf("could not pack element, unknown type: %v", t.T)
	}
}

// packInteger range-checks an integer of any supported Go representation
// against the declared width and packs it as a two's complement word.
// packInteger 检查整数是否在声明宽度内，并打包为补码形式的 32 字节字。
func packInteger(t Type, v reflect.Value) ([]byte, error) {
	n, ok := toBigInt(v)
	if !ok {
		return nil, typeErr(t, v.Type())
	}
	if t.T == UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, overflowErr(n, t)
		}
	} else {
		limit := new(big.Int).Lsh(common.Big1, uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, overflowErr(n, t)
		}
	}
	return math.U256Bytes(n), nil
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
// packBytesSlice 将字节数据打包为 [L, V] 形式：L 为长度，V 为右填充到 32 字节对齐的数据。
func packBytesSlice(bytes []byte) []byte {
	return append(packNum(len(bytes)), common.RightPadBytes(bytes, (len(bytes)+31)/32*32)...)
}

// packNum packs a non-negative length or count as a 32 byte word.
func packNum(n int) []byte {
	word := uint256.NewInt(uint64(n)).Bytes32()
	return word[:]
}

// Encode encodes values against the given descriptors using the head/tail
// layout.
// Encode 使用 head/tail 布局按描述符编码一组值。
func Encode(types []Type, values []interface{}) ([]byte, error) {
	args := make(Arguments, len(types))
	for i, typ := range types {
		args[i] = Argument{Type: typ}
	}
	return args.Pack(values...)
}
