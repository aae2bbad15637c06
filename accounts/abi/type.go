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

package abi

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sunyihoo/go-web3/common"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	FunctionTy
)

// DynamicLength is the ArrayLength of a dynamically sized array (T[]).
// DynamicLength 是动态数组 (T[]) 的 ArrayLength。
const DynamicLength = -1

// Type is the compiled descriptor of an ABI type. A Type is immutable once
// NewType returns it and can be shared between goroutines.
// Type 是 ABI 类型编译后的描述符，NewType 返回后不可变，可在协程间共享。
type Type struct {
	Elem *Type // 数组或切片的元素类型
	Size int   // 整数的位宽、bytesN 的字节数或定长数组的长度
	T    byte  // 类型标签

	stringKind string // 规范类型字符串，用于派生签名

	// Tuple relative fields
	TupleRawName  string       // 源代码中定义的结构体名称，可能为空
	TupleElems    []*Type      // 所有元组字段的类型信息
	TupleRawNames []string     // 所有元组字段的原始名称
	TupleType     reflect.Type // 元组对应的 Go 结构体类型

	dynamic bool // 自底向上计算后冻结
}

// typeRegex splits an elementary type into its keyword and optional size.
// typeRegex 将基本类型拆分为关键字和可选的大小。
var typeRegex = regexp.MustCompile(`^([a-zA-Z]+)([0-9]*)$`)

// NewType compiles the type string t into a descriptor. Tuples take their
// ordered components from components; internalType is the optional
// solidity internal type used to name tuple structs.
//
// Compilation rules:
//   - a trailing [] or [N] makes a dynamic or fixed array of the remaining
//     type; N must be a positive decimal number
//   - uint and int without a size mean uint256 and int256; sized integers
//     need 8 <= N <= 256 with N a multiple of 8
//   - bytes without a size is dynamic bytes; bytesN needs 1 <= N <= 32
//
// NewType 将类型字符串编译为描述符。元组的组成部分由 components 按顺序给出。
func NewType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, invalidTypeErr(t, "unbalanced array brackets")
	}
	if strings.HasSuffix(t, "]") {
		// Note internalType can be empty here.
		// 注意，此处 internalType 可以为空。
		subInternal := internalType
		if i := strings.LastIndex(internalType, "["); i != -1 {
			subInternal = subInternal[:i]
		}
		i := strings.LastIndex(t, "[")
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		size := t[i+1 : len(t)-1]
		typ.Elem = &embeddedType
		if size == "" {
			typ.T = SliceTy
			typ.dynamic = true
			typ.stringKind = embeddedType.stringKind + "[]"
			return typ, nil
		}
		if !isDecimal(size) {
			return Type{}, invalidTypeErr(t, "array length is not a number")
		}
		typ.Size, err = strconv.Atoi(size)
		if err != nil || typ.Size <= 0 {
			return Type{}, invalidTypeErr(t, "array length must be positive")
		}
		if typ.Size > maxTypeFootprint/embeddedType.footprint() {
			return Type{}, invalidTypeErr(t, "array too large")
		}
		typ.T = ArrayTy
		typ.dynamic = embeddedType.dynamic
		typ.stringKind = embeddedType.stringKind + "[" + strconv.Itoa(typ.Size) + "]"
		return typ, nil
	}
	if strings.ContainsAny(t, "[]") {
		return Type{}, invalidTypeErr(t, "misplaced array brackets")
	}
	matches := typeRegex.FindStringSubmatch(t)
	if matches == nil {
		if strings.HasPrefix(internalType, "contract ") {
			return newElementary(AddressTy, 20, "address"), nil
		}
		return Type{}, invalidTypeErr(t, "unsupported arg type")
	}
	keyword, sizeStr := matches[1], matches[2]
	if len(sizeStr) > 1 && sizeStr[0] == '0' {
		return Type{}, invalidTypeErr(t, "size has leading zeros")
	}
	var (
		varSize int
		sized   = sizeStr != ""
	)
	if sized {
		if varSize, err = strconv.Atoi(sizeStr); err != nil {
			return Type{}, invalidTypeErr(t, "size out of range")
		}
	}

	switch keyword {
	case "int", "uint":
		if !sized {
			varSize = 256
		}
		if varSize < 8 || varSize > 256 || varSize%8 != 0 {
			return Type{}, invalidTypeErr(t, "integer width must be a multiple of 8 between 8 and 256")
		}
		kind := IntTy
		if keyword == "uint" {
			kind = UintTy
		}
		return newElementary(kind, varSize, keyword+strconv.Itoa(varSize)), nil
	case "bool":
		if sized {
			break
		}
		return newElementary(BoolTy, 0, "bool"), nil
	case "address":
		if sized {
			break
		}
		return newElementary(AddressTy, 20, "address"), nil
	case "string":
		if sized {
			break
		}
		typ = newElementary(StringTy, 0, "string")
		typ.dynamic = true
		return typ, nil
	case "bytes":
		if !sized {
			typ = newElementary(BytesTy, 0, "bytes")
			typ.dynamic = true
			return typ, nil
		}
		if varSize < 1 || varSize > 32 {
			return Type{}, invalidTypeErr(t, "fixed bytes size must be between 1 and 32")
		}
		return newElementary(FixedBytesTy, varSize, t), nil
	case "function":
		if sized {
			break
		}
		return newElementary(FunctionTy, 24, "function"), nil
	case "tuple":
		if sized {
			break
		}
		return newTuple(t, internalType, components)
	}
	if strings.HasPrefix(internalType, "contract ") {
		return newElementary(AddressTy, 20, "address"), nil
	}
	return Type{}, invalidTypeErr(t, "unsupported arg type")
}

func newElementary(kind byte, size int, canonical string) Type {
	return Type{T: kind, Size: size, stringKind: canonical}
}

// newTuple compiles the tuple components and builds the Go struct type the
// decoder produces for it.
// newTuple 编译元组的各个组成部分，并构建解码器使用的 Go 结构体类型。
func newTuple(t string, internalType string, components []ArgumentMarshaling) (Type, error) {
	if len(components) == 0 {
		return Type{}, invalidTypeErr(t, "tuple without components")
	}
	var (
		typ    = Type{T: TupleTy}
		fields []reflect.StructField
		types  = make([]string, 0, len(components))
		used   = make(map[string]bool)
	)
	for idx, c := range components {
		cType, err := NewType(c.Type, c.InternalType, c.Components)
		if err != nil {
			return Type{}, err
		}
		rawName := c.Name
		if rawName == "" {
			rawName = fmt.Sprintf("arg%d", idx)
		}
		name := ToCamelCase(rawName)
		if name == "" {
			return Type{}, invalidTypeErr(t, "purely underscored field is not supported")
		}
		fieldName := ResolveNameConflict(name, func(s string) bool { return used[s] })
		used[fieldName] = true
		if !isValidFieldName(fieldName) {
			return Type{}, invalidTypeErr(t, fmt.Sprintf("field %d has invalid name", idx))
		}
		fields = append(fields, reflect.StructField{
			Name: fieldName, // reflect.StructOf will panic for any exported field.
			Type: cType.GetType(),
			Tag:  reflect.StructTag("json:\"" + rawName + "\""),
		})
		typ.TupleElems = append(typ.TupleElems, &cType)
		typ.TupleRawNames = append(typ.TupleRawNames, rawName)
		typ.dynamic = typ.dynamic || cType.dynamic
		types = append(types, cType.stringKind)
	}
	total := 0
	for _, elem := range typ.TupleElems {
		size := elem.footprint()
		if size > maxTypeFootprint-total {
			return Type{}, invalidTypeErr(t, "tuple too large")
		}
		total += size
	}
	typ.TupleType = reflect.StructOf(fields)
	typ.stringKind = "(" + strings.Join(types, ",") + ")"

	// Solidity 0.5.10 added "internalType", which carries the struct name
	// used in source; Foo.Bar becomes FooBar.
	// Solidity 0.5.10 引入的 internalType 携带源码中的结构体名称。
	const structPrefix = "struct "
	if strings.HasPrefix(internalType, structPrefix) {
		typ.TupleRawName = strings.ReplaceAll(internalType[len(structPrefix):], ".", "")
	}
	return typ, nil
}

// GetType returns the reflection type of the ABI type.
// GetType 返回 ABI 类型的反射类型。
func (t Type) GetType() reflect.Type {
	switch t.T {
	case IntTy:
		return reflectIntType(false, t.Size)
	case UintTy:
		return reflectIntType(true, t.Size)
	case BoolTy:
		return reflect.TypeOf(false)
	case StringTy:
		return reflect.TypeOf("")
	case SliceTy:
		return reflect.SliceOf(t.Elem.GetType())
	case ArrayTy:
		return reflect.ArrayOf(t.Size, t.Elem.GetType())
	case TupleTy:
		return t.TupleType
	case AddressTy:
		return reflect.TypeOf(common.Address{})
	case FixedBytesTy:
		return reflect.ArrayOf(t.Size, reflect.TypeOf(byte(0)))
	case BytesTy:
		return reflect.SliceOf(reflect.TypeOf(byte(0)))
	case FunctionTy:
		return reflect.ArrayOf(24, reflect.TypeOf(byte(0)))
	default:
		panic("Invalid type")
	}
}

// String returns the canonical type string, e.g. uint256 for uint.
// String 返回规范类型字符串，例如 uint 对应 uint256。
func (t Type) String() (out string) {
	return t.stringKind
}

// IsDynamic reports whether values of the type are encoded in the tail
// region. string, bytes and T[] are dynamic; T[k] and tuples are dynamic iff
// an element is.
// IsDynamic 报告该类型的值是否编码在尾部区域。
func (t Type) IsDynamic() bool {
	return t.dynamic
}

// ArrayLength returns the length of a fixed array, DynamicLength for T[] and
// 0 for every other type.
// ArrayLength 返回定长数组的长度，T[] 返回 DynamicLength，其他类型返回 0。
func (t Type) ArrayLength() int {
	switch t.T {
	case ArrayTy:
		return t.Size
	case SliceTy:
		return DynamicLength
	}
	return 0
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
func (t Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// headSize returns the number of bytes the type occupies in the head region.
// Static arrays and tuples are laid out in place; every dynamic type takes a
// single 32 byte offset slot.
// headSize 返回该类型在头部区域占用的字节数。静态数组和元组原地展开，动态类型只占一个 32 字节的偏移槽。
func (t Type) headSize() int {
	if t.dynamic {
		return 32
	}
	switch t.T {
	case ArrayTy:
		return t.Size * t.Elem.headSize()
	case TupleTy:
		total := 0
		for _, elem := range t.TupleElems {
			total += elem.headSize()
		}
		return total
	}
	return 32
}

// maxTypeFootprint caps the number of bytes a fully expanded type may occupy.
// Every dynamic leaf counts as one word, so the static head size and the size
// of the Go type the decoder allocates both stay below it.
// maxTypeFootprint 限制完全展开后的类型所占字节数，动态叶子类型按一个字计算。
const maxTypeFootprint = 1 << 30

// footprint is the size of the type with every array expanded and every
// dynamic leaf (string, bytes, T[]) counted as a single word.
// footprint 返回数组完全展开后的类型大小，动态叶子类型按一个字计算。
func (t Type) footprint() int {
	switch t.T {
	case ArrayTy:
		return t.Size * t.Elem.footprint()
	case TupleTy:
		total := 0
		for _, elem := range t.TupleElems {
			total += elem.footprint()
		}
		return total
	}
	return 32
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// isLetter reports whether a given 'rune' is classified as a Letter.
// This method is copied from reflect/type.go
func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

// isValidFieldName checks if a string is a valid (struct) field name or not.
//
// identifier = letter { letter | unicode_digit } .
// letter = unicode_letter | "_" .
//
// isValidFieldName 检查字符串是否是有效的结构体字段名。
func isValidFieldName(fieldName string) bool {
	for i, c := range fieldName {
		if i == 0 && !isLetter(c) {
			return false
		}
		if !(isLetter(c) || unicode.IsDigit(c)) {
			return false
		}
	}
	return len(fieldName) > 0
}
