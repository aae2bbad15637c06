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
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 保存参数的名称和对应的类型。
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events
}

// Arguments is an ordered parameter list.
// Arguments 是有序的参数列表。
type Arguments []Argument

// ArgumentMarshaling is the JSON form of an argument in a contract ABI.
// ArgumentMarshaling 是合约 ABI 中参数的 JSON 表示。
type ArgumentMarshaling struct {
	Name         string
	Type         string
	InternalType string
	Components   []ArgumentMarshaling
	Indexed      bool
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现了 json.Unmarshaler 接口。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// NewArguments compiles a list of type strings into unnamed arguments.
// NewArguments 将一组类型字符串编译为未命名的参数列表。
func NewArguments(types ...string) (Arguments, error) {
	args := make(Arguments, len(types))
	for i, t := range types {
		typ, err := NewType(t, "", nil)
		if err != nil {
			return nil, err
		}
		args[i] = Argument{Type: typ}
	}
	return args, nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Indexed returns only the indexed arguments.
// Indexed 只返回索引参数。
func (arguments Arguments) Indexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the canonical type strings of the arguments.
// Types 返回参数的规范类型字符串。
func (arguments Arguments) Types() []string {
	types := make([]string, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type.String()
	}
	return types
}

// isTuple returns true for non-atomic constructs, like (uint,uint) or uint[].
func (arguments Arguments) isTuple() bool {
	return len(arguments) > 1
}

// Unpack performs the operation hexdata -> Go format.
// Unpack 将 ABI 编码数据解包为 Go 值。
func (arguments Arguments) Unpack(data []byte) ([]interface{}, error) {
	if len(data) == 0 {
		if len(arguments.NonIndexed()) != 0 {
			return nil, invalidDataErr("attempting to unmarshal an empty string while arguments are expected")
		}
		return make([]interface{}, 0), nil
	}
	return arguments.UnpackValues(data)
}

// Decode unpacks data and keeps the argument names alongside the values.
// Decode 解包数据，并保留参数名与值的对应关系。
func (arguments Arguments) Decode(data []byte) (*Decoded, error) {
	values, err := arguments.Unpack(data)
	if err != nil {
		return nil, err
	}
	nonIndexed := arguments.NonIndexed()
	names := make([]string, len(nonIndexed))
	for i, arg := range nonIndexed {
		names[i] = arg.Name
	}
	return newDecoded(names, values), nil
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to argument value.
// UnpackIntoMap 将 ABI 编码数据解包为参数名到参数值的映射。
func (arguments Arguments) UnpackIntoMap(v map[string]interface{}, data []byte) error {
	if v == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	if len(data) == 0 {
		if len(arguments.NonIndexed()) != 0 {
			return invalidDataErr("attempting to unmarshal an empty string while arguments are expected")
		}
		return nil
	}
	marshalledValues, err := arguments.UnpackValues(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments.NonIndexed() {
		v[arg.Name] = marshalledValues[i]
	}
	return nil
}

// Copy performs the operation go format -> provided struct.
// Copy 将 Go 值复制到提供的结构体或切片中。
func (arguments Arguments) Copy(v interface{}, values []interface{}) error {
	if reflect.Ptr != reflect.ValueOf(v).Kind() {
		return fmt.Errorf("abi: Unpack(non-pointer %T)", v)
	}
	if len(values) == 0 {
		if len(arguments.NonIndexed()) != 0 {
			return errors.New("abi: attempting to copy no values while arguments are expected")
		}
		return nil
	}
	if arguments.isTuple() {
		return arguments.copyTuple(v, values)
	}
	return arguments.copyAtomic(v, values[0])
}

// copyAtomic copies (hexdata -> go) a single value.
func (arguments Arguments) copyAtomic(v interface{}, marshalledValues interface{}) error {
	dst := reflect.ValueOf(v).Elem()
	src := reflect.ValueOf(marshalledValues)

	if dst.Kind() == reflect.Struct && src.Kind() != reflect.Struct {
		return set(dst.Field(0), src)
	}
	return set(dst, src)
}

// copyTuple copies a batch of values from marshalledValues to v.
// copyTuple 将一组值复制到目标结构体、切片或数组中。
func (arguments Arguments) copyTuple(v interface{}, marshalledValues []interface{}) error {
	value := reflect.ValueOf(v).Elem()
	nonIndexedArgs := arguments.NonIndexed()

	switch value.Kind() {
	case reflect.Struct:
		argNames := make([]string, len(nonIndexedArgs))
		for i, arg := range nonIndexedArgs {
			argNames[i] = arg.Name
		}
		abi2struct, err := mapArgNamesToStructFields(argNames, value)
		if err != nil {
			return err
		}
		for i, arg := range nonIndexedArgs {
			field := value.FieldByName(abi2struct[arg.Name])
			if !field.IsValid() {
				return fmt.Errorf("abi: field %s can't be found in the given value", arg.Name)
			}
			if err := set(field, reflect.ValueOf(marshalledValues[i])); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if value.Len() < len(marshalledValues) {
			return fmt.Errorf("abi: insufficient number of arguments for unpack, want %d, got %d", len(arguments), value.Len())
		}
		for i := range nonIndexedArgs {
			if err := set(value.Index(i), reflect.ValueOf(marshalledValues[i])); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("abi:[2] cannot unmarshal tuple in to %v", value.Type())
	}
	return nil
}

// UnpackValues can be used to unpack ABI-encoded hexdata according to the ABI-specification,
// without supplying a struct to unpack into. Instead, this method returns a list containing the
// values. An atomic argument will be a list with one element.
// UnpackValues 按 ABI 规范解包数据，返回值列表，无需提供目标结构体。
func (arguments Arguments) UnpackValues(data []byte) ([]interface{}, error) {
	nonIndexedArgs := arguments.NonIndexed()
	types := make([]*Type, len(nonIndexedArgs))
	for i := range nonIndexedArgs {
		types[i] = &nonIndexedArgs[i].Type
	}
	return decodeBlock(types, data)
}

// PackValues performs the operation Go format -> Hexdata.
// It is the semantic opposite of UnpackValues.
// PackValues 将 Go 值编码为 ABI 数据，与 UnpackValues 相反。
func (arguments Arguments) PackValues(args []interface{}) ([]byte, error) {
	return arguments.Pack(args...)
}

// Pack performs the operation Go format -> Hexdata. Each argument becomes a
// segment; the segments are then laid out heads first with the dynamic
// offsets filled in.
// Pack 将 Go 值打包为 ABI 编码数据：每个参数生成一个段，再按先 head 后 tail 的顺序组装并填入偏移量。
func (arguments Arguments) Pack(args ...interface{}) ([]byte, error) {
	if len(args) != len(arguments) {
		return nil, fmt.Errorf("%w: got %d for %d", ErrParameterCount, len(args), len(arguments))
	}
	segs := make([]segment, len(args))
	for i, a := range args {
		seg, err := arguments[i].Type.encodeSegment(reflect.ValueOf(a))
		if err != nil {
			return nil, err
		}
		segs[i] = seg
	}
	return assemble(segs), nil
}
