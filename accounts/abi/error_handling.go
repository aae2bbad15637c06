// Copyright 2025 The go-ethereum Authors
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
	"errors"
	"fmt"
)

// Error kinds reported by the coder. Every failure returned by this package
// for malformed types, mismatched parameter lists, out-of-range values or
// malformed input data wraps exactly one of them and can be checked with
// errors.Is.
// 编解码器返回的错误类别，可使用 errors.Is 判断。
var (
	// ErrInvalidType is returned when an ABI type string is malformed or unknown.
	// ErrInvalidType 在 ABI 类型字符串格式错误或未知时返回。
	ErrInvalidType = errors.New("abi: invalid type")

	// ErrParameterCount is returned when the number of values does not match
	// the number of type descriptors.
	// ErrParameterCount 在值的数量与类型描述符数量不一致时返回。
	ErrParameterCount = errors.New("abi: parameter count mismatch")

	// ErrEncodingOverflow is returned when a value does not fit its declared width.
	// ErrEncodingOverflow 在值超出声明宽度时返回。
	ErrEncodingOverflow = errors.New("abi: value overflows declared width")

	// ErrInvalidData is returned when encoded data is truncated or malformed.
	// ErrInvalidData 在编码数据被截断或格式错误时返回。
	ErrInvalidData = errors.New("abi: invalid encoded data")
)

var (
	errBadBool   = fmt.Errorf("%w: improperly encoded boolean value", ErrInvalidData)
	errBadUint8  = fmt.Errorf("%w: improperly encoded uint8 value", ErrInvalidData)
	errBadUint16 = fmt.Errorf("%w: improperly encoded uint16 value", ErrInvalidData)
	errBadUint32 = fmt.Errorf("%w: improperly encoded uint32 value", ErrInvalidData)
	errBadUint64 = fmt.Errorf("%w: improperly encoded uint64 value", ErrInvalidData)
	errBadInt8   = fmt.Errorf("%w: improperly encoded int8 value", ErrInvalidData)
	errBadInt16  = fmt.Errorf("%w: improperly encoded int16 value", ErrInvalidData)
	errBadInt32  = fmt.Errorf("%w: improperly encoded int32 value", ErrInvalidData)
	errBadInt64  = fmt.Errorf("%w: improperly encoded int64 value", ErrInvalidData)
)

func invalidTypeErr(t string, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidType, t, reason)
}

func overflowErr(v interface{}, t Type) error {
	return fmt.Errorf("%w: %v does not fit in %v", ErrEncodingOverflow, v, t)
}

// invalidDataErr formats a decoding failure.
// invalidDataErr 格式化解码失败的错误。
func invalidDataErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, fmt.Sprintf(format, args...))
}

// typeErr returns a formatted type casting error.
// typeErr 返回格式化的类型转换错误。
func typeErr(expected, got interface{}) error {
	return fmt.Errorf("abi: cannot use %v as type %v as argument", got, expected)
}
