// Copyright 2022 The go-ethereum Authors
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

// SelectorMarshaling is the JSON-serializable form of a parsed method
// selector such as "transfer(address,uint256)".
// SelectorMarshaling 是解析后的方法选择器的 JSON 可序列化形式。
type SelectorMarshaling struct {
	Name   string               `json:"name"`
	Type   string               `json:"type"`
	Inputs []ArgumentMarshaling `json:"inputs"`
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

func parseToken(unescapedSelector string, isIdent bool) (string, string, error) {
	if len(unescapedSelector) == 0 {
		return "", "", errors.New("empty token")
	}
	firstChar := unescapedSelector[0]
	position := 1
	if !(isAlpha(firstChar) || (isIdent && isIdentifierSymbol(firstChar))) {
		return "", "", fmt.Errorf("invalid token start: %c", firstChar)
	}
	for position < len(unescapedSelector) {
		char := unescapedSelector[position]
		if !(isAlpha(char) || isDigit(char) || (isIdent && isIdentifierSymbol(char))) {
			break
		}
		position++
	}
	return unescapedSelector[:position], unescapedSelector[position:], nil
}

func parseIdentifier(unescapedSelector string) (string, string, error) {
	return parseToken(unescapedSelector, true)
}

// parseElementaryType parses an elementary type with optional array
// suffixes, e.g. uint256[2][].
// parseElementaryType 解析带可选数组后缀的基本类型。
func parseElementaryType(unescapedSelector string) (string, string, error) {
	parsedType, rest, err := parseToken(unescapedSelector, false)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse elementary type: %v", err)
	}
	parsedType, rest, err = parseArraySuffix(parsedType, rest)
	if err != nil {
		return "", "", err
	}
	return parsedType, rest, nil
}

// parseArraySuffix appends any number of [] or [N] suffixes to parsedType.
func parseArraySuffix(parsedType, rest string) (string, string, error) {
	for len(rest) > 0 && rest[0] == '[' {
		parsedType = parsedType + string(rest[0])
		rest = rest[1:]
		for len(rest) > 0 && isDigit(rest[0]) {
			parsedType = parsedType + string(rest[0])
			rest = rest[1:]
		}
		if len(rest) == 0 || rest[0] != ']' {
			return "", "", fmt.Errorf("failed to parse array: expected ']', got %q", rest)
		}
		parsedType = parsedType + string(rest[0])
		rest = rest[1:]
	}
	return parsedType, rest, nil
}

// compositeType is a parenthesized component list with its array suffix.
type compositeType struct {
	components []interface{}
	suffix     string
}

func parseCompositeType(unescapedSelector string) (compositeType, string, error) {
	if len(unescapedSelector) == 0 || unescapedSelector[0] != '(' {
		return compositeType{}, "", fmt.Errorf("expected '(', got %q", unescapedSelector)
	}
	parsedType, rest, err := parseType(unescapedSelector[1:])
	if err != nil {
		return compositeType{}, "", fmt.Errorf("failed to parse type: %v", err)
	}
	result := []interface{}{parsedType}
	for len(rest) > 0 && rest[0] != ')' {
		if rest[0] != ',' {
			return compositeType{}, "", fmt.Errorf("expected ',', got %q", rest)
		}
		parsedType, rest, err = parseType(rest[1:])
		if err != nil {
			return compositeType{}, "", fmt.Errorf("failed to parse type: %v", err)
		}
		result = append(result, parsedType)
	}
	if len(rest) == 0 || rest[0] != ')' {
		return compositeType{}, "", fmt.Errorf("expected ')', got '%s'", rest)
	}
	suffix, rest, err := parseArraySuffix("", rest[1:])
	if err != nil {
		return compositeType{}, "", err
	}
	return compositeType{components: result, suffix: suffix}, rest, nil
}

func parseType(unescapedSelector string) (interface{}, string, error) {
	if len(unescapedSelector) == 0 {
		return nil, "", errors.New("empty type")
	}
	if unescapedSelector[0] == '(' {
		return parseCompositeType(unescapedSelector)
	}
	return parseElementaryType(unescapedSelector)
}

// assembleArgs turns the parse tree into argument descriptions with
// placeholder names.
// assembleArgs 将解析树转换为带占位名称的参数描述。
func assembleArgs(args []interface{}) ([]ArgumentMarshaling, error) {
	arguments := make([]ArgumentMarshaling, 0)
	for i, arg := range args {
		// generate dummy name to avoid unmarshal issues
		name := fmt.Sprintf("name%d", i)
		switch arg := arg.(type) {
		case string:
			arguments = append(arguments, ArgumentMarshaling{name, arg, arg, nil, false})
		case compositeType:
			subArgs, err := assembleArgs(arg.components)
			if err != nil {
				return nil, fmt.Errorf("failed to assemble components: %v", err)
			}
			tupleType := "tuple" + arg.suffix
			arguments = append(arguments, ArgumentMarshaling{name, tupleType, tupleType, subArgs, false})
		default:
			return nil, fmt.Errorf("failed to assemble args: unexpected type %T", arg)
		}
	}
	return arguments, nil
}

// ParseSelector converts a method selector into a struct that can be JSON encoded
// and consumed by other functions in this package.
// Note, although uppercase letters are not part of the ABI spec, this function
// still accepts it as the general format is valid.
// ParseSelector 将方法选择器转换为可 JSON 编码的结构体。
func ParseSelector(unescapedSelector string) (SelectorMarshaling, error) {
	name, rest, err := parseIdentifier(unescapedSelector)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %v", unescapedSelector, err)
	}
	args := []interface{}{}
	if len(rest) >= 2 && rest[0] == '(' && rest[1] == ')' {
		rest = rest[2:]
	} else {
		composite, remaining, err := parseCompositeType(rest)
		if err != nil {
			return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': %v", unescapedSelector, err)
		}
		if composite.suffix != "" {
			return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': unexpected array suffix on argument list", unescapedSelector)
		}
		args, rest = composite.components, remaining
	}
	if len(rest) > 0 {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector '%s': unexpected string '%s'", unescapedSelector, rest)
	}

	// Reassemble the fake ABI and construct the JSON
	fakeArgs, err := assembleArgs(args)
	if err != nil {
		return SelectorMarshaling{}, fmt.Errorf("failed to parse selector: %v", err)
	}

	return SelectorMarshaling{name, "function", fakeArgs}, nil
}

// NewMethodFromSelector compiles a human readable selector such as
// "transfer(address,uint256)" into a Method without outputs.
// NewMethodFromSelector 将可读的选择器编译为没有输出的 Method。
func NewMethodFromSelector(selector string) (Method, error) {
	parsed, err := ParseSelector(selector)
	if err != nil {
		return Method{}, err
	}
	inputs := make(Arguments, len(parsed.Inputs))
	for i, in := range parsed.Inputs {
		typ, err := NewType(in.Type, in.InternalType, in.Components)
		if err != nil {
			return Method{}, err
		}
		inputs[i] = Argument{Name: in.Name, Type: typ}
	}
	return NewMethod(parsed.Name, parsed.Name, Function, "", false, false, inputs, nil), nil
}
