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
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sunyihoo/go-web3/accounts/abi"
	"github.com/sunyihoo/go-web3/common/hexutil"
)

// Output formats of decoded values.
const (
	outputPlain = "plain"
	outputJSON  = "json"
	outputDump  = "dump"
)

var spewConfig = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// namedValue is a single entry of the JSON output.
type namedValue struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// printDecoded writes the decoded values to w in the requested format.
// printDecoded 以指定格式将解码后的值写入 w。
func printDecoded(w io.Writer, format string, dec *abi.Decoded) error {
	switch format {
	case "", outputPlain:
		for i := 0; i < dec.Len(); i++ {
			fmt.Fprintf(w, "%s: %s\n", valueName(dec, i), formatValue(reflect.ValueOf(dec.Index(i))))
		}
		return nil
	case outputJSON:
		out := make([]namedValue, dec.Len())
		for i := range out {
			out[i] = namedValue{Name: valueName(dec, i), Value: jsonValue(reflect.ValueOf(dec.Index(i)))}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case outputDump:
		spewConfig.Fdump(w, dec.Values()...)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func valueName(dec *abi.Decoded, i int) string {
	if name := dec.Name(i); name != "" {
		return name
	}
	return strconv.Itoa(i)
}

// formatValue renders a decoded value on a single line. Byte sequences are
// printed as hex, tuples as {name: value} lists.
// formatValue 在单行中呈现解码后的值，字节序列以十六进制输出。
func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	if v.Kind() == reflect.Interface || (v.Kind() == reflect.Ptr && v.IsNil()) {
		if v.IsNil() {
			return "<nil>"
		}
		return formatValue(v.Elem())
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return hexutil.Encode(bytesOf(v))
		}
		items := make([]string, v.Len())
		for i := range items {
			items[i] = formatValue(v.Index(i))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.Struct:
		items := make([]string, v.NumField())
		for i := range items {
			items[i] = fieldName(v.Type().Field(i)) + ": " + formatValue(v.Field(i))
		}
		return "{" + strings.Join(items, ", ") + "}"
	default:
		return fmt.Sprint(v.Interface())
	}
}

// jsonValue converts a decoded value into a tree that encoding/json renders
// in the usual Ethereum notation: integers wider than 64 bits as decimal
// strings and byte sequences as 0x prefixed hex.
// jsonValue 将解码后的值转换为 JSON 友好的结构。
func jsonValue(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Interface || (v.Kind() == reflect.Ptr && v.IsNil()) {
		if v.IsNil() {
			return nil
		}
		return jsonValue(v.Elem())
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return hexutil.Encode(bytesOf(v))
		}
		items := make([]interface{}, v.Len())
		for i := range items {
			items[i] = jsonValue(v.Index(i))
		}
		return items
	case reflect.Struct:
		fields := make(map[string]interface{}, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			fields[fieldName(v.Type().Field(i))] = jsonValue(v.Field(i))
		}
		return fields
	default:
		return v.Interface()
	}
}

func bytesOf(v reflect.Value) []byte {
	if v.Kind() == reflect.Slice {
		return v.Bytes()
	}
	out := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(out), v)
	return out
}

// fieldName prefers the ABI component name carried in the json tag.
func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok && tag != "" && tag != "-" {
		return strings.Split(tag, ",")[0]
	}
	return f.Name
}
