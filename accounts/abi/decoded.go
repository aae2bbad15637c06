// Copyright 2024 The go-ethereum Authors
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

// Decoded is the result of decoding a parameter list. Values keep their
// declaration order and, where the parameter was named, can be looked up by
// name as well.
// Decoded 是解码参数列表的结果，既可按位置访问，也可按参数名访问。
type Decoded struct {
	names  []string
	values []interface{}
	byName map[string]int
}

func newDecoded(names []string, values []interface{}) *Decoded {
	d := &Decoded{names: names, values: values, byName: make(map[string]int, len(names))}
	for i, name := range names {
		if name == "" {
			continue
		}
		if _, dup := d.byName[name]; !dup {
			d.byName[name] = i
		}
	}
	return d
}

// Len returns the number of decoded values.
// Len 返回解码值的个数。
func (d *Decoded) Len() int { return len(d.values) }

// Index returns the i'th value. It panics if i is out of range.
// Index 返回第 i 个值，越界时 panic。
func (d *Decoded) Index(i int) interface{} { return d.values[i] }

// Field returns the value of the named parameter.
// Field 返回指定名称参数的值。
func (d *Decoded) Field(name string) (interface{}, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return d.values[i], true
}

// Name returns the parameter name of the i'th value, empty if unnamed.
// Name 返回第 i 个值对应的参数名，未命名时为空。
func (d *Decoded) Name(i int) string { return d.names[i] }

// Values returns the decoded values in declaration order.
// Values 按声明顺序返回所有解码值。
func (d *Decoded) Values() []interface{} { return d.values }

// Map returns the named values keyed by parameter name.
// Map 返回以参数名为键的值映射，未命名的参数被忽略。
func (d *Decoded) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(d.byName))
	for name, i := range d.byName {
		m[name] = d.values[i]
	}
	return m
}
