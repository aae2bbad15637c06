// Copyright 2016 The go-ethereum Authors
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
	"strings"

	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/crypto"
)

// Event is an event potentially triggered by the EVM's LOG mechanism. The Event
// holds type information (inputs) about the yielded output. Anonymous events
// don't get the signature canonical representation as the first LOG topic.
// Event 是由 EVM 的 LOG 机制触发的事件。匿名事件不会把签名哈希作为第一个主题。
type Event struct {
	// Name is the event name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of event overloading.
	// Name 是内部使用的事件名，重载时会追加数字后缀。
	Name string

	// RawName is the raw event name parsed from ABI.
	RawName   string
	Anonymous bool
	Inputs    Arguments
	str       string

	// Sig contains the string signature according to the ABI spec.
	// e.g.	 event foo(uint32 a, int b) = "foo(uint32,int256)"
	Sig string

	// ID returns the canonical representation of the event's signature used by the
	// abi definition to identify event names and types.
	// ID 是事件签名的 Keccak256 哈希，即非匿名事件的第一个主题。
	ID common.Hash
}

// NewEvent creates a new Event.
// It sanitizes the input arguments to remove unnamed arguments.
// It also precomputes the id, signature and string representation
// of the event.
// NewEvent 创建一个新的 Event，为未命名参数补全名称，并预先计算 ID、签名和字符串表示。
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	names := make([]string, len(inputs))
	types := make([]string, len(inputs))
	for i, input := range inputs {
		if input.Name == "" {
			inputs[i] = Argument{
				Name:    fmt.Sprintf("arg%d", i),
				Indexed: input.Indexed,
				Type:    input.Type,
			}
		} else {
			inputs[i] = input
		}
		names[i] = fmt.Sprintf("%v %v", input.Type, inputs[i].Name)
		if input.Indexed {
			names[i] = fmt.Sprintf("%v indexed %v", input.Type, inputs[i].Name)
		}
		types[i] = input.Type.String()
	}

	str := fmt.Sprintf("event %v(%v)", rawName, strings.Join(names, ", "))
	sig := fmt.Sprintf("%v(%v)", rawName, strings.Join(types, ","))
	id := crypto.Keccak256Hash([]byte(sig))

	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       str,
		Sig:       sig,
		ID:        id,
	}
}

// String returns the string representation of the event.
// String 返回事件的字符串表示。
func (e Event) String() string {
	return e.str
}

// DecodeLog decodes a log emitted by the event. Indexed parameters are read
// from topics, one word each, and the rest from data. Values are returned in
// declaration order; dynamic indexed parameters come back as their topic hash.
// DecodeLog 解码事件产生的日志：索引参数从主题中读取，其余参数从 data 中解码，结果按声明顺序合并。
func (e Event) DecodeLog(topics []common.Hash, data []byte) (*Decoded, error) {
	if !e.Anonymous {
		if len(topics) == 0 {
			return nil, invalidDataErr("log of event %s has no topics", e.Name)
		}
		if topics[0] != e.ID {
			return nil, invalidDataErr("topic %s does not match event %s", topics[0].Hex(), e.Sig)
		}
		topics = topics[1:]
	}
	indexed := e.Inputs.Indexed()
	if len(indexed) != len(topics) {
		return nil, invalidDataErr("event %s expects %d indexed topics, got %d", e.Name, len(indexed), len(topics))
	}
	topicValues := make([]interface{}, 0, len(indexed))
	err := parseTopicWithSetter(indexed, topics, func(_ Argument, reconstr interface{}) error {
		topicValues = append(topicValues, reconstr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	dataValues, err := e.Inputs.Unpack(data)
	if err != nil {
		return nil, err
	}

	var (
		names  = make([]string, len(e.Inputs))
		values = make([]interface{}, len(e.Inputs))
	)
	for i, arg := range e.Inputs {
		names[i] = arg.Name
		if arg.Indexed {
			values[i], topicValues = topicValues[0], topicValues[1:]
		} else {
			values[i], dataValues = dataValues[0], dataValues[1:]
		}
	}
	return newDecoded(names, values), nil
}
