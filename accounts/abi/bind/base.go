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

package bind

import (
	"context"
	"fmt"
	"math/big"

	"github.com/sunyihoo/go-web3/accounts/abi"
	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/common/hexutil"
	"github.com/sunyihoo/go-web3/log"
)

var (
	errNoEventSignature       = fmt.Errorf("%w: no event signature", abi.ErrInvalidData)
	errEventSignatureMismatch = fmt.Errorf("%w: event signature mismatch", abi.ErrInvalidData)
)

// CallOpts is the collection of options to fine tune a contract call request.
// CallOpts 是用于微调合约调用请求的选项集合。
type CallOpts struct {
	Pending     bool            // Whether to operate on the pending state or the last known one
	From        common.Address  // Optional the sender address, otherwise the first account is used
	BlockNumber *big.Int        // Optional the block number on which the call should be performed
	Context     context.Context // Network context to support cancellation and timeouts (nil = no timeout)
}

// Log is a contract log entry as delivered by a node: the emitting address,
// the topics and the non-indexed data.
// Log 是节点返回的合约日志：发出地址、主题和非索引数据。
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// RevertError is returned by Call when the contract execution reverted with
// a decodable reason.
// RevertError 在合约执行 revert 且原因可解码时由 Call 返回。
type RevertError struct {
	Reason string // decoded revert reason or custom error signature
	Data   []byte // raw revert payload
}

func (e *RevertError) Error() string {
	return "execution reverted: " + e.Reason
}

// BoundContract is the base wrapper object that reflects a contract on the
// Ethereum network. It contains a collection of methods that are used by the
// higher level contract bindings to operate.
// BoundContract 是反映以太坊网络上合约的基础包装对象。
type BoundContract struct {
	address common.Address // Deployment address of the contract on the Ethereum blockchain
	abi     abi.ABI        // Reflect based ABI to access the correct Ethereum methods
	caller  ContractCaller // Read interface to interact with the blockchain
}

// NewBoundContract creates a low level contract interface through which calls
// can be made.
// NewBoundContract 创建一个可以进行调用的低级合约接口。
func NewBoundContract(address common.Address, abi abi.ABI, caller ContractCaller) *BoundContract {
	return &BoundContract{
		address: address,
		abi:     abi,
		caller:  caller,
	}
}

// Address returns the deployment address of the contract.
func (c *BoundContract) Address() common.Address {
	return c.address
}

// Call invokes the (constant) contract method with params as input values and
// sets the output to result. The result type might be a single field for simple
// returns, a slice of interfaces for anonymous returns and a struct for named
// returns.
// Call 使用 params 作为输入调用（常量）合约方法，并将输出设置到 results。
func (c *BoundContract) Call(opts *CallOpts, results *[]interface{}, method string, params ...interface{}) error {
	if results == nil {
		results = new([]interface{})
	}
	// Don't crash on a lazy user
	if opts == nil {
		opts = new(CallOpts)
	}
	// Pack the input, call and unpack the results
	input, err := c.abi.Pack(method, params...)
	if err != nil {
		return err
	}
	var (
		msg    = CallMsg{From: opts.From, To: &c.address, Data: input}
		ctx    = ensureContext(opts.Context)
		code   []byte
		output []byte
	)
	log.Debug("Calling contract", "address", c.address, "method", method, "input", len(input), "pending", opts.Pending)
	if opts.Pending {
		pb, ok := c.caller.(PendingContractCaller)
		if !ok {
			return ErrNoPendingState
		}
		output, err = pb.PendingCallContract(ctx, msg)
		if err != nil {
			return c.revertError(err)
		}
		if len(output) == 0 {
			// Make sure we have a contract to operate on, and bail out otherwise.
			if code, err = pb.PendingCodeAt(ctx, c.address); err != nil {
				return err
			} else if len(code) == 0 {
				return ErrNoCode
			}
		}
	} else {
		output, err = c.caller.CallContract(ctx, msg, opts.BlockNumber)
		if err != nil {
			return c.revertError(err)
		}
		if len(output) == 0 {
			// Make sure we have a contract to operate on, and bail out otherwise.
			if code, err = c.caller.CodeAt(ctx, c.address, opts.BlockNumber); err != nil {
				return err
			} else if len(code) == 0 {
				return ErrNoCode
			}
		}
	}
	log.Trace("Contract call returned", "address", c.address, "method", method, "output", len(output))

	if len(*results) == 0 {
		res, err := c.abi.Unpack(method, output)
		*results = res
		return err
	}
	res := *results
	return c.abi.UnpackIntoInterface(res[0], method, output)
}

// revertError converts a call error carrying revert data into a RevertError.
// Errors without decodable data are returned unchanged.
// revertError 将携带 revert 数据的调用错误转换为 RevertError，无法解码的错误原样返回。
func (c *BoundContract) revertError(err error) error {
	de, ok := err.(DataError)
	if !ok {
		return err
	}
	var data []byte
	switch v := de.ErrorData().(type) {
	case []byte:
		data = v
	case string:
		decoded, derr := hexutil.Decode(v)
		if derr != nil {
			return err
		}
		data = decoded
	default:
		return err
	}
	if reason, uerr := abi.UnpackRevert(data); uerr == nil {
		return &RevertError{Reason: reason, Data: data}
	}
	if len(data) >= 4 {
		var id [4]byte
		copy(id[:], data[:4])
		if custom, ferr := c.abi.ErrorByID(id); ferr == nil {
			if values, uerr := custom.Unpack(data); uerr == nil {
				return &RevertError{Reason: fmt.Sprintf("%s%v", custom.Name, values), Data: data}
			}
		}
	}
	log.Debug("Undecodable revert data", "address", c.address, "data", hexutil.Encode(data))
	return err
}

// UnpackLog unpacks a retrieved log into the provided output structure.
// UnpackLog 将检索到的日志解包到提供的输出结构中。
func (c *BoundContract) UnpackLog(out interface{}, event string, log Log) error {
	// Anonymous events are not supported.
	if len(log.Topics) == 0 {
		return errNoEventSignature
	}
	if log.Topics[0] != c.abi.Events[event].ID {
		return errEventSignatureMismatch
	}
	if len(log.Data) > 0 {
		if err := c.abi.UnpackIntoInterface(out, event, log.Data); err != nil {
			return err
		}
	}
	return abi.ParseTopics(out, c.abi.Events[event].Inputs.Indexed(), log.Topics[1:])
}

// UnpackLogIntoMap unpacks a retrieved log into the provided map.
// UnpackLogIntoMap 将检索到的日志解包到提供的映射中。
func (c *BoundContract) UnpackLogIntoMap(out map[string]interface{}, event string, log Log) error {
	// Anonymous events are not supported.
	if len(log.Topics) == 0 {
		return errNoEventSignature
	}
	if log.Topics[0] != c.abi.Events[event].ID {
		return errEventSignatureMismatch
	}
	if len(log.Data) > 0 {
		if err := c.abi.UnpackIntoMap(out, event, log.Data); err != nil {
			return err
		}
	}
	return abi.ParseTopicsIntoMap(out, c.abi.Events[event].Inputs.Indexed(), log.Topics[1:])
}

// DecodeLog looks up the event by the first topic of the log and decodes all
// of its parameters in declaration order.
// DecodeLog 根据日志的第一个主题查找事件，并按声明顺序解码所有参数。
func (c *BoundContract) DecodeLog(log Log) (*abi.Event, *abi.Decoded, error) {
	if len(log.Topics) == 0 {
		return nil, nil, errNoEventSignature
	}
	event, err := c.abi.EventByID(log.Topics[0])
	if err != nil {
		return nil, nil, err
	}
	decoded, err := event.DecodeLog(log.Topics, log.Data)
	if err != nil {
		return nil, nil, err
	}
	return event, decoded, nil
}

// ensureContext is a helper method to ensure a context is not nil, even if the
// user specified it as such.
func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
