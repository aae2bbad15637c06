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
	"errors"
	"math/big"

	"github.com/sunyihoo/go-web3/common"
)

var (
	// ErrNoCode is returned by call operations for which the requested
	// recipient contract to operate on does not exist in the state db or does not
	// have any code associated with it (i.e. self-destructed).
	// ErrNoCode 在目标合约不存在或没有关联代码（例如自毁）时返回。
	ErrNoCode = errors.New("no contract code at given address")

	// ErrNoPendingState is raised when attempting to perform a pending state action
	// on a backend that doesn't implement PendingContractCaller.
	// ErrNoPendingState 在后端不支持 PendingContractCaller 时返回。
	ErrNoPendingState = errors.New("backend does not support pending state")

	// ErrNoCodeAfterDeploy is returned by WaitDeployed if the polled address
	// still carries no code when the context expires.
	ErrNoCodeAfterDeploy = errors.New("no contract code after deployment")
)

// CallMsg contains parameters for contract calls.
// CallMsg 包含合约调用的参数。
type CallMsg struct {
	From     common.Address  // the sender of the 'transaction'
	To       *common.Address // the destination contract (nil for contract creation)
	Gas      uint64          // if 0, the call executes with near-infinite gas
	GasPrice *big.Int        // wei <-> gas exchange ratio
	Value    *big.Int        // amount of wei sent along with the call
	Data     []byte          // input data, usually an ABI-encoded contract method invocation
}

// ContractCaller defines the methods needed to allow operating with a contract on a read
// only basis. The transport is supplied by the user of this package.
// ContractCaller 定义了以只读方式与合约交互所需的方法，传输层由调用方提供。
type ContractCaller interface {
	// CodeAt returns the code of the given account. This is needed to differentiate
	// between contract internal errors and the local chain being out of sync.
	// CodeAt 返回给定账户的代码，用于区分合约内部错误和本地链不同步。
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)

	// CallContract executes an Ethereum contract call with the specified data as the
	// input.
	// CallContract 执行一个以太坊合约调用，指定数据作为输入。
	CallContract(ctx context.Context, call CallMsg, blockNumber *big.Int) ([]byte, error)
}

// PendingContractCaller defines methods to perform contract calls on the pending state.
// Call will try to discover this interface when access to the pending state is requested.
// If the backend does not support the pending state, Call returns ErrNoPendingState.
// PendingContractCaller 定义了在待处理状态下执行合约调用的方法。
type PendingContractCaller interface {
	// PendingCodeAt returns the code of the given account in the pending state.
	PendingCodeAt(ctx context.Context, contract common.Address) ([]byte, error)

	// PendingCallContract executes an Ethereum contract call against the pending state.
	PendingCallContract(ctx context.Context, call CallMsg) ([]byte, error)
}

// DataError is implemented by call errors that carry the revert payload of
// the failed execution, e.g. JSON-RPC errors with a data field.
// DataError 由携带 revert 数据的调用错误实现。
type DataError interface {
	Error() string
	ErrorData() interface{}
}
