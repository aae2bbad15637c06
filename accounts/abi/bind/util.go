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

package bind

import (
	"context"
	"time"

	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/log"
)

// pollInterval is the delay between two code queries of WaitDeployed.
var pollInterval = time.Second

// WaitDeployed waits until contract code shows up at address and returns it.
// It stops waiting when the context is canceled, returning ErrNoCodeAfterDeploy
// if the last query succeeded but found no code.
// WaitDeployed 等待合约代码出现在指定地址并返回代码，上下文取消时停止等待。
func WaitDeployed(ctx context.Context, b ContractCaller, address common.Address) ([]byte, error) {
	queryTicker := time.NewTicker(pollInterval)
	defer queryTicker.Stop()

	logger := log.New("address", address)
	var lastErr error
	for {
		code, err := b.CodeAt(ctx, address, nil)
		if err == nil && len(code) > 0 {
			return code, nil
		}
		lastErr = err
		if err != nil {
			logger.Trace("Code retrieval failed", "err", err)
		} else {
			logger.Trace("Contract not yet deployed")
		}

		// Wait for the next round.
		// 等待下一轮查询。
		select {
		case <-ctx.Done():
			if lastErr == nil {
				return nil, ErrNoCodeAfterDeploy
			}
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
