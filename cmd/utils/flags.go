// Copyright 2015 The go-ethereum Authors
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

// Package utils contains internal helper functions for the command line tools.
// utils 包包含命令行工具的内部辅助函数。
package utils

import (
	"github.com/sunyihoo/go-web3/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// General settings
	ConfigFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	// Codec settings
	TypesFlag = &cli.StringFlag{
		Name:     "types",
		Usage:    `Comma separated ABI type list, e.g. "uint256,string,(address,bool)[]"`,
		Category: flags.CodecCategory,
	}
	OutputFlag = &cli.StringFlag{
		Name:     "output",
		Usage:    "Format of decoded values (plain|json|dump)",
		Value:    "plain",
		Category: flags.CodecCategory,
	}
	InputsFlag = &cli.BoolFlag{
		Name:     "inputs",
		Usage:    "Decode the data as method call inputs (selector prefixed calldata)",
		Category: flags.CodecCategory,
	}
	CacheSizeFlag = &cli.IntFlag{
		Name:     "cache",
		Usage:    "Number of compiled type descriptors kept in memory",
		Value:    512,
		Category: flags.CodecCategory,
	}

	// Contract settings
	ABIFlag = &flags.PathFlag{
		Name:     "abi",
		Usage:    "Path to the contract ABI JSON file",
		Category: flags.ContractCategory,
	}
	MethodFlag = &cli.StringFlag{
		Name:     "method",
		Usage:    "Method name from --abi, or a signature such as transfer(address,uint256)",
		Category: flags.ContractCategory,
	}
	EventFlag = &cli.StringFlag{
		Name:     "name",
		Usage:    "Event name, required for anonymous events",
		Category: flags.ContractCategory,
	}
	TopicsFlag = &cli.StringSliceFlag{
		Name:     "topics",
		Usage:    "Log topics as 32 byte hex strings",
		Category: flags.ContractCategory,
	}
	DataFlag = &cli.StringFlag{
		Name:     "data",
		Usage:    "Hex encoded log data",
		Value:    "0x",
		Category: flags.ContractCategory,
	}
)
