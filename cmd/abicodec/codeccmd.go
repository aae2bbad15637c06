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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sunyihoo/go-web3/accounts/abi"
	"github.com/sunyihoo/go-web3/cmd/utils"
	"github.com/sunyihoo/go-web3/common/hexutil"
	"github.com/sunyihoo/go-web3/internal/flags"
	"github.com/sunyihoo/go-web3/log"
	"github.com/urfave/cli/v2"
)

var errNoTypes = errors.New("one of --types or --method is required")

func newEncodeCommand() *cli.Command {
	return &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "ABI encode a list of values",
		ArgsUsage: "<value> [<value> ...]",
		Flags: []cli.Flag{
			utils.TypesFlag,
			utils.MethodFlag,
			utils.ABIFlag,
			utils.CacheSizeFlag,
		},
		Description: `
The encode command packs the given values with the types listed in --types.
When --method is given instead, the values are packed as the inputs of that
method and the 4 byte selector is prepended. Scalars are written as is, lists
and tuples as JSON, e.g.

    abicodec encode --types "uint256,string,uint256[]" 5 dog "[1,2]"
    abicodec encode --method "transfer(address,uint256)" 0x00000000000000000000000000000000000000aa 1

Negative numbers look like flags, so put them after a "--" separator:

    abicodec encode --types "int8,int256" -- -1 -0x10`,
	}
}

func newDecodeCommand() *cli.Command {
	return &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Decode ABI encoded data",
		ArgsUsage: "<hexdata>",
		Flags: []cli.Flag{
			utils.TypesFlag,
			utils.MethodFlag,
			utils.ABIFlag,
			utils.InputsFlag,
			utils.OutputFlag,
			utils.CacheSizeFlag,
		},
		Description: `
The decode command unpacks data encoded with the types listed in --types, or
the outputs of the method given by --method. With --inputs the data is read as
calldata of the method; if --method is omitted the method is looked up in
--abi by the selector.`,
	}
}

func newSelectorCommand() *cli.Command {
	return &cli.Command{
		Action:    selector,
		Name:      "selector",
		Usage:     "Compute the 4 byte selector of a function signature",
		ArgsUsage: "<signature>",
		Description: `
The selector command prints the selector and the canonical form of a signature
such as "transfer(address,uint)".`,
	}
}

// encode is the encode command.
// encode 是 encode 命令。
func encode(ctx *cli.Context) error {
	if err := flags.CheckExclusive(ctx, utils.TypesFlag, utils.MethodFlag); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	var (
		literals = ctx.Args().Slice()
		packed   []byte
	)
	switch {
	case ctx.IsSet(utils.MethodFlag.Name):
		method, err := resolveMethod(ctx, &cfg.Codec)
		if err != nil {
			return err
		}
		values, err := parseArgs(argumentTypes(method.Inputs), literals)
		if err != nil {
			return err
		}
		input, err := method.Inputs.Pack(values...)
		if err != nil {
			return err
		}
		packed = append(bytes.Clone(method.ID), input...)
		log.Debug("Encoded method call", "method", method.Sig, "selector", hexutil.Encode(method.ID), "size", len(packed))

	case ctx.IsSet(utils.TypesFlag.Name):
		types, err := parseTypeList(ctx.String(utils.TypesFlag.Name), abi.NewTypeCache(cfg.Codec.CacheSize))
		if err != nil {
			return err
		}
		values, err := parseArgs(types, literals)
		if err != nil {
			return err
		}
		if packed, err = abi.Encode(types, values); err != nil {
			return err
		}
		log.Debug("Encoded values", "types", len(types), "size", len(packed))

	default:
		return errNoTypes
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(packed))
	return nil
}

// decode is the decode command.
// decode 是 decode 命令。
func decode(ctx *cli.Context) error {
	if err := flags.CheckExclusive(ctx, utils.TypesFlag, utils.MethodFlag); err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errors.New("decode expects exactly one hex argument")
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}
	var (
		dec    *abi.Decoded
		inputs = ctx.Bool(utils.InputsFlag.Name)
	)
	switch {
	case ctx.IsSet(utils.TypesFlag.Name):
		types, err := parseTypeList(ctx.String(utils.TypesFlag.Name), abi.NewTypeCache(cfg.Codec.CacheSize))
		if err != nil {
			return err
		}
		if dec, err = abi.Decode(types, data); err != nil {
			return err
		}

	case ctx.IsSet(utils.MethodFlag.Name):
		method, err := resolveMethod(ctx, &cfg.Codec)
		if err != nil {
			return err
		}
		if inputs {
			if len(data) >= 4 && bytes.Equal(data[:4], method.ID) {
				data = data[4:]
			}
			dec, err = method.Inputs.Decode(data)
		} else {
			if len(method.Outputs) == 0 && len(data) > 0 {
				return fmt.Errorf("method %s has no outputs, use --%s to decode calldata", method.Sig, utils.InputsFlag.Name)
			}
			dec, err = method.Outputs.Decode(data)
		}
		if err != nil {
			return err
		}

	case inputs && cfg.Codec.ABI != "":
		parsed, err := loadABI(cfg.Codec.ABI)
		if err != nil {
			return err
		}
		if len(data) < 4 {
			return fmt.Errorf("%w: calldata shorter than a selector", abi.ErrInvalidData)
		}
		method, err := parsed.MethodById(data[:4])
		if err != nil {
			return err
		}
		log.Debug("Resolved method by selector", "selector", hexutil.Encode(data[:4]), "method", method.Sig)
		if dec, err = method.Inputs.Decode(data[4:]); err != nil {
			return err
		}
		if cfg.Codec.Output == outputPlain {
			fmt.Fprintf(ctx.App.Writer, "method: %s\n", method.Sig)
		}

	default:
		return errNoTypes
	}
	return printDecoded(ctx.App.Writer, cfg.Codec.Output, dec)
}

// selector is the selector command.
func selector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("selector expects exactly one signature argument")
	}
	method, err := abi.NewMethodFromSelector(strings.ReplaceAll(ctx.Args().First(), " ", ""))
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%s %s\n", hexutil.Encode(method.ID), method.Sig)
	return nil
}

// resolveMethod looks up --method. Signatures are compiled directly, bare
// names are looked up in the contract ABI.
// resolveMethod 解析 --method：签名直接编译，方法名在合约 ABI 中查找。
func resolveMethod(ctx *cli.Context, cfg *codecConfig) (abi.Method, error) {
	name := strings.TrimSpace(ctx.String(utils.MethodFlag.Name))
	if strings.Contains(name, "(") {
		return abi.NewMethodFromSelector(strings.ReplaceAll(name, " ", ""))
	}
	if cfg.ABI == "" {
		return abi.Method{}, fmt.Errorf("method %q needs --%s, or pass a full signature", name, utils.ABIFlag.Name)
	}
	parsed, err := loadABI(cfg.ABI)
	if err != nil {
		return abi.Method{}, err
	}
	method, ok := parsed.Methods[name]
	if !ok {
		return abi.Method{}, fmt.Errorf("method %q not found in %s", name, cfg.ABI)
	}
	return method, nil
}

// loadABI reads a contract ABI JSON file.
// loadABI 读取合约 ABI JSON 文件。
func loadABI(path string) (abi.ABI, error) {
	f, err := os.Open(path)
	if err != nil {
		return abi.ABI{}, err
	}
	defer f.Close()

	parsed, err := abi.JSON(f)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("Loaded contract ABI", "file", path, "methods", len(parsed.Methods), "events", len(parsed.Events), "errors", len(parsed.Errors))
	return parsed, nil
}

// parseTypeList compiles a comma separated type list. Plain types go through
// the descriptor cache, lists holding tuples are parsed as a signature.
// parseTypeList 编译逗号分隔的类型列表，包含元组的列表按签名解析。
func parseTypeList(list string, cache *abi.TypeCache) ([]abi.Type, error) {
	list = strings.ReplaceAll(list, " ", "")
	if list == "" {
		return nil, nil
	}
	if strings.Contains(list, "(") {
		method, err := abi.NewMethodFromSelector("types(" + list + ")")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", abi.ErrInvalidType, err)
		}
		return argumentTypes(method.Inputs), nil
	}
	parts := strings.Split(list, ",")
	types := make([]abi.Type, len(parts))
	for i, part := range parts {
		typ, err := cache.Get(part)
		if err != nil {
			return nil, err
		}
		types[i] = typ
	}
	return types, nil
}

func argumentTypes(args abi.Arguments) []abi.Type {
	types := make([]abi.Type, len(args))
	for i, arg := range args {
		types[i] = arg.Type
	}
	return types
}
