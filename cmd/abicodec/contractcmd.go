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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/sunyihoo/go-web3/accounts/abi"
	"github.com/sunyihoo/go-web3/accounts/abi/bind"
	"github.com/sunyihoo/go-web3/cmd/utils"
	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/common/hexutil"
	"github.com/sunyihoo/go-web3/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

func newSignatureCommand() *cli.Command {
	return &cli.Command{
		Action: signature,
		Name:   "signature",
		Usage:  "Print the signature and identifier of a contract member",
		Flags: []cli.Flag{
			utils.ABIFlag,
			utils.MethodFlag,
			utils.EventFlag,
		},
		Description: `
The signature command prints the canonical signature of the method or custom
error named by --method, or of the event named by --name, together with its
selector or topic.`,
	}
}

func newEventCommand() *cli.Command {
	return &cli.Command{
		Action: event,
		Name:   "event",
		Usage:  "Decode a contract event log",
		Flags: []cli.Flag{
			utils.ABIFlag,
			utils.EventFlag,
			utils.TopicsFlag,
			utils.DataFlag,
			utils.OutputFlag,
		},
		Description: `
The event command decodes a log given by its topics and data. The event is
identified by the first topic unless --name is given, which is required for
anonymous events. Indexed dynamic values are shown as their topic hash.`,
	}
}

func newRevertCommand() *cli.Command {
	return &cli.Command{
		Action:    revert,
		Name:      "revert",
		Usage:     "Decode the revert data of a failed call",
		ArgsUsage: "<hexdata>",
		Flags: []cli.Flag{
			utils.ABIFlag,
		},
		Description: `
The revert command decodes Error(string) and Panic(uint256) revert data. Custom
errors are resolved with --abi.`,
	}
}

func newMethodsCommand() *cli.Command {
	return &cli.Command{
		Action: methods,
		Name:   "methods",
		Usage:  "List the methods, events and errors of a contract ABI",
		Flags: []cli.Flag{
			utils.ABIFlag,
		},
	}
}

// contractABI loads the ABI given by --abi or the config file.
func contractABI(ctx *cli.Context) (abi.ABI, codecConfig, error) {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return abi.ABI{}, cfg.Codec, err
	}
	if cfg.Codec.ABI == "" {
		return abi.ABI{}, cfg.Codec, fmt.Errorf("missing contract ABI, use --%s", utils.ABIFlag.Name)
	}
	parsed, err := loadABI(cfg.Codec.ABI)
	return parsed, cfg.Codec, err
}

// signature is the signature command.
// signature 是 signature 命令。
func signature(ctx *cli.Context) error {
	parsed, _, err := contractABI(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	switch {
	case ctx.IsSet(utils.MethodFlag.Name):
		name := ctx.String(utils.MethodFlag.Name)
		if method, ok := parsed.Methods[name]; ok {
			fmt.Fprintf(w, "%s %s\n", hexutil.Encode(method.ID), method.Sig)
			return nil
		}
		if e, ok := parsed.Errors[name]; ok {
			fmt.Fprintf(w, "%s %s\n", hexutil.Encode(e.ID[:4]), e.Sig)
			return nil
		}
		return fmt.Errorf("method %q not found", name)

	case ctx.IsSet(utils.EventFlag.Name):
		name := ctx.String(utils.EventFlag.Name)
		ev, ok := parsed.Events[name]
		if !ok {
			return fmt.Errorf("event %q not found", name)
		}
		fmt.Fprintf(w, "%s %s\n", ev.ID.Hex(), ev.Sig)
		return nil

	default:
		return fmt.Errorf("one of --%s or --%s is required", utils.MethodFlag.Name, utils.EventFlag.Name)
	}
}

// event is the event command.
// event 是 event 命令。
func event(ctx *cli.Context) error {
	parsed, cfg, err := contractABI(ctx)
	if err != nil {
		return err
	}
	entry := bind.Log{}
	for _, topic := range ctx.StringSlice(utils.TopicsFlag.Name) {
		b, err := hexutil.Decode(topic)
		if err != nil || len(b) != common.HashLength {
			return fmt.Errorf("invalid topic %q", topic)
		}
		entry.Topics = append(entry.Topics, common.BytesToHash(b))
	}
	if entry.Data, err = hexutil.Decode(ctx.String(utils.DataFlag.Name)); err != nil {
		return fmt.Errorf("invalid log data: %v", err)
	}

	var (
		ev  *abi.Event
		dec *abi.Decoded
	)
	if ctx.IsSet(utils.EventFlag.Name) {
		name := ctx.String(utils.EventFlag.Name)
		e, ok := parsed.Events[name]
		if !ok {
			return fmt.Errorf("event %q not found", name)
		}
		ev = &e
		if dec, err = e.DecodeLog(entry.Topics, entry.Data); err != nil {
			return err
		}
	} else {
		contract := bind.NewBoundContract(common.Address{}, parsed, nil)
		if ev, dec, err = contract.DecodeLog(entry); err != nil {
			return err
		}
	}
	log.Debug("Decoded event log", "event", ev.Sig, "topics", len(entry.Topics), "data", len(entry.Data))
	if cfg.Output == outputPlain {
		fmt.Fprintf(ctx.App.Writer, "event: %s\n", ev.Sig)
	}
	return printDecoded(ctx.App.Writer, cfg.Output, dec)
}

// revert is the revert command.
// revert 是 revert 命令。
func revert(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("revert expects exactly one hex argument")
	}
	data, err := hexutil.Decode(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}
	reason, err := abi.UnpackRevert(data)
	if err == nil {
		fmt.Fprintln(ctx.App.Writer, reason)
		return nil
	}
	if !ctx.IsSet(utils.ABIFlag.Name) || len(data) < 4 {
		return err
	}
	parsed, _, abiErr := contractABI(ctx)
	if abiErr != nil {
		return abiErr
	}
	custom, lookupErr := parsed.ErrorByID([4]byte(data[:4]))
	if lookupErr != nil {
		return err
	}
	values, err := custom.Unpack(data)
	if err != nil {
		return err
	}
	list, _ := values.([]interface{})
	items := make([]string, len(list))
	for i, v := range list {
		items[i] = formatValue(reflect.ValueOf(v))
	}
	fmt.Fprintf(ctx.App.Writer, "%s(%s)\n", custom.Name, strings.Join(items, ", "))
	return nil
}

// methods is the methods command.
// methods 是 methods 命令。
func methods(ctx *cli.Context) error {
	parsed, _, err := contractABI(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	for _, name := range sortedKeys(parsed.Methods) {
		m := parsed.Methods[name]
		fmt.Fprintf(w, "%s function %s\n", hexutil.Encode(m.ID), m.Sig)
	}
	for _, name := range sortedKeys(parsed.Events) {
		e := parsed.Events[name]
		fmt.Fprintf(w, "%s event %s\n", e.ID.Hex(), e.Sig)
	}
	for _, name := range sortedKeys(parsed.Errors) {
		e := parsed.Errors[name]
		fmt.Fprintf(w, "%s error %s\n", hexutil.Encode(e.ID[:4]), e.Sig)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
