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

// abicodec is a command-line tool for encoding and decoding Ethereum contract
// ABI data.
// abicodec 是一个用于编码和解码以太坊合约 ABI 数据的命令行工具。
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sunyihoo/go-web3/cmd/utils"
	"github.com/sunyihoo/go-web3/internal/debug"
	"github.com/sunyihoo/go-web3/internal/flags"
	"github.com/sunyihoo/go-web3/internal/version"
	"github.com/urfave/cli/v2"
)

var app = newApp()

// newApp assembles the command line application. Commands are created fresh
// on every call so that each app wraps its own actions.
// newApp 组装命令行应用，每次调用都会创建新的命令。
func newApp() *cli.App {
	app := flags.NewApp("Ethereum contract ABI encoder and decoder")
	app.Flags = append([]cli.Flag{utils.ConfigFileFlag}, debug.Flags...)
	app.Commands = []*cli.Command{
		newEncodeCommand(),
		newDecodeCommand(),
		newSelectorCommand(),
		newSignatureCommand(),
		newEventCommand(),
		newRevertCommand(),
		newMethodsCommand(),
		newDumpConfigCommand(),
		newVersionCommand(),
	}
	app.Before = func(ctx *cli.Context) error {
		flags.MigrateGlobalFlags(ctx)
		cfg, err := loadBaseConfig(ctx)
		if err != nil {
			return err
		}
		return debug.Setup(ctx, &cfg.Log)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Action:    printVersion,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
		Description: `
The output of this command is supposed to be machine-readable.
`,
	}
}

// printVersion is the version command.
// printVersion 是 version 命令。
func printVersion(ctx *cli.Context) error {
	vsn, vcs := version.Info()
	w := ctx.App.Writer

	fmt.Fprintln(w, "Abicodec")
	fmt.Fprintln(w, "Version:", vsn)
	if vcs != "" {
		fmt.Fprintln(w, "Git Commit:", vcs)
	}
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
