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

package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sunyihoo/go-web3/internal/flags"
	"github.com/sunyihoo/go-web3/log"
	"github.com/urfave/cli/v2"
)

var (
	VerbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:    2,
		Category: flags.LoggingCategory,
	}
	LogFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Category: flags.LoggingCategory,
	}
	logFileFlag = &cli.StringFlag{
		Name:     "log.file",
		Usage:    "Write logs to a file",
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for debugging.
var Flags = []cli.Flag{
	VerbosityFlag,
	LogFormatFlag,
	logFileFlag,
}

var logOutputFile io.WriteCloser

// Config is the logging section of the TOML config file. Command line flags
// take precedence over it.
// Config 是 TOML 配置文件中的日志部分，命令行标志优先。
type Config struct {
	Verbosity int
	Format    string
}

// Setup initializes logging based on the CLI flags and the optional config
// section. It should be called as early as possible in the program.
// Setup 根据 CLI 标志和可选的配置初始化日志记录，应尽可能早地调用。
func Setup(ctx *cli.Context, cfg *Config) error {
	var (
		terminalOutput = io.Writer(os.Stderr)
		output         io.Writer
		logFmt         = ctx.String(LogFormatFlag.Name)
		verbosity      = ctx.Int(VerbosityFlag.Name)
		logFile        = ctx.String(logFileFlag.Name)
	)
	if cfg != nil {
		if !ctx.IsSet(LogFormatFlag.Name) && cfg.Format != "" {
			logFmt = cfg.Format
		}
		if !ctx.IsSet(VerbosityFlag.Name) && cfg.Verbosity != 0 {
			verbosity = cfg.Verbosity
		}
	}
	if logFile != "" {
		var err error
		if logOutputFile, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err != nil {
			return fmt.Errorf("failed to initialize file logger: %v", err)
		}
		output = io.MultiWriter(logOutputFile, terminalOutput)
	} else {
		output = terminalOutput
	}

	handler, err := newHandler(output, logFmt, log.FromLegacyLevel(verbosity))
	if err != nil {
		return err
	}
	log.SetDefault(log.NewLogger(handler))
	log.Debug("Logging configured", "format", logFmt, "verbosity", verbosity, "file", logFile)
	return nil
}

// newHandler builds the slog handler of the given format. The terminal format
// is colored when stderr is a terminal.
// newHandler 构建指定格式的 slog 处理器，stderr 为终端时终端格式带颜色。
func newHandler(output io.Writer, format string, level slog.Level) (slog.Handler, error) {
	switch format {
	case "json":
		return log.JSONHandlerWithLevel(output, level), nil
	case "logfmt":
		return log.LogfmtHandlerWithLevel(output, level), nil
	case "", "terminal":
		useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		if useColor && logOutputFile == nil {
			output = colorable.NewColorableStderr()
		}
		return log.NewTerminalHandlerWithLevel(output, level, useColor && logOutputFile == nil), nil
	default:
		// Unknown log format specified
		return nil, fmt.Errorf("unknown log format: %v", format)
	}
}

// Exit closes the log file, if any.
// Exit 关闭日志文件（如果有）。
func Exit() {
	if logOutputFile != nil {
		logOutputFile.Close()
		logOutputFile = nil
	}
}
