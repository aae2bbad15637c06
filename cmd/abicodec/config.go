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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/sunyihoo/go-web3/cmd/utils"
	"github.com/sunyihoo/go-web3/internal/debug"
	"github.com/urfave/cli/v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
// 这些设置确保 TOML 键使用与 Go 结构体字段相同的名称。
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// codecConfig holds the defaults of the codec commands.
// codecConfig 保存编解码命令的默认值。
type codecConfig struct {
	ABI       string `toml:",omitempty"` // Contract ABI used when --abi is not given
	Output    string // Format of decoded values
	CacheSize int    // Capacity of the type descriptor cache
}

type abicodecConfig struct {
	Log   debug.Config
	Codec codecConfig
}

func defaultConfig() abicodecConfig {
	return abicodecConfig{
		Log: debug.Config{
			Verbosity: 2,
			Format:    "terminal",
		},
		Codec: codecConfig{
			Output:    utils.OutputFlag.Value,
			CacheSize: utils.CacheSizeFlag.Value,
		},
	}
}

func loadConfig(file string, cfg *abicodecConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the abicodecConfig based on the given command line
// parameters and config file.
// loadBaseConfig 根据命令行参数和配置文件加载配置。
func loadBaseConfig(ctx *cli.Context) (abicodecConfig, error) {
	// Load defaults
	cfg := defaultConfig()

	// Load config file.
	if ctx.IsSet(utils.ConfigFileFlag.Name) {
		if file := ctx.String(utils.ConfigFileFlag.Name); file != "" {
			if err := loadConfig(file, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	// Apply flags.
	setCodecConfig(ctx, &cfg.Codec)
	return cfg, nil
}

// setCodecConfig applies codec related command line flags to the config.
func setCodecConfig(ctx *cli.Context, cfg *codecConfig) {
	if ctx.IsSet(utils.ABIFlag.Name) {
		cfg.ABI = ctx.String(utils.ABIFlag.Name)
	}
	if ctx.IsSet(utils.OutputFlag.Name) {
		cfg.Output = ctx.String(utils.OutputFlag.Name)
	}
	if ctx.IsSet(utils.CacheSizeFlag.Name) {
		cfg.CacheSize = ctx.Int(utils.CacheSizeFlag.Name)
	}
}

func newDumpConfigCommand() *cli.Command {
	return &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       []cli.Flag{utils.ABIFlag, utils.OutputFlag, utils.CacheSizeFlag},
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}
}

// dumpConfig is the dumpconfig command.
// dumpConfig 是 dumpconfig 命令。
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	dump.Write(out)
	return nil
}
