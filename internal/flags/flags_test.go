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

package flags

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestPathExpansion(t *testing.T) {
	home := HomeDir()
	t.Setenv("ABI_DIR", "/tmp/abis")
	tests := map[string]string{
		"/home/someuser/tmp": "/home/someuser/tmp",
		"~/tmp":              home + "/tmp",
		"~thisOtherUser/b/":  "~thisOtherUser/b",
		"$ABI_DIR/token":     "/tmp/abis/token",
		"/a/b/../c":          "/a/c",
		"":                   "",
	}
	for test, expected := range tests {
		require.Equal(t, expected, expandPath(test), test)
	}
}

func TestPathFlag(t *testing.T) {
	f := &PathFlag{Name: "abi", Aliases: []string{"a"}, Category: ContractCategory}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	require.NoError(t, set.Parse([]string{"--abi", "/x/./y.json"}))
	require.Equal(t, "/x/y.json", f.GetValue())
	require.Equal(t, []string{"abi", "a"}, f.Names())
	require.Equal(t, ContractCategory, f.GetCategory())
}

func TestCheckExclusive(t *testing.T) {
	run := func(args ...string) error {
		a := &cli.StringFlag{Name: "types"}
		b := &cli.StringFlag{Name: "method"}
		app := NewApp("test")
		app.Flags = []cli.Flag{a, b}
		app.Writer, app.ErrWriter = io.Discard, io.Discard

		var err error
		app.Action = func(ctx *cli.Context) error {
			err = CheckExclusive(ctx, a, b)
			return nil
		}
		require.NoError(t, app.Run(append([]string{"test"}, args...)))
		return err
	}
	require.NoError(t, run("--types", "uint256"))
	require.NoError(t, run())
	require.Error(t, run("--types", "uint256", "--method", "f()"))
}
