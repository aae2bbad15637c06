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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/accounts/abi"
	"github.com/sunyihoo/go-web3/common/hexutil"
	"github.com/sunyihoo/go-web3/crypto"
	"github.com/urfave/cli/v2"
)

const tokenABI = `[
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"balance","type":"uint256"}],"stateMutability":"view"},
	{"type":"error","name":"InsufficientBalance","inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]},
	{"type":"event","name":"Transfer","inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}]},
	{"type":"event","name":"Ping","anonymous":true,"inputs":[{"name":"seq","type":"uint64","indexed":false}]}
]`

const (
	addrA = "0x00000000000000000000000000000000000000aa"
	addrB = "0x00000000000000000000000000000000000000bb"
)

// word renders n as a 32 byte big-endian hex word without prefix.
func word(n int) string {
	return fmt.Sprintf("%064x", n)
}

// rword right pads the hex payload to a word.
func rword(payload string) string {
	return payload + strings.Repeat("0", 64-len(payload))
}

// runApp runs the command line application in-process and returns what was
// written to standard output.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"abicodec"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--types", "uint256", "5"}, word(5)},
		{[]string{"--types", "string", "dog"}, word(0x20) + word(3) + rword("646f67")},
		{[]string{"--types", "uint256[]", "[1,2]"}, word(0x20) + word(2) + word(1) + word(2)},
		{[]string{"--types", "uint256, bool", "0x10", "true"}, word(16) + word(1)},
		{[]string{"--types", "int8", "--", "-1"}, strings.Repeat("f", 64)},
		{[]string{"--types", "int8,int256", "--", "-1", "-0x10"}, strings.Repeat("f", 64) + strings.Repeat("f", 63) + "0"},
		{[]string{"--types", "int8[]", "[-1,2]"}, word(0x20) + word(2) + strings.Repeat("f", 64) + word(2)},
		{[]string{"--types", "bytes2", "0xabcd"}, rword("abcd")},
		{[]string{"--types", "address[2]", fmt.Sprintf("[%q,%q]", addrA, addrB)}, word(0xaa) + word(0xbb)},
		{[]string{"--types", "(uint256,string)", `[5,"dog"]`}, word(0x20) + word(5) + word(0x40) + word(3) + rword("646f67")},
		{[]string{"--types", "(uint256,string)", `{"name0":5,"name1":"dog"}`}, word(0x20) + word(5) + word(0x40) + word(3) + rword("646f67")},
		{[]string{"--method", "transfer(address,uint)", addrA, "1"}, "a9059cbb" + word(0xaa) + word(1)},
	}
	for i, tt := range tests {
		out, err := runApp(t, append([]string{"encode"}, tt.args...)...)
		require.NoError(t, err, "test %d", i)
		require.Equal(t, "0x"+tt.want+"\n", out, "test %d", i)
	}
}

func TestEncodeCommandErrors(t *testing.T) {
	_, err := runApp(t, "encode", "--types", "uint8", "256")
	require.ErrorIs(t, err, abi.ErrEncodingOverflow)

	_, err = runApp(t, "encode", "--types", "uint9999999", "1")
	require.ErrorIs(t, err, abi.ErrInvalidType)

	_, err = runApp(t, "encode", "--types", "uint256,uint256", "1")
	require.ErrorIs(t, err, abi.ErrParameterCount)

	_, err = runApp(t, "encode", "--types", "bool", "maybe")
	require.Error(t, err)

	_, err = runApp(t, "encode", "1")
	require.ErrorIs(t, err, errNoTypes)

	_, err = runApp(t, "encode", "--types", "uint256", "--method", "f(uint256)", "1")
	require.ErrorContains(t, err, "can't be used at the same time")

	_, err = runApp(t, "encode", "--method", "transfer", addrA, "1")
	require.ErrorContains(t, err, "needs --abi")
}

func TestEncodeWithABI(t *testing.T) {
	path := writeFile(t, "token.json", tokenABI)

	out, err := runApp(t, "encode", "--abi", path, "--method", "transfer", addrB, "0x64")
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb"+word(0xbb)+word(100)+"\n", out)

	_, err = runApp(t, "encode", "--abi", path, "--method", "mint", "1")
	require.ErrorContains(t, err, `method "mint" not found`)
}

func TestDecodeCommand(t *testing.T) {
	data := "0x" + word(5) + word(0x40) + word(3) + rword("646f67")

	out, err := runApp(t, "decode", "--types", "uint256,string", data)
	require.NoError(t, err)
	require.Equal(t, "0: 5\n1: dog\n", out)

	out, err = runApp(t, "decode", "--types", "uint256,string", "--output", "json", data)
	require.NoError(t, err)
	var entries []namedValue
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Equal(t, []namedValue{{Name: "0", Value: "5"}, {Name: "1", Value: "dog"}}, entries)

	out, err = runApp(t, "decode", "--types", "uint256,string", "--output", "dump", data)
	require.NoError(t, err)
	require.Contains(t, out, `(string) (len=3) "dog"`)

	out, err = runApp(t, "decode", "--types", "(address,bytes2)[]", "0x"+word(0x20)+word(1)+word(0xaa)+rword("abcd"))
	require.NoError(t, err)
	require.Equal(t, "0: [{name0: "+addrA+", name1: 0xabcd}]\n", out)
}

func TestDecodeCommandErrors(t *testing.T) {
	_, err := runApp(t, "decode", "--types", "uint256,uint256", "0x"+word(1))
	require.ErrorIs(t, err, abi.ErrInvalidData)

	_, err = runApp(t, "decode", "--types", "uint256", "--output", "yaml", "0x"+word(1))
	require.ErrorContains(t, err, "unknown output format")

	_, err = runApp(t, "decode", "--types", "uint256", "zz")
	require.ErrorContains(t, err, "invalid hex data")

	_, err = runApp(t, "decode", "0x"+word(1))
	require.ErrorIs(t, err, errNoTypes)
}

func TestDecodeMethod(t *testing.T) {
	path := writeFile(t, "token.json", tokenABI)
	calldata := "0xa9059cbb" + word(0xbb) + word(100)

	out, err := runApp(t, "decode", "--abi", path, "--method", "transfer", "--inputs", calldata)
	require.NoError(t, err)
	require.Equal(t, "to: "+addrB+"\namount: 100\n", out)

	out, err = runApp(t, "decode", "--abi", path, "--inputs", calldata)
	require.NoError(t, err)
	require.Equal(t, "method: transfer(address,uint256)\nto: "+addrB+"\namount: 100\n", out)

	out, err = runApp(t, "decode", "--abi", path, "--method", "balanceOf", "0x"+word(7))
	require.NoError(t, err)
	require.Equal(t, "balance: 7\n", out)

	out, err = runApp(t, "decode", "--method", "transfer(address,uint256)", "--inputs", calldata)
	require.NoError(t, err)
	require.Equal(t, "name0: "+addrB+"\nname1: 100\n", out)

	_, err = runApp(t, "decode", "--method", "transfer(address,uint256)", calldata)
	require.ErrorContains(t, err, "has no outputs")
}

func TestSelectorCommand(t *testing.T) {
	out, err := runApp(t, "selector", "transfer(address,uint)")
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb transfer(address,uint256)\n", out)

	out, err = runApp(t, "selector", "submit((uint256,string)[], bytes32)")
	require.NoError(t, err)
	sig := "submit((uint256,string)[],bytes32)"
	require.Equal(t, hexutil.Encode(crypto.Keccak256([]byte(sig))[:4])+" "+sig+"\n", out)

	_, err = runApp(t, "selector", "transfer(address")
	require.Error(t, err)
}

func TestSignatureCommand(t *testing.T) {
	path := writeFile(t, "token.json", tokenABI)

	out, err := runApp(t, "signature", "--abi", path, "--method", "transfer")
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb transfer(address,uint256)\n", out)

	out, err = runApp(t, "signature", "--abi", path, "--name", "Transfer")
	require.NoError(t, err)
	require.Equal(t, crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")).Hex()+" Transfer(address,address,uint256)\n", out)

	out, err = runApp(t, "signature", "--abi", path, "--method", "InsufficientBalance")
	require.NoError(t, err)
	sig := "InsufficientBalance(uint256,uint256)"
	require.Equal(t, hexutil.Encode(crypto.Keccak256([]byte(sig))[:4])+" "+sig+"\n", out)

	_, err = runApp(t, "signature", "--abi", path, "--name", "Approval")
	require.ErrorContains(t, err, "not found")

	_, err = runApp(t, "signature", "--method", "transfer")
	require.ErrorContains(t, err, "missing contract ABI")
}

func TestEventCommand(t *testing.T) {
	path := writeFile(t, "token.json", tokenABI)
	topic0 := crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")).Hex()

	out, err := runApp(t, "event", "--abi", path,
		"--topics", topic0, "--topics", "0x"+word(0xaa), "--topics", "0x"+word(0xbb),
		"--data", "0x"+word(100))
	require.NoError(t, err)
	require.Equal(t, "event: Transfer(address,address,uint256)\nfrom: "+addrA+"\nto: "+addrB+"\nvalue: 100\n", out)

	out, err = runApp(t, "event", "--abi", path, "--name", "Ping", "--data", "0x"+word(9))
	require.NoError(t, err)
	require.Equal(t, "event: Ping(uint64)\nseq: 9\n", out)

	_, err = runApp(t, "event", "--abi", path, "--topics", "0x"+word(1), "--data", "0x")
	require.Error(t, err)

	_, err = runApp(t, "event", "--abi", path, "--topics", topic0, "--data", "0x"+word(100))
	require.ErrorIs(t, err, abi.ErrInvalidData)

	_, err = runApp(t, "event", "--abi", path, "--topics", "0x01")
	require.ErrorContains(t, err, "invalid topic")
}

func TestRevertCommand(t *testing.T) {
	out, err := runApp(t, "revert", "0x08c379a0"+word(0x20)+word(4)+rword("626f6f6d"))
	require.NoError(t, err)
	require.Equal(t, "boom\n", out)

	out, err = runApp(t, "revert", "0x4e487b71"+word(0x11))
	require.NoError(t, err)
	require.Equal(t, "arithmetic underflow or overflow\n", out)

	path := writeFile(t, "token.json", tokenABI)
	selector := hexutil.Encode(crypto.Keccak256([]byte("InsufficientBalance(uint256,uint256)"))[:4])
	out, err = runApp(t, "revert", "--abi", path, selector+word(1)+word(2))
	require.NoError(t, err)
	require.Equal(t, "InsufficientBalance(1, 2)\n", out)

	_, err = runApp(t, "revert", "0xdeadbeef")
	require.ErrorIs(t, err, abi.ErrInvalidData)
}

func TestMethodsCommand(t *testing.T) {
	path := writeFile(t, "token.json", tokenABI)

	out, err := runApp(t, "methods", "--abi", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "0x70a08231 function balanceOf(address)", lines[0])
	require.Equal(t, "0xa9059cbb function transfer(address,uint256)", lines[1])
	require.True(t, strings.HasSuffix(lines[2], " event Ping(uint64)"))
	require.True(t, strings.HasSuffix(lines[3], " event Transfer(address,address,uint256)"))
	require.True(t, strings.HasSuffix(lines[4], " error InsufficientBalance(uint256,uint256)"))
}
