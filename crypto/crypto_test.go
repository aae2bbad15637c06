package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/common"
)

func checkhash(t *testing.T, name string, f func([]byte) []byte, msg, exp []byte) {
	sum := f(msg)
	if !bytes.Equal(exp, sum) {
		t.Fatalf("hash %s mismatch: want: %x have: %x", name, exp, sum)
	}
}

func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp := common.FromHex("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	checkhash(t, "Keccak256", func(in []byte) []byte { return Keccak256(in) }, msg, exp)
	checkhash(t, "Keccak256Hash", func(in []byte) []byte { h := Keccak256Hash(in); return h[:] }, msg, exp)
}

func TestKeccak256Empty(t *testing.T) {
	exp := common.HexToHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.Equal(t, exp, Keccak256Hash())
	require.Equal(t, exp, HashData(NewKeccakState(), nil))
}

func TestSelector(t *testing.T) {
	require.Equal(t, [4]byte{0xa9, 0x05, 0x9c, 0xbb}, Selector("transfer(address,uint256)"))
	require.Equal(t, [4]byte{0x08, 0xc3, 0x79, 0xa0}, Selector("Error(string)"))
	require.Equal(t, [4]byte{0x4e, 0x48, 0x7b, 0x71}, Selector("Panic(uint256)"))
}
