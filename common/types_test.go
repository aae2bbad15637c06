package common

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadding(t *testing.T) {
	tests := []struct {
		in    []byte
		l     int
		left  []byte
		right []byte
	}{
		{[]byte{1, 2}, 4, []byte{0, 0, 1, 2}, []byte{1, 2, 0, 0}},
		{[]byte{1, 2, 3}, 2, []byte{1, 2, 3}, []byte{1, 2, 3}},
		{nil, 2, []byte{0, 0}, []byte{0, 0}},
	}
	for i, test := range tests {
		if got := LeftPadBytes(test.in, test.l); !bytes.Equal(got, test.left) {
			t.Errorf("test %d: LeftPadBytes = %x, want %x", i, got, test.left)
		}
		if got := RightPadBytes(test.in, test.l); !bytes.Equal(got, test.right) {
			t.Errorf("test %d: RightPadBytes = %x, want %x", i, got, test.right)
		}
	}
}

func TestFromHex(t *testing.T) {
	require.Equal(t, []byte{0x01}, FromHex("0x1"))
	require.Equal(t, []byte{0x01, 0x02}, FromHex("0102"))
	require.Equal(t, []byte{0xab}, FromHex("0XAB"))
}

func TestAddressHexRoundTrip(t *testing.T) {
	addr := HexToAddress("0x00000000000000000000000000000000deadbeef")
	require.Equal(t, "0x00000000000000000000000000000000deadbeef", addr.Hex())
	require.True(t, IsHexAddress(addr.Hex()))
	require.False(t, IsHexAddress("0xdeadbeef"))

	blob, err := json.Marshal(addr)
	require.NoError(t, err)
	var dec Address
	require.NoError(t, json.Unmarshal(blob, &dec))
	require.Equal(t, addr, dec)
}

func TestHashCropping(t *testing.T) {
	long := make([]byte, 40)
	long[39] = 7
	h := BytesToHash(long)
	require.Equal(t, byte(7), h[31])
	require.Equal(t, "0x", h.Hex()[:2])
}
