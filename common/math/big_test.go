package math

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestPaddedBigBytes(t *testing.T) {
	tests := []struct {
		num    *big.Int
		n      int
		result []byte
	}{
		{num: big.NewInt(0), n: 4, result: []byte{0, 0, 0, 0}},
		{num: big.NewInt(1), n: 4, result: []byte{0, 0, 0, 1}},
		{num: big.NewInt(512), n: 4, result: []byte{0, 0, 2, 0}},
		{num: BigPow(2, 32), n: 4, result: []byte{1, 0, 0, 0, 0}},
	}
	for _, test := range tests {
		if result := PaddedBigBytes(test.num, test.n); !bytes.Equal(result, test.result) {
			t.Errorf("PaddedBigBytes(%d, %d) = %v, want %v", test.num, test.n, result, test.result)
		}
	}
}

func TestU256Bytes(t *testing.T) {
	ubytes := make([]byte, 32)
	ubytes[31] = 1

	unsigned := U256Bytes(big.NewInt(1))
	require.Equal(t, ubytes, unsigned)

	minusOne := U256Bytes(big.NewInt(-1))
	for _, b := range minusOne {
		require.Equal(t, byte(0xff), b)
	}
}

func TestS256(t *testing.T) {
	tests := []struct{ x, y *big.Int }{
		{x: big.NewInt(0), y: big.NewInt(0)},
		{x: big.NewInt(1), y: big.NewInt(1)},
		{x: new(big.Int).Sub(BigPow(2, 255), big.NewInt(1)), y: new(big.Int).Sub(BigPow(2, 255), big.NewInt(1))},
		{x: BigPow(2, 255), y: new(big.Int).Neg(BigPow(2, 255))},
		{x: new(big.Int).Sub(BigPow(2, 256), big.NewInt(1)), y: big.NewInt(-1)},
	}
	for _, test := range tests {
		if y := S256(test.x); y.Cmp(test.y) != 0 {
			t.Errorf("S256(%x) = %x, want %x", test.x, y, test.y)
		}
	}
}

func TestFromUint256(t *testing.T) {
	require.Nil(t, FromUint256(nil))
	require.Equal(t, int64(42), FromUint256(uint256.NewInt(42)).Int64())
}
