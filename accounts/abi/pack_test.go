package abi

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/common"
)

// word returns the hex string left padded to a 32 byte word.
func word(s string) []byte { return common.LeftPadBytes(common.FromHex(s), 32) }

// rword returns the hex string right padded to a 32 byte word.
func rword(s string) []byte { return common.RightPadBytes(common.FromHex(s), 32) }

func concat(parts ...[]byte) []byte { return bytes.Join(parts, nil) }

func mustTypes(t *testing.T, types ...string) []Type {
	t.Helper()
	out, err := ParseTypes(types...)
	require.NoError(t, err)
	return out
}

func TestEncodeUint256(t *testing.T) {
	enc, err := Encode(mustTypes(t, "uint256"), []interface{}{big.NewInt(5)})
	require.NoError(t, err)
	require.Equal(t, word("05"), enc)
}

func TestEncodeString(t *testing.T) {
	enc, err := Encode(mustTypes(t, "string"), []interface{}{"dog"})
	require.NoError(t, err)
	require.Equal(t, concat(word("20"), word("03"), rword("646f67")), enc)
}

func TestEncodeDynamicArray(t *testing.T) {
	enc, err := Encode(mustTypes(t, "uint256[]"), []interface{}{[]*big.Int{big.NewInt(1), big.NewInt(2)}})
	require.NoError(t, err)
	require.Equal(t, concat(word("20"), word("02"), word("01"), word("02")), enc)

	// any integer element kind encodes the same way
	enc2, err := Encode(mustTypes(t, "uint256[]"), []interface{}{[]int{1, 2}})
	require.NoError(t, err)
	require.Equal(t, enc, enc2)
}

func TestEncodeMixed(t *testing.T) {
	var b10 [10]byte
	copy(b10[:], "1234567890")
	enc, err := Encode(
		mustTypes(t, "uint256", "uint32[]", "bytes10", "bytes"),
		[]interface{}{big.NewInt(0x123), []uint32{0x456, 0x789}, b10, []byte("Hello, world!")},
	)
	require.NoError(t, err)
	want := concat(
		word("0123"),
		word("80"),
		rword("31323334353637383930"),
		word("e0"),
		word("02"),
		word("0456"),
		word("0789"),
		word("0d"),
		rword("48656c6c6f2c20776f726c6421"),
	)
	require.Equal(t, want, enc)
}

func TestEncodeStaticArraysInline(t *testing.T) {
	enc, err := Encode(mustTypes(t, "uint256[2]", "uint256"), []interface{}{[2]uint64{1, 2}, 3})
	require.NoError(t, err)
	require.Equal(t, concat(word("01"), word("02"), word("03")), enc)

	pair, err := NewType("tuple", "", []ArgumentMarshaling{{Name: "a", Type: "uint8"}, {Name: "b", Type: "bool"}})
	require.NoError(t, err)
	enc, err = Encode([]Type{pair}, []interface{}{[]interface{}{uint8(7), true}})
	require.NoError(t, err)
	require.Equal(t, concat(word("07"), word("01")), enc)
}

func TestEncodeFixedArrayOfStrings(t *testing.T) {
	enc, err := Encode(mustTypes(t, "string[2]"), []interface{}{[2]string{"a", "b"}})
	require.NoError(t, err)
	want := concat(
		word("20"),
		word("40"), word("80"),
		word("01"), rword("61"),
		word("01"), rword("62"),
	)
	require.Equal(t, want, enc)
}

func TestEncodeTupleForms(t *testing.T) {
	typ, err := NewType("tuple", "", []ArgumentMarshaling{
		{Name: "amount", Type: "uint256"},
		{Name: "memo_text", Type: "string"},
	})
	require.NoError(t, err)
	types := []Type{typ}

	type memo struct {
		Amount   *big.Int
		MemoText string
	}
	type tagged struct {
		Value *big.Int `abi:"amount"`
		Text  string   `abi:"memo_text"`
	}
	want := concat(word("20"), word("2a"), word("40"), word("02"), rword("6869"))

	for _, value := range []interface{}{
		memo{big.NewInt(42), "hi"},
		&memo{big.NewInt(42), "hi"},
		tagged{big.NewInt(42), "hi"},
		[]interface{}{42, "hi"},
		map[string]interface{}{"amount": uint8(42), "memo_text": "hi"},
	} {
		enc, err := Encode(types, []interface{}{value})
		require.NoError(t, err, "%T", value)
		require.Equal(t, want, enc, "%T", value)
	}

	_, err = Encode(types, []interface{}{[]interface{}{42}})
	require.ErrorIs(t, err, ErrParameterCount)
}

func TestEncodeIntegerRepresentations(t *testing.T) {
	types := mustTypes(t, "uint256")
	want := word("05")
	u := uint256.NewInt(5)
	for _, value := range []interface{}{
		5, int8(5), int64(5), uint(5), uint8(5), uint64(5),
		big.NewInt(5), *big.NewInt(5), u, *u,
	} {
		enc, err := Encode(types, []interface{}{value})
		require.NoError(t, err, "%T", value)
		require.Equal(t, want, enc, "%T", value)
	}
}

func TestEncodeSigned(t *testing.T) {
	ones := bytes.Repeat([]byte{0xff}, 32)
	for _, typ := range []string{"int8", "int64", "int256"} {
		enc, err := Encode(mustTypes(t, typ), []interface{}{big.NewInt(-1)})
		require.NoError(t, err, typ)
		require.Equal(t, ones, enc, typ)
	}
	enc, err := Encode(mustTypes(t, "int8"), []interface{}{int8(-128)})
	require.NoError(t, err)
	require.Equal(t, concat(bytes.Repeat([]byte{0xff}, 31), []byte{0x80}), enc)
}

func TestEncodeOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ   string
		value interface{}
		err   error
	}{
		{"uint8", 255, nil},
		{"uint8", 256, ErrEncodingOverflow},
		{"uint8", big.NewInt(256), ErrEncodingOverflow},
		{"uint256", -1, ErrEncodingOverflow},
		{"uint256", MaxUint256, nil},
		{"uint256", new(big.Int).Add(MaxUint256, common.Big1), ErrEncodingOverflow},
		{"int8", 127, nil},
		{"int8", 128, ErrEncodingOverflow},
		{"int8", -129, ErrEncodingOverflow},
		{"int256", MaxInt256, nil},
		{"int256", new(big.Int).Add(MaxInt256, common.Big1), ErrEncodingOverflow},
		{"uint24", 1 << 24, ErrEncodingOverflow},
		{"bytes4", [4]byte{1, 2, 3, 4}, nil},
		{"bytes4", []byte{1, 2}, nil},
		{"bytes4", [5]byte{}, ErrEncodingOverflow},
		{"function", make([]byte, 25), ErrEncodingOverflow},
	}
	for _, tt := range tests {
		_, err := Encode(mustTypes(t, tt.typ), []interface{}{tt.value})
		if tt.err == nil {
			require.NoError(t, err, "%s %v", tt.typ, tt.value)
		} else {
			require.ErrorIs(t, err, tt.err, "%s %v", tt.typ, tt.value)
		}
	}
}

func TestEncodeTypeMismatch(t *testing.T) {
	tests := []struct {
		typ   string
		value interface{}
	}{
		{"bool", "true"},
		{"uint256", "5"},
		{"string", []byte("dog")},
		{"address", make([]byte, 19)},
		{"uint8[2]", []uint8{1}},
		{"uint8[]", uint8(1)},
		{"bytes", nil},
	}
	for _, tt := range tests {
		_, err := Encode(mustTypes(t, tt.typ), []interface{}{tt.value})
		require.Error(t, err, "%s %v", tt.typ, tt.value)
	}
}

func TestEncodeParameterCount(t *testing.T) {
	_, err := Encode(mustTypes(t, "uint256", "bool"), []interface{}{1})
	require.ErrorIs(t, err, ErrParameterCount)

	enc, err := Encode(nil, nil)
	require.NoError(t, err)
	require.Empty(t, enc)
}

func TestEncodeStaticLength(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	types := mustTypes(t, "uint256", "bool", "address", "bytes32", "int16", "uint8[3]")
	enc, err := Encode(types, []interface{}{1, false, addr, [32]byte{1}, -3, [3]uint8{1, 2, 3}})
	require.NoError(t, err)
	require.Len(t, enc, 32*8)
	require.Equal(t, word("deadbeef"), enc[64:96])
}

func TestEncodeStringTailLength(t *testing.T) {
	for _, l := range []int{0, 1, 31, 32, 33, 64, 100} {
		enc, err := Encode(mustTypes(t, "string"), []interface{}{strings.Repeat("x", l)})
		require.NoError(t, err)
		tail := enc[32:]
		require.Len(t, tail, 32+(l+31)/32*32, "length %d", l)
		require.Equal(t, word("20"), enc[:32])
	}
}

func TestArgumentsPackNoPartialOutput(t *testing.T) {
	args, err := NewArguments("string", "uint8")
	require.NoError(t, err)
	enc, err := args.Pack("fine", 300)
	require.ErrorIs(t, err, ErrEncodingOverflow)
	require.Nil(t, enc)
}
