package abi

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/common"
)

func mustType(t *testing.T, s string) Type {
	t.Helper()
	typ, err := NewType(s, "", nil)
	require.NoError(t, err, "type %q", s)
	return typ
}

func TestNewType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		kind      byte
		size      int
		canonical string
		dynamic   bool
		headSize  int
	}{
		{"uint", UintTy, 256, "uint256", false, 32},
		{"int", IntTy, 256, "int256", false, 32},
		{"uint8", UintTy, 8, "uint8", false, 32},
		{"int72", IntTy, 72, "int72", false, 32},
		{"bool", BoolTy, 0, "bool", false, 32},
		{"address", AddressTy, 20, "address", false, 32},
		{"string", StringTy, 0, "string", true, 32},
		{"bytes", BytesTy, 0, "bytes", true, 32},
		{"bytes1", FixedBytesTy, 1, "bytes1", false, 32},
		{"bytes32", FixedBytesTy, 32, "bytes32", false, 32},
		{"function", FunctionTy, 24, "function", false, 32},
		{"uint256[]", SliceTy, 0, "uint256[]", true, 32},
		{"uint[3]", ArrayTy, 3, "uint256[3]", false, 96},
		{"uint8[2][3]", ArrayTy, 3, "uint8[2][3]", false, 192},
		{"string[2]", ArrayTy, 2, "string[2]", true, 32},
		{"bool[][2]", ArrayTy, 2, "bool[][2]", true, 32},
		{"address[2][]", SliceTy, 0, "address[2][]", true, 32},
	}
	for _, tt := range tests {
		typ, err := NewType(tt.input, "", nil)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.kind, typ.T, tt.input)
		require.Equal(t, tt.size, typ.Size, tt.input)
		require.Equal(t, tt.canonical, typ.String(), tt.input)
		require.Equal(t, tt.dynamic, typ.IsDynamic(), tt.input)
		require.Equal(t, tt.headSize, typ.headSize(), tt.input)
	}
}

func TestNewTypeInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"uint9999999",
		"uint7",
		"uint0",
		"int264",
		"uint08",
		"bytes0",
		"bytes33",
		"uint8[0]",
		"uint8[",
		"uint8]",
		"uint8[a]",
		"uint8[2]x",
		"bool8",
		"string1",
		"foo",
		"",
		"tuple",
	} {
		_, err := NewType(input, "", nil)
		require.ErrorIs(t, err, ErrInvalidType, "input %q", input)
	}
}

func TestNewTypeTooLarge(t *testing.T) {
	for _, input := range []string{
		"uint256[4611686018427387904][4]",
		"uint256[9223372036854775807]",
		"string[268435456][268435456]",
		"bytes[][33554433]",
	} {
		_, err := NewType(input, "", nil)
		require.ErrorIs(t, err, ErrInvalidType, "input %q", input)
	}

	_, err := NewType("tuple", "", []ArgumentMarshaling{
		{Name: "a", Type: "uint8[33554432]"},
		{Name: "b", Type: "uint8[33554432]"},
	})
	require.ErrorIs(t, err, ErrInvalidType)

	// The largest accepted array still fails cleanly on short input.
	typ := mustType(t, "uint8[33554432]")
	require.Equal(t, maxTypeFootprint, typ.headSize())
	_, err = Decode([]Type{typ}, make([]byte, 64))
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestNewTypeContractInternalType(t *testing.T) {
	typ, err := NewType("contract Token", "contract Token", nil)
	require.NoError(t, err)
	require.Equal(t, AddressTy, typ.T)
	require.Equal(t, "address", typ.String())
}

func TestArrayLength(t *testing.T) {
	require.Equal(t, 4, mustType(t, "bytes32[4]").ArrayLength())
	require.Equal(t, DynamicLength, mustType(t, "bytes32[]").ArrayLength())
	require.Equal(t, 0, mustType(t, "bytes32").ArrayLength())
}

func TestNewTupleType(t *testing.T) {
	t.Parallel()

	static, err := NewType("tuple", "struct Pair", []ArgumentMarshaling{
		{Name: "a", Type: "uint256"},
		{Name: "b", Type: "bool"},
	})
	require.NoError(t, err)
	require.Equal(t, "(uint256,bool)", static.String())
	require.False(t, static.IsDynamic())
	require.Equal(t, 64, static.headSize())
	require.Equal(t, "Pair", static.TupleRawName)
	require.Equal(t, []string{"a", "b"}, static.TupleRawNames)

	dynamic, err := NewType("tuple[2]", "struct Lib.Entry[2]", []ArgumentMarshaling{
		{Name: "key", Type: "string"},
		{Type: "uint64"},
	})
	require.NoError(t, err)
	require.Equal(t, "(string,uint64)[2]", dynamic.String())
	require.True(t, dynamic.IsDynamic())
	require.True(t, dynamic.Elem.IsDynamic())
	require.Equal(t, "LibEntry", dynamic.Elem.TupleRawName)
	require.Equal(t, []string{"key", "arg1"}, dynamic.Elem.TupleRawNames)

	goType := dynamic.Elem.GetType()
	require.Equal(t, reflect.Struct, goType.Kind())
	require.Equal(t, "Key", goType.Field(0).Name)
	require.Equal(t, "Arg1", goType.Field(1).Name)
	require.Equal(t, reflect.TypeOf(uint64(0)), goType.Field(1).Type)
}

func TestNewTupleTypeErrors(t *testing.T) {
	_, err := NewType("tuple", "", []ArgumentMarshaling{{Name: "a", Type: "uint7"}})
	require.ErrorIs(t, err, ErrInvalidType)

	_, err = NewType("tuple", "", []ArgumentMarshaling{{Name: "__", Type: "uint8"}})
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestGetType(t *testing.T) {
	tests := map[string]reflect.Type{
		"uint8":       reflect.TypeOf(uint8(0)),
		"int64":       reflect.TypeOf(int64(0)),
		"uint24":      reflect.TypeOf(common.Big1),
		"address":     reflect.TypeOf(common.Address{}),
		"bytes":       reflect.TypeOf([]byte{}),
		"bytes4":      reflect.TypeOf([4]byte{}),
		"function":    reflect.TypeOf([24]byte{}),
		"string[]":    reflect.TypeOf([]string{}),
		"uint16[2][]": reflect.TypeOf([][2]uint16{}),
	}
	for input, want := range tests {
		require.Equal(t, want, mustType(t, input).GetType(), input)
	}
}
