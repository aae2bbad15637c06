package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/common"
)

func TestParseSelector(t *testing.T) {
	t.Parallel()

	mkType := func(types ...interface{}) []ArgumentMarshaling {
		var result []ArgumentMarshaling
		for i, typeOrComponents := range types {
			name := "name" + string(rune('0'+i))
			if typeName, ok := typeOrComponents.(string); ok {
				result = append(result, ArgumentMarshaling{name, typeName, typeName, nil, false})
			} else if components, ok := typeOrComponents.([]ArgumentMarshaling); ok {
				result = append(result, ArgumentMarshaling{name, "tuple", "tuple", components, false})
			} else if components, ok := typeOrComponents.([][]ArgumentMarshaling); ok {
				result = append(result, ArgumentMarshaling{name, "tuple[]", "tuple[]", components[0], false})
			}
		}
		return result
	}
	tests := []struct {
		input string
		name  string
		args  []ArgumentMarshaling
	}{
		{"noargs()", "noargs", []ArgumentMarshaling{}},
		{"simple(uint256,uint256,uint256)", "simple", mkType("uint256", "uint256", "uint256")},
		{"other(uint256,address)", "other", mkType("uint256", "address")},
		{"withArray(uint256[],address[2],uint8[4][][5])", "withArray", mkType("uint256[]", "address[2]", "uint8[4][][5]")},
		{"singleNest(bytes32,uint8,(uint256,uint256),address)", "singleNest",
			mkType("bytes32", "uint8", mkType("uint256", "uint256"), "address")},
		{"multiNest(address,(uint256[],uint256),((address,bytes32),uint256))", "multiNest",
			mkType("address", mkType("uint256[]", "uint256"), mkType(mkType("address", "bytes32"), "uint256"))},
		{"arrayNest((uint256,bytes)[],bool)", "arrayNest",
			mkType([][]ArgumentMarshaling{mkType("uint256", "bytes")}, "bool")},
		{"_under$score()", "_under$score", []ArgumentMarshaling{}},
	}
	for _, tt := range tests {
		got, err := ParseSelector(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.name, got.Name, tt.input)
		require.Equal(t, "function", got.Type, tt.input)
		require.Equal(t, tt.args, got.Inputs, tt.input)
	}
}

func TestParseSelectorErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"1abc()",
		"transfer(address",
		"transfer(address,)",
		"f()x",
		"f(uint256[)",
		"f(uint256)[]",
		"f(,)",
	} {
		_, err := ParseSelector(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestNewMethodFromSelector(t *testing.T) {
	method, err := NewMethodFromSelector("transfer(address,uint)")
	require.NoError(t, err)
	require.Equal(t, "transfer", method.Name)
	require.Equal(t, Function, method.Type)
	require.Equal(t, "transfer(address,uint256)", method.Sig)
	require.Equal(t, common.FromHex("a9059cbb"), method.ID)
	require.Len(t, method.Inputs, 2)

	nested, err := NewMethodFromSelector("settle((address,uint256)[],bytes)")
	require.NoError(t, err)
	require.Equal(t, "settle((address,uint256)[],bytes)", nested.Sig)
	require.True(t, nested.Inputs[0].Type.IsDynamic())

	_, err = NewMethodFromSelector("f(uint7)")
	require.ErrorIs(t, err, ErrInvalidType)
	_, err = NewMethodFromSelector("f(")
	require.Error(t, err)
}
