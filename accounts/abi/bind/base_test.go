package bind

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-web3/accounts/abi"
	"github.com/sunyihoo/go-web3/common"
	"github.com/sunyihoo/go-web3/common/hexutil"
	"github.com/sunyihoo/go-web3/crypto"
)

const tokenABI = `[
	{"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"info","inputs":[],"outputs":[{"name":"name","type":"string"},{"name":"decimals","type":"uint8"}],"stateMutability":"view"},
	{"type":"error","name":"Unauthorized","inputs":[{"name":"who","type":"address"}]},
	{"type":"event","name":"Transfer","inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}]}
]`

type callResult struct {
	output []byte
	err    error
}

// mockCaller answers calls from a fixed table keyed by the 4 byte selector.
type mockCaller struct {
	mu      sync.Mutex
	code    []byte
	results map[string]callResult
	calls   []CallMsg
	pending bool
}

func (mc *mockCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.code, nil
}

func (mc *mockCaller) CallContract(ctx context.Context, call CallMsg, blockNumber *big.Int) ([]byte, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.calls = append(mc.calls, call)
	res := mc.results[hexutil.Encode(call.Data[:4])]
	return res.output, res.err
}

type mockPendingCaller struct {
	*mockCaller
}

func (mc *mockPendingCaller) PendingCodeAt(ctx context.Context, contract common.Address) ([]byte, error) {
	return mc.CodeAt(ctx, contract, nil)
}

func (mc *mockPendingCaller) PendingCallContract(ctx context.Context, call CallMsg) ([]byte, error) {
	mc.mu.Lock()
	mc.pending = true
	mc.mu.Unlock()
	return mc.CallContract(ctx, call, nil)
}

type rpcError struct {
	msg  string
	data interface{}
}

func (e *rpcError) Error() string          { return e.msg }
func (e *rpcError) ErrorData() interface{} { return e.data }

func newToken(t *testing.T, caller ContractCaller) (*BoundContract, abi.ABI) {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	return NewBoundContract(common.HexToAddress("0x0c"), parsed, caller), parsed
}

func selectorHex(sig string) string {
	sel := crypto.Selector(sig)
	return hexutil.Encode(sel[:])
}

func TestCall(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	balance, err := parsed.PackOutput("balanceOf", big.NewInt(42))
	require.NoError(t, err)

	mc := &mockCaller{
		code:    []byte{1},
		results: map[string]callResult{selectorHex("balanceOf(address)"): {output: balance}},
	}
	contract, _ := newToken(t, mc)
	owner := common.HexToAddress("0x0a")

	var results []interface{}
	require.NoError(t, contract.Call(&CallOpts{From: owner}, &results, "balanceOf", owner))
	require.Len(t, results, 1)
	require.Zero(t, big.NewInt(42).Cmp(results[0].(*big.Int)))

	require.Len(t, mc.calls, 1)
	require.Equal(t, owner, mc.calls[0].From)
	require.Equal(t, contract.Address(), *mc.calls[0].To)
	require.Equal(t, crypto.Keccak256([]byte("balanceOf(address)"))[:4], mc.calls[0].Data[:4])

	var out *big.Int
	results = []interface{}{&out}
	require.NoError(t, contract.Call(nil, &results, "balanceOf", owner))
	require.Zero(t, big.NewInt(42).Cmp(out))
}

func TestCallIntoStruct(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	info, err := parsed.PackOutput("info", "Token", uint8(18))
	require.NoError(t, err)

	mc := &mockCaller{
		code:    []byte{1},
		results: map[string]callResult{selectorHex("info()"): {output: info}},
	}
	contract, _ := newToken(t, mc)

	var out struct {
		Name     string
		Decimals uint8
	}
	results := []interface{}{&out}
	require.NoError(t, contract.Call(nil, &results, "info"))
	require.Equal(t, "Token", out.Name)
	require.Equal(t, uint8(18), out.Decimals)
}

func TestCallNoCode(t *testing.T) {
	contract, _ := newToken(t, &mockCaller{results: map[string]callResult{}})
	err := contract.Call(nil, nil, "balanceOf", common.Address{})
	require.ErrorIs(t, err, ErrNoCode)

	// empty output from a contract with code is a decoding failure
	contract, _ = newToken(t, &mockCaller{code: []byte{1}, results: map[string]callResult{}})
	err = contract.Call(nil, nil, "balanceOf", common.Address{})
	require.ErrorIs(t, err, abi.ErrInvalidData)
}

func TestCallPending(t *testing.T) {
	contract, _ := newToken(t, &mockCaller{code: []byte{1}})
	err := contract.Call(&CallOpts{Pending: true}, nil, "balanceOf", common.Address{})
	require.ErrorIs(t, err, ErrNoPendingState)

	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	balance, err := parsed.PackOutput("balanceOf", big.NewInt(1))
	require.NoError(t, err)
	mc := &mockPendingCaller{&mockCaller{
		code:    []byte{1},
		results: map[string]callResult{selectorHex("balanceOf(address)"): {output: balance}},
	}}
	contract, _ = newToken(t, mc)
	var results []interface{}
	require.NoError(t, contract.Call(&CallOpts{Pending: true}, &results, "balanceOf", common.Address{}))
	require.True(t, mc.pending)
}

func TestCallRevert(t *testing.T) {
	reasonArgs, err := abi.NewArguments("string")
	require.NoError(t, err)
	reason, err := reasonArgs.Pack("not allowed")
	require.NoError(t, err)
	revert := append(crypto.Keccak256([]byte("Error(string)"))[:4], reason...)

	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	custom := parsed.Errors["Unauthorized"]
	who := common.HexToAddress("0x0b")
	args, err := custom.Inputs.Pack(who)
	require.NoError(t, err)
	customData := append(common.CopyBytes(custom.ID[:4]), args...)

	plain := errors.New("connection refused")
	tests := []struct {
		err    error
		reason string
	}{
		{&rpcError{"execution reverted", revert}, "not allowed"},
		{&rpcError{"execution reverted", hexutil.Encode(revert)}, "not allowed"},
		{&rpcError{"execution reverted", hexutil.Encode(customData)}, "Unauthorized[" + who.Hex() + "]"},
	}
	for i, tt := range tests {
		mc := &mockCaller{results: map[string]callResult{selectorHex("balanceOf(address)"): {err: tt.err}}}
		contract, _ := newToken(t, mc)
		err := contract.Call(nil, nil, "balanceOf", common.Address{})
		var revertErr *RevertError
		require.ErrorAs(t, err, &revertErr, "test %d", i)
		require.Equal(t, tt.reason, revertErr.Reason, "test %d", i)
		require.Equal(t, "execution reverted: "+tt.reason, revertErr.Error())
	}

	for _, callErr := range []error{plain, &rpcError{"boom", 12}, &rpcError{"boom", "0xzz"}, &rpcError{"boom", []byte{1, 2, 3, 4}}} {
		mc := &mockCaller{results: map[string]callResult{selectorHex("balanceOf(address)"): {err: callErr}}}
		contract, _ := newToken(t, mc)
		err := contract.Call(nil, nil, "balanceOf", common.Address{})
		require.Equal(t, callErr, err)
	}
}

func TestUnpackLog(t *testing.T) {
	contract, parsed := newToken(t, &mockCaller{})
	from := common.HexToAddress("0x01")
	to := common.HexToAddress("0x02")
	topics, data, err := parsed.PackEvent("Transfer", from, to, big.NewInt(500))
	require.NoError(t, err)
	entry := Log{Address: contract.Address(), Topics: topics, Data: data}

	var transfer struct {
		From  common.Address
		To    common.Address
		Value *big.Int
	}
	require.NoError(t, contract.UnpackLog(&transfer, "Transfer", entry))
	require.Equal(t, from, transfer.From)
	require.Equal(t, to, transfer.To)
	require.Zero(t, big.NewInt(500).Cmp(transfer.Value))

	m := make(map[string]interface{})
	require.NoError(t, contract.UnpackLogIntoMap(m, "Transfer", entry))
	require.Equal(t, from, m["from"])
	require.Equal(t, to, m["to"])
	require.Zero(t, big.NewInt(500).Cmp(m["value"].(*big.Int)))

	event, decoded, err := contract.DecodeLog(entry)
	require.NoError(t, err)
	require.Equal(t, "Transfer", event.Name)
	require.Equal(t, from, decoded.Index(0))

	require.ErrorIs(t, contract.UnpackLog(&transfer, "Transfer", Log{}), abi.ErrInvalidData)
	bad := Log{Topics: []common.Hash{{1}}, Data: data}
	require.ErrorIs(t, contract.UnpackLogIntoMap(m, "Transfer", bad), abi.ErrInvalidData)
	_, _, err = contract.DecodeLog(bad)
	require.Error(t, err)
}

type lateCaller struct {
	mu      sync.Mutex
	queries int
	readyAt int
}

func (lc *lateCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.queries++
	if lc.queries >= lc.readyAt {
		return []byte{0x60, 0x80}, nil
	}
	return nil, nil
}

func (lc *lateCaller) CallContract(ctx context.Context, call CallMsg, blockNumber *big.Int) ([]byte, error) {
	return nil, nil
}

func TestWaitDeployed(t *testing.T) {
	old := pollInterval
	pollInterval = 10 * time.Millisecond
	defer func() { pollInterval = old }()

	code, err := WaitDeployed(context.Background(), &lateCaller{readyAt: 3}, common.Address{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x80}, code)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = WaitDeployed(ctx, &lateCaller{readyAt: 1 << 30}, common.Address{})
	require.ErrorIs(t, err, ErrNoCodeAfterDeploy)
}
