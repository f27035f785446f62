package ethapi

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationInfoDefaultsTrieHashes(t *testing.T) {
	var info TransactionSimulationInfo
	err := json.Unmarshal([]byte(`{"totalGasUsed":21000,"txLogs":[],"txReceipts":[]}`), &info)
	require.NoError(t, err)

	assert.Equal(t, uint64(21000), info.TotalGasUsed)
	assert.Equal(t, EmptyTrieHash, info.TrieHashBefore)
	assert.Equal(t, EmptyTrieHash, info.TrieHashAfter)
	assert.True(t, info.StateUntouched())
	assert.Nil(t, info.TraceDebugInfo)
}

func TestSimulationInfoKeepsExplicitTrieHashes(t *testing.T) {
	var info TransactionSimulationInfo
	body := `{"totalGasUsed":1,"trieHashBefore":"0xdead","trieHashAfter":"0x","txLogs":[],"txReceipts":[]}`
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.Equal(t, "0xdead", info.TrieHashBefore)
	assert.False(t, info.StateUntouched())
}

func TestSimulationInfoAbsentTracesVsEmptyTraces(t *testing.T) {
	var absent TransactionSimulationInfo
	require.NoError(t, json.Unmarshal([]byte(`{"totalGasUsed":0,"txLogs":[],"txReceipts":[]}`), &absent))
	assert.Nil(t, absent.TraceDebugInfo, "no tracer ran")

	var empty TransactionSimulationInfo
	require.NoError(t, json.Unmarshal([]byte(`{"totalGasUsed":0,"traceDebugInfo":[],"txLogs":[],"txReceipts":[]}`), &empty))
	require.NotNil(t, empty.TraceDebugInfo, "tracer ran and produced nothing")
	assert.Len(t, empty.TraceDebugInfo, 0)
}

func TestSimulationInfoRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing totalGasUsed", `{"txLogs":[],"txReceipts":[]}`},
		{"missing txLogs", `{"totalGasUsed":1,"txReceipts":[]}`},
		{"missing txReceipts", `{"totalGasUsed":1,"txLogs":[]}`},
		{"null txLogs", `{"totalGasUsed":1,"txLogs":null,"txReceipts":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info TransactionSimulationInfo
			assert.Error(t, json.Unmarshal([]byte(tt.body), &info))
		})
	}
}

func TestSimulationInfoMarshalRoundTrip(t *testing.T) {
	info := TransactionSimulationInfo{
		TraceDebugInfo: []json.RawMessage{},
		TotalGasUsed:   42000,
		TxLogs: []*types.Log{{
			Address: common.HexToAddress("0x3718ecd4e97f4332f9652d0ba224f222b55ec543"),
			Topics:  []common.Hash{},
			Data:    []byte{},
		}},
		TxReceipts: []*types.Receipt{},
	}
	raw, err := json.Marshal(info)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Contains(t, keys, "traceDebugInfo", "empty trace list stays present")
	assert.Equal(t, `"0x"`, string(keys["trieHashBefore"]))
	assert.Equal(t, `"0x"`, string(keys["trieHashAfter"]))

	var back TransactionSimulationInfo
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, info.TotalGasUsed, back.TotalGasUsed)
	require.NotNil(t, back.TraceDebugInfo)
	assert.Len(t, back.TxLogs, 1)
}

func TestSimulationInfoMarshalOmitsAbsentTraces(t *testing.T) {
	info := TransactionSimulationInfo{TotalGasUsed: 1}
	raw, err := json.Marshal(info)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.NotContains(t, keys, "traceDebugInfo")
}

func TestCheckBundle(t *testing.T) {
	info := TransactionSimulationInfo{
		TxReceipts: make([]*types.Receipt, 2),
		TxLogs:     make([]*types.Log, 2),
	}
	assert.NoError(t, info.CheckBundle(2))
	assert.NoError(t, info.CheckBundle(3))
	assert.Error(t, info.CheckBundle(1))

	info.TraceDebugInfo = []json.RawMessage{{}, {}, {}}
	assert.Error(t, info.CheckBundle(2))
}
