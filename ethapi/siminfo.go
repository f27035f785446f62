package ethapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
)

// EmptyTrieHash is the sentinel both trie hash fields must carry: the
// node reports "0x" as proof the simulation persisted no state.
const EmptyTrieHash = "0x"

// TransactionSimulationInfo is the result of cgp_simulateTransactionsBundle.
type TransactionSimulationInfo struct {
	// TraceDebugInfo holds one trace per bundled call when tracing was
	// requested, nil otherwise. Nil and empty differ: nil means no tracer
	// ran, empty means a tracer ran and produced nothing.
	TraceDebugInfo []json.RawMessage
	TotalGasUsed   uint64
	TrieHashAfter  string
	TrieHashBefore string
	TxLogs         []*types.Log
	TxReceipts     []*types.Receipt
}

type simulationInfoJSON struct {
	TraceDebugInfo *[]json.RawMessage `json:"traceDebugInfo,omitempty"`
	TotalGasUsed   *uint64            `json:"totalGasUsed"`
	TrieHashAfter  *string            `json:"trieHashAfter"`
	TrieHashBefore *string            `json:"trieHashBefore"`
	TxLogs         []*types.Log       `json:"txLogs"`
	TxReceipts     []*types.Receipt   `json:"txReceipts"`
}

// UnmarshalJSON enforces the result contract: totalGasUsed, txLogs and
// txReceipts are required, while the two trie hash sentinels default to
// "0x" when the node omits them.
func (info *TransactionSimulationInfo) UnmarshalJSON(data []byte) error {
	var dec simulationInfoJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	if dec.TotalGasUsed == nil {
		return errors.New("missing required field 'totalGasUsed'")
	}
	if dec.TxLogs == nil {
		return errors.New("missing required field 'txLogs'")
	}
	if dec.TxReceipts == nil {
		return errors.New("missing required field 'txReceipts'")
	}
	info.TraceDebugInfo = nil
	if dec.TraceDebugInfo != nil {
		info.TraceDebugInfo = *dec.TraceDebugInfo
		if info.TraceDebugInfo == nil {
			info.TraceDebugInfo = []json.RawMessage{}
		}
	}
	info.TotalGasUsed = *dec.TotalGasUsed
	info.TrieHashAfter = EmptyTrieHash
	if dec.TrieHashAfter != nil {
		info.TrieHashAfter = *dec.TrieHashAfter
	}
	info.TrieHashBefore = EmptyTrieHash
	if dec.TrieHashBefore != nil {
		info.TrieHashBefore = *dec.TrieHashBefore
	}
	info.TxLogs = dec.TxLogs
	info.TxReceipts = dec.TxReceipts
	return nil
}

// MarshalJSON keeps traceDebugInfo out of the object when no tracer ran,
// but writes it as [] when a tracer ran and produced nothing.
func (info TransactionSimulationInfo) MarshalJSON() ([]byte, error) {
	enc := simulationInfoJSON{
		TotalGasUsed: &info.TotalGasUsed,
		TxLogs:       info.TxLogs,
		TxReceipts:   info.TxReceipts,
	}
	if info.TraceDebugInfo != nil {
		enc.TraceDebugInfo = &info.TraceDebugInfo
	}
	after, before := info.TrieHashAfter, info.TrieHashBefore
	if after == "" {
		after = EmptyTrieHash
	}
	if before == "" {
		before = EmptyTrieHash
	}
	enc.TrieHashAfter, enc.TrieHashBefore = &after, &before
	if enc.TxLogs == nil {
		enc.TxLogs = []*types.Log{}
	}
	if enc.TxReceipts == nil {
		enc.TxReceipts = []*types.Receipt{}
	}
	return json.Marshal(enc)
}

// StateUntouched reports whether both trie hash sentinels prove the run
// left persistent state alone.
func (info *TransactionSimulationInfo) StateUntouched() bool {
	return info.TrieHashBefore == EmptyTrieHash && info.TrieHashAfter == EmptyTrieHash
}

// CheckBundle verifies the result against the length of the submitted
// bundle: receipts and logs correspond index-wise to the bundled calls,
// so neither may outnumber them. Tracing, when present, yields one trace
// per call.
func (info *TransactionSimulationInfo) CheckBundle(n int) error {
	if len(info.TxReceipts) > n {
		return fmt.Errorf("%d receipts for a %d-tx bundle", len(info.TxReceipts), n)
	}
	if len(info.TxLogs) > n {
		return fmt.Errorf("%d log entries for a %d-tx bundle", len(info.TxLogs), n)
	}
	if info.TraceDebugInfo != nil && len(info.TraceDebugInfo) > n {
		return fmt.Errorf("%d traces for a %d-tx bundle", len(info.TraceDebugInfo), n)
	}
	return nil
}
