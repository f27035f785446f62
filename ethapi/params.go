package ethapi

import "encoding/json"

// MethodSimulateBundle is the node extension method this client speaks.
const MethodSimulateBundle = "cgp_simulateTransactionsBundle"

// BundleParams is the positional parameter tuple of
// cgp_simulateTransactionsBundle. The node addresses parameters by index,
// so every slot is serialized even when the value is unset — this is the
// opposite of the key-omission rule used by EmulateOptions.
type BundleParams struct {
	Transactions   []CallRequest
	BlockID        *BlockID
	BlockOverrides *BlockOverrides
	StateOverrides *StateOverride
	TracingOptions *TracingOptions
}

// MarshalJSON writes the fixed 5-slot array
// [transactions, blockId, blockOverrides, stateOverrides, tracingOptions].
// The slot order is part of the wire contract and must not change.
func (p BundleParams) MarshalJSON() ([]byte, error) {
	txs := p.Transactions
	if txs == nil {
		txs = []CallRequest{}
	}
	return json.Marshal([5]any{txs, p.BlockID, p.BlockOverrides, p.StateOverrides, p.TracingOptions})
}
