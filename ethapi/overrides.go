package ethapi

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AccountOverride replaces parts of one account before the bundle runs.
// State and StateDiff are mutually exclusive node-side; the client does
// not enforce that.
type AccountOverride struct {
	Nonce     *hexutil.Uint64             `json:"nonce,omitempty"`
	Code      *hexutil.Bytes              `json:"code,omitempty"`
	Balance   *hexutil.Big                `json:"balance,omitempty"`
	State     map[common.Hash]common.Hash `json:"state,omitempty"`
	StateDiff map[common.Hash]common.Hash `json:"stateDiff,omitempty"`
}

// StateOverride maps accounts to their overrides.
type StateOverride map[common.Address]AccountOverride

// BlockOverrides replaces block-context values for the simulated block.
type BlockOverrides struct {
	Number      *hexutil.Big    `json:"number,omitempty"`
	Difficulty  *hexutil.Big    `json:"difficulty,omitempty"`
	Time        *hexutil.Uint64 `json:"time,omitempty"`
	GasLimit    *hexutil.Uint64 `json:"gasLimit,omitempty"`
	Coinbase    *common.Address `json:"coinbase,omitempty"`
	Random      *common.Hash    `json:"random,omitempty"`
	BaseFee     *hexutil.Big    `json:"baseFee,omitempty"`
	BlobBaseFee *hexutil.Big    `json:"blobBaseFee,omitempty"`
}
