package ethapi

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallRequest describes one call of a simulation bundle. The node owns
// this shape; the client only round-trips it through serialization.
type CallRequest struct {
	From                 *common.Address   `json:"from,omitempty"`
	To                   *common.Address   `json:"to,omitempty"`
	Gas                  *hexutil.Uint64   `json:"gas,omitempty"`
	GasPrice             *hexutil.Big      `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big      `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big      `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big      `json:"value,omitempty"`
	Nonce                *hexutil.Uint64   `json:"nonce,omitempty"`
	Data                 *hexutil.Bytes    `json:"data,omitempty"`
	Input                *hexutil.Bytes    `json:"input,omitempty"`
	AccessList           *types.AccessList `json:"accessList,omitempty"`
	ChainID              *hexutil.Big      `json:"chainId,omitempty"`
	MaxFeePerBlobGas     *hexutil.Big      `json:"maxFeePerBlobGas,omitempty"`
	BlobVersionedHashes  []common.Hash     `json:"blobVersionedHashes,omitempty"`
}
