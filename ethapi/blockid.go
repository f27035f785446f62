package ethapi

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// BlockID selects the state a bundle executes against: a block tag or
// number ("pending", "latest", hex number) or an explicit block hash.
// Exactly one of the two fields is set.
type BlockID struct {
	Number *rpc.BlockNumber
	Hash   *common.Hash
}

// BlockIDNumber returns a BlockID for a block number or tag.
func BlockIDNumber(n rpc.BlockNumber) *BlockID {
	return &BlockID{Number: &n}
}

// BlockIDHash returns a BlockID for an explicit block hash.
func BlockIDHash(h common.Hash) *BlockID {
	return &BlockID{Hash: &h}
}

// MarshalJSON writes tags and numbers as strings ("pending", "0x10")
// and hashes as a {"blockHash": ...} object, matching the node's
// BlockNumberOrHash parsing.
func (id BlockID) MarshalJSON() ([]byte, error) {
	if id.Hash != nil {
		return json.Marshal(struct {
			BlockHash common.Hash `json:"blockHash"`
		}{*id.Hash})
	}
	if id.Number != nil {
		return json.Marshal(*id.Number)
	}
	return []byte("null"), nil
}

func (id *BlockID) UnmarshalJSON(data []byte) error {
	var bnh rpc.BlockNumberOrHash
	if err := bnh.UnmarshalJSON(data); err != nil {
		return err
	}
	id.Number, id.Hash = bnh.BlockNumber, bnh.BlockHash
	return nil
}
