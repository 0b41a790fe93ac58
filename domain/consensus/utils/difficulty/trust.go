package difficulty

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
)

// BlockTrust returns the trust a block with the given compact target adds to
// its chain: 2^256 / (target+1). Blocks with a non-positive target add none.
func BlockTrust(bits uint32) *big.Int {
	return blockchain.CalcWork(bits)
}
