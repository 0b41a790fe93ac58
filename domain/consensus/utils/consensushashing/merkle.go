package consensushashing

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
)

// MerkleRoot returns the root of the merkle tree built over the IDs of
// transactions. A level with an odd number of nodes pairs its last node
// with itself. The root of no transactions is the zero hash.
func MerkleRoot(transactions []*externalapi.DomainTransaction) *externalapi.DomainHash {
	if len(transactions) == 0 {
		return &externalapi.DomainHash{}
	}

	level := make([]*externalapi.DomainHash, len(transactions))
	for i, tx := range transactions {
		level[i] = TransactionID(tx)
	}
	for len(level) > 1 {
		next := make([]*externalapi.DomainHash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			branch := blockchain.HashMerkleBranches(level[i], right)
			next = append(next, &branch)
		}
		level = next
	}
	return level[0]
}
