package externalapi

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// DomainBlockHeader is the 80-byte block header shared with Bitcoin.
type DomainBlockHeader = wire.BlockHeader

// DomainBlock represents a Netcoin block
type DomainBlock struct {
	Header       *DomainBlockHeader
	Transactions []*DomainTransaction

	// Signature is the block signature of proof-of-stake blocks. It's
	// empty for proof-of-work blocks.
	Signature []byte
}

// IsProofOfStake returns whether the block's second transaction is a coinstake.
func (block *DomainBlock) IsProofOfStake() bool {
	return len(block.Transactions) > 1 && block.Transactions[1].IsCoinStake()
}

// TimeInSeconds returns the header timestamp as unix seconds.
func (block *DomainBlock) TimeInSeconds() int64 {
	return block.Header.Timestamp.Unix()
}

// NewDomainBlockHeader builds a header from its consensus fields.
func NewDomainBlockHeader(version int32, prevBlockHash, merkleRoot *DomainHash,
	timeInSeconds int64, bits uint32, nonce uint32) *DomainBlockHeader {

	return &DomainBlockHeader{
		Version:    version,
		PrevBlock:  *prevBlockHash,
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(timeInSeconds, 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}
