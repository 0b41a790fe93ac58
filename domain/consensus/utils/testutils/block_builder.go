package testutils

import (
	"math"
	"testing"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

// CoinbaseTransaction returns a coinbase for the given height with one
// anyone-can-spend output per value.
func CoinbaseTransaction(height uint32, blockTime int64, values ...int64) *externalapi.DomainTransaction {
	tx := &externalapi.DomainTransaction{
		Version: constants.TransactionVersion,
		Time:    uint32(blockTime),
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{Index: math.MaxUint32},
			SignatureScript:  []byte{byte(height), byte(height >> 8), byte(height >> 16)},
			Sequence:         math.MaxUint32,
		}},
	}
	for _, value := range values {
		tx.Outputs = append(tx.Outputs, &externalapi.DomainTransactionOutput{
			Value:           value,
			ScriptPublicKey: OpTrueScript(),
		})
	}
	return tx
}

// NewBlock returns an unsolved block with the given transactions and the
// merkle root committing to them.
func NewBlock(prevHash *externalapi.DomainHash, blockTime int64, bits uint32,
	transactions ...*externalapi.DomainTransaction) *externalapi.DomainBlock {

	header := externalapi.NewDomainBlockHeader(constants.BlockVersion, prevHash,
		consensushashing.MerkleRoot(transactions), blockTime, bits, 0)
	return &externalapi.DomainBlock{Header: header, Transactions: transactions}
}

// UpdateMerkleRoot recommits the header of block to its transactions after
// they were changed.
func UpdateMerkleRoot(block *externalapi.DomainBlock) {
	block.Header.MerkleRoot = *consensushashing.MerkleRoot(block.Transactions)
}

// SolveBlock searches for a nonce whose proof-of-work hash meets the
// block's own bits. It is meant for the easy targets of regtest.
func SolveBlock(t testing.TB, block *externalapi.DomainBlock) {
	t.Helper()

	target := difficulty.FromCompact(block.Header.Bits)
	for nonce := uint32(0); nonce < 10000; nonce++ {
		block.Header.Nonce = nonce
		if target.Meets(consensushashing.ProofOfWorkHash(block.Header)) {
			return
		}
	}
	t.Fatalf("no nonce found for bits %08x", block.Header.Bits)
}
