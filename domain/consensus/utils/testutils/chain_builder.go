package testutils

import (
	"testing"

	"github.com/netcoin-project/netcoind/domain/consensus/datastructures/chainindex"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
)

// ChainBuilder inserts synthetic headers into a fresh chain index. Every
// header gets a distinct nonce, so two builders fed the same calls produce
// identical chains.
type ChainBuilder struct {
	t     testing.TB
	Index model.ChainIndex
	nonce uint32
}

// NewChainBuilder returns a ChainBuilder over an empty chain index.
func NewChainBuilder(t testing.TB) *ChainBuilder {
	return &ChainBuilder{t: t, Index: chainindex.New()}
}

// NewHeader returns the next header extending parent. A nil parent yields
// a genesis header.
func (b *ChainBuilder) NewHeader(parent *model.ChainNode, blockTime int64, bits uint32) *externalapi.DomainBlockHeader {
	prevHash := &externalapi.DomainHash{}
	if parent != nil {
		prevHash = parent.Hash()
	}
	b.nonce++
	return externalapi.NewDomainBlockHeader(constants.BlockVersion, prevHash, &externalapi.DomainHash{},
		blockTime, bits, b.nonce)
}

// Extend inserts a block with the given time and bits on top of parent. A
// nil stake inserts a proof-of-work block, whose proof hash is zero. A
// proof-of-stake stake without a proof hash gets the block hash.
func (b *ChainBuilder) Extend(parent *model.ChainNode, blockTime int64, bits uint32,
	stake *model.StakeData) *model.ChainNode {

	b.t.Helper()

	header := b.NewHeader(parent, blockTime, bits)
	hash := consensushashing.HeaderHash(header)

	var data model.StakeData
	if stake != nil {
		data = *stake
	} else {
		data.StakeEntropyBit = consensushashing.StakeEntropyBit(hash)
	}
	if data.ProofOfStake && data.ProofHash == (externalapi.DomainHash{}) {
		data.ProofHash = *hash
	}

	node, err := b.Index.Insert(header, &data)
	if err != nil {
		b.t.Fatalf("Insert: %+v", err)
	}
	return node
}

// ExtendN inserts count blocks spaced by spacing seconds on top of the
// non-nil parent and returns them in order. isProofOfStake picks the type of
// the i-th block; a nil selector yields proof-of-work blocks.
func (b *ChainBuilder) ExtendN(parent *model.ChainNode, count int, spacing int64, bits uint32,
	isProofOfStake func(i int) bool) []*model.ChainNode {

	b.t.Helper()

	nodes := make([]*model.ChainNode, 0, count)
	for i := 0; i < count; i++ {
		blockTime := parent.TimeInSeconds() + spacing
		var stake *model.StakeData
		if isProofOfStake != nil && isProofOfStake(i) {
			stake = &model.StakeData{ProofOfStake: true}
		}
		parent = b.Extend(parent, blockTime, bits, stake)
		nodes = append(nodes, parent)
	}
	return nodes
}

// AllProofOfStake is an ExtendN selector that yields proof-of-stake blocks only.
func AllProofOfStake(int) bool { return true }
