package model

import "github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"

// ChainIndexReader exposes read access to the chain index
type ChainIndexReader interface {
	LookupByHash(hash *externalapi.DomainHash) (*ChainNode, bool)
	Contains(hash *externalapi.DomainHash) bool
	Parent(node *ChainNode) *ChainNode
	Next(node *ChainNode) *ChainNode
	Ancestor(node *ChainNode, height uint32) *ChainNode
	Tip() *ChainNode
	Count() int
}

// ChainIndex is the chain index together with its single write operation
type ChainIndex interface {
	ChainIndexReader
	Insert(header *externalapi.DomainBlockHeader, stake *StakeData) (*ChainNode, error)
}
