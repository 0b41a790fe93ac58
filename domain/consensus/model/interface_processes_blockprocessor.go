package model

import "github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"

// BlockProcessor is responsible for processing incoming blocks
// and inserting them into the chain index
type BlockProcessor interface {
	InsertGenesis(genesis *externalapi.DomainBlock) (*ChainNode, error)
	ValidateAndInsertBlock(block *externalapi.DomainBlock) (*ChainNode, error)
}
