package model

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

// DifficultyManager provides a method to resolve the
// difficulty value of a block
type DifficultyManager interface {
	NextWorkRequired(last *ChainNode, newBlockTime int64, proofOfStake bool) (difficulty.Target, error)
	CheckProofOfWork(powHash *externalapi.DomainHash, bits uint32) error
	LastBlockIndex(node *ChainNode, proofOfStake bool) *ChainNode
}
