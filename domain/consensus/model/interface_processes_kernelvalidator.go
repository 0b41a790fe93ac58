package model

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

// KernelValidator validates coinstake transactions against the stake kernel
// inequality
type KernelValidator interface {
	CheckStakeKernelHash(bits uint32, blockFrom *externalapi.DomainBlock, txPrevOffset uint32,
		txPrev *externalapi.DomainTransaction, prevout *externalapi.DomainOutpoint, txTime uint32,
		adjustedTime int64) (*externalapi.DomainHash, difficulty.Target, error)
	CheckProofOfStake(tx *externalapi.DomainTransaction, bits uint32, height uint32, adjustedTime int64) (
		*externalapi.DomainHash, difficulty.Target, error)
	CheckCoinStakeTimestamp(blockTime, txTime int64) error
}
