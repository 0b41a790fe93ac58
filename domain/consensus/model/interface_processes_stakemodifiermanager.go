package model

import "github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"

// StakeModifierManager derives the stake modifiers that scramble kernel hashes
type StakeModifierManager interface {
	ComputeNextStakeModifier(prev *ChainNode) (modifier uint64, generated bool, err error)
	KernelStakeModifier(hashBlockFrom *externalapi.DomainHash, adjustedTime int64) (
		modifier uint64, height uint32, blockTime int64, err error)
	StakeModifierChecksum(prev *ChainNode, stake *StakeData) uint32
	CheckStakeModifierCheckpoints(height uint32, checksum uint32) error
	StakeModifierSelectionInterval() int64
}
