package consensus

import (
	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/datastructures/chainindex"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/processes/blockprocessor"
	"github.com/netcoin-project/netcoind/domain/consensus/processes/coinbasemanager"
	"github.com/netcoin-project/netcoind/domain/consensus/processes/difficultymanager"
	"github.com/netcoin-project/netcoind/domain/consensus/processes/kernelvalidator"
	"github.com/netcoin-project/netcoind/domain/consensus/processes/stakemodifiermanager"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/mtrandom"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/txscriptverifier"
)

// Stores is the persistence a Consensus reads spent transactions from and
// writes accepted blocks to
type Stores interface {
	model.TransactionStore
	model.BlockTransactionMapStore
	model.BlockStore
	model.BlockWriter
}

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(params *chaincfg.Params, stores Stores, timeSource model.TimeSource) Consensus
}

type factory struct{}

// NewFactory creates a new Consensus factory
func NewFactory() Factory {
	return &factory{}
}

// NewConsensus instantiates a new Consensus over an empty chain index
func (f *factory) NewConsensus(params *chaincfg.Params, stores Stores, timeSource model.TimeSource) Consensus {
	// Data Structures
	chainIndex := chainindex.New()

	// Processes
	difficultyManager := difficultymanager.New(params, chainIndex)
	stakeModifierManager := stakemodifiermanager.New(params, chainIndex)
	scriptVerifier := txscriptverifier.New(params, txscriptverifier.DefaultSigCacheSize)
	kernelValidator := kernelvalidator.New(
		params,
		stakeModifierManager,
		stores,
		stores,
		stores,
		scriptVerifier)
	coinbaseManager := coinbasemanager.New(params, mtrandom.JackpotV1{})
	blockProcessor := blockprocessor.New(
		params,
		chainIndex,
		timeSource,
		difficultyManager,
		stakeModifierManager,
		kernelValidator,
		coinbaseManager,
		stores,
		stores,
		stores)

	log.Debugf("Created a consensus for network %s", params.Name())

	return &consensus{
		params:     params,
		chainIndex: chainIndex,

		blockProcessor:       blockProcessor,
		difficultyManager:    difficultyManager,
		stakeModifierManager: stakeModifierManager,
		coinbaseManager:      coinbaseManager,

		blockStore: stores,
	}
}
