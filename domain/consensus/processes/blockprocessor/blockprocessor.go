package blockprocessor

import (
	"time"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/infrastructure/logger"
	"github.com/netcoin-project/netcoind/infrastructure/metrics"
)

// blockProcessor is responsible for validating incoming blocks
// and inserting them into the chain index
type blockProcessor struct {
	params     *chaincfg.Params
	chainIndex model.ChainIndex
	timeSource model.TimeSource

	difficultyManager    model.DifficultyManager
	stakeModifierManager model.StakeModifierManager
	kernelValidator      model.KernelValidator
	coinbaseManager      model.CoinbaseManager

	transactionStore         model.TransactionStore
	blockTransactionMapStore model.BlockTransactionMapStore
	blockWriter              model.BlockWriter
}

// New instantiates a new BlockProcessor
func New(
	params *chaincfg.Params,
	chainIndex model.ChainIndex,
	timeSource model.TimeSource,
	difficultyManager model.DifficultyManager,
	stakeModifierManager model.StakeModifierManager,
	kernelValidator model.KernelValidator,
	coinbaseManager model.CoinbaseManager,
	transactionStore model.TransactionStore,
	blockTransactionMapStore model.BlockTransactionMapStore,
	blockWriter model.BlockWriter) model.BlockProcessor {

	return &blockProcessor{
		params:     params,
		chainIndex: chainIndex,
		timeSource: timeSource,

		difficultyManager:    difficultyManager,
		stakeModifierManager: stakeModifierManager,
		kernelValidator:      kernelValidator,
		coinbaseManager:      coinbaseManager,

		transactionStore:         transactionStore,
		blockTransactionMapStore: blockTransactionMapStore,
		blockWriter:              blockWriter,
	}
}

// ValidateAndInsertBlock validates the given block against its parent and,
// if valid, inserts it into the chain index
func (bp *blockProcessor) ValidateAndInsertBlock(block *externalapi.DomainBlock) (*model.ChainNode, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateAndInsertBlock")
	defer onEnd()

	start := time.Now()
	node, err := bp.validateAndInsertBlock(block)
	metrics.ObserveBlock(block.IsProofOfStake(), resultOf(err), start)
	return node, err
}

// InsertGenesis inserts the genesis block of an empty chain index. The
// genesis must be the network's own. Beyond its hash it is trusted: only its
// stake modifier data is computed.
func (bp *blockProcessor) InsertGenesis(genesis *externalapi.DomainBlock) (*model.ChainNode, error) {
	start := time.Now()
	node, err := bp.insertGenesis(genesis)
	metrics.ObserveBlock(false, resultOf(err), start)
	return node, err
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultAccepted
	case ruleerrors.IsRecoverable(err):
		return metrics.ResultRecoverable
	case ruleerrors.IsRuleError(err):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
