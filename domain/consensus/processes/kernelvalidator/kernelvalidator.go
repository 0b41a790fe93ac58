package kernelvalidator

import (
	"math/big"
	"time"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/serialization"
	"github.com/netcoin-project/netcoind/infrastructure/metrics"
	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mocks_test.go -package=kernelvalidator github.com/netcoin-project/netcoind/domain/consensus/model TransactionStore,BlockTransactionMapStore,BlockStore,ScriptVerifier,StakeModifierManager

// kernelValidator checks coinstake kernels against the coin-day weighted
// proof-of-stake target
type kernelValidator struct {
	params *chaincfg.Params

	stakeModifierManager     model.StakeModifierManager
	transactionStore         model.TransactionStore
	blockTransactionMapStore model.BlockTransactionMapStore
	blockStore               model.BlockStore
	scriptVerifier           model.ScriptVerifier
}

// New instantiates a new KernelValidator
func New(params *chaincfg.Params,
	stakeModifierManager model.StakeModifierManager,
	transactionStore model.TransactionStore,
	blockTransactionMapStore model.BlockTransactionMapStore,
	blockStore model.BlockStore,
	scriptVerifier model.ScriptVerifier) model.KernelValidator {

	return &kernelValidator{
		params:                   params,
		stakeModifierManager:     stakeModifierManager,
		transactionStore:         transactionStore,
		blockTransactionMapStore: blockTransactionMapStore,
		blockStore:               blockStore,
		scriptVerifier:           scriptVerifier,
	}
}

// CheckStakeKernelHash checks that the kernel built from the staked output
// meets the target:
//
//	hash(modifier + blockFrom.time + txPrev.offset + txPrev.time + prevout.n + txTime) <= target * coinDayWeight
//
// txPrev.time is committed as blockFrom.time. It returns the kernel hash and
// the coin-day weighted target.
func (kv *kernelValidator) CheckStakeKernelHash(bits uint32, blockFrom *externalapi.DomainBlock,
	txPrevOffset uint32, txPrev *externalapi.DomainTransaction, prevout *externalapi.DomainOutpoint,
	txTime uint32, adjustedTime int64) (proofHash *externalapi.DomainHash, target difficulty.Target, err error) {

	defer func() { metrics.ObserveKernelCheck(err) }()

	timeBlockFrom := blockFrom.TimeInSeconds()
	minAge := seconds(kv.params.StakeMinAge())
	if timeBlockFrom+minAge > int64(txTime) {
		return nil, difficulty.Target{}, errors.Wrapf(ruleerrors.ErrMinAgeViolation,
			"coinstake time %d is less than %s after the time %d of the staked block",
			txTime, kv.params.StakeMinAge(), timeBlockFrom)
	}
	if int(prevout.Index) >= len(txPrev.Outputs) {
		return nil, difficulty.Target{}, errors.Wrapf(ruleerrors.ErrBadStakePrevout,
			"kernel spends output %d of transaction %s which has %d outputs",
			prevout.Index, prevout.TransactionID, len(txPrev.Outputs))
	}

	valueIn := txPrev.Outputs[prevout.Index].Value
	coinDayWeight := kv.coinDayWeight(valueIn, timeBlockFrom, int64(txTime))
	target = difficulty.FromCompact(bits).MulBig(coinDayWeight)

	hashBlockFrom := consensushashing.BlockHash(blockFrom)
	modifier, modifierHeight, modifierTime, err := kv.stakeModifierManager.KernelStakeModifier(hashBlockFrom, adjustedTime)
	if err != nil {
		return nil, difficulty.Target{}, err
	}

	writer := hashes.NewHash256Writer()
	writer.WriteUint64(modifier)
	writer.WriteUint32(uint32(timeBlockFrom))
	writer.WriteUint32(txPrevOffset)
	writer.WriteUint32(uint32(timeBlockFrom))
	writer.WriteUint32(prevout.Index)
	writer.WriteUint32(txTime)
	proofHash = writer.Finalize()

	log.Tracef("Kernel of %s uses modifier %016x at height %d time %d for block %s time %d, "+
		"offset %d, time %d, proof hash %s", prevout, modifier, modifierHeight, modifierTime,
		hashBlockFrom, timeBlockFrom, txPrevOffset, txTime, proofHash)

	if !target.Meets(proofHash) {
		return proofHash, target, errors.Wrapf(ruleerrors.ErrKernelHashAboveTarget,
			"kernel hash %s of %s is higher than the coin-day weighted target %s", proofHash, prevout, target)
	}
	return proofHash, target, nil
}

// coinDayWeight returns the value times the stake age in excess of the
// minimum age, capped at the maximum age, in coin-days.
func (kv *kernelValidator) coinDayWeight(value int64, intervalBeginning, intervalEnd int64) *big.Int {
	weight := intervalEnd - intervalBeginning - seconds(kv.params.StakeMinAge())
	if maxAge := seconds(kv.params.StakeMaxAge()); weight > maxAge {
		weight = maxAge
	}
	coinDayWeight := new(big.Int).Mul(big.NewInt(value), big.NewInt(weight))
	return coinDayWeight.Quo(coinDayWeight, big.NewInt(constants.SatoshiPerCoin*constants.SecondsPerDay))
}

// CheckProofOfStake checks the kernel input of the coinstake tx: it must
// spend an existing output with a valid signature, and satisfy the stake
// kernel hash. height is the height of the block holding tx. A previous
// transaction or block that is not available yet is reported as
// ruleerrors.ErrMissingData.
func (kv *kernelValidator) CheckProofOfStake(tx *externalapi.DomainTransaction, bits uint32, height uint32,
	adjustedTime int64) (
	*externalapi.DomainHash, difficulty.Target, error) {

	if !tx.IsCoinStake() {
		return nil, difficulty.Target{}, errors.Wrapf(ruleerrors.ErrNotCoinStake,
			"called on non-coinstake %s", consensushashing.TransactionID(tx))
	}

	// Kernel (input 0) must match the stake hash target per coin age (bits)
	kernel := tx.Inputs[0]
	prevout := &kernel.PreviousOutpoint

	txPrev, err := kv.transactionStore.Transaction(&prevout.TransactionID)
	if err != nil {
		return nil, difficulty.Target{}, err
	}
	if txPrev == nil {
		return nil, difficulty.Target{}, ruleerrors.NewErrMissingData("previous transaction", &prevout.TransactionID)
	}
	if *consensushashing.TransactionID(txPrev) != prevout.TransactionID {
		return nil, difficulty.Target{}, errors.Errorf("transaction store returned %s when asked for %s",
			consensushashing.TransactionID(txPrev), prevout.TransactionID)
	}
	if int(prevout.Index) >= len(txPrev.Outputs) {
		return nil, difficulty.Target{}, errors.Wrapf(ruleerrors.ErrBadStakePrevout,
			"kernel spends output %d of transaction %s which has %d outputs",
			prevout.Index, prevout.TransactionID, len(txPrev.Outputs))
	}

	err = kv.scriptVerifier.Verify(tx, 0, txPrev.Outputs[prevout.Index], height)
	if err != nil {
		return nil, difficulty.Target{}, err
	}

	blockHash, err := kv.blockTransactionMapStore.BlockHash(&prevout.TransactionID)
	if err != nil {
		return nil, difficulty.Target{}, err
	}
	if blockHash == nil {
		return nil, difficulty.Target{}, ruleerrors.NewErrMissingData("block of transaction", &prevout.TransactionID)
	}
	blockFrom, err := kv.blockStore.Block(blockHash)
	if err != nil {
		return nil, difficulty.Target{}, err
	}
	if blockFrom == nil {
		return nil, difficulty.Target{}, ruleerrors.NewErrMissingData("block", blockHash)
	}

	txIndex := consensushashing.TransactionIndex(blockFrom, &prevout.TransactionID)
	if txIndex < 0 {
		return nil, difficulty.Target{}, errors.Errorf("block %s does not contain transaction %s",
			blockHash, prevout.TransactionID)
	}
	txPrevOffset, err := serialization.TransactionOffset(blockFrom, txIndex)
	if err != nil {
		return nil, difficulty.Target{}, err
	}

	proofHash, target, err := kv.CheckStakeKernelHash(bits, blockFrom, txPrevOffset, txPrev, prevout,
		tx.Time, adjustedTime)
	if err != nil {
		return proofHash, target, errors.Wrapf(err, "check kernel failed on coinstake %s",
			consensushashing.TransactionID(tx))
	}
	log.Debugf("Coinstake %s passed the kernel check with proof hash %s", consensushashing.TransactionID(tx), proofHash)
	return proofHash, target, nil
}

// CheckCoinStakeTimestamp checks that a coinstake carries the timestamp of
// its block.
func (kv *kernelValidator) CheckCoinStakeTimestamp(blockTime, txTime int64) error {
	if blockTime != txTime {
		return errors.Wrapf(ruleerrors.ErrCoinStakeTimestamp,
			"coinstake time %d differs from block time %d", txTime, blockTime)
	}
	return nil
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
