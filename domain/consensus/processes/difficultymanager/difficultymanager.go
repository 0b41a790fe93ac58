package difficultymanager

import (
	"time"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/netcoin-project/netcoind/infrastructure/metrics"
	"github.com/pkg/errors"
)

// DifficultyManager provides a method to resolve the
// difficulty value of a block
type difficultyManager struct {
	params     *chaincfg.Params
	chainIndex model.ChainIndexReader
}

// New instantiates a new DifficultyManager
func New(params *chaincfg.Params, chainIndex model.ChainIndexReader) model.DifficultyManager {
	return &difficultyManager{
		params:     params,
		chainIndex: chainIndex,
	}
}

// NextWorkRequired returns the target a block extending last must meet.
// newBlockTime is only consulted by the min-difficulty rule of networks
// that allow it.
func (dm *difficultyManager) NextWorkRequired(last *model.ChainNode, newBlockTime int64,
	proofOfStake bool) (difficulty.Target, error) {

	// Genesis block
	if last == nil {
		return dm.params.PowLimit(), nil
	}

	reference := last
	if !proofOfStake {
		reference = dm.LastBlockIndex(last, false)
	}
	algorithm := SelectAlgorithm(dm.params, proofOfStake, reference.Height())
	log.Tracef("Retargeting on top of block %s at height %d with %s", last.Hash(), last.Height(), algorithm)
	metrics.ObserveDifficultyAlgorithm(algorithm.String())

	var target difficulty.Target
	var err error
	switch algorithm {
	case AlgorithmV1:
		target, err = dm.nextWorkRequiredV1(reference, newBlockTime)
	case AlgorithmKGW:
		target = dm.nextWorkRequiredKGW(reference)
	case AlgorithmDigiShieldA:
		target = dm.nextTrustDigiShield(reference, proofOfStake)
	case AlgorithmDigiShieldB:
		target = dm.nextWorkRequiredV2(reference, proofOfStake)
	case AlgorithmPoSContinuous:
		target = dm.nextTargetRequired(reference)
	default:
		return difficulty.Target{}, errors.Errorf("unknown retargeting algorithm %d", algorithm)
	}
	if err != nil {
		return difficulty.Target{}, err
	}

	log.Debugf("Required target on top of block %s (%s): %08x", last.Hash(), algorithm, target.ToCompact())
	return target, nil
}

// LastBlockIndex walks back from node to the closest block of the requested
// type. It stops at the genesis, which is returned even if its type doesn't
// match.
func (dm *difficultyManager) LastBlockIndex(node *model.ChainNode, proofOfStake bool) *model.ChainNode {
	for node != nil && !node.IsGenesis() && node.IsProofOfStake() != proofOfStake {
		node = dm.chainIndex.Parent(node)
	}
	return node
}

// CheckProofOfWork checks that powHash meets the target encoded by bits and
// that the target lies within the network's proof-of-work limit.
func (dm *difficultyManager) CheckProofOfWork(powHash *externalapi.DomainHash, bits uint32) error {
	target := difficulty.FromCompact(bits)
	if target.IsZero() {
		return errors.Wrapf(ruleerrors.ErrNegativeTarget, "block target difficulty of %08x is not positive", bits)
	}
	if target.Cmp(dm.params.PowLimit()) > 0 {
		return errors.Wrapf(ruleerrors.ErrTargetTooHigh, "block target difficulty of %s is higher than max of %s",
			target, dm.params.PowLimit())
	}
	if !target.Meets(powHash) {
		return errors.Wrapf(ruleerrors.ErrInvalidPoW, "block proof-of-work hash %s is higher than expected max of %s",
			powHash, target)
	}
	return nil
}

// ProtocolRetargetingFixed returns whether a negative proof-of-stake spacing
// is replaced by the nominal spacing when retargeting on top of height.
func ProtocolRetargetingFixed(params *chaincfg.Params, height uint32) bool {
	return params.AllowMinDifficultyBlocks() || height > params.Forks().RetargetFix
}

// ComputeMinWork returns the easiest proof-of-work target that could be
// required duration after a block that required base.
func ComputeMinWork(params *chaincfg.Params, base uint32, duration time.Duration) uint32 {
	return computeMaxBits(params, params.PowLimit(), base, duration)
}

// ComputeMinStake returns the easiest proof-of-stake target that could be
// required duration after a block that required base.
func ComputeMinStake(params *chaincfg.Params, base uint32, duration time.Duration) uint32 {
	return computeMaxBits(params, params.PosLimit(), base, duration)
}

func computeMaxBits(params *chaincfg.Params, limit difficulty.Target, base uint32, duration time.Duration) uint32 {
	// Testnet has min-difficulty blocks after twice the target spacing.
	if params.AllowMinDifficultyBlocks() && duration > 2*params.PowTargetSpacing() {
		return limit.ToCompact()
	}
	return difficulty.ComputeMaxBits(limit, base, duration, params.PowTargetTimespan())
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
