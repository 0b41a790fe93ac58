package stakemodifiermanager

import (
	"time"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/netcoin-project/netcoind/infrastructure/metrics"
	"github.com/pkg/errors"
)

type stakeModifierManager struct {
	params     *chaincfg.Params
	chainIndex model.ChainIndexReader
}

// New instantiates a new StakeModifierManager
func New(params *chaincfg.Params, chainIndex model.ChainIndexReader) model.StakeModifierManager {
	return &stakeModifierManager{
		params:     params,
		chainIndex: chainIndex,
	}
}

func (smm *stakeModifierManager) modifierIntervalSeconds() int64 {
	return int64(smm.params.StakeModifierInterval() / time.Second)
}

// lastStakeModifier returns the most recently generated stake modifier at or
// before node, along with the timestamp of the block that generated it.
func (smm *stakeModifierManager) lastStakeModifier(node *model.ChainNode) (uint64, int64, error) {
	for !node.GeneratedStakeModifier() && !node.IsGenesis() {
		node = smm.chainIndex.Parent(node)
	}
	if !node.GeneratedStakeModifier() {
		return 0, 0, errors.Errorf("no stake modifier generation at genesis block %s", node.Hash())
	}
	return node.StakeModifier(), node.TimeInSeconds(), nil
}

// ComputeNextStakeModifier returns the stake modifier of a block extending
// prev, and whether that block generates it. A new modifier is generated at
// most once per modifier interval; it gets one bit from each of 64 blocks
// drawn from the selection interval preceding the interval of prev.
func (smm *stakeModifierManager) ComputeNextStakeModifier(prev *model.ChainNode) (uint64, bool, error) {
	// Genesis block's modifier is 0
	if prev == nil {
		return 0, true, nil
	}

	modifier, modifierTime, err := smm.lastStakeModifier(prev)
	if err != nil {
		return 0, false, err
	}

	interval := smm.modifierIntervalSeconds()
	if modifierTime/interval >= prev.TimeInSeconds()/interval {
		return modifier, false, nil
	}

	selectionIntervalStart := (prev.TimeInSeconds()/interval)*interval - smm.StakeModifierSelectionInterval()
	candidates := smm.collectCandidates(prev, selectionIntervalStart)

	rounds := len(candidates)
	if rounds > selectionRounds {
		rounds = selectionRounds
	}

	var newModifier uint64
	selectionIntervalStop := selectionIntervalStart
	selected := make(map[externalapi.DomainHash]struct{}, rounds)
	for round := 0; round < rounds; round++ {
		selectionIntervalStop += smm.selectionIntervalSection(round)
		node, err := smm.selectBlockFromCandidates(candidates, selected, selectionIntervalStop, modifier)
		if err != nil {
			return 0, false, err
		}
		if node == nil {
			return 0, false, errors.Errorf("unable to select a block at round %d of the stake modifier "+
				"on top of block %s", round, prev.Hash())
		}
		newModifier |= uint64(node.StakeEntropyBit()) << uint(round)
		selected[*node.Hash()] = struct{}{}
		log.Tracef("Selected round %d stop=%d height=%d bit=%d", round, selectionIntervalStop,
			node.Height(), node.StakeEntropyBit())
	}

	log.Debugf("New stake modifier %016x on top of block %s at height %d (%d candidates)",
		newModifier, prev.Hash(), prev.Height(), len(candidates))
	metrics.ObserveStakeModifierGenerated()
	return newModifier, true, nil
}

// KernelStakeModifier returns the stake modifier that hashes kernels of
// coins from the given block: the first modifier generated at least a
// selection interval after that block. It walks forward along the main
// chain and fails with ErrNotEnoughConfirmations if the tip is reached first.
func (smm *stakeModifierManager) KernelStakeModifier(hashBlockFrom *externalapi.DomainHash, adjustedTime int64) (
	modifier uint64, height uint32, blockTime int64, err error) {

	from, ok := smm.chainIndex.LookupByHash(hashBlockFrom)
	if !ok {
		return 0, 0, 0, errors.Errorf("block %s is not indexed", hashBlockFrom)
	}
	height = from.Height()
	blockTime = from.TimeInSeconds()

	selectionInterval := smm.StakeModifierSelectionInterval()
	node := from
	for blockTime < from.TimeInSeconds()+selectionInterval {
		next := smm.chainIndex.Next(node)
		if next == nil {
			// Reached best block; may happen if node is behind on block chain
			minAge := int64(smm.params.StakeMinAge() / time.Second)
			if node.TimeInSeconds()+minAge-selectionInterval > adjustedTime {
				return 0, 0, 0, errors.Errorf("reached best block %s at height %d from block %s",
					node.Hash(), node.Height(), hashBlockFrom)
			}
			return 0, 0, 0, ruleerrors.NewErrNotEnoughConfirmations(hashBlockFrom, node.Hash(), node.Height())
		}
		node = next
		if node.GeneratedStakeModifier() {
			height = node.Height()
			blockTime = node.TimeInSeconds()
		}
	}
	return node.StakeModifier(), height, blockTime, nil
}

// StakeModifierChecksum returns the running checksum of a block with the
// given stake data extending prev. It commits to the block flags, the proof
// hash and the stake modifier. prev is nil for the genesis.
func (smm *stakeModifierManager) StakeModifierChecksum(prev *model.ChainNode, stake *model.StakeData) uint32 {
	writer := hashes.NewHash256Writer()
	if prev != nil {
		writer.WriteUint32(prev.StakeModifierChecksum())
	}
	writer.WriteUint32(stake.Flags())
	writer.WriteHash(&stake.ProofHash)
	writer.WriteUint64(stake.StakeModifier)

	// The checksum is the top 32 bits of the hash
	checksum := hashes.ToBig(hashes.ShiftRight(writer.Finalize(), 256-32))
	return uint32(checksum.Uint64())
}

// CheckStakeModifierCheckpoints checks the stake modifier checksum against
// the network's hard checkpoints. Heights without a checkpoint always pass.
func (smm *stakeModifierManager) CheckStakeModifierCheckpoints(height uint32, checksum uint32) error {
	expected, ok := smm.params.StakeModifierCheckpoint(height)
	if ok && checksum != expected {
		return errors.Wrapf(ruleerrors.ErrStakeModifierCheckpoint,
			"stake modifier checksum %08x at height %d differs from checkpoint %08x", checksum, height, expected)
	}
	return nil
}
