package difficultymanager

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// nextWorkRequiredV1 is Netcoin's first retargeting rule: Bitcoin-style
// retargets once per interval, clamped to a factor of four.
func (dm *difficultyManager) nextWorkRequiredV1(last *model.ChainNode, newBlockTime int64) (difficulty.Target, error) {
	powLimit := dm.params.PowLimit()
	if last == nil {
		return powLimit, nil
	}

	interval := dm.params.DifficultyAdjustmentInterval()
	if (int64(last.Height())+1)%interval != 0 {
		if !dm.params.AllowMinDifficultyBlocks() {
			return difficulty.FromCompact(last.Bits()), nil
		}

		// A block more than two spacings after its parent may be mined at
		// the minimum difficulty.
		if newBlockTime > last.TimeInSeconds()+2*seconds(dm.params.PowTargetSpacing()) {
			return powLimit, nil
		}

		// Otherwise return the last target that wasn't set by that rule.
		powLimitBits := powLimit.ToCompact()
		node := last
		for !node.IsGenesis() && int64(node.Height())%interval != 0 && node.Bits() == powLimitBits {
			node = dm.chainIndex.Parent(node)
		}
		return difficulty.FromCompact(node.Bits()), nil
	}

	// Go back the full period unless it's the first retarget after genesis.
	blocksToGoBack := interval
	if int64(last.Height())+1 == interval {
		blocksToGoBack = interval - 1
	}
	first := last
	for i := int64(0); first != nil && i < blocksToGoBack; i++ {
		first = dm.chainIndex.Parent(first)
	}
	if first == nil {
		return difficulty.Target{}, errors.Errorf("retarget window of %d blocks below block %s reaches past genesis",
			blocksToGoBack, last.Hash())
	}

	targetTimespan := seconds(dm.params.PowTargetTimespan())
	actualTimespan := last.TimeInSeconds() - first.TimeInSeconds()
	if actualTimespan < targetTimespan/4 {
		actualTimespan = targetTimespan / 4
	}
	if actualTimespan > targetTimespan*4 {
		actualTimespan = targetTimespan * 4
	}

	newTarget := difficulty.FromCompact(last.Bits()).MulInt64(actualTimespan).DivInt64(targetTimespan)
	log.Debugf("V1 retarget: target timespan %d, actual timespan %d", targetTimespan, actualTimespan)
	return newTarget.Min(powLimit), nil
}
