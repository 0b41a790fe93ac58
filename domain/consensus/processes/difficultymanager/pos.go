package difficultymanager

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

// nextTargetRequired retargets proof-of-stake every block with an
// exponential moving average toward the stake target spacing.
func (dm *difficultyManager) nextTargetRequired(last *model.ChainNode) difficulty.Target {
	targetLimit := dm.params.PosLimit()
	if last == nil {
		return targetLimit
	}

	prev := dm.LastBlockIndex(last, true)
	if prev.IsGenesis() {
		return targetLimit
	}
	prevPrev := dm.LastBlockIndex(dm.chainIndex.Parent(prev), true)
	if prevPrev.IsGenesis() {
		return targetLimit
	}

	actualSpacing := prev.TimeInSeconds() - prevPrev.TimeInSeconds()
	if ProtocolRetargetingFixed(dm.params, last.Height()) && actualSpacing < 0 {
		actualSpacing = seconds(dm.params.PowTargetSpacing())
	}

	interval := int64(dm.params.PowTargetTimespan() / dm.params.StakeTargetSpacing())
	stakeTargetSpacing := seconds(dm.params.StakeTargetSpacing())
	newTarget := difficulty.FromCompact(prev.Bits()).
		MulInt64((interval-1)*stakeTargetSpacing + 2*actualSpacing).
		DivInt64((interval + 1) * stakeTargetSpacing)

	if newTarget.IsZero() || newTarget.Cmp(targetLimit) > 0 {
		return targetLimit
	}
	return newTarget
}
