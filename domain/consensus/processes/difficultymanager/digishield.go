package difficultymanager

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

// nextTrustDigiShield retargets every block from the spacing between the
// last two blocks of the requested type. Proof-of-work and proof-of-stake
// blocks each target twice the overall spacing.
func (dm *difficultyManager) nextTrustDigiShield(last *model.ChainNode, proofOfStake bool) difficulty.Target {
	retargetTimespan := seconds(dm.params.PowTargetSpacing()) * 2
	actualTimespan, ok := dm.lastSpacing(last, proofOfStake)
	if !ok {
		return dm.params.PowLimit()
	}

	// Amplitude filter
	actualTimespan = retargetTimespan + (actualTimespan-retargetTimespan)/8
	if actualTimespan < retargetTimespan-retargetTimespan/4 {
		actualTimespan = retargetTimespan - retargetTimespan/4
	}
	if actualTimespan > retargetTimespan+retargetTimespan/2 {
		actualTimespan = retargetTimespan + retargetTimespan/2
	}

	newTarget := difficulty.FromCompact(last.Bits()).MulInt64(actualTimespan).DivInt64(retargetTimespan)
	return newTarget.Min(dm.params.PowLimit())
}

// Adjustment bounds of nextWorkRequiredV2, in percent.
const (
	digiShieldMaxAdjustDown = 40
	digiShieldMaxAdjustUp   = 20
)

// nextWorkRequiredV2 is DigiShield without the amplitude filter, targeting
// the overall spacing.
func (dm *difficultyManager) nextWorkRequiredV2(last *model.ChainNode, proofOfStake bool) difficulty.Target {
	retargetTimespan := seconds(dm.params.PowTargetSpacing())
	minActualTimespan := retargetTimespan * (100 - digiShieldMaxAdjustUp) / 100
	maxActualTimespan := retargetTimespan * (100 + digiShieldMaxAdjustDown) / 100

	actualTimespan, ok := dm.lastSpacing(last, proofOfStake)
	if !ok {
		return dm.params.PowLimit()
	}
	if actualTimespan < minActualTimespan {
		actualTimespan = minActualTimespan
	}
	if actualTimespan > maxActualTimespan {
		actualTimespan = maxActualTimespan
	}

	newTarget := difficulty.FromCompact(last.Bits()).MulInt64(actualTimespan).DivInt64(retargetTimespan)
	return newTarget.Min(dm.params.PowLimit())
}

// lastSpacing returns the time between the last two blocks of the requested
// type at or below last. With a single such block the spacing is zero.
func (dm *difficultyManager) lastSpacing(last *model.ChainNode, proofOfStake bool) (int64, bool) {
	prev := dm.LastBlockIndex(last, proofOfStake)
	if prev == nil {
		return 0, false
	}
	prevPrev := dm.LastBlockIndex(dm.chainIndex.Parent(prev), proofOfStake)
	if prevPrev == nil {
		prevPrev = prev
	}
	return prev.TimeInSeconds() - prevPrev.TimeInSeconds(), true
}
