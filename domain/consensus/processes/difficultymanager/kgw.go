package difficultymanager

import (
	"math"
	"math/big"

	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

// Kimoto Gravity Well window, in blocks of a fixed one minute spacing.
const (
	kgwBlockSpacingSeconds = 60
	kgwPastBlocksMin       = uint64(constants.SecondsPerDay*0.01) / kgwBlockSpacingSeconds
	kgwPastBlocksMax       = uint64(constants.SecondsPerDay*0.14) / kgwBlockSpacingSeconds
)

// nextWorkRequiredKGW retargets with the Kimoto Gravity Well: a running
// average over a window that ends early once block times deviate beyond
// the event horizon.
func (dm *difficultyManager) nextWorkRequiredKGW(last *model.ChainNode) difficulty.Target {
	powLimit := dm.params.PowLimit()
	if last == nil || last.Height() == 0 || uint64(last.Height()) < kgwPastBlocksMin {
		return powLimit
	}

	var (
		pastBlocksMass        uint64
		pastRateActualSeconds int64
		pastRateTargetSeconds int64
		average               *big.Int
		averagePrev           *big.Int
	)

	reading := last
	for i := uint64(1); reading != nil && reading.Height() > 0; i++ {
		if i > kgwPastBlocksMax {
			break
		}
		pastBlocksMass++

		readingTarget := difficulty.FromCompact(reading.Bits()).ToBig()
		if i == 1 {
			average = readingTarget
		} else {
			average = new(big.Int).Sub(readingTarget, averagePrev)
			average.Quo(average, new(big.Int).SetUint64(i))
			average.Add(average, averagePrev)
		}
		averagePrev = average

		pastRateActualSeconds = last.TimeInSeconds() - reading.TimeInSeconds()
		pastRateTargetSeconds = int64(kgwBlockSpacingSeconds * pastBlocksMass)
		if pastRateActualSeconds < 0 {
			pastRateActualSeconds = 0
		}
		adjustmentRatio := 1.0
		if pastRateActualSeconds != 0 && pastRateTargetSeconds != 0 {
			adjustmentRatio = float64(pastRateTargetSeconds) / float64(pastRateActualSeconds)
		}
		eventHorizonFast := 1.0 + 0.7084*math.Pow(float64(pastBlocksMass)/144.0, -1.228)
		eventHorizonSlow := 1.0 / eventHorizonFast

		if pastBlocksMass >= kgwPastBlocksMin &&
			(adjustmentRatio <= eventHorizonSlow || adjustmentRatio >= eventHorizonFast) {
			break
		}
		parent := dm.chainIndex.Parent(reading)
		if parent == nil {
			break
		}
		reading = parent
	}

	newTarget := difficulty.FromBig(average)
	if pastRateActualSeconds != 0 && pastRateTargetSeconds != 0 {
		newTarget = newTarget.MulInt64(pastRateActualSeconds).DivInt64(pastRateTargetSeconds)
	}
	log.Debugf("KGW retarget over %d blocks: actual %ds, target %ds", pastBlocksMass,
		pastRateActualSeconds, pastRateTargetSeconds)
	return newTarget.Min(powLimit)
}
