package coinbasemanager

import (
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
)

// Personalised interest rate (PIR) table. Rates are in percent per coin-year
// and thresholds in coins.
const (
	pirLevels      = 6
	pirPhases      = 3
	pirPhaseBlocks = 365 * 24 * 60
	pirSlices      = 100
)

var pirThresholds = [pirLevels]int64{0, 1_000, 10_000, 100_000, 1_000_000, 10_000_000}

var pirRates = [pirPhases][pirLevels]int64{
	{10, 15, 20, 30, 80, 100},
	{20, 25, 30, 35, 40, 45},
	{2, 4, 6, 7, 8, 10},
}

// pirPhase returns the PIR phase of height, between 0 and pirPhases-1.
func (c *coinbaseManager) pirPhase(height uint32) int {
	phase := (int64(height) - int64(c.params.PIRPhase0Start())) / pirPhaseBlocks
	switch {
	case phase < 0:
		return 0
	case phase > pirPhases-1:
		return pirPhases - 1
	}
	return int(phase)
}

// pirRewardCoinYear returns the yearly reward per coin, in satoshi, of a
// stake of coinValue at height. Within a level the rate is interpolated
// over 100 slices; since thresholds and rates are whole numbers and COIN
// and CENT are multiples of 100, the slices are exact.
func (c *coinbaseManager) pirRewardCoinYear(coinValue int64, height uint32) int64 {
	phase := c.pirPhase(height)

	if coinValue >= pirThresholds[pirLevels-1]*constants.SatoshiPerCoin {
		return pirRates[phase][pirLevels-1] * constants.SatoshiPerCent
	}

	level := 0
	for i := 1; i < pirLevels; i++ {
		if coinValue < pirThresholds[i]*constants.SatoshiPerCoin {
			level = i - 1
			break
		}
	}

	ratePerSlice := (pirRates[phase][level+1] - pirRates[phase][level]) * constants.SatoshiPerCent / pirSlices
	valuePerSlice := (pirThresholds[level+1] - pirThresholds[level]) * constants.SatoshiPerCoin / pirSlices

	testValue := pirThresholds[level] * constants.SatoshiPerCoin
	rewardCoinYear := pirRates[phase][level] * constants.SatoshiPerCent
	for testValue < coinValue {
		testValue += valuePerSlice
		rewardCoinYear += ratePerSlice
	}
	return rewardCoinYear
}

// ProofOfStakeReward returns the reward of a coinstake with the given coin
// age in coin-days and staked value, fees included.
func (c *coinbaseManager) ProofOfStakeReward(height uint32, coinAge int64, coinValue int64, fees int64) int64 {
	rewardCoinYear := c.pirRewardCoinYear(coinValue, height)

	// 33 / (365*33 + 8) is 1 / 365.2424...
	subsidy := coinAge * rewardCoinYear * 33 / (365*33 + 8)

	log.Debugf("Proof-of-stake reward at height %d: PIR=%d create=%d coinAge=%d coinValue=%d fees=%d",
		height, rewardCoinYear, subsidy, coinAge, coinValue, fees)
	return subsidy + fees
}
