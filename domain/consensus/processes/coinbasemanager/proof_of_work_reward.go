package coinbasemanager

import (
	"strconv"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

const (
	baseSubsidy  = 1024 * constants.SatoshiPerCoin
	fixedSubsidy = 15 * constants.SatoshiPerCoin

	jackpotUpperExclusive = 6000
	jackpotMultiplier     = 8
	jackpotLowExclusive   = 2000
	jackpotHighExclusive  = 2101
)

// earlyBonuses multiply the subsidy of the first week of blocks.
var earlyBonuses = []struct {
	belowHeight uint32
	multiplier  int64
}{
	{2881, 5},  // first 2 days
	{5761, 3},  // next 2 days
	{10081, 2}, // next 3 days
}

// ProofOfWorkReward returns the reward of a proof-of-work block at height
// whose parent is prevHash, fees included.
func (c *coinbaseManager) ProofOfWorkReward(height uint32, fees int64, prevHash *externalapi.DomainHash) (int64, error) {
	schedule := c.params.SubsidySchedule()
	if height >= schedule.FixedReward {
		return fixedSubsidy + fees, nil
	}

	subsidy := int64(baseSubsidy)

	seed, err := jackpotSeed(prevHash)
	if err != nil {
		return 0, err
	}
	draw := c.jackpotSource.Draw(seed, jackpotUpperExclusive)
	if draw > jackpotLowExclusive && draw < jackpotHighExclusive {
		log.Debugf("Jackpot for block at height %d: drew %d with %s v%d", height, draw,
			c.jackpotSource.Name(), c.jackpotSource.Version())
		subsidy *= jackpotMultiplier
	}

	for _, bonus := range earlyBonuses {
		if height < bonus.belowHeight {
			subsidy *= bonus.multiplier
			break
		}
	}

	// Subsidy is cut in half every halving interval, about every 3 months
	subsidy >>= height / c.params.SubsidyHalvingInterval()

	if height >= schedule.FirstBoost {
		subsidy += subsidy / 4
	}
	if height >= schedule.SecondBoost {
		subsidy += subsidy / 4
		// Proof-of-work spacing went from 1 to 2 minutes
		subsidy *= 2
	}

	return subsidy + fees, nil
}

// jackpotSeed parses the 7 hex digits at offset 5 of the displayed hash.
func jackpotSeed(prevHash *externalapi.DomainHash) (uint32, error) {
	seed, err := strconv.ParseUint(prevHash.String()[5:12], 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse the jackpot seed of %s", prevHash)
	}
	return uint32(seed), nil
}
