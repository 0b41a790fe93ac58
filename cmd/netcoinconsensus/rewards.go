package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/processes/coinbasemanager"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/mtrandom"
	"github.com/pkg/errors"
)

var paramsDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dumpParams(cfg *paramsConfig, out io.Writer) error {
	paramsDumper.Fdump(out, cfg.NetParams())
	return nil
}

func subsidy(cfg *subsidyConfig, out io.Writer) error {
	prevHash, err := externalapi.NewDomainHashFromString(cfg.PrevHash)
	if err != nil {
		return errors.Wrapf(err, "invalid --prev-hash %s", cfg.PrevHash)
	}

	coinbaseManager := coinbasemanager.New(cfg.NetParams(), mtrandom.JackpotV1{})
	reward, err := coinbaseManager.ProofOfWorkReward(cfg.Height, cfg.Fees, prevHash)
	if err != nil {
		return err
	}
	log.Debugf("Proof-of-work reward at height %d after %s: %d", cfg.Height, prevHash, reward)

	_, err = fmt.Fprintf(out, "%s\n", formatAmount(reward))
	return errors.WithStack(err)
}

func stakeReward(cfg *stakeRewardConfig, out io.Writer) error {
	if cfg.CoinAge < 0 || cfg.CoinValue < 0 || cfg.Fees < 0 {
		return errors.New("negative amounts are not allowed")
	}

	coinbaseManager := coinbasemanager.New(cfg.NetParams(), mtrandom.JackpotV1{})
	reward := coinbaseManager.ProofOfStakeReward(cfg.Height, cfg.CoinAge, cfg.CoinValue, cfg.Fees)
	log.Debugf("Proof-of-stake reward at height %d for %d coin-days: %d", cfg.Height, cfg.CoinAge, reward)

	_, err := fmt.Fprintf(out, "%s\n", formatAmount(reward))
	return errors.WithStack(err)
}

// formatAmount formats satoshis as whole coins with eight decimals.
func formatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%08d NET", sign, amount/constants.SatoshiPerCoin, amount%constants.SatoshiPerCoin)
}
