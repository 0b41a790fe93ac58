package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet            bool   `long:"testnet" description:"Use the test network"`
	Regtest            bool   `long:"regtest" description:"Use the regression test network"`
	OverrideParamsFile string `long:"override-params-file" description:"Overrides consensus params (allowed only on regtest)"`

	ActiveNetParams *chaincfg.Params
}

type overrideForkHeightsConfig struct {
	KGW                   *uint32 `json:"kgw"`
	PoSAndDigiShield      *uint32 `json:"posAndDigiShield"`
	DigiShieldFix         *uint32 `json:"digiShieldFix"`
	PoSContinuousRetarget *uint32 `json:"posContinuousRetarget"`
	RetargetFix           *uint32 `json:"retargetFix"`
	FinalPoW              *uint32 `json:"finalPoW"`
	LowSSignatures        *uint32 `json:"lowSSignatures"`
}

type overrideParamsConfig struct {
	PowLimit                       *string                    `json:"powLimit"`
	PosLimit                       *string                    `json:"posLimit"`
	PowTargetTimespanInSeconds     *int64                     `json:"powTargetTimespanInSeconds"`
	PowTargetSpacingInSeconds      *int64                     `json:"powTargetSpacingInSeconds"`
	StakeTargetSpacingInSeconds    *int64                     `json:"stakeTargetSpacingInSeconds"`
	StakeMinAgeInSeconds           *int64                     `json:"stakeMinAgeInSeconds"`
	StakeMaxAgeInSeconds           *int64                     `json:"stakeMaxAgeInSeconds"`
	StakeModifierIntervalInSeconds *int64                     `json:"stakeModifierIntervalInSeconds"`
	SubsidyHalvingInterval         *uint32                    `json:"subsidyHalvingInterval"`
	AllowMinDifficultyBlocks       *bool                      `json:"allowMinDifficultyBlocks"`
	PIRPhase0Start                 *uint32                    `json:"pirPhase0Start"`
	Forks                          *overrideForkHeightsConfig `json:"forks"`
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	//NetParams holds the selected network parameters. Default value is main-net.
	networkFlags.ActiveNetParams = chaincfg.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	// Count number of network flags passed; assign active network params
	// while we're at it
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = chaincfg.TestnetParams
	}
	if networkFlags.Regtest {
		numNets++
		networkFlags.ActiveNetParams = chaincfg.RegtestParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, regtest) cannot be used " +
			"together. Please choose only one network"
		err := errors.New(message)
		fmt.Fprintln(os.Stderr, err)
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	return networkFlags.overrideParams()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideParams() error {
	if networkFlags.OverrideParamsFile == "" {
		return nil
	}

	if !networkFlags.Regtest {
		return errors.Errorf("override-params-file is allowed only when using regtest")
	}

	overrideParamsFile, err := os.Open(networkFlags.OverrideParamsFile)
	if err != nil {
		return errors.WithStack(err)
	}
	defer overrideParamsFile.Close()

	decoder := json.NewDecoder(overrideParamsFile)
	decoder.DisallowUnknownFields()
	config := &overrideParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "error parsing %s", networkFlags.OverrideParamsFile)
	}

	options, err := config.options(networkFlags.ActiveNetParams)
	if err != nil {
		return err
	}
	params, err := chaincfg.NewParams(networkFlags.ActiveNetParams, options...)
	if err != nil {
		return errors.Wrapf(err, "invalid params in %s", networkFlags.OverrideParamsFile)
	}
	networkFlags.ActiveNetParams = params
	return nil
}

func (config *overrideParamsConfig) options(base *chaincfg.Params) ([]chaincfg.Option, error) {
	var options []chaincfg.Option

	if config.PowLimit != nil {
		powLimit, err := difficulty.FromHex(*config.PowLimit)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse powLimit %s", *config.PowLimit)
		}
		options = append(options, chaincfg.WithPowLimit(powLimit))
	}

	if config.PosLimit != nil {
		posLimit, err := difficulty.FromHex(*config.PosLimit)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse posLimit %s", *config.PosLimit)
		}
		options = append(options, chaincfg.WithPosLimit(posLimit))
	}

	if config.PowTargetTimespanInSeconds != nil {
		options = append(options, chaincfg.WithPowTargetTimespan(seconds(*config.PowTargetTimespanInSeconds)))
	}

	if config.PowTargetSpacingInSeconds != nil {
		options = append(options, chaincfg.WithPowTargetSpacing(seconds(*config.PowTargetSpacingInSeconds)))
	}

	if config.StakeTargetSpacingInSeconds != nil {
		options = append(options, chaincfg.WithStakeTargetSpacing(seconds(*config.StakeTargetSpacingInSeconds)))
	}

	if config.StakeMinAgeInSeconds != nil || config.StakeMaxAgeInSeconds != nil {
		minAge, maxAge := base.StakeMinAge(), base.StakeMaxAge()
		if config.StakeMinAgeInSeconds != nil {
			minAge = seconds(*config.StakeMinAgeInSeconds)
		}
		if config.StakeMaxAgeInSeconds != nil {
			maxAge = seconds(*config.StakeMaxAgeInSeconds)
		}
		options = append(options, chaincfg.WithStakeAges(minAge, maxAge))
	}

	if config.StakeModifierIntervalInSeconds != nil {
		options = append(options,
			chaincfg.WithStakeModifierInterval(seconds(*config.StakeModifierIntervalInSeconds)))
	}

	if config.SubsidyHalvingInterval != nil {
		options = append(options, chaincfg.WithSubsidyHalvingInterval(*config.SubsidyHalvingInterval))
	}

	if config.AllowMinDifficultyBlocks != nil {
		options = append(options, chaincfg.WithAllowMinDifficultyBlocks(*config.AllowMinDifficultyBlocks))
	}

	if config.PIRPhase0Start != nil {
		options = append(options, chaincfg.WithPIRPhase0Start(*config.PIRPhase0Start))
	}

	if config.Forks != nil {
		options = append(options, chaincfg.WithForkHeights(config.Forks.apply(base.Forks())))
	}

	return options, nil
}

func (config *overrideForkHeightsConfig) apply(forks chaincfg.ForkHeights) chaincfg.ForkHeights {
	for _, override := range []struct {
		value  *uint32
		target *uint32
	}{
		{config.KGW, &forks.KGW},
		{config.PoSAndDigiShield, &forks.PoSAndDigiShield},
		{config.DigiShieldFix, &forks.DigiShieldFix},
		{config.PoSContinuousRetarget, &forks.PoSContinuousRetarget},
		{config.RetargetFix, &forks.RetargetFix},
		{config.FinalPoW, &forks.FinalPoW},
		{config.LowSSignatures, &forks.LowSSignatures},
	} {
		if override.value != nil {
			*override.target = *override.value
		}
	}
	return forks
}

func seconds(n int64) time.Duration {
	return time.Duration(n) * time.Second
}
