package main

import (
	"os"

	"github.com/netcoin-project/netcoind/util/panics"
	"github.com/pkg/errors"
)

func main() {
	subCmd, cfg, subConfig := parseCommandLine()

	err := initLog(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		printErrorAndExit(err)
	}
	defer panics.HandlePanic(log, nil)

	switch subCmd {
	case paramsSubCmd:
		err = dumpParams(subConfig.(*paramsConfig), os.Stdout)
	case subsidySubCmd:
		err = subsidy(subConfig.(*subsidyConfig), os.Stdout)
	case stakeRewardSubCmd:
		err = stakeReward(subConfig.(*stakeRewardConfig), os.Stdout)
	case verifyChainSubCmd:
		err = verifyChain(subConfig.(*verifyChainConfig), os.Stdout)
	case workRequiredSubCmd:
		err = workRequired(subConfig.(*workRequiredConfig), os.Stdout)
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	backend := log.Backend()
	if err != nil {
		log.Errorf("%s failed: %+v", subCmd, err)
		backend.Close()
		printErrorAndExit(err)
	}
	backend.Close()
}
