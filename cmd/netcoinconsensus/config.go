package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/netcoin-project/netcoind/infrastructure/config"
	"github.com/netcoin-project/netcoind/version"
	"github.com/pkg/errors"
)

const (
	paramsSubCmd       = "params"
	subsidySubCmd      = "subsidy"
	stakeRewardSubCmd  = "stakereward"
	verifyChainSubCmd  = "verifychain"
	workRequiredSubCmd = "workrequired"

	defaultLogLevel     = "info"
	defaultCacheSizeMiB = 64
)

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogDir      string `long:"logdir" description:"Directory to log output to. Logs go to stderr when empty"`
	LogLevel    string `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	config.NetworkFlags
}

type paramsConfig struct {
	config.NetworkFlags
}

type subsidyConfig struct {
	Height   uint32 `long:"height" description:"Height of the block to compute the proof-of-work reward of" required:"true"`
	PrevHash string `long:"prev-hash" description:"Hash of the previous block, which seeds the jackpot (hex)" required:"true"`
	Fees     int64  `long:"fees" description:"Transaction fees collected by the block, in satoshis"`
	config.NetworkFlags
}

type stakeRewardConfig struct {
	Height    uint32 `long:"height" description:"Height of the proof-of-stake block" required:"true"`
	CoinAge   int64  `long:"coin-age" description:"Coin age consumed by the coinstake, in coin-days" required:"true"`
	CoinValue int64  `long:"coin-value" description:"Value of the staked coins, in satoshis" required:"true"`
	Fees      int64  `long:"fees" description:"Transaction fees collected by the block, in satoshis"`
	config.NetworkFlags
}

type verifyChainConfig struct {
	DataDir       string `long:"datadir" description:"Directory of the block database" required:"true"`
	BlocksFile    string `long:"blocks-file" description:"File with one hex encoded block per line, starting at the genesis. When empty only the stored chain is verified"`
	AdjustedTime  int64  `long:"adjusted-time" description:"Fixed adjusted time in unix seconds. Local time is used when zero"`
	CacheSizeMiB  int    `long:"cache-size" description:"Database cache size in MiB"`
	MetricsListen string `long:"metrics-listen" description:"Expose prometheus metrics on this address while verifying, e.g. 127.0.0.1:9090"`
	config.NetworkFlags
}

type workRequiredConfig struct {
	DataDir      string `long:"datadir" description:"Directory of the block database" required:"true"`
	Time         int64  `long:"time" description:"Timestamp of the next block in unix seconds. Local time is used when zero"`
	ProofOfStake bool   `long:"pos" description:"Compute the target of a proof-of-stake block"`
	CacheSizeMiB int    `long:"cache-size" description:"Database cache size in MiB"`
	config.NetworkFlags
}

func parseCommandLine() (subCommand string, globalConfig *configFlags, subConfig interface{}) {
	cfg := &configFlags{LogLevel: defaultLogLevel}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	paramsConf := &paramsConfig{}
	parser.AddCommand(paramsSubCmd, "Dumps the consensus params",
		"Dumps the consensus params of the selected network", paramsConf)

	subsidyConf := &subsidyConfig{}
	parser.AddCommand(subsidySubCmd, "Computes a proof-of-work reward",
		"Computes the proof-of-work reward of a block, including its jackpot", subsidyConf)

	stakeRewardConf := &stakeRewardConfig{}
	parser.AddCommand(stakeRewardSubCmd, "Computes a proof-of-stake reward",
		"Computes the maximal coinstake reward for the given coin age and stake value", stakeRewardConf)

	verifyChainConf := &verifyChainConfig{CacheSizeMiB: defaultCacheSizeMiB}
	parser.AddCommand(verifyChainSubCmd, "Verifies a chain",
		"Replays the stored chain and validates the blocks of the given blocks file on top of it. "+
			"Accepted blocks are stored in the block database", verifyChainConf)

	workRequiredConf := &workRequiredConfig{CacheSizeMiB: defaultCacheSizeMiB}
	parser.AddCommand(workRequiredSubCmd, "Computes the next target",
		"Replays the stored chain and computes the target the next block has to meet", workRequiredConf)

	_, err := parser.Parse()

	if cfg.ShowVersion {
		fmt.Println("netcoinconsensus version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil, nil
	}

	var networkFlags *config.NetworkFlags
	switch parser.Command.Active.Name {
	case paramsSubCmd:
		networkFlags, subConfig = &paramsConf.NetworkFlags, paramsConf
	case subsidySubCmd:
		networkFlags, subConfig = &subsidyConf.NetworkFlags, subsidyConf
	case stakeRewardSubCmd:
		networkFlags, subConfig = &stakeRewardConf.NetworkFlags, stakeRewardConf
	case verifyChainSubCmd:
		networkFlags, subConfig = &verifyChainConf.NetworkFlags, verifyChainConf
	case workRequiredSubCmd:
		networkFlags, subConfig = &workRequiredConf.NetworkFlags, workRequiredConf
	}

	combineNetworkFlags(networkFlags, &cfg.NetworkFlags)
	err = networkFlags.ResolveNetwork(parser)
	if err != nil {
		printErrorAndExit(err)
	}

	return parser.Command.Active.Name, cfg, subConfig
}

func combineNetworkFlags(dst, src *config.NetworkFlags) {
	dst.Testnet = dst.Testnet || src.Testnet
	dst.Regtest = dst.Regtest || src.Regtest
	if dst.OverrideParamsFile == "" {
		dst.OverrideParamsFile = src.OverrideParamsFile
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
