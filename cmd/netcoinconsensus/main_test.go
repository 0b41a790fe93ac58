package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/processes/coinbasemanager"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/mtrandom"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/serialization"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/testutils"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/timesource"
	"github.com/netcoin-project/netcoind/infrastructure/config"
	"github.com/stretchr/testify/require"
)

const (
	// startTime is the timestamp of the regtest genesis
	startTime    = 1296688602
	adjustedTime = startTime + 100000
)

func regtestFlags() config.NetworkFlags {
	return config.NetworkFlags{Regtest: true, ActiveNetParams: chaincfg.RegtestParams}
}

// mineChain builds a valid regtest chain of the given length on top of the
// regtest genesis and returns all of its blocks, genesis first.
func mineChain(t *testing.T, length int) []*externalapi.DomainBlock {
	params := chaincfg.RegtestParams
	tc := consensus.NewFactory().NewConsensus(params, testutils.NewMemoryStore(), timesource.NewFixed(adjustedTime))

	genesis := params.GenesisBlock()
	_, err := tc.InsertGenesis(genesis)
	require.NoError(t, err)

	blocks := []*externalapi.DomainBlock{genesis}
	for i := 0; i < length; i++ {
		tip := tc.Tip()
		blockTime := tip.TimeInSeconds() + 600
		target, err := tc.NextWorkRequired(blockTime, false)
		require.NoError(t, err)
		reward, err := tc.ProofOfWorkReward(tip.Height()+1, 0, tip.Hash())
		require.NoError(t, err)

		block := testutils.NewBlock(tip.Hash(), blockTime, target.ToCompact(),
			testutils.CoinbaseTransaction(tip.Height()+1, blockTime, reward))
		testutils.SolveBlock(t, block)
		_, err = tc.ValidateAndInsertBlock(block)
		require.NoError(t, err)
		blocks = append(blocks, block)
	}
	return blocks
}

func writeBlocksFile(t *testing.T, blocks []*externalapi.DomainBlock) string {
	var buffer bytes.Buffer
	buffer.WriteString("# regtest chain\n")
	for _, block := range blocks {
		blockBytes, err := serialization.SerializeBlock(block)
		require.NoError(t, err)
		fmt.Fprintln(&buffer, hex.EncodeToString(blockBytes))
	}
	path := filepath.Join(t.TempDir(), "blocks.hex")
	require.NoError(t, os.WriteFile(path, buffer.Bytes(), 0600))
	return path
}

func TestVerifyChain(t *testing.T) {
	blocks := mineChain(t, 6)
	dataDir := t.TempDir()
	cfg := &verifyChainConfig{
		DataDir:      dataDir,
		BlocksFile:   writeBlocksFile(t, blocks[:4]),
		AdjustedTime: adjustedTime,
		CacheSizeMiB: 8,
		NetworkFlags: regtestFlags(),
	}

	var out bytes.Buffer
	require.NoError(t, verifyChain(cfg, &out))
	require.Contains(t, out.String(), "height 3 ")
	require.Contains(t, out.String(), "accepted 4 skipped 0 rejected 0 orphans 0")

	// A second run replays the stored chain and only adds the new blocks
	cfg.BlocksFile = writeBlocksFile(t, blocks)
	out.Reset()
	require.NoError(t, verifyChain(cfg, &out))
	require.Contains(t, out.String(), fmt.Sprintf("tip %s height 6 ", consensushashing.BlockHash(blocks[6])))
	require.Contains(t, out.String(), "accepted 3 skipped 4 rejected 0 orphans 0")
}

func TestVerifyBlocksOutOfOrder(t *testing.T) {
	blocks := mineChain(t, 4)
	tc := consensus.NewFactory().NewConsensus(chaincfg.RegtestParams, testutils.NewMemoryStore(),
		timesource.NewFixed(adjustedTime))

	shuffled := []*externalapi.DomainBlock{blocks[0], blocks[3], blocks[1], blocks[4], blocks[2]}
	summary, err := verifyBlocks(tc, shuffled)
	require.NoError(t, err)
	require.Equal(t, verifySummary{accepted: 5}, *summary)
	require.Equal(t, uint32(4), tc.Tip().Height())
}

func TestVerifyBlocksOrphansAndRejections(t *testing.T) {
	blocks := mineChain(t, 3)
	tc := consensus.NewFactory().NewConsensus(chaincfg.RegtestParams, testutils.NewMemoryStore(),
		timesource.NewFixed(adjustedTime))

	orphan := testutils.NewBlock(&externalapi.DomainHash{0xaa}, startTime+600,
		chaincfg.RegtestParams.PowLimit().ToCompact(), testutils.CoinbaseTransaction(1, startTime+600))

	badDifficulty := *blocks[1]
	header := *badDifficulty.Header
	header.Bits = 0x1d00ffff
	badDifficulty.Header = &header

	summary, err := verifyBlocks(tc, []*externalapi.DomainBlock{blocks[0], &badDifficulty, orphan, blocks[1]})
	require.NoError(t, err)
	require.Equal(t, verifySummary{accepted: 2, rejected: 1, orphans: 1}, *summary)
}

func TestVerifyChainRejects(t *testing.T) {
	blocks := mineChain(t, 2)
	badReward := *blocks[2]
	badReward.Transactions = []*externalapi.DomainTransaction{
		testutils.CoinbaseTransaction(2, badReward.TimeInSeconds(), 1<<50),
	}

	cfg := &verifyChainConfig{
		DataDir:      t.TempDir(),
		BlocksFile:   writeBlocksFile(t, []*externalapi.DomainBlock{blocks[0], blocks[1], &badReward}),
		AdjustedTime: adjustedTime,
		CacheSizeMiB: 8,
		NetworkFlags: regtestFlags(),
	}
	var out bytes.Buffer
	err := verifyChain(cfg, &out)
	require.Error(t, err)
	require.Contains(t, out.String(), "rejected 1")
}

func TestWorkRequired(t *testing.T) {
	blocks := mineChain(t, 3)
	dataDir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, verifyChain(&verifyChainConfig{
		DataDir:      dataDir,
		BlocksFile:   writeBlocksFile(t, blocks),
		AdjustedTime: adjustedTime,
		CacheSizeMiB: 8,
		NetworkFlags: regtestFlags(),
	}, &out))

	out.Reset()
	require.NoError(t, workRequired(&workRequiredConfig{
		DataDir:      dataDir,
		Time:         blocks[3].TimeInSeconds() + 600,
		CacheSizeMiB: 8,
		NetworkFlags: regtestFlags(),
	}, &out))
	require.True(t, strings.HasPrefix(out.String(), "height 4 bits "), "unexpected output %q", out.String())
}

func TestSubsidy(t *testing.T) {
	prevHash := "00000da000000000000000000000000000000000000000000000000000000000"
	var out bytes.Buffer
	err := subsidy(&subsidyConfig{Height: 100, PrevHash: prevHash, NetworkFlags: regtestFlags()}, &out)
	require.NoError(t, err)

	hash, err := externalapi.NewDomainHashFromString(prevHash)
	require.NoError(t, err)
	expected, err := coinbasemanager.New(chaincfg.RegtestParams, mtrandom.JackpotV1{}).ProofOfWorkReward(100, 0, hash)
	require.NoError(t, err)
	require.Equal(t, formatAmount(expected)+"\n", out.String())

	err = subsidy(&subsidyConfig{Height: 100, PrevHash: "zz", NetworkFlags: regtestFlags()}, &out)
	require.Error(t, err)
}

func TestStakeReward(t *testing.T) {
	var out bytes.Buffer
	err := stakeReward(&stakeRewardConfig{Height: 100, CoinAge: 0, CoinValue: 1000, NetworkFlags: regtestFlags()},
		&out)
	require.NoError(t, err)
	require.Equal(t, "0.00000000 NET\n", out.String())

	err = stakeReward(&stakeRewardConfig{Height: 100, CoinAge: -1, NetworkFlags: regtestFlags()}, &out)
	require.Error(t, err)
}

func TestDumpParams(t *testing.T) {
	var out bytes.Buffer
	flags := regtestFlags()
	require.NoError(t, dumpParams(&paramsConfig{NetworkFlags: flags}, &out))
	require.Contains(t, out.String(), "regtest")
	require.Contains(t, out.String(), "subsidyHalvingInterval: (uint32) 150")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "0.00000000 NET"},
		{1, "0.00000001 NET"},
		{150000000, "1.50000000 NET"},
		{-250000000, "-2.50000000 NET"},
	}
	for _, test := range tests {
		if got := formatAmount(test.amount); got != test.expected {
			t.Errorf("formatAmount(%d): expected %s, got %s", test.amount, test.expected, got)
		}
	}
}
