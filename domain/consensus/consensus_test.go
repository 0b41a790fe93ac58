package consensus

import (
	"testing"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/testutils"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/timesource"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	startTime = 1400000000
	spacing   = 600
)

func testGenesis() *externalapi.DomainBlock {
	return testutils.NewBlock(&externalapi.DomainHash{}, startTime,
		chaincfg.RegtestParams.PowLimit().ToCompact(), testutils.CoinbaseTransaction(0, startTime))
}

// testParams are the regtest parameters with the genesis moved to startTime
var testParams = func() *chaincfg.Params {
	params, err := chaincfg.NewParams(chaincfg.RegtestParams, chaincfg.WithGenesisBlock(testGenesis()))
	if err != nil {
		panic(err)
	}
	return params
}()

func newTestConsensus(t *testing.T) (Consensus, *testutils.MemoryStore) {
	store := testutils.NewMemoryStore()
	tc := NewFactory().NewConsensus(testParams, store, timesource.NewFixed(startTime+100*spacing))
	return tc, store
}

func insertGenesis(t *testing.T, tc Consensus) *model.ChainNode {
	node, err := tc.InsertGenesis(testParams.GenesisBlock())
	if err != nil {
		t.Fatalf("InsertGenesis: %+v", err)
	}
	return node
}

func nextBlock(t *testing.T, tc Consensus) *externalapi.DomainBlock {
	tip := tc.Tip()
	blockTime := tip.TimeInSeconds() + spacing

	target, err := tc.NextWorkRequired(blockTime, false)
	if err != nil {
		t.Fatalf("NextWorkRequired: %+v", err)
	}
	reward, err := tc.ProofOfWorkReward(tip.Height()+1, 0, tip.Hash())
	if err != nil {
		t.Fatalf("ProofOfWorkReward: %+v", err)
	}

	block := testutils.NewBlock(tip.Hash(), blockTime, target.ToCompact(),
		testutils.CoinbaseTransaction(tip.Height()+1, blockTime, reward))
	testutils.SolveBlock(t, block)
	return block
}

func TestConsensusBeforeGenesis(t *testing.T) {
	tc, _ := newTestConsensus(t)

	require.Nil(t, tc.Tip())
	require.Equal(t, 0, tc.BlockCount())

	target, err := tc.NextWorkRequired(startTime, false)
	require.NoError(t, err)
	require.Equal(t, chaincfg.RegtestParams.PowLimit(), target)

	_, err = tc.ValidateAndInsertBlock(testGenesis())
	require.Error(t, err)
	require.False(t, ruleerrors.IsRuleError(err))
}

func TestConsensusInsertChain(t *testing.T) {
	tc, store := newTestConsensus(t)
	genesis := insertGenesis(t, tc)

	nodes := []*model.ChainNode{genesis}
	var lastBlock *externalapi.DomainBlock
	for i := 0; i < 6; i++ {
		lastBlock = nextBlock(t, tc)
		node, err := tc.ValidateAndInsertBlock(lastBlock)
		if err != nil {
			t.Fatalf("ValidateAndInsertBlock at height %d: %+v", i+1, err)
		}
		nodes = append(nodes, node)
	}
	last := nodes[6]

	require.Equal(t, last, tc.Tip())
	require.Equal(t, uint32(6), last.Height())
	require.Equal(t, 7, tc.BlockCount())

	node, ok := tc.LookupByHash(genesis.Hash())
	require.True(t, ok)
	require.Equal(t, genesis, node)

	block, err := tc.GetBlock(last.Hash())
	require.NoError(t, err)
	require.Equal(t, lastBlock, block)

	stored, err := store.Transaction(consensushashing.TransactionID(lastBlock.Transactions[0]))
	require.NoError(t, err)
	require.Equal(t, lastBlock.Transactions[0], stored)

	// Height 4 is the first generating block a selection interval after
	// genesis
	modifier, height, blockTime, err := tc.KernelStakeModifier(genesis.Hash(), startTime+10000)
	require.NoError(t, err)
	require.Equal(t, uint32(4), height)
	require.Equal(t, nodes[4].TimeInSeconds(), blockTime)
	require.Equal(t, nodes[4].StakeModifier(), modifier)

	// No block generated a selection interval after height 5 yet
	_, _, _, err = tc.KernelStakeModifier(nodes[5].Hash(), startTime+10000)
	require.True(t, errors.As(err, &ruleerrors.ErrNotEnoughConfirmations{}), "unexpected error %+v", err)
}

func TestConsensusGetUnknownBlock(t *testing.T) {
	tc, _ := newTestConsensus(t)
	insertGenesis(t, tc)

	_, err := tc.GetBlock(&externalapi.DomainHash{0x01})
	require.Error(t, err)
}

func TestConsensusRejectsDuplicate(t *testing.T) {
	tc, _ := newTestConsensus(t)
	insertGenesis(t, tc)

	block := nextBlock(t, tc)
	_, err := tc.ValidateAndInsertBlock(block)
	require.NoError(t, err)

	_, err = tc.ValidateAndInsertBlock(block)
	require.True(t, errors.Is(err, ruleerrors.ErrDuplicateBlock), "unexpected error %+v", err)
	require.Equal(t, 2, tc.BlockCount())
}

func TestConsensusRegtestGenesis(t *testing.T) {
	tc := NewFactory().NewConsensus(chaincfg.RegtestParams, testutils.NewMemoryStore(), timesource.NewFixed(startTime))

	_, err := tc.InsertGenesis(testGenesis())
	require.True(t, errors.Is(err, ruleerrors.ErrUnexpectedGenesis), "unexpected error %+v", err)

	node, err := tc.InsertGenesis(chaincfg.RegtestParams.GenesisBlock())
	require.NoError(t, err)
	require.Equal(t, chaincfg.RegtestParams.GenesisHash(), node.Hash())
	require.Equal(t, &externalapi.DomainHash{}, node.ProofHash())
}

func TestConsensusRejectsTamperedCoinbase(t *testing.T) {
	tc, _ := newTestConsensus(t)
	insertGenesis(t, tc)

	block := nextBlock(t, tc)
	tip := tc.Tip()
	block.Transactions[0] = testutils.CoinbaseTransaction(tip.Height()+1, block.TimeInSeconds(), 1)

	_, err := tc.ValidateAndInsertBlock(block)
	require.True(t, errors.Is(err, ruleerrors.ErrBadMerkleRoot), "unexpected error %+v", err)
	require.Equal(t, 1, tc.BlockCount())
}
