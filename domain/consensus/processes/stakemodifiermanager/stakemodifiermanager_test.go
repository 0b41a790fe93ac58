package stakemodifiermanager

import (
	"encoding/binary"
	"testing"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/testutils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	// startTime is aligned to both the regtest and the mainnet modifier
	// intervals.
	startTime = 1400001000
	bits      = 0x1d00ffff
)

type modifierChain struct {
	t       *testing.T
	builder *testutils.ChainBuilder
	smm     model.StakeModifierManager
}

func newModifierChain(t *testing.T, params *chaincfg.Params) *modifierChain {
	builder := testutils.NewChainBuilder(t)
	return &modifierChain{t: t, builder: builder, smm: New(params, builder.Index)}
}

// extend inserts a block carrying the stake modifier computed on top of
// parent, as the block processor does.
func (c *modifierChain) extend(parent *model.ChainNode, blockTime int64, entropyBit uint32,
	proofOfStake bool) *model.ChainNode {

	c.t.Helper()
	modifier, generated, err := c.smm.ComputeNextStakeModifier(parent)
	require.NoError(c.t, err)
	return c.builder.Extend(parent, blockTime, bits, &model.StakeData{
		ProofOfStake:      proofOfStake,
		StakeEntropyBit:   entropyBit,
		StakeModifier:     modifier,
		ModifierGenerated: generated,
	})
}

func (c *modifierChain) extendN(parent *model.ChainNode, count int, spacing int64,
	entropyBit func(i int) uint32) *model.ChainNode {

	c.t.Helper()
	for i := 0; i < count; i++ {
		parent = c.extend(parent, parent.TimeInSeconds()+spacing, entropyBit(i), i%4 == 3)
	}
	return parent
}

func TestStakeModifierSelectionInterval(t *testing.T) {
	tests := []struct {
		params   *chaincfg.Params
		expected int64
	}{
		{chaincfg.RegtestParams, 2087},
		{chaincfg.MainnetParams, 21135},
	}
	for _, test := range tests {
		smm := New(test.params, testutils.NewChainBuilder(t).Index)
		require.Equal(t, test.expected, smm.StakeModifierSelectionInterval(), test.params.Name())
	}
}

func TestComputeNextStakeModifierGenesis(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, params *chaincfg.Params) {
		smm := New(params, testutils.NewChainBuilder(t).Index)
		modifier, generated, err := smm.ComputeNextStakeModifier(nil)
		require.NoError(t, err)
		require.Zero(t, modifier)
		require.True(t, generated)
	})
}

func TestComputeNextStakeModifierReusesWithinInterval(t *testing.T) {
	chain := newModifierChain(t, chaincfg.RegtestParams)
	genesis := chain.extend(nil, startTime, 1, false)
	block1 := chain.extend(genesis, startTime+10, 1, false)
	require.False(t, block1.GeneratedStakeModifier())

	block2 := chain.extend(block1, startTime+70, 1, false)
	require.False(t, block2.GeneratedStakeModifier(), "block1 shares the modifier interval of genesis")

	modifier, generated, err := chain.smm.ComputeNextStakeModifier(block2)
	require.NoError(t, err)
	require.True(t, generated)
	// All three blocks are candidates and every candidate carries a set entropy bit
	require.Equal(t, uint64(0b111), modifier)
}

func TestComputeNextStakeModifierRounds(t *testing.T) {
	chain := newModifierChain(t, chaincfg.RegtestParams)
	genesis := chain.extend(nil, startTime, 1, false)
	allOnes := func(int) uint32 { return 1 }

	// block1 shares the interval of genesis; block2 opens a new one.
	tip := chain.extendN(genesis, 2, 60, allOnes)
	require.True(t, tip.GeneratedStakeModifier())
	require.Equal(t, uint64(0b11), tip.StakeModifier())

	// Blocks within the 2087 second selection interval are candidates: the
	// tip and the 34 blocks before it.
	tip = chain.extendN(tip, 61, 60, allOnes)
	require.False(t, tip.GeneratedStakeModifier())
	modifier, generated, err := chain.smm.ComputeNextStakeModifier(tip)
	require.NoError(t, err)
	require.True(t, generated)
	require.Equal(t, uint64(1)<<35-1, modifier)

	// With 64 candidates or more every bit is drawn.
	chain = newModifierChain(t, chaincfg.RegtestParams)
	genesis = chain.extend(nil, startTime, 1, false)
	tip = chain.extendN(genesis, 198, 10, allOnes)
	modifier, generated, err = chain.smm.ComputeNextStakeModifier(tip)
	require.NoError(t, err)
	require.True(t, generated)
	require.Equal(t, ^uint64(0), modifier)
}

func TestComputeNextStakeModifierDeterminism(t *testing.T) {
	build := func() []*model.ChainNode {
		chain := newModifierChain(t, chaincfg.RegtestParams)
		node := chain.extend(nil, startTime, 0, false)
		nodes := []*model.ChainNode{node}
		for i := 0; i < 150; i++ {
			node = chain.extend(node, node.TimeInSeconds()+int64(17+i%50), uint32(i*7%3)&1, i%3 == 0)
			nodes = append(nodes, node)
		}

		// Computing twice on the same block yields the same result
		for _, node := range nodes[100:] {
			first, firstGenerated, err := chain.smm.ComputeNextStakeModifier(node)
			require.NoError(t, err)
			second, secondGenerated, err := chain.smm.ComputeNextStakeModifier(node)
			require.NoError(t, err)
			require.Equal(t, first, second)
			require.Equal(t, firstGenerated, secondGenerated)
		}
		return nodes
	}

	first := build()
	second := build()
	generatedCount := 0
	for i := range first {
		require.Equal(t, *first[i].Hash(), *second[i].Hash())
		require.Equal(t, first[i].StakeModifier(), second[i].StakeModifier(), "height %d", i)
		require.Equal(t, first[i].GeneratedStakeModifier(), second[i].GeneratedStakeModifier())
		if first[i].GeneratedStakeModifier() {
			generatedCount++
		}
	}
	require.Greater(t, generatedCount, 10)
}

func TestComputeNextStakeModifierWithoutGeneration(t *testing.T) {
	builder := testutils.NewChainBuilder(t)
	smm := New(chaincfg.RegtestParams, builder.Index)
	genesis := builder.Extend(nil, startTime, bits, nil)
	tip := builder.ExtendN(genesis, 3, 60, bits, nil)[2]

	_, _, err := smm.ComputeNextStakeModifier(tip)
	require.Error(t, err)
	require.False(t, ruleerrors.IsRecoverable(err))
}

func TestSelectionHashFavorsProofOfStake(t *testing.T) {
	builder := testutils.NewChainBuilder(t)
	genesis := builder.Extend(nil, startTime, bits, nil)
	proofHash := externalapi.DomainHash{0xaa, 0xbb}
	pos := builder.Extend(genesis, startTime+60, bits, &model.StakeData{ProofOfStake: true, ProofHash: proofHash})

	const previousModifier = 0x0123456789abcdef
	expected := selectionPreimageHash(&proofHash, previousModifier)
	require.Equal(t, *hashes.ShiftRight(expected, 32), *selectionHash(pos, previousModifier))
}

func TestSelectionHashOfProofOfWorkUsesBlockHash(t *testing.T) {
	builder := testutils.NewChainBuilder(t)
	genesis := builder.Extend(nil, startTime, bits, nil)
	pow := builder.Extend(genesis, startTime+60, bits, &model.StakeData{})

	const previousModifier = 0x0123456789abcdef
	require.Equal(t, externalapi.DomainHash{}, *pow.ProofHash())
	require.Equal(t, *selectionPreimageHash(pow.Hash(), previousModifier), *selectionHash(pow, previousModifier))
}

func selectionPreimageHash(proof *externalapi.DomainHash, previousModifier uint64) *externalapi.DomainHash {
	var data [externalapi.DomainHashSize + 8]byte
	copy(data[:], proof[:])
	binary.LittleEndian.PutUint64(data[externalapi.DomainHashSize:], previousModifier)
	return hashes.Hash256(data[:])
}

// generatingChain builds a chain spaced by a minute in which every block
// whose height is a multiple of period generates the modifier 1000+height.
func generatingChain(t *testing.T, count int, period uint32) (*testutils.ChainBuilder, []*model.ChainNode) {
	builder := testutils.NewChainBuilder(t)
	var nodes []*model.ChainNode
	var parent *model.ChainNode
	var modifier uint64
	for i := 0; i < count; i++ {
		height := uint32(i)
		generated := height%period == 0
		if generated {
			modifier = 1000 + uint64(height)
		}
		parent = builder.Extend(parent, startTime+int64(i)*60, bits, &model.StakeData{
			StakeModifier:     modifier,
			ModifierGenerated: generated,
		})
		nodes = append(nodes, parent)
	}
	return builder, nodes
}

func TestKernelStakeModifier(t *testing.T) {
	tests := []struct {
		name           string
		period         uint32
		expectedHeight uint32
	}{
		// The selection interval is 2087 seconds: the first block at least
		// that late is at height 35.
		{"every block generates", 1, 35},
		{"every tenth block generates", 10, 40},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			builder, nodes := generatingChain(t, 60, test.period)
			smm := New(chaincfg.RegtestParams, builder.Index)

			modifier, height, blockTime, err := smm.KernelStakeModifier(nodes[0].Hash(), startTime+1_000_000)
			require.NoError(t, err)
			require.Equal(t, 1000+uint64(test.expectedHeight), modifier)
			require.Equal(t, test.expectedHeight, height)
			require.Equal(t, nodes[test.expectedHeight].TimeInSeconds(), blockTime)
		})
	}
}

func TestKernelStakeModifierReachesTip(t *testing.T) {
	builder, nodes := generatingChain(t, 10, 1)
	smm := New(chaincfg.RegtestParams, builder.Index)
	tip := nodes[len(nodes)-1]

	// The tip could still be followed by the blocks we wait for
	_, _, _, err := smm.KernelStakeModifier(nodes[0].Hash(), tip.TimeInSeconds()+3600)
	require.Error(t, err)
	require.True(t, ruleerrors.IsRecoverable(err))
	var notEnoughConfirmations ruleerrors.ErrNotEnoughConfirmations
	require.True(t, errors.As(err, &notEnoughConfirmations))
	require.Equal(t, *tip.Hash(), notEnoughConfirmations.Tip)
	require.Equal(t, tip.Height(), notEnoughConfirmations.TipHeight)

	// The stake min age minus the selection interval lies beyond the
	// adjusted time: the wait can't end.
	_, _, _, err = smm.KernelStakeModifier(nodes[0].Hash(), tip.TimeInSeconds())
	require.Error(t, err)
	require.False(t, ruleerrors.IsRecoverable(err))
}

func TestKernelStakeModifierUnknownBlock(t *testing.T) {
	builder, _ := generatingChain(t, 3, 1)
	smm := New(chaincfg.RegtestParams, builder.Index)
	_, _, _, err := smm.KernelStakeModifier(&externalapi.DomainHash{0x01}, startTime)
	require.Error(t, err)
	require.False(t, ruleerrors.IsRecoverable(err))
}

func TestStakeModifierChecksum(t *testing.T) {
	builder := testutils.NewChainBuilder(t)
	smm := New(chaincfg.MainnetParams, builder.Index)

	stake := &model.StakeData{
		ProofOfStake:      true,
		StakeEntropyBit:   1,
		StakeModifier:     0x0102030405060708,
		ModifierGenerated: true,
		ProofHash:         externalapi.DomainHash{0x11, 0x22, 0x33},
	}
	checksumOf := func(prevChecksum *uint32) uint32 {
		var data []byte
		if prevChecksum != nil {
			data = binary.LittleEndian.AppendUint32(data, *prevChecksum)
		}
		data = binary.LittleEndian.AppendUint32(data, 0b111)
		data = append(data, stake.ProofHash[:]...)
		data = binary.LittleEndian.AppendUint64(data, stake.StakeModifier)
		hash := hashes.Hash256(data)
		return binary.LittleEndian.Uint32(hash[28:])
	}

	genesisChecksum := smm.StakeModifierChecksum(nil, stake)
	require.Equal(t, checksumOf(nil), genesisChecksum)

	genesis := builder.Extend(nil, startTime, bits, &model.StakeData{
		ModifierGenerated: true,
		ModifierChecksum:  genesisChecksum,
	})
	prevChecksum := genesis.StakeModifierChecksum()
	require.Equal(t, checksumOf(&prevChecksum), smm.StakeModifierChecksum(genesis, stake))

	changed := *stake
	changed.StakeEntropyBit = 0
	require.NotEqual(t, smm.StakeModifierChecksum(genesis, stake), smm.StakeModifierChecksum(genesis, &changed))
}

func TestCheckStakeModifierCheckpoints(t *testing.T) {
	smm := New(chaincfg.MainnetParams, testutils.NewChainBuilder(t).Index)
	require.NoError(t, smm.CheckStakeModifierCheckpoints(0, 0x0e00670b))
	require.NoError(t, smm.CheckStakeModifierCheckpoints(1, 0xdeadbeef))

	err := smm.CheckStakeModifierCheckpoints(0, 0x0e00670c)
	require.True(t, errors.Is(err, ruleerrors.ErrStakeModifierCheckpoint))

	regtest := New(chaincfg.RegtestParams, testutils.NewChainBuilder(t).Index)
	require.NoError(t, regtest.CheckStakeModifierCheckpoints(0, 0x0e00670c))
}
