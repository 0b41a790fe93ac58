package chaincfg

import (
	"testing"
	"time"

	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

func TestPresetsAreValid(t *testing.T) {
	for _, params := range []*Params{MainnetParams, TestnetParams, RegtestParams} {
		if err := params.validate(); err != nil {
			t.Fatalf("%s: %s", params.Name(), err)
		}
		registered, err := ParamsForName(params.Name())
		if err != nil {
			t.Fatalf("ParamsForName(%s): %s", params.Name(), err)
		}
		if registered != params {
			t.Fatalf("ParamsForName(%s) returned a different value", params.Name())
		}
	}
}

func TestMainnetConstants(t *testing.T) {
	if MainnetParams.PowLimit().ToCompact() != 0x1e0fffff {
		t.Fatalf("unexpected mainnet pow limit %08x", MainnetParams.PowLimit().ToCompact())
	}
	if MainnetParams.DifficultyAdjustmentInterval() != 504 {
		t.Fatalf("unexpected adjustment interval %d", MainnetParams.DifficultyAdjustmentInterval())
	}
	forks := MainnetParams.Forks()
	if forks.KGW != 218500 || forks.PoSAndDigiShield != 420000 || forks.DigiShieldFix != 438500 {
		t.Fatalf("unexpected mainnet forks %+v", forks)
	}
	checksum, ok := MainnetParams.StakeModifierCheckpoint(0)
	if !ok || checksum != 0x0e00670b {
		t.Fatalf("unexpected genesis checkpoint %08x (present: %t)", checksum, ok)
	}
	if _, ok := MainnetParams.StakeModifierCheckpoint(1); ok {
		t.Fatalf("height 1 must not be checkpointed")
	}
}

func TestNewParamsDoesNotTouchBase(t *testing.T) {
	derived, err := NewParams(RegtestParams,
		WithName("regtest-custom"),
		WithStakeAges(time.Minute, time.Hour),
		WithStakeModifierCheckpoints(map[uint32]uint32{7: 0xdeadbeef}))
	if err != nil {
		t.Fatalf("NewParams: %s", err)
	}
	if derived.StakeMinAge() != time.Minute || RegtestParams.StakeMinAge() != time.Hour {
		t.Fatalf("stake min age leaked between params values")
	}
	if _, ok := RegtestParams.StakeModifierCheckpoint(7); ok {
		t.Fatalf("checkpoint leaked into the base params")
	}
	if heights := derived.StakeModifierCheckpointHeights(); len(heights) != 1 || heights[0] != 7 {
		t.Fatalf("unexpected checkpoint heights %v", heights)
	}
}

func TestCheckpointMapIsCopied(t *testing.T) {
	checkpoints := map[uint32]uint32{1: 1}
	params, err := NewParams(RegtestParams, WithStakeModifierCheckpoints(checkpoints))
	if err != nil {
		t.Fatalf("NewParams: %s", err)
	}
	checkpoints[1] = 2
	checkpoints[2] = 2
	if checksum, _ := params.StakeModifierCheckpoint(1); checksum != 1 {
		t.Fatalf("params observed a caller-side map mutation")
	}
	if _, ok := params.StakeModifierCheckpoint(2); ok {
		t.Fatalf("params observed a caller-side map insertion")
	}
}

func TestNewParamsValidation(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
	}{
		{"zero spacing", []Option{WithPowTargetSpacing(0)}},
		{"timespan not a multiple", []Option{WithPowTargetTimespan(90 * time.Second)}},
		{"zero pow limit", []Option{WithPowLimit(difficulty.Target{})}},
		{"zero halving", []Option{WithSubsidyHalvingInterval(0)}},
		{"min age above max age", []Option{WithStakeAges(2*time.Hour, time.Hour)}},
		{"fractional modifier interval", []Option{WithStakeModifierInterval(1500 * time.Millisecond)}},
		{"unordered forks", []Option{WithForkHeights(ForkHeights{KGW: 10, PoSAndDigiShield: 5, DigiShieldFix: 20})}},
		{"empty name", []Option{WithName("")}},
	}
	for _, test := range tests {
		_, err := NewParams(RegtestParams, test.options...)
		if err == nil {
			t.Fatalf("%s: expected an error", test.name)
		}
	}
	if _, err := NewParams(nil); err == nil {
		t.Fatalf("expected an error for nil base params")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	if err := Register(MainnetParams); err == nil {
		t.Fatalf("registering mainnet twice must fail")
	}
}

func TestGenesisHashes(t *testing.T) {
	tests := []struct {
		params   *Params
		expected string
	}{
		{MainnetParams, "38624e3834cfdc4410a5acbc32f750171aadad9620e6ba6d5c73201c16f7c8d1"},
		{TestnetParams, "560dbb3ee136ccaae9a7dcd60e1d170508619c6934efc4b22168f6f614bbedff"},
		{RegtestParams, "a05031a4091a978f203526bc1833027eb54061a65cbc219506d844eb541b3e8a"},
	}
	for _, test := range tests {
		if hash := test.params.GenesisHash(); hash.String() != test.expected {
			t.Errorf("%s: expected genesis hash %s but got %s", test.params.Name(), test.expected, hash)
		}
		genesis := test.params.GenesisBlock()
		if hash := genesis.Header.BlockHash(); hash.String() != test.expected {
			t.Errorf("%s: genesis header hashes to %s instead of %s", test.params.Name(), hash, test.expected)
		}
		if genesis.Header.MerkleRoot != *genesisMerkleRoot || len(genesis.Transactions) != 1 {
			t.Errorf("%s: unexpected genesis body", test.params.Name())
		}
	}
}

func TestGenesisBlockIsCopied(t *testing.T) {
	genesis := MainnetParams.GenesisBlock()
	genesis.Header.Nonce++
	genesis.Transactions = nil
	if MainnetParams.GenesisBlock().Header.Nonce != 12344321 || len(MainnetParams.GenesisBlock().Transactions) != 1 {
		t.Fatalf("GenesisBlock returned the network's own block")
	}
}

func TestWithGenesisBlock(t *testing.T) {
	genesis := RegtestParams.GenesisBlock()
	genesis.Header.Nonce = 7
	params, err := NewParams(RegtestParams, WithName("regtest-genesis"), WithGenesisBlock(genesis))
	if err != nil {
		t.Fatalf("NewParams: %s", err)
	}
	if *params.GenesisHash() != genesis.Header.BlockHash() {
		t.Fatalf("unexpected genesis hash %s", params.GenesisHash())
	}
	if *RegtestParams.GenesisHash() == *params.GenesisHash() {
		t.Fatalf("genesis leaked into the base params")
	}

	withParent := RegtestParams.GenesisBlock()
	withParent.Header.PrevBlock[0] = 1
	if _, err := NewParams(RegtestParams, WithGenesisBlock(withParent)); err == nil {
		t.Fatalf("NewParams: expected an error for a genesis with a parent")
	}
}
