// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

const (
	powTargetSpacing   = 1 * time.Minute
	powTargetTimespan  = 504 * powTargetSpacing
	stakeTargetSpacing = 2 * time.Minute
	stakeMaxAge        = 30 * 24 * time.Hour

	mainSubsidyHalvingInterval = 129600

	// The continuous proof-of-stake retarget and the retarget fix are
	// shared by all networks.
	posContinuousRetargetHeight = 530000
	retargetFixHeight           = 1345000
)

// genesisStakeModifierChecksum is the modifier checksum of the genesis block
// on both public networks.
const genesisStakeModifierChecksum = 0x0e00670b

var mainSubsidySchedule = SubsidySchedule{
	FixedReward: 1296010,
	FirstBoost:  438500,
	SecondBoost: 420000,
}

// MainnetParams defines the network parameters for the main Netcoin network.
var MainnetParams = mustNewParams(&Params{
	name:                     "mainnet",
	genesisBlock:             mainnetGenesisBlock,
	genesisHash:              mainnetGenesisBlock.Header.BlockHash(),
	powLimit:                 mustTarget("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	posLimit:                 mustTarget("000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	powTargetTimespan:        powTargetTimespan,
	powTargetSpacing:         powTargetSpacing,
	stakeTargetSpacing:       stakeTargetSpacing,
	stakeMinAge:              8 * time.Hour,
	stakeMaxAge:              stakeMaxAge,
	stakeModifierInterval:    10 * time.Minute,
	subsidyHalvingInterval:   mainSubsidyHalvingInterval,
	allowMinDifficultyBlocks: false,
	forks: ForkHeights{
		KGW:                   218500,
		PoSAndDigiShield:      420000,
		DigiShieldFix:         438500,
		PoSContinuousRetarget: posContinuousRetargetHeight,
		RetargetFix:           retargetFixHeight,
		FinalPoW:              2500000,
		LowSSignatures:        1300000,
	},
	subsidySchedule: mainSubsidySchedule,
	pirPhase0Start:  420000,
	stakeModifierCheckpoints: map[uint32]uint32{
		0: genesisStakeModifierChecksum,
	},
})

// TestnetParams defines the network parameters for the test Netcoin network.
var TestnetParams = mustNewParams(&Params{
	name:                     "testnet",
	genesisBlock:             testnetGenesisBlock,
	genesisHash:              testnetGenesisBlock.Header.BlockHash(),
	powLimit:                 mustTarget("0000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	posLimit:                 mustTarget("0000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	powTargetTimespan:        powTargetTimespan,
	powTargetSpacing:         powTargetSpacing,
	stakeTargetSpacing:       stakeTargetSpacing,
	stakeMinAge:              1 * time.Hour,
	stakeMaxAge:              stakeMaxAge,
	stakeModifierInterval:    1 * time.Minute,
	subsidyHalvingInterval:   mainSubsidyHalvingInterval,
	allowMinDifficultyBlocks: true,
	forks: ForkHeights{
		KGW:                   5,
		PoSAndDigiShield:      10,
		DigiShieldFix:         20,
		PoSContinuousRetarget: posContinuousRetargetHeight,
		RetargetFix:           retargetFixHeight,
		FinalPoW:              5000,
		LowSSignatures:        30,
	},
	subsidySchedule: mainSubsidySchedule,
	pirPhase0Start:  10,
	stakeModifierCheckpoints: map[uint32]uint32{
		0: genesisStakeModifierChecksum,
	},
})

// RegtestParams defines the network parameters for the regression test
// network. It has no stake modifier checkpoints and an almost trivial
// proof-of-work limit.
var RegtestParams = mustNewParams(&Params{
	name:                     "regtest",
	genesisBlock:             regtestGenesisBlock,
	genesisHash:              regtestGenesisBlock.Header.BlockHash(),
	powLimit:                 mustTarget("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	posLimit:                 mustTarget("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	powTargetTimespan:        powTargetTimespan,
	powTargetSpacing:         powTargetSpacing,
	stakeTargetSpacing:       stakeTargetSpacing,
	stakeMinAge:              1 * time.Hour,
	stakeMaxAge:              stakeMaxAge,
	stakeModifierInterval:    1 * time.Minute,
	subsidyHalvingInterval:   150,
	allowMinDifficultyBlocks: true,
	forks: ForkHeights{
		KGW:                   5,
		PoSAndDigiShield:      10,
		DigiShieldFix:         20,
		PoSContinuousRetarget: posContinuousRetargetHeight,
		RetargetFix:           retargetFixHeight,
		FinalPoW:              5000,
		LowSSignatures:        30,
	},
	subsidySchedule:          mainSubsidySchedule,
	pirPhase0Start:           10,
	stakeModifierCheckpoints: map[uint32]uint32{},
})

var registeredNets = map[string]*Params{}

// Register makes params available to ParamsForName.
func Register(params *Params) error {
	if _, ok := registeredNets[params.name]; ok {
		return errors.Errorf("network %s is already registered", params.name)
	}
	registeredNets[params.name] = params
	return nil
}

// ParamsForName returns the registered network with the given name.
func ParamsForName(name string) (*Params, error) {
	params, ok := registeredNets[name]
	if !ok {
		return nil, errors.Errorf("unknown network %s", name)
	}
	return params, nil
}

func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func mustNewParams(params *Params) *Params {
	validated, err := NewParams(params)
	if err != nil {
		panic(err)
	}
	return validated
}

func mustTarget(hexTarget string) difficulty.Target {
	target, err := difficulty.FromHex(hexTarget)
	if err != nil {
		panic(err)
	}
	return target
}

func init() {
	mustRegister(MainnetParams)
	mustRegister(TestnetParams)
	mustRegister(RegtestParams)
}
