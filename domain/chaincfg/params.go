// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sort"
	"time"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
)

// ForkHeights holds the block heights at which consensus rules change.
// Every network carries its own set.
type ForkHeights struct {
	// KGW is the first height retargeted with the Kimoto Gravity Well.
	KGW uint32

	// PoSAndDigiShield is the first height at which proof-of-stake blocks
	// are accepted and proof-of-work retargets with DigiShield.
	PoSAndDigiShield uint32

	// DigiShieldFix is the first height retargeted with the 60 second
	// DigiShield window.
	DigiShieldFix uint32

	// PoSContinuousRetarget is the last height whose proof-of-stake
	// successor still retargets with DigiShield.
	PoSContinuousRetarget uint32

	// RetargetFix is the height after which a negative stake spacing is
	// treated as the nominal spacing.
	RetargetFix uint32

	// FinalPoW is the last height accepting proof-of-work blocks.
	FinalPoW uint32

	// LowSSignatures is the first height requiring low-S signatures.
	LowSSignatures uint32
}

// SubsidySchedule holds the heights of the proof-of-work reward schedule.
type SubsidySchedule struct {
	// FixedReward is the first height paying the flat reward.
	FixedReward uint32

	// FirstBoost is the first height receiving the first 25% boost.
	FirstBoost uint32

	// SecondBoost is the first height receiving the second 25% boost and
	// the doubling for two minute proof-of-work spacing.
	SecondBoost uint32
}

// Params defines a Netcoin network by its consensus parameters. A Params
// value is never modified after construction: fields are unexported and
// new values are derived with NewParams.
type Params struct {
	name string

	genesisBlock *externalapi.DomainBlock
	genesisHash  externalapi.DomainHash

	powLimit difficulty.Target
	posLimit difficulty.Target

	powTargetTimespan  time.Duration
	powTargetSpacing   time.Duration
	stakeTargetSpacing time.Duration

	stakeMinAge           time.Duration
	stakeMaxAge           time.Duration
	stakeModifierInterval time.Duration

	subsidyHalvingInterval   uint32
	allowMinDifficultyBlocks bool

	forks           ForkHeights
	subsidySchedule SubsidySchedule
	pirPhase0Start  uint32

	stakeModifierCheckpoints map[uint32]uint32
}

// Name returns the human-readable network name.
func (p *Params) Name() string { return p.name }

// GenesisBlock returns a copy of the first block of the network.
func (p *Params) GenesisBlock() *externalapi.DomainBlock {
	header := *p.genesisBlock.Header
	transactions := make([]*externalapi.DomainTransaction, len(p.genesisBlock.Transactions))
	copy(transactions, p.genesisBlock.Transactions)
	return &externalapi.DomainBlock{Header: &header, Transactions: transactions}
}

// GenesisHash returns the hash of the genesis block.
func (p *Params) GenesisHash() *externalapi.DomainHash {
	hash := p.genesisHash
	return &hash
}

// PowLimit is the easiest proof-of-work target allowed.
func (p *Params) PowLimit() difficulty.Target { return p.powLimit }

// PosLimit is the easiest proof-of-stake target allowed.
func (p *Params) PosLimit() difficulty.Target { return p.posLimit }

// PowTargetTimespan is the period the legacy retarget aims for.
func (p *Params) PowTargetTimespan() time.Duration { return p.powTargetTimespan }

// PowTargetSpacing is the intended time between proof-of-work blocks.
func (p *Params) PowTargetSpacing() time.Duration { return p.powTargetSpacing }

// StakeTargetSpacing is the intended time between proof-of-stake blocks.
func (p *Params) StakeTargetSpacing() time.Duration { return p.stakeTargetSpacing }

// StakeMinAge is the minimum age of a coin before it can stake.
func (p *Params) StakeMinAge() time.Duration { return p.stakeMinAge }

// StakeMaxAge caps the age counted towards a kernel's weight.
func (p *Params) StakeMaxAge() time.Duration { return p.stakeMaxAge }

// StakeModifierInterval is the time between stake modifier generations.
func (p *Params) StakeModifierInterval() time.Duration { return p.stakeModifierInterval }

// SubsidyHalvingInterval is the number of blocks between reward halvings.
func (p *Params) SubsidyHalvingInterval() uint32 { return p.subsidyHalvingInterval }

// AllowMinDifficultyBlocks enables the test network's minimum difficulty rules.
func (p *Params) AllowMinDifficultyBlocks() bool { return p.allowMinDifficultyBlocks }

// Forks returns a copy of the network's fork heights.
func (p *Params) Forks() ForkHeights { return p.forks }

// SubsidySchedule returns a copy of the proof-of-work reward heights.
func (p *Params) SubsidySchedule() SubsidySchedule { return p.subsidySchedule }

// PIRPhase0Start is the height at which the first interest rate phase begins.
func (p *Params) PIRPhase0Start() uint32 { return p.pirPhase0Start }

// DifficultyAdjustmentInterval is the number of blocks between legacy retargets.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.powTargetTimespan / p.powTargetSpacing)
}

// StakeModifierCheckpoint returns the expected modifier checksum at height.
func (p *Params) StakeModifierCheckpoint(height uint32) (checksum uint32, ok bool) {
	checksum, ok = p.stakeModifierCheckpoints[height]
	return checksum, ok
}

// StakeModifierCheckpointHeights returns the checkpointed heights in ascending order.
func (p *Params) StakeModifierCheckpointHeights() []uint32 {
	heights := make([]uint32, 0, len(p.stakeModifierCheckpoints))
	for height := range p.stakeModifierCheckpoints {
		heights = append(heights, height)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}

func (p *Params) clone() *Params {
	clone := *p
	clone.stakeModifierCheckpoints = make(map[uint32]uint32, len(p.stakeModifierCheckpoints))
	for height, checksum := range p.stakeModifierCheckpoints {
		clone.stakeModifierCheckpoints[height] = checksum
	}
	return &clone
}
