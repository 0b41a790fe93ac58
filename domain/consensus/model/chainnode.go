package model

import (
	"math"
	"math/big"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
)

// NodeID addresses a ChainNode inside its chain index.
type NodeID uint32

// NoNode is the parent of the genesis node.
const NoNode NodeID = math.MaxUint32

// StakeData holds the proof-of-stake bookkeeping computed for a block before
// it enters the chain index.
type StakeData struct {
	ProofOfStake      bool
	StakeEntropyBit   uint32
	StakeModifier     uint64
	ModifierGenerated bool
	ModifierChecksum  uint32
	ProofHash         externalapi.DomainHash
	StakeTime         uint32
	PrevOutStake      externalapi.DomainOutpoint
}

// Flags returns the block flags as committed to by the stake modifier checksum.
func (data *StakeData) Flags() uint32 {
	var flags uint32
	if data.ProofOfStake {
		flags |= constants.BlockFlagProofOfStake
	}
	if data.StakeEntropyBit != 0 {
		flags |= constants.BlockFlagStakeEntropy
	}
	if data.ModifierGenerated {
		flags |= constants.BlockFlagStakeModifierNew
	}
	return flags
}

// ChainNode is an entry of the chain index. The parent is referenced by
// NodeID; the index owns every node. A ChainNode never changes once created.
type ChainNode struct {
	id         NodeID
	parentID   NodeID
	height     uint32
	hash       externalapi.DomainHash
	header     externalapi.DomainBlockHeader
	chainTrust *big.Int
	stake      StakeData
}

// NewChainNode is used by chain index implementations to create nodes.
func NewChainNode(id, parentID NodeID, height uint32, hash *externalapi.DomainHash,
	header *externalapi.DomainBlockHeader, chainTrust *big.Int, stake *StakeData) *ChainNode {

	return &ChainNode{
		id:         id,
		parentID:   parentID,
		height:     height,
		hash:       *hash,
		header:     *header,
		chainTrust: new(big.Int).Set(chainTrust),
		stake:      *stake,
	}
}

// ID returns the node's address in its index.
func (n *ChainNode) ID() NodeID { return n.id }

// ParentID returns the parent's address, or NoNode for genesis.
func (n *ChainNode) ParentID() NodeID { return n.parentID }

// IsGenesis returns whether the node has no parent.
func (n *ChainNode) IsGenesis() bool { return n.parentID == NoNode }

// Height returns the node's height.
func (n *ChainNode) Height() uint32 { return n.height }

// Hash returns the block hash.
func (n *ChainNode) Hash() *externalapi.DomainHash {
	hash := n.hash
	return &hash
}

// Header returns a copy of the block header.
func (n *ChainNode) Header() *externalapi.DomainBlockHeader {
	header := n.header
	return &header
}

// TimeInSeconds returns the header timestamp.
func (n *ChainNode) TimeInSeconds() int64 { return n.header.Timestamp.Unix() }

// Bits returns the header's compact target.
func (n *ChainNode) Bits() uint32 { return n.header.Bits }

// ChainTrust returns the cumulative trust of the branch ending at this node.
func (n *ChainNode) ChainTrust() *big.Int { return new(big.Int).Set(n.chainTrust) }

// IsProofOfStake returns whether the block is proof-of-stake.
func (n *ChainNode) IsProofOfStake() bool { return n.stake.ProofOfStake }

// StakeEntropyBit returns the bit this block contributes to stake modifiers.
func (n *ChainNode) StakeEntropyBit() uint32 { return n.stake.StakeEntropyBit }

// GeneratedStakeModifier returns whether this block generated a new modifier.
func (n *ChainNode) GeneratedStakeModifier() bool { return n.stake.ModifierGenerated }

// StakeModifier returns the stake modifier in effect at this block.
func (n *ChainNode) StakeModifier() uint64 { return n.stake.StakeModifier }

// StakeModifierChecksum returns the running modifier checksum.
func (n *ChainNode) StakeModifierChecksum() uint32 { return n.stake.ModifierChecksum }

// ProofHash returns the kernel hash of a proof-of-stake block. It is zero
// for proof-of-work blocks.
func (n *ChainNode) ProofHash() *externalapi.DomainHash {
	hash := n.stake.ProofHash
	return &hash
}

// StakeTime returns the coinstake timestamp of a proof-of-stake block.
func (n *ChainNode) StakeTime() uint32 { return n.stake.StakeTime }

// PrevOutStake returns the kernel outpoint of a proof-of-stake block.
func (n *ChainNode) PrevOutStake() externalapi.DomainOutpoint { return n.stake.PrevOutStake }

// Flags returns the node's stake flags.
func (n *ChainNode) Flags() uint32 { return n.stake.Flags() }
