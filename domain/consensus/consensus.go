package consensus

import (
	"sync"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// Consensus maintains the chain index of a single network and validates the
// blocks extending it
type Consensus interface {
	InsertGenesis(genesis *externalapi.DomainBlock) (*model.ChainNode, error)
	ValidateAndInsertBlock(block *externalapi.DomainBlock) (*model.ChainNode, error)

	GetBlock(blockHash *externalapi.DomainHash) (*externalapi.DomainBlock, error)
	LookupByHash(blockHash *externalapi.DomainHash) (*model.ChainNode, bool)
	Tip() *model.ChainNode
	BlockCount() int

	NextWorkRequired(newBlockTime int64, proofOfStake bool) (difficulty.Target, error)
	ProofOfWorkReward(height uint32, fees int64, prevHash *externalapi.DomainHash) (int64, error)
	ProofOfStakeReward(height uint32, coinAge int64, coinValue int64, fees int64) int64
	KernelStakeModifier(hashBlockFrom *externalapi.DomainHash, adjustedTime int64) (
		modifier uint64, height uint32, blockTime int64, err error)
}

type consensus struct {
	lock       sync.Mutex
	params     *chaincfg.Params
	chainIndex model.ChainIndexReader

	blockProcessor       model.BlockProcessor
	difficultyManager    model.DifficultyManager
	stakeModifierManager model.StakeModifierManager
	coinbaseManager      model.CoinbaseManager

	blockStore model.BlockStore
}

// InsertGenesis inserts the genesis block. It fails if the chain index is
// not empty.
func (s *consensus) InsertGenesis(genesis *externalapi.DomainBlock) (*model.ChainNode, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.blockProcessor.InsertGenesis(genesis)
}

// ValidateAndInsertBlock validates the given block and, if valid, inserts it
// into the chain index
func (s *consensus) ValidateAndInsertBlock(block *externalapi.DomainBlock) (*model.ChainNode, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.chainIndex.Count() == 0 {
		return nil, errors.New("cannot validate a block before the genesis was inserted")
	}
	return s.blockProcessor.ValidateAndInsertBlock(block)
}

func (s *consensus) GetBlock(blockHash *externalapi.DomainHash) (*externalapi.DomainBlock, error) {
	block, err := s.blockStore.Block(blockHash)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, errors.Errorf("block %s does not exist", blockHash)
	}
	return block, nil
}

func (s *consensus) LookupByHash(blockHash *externalapi.DomainHash) (*model.ChainNode, bool) {
	return s.chainIndex.LookupByHash(blockHash)
}

func (s *consensus) Tip() *model.ChainNode {
	return s.chainIndex.Tip()
}

func (s *consensus) BlockCount() int {
	return s.chainIndex.Count()
}

// NextWorkRequired returns the target a block of the given type and time has
// to meet to extend the current tip
func (s *consensus) NextWorkRequired(newBlockTime int64, proofOfStake bool) (difficulty.Target, error) {
	return s.difficultyManager.NextWorkRequired(s.chainIndex.Tip(), newBlockTime, proofOfStake)
}

func (s *consensus) ProofOfWorkReward(height uint32, fees int64, prevHash *externalapi.DomainHash) (int64, error) {
	return s.coinbaseManager.ProofOfWorkReward(height, fees, prevHash)
}

func (s *consensus) ProofOfStakeReward(height uint32, coinAge int64, coinValue int64, fees int64) int64 {
	return s.coinbaseManager.ProofOfStakeReward(height, coinAge, coinValue, fees)
}

func (s *consensus) KernelStakeModifier(hashBlockFrom *externalapi.DomainHash, adjustedTime int64) (
	modifier uint64, height uint32, blockTime int64, err error) {

	return s.stakeModifierManager.KernelStakeModifier(hashBlockFrom, adjustedTime)
}
