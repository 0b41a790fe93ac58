package blockprocessor

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/pkg/errors"
)

func (bp *blockProcessor) insertGenesis(genesis *externalapi.DomainBlock) (*model.ChainNode, error) {
	if count := bp.chainIndex.Count(); count != 0 {
		return nil, errors.Errorf("cannot insert a genesis into a chain index holding %d blocks", count)
	}

	blockHash := consensushashing.BlockHash(genesis)
	if expected := bp.params.GenesisHash(); *blockHash != *expected {
		return nil, errors.Wrapf(ruleerrors.ErrUnexpectedGenesis, "block %s is not the genesis %s "+
			"of network %s", blockHash, expected, bp.params.Name())
	}
	stake := &model.StakeData{
		StakeEntropyBit: consensushashing.StakeEntropyBit(blockHash),
	}
	err := bp.setStakeModifier(nil, 0, stake)
	if err != nil {
		return nil, err
	}

	err = bp.blockWriter.StoreBlock(genesis)
	if err != nil {
		return nil, err
	}
	node, err := bp.chainIndex.Insert(genesis.Header, stake)
	if err != nil {
		return nil, err
	}
	log.Infof("Inserted genesis block %s with stake modifier checksum %08x", blockHash, stake.ModifierChecksum)
	return node, nil
}

func (bp *blockProcessor) validateAndInsertBlock(block *externalapi.DomainBlock) (*model.ChainNode, error) {
	blockHash := consensushashing.BlockHash(block)
	err := checkBlockMerkleRoot(block)
	if err != nil {
		return nil, err
	}
	if bp.chainIndex.Contains(blockHash) {
		return nil, errors.Wrapf(ruleerrors.ErrDuplicateBlock, "block %s is already indexed", blockHash)
	}

	parent, ok := bp.chainIndex.LookupByHash(&block.Header.PrevBlock)
	if !ok {
		return nil, ruleerrors.NewErrMissingData("parent block", &block.Header.PrevBlock)
	}
	height := parent.Height() + 1
	proofOfStake := block.IsProofOfStake()

	err = bp.checkBlockType(height, proofOfStake)
	if err != nil {
		return nil, err
	}
	err = bp.checkDifficulty(parent, block, proofOfStake)
	if err != nil {
		return nil, err
	}

	stake := &model.StakeData{
		ProofOfStake:    proofOfStake,
		StakeEntropyBit: consensushashing.StakeEntropyBit(blockHash),
	}
	if proofOfStake {
		err = bp.checkProofOfStake(block, blockHash, height, stake)
	} else {
		err = bp.checkProofOfWork(block)
	}
	if err != nil {
		return nil, err
	}

	err = bp.checkBlockRewards(block, height)
	if err != nil {
		return nil, err
	}

	err = bp.setStakeModifier(parent, height, stake)
	if err != nil {
		return nil, err
	}

	err = bp.blockWriter.StoreBlock(block)
	if err != nil {
		return nil, err
	}
	node, err := bp.chainIndex.Insert(block.Header, stake)
	if err != nil {
		return nil, err
	}

	log.Infof("Accepted %s block %s at height %d (modifier %016x, generated %t)",
		proofType(proofOfStake), blockHash, height, stake.StakeModifier, stake.ModifierGenerated)
	return node, nil
}

// checkBlockType enforces the heights at which each block type is accepted.
func (bp *blockProcessor) checkBlockType(height uint32, proofOfStake bool) error {
	forks := bp.params.Forks()
	if proofOfStake && height < forks.PoSAndDigiShield {
		return errors.Wrapf(ruleerrors.ErrProofOfStakeTooEarly,
			"proof-of-stake block at height %d is below the activation height %d", height, forks.PoSAndDigiShield)
	}
	if !proofOfStake && height > forks.FinalPoW {
		return errors.Wrapf(ruleerrors.ErrProofOfWorkAfterFinalPoW,
			"proof-of-work block at height %d is above the last proof-of-work height %d", height, forks.FinalPoW)
	}
	return nil
}

func (bp *blockProcessor) checkDifficulty(parent *model.ChainNode, block *externalapi.DomainBlock,
	proofOfStake bool) error {

	target, err := bp.difficultyManager.NextWorkRequired(parent, block.TimeInSeconds(), proofOfStake)
	if err != nil {
		return err
	}
	if expectedBits := target.ToCompact(); block.Header.Bits != expectedBits {
		return errors.Wrapf(ruleerrors.ErrUnexpectedDifficulty, "block difficulty of %08x is not the "+
			"expected value of %08x for %s block at height %d", block.Header.Bits, expectedBits,
			proofType(proofOfStake), parent.Height()+1)
	}
	return nil
}

// checkProofOfWork checks the scrypt hash of the header. The proof hash of a
// proof-of-work block stays zero.
func (bp *blockProcessor) checkProofOfWork(block *externalapi.DomainBlock) error {
	return bp.difficultyManager.CheckProofOfWork(consensushashing.ProofOfWorkHash(block.Header), block.Header.Bits)
}

func (bp *blockProcessor) checkProofOfStake(block *externalapi.DomainBlock, blockHash *externalapi.DomainHash,
	height uint32, stake *model.StakeData) error {

	coinStake := block.Transactions[1]
	err := bp.kernelValidator.CheckCoinStakeTimestamp(block.TimeInSeconds(), int64(coinStake.Time))
	if err != nil {
		return err
	}
	err = checkBlockSignature(block, blockHash)
	if err != nil {
		return err
	}

	proofHash, _, err := bp.kernelValidator.CheckProofOfStake(coinStake, block.Header.Bits, height,
		bp.timeSource.AdjustedTime())
	if err != nil {
		return err
	}
	stake.ProofHash = *proofHash
	stake.StakeTime = coinStake.Time
	stake.PrevOutStake = coinStake.Inputs[0].PreviousOutpoint
	return nil
}

// setStakeModifier fills in the stake modifier of a block at height
// extending parent, then gates its checksum on the checkpoints.
func (bp *blockProcessor) setStakeModifier(parent *model.ChainNode, height uint32, stake *model.StakeData) error {
	modifier, generated, err := bp.stakeModifierManager.ComputeNextStakeModifier(parent)
	if err != nil {
		return err
	}
	stake.StakeModifier = modifier
	stake.ModifierGenerated = generated
	stake.ModifierChecksum = bp.stakeModifierManager.StakeModifierChecksum(parent, stake)
	return bp.stakeModifierManager.CheckStakeModifierCheckpoints(height, stake.ModifierChecksum)
}

func proofType(proofOfStake bool) string {
	if proofOfStake {
		return "proof-of-stake"
	}
	return "proof-of-work"
}
