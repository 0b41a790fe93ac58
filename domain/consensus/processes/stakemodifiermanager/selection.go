package stakemodifiermanager

import (
	"sort"

	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

const (
	selectionRounds       = 64
	modifierIntervalRatio = 3
)

// selectionIntervalSection returns the length in seconds of the given
// selection round. Early rounds are shorter than later ones.
func (smm *stakeModifierManager) selectionIntervalSection(section int) int64 {
	interval := smm.modifierIntervalSeconds()
	return interval * 63 / (63 + (63-int64(section))*(modifierIntervalRatio-1))
}

// StakeModifierSelectionInterval returns the total length in seconds of all
// selection rounds.
func (smm *stakeModifierManager) StakeModifierSelectionInterval() int64 {
	var selectionInterval int64
	for section := 0; section < selectionRounds; section++ {
		selectionInterval += smm.selectionIntervalSection(section)
	}
	return selectionInterval
}

type candidate struct {
	timestamp int64
	hash      externalapi.DomainHash
}

// collectCandidates walks back from prev and returns the blocks whose own
// timestamp is not before selectionIntervalStart, ordered by timestamp.
// Blocks sharing a timestamp keep the order in which they were visited.
func (smm *stakeModifierManager) collectCandidates(prev *model.ChainNode, selectionIntervalStart int64) []candidate {
	var candidates []candidate
	for node := prev; node != nil && node.TimeInSeconds() >= selectionIntervalStart; node = smm.chainIndex.Parent(node) {
		candidates = append(candidates, candidate{timestamp: node.TimeInSeconds(), hash: *node.Hash()})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].timestamp < candidates[j].timestamp
	})
	return candidates
}

// selectionHash returns Hash256(proof || previousModifier). The proof is
// the kernel hash of a proof-of-stake block and the block hash of a
// proof-of-work block. The result is divided by 2^32 for proof-of-stake
// blocks so that they win over proof-of-work blocks.
func selectionHash(node *model.ChainNode, previousModifier uint64) *externalapi.DomainHash {
	proof := node.Hash()
	if node.IsProofOfStake() {
		proof = node.ProofHash()
	}

	writer := hashes.NewHash256Writer()
	writer.WriteHash(proof)
	writer.WriteUint64(previousModifier)
	hash := writer.Finalize()
	if node.IsProofOfStake() {
		hash = hashes.ShiftRight(hash, 32)
	}
	return hash
}

// selectBlockFromCandidates picks the candidate with the smallest selection
// hash among those not selected yet. Once a block has been picked, the scan
// ends at the first candidate later than selectionIntervalStop.
func (smm *stakeModifierManager) selectBlockFromCandidates(candidates []candidate,
	selected map[externalapi.DomainHash]struct{}, selectionIntervalStop int64,
	previousModifier uint64) (*model.ChainNode, error) {

	var best *model.ChainNode
	var bestHash *externalapi.DomainHash
	for i := range candidates {
		node, ok := smm.chainIndex.LookupByHash(&candidates[i].hash)
		if !ok {
			return nil, errors.Errorf("failed to find block index for candidate block %s", &candidates[i].hash)
		}
		if best != nil && node.TimeInSeconds() > selectionIntervalStop {
			break
		}
		if _, ok := selected[candidates[i].hash]; ok {
			continue
		}
		hash := selectionHash(node, previousModifier)
		if best == nil || hashes.Less(hash, bestHash) {
			best = node
			bestHash = hash
		}
	}
	if best != nil {
		log.Tracef("Selection hash %s of block %s", bestHash, best.Hash())
	}
	return best, nil
}
