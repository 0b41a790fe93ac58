package difficultymanager

import (
	"github.com/netcoin-project/netcoind/domain/chaincfg"
)

// Algorithm identifies one of the retargeting algorithms used over Netcoin's
// history.
type Algorithm int

// The retargeting algorithms, in order of activation.
const (
	AlgorithmV1 Algorithm = iota
	AlgorithmKGW
	AlgorithmDigiShieldA
	AlgorithmDigiShieldB
	AlgorithmPoSContinuous
)

var algorithmNames = map[Algorithm]string{
	AlgorithmV1:            "v1",
	AlgorithmKGW:           "kgw",
	AlgorithmDigiShieldA:   "digishield-a",
	AlgorithmDigiShieldB:   "digishield-b",
	AlgorithmPoSContinuous: "pos-continuous",
}

func (a Algorithm) String() string {
	name, ok := algorithmNames[a]
	if !ok {
		return "unknown"
	}
	return name
}

// SelectAlgorithm returns the algorithm that computes the next required
// target. For proof-of-stake, referenceHeight is the height of the last
// block; for proof-of-work, it is the height of the last proof-of-work block.
func SelectAlgorithm(params *chaincfg.Params, proofOfStake bool, referenceHeight uint32) Algorithm {
	forks := params.Forks()
	if proofOfStake {
		if referenceHeight > forks.PoSContinuousRetarget {
			return AlgorithmPoSContinuous
		}
		return AlgorithmDigiShieldA
	}

	nextHeight := referenceHeight + 1
	switch {
	case nextHeight >= forks.DigiShieldFix:
		return AlgorithmDigiShieldB
	case nextHeight >= forks.PoSAndDigiShield:
		return AlgorithmDigiShieldA
	case nextHeight >= forks.KGW:
		return AlgorithmKGW
	default:
		return AlgorithmV1
	}
}
