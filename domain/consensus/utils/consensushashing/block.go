package consensushashing

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// Netcoin's proof-of-work is scrypt with N=1024, r=1, p=1, salted with the
// header itself.
const (
	scryptN      = 1024
	scryptR      = 1
	scryptP      = 1
	scryptKeyLen = externalapi.DomainHashSize
)

// BlockHash returns the given block's hash
func BlockHash(block *externalapi.DomainBlock) *externalapi.DomainHash {
	return HeaderHash(block.Header)
}

// HeaderHash returns the double SHA-256 of the header.
func HeaderHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	hash := header.BlockHash()
	return &hash
}

// ProofOfWorkHash returns the scrypt hash a proof-of-work header must meet
// its target with.
func ProofOfWorkHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	serializedHeader, err := serialization.SerializeHeader(header)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. Header serialization into a buffer never fails"))
	}
	key, err := scrypt.Key(serializedHeader, serializedHeader, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. scrypt parameters are constant and valid"))
	}
	var hash externalapi.DomainHash
	copy(hash[:], key)
	return &hash
}

// StakeEntropyBit returns the bit a block contributes to stake modifier
// generation: the lowest bit of its hash.
func StakeEntropyBit(blockHash *externalapi.DomainHash) uint32 {
	return uint32(blockHash[0] & 1)
}
