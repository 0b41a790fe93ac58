package hashes

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
)

// Hash256 returns the double SHA-256 of data.
func Hash256(data []byte) *externalapi.DomainHash {
	hash := chainhash.DoubleHashH(data)
	return &hash
}

// ToBig interprets hash as an unsigned 256-bit little-endian number.
func ToBig(hash *externalapi.DomainHash) *big.Int {
	return blockchain.HashToBig(hash)
}

// Less returns true iff hash a is numerically less than hash b.
func Less(a, b *externalapi.DomainHash) bool {
	return cmp(a, b) < 0
}

func cmp(a, b *externalapi.DomainHash) int {
	// Hashes are little endian, so compare from the last byte.
	for i := externalapi.DomainHashSize - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// ShiftRight returns hash >> bits, treating hash as an unsigned 256-bit number.
func ShiftRight(hash *externalapi.DomainHash, bits uint) *externalapi.DomainHash {
	return FromBig(new(big.Int).Rsh(ToBig(hash), bits))
}

// FromBig converts a non-negative number below 2^256 into a little-endian hash.
func FromBig(n *big.Int) *externalapi.DomainHash {
	var hash externalapi.DomainHash
	bigEndian := n.Bytes()
	for i, b := range bigEndian {
		hash[len(bigEndian)-1-i] = b
	}
	return &hash
}

// FromBytes creates a DomainHash from the given byte slice
func FromBytes(hashBytes []byte) (*externalapi.DomainHash, error) {
	return chainhash.NewHash(hashBytes)
}
