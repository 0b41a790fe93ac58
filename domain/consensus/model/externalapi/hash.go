package externalapi

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// DomainHashSize of array used to store hashes.
const DomainHashSize = chainhash.HashSize

// DomainHash is the domain representation of a Hash. Bytes are stored in
// little-endian order; String returns the conventional byte-reversed hex.
type DomainHash = chainhash.Hash

// NewDomainHashFromString parses a byte-reversed hex hash string.
func NewDomainHashFromString(hashString string) (*DomainHash, error) {
	return chainhash.NewHashFromStr(hashString)
}
