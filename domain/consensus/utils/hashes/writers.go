package hashes

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// HashWriter is used to incrementally hash data without concatenating all of the data to a single buffer.
// It exposes an io.Writer api and a Finalize function that returns the double SHA-256 of everything written.
type HashWriter struct {
	hash.Hash
}

// NewHash256Writer returns a HashWriter whose Finalize matches Hash256.
func NewHash256Writer() HashWriter {
	return HashWriter{sha256.New()}
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// hash.Hash promises to never return an error.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// WriteUint32 writes v in little-endian order.
func (h HashWriter) WriteUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	h.InfallibleWrite(buf[:])
}

// WriteUint64 writes v in little-endian order.
func (h HashWriter) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.InfallibleWrite(buf[:])
}

// WriteHash writes the raw little-endian bytes of hash.
func (h HashWriter) WriteHash(hash *externalapi.DomainHash) {
	h.InfallibleWrite(hash[:])
}

// Finalize returns the resulting hash
func (h HashWriter) Finalize() *externalapi.DomainHash {
	first := h.Sum(nil)
	sum := chainhash.HashH(first)
	return &sum
}
