package serialization

import (
	"encoding/binary"
	"io"

	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

// protocolVersion is passed to the btcd wire helpers. Netcoin's encodings
// don't vary by protocol version.
const protocolVersion = 0

// maxScriptSize bounds every script read from the wire.
const maxScriptSize = 10_000

// maxItemsPerMessage bounds the number of inputs, outputs or transactions
// read from the wire.
const maxItemsPerMessage = 1_000_000

var errMalformed = errors.New("malformed serialization")

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func readCount(r io.Reader, fieldName string) (uint64, error) {
	count, err := wire.ReadVarInt(r, protocolVersion)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if count > maxItemsPerMessage {
		return 0, errors.Wrapf(errMalformed, "%s count %d is above the maximum of %d",
			fieldName, count, maxItemsPerMessage)
	}
	return count, nil
}
