package serialization

import (
	"bytes"
	"io"

	"github.com/btcsuite/btcd/wire"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// SerializeTransaction returns the wire encoding of tx: version, time,
// inputs, outputs and lock time.
func SerializeTransaction(tx *externalapi.DomainTransaction) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, TransactionSerializeSize(tx)))
	err := WriteTransaction(buf, tx)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTransaction writes the wire encoding of tx to w.
func WriteTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	err := writeUint32(w, uint32(tx.Version))
	if err != nil {
		return err
	}
	err = writeUint32(w, tx.Time)
	if err != nil {
		return err
	}

	err = wire.WriteVarInt(w, protocolVersion, uint64(len(tx.Inputs)))
	if err != nil {
		return errors.WithStack(err)
	}
	for _, input := range tx.Inputs {
		err = writeInput(w, input)
		if err != nil {
			return err
		}
	}

	err = wire.WriteVarInt(w, protocolVersion, uint64(len(tx.Outputs)))
	if err != nil {
		return errors.WithStack(err)
	}
	for _, output := range tx.Outputs {
		err = writeOutput(w, output)
		if err != nil {
			return err
		}
	}

	return writeUint32(w, tx.LockTime)
}

func writeInput(w io.Writer, input *externalapi.DomainTransactionInput) error {
	_, err := w.Write(input.PreviousOutpoint.TransactionID[:])
	if err != nil {
		return errors.WithStack(err)
	}
	err = writeUint32(w, input.PreviousOutpoint.Index)
	if err != nil {
		return err
	}
	err = wire.WriteVarBytes(w, protocolVersion, input.SignatureScript)
	if err != nil {
		return errors.WithStack(err)
	}
	return writeUint32(w, input.Sequence)
}

func writeOutput(w io.Writer, output *externalapi.DomainTransactionOutput) error {
	err := writeUint64(w, uint64(output.Value))
	if err != nil {
		return err
	}
	return errors.WithStack(wire.WriteVarBytes(w, protocolVersion, output.ScriptPublicKey))
}

// DeserializeTransaction decodes a transaction produced by SerializeTransaction.
func DeserializeTransaction(serialized []byte) (*externalapi.DomainTransaction, error) {
	r := bytes.NewReader(serialized)
	tx, err := ReadTransaction(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.Wrapf(errMalformed, "%d trailing bytes after transaction", r.Len())
	}
	return tx, nil
}

// ReadTransaction reads a single transaction from r.
func ReadTransaction(r io.Reader) (*externalapi.DomainTransaction, error) {
	version, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	txTime, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	inputCount, err := readCount(r, "input")
	if err != nil {
		return nil, err
	}
	inputs := make([]*externalapi.DomainTransactionInput, inputCount)
	for i := range inputs {
		inputs[i], err = readInput(r)
		if err != nil {
			return nil, err
		}
	}

	outputCount, err := readCount(r, "output")
	if err != nil {
		return nil, err
	}
	outputs := make([]*externalapi.DomainTransactionOutput, outputCount)
	for i := range outputs {
		outputs[i], err = readOutput(r)
		if err != nil {
			return nil, err
		}
	}

	lockTime, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	return &externalapi.DomainTransaction{
		Version:  int32(version),
		Time:     txTime,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
	}, nil
}

func readInput(r io.Reader) (*externalapi.DomainTransactionInput, error) {
	input := &externalapi.DomainTransactionInput{}
	_, err := io.ReadFull(r, input.PreviousOutpoint.TransactionID[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	input.PreviousOutpoint.Index, err = readUint32(r)
	if err != nil {
		return nil, err
	}
	input.SignatureScript, err = wire.ReadVarBytes(r, protocolVersion, maxScriptSize, "signature script")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	input.Sequence, err = readUint32(r)
	if err != nil {
		return nil, err
	}
	return input, nil
}

func readOutput(r io.Reader) (*externalapi.DomainTransactionOutput, error) {
	value, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	scriptPublicKey, err := wire.ReadVarBytes(r, protocolVersion, maxScriptSize, "script public key")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &externalapi.DomainTransactionOutput{
		Value:           int64(value),
		ScriptPublicKey: scriptPublicKey,
	}, nil
}

// TransactionSerializeSize returns the number of bytes SerializeTransaction
// produces for tx.
func TransactionSerializeSize(tx *externalapi.DomainTransaction) int {
	// Version, time and lock time.
	size := 12
	size += wire.VarIntSerializeSize(uint64(len(tx.Inputs)))
	for _, input := range tx.Inputs {
		// Outpoint, script and sequence.
		size += externalapi.DomainHashSize + 4 +
			wire.VarIntSerializeSize(uint64(len(input.SignatureScript))) + len(input.SignatureScript) + 4
	}
	size += wire.VarIntSerializeSize(uint64(len(tx.Outputs)))
	for _, output := range tx.Outputs {
		size += 8 + wire.VarIntSerializeSize(uint64(len(output.ScriptPublicKey))) + len(output.ScriptPublicKey)
	}
	return size
}
