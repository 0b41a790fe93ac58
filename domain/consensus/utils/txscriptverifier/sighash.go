package txscriptverifier

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/txscript"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// sigHashMask selects the base signature hash type.
const sigHashMask = 0x1f

// SignatureHash returns the legacy signature hash of input inputIndex of tx:
// the double SHA-256 of a copy of tx, serialized with its time and trimmed
// as hashType requires, followed by hashType. scriptCode takes the place of
// the signature script of the signed input. Every other signature script
// is blanked.
//
// A SigHashSingle input without a matching output signs the hash 1, as
// every Bitcoin-derived chain does.
func SignatureHash(tx *externalapi.DomainTransaction, inputIndex int, scriptCode []byte,
	hashType txscript.SigHashType) (*externalapi.DomainHash, error) {

	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return nil, errors.Errorf("input index %d is out of range for a transaction with %d inputs",
			inputIndex, len(tx.Inputs))
	}
	if hashType&sigHashMask == txscript.SigHashSingle && inputIndex >= len(tx.Outputs) {
		return &externalapi.DomainHash{0x01}, nil
	}

	txCopy := *tx
	txCopy.Inputs = make([]*externalapi.DomainTransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputCopy := *input
		inputCopy.SignatureScript = nil
		if i == inputIndex {
			inputCopy.SignatureScript = scriptCode
		}
		txCopy.Inputs[i] = &inputCopy
	}

	switch hashType & sigHashMask {
	case txscript.SigHashNone:
		txCopy.Outputs = nil
		zeroOtherSequences(txCopy.Inputs, inputIndex)
	case txscript.SigHashSingle:
		txCopy.Outputs = make([]*externalapi.DomainTransactionOutput, inputIndex+1)
		for i := 0; i < inputIndex; i++ {
			txCopy.Outputs[i] = &externalapi.DomainTransactionOutput{Value: -1}
		}
		txCopy.Outputs[inputIndex] = tx.Outputs[inputIndex]
		zeroOtherSequences(txCopy.Inputs, inputIndex)
	}

	if hashType&txscript.SigHashAnyOneCanPay != 0 {
		txCopy.Inputs = txCopy.Inputs[inputIndex : inputIndex+1]
	}

	serialized, err := serialization.SerializeTransaction(&txCopy)
	if err != nil {
		return nil, err
	}
	serialized = binary.LittleEndian.AppendUint32(serialized, uint32(hashType))
	return hashes.Hash256(serialized), nil
}

func zeroOtherSequences(inputs []*externalapi.DomainTransactionInput, inputIndex int) {
	for i, input := range inputs {
		if i != inputIndex {
			input.Sequence = 0
		}
	}
}
