package externalapi

import (
	"fmt"
	"math"
)

// DomainTransaction represents a Netcoin transaction. Unlike Bitcoin
// transactions it carries a timestamp, which is part of its serialization
// and of the stake kernel.
type DomainTransaction struct {
	Version  int32
	Time     uint32
	Inputs   []*DomainTransactionInput
	Outputs  []*DomainTransactionOutput
	LockTime uint32
}

// DomainTransactionInput represents a Netcoin transaction input
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint
	SignatureScript  []byte
	Sequence         uint32
}

// DomainOutpoint represents a Netcoin transaction outpoint
type DomainOutpoint struct {
	TransactionID DomainTransactionID
	Index         uint32
}

// String stringifies an outpoint.
func (op DomainOutpoint) String() string {
	return fmt.Sprintf("%s:%d", op.TransactionID, op.Index)
}

// IsNull returns whether the outpoint is the null outpoint used by coinbase inputs.
func (op DomainOutpoint) IsNull() bool {
	return op.Index == math.MaxUint32 && op.TransactionID == (DomainTransactionID{})
}

// DomainTransactionOutput represents a Netcoin transaction output
type DomainTransactionOutput struct {
	Value           int64
	ScriptPublicKey []byte
}

// IsEmpty returns whether the output carries neither value nor script. The
// first output of a coinstake is always empty.
func (output *DomainTransactionOutput) IsEmpty() bool {
	return output.Value == 0 && len(output.ScriptPublicKey) == 0
}

// DomainTransactionID represents the ID of a Netcoin transaction
type DomainTransactionID = DomainHash

// IsCoinBase returns whether the transaction is a coinbase.
func (tx *DomainTransaction) IsCoinBase() bool {
	return len(tx.Inputs) == 1 && tx.Inputs[0].PreviousOutpoint.IsNull()
}

// IsCoinStake returns whether the transaction has the coinstake shape: a
// non-null first input, at least two outputs, and an empty first output.
func (tx *DomainTransaction) IsCoinStake() bool {
	return len(tx.Inputs) > 0 &&
		!tx.Inputs[0].PreviousOutpoint.IsNull() &&
		len(tx.Outputs) >= 2 &&
		tx.Outputs[0].IsEmpty()
}

// OutputValue returns the sum of all output values.
func (tx *DomainTransaction) OutputValue() int64 {
	var total int64
	for _, output := range tx.Outputs {
		total += output.Value
	}
	return total
}
