package consensushashing

import (
	"testing"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
)

func TestTransactionIDCommitsToTime(t *testing.T) {
	tx := &externalapi.DomainTransaction{
		Version: 1,
		Time:    1400000000,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{Index: 0},
			SignatureScript:  []byte{0x51},
			Sequence:         0xffffffff,
		}},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 5, ScriptPublicKey: []byte{0x51}}},
	}
	id := TransactionID(tx)
	if *TransactionID(tx) != *id {
		t.Fatalf("TransactionID is not deterministic")
	}

	later := *tx
	later.Time++
	if *TransactionID(&later) == *id {
		t.Fatalf("TransactionID doesn't depend on the transaction time")
	}
}

func TestTransactionIndex(t *testing.T) {
	coinbase := &externalapi.DomainTransaction{
		Version: 1,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{Index: 0xffffffff},
		}},
	}
	other := &externalapi.DomainTransaction{Version: 1, Time: 7}
	block := &externalapi.DomainBlock{Transactions: []*externalapi.DomainTransaction{coinbase, other}}

	if index := TransactionIndex(block, TransactionID(other)); index != 1 {
		t.Fatalf("TransactionIndex: expected 1 but got %d", index)
	}
	missing := &externalapi.DomainTransaction{Version: 2}
	if index := TransactionIndex(block, TransactionID(missing)); index != -1 {
		t.Fatalf("TransactionIndex: expected -1 but got %d", index)
	}
}
