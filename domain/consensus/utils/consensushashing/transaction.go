package consensushashing

import (
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// TransactionID returns the double SHA-256 of the transaction's serialization.
func TransactionID(tx *externalapi.DomainTransaction) *externalapi.DomainTransactionID {
	writer := hashes.NewHash256Writer()
	err := serialization.WriteTransaction(writer, tx)
	if err != nil {
		// It seems like this could only happen if the writer returned an error.
		// and this writer should never return an error (no allocations or possible failures)
		panic(errors.Wrap(err, "this should never happen. Hash digest should never return an error"))
	}
	return writer.Finalize()
}

// TransactionIndex returns the position of the transaction with the given ID
// in block, or -1 if the block doesn't contain it.
func TransactionIndex(block *externalapi.DomainBlock, transactionID *externalapi.DomainTransactionID) int {
	for i, tx := range block.Transactions {
		if *TransactionID(tx) == *transactionID {
			return i
		}
	}
	return -1
}
