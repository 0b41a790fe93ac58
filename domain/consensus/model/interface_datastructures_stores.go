package model

import "github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"

// TransactionStore resolves transactions by ID. A missing transaction is
// reported as (nil, nil).
type TransactionStore interface {
	Transaction(transactionID *externalapi.DomainTransactionID) (*externalapi.DomainTransaction, error)
}

// BlockTransactionMapStore resolves the block containing a transaction. A
// missing entry is reported as (nil, nil).
type BlockTransactionMapStore interface {
	BlockHash(transactionID *externalapi.DomainTransactionID) (*externalapi.DomainHash, error)
}

// BlockStore resolves full blocks by hash. A missing block is reported as
// (nil, nil).
type BlockStore interface {
	Block(blockHash *externalapi.DomainHash) (*externalapi.DomainBlock, error)
}

// BlockWriter persists an accepted block together with its transactions and
// their block mapping, so that later coinstakes can resolve what they spend.
type BlockWriter interface {
	StoreBlock(block *externalapi.DomainBlock) error
}
