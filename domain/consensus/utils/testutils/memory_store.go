package testutils

import (
	"sync"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
)

// MemoryStore keeps blocks and transactions in maps. It implements the
// TransactionStore, BlockTransactionMapStore, BlockStore and BlockWriter
// interfaces of the model package.
type MemoryStore struct {
	sync.RWMutex

	blocks            map[externalapi.DomainHash]*externalapi.DomainBlock
	transactions      map[externalapi.DomainTransactionID]*externalapi.DomainTransaction
	transactionBlocks map[externalapi.DomainTransactionID]externalapi.DomainHash
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blocks:            make(map[externalapi.DomainHash]*externalapi.DomainBlock),
		transactions:      make(map[externalapi.DomainTransactionID]*externalapi.DomainTransaction),
		transactionBlocks: make(map[externalapi.DomainTransactionID]externalapi.DomainHash),
	}
}

// StoreBlock stores block and maps each of its transactions to it.
func (s *MemoryStore) StoreBlock(block *externalapi.DomainBlock) error {
	s.Lock()
	defer s.Unlock()

	blockHash := consensushashing.BlockHash(block)
	s.blocks[*blockHash] = block
	for _, tx := range block.Transactions {
		transactionID := consensushashing.TransactionID(tx)
		s.transactions[*transactionID] = tx
		s.transactionBlocks[*transactionID] = *blockHash
	}
	return nil
}

// Transaction returns the stored transaction, or nil if it is unknown.
func (s *MemoryStore) Transaction(transactionID *externalapi.DomainTransactionID) (*externalapi.DomainTransaction, error) {
	s.RLock()
	defer s.RUnlock()

	return s.transactions[*transactionID], nil
}

// BlockHash returns the hash of the block containing the transaction, or nil
// if it is unknown.
func (s *MemoryStore) BlockHash(transactionID *externalapi.DomainTransactionID) (*externalapi.DomainHash, error) {
	s.RLock()
	defer s.RUnlock()

	blockHash, ok := s.transactionBlocks[*transactionID]
	if !ok {
		return nil, nil
	}
	return &blockHash, nil
}

// Block returns the stored block, or nil if it is unknown.
func (s *MemoryStore) Block(blockHash *externalapi.DomainHash) (*externalapi.DomainBlock, error) {
	s.RLock()
	defer s.RUnlock()

	return s.blocks[*blockHash], nil
}
