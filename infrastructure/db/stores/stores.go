package stores

import (
	"encoding/binary"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/serialization"
	"github.com/netcoin-project/netcoind/infrastructure/db/database"
	"github.com/pkg/errors"
)

var (
	blocksBucket            = database.MakeBucket([]byte("blocks"))
	transactionsBucket      = database.MakeBucket([]byte("transactions"))
	transactionBlocksBucket = database.MakeBucket([]byte("transaction-blocks"))
	acceptedBucket          = database.MakeBucket([]byte("accepted"))
)

// Stores persists accepted blocks in a database. Blocks and transactions
// are kept in their serialized form, and every stored block is appended to
// an acceptance log so that a chain can be replayed in the order it was
// built.
type Stores struct {
	db database.Database

	lock         sync.Mutex
	nextSequence uint64
}

// Compile time checks to make sure Stores satisfies the consensus stores.
var (
	_ model.TransactionStore         = (*Stores)(nil)
	_ model.BlockTransactionMapStore = (*Stores)(nil)
	_ model.BlockStore               = (*Stores)(nil)
	_ model.BlockWriter              = (*Stores)(nil)
)

// New returns Stores over db. The acceptance log of a previously used
// database is continued.
func New(db database.Database) (*Stores, error) {
	count, err := countAccepted(db)
	if err != nil {
		return nil, err
	}
	return &Stores{db: db, nextSequence: count}, nil
}

func countAccepted(db database.Database) (uint64, error) {
	cursor, err := db.Cursor(acceptedBucket)
	if err != nil {
		return 0, err
	}
	defer cursor.Close()

	count := uint64(0)
	for ok := cursor.First(); ok; ok = cursor.Next() {
		count++
	}
	return count, nil
}

func sequenceKey(sequence uint64) *database.Key {
	var suffix [8]byte
	binary.BigEndian.PutUint64(suffix[:], sequence)
	return acceptedBucket.Key(suffix[:])
}

func hashKey(bucket *database.Bucket, hash *externalapi.DomainHash) *database.Key {
	return bucket.Key(hash[:])
}

// StoreBlock stores block, each of its transactions, and the mapping of
// the transactions to the block in a single database transaction. Storing
// a block twice is a no-op.
func (s *Stores) StoreBlock(block *externalapi.DomainBlock) (err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	blockHash := consensushashing.BlockHash(block)
	exists, err := s.db.Has(hashKey(blocksBucket, blockHash))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	blockBytes, err := serialization.SerializeBlock(block)
	if err != nil {
		return err
	}

	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		rollbackErr := dbTx.RollbackUnlessClosed()
		if err == nil {
			err = rollbackErr
		}
	}()

	err = dbTx.Put(hashKey(blocksBucket, blockHash), blockBytes)
	if err != nil {
		return err
	}
	for _, tx := range block.Transactions {
		transactionID := consensushashing.TransactionID(tx)
		txBytes, err := serialization.SerializeTransaction(tx)
		if err != nil {
			return err
		}
		err = dbTx.Put(hashKey(transactionsBucket, transactionID), txBytes)
		if err != nil {
			return err
		}
		err = dbTx.Put(hashKey(transactionBlocksBucket, transactionID), blockHash[:])
		if err != nil {
			return err
		}
	}
	err = dbTx.Put(sequenceKey(s.nextSequence), blockHash[:])
	if err != nil {
		return err
	}

	err = dbTx.Commit()
	if err != nil {
		return err
	}
	s.nextSequence++
	return nil
}

// Block returns the stored block, or nil if it is unknown.
func (s *Stores) Block(blockHash *externalapi.DomainHash) (*externalapi.DomainBlock, error) {
	blockBytes, err := s.db.Get(hashKey(blocksBucket, blockHash))
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	block, err := serialization.DeserializeBlock(blockBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "stored block %s is corrupted", blockHash)
	}
	return block, nil
}

// Transaction returns the stored transaction, or nil if it is unknown.
func (s *Stores) Transaction(transactionID *externalapi.DomainTransactionID) (*externalapi.DomainTransaction, error) {
	txBytes, err := s.db.Get(hashKey(transactionsBucket, transactionID))
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	tx, err := serialization.DeserializeTransaction(txBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "stored transaction %s is corrupted", transactionID)
	}
	return tx, nil
}

// BlockHash returns the hash of the block containing the transaction, or
// nil if it is unknown.
func (s *Stores) BlockHash(transactionID *externalapi.DomainTransactionID) (*externalapi.DomainHash, error) {
	hashBytes, err := s.db.Get(hashKey(transactionBlocksBucket, transactionID))
	if err != nil {
		if database.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	blockHash, err := chainhash.NewHash(hashBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "stored block hash of transaction %s is corrupted", transactionID)
	}
	return blockHash, nil
}

// AcceptedBlockHashes returns the hashes of all stored blocks in the order
// they were stored.
func (s *Stores) AcceptedBlockHashes() ([]*externalapi.DomainHash, error) {
	cursor, err := s.db.Cursor(acceptedBucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var hashes []*externalapi.DomainHash
	for ok := cursor.First(); ok; ok = cursor.Next() {
		hashBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		blockHash, err := chainhash.NewHash(hashBytes)
		if err != nil {
			return nil, errors.Wrap(err, "stored acceptance log is corrupted")
		}
		hashes = append(hashes, blockHash)
	}
	return hashes, nil
}
