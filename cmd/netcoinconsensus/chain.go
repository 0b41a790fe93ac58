package main

import (
	"bufio"
	"encoding/hex"
	"os"
	"strings"

	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/serialization"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/timesource"
	"github.com/netcoin-project/netcoind/infrastructure/db/database/ldb"
	"github.com/netcoin-project/netcoind/infrastructure/db/stores"
	"github.com/pkg/errors"
)

// maxBlockLineSize bounds a single hex encoded block in a blocks file.
const maxBlockLineSize = 8 * 1024 * 1024

func openStores(dataDir string, cacheSizeMiB int) (*ldb.LevelDB, *stores.Stores, error) {
	db, err := ldb.NewLevelDB(dataDir, cacheSizeMiB)
	if err != nil {
		return nil, nil, err
	}
	blockStores, err := stores.New(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, blockStores, nil
}

func adjustedTimeSource(adjustedTime int64) model.TimeSource {
	if adjustedTime == 0 {
		return timesource.New()
	}
	return timesource.NewFixed(adjustedTime)
}

// replayStoredChain builds a consensus over the blocks already stored in
// blockStores, in the order they were accepted.
func replayStoredChain(params *chaincfg.Params, blockStores *stores.Stores,
	timeSource model.TimeSource) (consensus.Consensus, error) {

	tc := consensus.NewFactory().NewConsensus(params, blockStores, timeSource)

	hashes, err := blockStores.AcceptedBlockHashes()
	if err != nil {
		return nil, err
	}
	for i, blockHash := range hashes {
		block, err := blockStores.Block(blockHash)
		if err != nil {
			return nil, err
		}
		if block == nil {
			return nil, errors.Errorf("stored block %s is missing", blockHash)
		}
		if i == 0 {
			_, err = tc.InsertGenesis(block)
		} else {
			_, err = tc.ValidateAndInsertBlock(block)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed replaying stored block %s", blockHash)
		}
	}

	if len(hashes) > 0 {
		tip := tc.Tip()
		log.Infof("Replayed %d stored blocks, tip %s at height %d", len(hashes), tip.Hash(), tip.Height())
	}
	return tc, nil
}

// readBlocksFile reads a file with one hex encoded serialized block per
// line. Empty lines and lines starting with # are ignored.
func readBlocksFile(path string) ([]*externalapi.DomainBlock, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	var blocks []*externalapi.DomainBlock
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBlockLineSize)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		blockBytes, err := hex.DecodeString(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: invalid hex", path, lineNumber)
		}
		block, err := serialization.DeserializeBlock(blockBytes)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: invalid block", path, lineNumber)
		}
		blocks = append(blocks, block)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed reading %s", path)
	}
	return blocks, nil
}
