package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/netcoin-project/netcoind/domain/consensus"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/infrastructure/metrics"
	"github.com/netcoin-project/netcoind/util/panics"
	"github.com/pkg/errors"
)

const metricsShutdownTimeout = 5 * time.Second

var spawn = panics.GoroutineWrapperFunc(log)

type verifySummary struct {
	accepted int
	skipped  int
	rejected int
	orphans  int
}

func verifyChain(cfg *verifyChainConfig, out io.Writer) error {
	if cfg.MetricsListen != "" {
		server := metrics.NewServer(cfg.MetricsListen)
		spawn(func() {
			err := metrics.ListenAndServe(server)
			if err != nil {
				log.Errorf("%+v", err)
			}
		})
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			err := server.Shutdown(ctx)
			if err != nil {
				log.Warnf("Failed shutting down the metrics server: %s", err)
			}
		}()
		log.Infof("Serving metrics on %s", cfg.MetricsListen)
	}

	var blocks []*externalapi.DomainBlock
	if cfg.BlocksFile != "" {
		var err error
		blocks, err = readBlocksFile(cfg.BlocksFile)
		if err != nil {
			return err
		}
	}

	db, blockStores, err := openStores(cfg.DataDir, cfg.CacheSizeMiB)
	if err != nil {
		return err
	}
	defer db.Close()

	tc, err := replayStoredChain(cfg.NetParams(), blockStores, adjustedTimeSource(cfg.AdjustedTime))
	if err != nil {
		return err
	}

	summary, err := verifyBlocks(tc, blocks)
	if err != nil {
		return err
	}

	tip := tc.Tip()
	if tip == nil {
		_, err = fmt.Fprintln(out, "empty chain")
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintf(out, "tip %s height %d trust %s\naccepted %d skipped %d rejected %d orphans %d\n",
		tip.Hash(), tip.Height(), tip.ChainTrust(), summary.accepted, summary.skipped, summary.rejected,
		summary.orphans)
	if err != nil {
		return errors.WithStack(err)
	}

	if summary.rejected > 0 {
		return errors.Errorf("%d blocks were rejected", summary.rejected)
	}
	return nil
}

// verifyBlocks validates blocks on top of tc. Blocks already in the chain
// are skipped. Blocks that cannot be validated yet, such as blocks whose
// parent comes later in the list, are retried for as long as the chain
// keeps growing.
func verifyBlocks(tc consensus.Consensus, blocks []*externalapi.DomainBlock) (*verifySummary, error) {
	summary := &verifySummary{}
	if len(blocks) == 0 {
		return summary, nil
	}

	if tc.BlockCount() == 0 {
		_, err := tc.InsertGenesis(blocks[0])
		if err != nil {
			return nil, errors.Wrap(err, "failed inserting the genesis")
		}
		summary.accepted++
		blocks = blocks[1:]
	}

	pending := blocks
	for len(pending) > 0 {
		var retry []*externalapi.DomainBlock
		for _, block := range pending {
			blockHash := consensushashing.BlockHash(block)
			if _, ok := tc.LookupByHash(blockHash); ok {
				summary.skipped++
				continue
			}

			_, err := tc.ValidateAndInsertBlock(block)
			switch {
			case err == nil:
				summary.accepted++
			case ruleerrors.IsRecoverable(err):
				log.Debugf("Postponing block %s: %s", blockHash, err)
				retry = append(retry, block)
			case ruleerrors.IsRuleError(err):
				log.Warnf("Rejected block %s: %s", blockHash, err)
				summary.rejected++
			default:
				return nil, errors.Wrapf(err, "failed validating block %s", blockHash)
			}
		}

		if len(retry) == len(pending) {
			for _, block := range retry {
				log.Warnf("Block %s could not be connected to the chain", consensushashing.BlockHash(block))
			}
			summary.orphans = len(retry)
			break
		}
		pending = retry
	}
	return summary, nil
}

func workRequired(cfg *workRequiredConfig, out io.Writer) error {
	db, blockStores, err := openStores(cfg.DataDir, cfg.CacheSizeMiB)
	if err != nil {
		return err
	}
	defer db.Close()

	blockTime := cfg.Time
	if blockTime == 0 {
		blockTime = time.Now().Unix()
	}
	tc, err := replayStoredChain(cfg.NetParams(), blockStores, adjustedTimeSource(blockTime))
	if err != nil {
		return err
	}

	target, err := tc.NextWorkRequired(blockTime, cfg.ProofOfStake)
	if err != nil {
		return err
	}

	height := uint32(0)
	if tip := tc.Tip(); tip != nil {
		height = tip.Height() + 1
	}
	_, err = fmt.Fprintf(out, "height %d bits %08x target %s\n", height, target.ToCompact(), target)
	return errors.WithStack(err)
}
