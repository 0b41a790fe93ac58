package coinbasemanager

import (
	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

// JackpotSource draws the proof-of-work jackpot number. Every
// implementation used for validation must reproduce the draws of the
// version it reports.
type JackpotSource interface {
	Name() string
	Version() uint32
	Draw(seed uint32, upperExclusive int) int
}

type coinbaseManager struct {
	params        *chaincfg.Params
	jackpotSource JackpotSource
}

// New instantiates a new CoinbaseManager
func New(params *chaincfg.Params, jackpotSource JackpotSource) model.CoinbaseManager {
	return &coinbaseManager{
		params:        params,
		jackpotSource: jackpotSource,
	}
}

// ValidateCoinbaseValue checks that the coinbase of a proof-of-work block
// pays no more than the block reward plus fees, and that the coinbase of a
// proof-of-stake block pays nothing.
func (c *coinbaseManager) ValidateCoinbaseValue(block *externalapi.DomainBlock, height uint32, fees int64) error {
	if len(block.Transactions) == 0 {
		return errors.Wrapf(ruleerrors.ErrNoTransactions, "block does not contain any transactions")
	}
	coinbase := block.Transactions[0]
	if !coinbase.IsCoinBase() {
		return errors.Wrapf(ruleerrors.ErrFirstTxNotCoinbase, "first transaction in block is not a coinbase")
	}

	if block.IsProofOfStake() {
		if value := coinbase.OutputValue(); value != 0 {
			return errors.Wrapf(ruleerrors.ErrBadCoinbaseValue,
				"coinbase of proof-of-stake block at height %d pays %d", height, value)
		}
		return nil
	}

	expected, err := c.ProofOfWorkReward(height, fees, &block.Header.PrevBlock)
	if err != nil {
		return err
	}
	if value := coinbase.OutputValue(); value > expected {
		return errors.Wrapf(ruleerrors.ErrBadCoinbaseValue, "coinbase transaction for block at height %d "+
			"pays %d which is more than expected value of %d", height, value, expected)
	}
	return nil
}
