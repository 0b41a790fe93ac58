package blockprocessor

import (
	"math/big"
	"time"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// checkBlockRewards checks the coinbase against the proof-of-work reward and,
// for proof-of-stake blocks, the coinstake against the proof-of-stake reward.
// Both rewards include the fees of the other transactions.
func (bp *blockProcessor) checkBlockRewards(block *externalapi.DomainBlock, height uint32) error {
	var fees int64
	for i, tx := range block.Transactions {
		if i == 0 || tx.IsCoinStake() {
			continue
		}
		valueIn, err := bp.valueIn(tx)
		if err != nil {
			return err
		}
		valueOut := tx.OutputValue()
		if valueIn < valueOut {
			return errors.Wrapf(ruleerrors.ErrSpendTooHigh, "total value of all transaction outputs for "+
				"transaction %s is %d, which is higher than the input amount of %d",
				consensushashing.TransactionID(tx), valueOut, valueIn)
		}
		fees += valueIn - valueOut
	}

	err := bp.coinbaseManager.ValidateCoinbaseValue(block, height, fees)
	if err != nil {
		return err
	}
	if !block.IsProofOfStake() {
		return nil
	}

	coinStake := block.Transactions[1]
	valueIn, err := bp.valueIn(coinStake)
	if err != nil {
		return err
	}
	coinAge, err := bp.coinAge(coinStake)
	if err != nil {
		return err
	}
	stakeReward := coinStake.OutputValue() - valueIn
	maxReward := bp.coinbaseManager.ProofOfStakeReward(height, coinAge, valueIn, fees)
	if stakeReward > maxReward {
		return errors.Wrapf(ruleerrors.ErrBadCoinstakeValue, "coinstake %s creates %d which is more than "+
			"the reward of %d for %d coin-days", consensushashing.TransactionID(coinStake), stakeReward,
			maxReward, coinAge)
	}
	return nil
}

// valueIn returns the total value of the outputs spent by tx.
func (bp *blockProcessor) valueIn(tx *externalapi.DomainTransaction) (int64, error) {
	var total int64
	for _, input := range tx.Inputs {
		output, _, err := bp.spentOutput(&input.PreviousOutpoint)
		if err != nil {
			return 0, err
		}
		total += output.Value
	}
	return total, nil
}

// coinAge returns the coin age spent by tx in coin-days. Only outputs whose
// block is older than the minimum stake age count. The age itself runs from
// the time of the spent transaction.
func (bp *blockProcessor) coinAge(tx *externalapi.DomainTransaction) (int64, error) {
	minAge := int64(bp.params.StakeMinAge() / time.Second)
	centSeconds := new(big.Int)
	for _, input := range tx.Inputs {
		output, txPrevTime, err := bp.spentOutput(&input.PreviousOutpoint)
		if err != nil {
			return 0, err
		}
		txTime := int64(tx.Time)
		if txTime < txPrevTime {
			return 0, errors.Wrapf(ruleerrors.ErrTransactionTimestamp, "transaction %s at time %d spends "+
				"%s from time %d", consensushashing.TransactionID(tx), txTime, input.PreviousOutpoint, txPrevTime)
		}
		blockFromTime, err := bp.blockTime(&input.PreviousOutpoint.TransactionID)
		if err != nil {
			return 0, err
		}
		if blockFromTime+minAge > txTime {
			continue
		}
		age := new(big.Int).Mul(big.NewInt(output.Value), big.NewInt(txTime-txPrevTime))
		centSeconds.Add(centSeconds, age.Quo(age, big.NewInt(constants.SatoshiPerCent)))
	}

	coinDays := centSeconds.Mul(centSeconds, big.NewInt(constants.SatoshiPerCent))
	coinDays.Quo(coinDays, big.NewInt(constants.SatoshiPerCoin*constants.SecondsPerDay))
	log.Tracef("Coin age of %s is %s coin-days", consensushashing.TransactionID(tx), coinDays)
	return coinDays.Int64(), nil
}

// blockTime returns the time of the indexed block holding the transaction
// with the given ID.
func (bp *blockProcessor) blockTime(transactionID *externalapi.DomainTransactionID) (int64, error) {
	blockHash, err := bp.blockTransactionMapStore.BlockHash(transactionID)
	if err != nil {
		return 0, err
	}
	if blockHash == nil {
		return 0, ruleerrors.NewErrMissingData("block of transaction", transactionID)
	}
	node, ok := bp.chainIndex.LookupByHash(blockHash)
	if !ok {
		return 0, ruleerrors.NewErrMissingData("block", blockHash)
	}
	return node.TimeInSeconds(), nil
}

// spentOutput resolves the output referenced by outpoint together with the
// time of the transaction holding it.
func (bp *blockProcessor) spentOutput(outpoint *externalapi.DomainOutpoint) (
	*externalapi.DomainTransactionOutput, int64, error) {

	txPrev, err := bp.transactionStore.Transaction(&outpoint.TransactionID)
	if err != nil {
		return nil, 0, err
	}
	if txPrev == nil {
		return nil, 0, ruleerrors.NewErrMissingData("previous transaction", &outpoint.TransactionID)
	}
	if int(outpoint.Index) >= len(txPrev.Outputs) {
		return nil, 0, errors.Wrapf(ruleerrors.ErrMissingTxOut, "output %s does not exist", outpoint)
	}
	return txPrev.Outputs[outpoint.Index], int64(txPrev.Time), nil
}
