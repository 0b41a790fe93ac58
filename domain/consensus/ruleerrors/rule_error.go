package ruleerrors

import (
	"fmt"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrDuplicateBlock indicates a block with the same hash already
	// exists.
	ErrDuplicateBlock = newRuleError("ErrDuplicateBlock")

	// ErrUnexpectedDifficulty indicates specified bits do not align with
	// the expected value computed by the retarget rules.
	ErrUnexpectedDifficulty = newRuleError("ErrUnexpectedDifficulty")

	// ErrTargetTooHigh indicates specified bits are above the network's
	// proof-of-work limit.
	ErrTargetTooHigh = newRuleError("ErrTargetTooHigh")

	// ErrNegativeTarget indicates specified bits decode to a zero or
	// negative target.
	ErrNegativeTarget = newRuleError("ErrNegativeTarget")

	// ErrInvalidPoW indicates that the block proof-of-work is invalid.
	ErrInvalidPoW = newRuleError("ErrInvalidPoW")

	// ErrNoTransactions indicates the block does not have a least one
	// transaction.
	ErrNoTransactions = newRuleError("ErrNoTransactions")

	// ErrBadMerkleRoot indicates the calculated merkle root does not match
	// the expected value.
	ErrBadMerkleRoot = newRuleError("ErrBadMerkleRoot")

	// ErrBadBlockSignature indicates a proof-of-stake block whose signature
	// does not verify against the key its coinstake pays.
	ErrBadBlockSignature = newRuleError("ErrBadBlockSignature")

	// ErrUnexpectedGenesis indicates a genesis block that is not the
	// network's genesis.
	ErrUnexpectedGenesis = newRuleError("ErrUnexpectedGenesis")

	// ErrFirstTxNotCoinbase indicates the first transaction in a block
	// is not a coinbase transaction.
	ErrFirstTxNotCoinbase = newRuleError("ErrFirstTxNotCoinbase")

	// ErrBadCoinbaseValue indicates the coinbase pays more than the
	// subsidy plus fees.
	ErrBadCoinbaseValue = newRuleError("ErrBadCoinbaseValue")

	// ErrMissingTxOut indicates a transaction input references an output
	// its previous transaction does not have.
	ErrMissingTxOut = newRuleError("ErrMissingTxOut")

	// ErrTransactionTimestamp indicates a transaction spending an output of
	// a transaction with a later timestamp.
	ErrTransactionTimestamp = newRuleError("ErrTransactionTimestamp")

	// ErrBadCoinstakeValue indicates the coinstake creates more than the
	// proof-of-stake reward plus fees.
	ErrBadCoinstakeValue = newRuleError("ErrBadCoinstakeValue")

	// ErrSpendTooHigh indicates a transaction is attempting to spend more
	// value than the sum of all of its inputs.
	ErrSpendTooHigh = newRuleError("ErrSpendTooHigh")

	// ErrProofOfWorkAfterFinalPoW indicates a proof-of-work block above the
	// last proof-of-work height.
	ErrProofOfWorkAfterFinalPoW = newRuleError("ErrProofOfWorkAfterFinalPoW")

	// ErrProofOfStakeTooEarly indicates a proof-of-stake block below the
	// proof-of-stake activation height.
	ErrProofOfStakeTooEarly = newRuleError("ErrProofOfStakeTooEarly")

	// ErrNotCoinStake indicates a proof-of-stake check on a transaction
	// that is not shaped as a coinstake.
	ErrNotCoinStake = newRuleError("ErrNotCoinStake")

	// ErrCoinStakeTimestamp indicates a coinstake whose timestamp differs
	// from its block's timestamp.
	ErrCoinStakeTimestamp = newRuleError("ErrCoinStakeTimestamp")

	// ErrBadStakePrevout indicates the kernel input refers to an output the
	// previous transaction does not have.
	ErrBadStakePrevout = newRuleError("ErrBadStakePrevout")

	// ErrMinAgeViolation indicates the staked output is younger than the
	// minimum stake age.
	ErrMinAgeViolation = newRuleError("ErrMinAgeViolation")

	// ErrKernelHashAboveTarget indicates the kernel hash does not meet the
	// coin-day weighted target.
	ErrKernelHashAboveTarget = newRuleError("ErrKernelHashAboveTarget")

	// ErrScriptValidation indicates the result of executing transaction
	// script failed.
	ErrScriptValidation = newRuleError("ErrScriptValidation")

	// ErrStakeModifierCheckpoint indicates a stake modifier checksum that
	// differs from the hard-coded checkpoint at that height.
	ErrStakeModifierCheckpoint = newRuleError("ErrStakeModifierCheckpoint")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or transaction failed due to one of the many validation
// rules. The caller can use errors.As to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrMissingData indicates that a collaborator could not provide a record a
// validation depends on, such as the transaction spent by a kernel. It's
// recoverable: the record may arrive later.
type ErrMissingData struct {
	What string
	Hash externalapi.DomainHash
}

func (e ErrMissingData) Error() string {
	return fmt.Sprintf("missing %s %s", e.What, e.Hash)
}

// NewErrMissingData creates a new ErrMissingData with a stack trace.
func NewErrMissingData(what string, hash *externalapi.DomainHash) error {
	return errors.WithStack(ErrMissingData{What: what, Hash: *hash})
}

// ErrNotEnoughConfirmations indicates the chain is not yet long enough to
// resolve the stake modifier of a kernel. It's recoverable by retrying once
// the chain has advanced.
type ErrNotEnoughConfirmations struct {
	BlockFrom externalapi.DomainHash
	Tip       externalapi.DomainHash
	TipHeight uint32
}

func (e ErrNotEnoughConfirmations) Error() string {
	return fmt.Sprintf("reached best block %s at height %d before the stake modifier of block %s was generated",
		e.Tip, e.TipHeight, e.BlockFrom)
}

// NewErrNotEnoughConfirmations creates a new ErrNotEnoughConfirmations with a stack trace.
func NewErrNotEnoughConfirmations(blockFrom, tip *externalapi.DomainHash, tipHeight uint32) error {
	return errors.WithStack(ErrNotEnoughConfirmations{BlockFrom: *blockFrom, Tip: *tip, TipHeight: tipHeight})
}

// IsRuleError returns whether err is, or wraps, a RuleError.
func IsRuleError(err error) bool {
	return errors.As(err, &RuleError{})
}

// IsRecoverable returns whether err reports data that is not available yet
// rather than an invalid block or a corrupted index.
func IsRecoverable(err error) bool {
	return errors.As(err, &ErrMissingData{}) || errors.As(err, &ErrNotEnoughConfirmations{})
}
