package blockprocessor

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/pkg/errors"
)

// checkBlockMerkleRoot checks that the header commits to the block's
// transactions.
func checkBlockMerkleRoot(block *externalapi.DomainBlock) error {
	if len(block.Transactions) == 0 {
		return errors.Wrapf(ruleerrors.ErrNoTransactions, "block %s has no transactions",
			consensushashing.BlockHash(block))
	}
	calculatedMerkleRoot := consensushashing.MerkleRoot(block.Transactions)
	if block.Header.MerkleRoot != *calculatedMerkleRoot {
		return errors.Wrapf(ruleerrors.ErrBadMerkleRoot, "block merkle root is invalid - block "+
			"header indicates %s, but calculated value is %s",
			block.Header.MerkleRoot, calculatedMerkleRoot)
	}
	return nil
}

// checkBlockSignature checks the signature of a proof-of-stake block over
// its hash. The signing key is the one the second output of the coinstake
// pays to, which must be a pay-to-pubkey output.
func checkBlockSignature(block *externalapi.DomainBlock, blockHash *externalapi.DomainHash) error {
	scriptPublicKey := block.Transactions[1].Outputs[1].ScriptPublicKey
	if class := txscript.GetScriptClass(scriptPublicKey); class != txscript.PubKeyTy {
		return errors.Wrapf(ruleerrors.ErrBadBlockSignature, "coinstake of block %s pays a %s "+
			"output instead of a public key", blockHash, class)
	}
	pushes, err := txscript.PushedData(scriptPublicKey)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrBadBlockSignature, "coinstake of block %s: %s", blockHash, err)
	}
	publicKey, err := btcec.ParsePubKey(pushes[0])
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrBadBlockSignature, "coinstake of block %s: %s", blockHash, err)
	}
	signature, err := ecdsa.ParseDERSignature(block.Signature)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrBadBlockSignature, "block %s: %s", blockHash, err)
	}
	if !signature.Verify(blockHash[:], publicKey) {
		return errors.Wrapf(ruleerrors.ErrBadBlockSignature, "signature of block %s does not verify "+
			"against key %x", blockHash, pushes[0])
	}
	return nil
}
