package testutils

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/consensushashing"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// PrivateKey returns a deterministic key pair derived from seed.
func PrivateKey(seed byte) (*btcec.PrivateKey, *btcec.PublicKey) {
	return btcec.PrivKeyFromBytes(hashes.Hash256([]byte{seed})[:])
}

// PayToPubKeyScript returns a script public key paying to publicKey.
func PayToPubKeyScript(publicKey *btcec.PublicKey) []byte {
	script, err := txscript.NewScriptBuilder().
		AddData(publicKey.SerializeCompressed()).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(errors.Wrap(err, "a pay-to-pubkey script is always valid"))
	}
	return script
}

// SignBlock sets the signature of a proof-of-stake block. It must be called
// after the header is final.
func SignBlock(block *externalapi.DomainBlock, privateKey *btcec.PrivateKey) {
	block.Signature = ecdsa.Sign(privateKey, consensushashing.BlockHash(block)[:]).Serialize()
}
