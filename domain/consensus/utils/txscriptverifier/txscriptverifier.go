package txscriptverifier

import (
	"bytes"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/netcoin-project/netcoind/domain/chaincfg"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

// DefaultSigCacheSize is the number of verified signatures kept by a verifier.
const DefaultSigCacheSize = 50_000

// BaseFlags are the script flags enforced on every input. Blocks at or above
// the network's low-S height also enforce txscript.ScriptVerifyLowS.
const BaseFlags = txscript.ScriptBip16 | txscript.ScriptVerifyDERSignatures

var halfOrder = new(big.Int).Rsh(btcec.S256().Params().N, 1)

type scriptVerifier struct {
	params   *chaincfg.Params
	sigCache *txscript.SigCache
}

// New returns a model.ScriptVerifier for the network of params.
//
// Pay-to-pubkey and pay-to-pubkey-hash outputs are checked against the
// legacy signature hash, which commits to the transaction time. Any other
// script runs in the btcd script engine and must not check signatures,
// since the engine's signature hash has no place for the time.
func New(params *chaincfg.Params, sigCacheSize uint) model.ScriptVerifier {
	return &scriptVerifier{
		params:   params,
		sigCache: txscript.NewSigCache(sigCacheSize),
	}
}

// Flags returns the script flags in force for a transaction in a block at
// height.
func Flags(params *chaincfg.Params, height uint32) txscript.ScriptFlags {
	flags := BaseFlags
	if height >= params.Forks().LowSSignatures {
		flags |= txscript.ScriptVerifyLowS
	}
	return flags
}

// Verify checks the signature script of tx.Inputs[inputIndex] against the
// public key script of prevOutput, under the rules of a block at height.
func (v *scriptVerifier) Verify(tx *externalapi.DomainTransaction, inputIndex int,
	prevOutput *externalapi.DomainTransactionOutput, height uint32) error {

	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return errors.Errorf("input index %d is out of range for a transaction with %d inputs",
			inputIndex, len(tx.Inputs))
	}

	input := tx.Inputs[inputIndex]
	scriptPublicKey := prevOutput.ScriptPublicKey
	flags := Flags(v.params, height)

	var err error
	switch txscript.GetScriptClass(scriptPublicKey) {
	case txscript.PubKeyTy:
		err = v.verifyPayToPubKey(tx, inputIndex, scriptPublicKey, flags)
	case txscript.PubKeyHashTy:
		err = v.verifyPayToPubKeyHash(tx, inputIndex, scriptPublicKey, flags)
	default:
		err = v.execute(tx, inputIndex, prevOutput, flags)
	}
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrScriptValidation, "failed to validate input "+
			"%d which references output %s - %s (input script bytes %x, prev "+
			"output script bytes %x)",
			inputIndex, input.PreviousOutpoint, err, input.SignatureScript, scriptPublicKey)
	}
	return nil
}

// verifyPayToPubKey checks a signature script of the form <signature>.
func (v *scriptVerifier) verifyPayToPubKey(tx *externalapi.DomainTransaction, inputIndex int,
	scriptPublicKey []byte, flags txscript.ScriptFlags) error {

	pushes, err := signatureScriptPushes(tx.Inputs[inputIndex].SignatureScript, 1)
	if err != nil {
		return err
	}
	keyPushes, err := txscript.PushedData(scriptPublicKey)
	if err != nil {
		return err
	}
	return v.checkSignature(tx, inputIndex, scriptPublicKey, pushes[0], keyPushes[0], flags)
}

// verifyPayToPubKeyHash checks a signature script of the form
// <signature> <public key>.
func (v *scriptVerifier) verifyPayToPubKeyHash(tx *externalapi.DomainTransaction, inputIndex int,
	scriptPublicKey []byte, flags txscript.ScriptFlags) error {

	pushes, err := signatureScriptPushes(tx.Inputs[inputIndex].SignatureScript, 2)
	if err != nil {
		return err
	}
	keyHash, err := txscript.PushedData(scriptPublicKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(btcutil.Hash160(pushes[1]), keyHash[0]) {
		return errors.Errorf("public key %x does not hash to %x", pushes[1], keyHash[0])
	}
	return v.checkSignature(tx, inputIndex, scriptPublicKey, pushes[0], pushes[1], flags)
}

func signatureScriptPushes(signatureScript []byte, count int) ([][]byte, error) {
	if !txscript.IsPushOnlyScript(signatureScript) {
		return nil, errors.New("signature script is not push only")
	}
	pushes, err := txscript.PushedData(signatureScript)
	if err != nil {
		return nil, err
	}
	if len(pushes) != count {
		return nil, errors.Errorf("signature script pushes %d items instead of %d", len(pushes), count)
	}
	return pushes, nil
}

// checkSignature checks a signature with its trailing hash type byte
// against serializedPublicKey.
func (v *scriptVerifier) checkSignature(tx *externalapi.DomainTransaction, inputIndex int,
	scriptCode, fullSignature, serializedPublicKey []byte, flags txscript.ScriptFlags) error {

	if len(fullSignature) == 0 {
		return errors.New("signature is empty")
	}
	hashType := txscript.SigHashType(fullSignature[len(fullSignature)-1])
	signatureBytes := fullSignature[:len(fullSignature)-1]

	signature, err := ecdsa.ParseDERSignature(signatureBytes)
	if err != nil {
		return err
	}
	if flags&txscript.ScriptVerifyLowS != 0 && !isLowS(signatureBytes) {
		return errors.New("signature is not canonical due to unnecessarily high S value")
	}
	publicKey, err := btcec.ParsePubKey(serializedPublicKey)
	if err != nil {
		return err
	}

	sigHash, err := SignatureHash(tx, inputIndex, scriptCode, hashType)
	if err != nil {
		return err
	}
	if v.sigCache.Exists(*sigHash, signatureBytes, serializedPublicKey) {
		return nil
	}
	if !signature.Verify(sigHash[:], publicKey) {
		return errors.New("signature does not verify")
	}
	v.sigCache.Add(*sigHash, signatureBytes, serializedPublicKey)
	return nil
}

// isLowS reports whether the S value of a DER signature that passed
// ecdsa.ParseDERSignature is at most half the curve order.
func isLowS(signature []byte) bool {
	rLen := int(signature[3])
	sLen := int(signature[5+rLen])
	s := new(big.Int).SetBytes(signature[6+rLen : 6+rLen+sLen])
	return s.Cmp(halfOrder) <= 0
}

// execute runs the scripts of an input that checks no signature in the btcd
// script engine.
func (v *scriptVerifier) execute(tx *externalapi.DomainTransaction, inputIndex int,
	prevOutput *externalapi.DomainTransactionOutput, flags txscript.ScriptFlags) error {

	signatureScript := tx.Inputs[inputIndex].SignatureScript
	sigOps := txscript.GetSigOpCount(signatureScript) +
		txscript.GetPreciseSigOpCount(signatureScript, prevOutput.ScriptPublicKey, true)
	if sigOps != 0 {
		return errors.Errorf("scripts with %d signature operations are only supported as "+
			"pay-to-pubkey or pay-to-pubkey-hash", sigOps)
	}

	msgTx := ToWireMsgTx(tx)
	prevOutputFetcher := txscript.NewCannedPrevOutputFetcher(prevOutput.ScriptPublicKey, prevOutput.Value)
	sigHashes := txscript.NewTxSigHashes(msgTx, prevOutputFetcher)
	vm, err := txscript.NewEngine(prevOutput.ScriptPublicKey, msgTx, inputIndex, flags, v.sigCache,
		sigHashes, prevOutput.Value, prevOutputFetcher)
	if err != nil {
		return err
	}
	return vm.Execute()
}

// ToWireMsgTx converts tx into the btcd representation the script engine
// runs on. The transaction time has no place in wire.MsgTx.
func ToWireMsgTx(tx *externalapi.DomainTransaction) *wire.MsgTx {
	msgTx := wire.NewMsgTx(tx.Version)
	for _, input := range tx.Inputs {
		outpoint := wire.NewOutPoint(&input.PreviousOutpoint.TransactionID, input.PreviousOutpoint.Index)
		txIn := wire.NewTxIn(outpoint, input.SignatureScript, nil)
		txIn.Sequence = input.Sequence
		msgTx.AddTxIn(txIn)
	}
	for _, output := range tx.Outputs {
		msgTx.AddTxOut(wire.NewTxOut(output.Value, output.ScriptPublicKey))
	}
	msgTx.LockTime = tx.LockTime
	return msgTx
}
