package model

import "github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"

// ScriptVerifier checks that an input's signature script satisfies the
// public key script of the output it spends. height is the height of the
// block holding tx, which selects the signature rules in force.
type ScriptVerifier interface {
	Verify(tx *externalapi.DomainTransaction, inputIndex int, prevOutput *externalapi.DomainTransactionOutput,
		height uint32) error
}
