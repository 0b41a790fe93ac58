package testutils

import (
	"github.com/btcsuite/btcd/txscript"
)

// OpTrueScript returns a script public key that is spendable by an empty
// signature script
func OpTrueScript() []byte {
	return []byte{txscript.OP_TRUE}
}
