package difficulty

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// Target is an unsigned 256-bit difficulty threshold. The zero value is a
// zero target. Targets are immutable: every operation returns a new value.
type Target struct {
	n *big.Int
}

// FromCompact decodes the compact representation used in block headers.
// A compact value with the sign bit set and a non-zero mantissa decodes to
// zero, since a negative target can never be met.
func FromCompact(compact uint32) Target {
	n := blockchain.CompactToBig(compact)
	if n.Sign() < 0 {
		return Target{}
	}
	return Target{n: n}
}

// FromBig copies n into a Target. Negative values become zero.
func FromBig(n *big.Int) Target {
	if n == nil || n.Sign() <= 0 {
		return Target{}
	}
	return Target{n: new(big.Int).Set(n)}
}

// FromHex parses a big-endian hex string such as "00000fff...".
func FromHex(s string) (Target, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Target{}, errors.Errorf("invalid target hex %q", s)
	}
	return FromBig(n), nil
}

// ToCompact encodes the target in compact form.
func (t Target) ToCompact() uint32 {
	return blockchain.BigToCompact(t.big())
}

// ToBig returns a copy of the target as a big.Int.
func (t Target) ToBig() *big.Int {
	return new(big.Int).Set(t.big())
}

func (t Target) big() *big.Int {
	if t.n == nil {
		return new(big.Int)
	}
	return t.n
}

// IsZero returns whether the target is zero.
func (t Target) IsZero() bool {
	return t.n == nil || t.n.Sign() == 0
}

// Cmp compares t and other, returning -1, 0 or +1.
func (t Target) Cmp(other Target) int {
	return t.big().Cmp(other.big())
}

// MulInt64 returns t*x. A negative product becomes zero.
func (t Target) MulInt64(x int64) Target {
	return FromBig(new(big.Int).Mul(t.big(), big.NewInt(x)))
}

// MulBig returns t*x. A negative product becomes zero.
func (t Target) MulBig(x *big.Int) Target {
	return FromBig(new(big.Int).Mul(t.big(), x))
}

// DivInt64 returns t/x with truncating division. It panics if x is zero.
func (t Target) DivInt64(x int64) Target {
	return FromBig(new(big.Int).Quo(t.big(), big.NewInt(x)))
}

// Min returns the smaller of t and other.
func (t Target) Min(other Target) Target {
	if t.Cmp(other) > 0 {
		return other
	}
	return t
}

// Meets returns whether hash, read as an unsigned 256-bit little-endian
// number, is less than or equal to the target.
func (t Target) Meets(hash *externalapi.DomainHash) bool {
	return hashes.ToBig(hash).Cmp(t.big()) <= 0
}

// String returns the target as zero-padded big-endian hex.
func (t Target) String() string {
	return fmt.Sprintf("%064x", t.big())
}
