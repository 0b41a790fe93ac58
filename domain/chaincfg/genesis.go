// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
)

// genesisCoinbaseTimestamp is the headline embedded in the genesis coinbase.
const genesisCoinbaseTimestamp = "Aug 31, 2013: US STOCKS-Wall Street falls, ends worst month since May 2012."

// genesisOutputKey is the public key the genesis coinbase pays to.
var genesisOutputKey = []byte{
	0x04, 0x57, 0x57, 0x56, 0x78, 0x90, 0x12, 0x34, 0x56, 0x78, 0x90, 0x00, 0x02, 0x22, 0x22, 0x23,
	0x33, 0x44, 0x45, 0x55, 0x66, 0x67, 0x77, 0x88, 0x89, 0x99, 0x00, 0x00, 0x00, 0xaa, 0xaa, 0xab,
	0xbb, 0xbb, 0xcc, 0xcc, 0xcd, 0xdd, 0xdd, 0xee, 0xee, 0xef, 0xf0, 0x0f, 0xf0, 0x0f, 0xf0, 0x0f,
	0xf0, 0x01, 0x23, 0x45, 0x67, 0x89, 0x0a, 0xbc, 0xde, 0xf0, 0x02, 0x24, 0x46, 0x68, 0x8a, 0xbc,
	0x89,
}

// genesisMerkleRoot is the merkle root every network's genesis header
// commits to.
var genesisMerkleRoot = mustHash("e5981b72a47998b021ee8995726282d1a575477897d9d5a319167601fffebb21")

// genesisCoinbaseTx returns the coinbase of the genesis block: a push of
// 486604799, a push of 4 and the headline, paying nothing to
// genesisOutputKey.
func genesisCoinbaseTx(blockTime uint32) *externalapi.DomainTransaction {
	signatureScript := []byte{0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04, byte(len(genesisCoinbaseTimestamp))}
	signatureScript = append(signatureScript, genesisCoinbaseTimestamp...)

	scriptPublicKey := []byte{byte(len(genesisOutputKey))}
	scriptPublicKey = append(scriptPublicKey, genesisOutputKey...)
	scriptPublicKey = append(scriptPublicKey, 0xac) // OP_CHECKSIG

	return &externalapi.DomainTransaction{
		Version: 2,
		Time:    blockTime,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{Index: math.MaxUint32},
			SignatureScript:  signatureScript,
			Sequence:         math.MaxUint32,
		}},
		Outputs: []*externalapi.DomainTransactionOutput{{
			Value:           0,
			ScriptPublicKey: scriptPublicKey,
		}},
	}
}

// newGenesisBlock returns a genesis block. Networks differ in the time,
// nonce and bits of the header only.
func newGenesisBlock(blockTime uint32, nonce uint32, bits uint32) *externalapi.DomainBlock {
	header := externalapi.NewDomainBlockHeader(1, &externalapi.DomainHash{}, genesisMerkleRoot,
		int64(blockTime), bits, nonce)
	return &externalapi.DomainBlock{
		Header:       header,
		Transactions: []*externalapi.DomainTransaction{genesisCoinbaseTx(blockTime)},
	}
}

// mainnetGenesisBlock hashes to
// 38624e3834cfdc4410a5acbc32f750171aadad9620e6ba6d5c73201c16f7c8d1.
var mainnetGenesisBlock = newGenesisBlock(1377903314, 12344321, 0x1e0ffff0)

// testnetGenesisBlock hashes to
// 560dbb3ee136ccaae9a7dcd60e1d170508619c6934efc4b22168f6f614bbedff.
var testnetGenesisBlock = newGenesisBlock(1300000000, 0, 0x1f00ffff)

// regtestGenesisBlock hashes to
// a05031a4091a978f203526bc1833027eb54061a65cbc219506d844eb541b3e8a.
var regtestGenesisBlock = newGenesisBlock(1296688602, 2, 0x207fffff)

func mustHash(hashString string) *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromString(hashString)
	if err != nil {
		panic(err)
	}
	return hash
}
