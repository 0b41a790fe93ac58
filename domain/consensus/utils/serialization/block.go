package serialization

import (
	"bytes"

	"github.com/btcsuite/btcd/wire"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// maxBlockSignatureSize bounds the proof-of-stake block signature.
const maxBlockSignatureSize = 1_000

// SerializeHeader returns the 80-byte header encoding.
func SerializeHeader(header *externalapi.DomainBlockHeader) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, constants.BlockHeaderSize))
	err := header.Serialize(buf)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// SerializeBlock returns the wire encoding of block: header, transactions
// and block signature.
func SerializeBlock(block *externalapi.DomainBlock) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := block.Header.Serialize(buf)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	err = wire.WriteVarInt(buf, protocolVersion, uint64(len(block.Transactions)))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for _, tx := range block.Transactions {
		err = WriteTransaction(buf, tx)
		if err != nil {
			return nil, err
		}
	}
	err = wire.WriteVarBytes(buf, protocolVersion, block.Signature)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// DeserializeBlock decodes a block produced by SerializeBlock.
func DeserializeBlock(serialized []byte) (*externalapi.DomainBlock, error) {
	r := bytes.NewReader(serialized)
	header := &externalapi.DomainBlockHeader{}
	err := header.Deserialize(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	txCount, err := readCount(r, "transaction")
	if err != nil {
		return nil, err
	}
	transactions := make([]*externalapi.DomainTransaction, txCount)
	for i := range transactions {
		transactions[i], err = ReadTransaction(r)
		if err != nil {
			return nil, err
		}
	}

	signature, err := wire.ReadVarBytes(r, protocolVersion, maxBlockSignatureSize, "block signature")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if r.Len() != 0 {
		return nil, errors.Wrapf(errMalformed, "%d trailing bytes after block", r.Len())
	}

	return &externalapi.DomainBlock{
		Header:       header,
		Transactions: transactions,
		Signature:    signature,
	}, nil
}

// TransactionOffset returns the byte position of the transaction at txIndex
// inside the serialized block. The stake kernel commits to this offset.
func TransactionOffset(block *externalapi.DomainBlock, txIndex int) (uint32, error) {
	if txIndex < 0 || txIndex >= len(block.Transactions) {
		return 0, errors.Errorf("transaction index %d is out of range for a block of %d transactions",
			txIndex, len(block.Transactions))
	}
	offset := constants.BlockHeaderSize + wire.VarIntSerializeSize(uint64(len(block.Transactions)))
	for _, tx := range block.Transactions[:txIndex] {
		offset += TransactionSerializeSize(tx)
	}
	return uint32(offset), nil
}
