package constants

const (
	// BlockVersion represents the current version of blocks mined and the maximum block version
	// this node is able to validate
	BlockVersion = 6

	// TransactionVersion is the current latest supported transaction version.
	TransactionVersion = 1

	// SatoshiPerCoin is the number of satoshi in one NET.
	SatoshiPerCoin = 100_000_000

	// SatoshiPerCent is one hundredth of a NET.
	SatoshiPerCent = SatoshiPerCoin / 100

	// MaxSatoshi is the maximum transaction amount allowed in satoshi.
	MaxSatoshi = 2_000_000_000 * SatoshiPerCoin

	// SecondsPerDay is used by coin-age arithmetic.
	SecondsPerDay = 24 * 60 * 60

	// BlockHeaderSize is the serialized size of a block header.
	BlockHeaderSize = 80

	// Stake modifier checksum flags.
	BlockFlagProofOfStake     = 1 << 0
	BlockFlagStakeEntropy     = 1 << 1
	BlockFlagStakeModifierNew = 1 << 2
)
