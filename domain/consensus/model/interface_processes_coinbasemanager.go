package model

import "github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"

// CoinbaseManager computes block subsidies
type CoinbaseManager interface {
	ProofOfWorkReward(height uint32, fees int64, prevHash *externalapi.DomainHash) (int64, error)
	ProofOfStakeReward(height uint32, coinAge int64, coinValue int64, fees int64) int64
	ValidateCoinbaseValue(block *externalapi.DomainBlock, height uint32, fees int64) error
}
