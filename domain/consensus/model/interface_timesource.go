package model

// TimeSource provides the network-adjusted time in unix seconds
type TimeSource interface {
	AdjustedTime() int64
}
