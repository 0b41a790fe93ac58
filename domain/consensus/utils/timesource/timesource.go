package timesource

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/netcoin-project/netcoind/domain/consensus/model"
)

// MedianTimeSource is a model.TimeSource adjusted by the median offset of
// time samples reported by peers.
type MedianTimeSource struct {
	median blockchain.MedianTimeSource
}

// New returns a MedianTimeSource with no samples, which reports local time.
func New() *MedianTimeSource {
	return &MedianTimeSource{median: blockchain.NewMedianTime()}
}

// AdjustedTime returns the network-adjusted time in unix seconds.
func (s *MedianTimeSource) AdjustedTime() int64 {
	return s.median.AdjustedTime().Unix()
}

// AddTimeSample records the time reported by the peer identified by sourceID.
// Only the first sample of every source is considered.
func (s *MedianTimeSource) AddTimeSample(sourceID string, timeVal time.Time) {
	s.median.AddTimeSample(sourceID, timeVal)
}

// Offset returns the current offset from local time.
func (s *MedianTimeSource) Offset() time.Duration {
	return s.median.Offset()
}

type fixedTimeSource struct {
	adjustedTime int64
}

// NewFixed returns a model.TimeSource that always reports the given time.
// It is used when replaying stored chains and in tests.
func NewFixed(adjustedTime int64) model.TimeSource {
	return &fixedTimeSource{adjustedTime: adjustedTime}
}

func (s *fixedTimeSource) AdjustedTime() int64 {
	return s.adjustedTime
}
