package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "netcoind"

var (
	blocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "consensus",
		Name:      "blocks_total",
		Help:      "Count of processed blocks by proof type and validation result.",
	}, []string{"proof", "result"})
	blockValidationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "consensus",
		Name:      "block_validation_seconds",
		Help:      "Duration of block validation and insertion.",
		Buckets:   prometheus.DefBuckets,
	})
	difficultyAlgorithmTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "consensus",
		Name:      "difficulty_algorithm_total",
		Help:      "Count of required-target computations by retargeting algorithm.",
	}, []string{"algorithm"})
	stakeModifiersGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "consensus",
		Name:      "stake_modifiers_generated_total",
		Help:      "Count of newly generated stake modifiers.",
	})
	kernelChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "consensus",
		Name:      "kernel_checks_total",
		Help:      "Count of stake kernel checks by result.",
	}, []string{"result"})
)

// Block validation results.
const (
	ResultAccepted    = "accepted"
	ResultRejected    = "rejected"
	ResultRecoverable = "recoverable"
	ResultError       = "error"
)

// Proof labels.
const (
	ProofOfWork  = "pow"
	ProofOfStake = "pos"
)

// ObserveBlock records the outcome and duration of processing one block.
func ObserveBlock(proofOfStake bool, result string, started time.Time) {
	proof := ProofOfWork
	if proofOfStake {
		proof = ProofOfStake
	}
	blocksTotal.WithLabelValues(proof, result).Inc()
	blockValidationDuration.Observe(time.Since(started).Seconds())
}

// ObserveDifficultyAlgorithm records which retargeting algorithm produced a
// required target.
func ObserveDifficultyAlgorithm(algorithm string) {
	difficultyAlgorithmTotal.WithLabelValues(algorithm).Inc()
}

// ObserveStakeModifierGenerated records a newly generated stake modifier.
func ObserveStakeModifierGenerated() {
	stakeModifiersGeneratedTotal.Inc()
}

// ObserveKernelCheck records the result of a stake kernel check.
func ObserveKernelCheck(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	kernelChecksTotal.WithLabelValues(result).Inc()
}
