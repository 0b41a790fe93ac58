package difficulty

import "time"

// ComputeMaxBits returns the easiest compact target that could be required
// duration after a block required base, given that a target may grow at most
// fourfold per timespan. The result never exceeds limit.
func ComputeMaxBits(limit Target, base uint32, duration, timespan time.Duration) uint32 {
	result := FromCompact(base)
	for duration > 0 && result.Cmp(limit) < 0 {
		result = result.MulInt64(4)
		duration -= 4 * timespan
	}
	return result.Min(limit).ToCompact()
}
