package difficulty

import (
	"testing"
	"time"
)

func TestComputeMaxBits(t *testing.T) {
	limit := FromCompact(0x1e0fffff)
	timespan := 504 * time.Minute

	tests := []struct {
		name     string
		base     uint32
		duration time.Duration
		expected uint32
	}{
		{"no time passed", 0x1d00ffff, 0, 0x1d00ffff},
		{"one timespan", 0x1d00ffff, timespan, 0x1d03fffc},
		{"just over one step", 0x1d00ffff, 4*timespan + time.Second, 0x1d0ffff0},
		{"capped at limit", 0x1d00ffff, 1000 * timespan, 0x1e0fffff},
		{"base above limit", 0x1f00ffff, time.Second, 0x1e0fffff},
	}
	for _, test := range tests {
		if result := ComputeMaxBits(limit, test.base, test.duration, timespan); result != test.expected {
			t.Errorf("%s: expected %08x but got %08x", test.name, test.expected, result)
		}
	}
}
