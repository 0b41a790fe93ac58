// Package mtrandom implements the 32-bit Mersenne Twister (MT19937) as
// published by Matsumoto and Nishimura in 1998, together with the bounded
// integer draw used by the proof-of-work jackpot. Both are consensus rules:
// the outputs must stay bit-for-bit identical across versions.
package mtrandom

const (
	stateSize   = 624
	shiftSize   = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initMult    = 1812433253
	temperingB  = 0x9d2c5680
	temperingC  = 0xefc60000
	defaultSeed = 5489
)

// MT19937 is a Mersenne Twister generator. It is not safe for concurrent use.
type MT19937 struct {
	state [stateSize]uint32
	index int
}

// New returns a generator initialized with init_genrand(seed).
func New(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// NewDefault returns a generator with the reference default seed 5489.
func NewDefault() *MT19937 {
	return New(defaultSeed)
}

// Seed reinitializes the generator state.
func (mt *MT19937) Seed(seed uint32) {
	mt.state[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := mt.state[i-1]
		mt.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = stateSize
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MT19937) Uint32() uint32 {
	if mt.index >= stateSize {
		mt.twist()
	}
	y := mt.state[mt.index]
	mt.index++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

func (mt *MT19937) twist() {
	for i := 0; i < stateSize; i++ {
		y := (mt.state[i] & upperMask) | (mt.state[(i+1)%stateSize] & lowerMask)
		next := mt.state[(i+shiftSize)%stateSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		mt.state[i] = next
	}
	mt.index = 0
}

// IntRange returns a uniformly distributed integer in [min, max] using the
// bucket rejection method of boost's uniform_int_distribution over a 32-bit
// engine. It panics if max < min.
func (mt *MT19937) IntRange(min, max int) int {
	if max < min {
		panic("mtrandom: IntRange called with max < min")
	}
	const engineRange = uint64(0xffffffff)
	valueRange := uint64(max - min)
	if valueRange == engineRange {
		return min + int(mt.Uint32())
	}

	bucketSize := engineRange / (valueRange + 1)
	if engineRange%(valueRange+1) == valueRange {
		bucketSize++
	}
	for {
		result := uint64(mt.Uint32()) / bucketSize
		if result <= valueRange {
			return min + int(result)
		}
	}
}
