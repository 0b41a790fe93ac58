package mtrandom

// JackpotV1 draws the proof-of-work jackpot number: the first value of an
// MT19937 generator seeded with the jackpot seed, mapped uniformly onto
// [1, 6000).
type JackpotV1 struct{}

// Name identifies the generator algorithm.
func (JackpotV1) Name() string {
	return "mt19937-uniform-int"
}

// Version is bumped only together with a consensus change.
func (JackpotV1) Version() uint32 {
	return 1
}

// Draw returns a number in [1, upperExclusive).
func (JackpotV1) Draw(seed uint32, upperExclusive int) int {
	return New(seed).IntRange(1, upperExclusive-1)
}
