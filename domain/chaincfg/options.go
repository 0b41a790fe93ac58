package chaincfg

import (
	"time"

	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// Option changes one parameter of a Params value under construction.
type Option func(*Params) error

// NewParams derives a new Params from base with the given options applied.
// base is left untouched. The result is validated as a whole.
func NewParams(base *Params, options ...Option) (*Params, error) {
	if base == nil {
		return nil, errors.New("base params are required")
	}
	params := base.clone()
	for _, option := range options {
		err := option(params)
		if err != nil {
			return nil, err
		}
	}
	err := params.validate()
	if err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Params) validate() error {
	switch {
	case p.name == "":
		return errors.New("network name is required")
	case p.genesisBlock == nil || p.genesisBlock.Header == nil:
		return errors.Errorf("%s: genesis block is required", p.name)
	case p.powLimit.IsZero():
		return errors.Errorf("%s: pow limit must be positive", p.name)
	case p.posLimit.IsZero():
		return errors.Errorf("%s: pos limit must be positive", p.name)
	case p.powTargetSpacing < time.Second:
		return errors.Errorf("%s: pow target spacing must be at least a second", p.name)
	case p.stakeTargetSpacing < time.Second:
		return errors.Errorf("%s: stake target spacing must be at least a second", p.name)
	case p.powTargetTimespan < p.powTargetSpacing:
		return errors.Errorf("%s: pow target timespan %s is shorter than the spacing %s",
			p.name, p.powTargetTimespan, p.powTargetSpacing)
	case p.powTargetTimespan%p.powTargetSpacing != 0:
		return errors.Errorf("%s: pow target timespan %s is not a multiple of the spacing %s",
			p.name, p.powTargetTimespan, p.powTargetSpacing)
	case p.stakeModifierInterval < time.Second:
		return errors.Errorf("%s: stake modifier interval must be at least a second", p.name)
	case p.stakeMaxAge <= 0:
		return errors.Errorf("%s: stake max age must be positive", p.name)
	case p.stakeMinAge < 0:
		return errors.Errorf("%s: stake min age must not be negative", p.name)
	case p.subsidyHalvingInterval == 0:
		return errors.Errorf("%s: subsidy halving interval must be positive", p.name)
	}
	forks := p.forks
	if !(forks.KGW <= forks.PoSAndDigiShield && forks.PoSAndDigiShield <= forks.DigiShieldFix) {
		return errors.Errorf("%s: fork heights must be ordered KGW <= PoS <= DigiShield fix, got %d, %d, %d",
			p.name, forks.KGW, forks.PoSAndDigiShield, forks.DigiShieldFix)
	}
	return nil
}

// WithName sets the network name.
func WithName(name string) Option {
	return func(p *Params) error {
		p.name = name
		return nil
	}
}

// WithGenesisBlock replaces the genesis block. The block must not be
// modified afterwards.
func WithGenesisBlock(genesis *externalapi.DomainBlock) Option {
	return func(p *Params) error {
		if genesis == nil || genesis.Header == nil {
			return errors.New("genesis block must have a header")
		}
		if genesis.Header.PrevBlock != (externalapi.DomainHash{}) {
			return errors.Errorf("genesis block must not have a parent, got %s", genesis.Header.PrevBlock)
		}
		p.genesisBlock = genesis
		p.genesisHash = genesis.Header.BlockHash()
		return nil
	}
}

// WithPowLimit sets the easiest proof-of-work target.
func WithPowLimit(limit difficulty.Target) Option {
	return func(p *Params) error {
		p.powLimit = limit
		return nil
	}
}

// WithPosLimit sets the easiest proof-of-stake target.
func WithPosLimit(limit difficulty.Target) Option {
	return func(p *Params) error {
		p.posLimit = limit
		return nil
	}
}

// WithPowTargetTimespan sets the legacy retarget period.
func WithPowTargetTimespan(timespan time.Duration) Option {
	return func(p *Params) error {
		p.powTargetTimespan = timespan
		return nil
	}
}

// WithPowTargetSpacing sets the proof-of-work block spacing.
func WithPowTargetSpacing(spacing time.Duration) Option {
	return func(p *Params) error {
		p.powTargetSpacing = spacing
		return nil
	}
}

// WithStakeTargetSpacing sets the proof-of-stake block spacing.
func WithStakeTargetSpacing(spacing time.Duration) Option {
	return func(p *Params) error {
		p.stakeTargetSpacing = spacing
		return nil
	}
}

// WithStakeAges sets the minimum and maximum stake ages.
func WithStakeAges(minAge, maxAge time.Duration) Option {
	return func(p *Params) error {
		if minAge > maxAge {
			return errors.Errorf("stake min age %s exceeds max age %s", minAge, maxAge)
		}
		p.stakeMinAge = minAge
		p.stakeMaxAge = maxAge
		return nil
	}
}

// WithStakeModifierInterval sets the stake modifier generation interval.
func WithStakeModifierInterval(interval time.Duration) Option {
	return func(p *Params) error {
		if interval%time.Second != 0 {
			return errors.Errorf("stake modifier interval %s is not a whole number of seconds", interval)
		}
		p.stakeModifierInterval = interval
		return nil
	}
}

// WithSubsidyHalvingInterval sets the number of blocks between halvings.
func WithSubsidyHalvingInterval(interval uint32) Option {
	return func(p *Params) error {
		p.subsidyHalvingInterval = interval
		return nil
	}
}

// WithAllowMinDifficultyBlocks toggles the test network difficulty rules.
func WithAllowMinDifficultyBlocks(allow bool) Option {
	return func(p *Params) error {
		p.allowMinDifficultyBlocks = allow
		return nil
	}
}

// WithForkHeights replaces the fork heights.
func WithForkHeights(forks ForkHeights) Option {
	return func(p *Params) error {
		p.forks = forks
		return nil
	}
}

// WithPIRPhase0Start sets the first height of the interest rate schedule.
func WithPIRPhase0Start(height uint32) Option {
	return func(p *Params) error {
		p.pirPhase0Start = height
		return nil
	}
}

// WithStakeModifierCheckpoints replaces the stake modifier checkpoints. The
// map is copied.
func WithStakeModifierCheckpoints(checkpoints map[uint32]uint32) Option {
	return func(p *Params) error {
		p.stakeModifierCheckpoints = make(map[uint32]uint32, len(checkpoints))
		for height, checksum := range checkpoints {
			p.stakeModifierCheckpoints[height] = checksum
		}
		return nil
	}
}
