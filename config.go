package gieplan

import (
	"fmt"
	"time"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// EstimatorConfig tunes the per-member Kalman rate filter.
type EstimatorConfig struct {
	// ProcessNoise inflates variance once per elapsed period.
	// Default: 0.01
	ProcessNoise float64 `yaml:"processNoise"`

	// ObservationNoise is the measurement variance of the binary
	// assigned/not-assigned observation. 0.25 is the variance ceiling of a
	// Bernoulli indicator.
	// Default: 0.25
	ObservationNoise float64 `yaml:"observationNoise"`

	// PriorVariance initializes fresh estimator states.
	// Default: 1.0
	PriorVariance float64 `yaml:"priorVariance"`

	// DriftThreshold is the absolute mean-vs-ideal gap beyond which drift
	// correction engages. Prevents runaway estimates on short history.
	// Default: 0.35
	DriftThreshold float64 `yaml:"driftThreshold"`

	// DriftPull is the fraction of the gap removed by one correction.
	// Default: 0.25
	DriftPull float64 `yaml:"driftPull"`
}

// ScoringConfig tunes the priority formula.
type ScoringConfig struct {
	// Epsilon bounds the rate-deficit term 1/(rate+epsilon). A
	// never-assigned member scores 1/epsilon: maximal but finite.
	// Default: 0.001
	Epsilon float64 `yaml:"epsilon"`

	// MentorPenalty multiplies the score of experienced members when the
	// experienced-member constraint is enabled; < 1 discourages overusing
	// them. 1.0 disables the penalty.
	// Default: 0.85
	MentorPenalty float64 `yaml:"mentorPenalty"`

	// RecencyWindow is the trailing window, in periods, for the
	// under-representation bonus.
	// Default: 4
	RecencyWindow int `yaml:"recencyWindow"`

	// DebtWeight scales the carried-over cross-batch imbalance bonus.
	// Default: 0.25
	DebtWeight float64 `yaml:"debtWeight"`
}

// ExperienceConfig defines the derived experience predicate: a member is
// experienced once presence days OR real assignment count crosses its
// threshold. The predicate is evaluated lazily on every check; it is never
// cached on the member.
type ExperienceConfig struct {
	// PresenceDays is the cumulative presence threshold.
	// Default: 60
	PresenceDays int `yaml:"presenceDays"`

	// Assignments is the cumulative real-assignment threshold.
	// Default: 5
	Assignments int `yaml:"assignments"`
}

// Config is the configuration for the Scheduler.
type Config struct {
	// TeamSize is the number of primary assignees per period.
	// Default: 2
	TeamSize int `yaml:"teamSize"`

	// SubstituteCount is the number of substitutes per period; substitutes
	// are best-effort and a period may end up with fewer.
	// Default: 2
	SubstituteCount int `yaml:"substituteCount"`

	// PeriodDays is the length of one period in days.
	// Default: 7 (weekly rotation)
	PeriodDays int `yaml:"periodDays"`

	// EnforceNoConsecutive excludes the previous period's primaries from
	// the next period's pool. Relaxed with a warning when the pool is too
	// small to honor it; never a hard failure.
	EnforceNoConsecutive bool `yaml:"enforceNoConsecutive"`

	// RequireExperiencedMember biases selection so every team contains at
	// least one experienced member when one is available; records a soft
	// violation otherwise.
	RequireExperiencedMember bool `yaml:"requireExperiencedMember"`

	// Seed seeds the default random source. Two runs with identical seed,
	// config and inputs produce byte-identical batches.
	Seed uint64 `yaml:"seed"`

	// Temperature controls selection randomness: 0 is deterministic top-N,
	// larger values blur the ranking with Gumbel noise.
	// Default: 0
	Temperature float64 `yaml:"temperature"`

	// GiniThreshold is the soft upper bound on the batch Gini coefficient.
	// Default: 0.35
	GiniThreshold float64 `yaml:"giniThreshold"`

	// CVThreshold is the soft upper bound on the batch coefficient of
	// variation.
	// Default: 0.5
	CVThreshold float64 `yaml:"cvThreshold"`

	// Estimator tunes the rate filter.
	Estimator EstimatorConfig `yaml:"estimator"`

	// Scoring tunes the priority formula.
	Scoring ScoringConfig `yaml:"scoring"`

	// Experience defines the experience predicate thresholds.
	Experience ExperienceConfig `yaml:"experience"`
}

// SetDefaults fills zero-valued fields with their documented defaults.
func (c *Config) SetDefaults() {
	if c.TeamSize == 0 {
		c.TeamSize = 2
	}
	if c.SubstituteCount == 0 {
		c.SubstituteCount = 2
	}
	if c.PeriodDays == 0 {
		c.PeriodDays = 7
	}
	if c.GiniThreshold == 0 {
		c.GiniThreshold = 0.35
	}
	if c.CVThreshold == 0 {
		c.CVThreshold = 0.5
	}
	if c.Estimator.ProcessNoise == 0 {
		c.Estimator.ProcessNoise = 0.01
	}
	if c.Estimator.ObservationNoise == 0 {
		c.Estimator.ObservationNoise = 0.25
	}
	if c.Estimator.PriorVariance == 0 {
		c.Estimator.PriorVariance = 1.0
	}
	if c.Estimator.DriftThreshold == 0 {
		c.Estimator.DriftThreshold = 0.35
	}
	if c.Estimator.DriftPull == 0 {
		c.Estimator.DriftPull = 0.25
	}
	if c.Scoring.Epsilon == 0 {
		c.Scoring.Epsilon = 0.001
	}
	if c.Scoring.MentorPenalty == 0 {
		c.Scoring.MentorPenalty = 0.85
	}
	if c.Scoring.RecencyWindow == 0 {
		c.Scoring.RecencyWindow = 4
	}
	if c.Scoring.DebtWeight == 0 {
		c.Scoring.DebtWeight = 0.25
	}
	if c.Experience.PresenceDays == 0 {
		c.Experience.PresenceDays = 60
	}
	if c.Experience.Assignments == 0 {
		c.Experience.Assignments = 5
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Wrapping types.ErrInvalidConfig, or nil when valid
func (c *Config) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", types.ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.TeamSize < 1 {
		return fail("teamSize must be >= 1, got %d", c.TeamSize)
	}
	if c.SubstituteCount < 0 {
		return fail("substituteCount must be >= 0, got %d", c.SubstituteCount)
	}
	if c.PeriodDays < 1 {
		return fail("periodDays must be >= 1, got %d", c.PeriodDays)
	}
	if c.Temperature < 0 {
		return fail("temperature must be >= 0, got %g", c.Temperature)
	}
	if c.GiniThreshold <= 0 || c.GiniThreshold > 1 {
		return fail("giniThreshold must be in (0, 1], got %g", c.GiniThreshold)
	}
	if c.CVThreshold <= 0 {
		return fail("cvThreshold must be > 0, got %g", c.CVThreshold)
	}
	if c.Estimator.ProcessNoise < 0 {
		return fail("estimator.processNoise must be >= 0, got %g", c.Estimator.ProcessNoise)
	}
	if c.Estimator.ObservationNoise <= 0 {
		return fail("estimator.observationNoise must be > 0, got %g", c.Estimator.ObservationNoise)
	}
	if c.Estimator.PriorVariance < 0 {
		return fail("estimator.priorVariance must be >= 0, got %g", c.Estimator.PriorVariance)
	}
	if c.Estimator.DriftThreshold <= 0 || c.Estimator.DriftThreshold > 1 {
		return fail("estimator.driftThreshold must be in (0, 1], got %g", c.Estimator.DriftThreshold)
	}
	if c.Estimator.DriftPull < 0 || c.Estimator.DriftPull > 1 {
		return fail("estimator.driftPull must be in [0, 1], got %g", c.Estimator.DriftPull)
	}
	if c.Scoring.Epsilon <= 0 {
		return fail("scoring.epsilon must be > 0, got %g", c.Scoring.Epsilon)
	}
	if c.Scoring.MentorPenalty <= 0 || c.Scoring.MentorPenalty > 1 {
		return fail("scoring.mentorPenalty must be in (0, 1], got %g", c.Scoring.MentorPenalty)
	}
	if c.Scoring.RecencyWindow < 1 {
		return fail("scoring.recencyWindow must be >= 1, got %d", c.Scoring.RecencyWindow)
	}
	if c.Scoring.DebtWeight < 0 {
		return fail("scoring.debtWeight must be >= 0, got %g", c.Scoring.DebtWeight)
	}
	if c.Experience.PresenceDays < 1 {
		return fail("experience.presenceDays must be >= 1, got %d", c.Experience.PresenceDays)
	}
	if c.Experience.Assignments < 1 {
		return fail("experience.assignments must be >= 1, got %d", c.Experience.Assignments)
	}

	return nil
}

// PeriodLength returns the period length as a duration.
func (c *Config) PeriodLength() time.Duration {
	return time.Duration(c.PeriodDays) * 24 * time.Hour
}
