package gieplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

func TestConfigSetDefaults(t *testing.T) {
	t.Run("zero config gets full defaults", func(t *testing.T) {
		cfg := &Config{}
		cfg.SetDefaults()

		require.Equal(t, 2, cfg.TeamSize)
		require.Equal(t, 2, cfg.SubstituteCount)
		require.Equal(t, 7, cfg.PeriodDays)
		require.Equal(t, 0.35, cfg.GiniThreshold)
		require.Equal(t, 0.5, cfg.CVThreshold)
		require.Equal(t, 0.01, cfg.Estimator.ProcessNoise)
		require.Equal(t, 0.25, cfg.Estimator.ObservationNoise)
		require.Equal(t, 1.0, cfg.Estimator.PriorVariance)
		require.Equal(t, 0.35, cfg.Estimator.DriftThreshold)
		require.Equal(t, 0.25, cfg.Estimator.DriftPull)
		require.Equal(t, 0.001, cfg.Scoring.Epsilon)
		require.Equal(t, 0.85, cfg.Scoring.MentorPenalty)
		require.Equal(t, 4, cfg.Scoring.RecencyWindow)
		require.Equal(t, 0.25, cfg.Scoring.DebtWeight)
		require.Equal(t, 60, cfg.Experience.PresenceDays)
		require.Equal(t, 5, cfg.Experience.Assignments)
		require.NoError(t, cfg.Validate())
	})

	t.Run("explicit values survive", func(t *testing.T) {
		cfg := &Config{TeamSize: 3, PeriodDays: 14}
		cfg.SetDefaults()
		require.Equal(t, 3, cfg.TeamSize)
		require.Equal(t, 14, cfg.PeriodDays)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SetDefaults()

		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"team size below one", func(c *Config) { c.TeamSize = -1 }},
		{"negative substitute count", func(c *Config) { c.SubstituteCount = -1 }},
		{"negative temperature", func(c *Config) { c.Temperature = -0.1 }},
		{"gini threshold above one", func(c *Config) { c.GiniThreshold = 1.5 }},
		{"non-positive cv threshold", func(c *Config) { c.CVThreshold = -1 }},
		{"negative process noise", func(c *Config) { c.Estimator.ProcessNoise = -0.01 }},
		{"non-positive observation noise", func(c *Config) { c.Estimator.ObservationNoise = -0.25 }},
		{"drift pull above one", func(c *Config) { c.Estimator.DriftPull = 1.5 }},
		{"non-positive epsilon", func(c *Config) { c.Scoring.Epsilon = -0.001 }},
		{"mentor penalty above one", func(c *Config) { c.Scoring.MentorPenalty = 1.2 }},
		{"negative debt weight", func(c *Config) { c.Scoring.DebtWeight = -0.5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, types.ErrInvalidConfig)
		})
	}
}

func TestConfigPeriodLength(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()
	require.Equal(t, 7*24*time.Hour, cfg.PeriodLength())
}
