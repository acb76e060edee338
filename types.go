package gieplan

import "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on `types` without
// depending on the root `gieplan` package, which avoids import cycles
// while still giving users convenient gieplan.Member, gieplan.Batch, etc.
type (
	Member             = types.Member
	MembershipInterval = types.MembershipInterval
	History            = types.History
	EstimatorState     = types.EstimatorState
	EstimatorTable     = types.EstimatorTable
	Assignment         = types.Assignment
	Batch              = types.Batch
	Warning            = types.Warning
	WarningCode        = types.WarningCode
	MemberRate         = types.MemberRate
	FairnessReport     = types.FairnessReport
	BatchResult        = types.BatchResult
	GapFillResult      = types.GapFillResult
	RunState           = types.RunState
)

// Re-export interfaces from the types package for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	RandSource       = types.RandSource
	OnboardingPolicy = types.OnboardingPolicy
)

// Re-export warning codes from the types package.
const (
	WarnTeamUndersized         = types.WarnTeamUndersized
	WarnSubstitutesShort       = types.WarnSubstitutesShort
	WarnNoConsecutiveRelaxed   = types.WarnNoConsecutiveRelaxed
	WarnNoExperiencedAvailable = types.WarnNoExperiencedAvailable
	WarnEmptyPool              = types.WarnEmptyPool
	WarnGiniExceeded           = types.WarnGiniExceeded
	WarnCVExceeded             = types.WarnCVExceeded
	WarnGapUnfilled            = types.WarnGapUnfilled
)

// Re-export run states from the types package.
const (
	RunInitializing = types.RunInitializing
	RunGenerating   = types.RunGenerating
	RunFinalizing   = types.RunFinalizing
)
