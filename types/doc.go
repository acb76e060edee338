// Package types defines the data model and interfaces shared across the
// gieplan scheduler.
//
// It contains only plain data structures (members, assignments, estimator
// states, fairness reports), small interfaces (Logger, MetricsCollector,
// RandSource, OnboardingPolicy), and sentinel errors. Keeping these in a
// leaf package lets internal packages depend on them without importing the
// root gieplan package, avoiding import cycles. The root package re-exports
// the common names for convenience.
package types
