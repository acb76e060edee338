// Package strategy provides newcomer-onboarding policies for the gieplan
// scheduler.
//
// A policy decides how a member with no recorded history enters the
// rotation: NeutralStart (the default) gives newcomers a neutral estimator
// prior and zero history, so they match the population's rate going
// forward without any catch-up; VirtualHistory grants a one-time synthetic
// baseline as if the newcomer had been assigned at the ideal rate for a
// configured number of periods, damping the initial burst of selections.
//
// Policies are injected via gieplan.WithOnboarding:
//
//	sched, err := gieplan.New(cfg, gieplan.WithOnboarding(strategy.NewVirtualHistory(8)))
package strategy
