// Package gieplan provides a fairness-aware rotation scheduler: it decides,
// for each period in a sequence, which members of a fluctuating team are
// assigned a recurring plant-watering duty, so that assignment frequency is
// proportional to each member's presence time, newcomers can be paired with
// experienced members, and the resulting distribution satisfies measurable
// inequality bounds.
//
// # Quick Start
//
//	cfg := &gieplan.Config{
//	    TeamSize:             2,
//	    SubstituteCount:      2,
//	    EnforceNoConsecutive: true,
//	    Seed:                 42,
//	}
//
//	sched, err := gieplan.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := sched.GenerateBatch(&gieplan.GenerateRequest{
//	    Start:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
//	    PeriodCount: 12,
//	    Members:     members,
//	})
//
// # Architecture
//
// Five components in dependency order: a presence calculator turns
// membership intervals into elapsed-days figures; a per-member Kalman
// filter maintains a smoothed belief about each member's long-run
// assignment rate; a priority scorer combines rate deficit, mentor
// penalty, recency bonus and carried-over debt; a stochastic selector
// turns scores into a team via temperature-controlled Gumbel ranking; and
// the orchestrator drives period-by-period generation, carrying a running
// batch state forward so later periods see earlier ones.
//
// A batch run progresses through a strict state sequence:
//
//	Initializing → Generating → Finalizing
//
// Validation failures reject the call before any state is touched;
// constraint relaxations (pool too small, no experienced member, fairness
// thresholds exceeded) degrade gracefully and surface as structured
// warnings on a still-usable result.
//
// # Determinism
//
// All randomness flows through a RandSource. The default derives an
// independent PCG stream per batch from Config.Seed and the batch start
// date; identical inputs and seed produce byte-identical batches no
// matter how many batches were generated before.
// At Temperature 0 selection is fully deterministic with documented
// tie-breaking (never-assigned first, then score, presence, member ID).
//
// # State Ownership
//
// The estimator table and running batch state are owned exclusively by one
// generation call; cross-batch continuity is explicit, via the
// EstimatorTable and History values passed in and returned. The store
// package offers optional persistence backends (memory, NATS JetStream KV,
// SQLite) for carrying these between runs.
package gieplan
