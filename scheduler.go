package gieplan

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/estimator"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/hash"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/logging"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/metrics"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/presence"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/scoring"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/selector"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/strategy"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// Scheduler is the schedule orchestrator. It is a synchronous, in-process
// computation: one GenerateBatch call validates its inputs, runs the
// per-period loop to completion, and returns a full result. The estimator
// table and running batch state are owned exclusively by the call.
//
// A Scheduler is cheap and may be reused across calls. With the default
// random source every call derives its own independent stream from
// Config.Seed and the batch start date, so concurrent calls are safe and
// repeated identical calls reproduce identical batches; an injected
// RandSource must itself be safe for concurrent use and is consumed
// sequentially across calls.
type Scheduler struct {
	cfg        *Config
	logger     Logger
	metrics    MetricsCollector
	rand       RandSource // nil unless injected; batchRand derives per call
	onboarding OnboardingPolicy
}

// New creates a Scheduler from the given configuration.
//
// The configuration is copied, defaulted and validated; a validation
// failure returns an error wrapping ErrInvalidConfig. Optional dependencies
// (logger, metrics, random source, onboarding policy) are injected via
// functional options and default to slog, no-op metrics, a per-batch PCG
// stream derived from Config.Seed, and strategy.NeutralStart.
func New(cfg *Config, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfgCopy := *cfg
	cfgCopy.SetDefaults()
	if err := cfgCopy.Validate(); err != nil {
		return nil, err
	}

	options := &schedulerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewSlogDefault()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}
	if options.onboarding == nil {
		options.onboarding = strategy.NewNeutralStart()
	}

	return &Scheduler{
		cfg:        &cfgCopy,
		logger:     options.logger,
		metrics:    options.metrics,
		rand:       options.rand,
		onboarding: options.onboarding,
	}, nil
}

// GenerateRequest describes one batch generation call.
type GenerateRequest struct {
	// Start is the first period's start date.
	Start time.Time

	// PeriodCount is the number of periods to generate (>= 1).
	PeriodCount int

	// Members is the full population. The scheduler reads it only; it
	// determines per-period eligibility from the membership intervals.
	Members []Member

	// History carries per-member pre-batch assignment records, keyed by
	// member ID. Members without an entry are onboarded by the configured
	// OnboardingPolicy.
	History map[string]History

	// Estimators carries estimator states forward from earlier batches.
	// May be nil; the input table is never mutated.
	Estimators EstimatorTable
}

// memberState is the running batch state for one member: the one-time
// historical snapshot taken at batch start plus the in-batch accumulators.
// The snapshot fields are immutable for the duration of the batch, which
// prevents double-counting periods generated earlier in the same call.
type memberState struct {
	member Member

	// Snapshot, taken once during initialization.
	histAssignments int
	histDays        int
	histRecent      int
	debt            float64

	// In-batch accumulators. accumulated only increases.
	accumulated   int
	recentPeriods []int

	// lastUpdated is the period index of the member's last estimator
	// update, -1 before the first one. The gap to the current period
	// drives process-noise inflation for members who sat out periods.
	lastUpdated int
}

// recentCount returns the member's assignment count within the trailing
// window ending at period index p. Pre-batch assignments from the history
// snapshot are counted only for the part of the window the batch has not
// yet covered.
func (st *memberState) recentCount(p, window int) int {
	count := 0
	for _, idx := range st.recentPeriods {
		if idx > p-window {
			count++
		}
	}
	if carry := window - p; carry > 0 {
		count += min(st.histRecent, carry)
	}

	return count
}

// GenerateBatch generates PeriodCount consecutive period assignments
// starting at req.Start.
//
// Validation errors (nil request, empty population, period count < 1, zero
// start date, malformed intervals, duplicate IDs) reject the whole call
// with no partial output. Constraint relaxations never fail the call; they
// are returned as warnings on the result.
//
// Returns:
//   - *BatchResult: Batch, warnings, updated estimator table, fairness report
//   - error: Validation error wrapping a gieplan.Err* sentinel, or nil
func (s *Scheduler) GenerateBatch(req *GenerateRequest) (*BatchResult, error) {
	started := time.Now()
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// One-time historical snapshot.
	s.logger.Debug("run state changed", "state", types.RunInitializing.String())
	startDay := types.Day(req.Start)
	rng := s.batchRand(startDay)
	estimators := req.Estimators.Clone()
	states := s.initStates(req, startDay, estimators)

	batch := &types.Batch{
		ID:          uuid.NewString(),
		Assignments: make([]types.Assignment, 0, req.PeriodCount),
	}

	var warnings []types.Warning
	warn := func(code types.WarningCode, period int, format string, args ...any) {
		w := types.Warning{Code: code, PeriodIndex: period, Message: fmt.Sprintf(format, args...)}
		warnings = append(warnings, w)
		s.metrics.RecordConstraintRelaxed(string(code))
		s.logger.Warn("constraint relaxed", "code", string(code), "period", period, "detail", w.Message)
	}

	// Strictly sequential; period p's state update must land before
	// period p+1 is computed.
	s.logger.Debug("run state changed", "state", types.RunGenerating.String())
	var prevPrimaries []string
	generatedPrimaries := 0
	for p := 0; p < req.PeriodCount; p++ {
		date := startDay.AddDate(0, 0, p*s.cfg.PeriodDays)

		pool := activePool(states, date)
		if len(pool) == 0 {
			warn(types.WarnEmptyPool, p, "no member is active on %s", date.Format("2006-01-02"))
			batch.Assignments = append(batch.Assignments, types.Assignment{PeriodIndex: p, PeriodStart: date})
			prevPrimaries = nil

			continue
		}

		ideal := idealRate(s.cfg.TeamSize, len(pool))
		exclude := s.consecutiveExclusions(pool, prevPrimaries, p, warn)
		candidates := s.buildCandidates(pool, p, date, ideal)

		picked := selector.Pick(candidates, s.cfg.TeamSize, s.cfg.SubstituteCount, exclude, s.cfg.Temperature, rng)
		if picked.Undersized {
			warn(types.WarnTeamUndersized, p, "only %d of %d primaries available", len(picked.Primaries), s.cfg.TeamSize)
		}
		if picked.SubstitutesShort && s.cfg.SubstituteCount > 0 {
			warn(types.WarnSubstitutesShort, p, "only %d of %d substitutes available", len(picked.Substitutes), s.cfg.SubstituteCount)
		}

		mentorSatisfied := s.applyExperienceConstraint(&picked, candidates, exclude, states, date, p, warn)

		assertSelection(picked, candidates)

		// Update running state and estimators for the whole active pool:
		// idle members' estimates decay toward non-selection too.
		primarySet := make(map[string]struct{}, len(picked.Primaries))
		for _, id := range picked.Primaries {
			primarySet[id] = struct{}{}
		}
		for _, st := range pool {
			_, assigned := primarySet[st.member.ID]
			elapsed := 1
			if st.lastUpdated >= 0 {
				elapsed = p - st.lastUpdated
			}
			next, corrected := estimator.Update(estimators[st.member.ID], assigned, elapsed, ideal, s.estimatorConstants())
			estimators[st.member.ID] = next
			st.lastUpdated = p
			s.metrics.RecordEstimatorUpdate(assigned)
			if corrected {
				s.metrics.RecordDriftCorrection()
			}
		}
		for _, id := range picked.Primaries {
			st := states[id]
			st.accumulated++
			st.recentPeriods = append(st.recentPeriods, p)
		}
		generatedPrimaries += len(picked.Primaries)

		batch.Assignments = append(batch.Assignments, types.Assignment{
			PeriodIndex:     p,
			PeriodStart:     date,
			PrimaryIDs:      picked.Primaries,
			SubstituteIDs:   picked.Substitutes,
			MentorSatisfied: mentorSatisfied,
		})
		s.metrics.RecordPeriodGenerated(len(picked.Primaries))
		prevPrimaries = picked.Primaries
	}

	s.logger.Debug("run state changed", "state", types.RunFinalizing.String())
	accumulated := 0
	for _, st := range states {
		if st.accumulated < 0 {
			panic("gieplan: negative accumulated assignment count")
		}
		accumulated += st.accumulated
	}
	if accumulated != generatedPrimaries {
		panic(fmt.Sprintf("gieplan: accumulated counts (%d) diverged from generated primaries (%d)", accumulated, generatedPrimaries))
	}

	endDate := startDay.AddDate(0, 0, req.PeriodCount*s.cfg.PeriodDays-1)
	report := s.buildReport(req.Members, batch.Assignments, endDate)
	for _, v := range report.Violations {
		warnings = append(warnings, v)
		s.metrics.RecordConstraintRelaxed(string(v.Code))
	}
	s.metrics.SetGini(report.Gini)
	s.metrics.SetCV(report.CV)
	s.metrics.RecordBatchDuration(time.Since(started).Seconds(), req.PeriodCount)

	s.logger.Info("batch generated",
		"batchID", batch.ID,
		"periods", req.PeriodCount,
		"members", len(req.Members),
		"warnings", len(warnings),
		"gini", report.Gini,
		"cv", report.CV,
	)

	return &types.BatchResult{
		Batch:      batch,
		Warnings:   warnings,
		Estimators: estimators,
		Report:     report,
	}, nil
}

// initStates builds the running batch state and seeds estimator entries
// for members the scheduler has not seen before.
func (s *Scheduler) initStates(req *GenerateRequest, startDay time.Time, estimators types.EstimatorTable) map[string]*memberState {
	onboardIdeal := idealRate(s.cfg.TeamSize, countActive(req.Members, startDay))

	states := make(map[string]*memberState, len(req.Members))
	for _, m := range req.Members {
		hist, hasHistory := req.History[m.ID]
		_, hasEstimator := estimators[m.ID]
		switch {
		case !hasHistory && !hasEstimator:
			seedState, seedHist := s.onboarding.Seed(m, onboardIdeal, s.cfg.Estimator.PriorVariance)
			estimators[m.ID] = seedState
			hist = seedHist
			s.logger.Debug("onboarded member", "member", m.ID, "policy", s.onboarding.Name())
		case !hasEstimator:
			estimators[m.ID] = estimator.NewState(0, s.cfg.Estimator.PriorVariance)
		}

		states[m.ID] = &memberState{
			member:          m,
			histAssignments: hist.Assignments,
			histDays:        presence.ElapsedDays(m, startDay),
			histRecent:      hist.RecentAssignments,
			debt:            hist.Debt,
			lastUpdated:     -1,
		}
	}

	return states
}

// buildCandidates computes the priority score per pool member for period p.
func (s *Scheduler) buildCandidates(pool []*memberState, p int, date time.Time, ideal float64) []selector.Candidate {
	params := scoring.Params{
		Epsilon:       s.cfg.Scoring.Epsilon,
		MentorPenalty: s.cfg.Scoring.MentorPenalty,
		DebtWeight:    s.cfg.Scoring.DebtWeight,
	}

	candidates := make([]selector.Candidate, 0, len(pool))
	for _, st := range pool {
		in := scoring.Input{
			EffectiveAssignments: float64(st.histAssignments + st.accumulated),
			EffectiveDays:        float64(st.histDays + p*s.cfg.PeriodDays),
			Mentor:               s.cfg.RequireExperiencedMember && s.experienced(st, date),
			ExpectedRecent:       ideal * float64(s.cfg.Scoring.RecencyWindow),
			ActualRecent:         float64(st.recentCount(p, s.cfg.Scoring.RecencyWindow)),
			Debt:                 st.debt,
		}
		candidates = append(candidates, selector.Candidate{
			ID:            st.member.ID,
			Priority:      scoring.Score(in, params),
			NeverAssigned: in.NeverAssigned(),
			PresenceDays:  presence.ElapsedDays(st.member, date),
		})
	}

	return candidates
}

// consecutiveExclusions returns the exclusion set for the no-consecutive
// constraint, relaxing it with a warning when the pool cannot honor it.
func (s *Scheduler) consecutiveExclusions(pool []*memberState, prevPrimaries []string, p int, warn func(types.WarningCode, int, string, ...any)) map[string]struct{} {
	exclude := make(map[string]struct{})
	if !s.cfg.EnforceNoConsecutive || len(prevPrimaries) == 0 {
		return exclude
	}

	prev := make(map[string]struct{}, len(prevPrimaries))
	for _, id := range prevPrimaries {
		prev[id] = struct{}{}
	}
	remaining := 0
	for _, st := range pool {
		if _, was := prev[st.member.ID]; !was {
			remaining++
		}
	}
	if remaining < s.cfg.TeamSize {
		warn(types.WarnNoConsecutiveRelaxed, p, "pool of %d cannot exclude %d previous primaries", len(pool), len(prevPrimaries))

		return exclude
	}
	for _, id := range prevPrimaries {
		exclude[id] = struct{}{}
	}

	return exclude
}

// applyExperienceConstraint ensures at least one primary is experienced
// when the constraint is enabled and an experienced candidate exists,
// swapping in the best-ranked experienced candidate for the lowest-ranked
// primary. Returns whether the team ends up with an experienced member.
func (s *Scheduler) applyExperienceConstraint(picked *selector.Result, candidates []selector.Candidate, exclude map[string]struct{}, states map[string]*memberState, date time.Time, p int, warn func(types.WarningCode, int, string, ...any)) bool {
	hasExperienced := func(ids []string) bool {
		for _, id := range ids {
			if s.experienced(states[id], date) {
				return true
			}
		}

		return false
	}

	satisfied := hasExperienced(picked.Primaries)
	if !s.cfg.RequireExperiencedMember || satisfied || len(picked.Primaries) == 0 {
		return satisfied
	}

	chosen := make(map[string]struct{}, len(picked.Primaries))
	for _, id := range picked.Primaries {
		chosen[id] = struct{}{}
	}
	for _, cand := range selector.Rank(candidates) {
		if _, excluded := exclude[cand.ID]; excluded {
			continue
		}
		if _, already := chosen[cand.ID]; already {
			continue
		}
		if !s.experienced(states[cand.ID], date) {
			continue
		}

		// Swap the lowest-ranked primary for the best experienced
		// candidate; the displaced member becomes the first substitute
		// when the configuration allows substitutes at all.
		displaced := picked.Primaries[len(picked.Primaries)-1]
		picked.Primaries[len(picked.Primaries)-1] = cand.ID
		subs := make([]string, 0, s.cfg.SubstituteCount)
		if s.cfg.SubstituteCount > 0 {
			subs = append(subs, displaced)
		}
		for _, id := range picked.Substitutes {
			if id != cand.ID && len(subs) < s.cfg.SubstituteCount {
				subs = append(subs, id)
			}
		}
		picked.Substitutes = subs
		s.logger.Debug("experience constraint applied", "period", p, "in", cand.ID, "out", displaced)

		return true
	}

	warn(types.WarnNoExperiencedAvailable, p, "no experienced member active")

	return false
}

// experienced evaluates the derived experience predicate for a member's
// running state, counting both historical and in-batch assignments.
func (s *Scheduler) experienced(st *memberState, date time.Time) bool {
	return presence.Experienced(
		st.member,
		date,
		st.histAssignments+st.accumulated,
		s.cfg.Experience.PresenceDays,
		s.cfg.Experience.Assignments,
	)
}

// batchRand returns the random source for one generation call: the
// injected source when one was provided, otherwise a fresh PCG stream
// derived from the configured seed and the batch start date. A fresh
// stream per batch keeps repeated identical calls byte-identical no
// matter how many batches the Scheduler generated before.
func (s *Scheduler) batchRand(startDay time.Time) types.RandSource {
	if s.rand != nil {
		return s.rand
	}

	return rand.New(rand.NewPCG(hash.Mix(s.cfg.Seed), hash.Substream(s.cfg.Seed, uint64(startDay.Unix()))))
}

func (s *Scheduler) estimatorConstants() estimator.Constants {
	return estimator.Constants{
		ProcessNoise:     s.cfg.Estimator.ProcessNoise,
		ObservationNoise: s.cfg.Estimator.ObservationNoise,
		PriorVariance:    s.cfg.Estimator.PriorVariance,
		DriftThreshold:   s.cfg.Estimator.DriftThreshold,
		DriftPull:        s.cfg.Estimator.DriftPull,
	}
}

// assertSelection guards the selector contract: every returned member must
// come from the candidate pool and must not be excluded. A violation is a
// defect, not a recoverable condition.
func assertSelection(picked selector.Result, candidates []selector.Candidate) {
	known := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		known[c.ID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(picked.Primaries)+len(picked.Substitutes))
	for _, id := range append(append([]string{}, picked.Primaries...), picked.Substitutes...) {
		if _, ok := known[id]; !ok {
			panic(fmt.Sprintf("gieplan: selector returned %q outside the candidate pool", id))
		}
		if _, dup := seen[id]; dup {
			panic(fmt.Sprintf("gieplan: selector returned %q twice in one period", id))
		}
		seen[id] = struct{}{}
	}
}

// activePool returns the members active on the given date, ordered by
// member ID so downstream iteration is deterministic.
func activePool(states map[string]*memberState, date time.Time) []*memberState {
	ids := make([]string, 0, len(states))
	for id, st := range states {
		if st.member.ActiveAt(date) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	pool := make([]*memberState, len(ids))
	for i, id := range ids {
		pool[i] = states[id]
	}

	return pool
}

func countActive(members []types.Member, date time.Time) int {
	count := 0
	for _, m := range members {
		if m.ActiveAt(date) {
			count++
		}
	}

	return count
}

// idealRate is the per-period probability of assignment under perfect
// fairness: teamSize picks spread over poolSize members, capped at 1.
func idealRate(teamSize, poolSize int) float64 {
	if poolSize <= 0 {
		return 0
	}
	rate := float64(teamSize) / float64(poolSize)
	if rate > 1 {
		return 1
	}

	return rate
}

func validateRequest(req *GenerateRequest) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", types.ErrEmptyPopulation)
	}
	if req.PeriodCount < 1 {
		return fmt.Errorf("%w: got %d", types.ErrInvalidPeriodCount, req.PeriodCount)
	}
	if req.Start.IsZero() {
		return types.ErrInvalidStartDate
	}
	if len(req.Members) == 0 {
		return types.ErrEmptyPopulation
	}

	seen := make(map[string]struct{}, len(req.Members))
	for _, m := range req.Members {
		if m.ID == "" {
			return fmt.Errorf("%w: empty member ID", types.ErrDuplicateMember)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("%w: %q", types.ErrDuplicateMember, m.ID)
		}
		seen[m.ID] = struct{}{}

		for _, iv := range m.Intervals {
			if iv.End != nil && types.Day(*iv.End).Before(types.Day(iv.Start)) {
				return fmt.Errorf("%w: member %q", types.ErrMalformedInterval, m.ID)
			}
		}
	}

	return nil
}
