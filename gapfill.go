package gieplan

import (
	"fmt"
	"slices"
	"time"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/presence"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/scoring"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/selector"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// FillGapAfterRemoval repairs an existing batch after a member's removal.
//
// For every period that contained the removed member, the single
// highest-priority replacement is chosen from the members active in that
// period and not already assigned in it; priorities are recomputed from
// the batch's own assignment counts and presence as of each period. Every
// other period is locked: it stays byte-identical to the input, and no
// re-optimization of the untouched periods is attempted.
//
// If no replacement is eligible, the slot is removed and left short rather
// than backfilled with a lower-quality choice, and a warning is recorded.
//
// The input batch is not mutated; the repaired copy is returned.
//
// Returns:
//   - *GapFillResult: Updated batch, replaced period indexes, warnings
//   - error: ErrNilBatch, ErrUnknownMember (empty removed ID), or
//     ErrEmptyPopulation
func (s *Scheduler) FillGapAfterRemoval(removedID string, batch *Batch, population []Member, ref time.Time) (*GapFillResult, error) {
	if batch == nil {
		return nil, types.ErrNilBatch
	}
	if removedID == "" {
		return nil, fmt.Errorf("%w: empty removed ID", types.ErrUnknownMember)
	}
	if len(population) == 0 {
		return nil, types.ErrEmptyPopulation
	}

	out := batch.Clone()

	// Assignment counts over the whole batch feed replacement priorities,
	// so a member already loaded elsewhere in the plan ranks low.
	counts := make(map[string]int, len(population))
	for _, a := range out.Assignments {
		for _, id := range a.PrimaryIDs {
			counts[id]++
		}
	}

	byID := make(map[string]types.Member, len(population))
	for _, m := range population {
		byID[m.ID] = m
	}

	result := &types.GapFillResult{Batch: out}
	unfilled := 0
	for i := range out.Assignments {
		a := &out.Assignments[i]
		if !a.Contains(removedID) {
			continue
		}

		replacedHere := false
		fill := func(list []string) []string {
			idx := slices.Index(list, removedID)
			if idx < 0 {
				return list
			}
			if pick, ok := s.bestReplacement(byID, counts, a, removedID, ref); ok {
				list[idx] = pick
				counts[pick]++
				replacedHere = true

				return list
			}

			unfilled++
			result.Warnings = append(result.Warnings, types.Warning{
				Code:        types.WarnGapUnfilled,
				PeriodIndex: a.PeriodIndex,
				Message:     fmt.Sprintf("no replacement available for %q", removedID),
			})

			return slices.Delete(list, idx, idx+1)
		}

		a.PrimaryIDs = fill(a.PrimaryIDs)
		a.SubstituteIDs = fill(a.SubstituteIDs)
		if replacedHere {
			result.ReplacedPeriods = append(result.ReplacedPeriods, a.PeriodIndex)
		}
	}

	s.metrics.RecordGapFill(len(result.ReplacedPeriods), unfilled)
	s.logger.Info("gap fill completed",
		"removed", removedID,
		"replacedPeriods", len(result.ReplacedPeriods),
		"unfilled", unfilled,
	)

	return result, nil
}

// bestReplacement ranks the members active in the period, not already
// assigned in it, and not the removed member, and returns the best one.
func (s *Scheduler) bestReplacement(byID map[string]types.Member, counts map[string]int, a *types.Assignment, removedID string, ref time.Time) (string, bool) {
	params := scoring.Params{
		Epsilon:       s.cfg.Scoring.Epsilon,
		MentorPenalty: s.cfg.Scoring.MentorPenalty,
		DebtWeight:    s.cfg.Scoring.DebtWeight,
	}

	candidates := make([]selector.Candidate, 0, len(byID))
	for id, m := range byID {
		if id == removedID || a.Contains(id) || !m.ActiveAt(a.PeriodStart) {
			continue
		}
		days := presence.ElapsedDays(m, ref)
		in := scoring.Input{
			EffectiveAssignments: float64(counts[id]),
			EffectiveDays:        float64(days),
		}
		candidates = append(candidates, selector.Candidate{
			ID:            id,
			Priority:      scoring.Score(in, params),
			NeverAssigned: in.NeverAssigned(),
			PresenceDays:  days,
		})
	}
	if len(candidates) == 0 {
		return "", false
	}

	return selector.Rank(candidates)[0].ID, true
}
