package gieplan

import (
	"fmt"
	"slices"
	"time"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/fairness"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/internal/presence"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// FairnessReport computes distribution statistics over a set of period
// assignments: per-member rates, the population mean rate, the Gini
// coefficient and coefficient of variation of the assignment counts, and
// any threshold violations against the configured bounds.
//
// The report is computed, never persisted. Only primary assignments count;
// substitute slots do not affect rates.
//
// Returns:
//   - *FairnessReport: Rows ordered by member ID
//   - error: ErrEmptyPopulation when members is empty
func (s *Scheduler) FairnessReport(members []Member, assignments []Assignment, ref time.Time) (*FairnessReport, error) {
	if len(members) == 0 {
		return nil, types.ErrEmptyPopulation
	}

	return s.buildReport(members, assignments, ref), nil
}

func (s *Scheduler) buildReport(members []types.Member, assignments []types.Assignment, ref time.Time) *types.FairnessReport {
	counts := make(map[string]int, len(members))
	for _, a := range assignments {
		for _, id := range a.PrimaryIDs {
			counts[id]++
		}
	}

	sorted := make([]types.Member, len(members))
	copy(sorted, members)
	slices.SortFunc(sorted, types.Member.Compare)

	report := &types.FairnessReport{Rates: make([]types.MemberRate, 0, len(sorted))}
	countValues := make([]float64, 0, len(sorted))
	rates := make([]float64, 0, len(sorted))
	for _, m := range sorted {
		days := presence.ElapsedDays(m, ref)
		rate := 0.0
		if days > 0 {
			rate = float64(counts[m.ID]) / float64(days)
		}
		report.Rates = append(report.Rates, types.MemberRate{
			MemberID:     m.ID,
			Assignments:  counts[m.ID],
			PresenceDays: days,
			Rate:         rate,
		})
		countValues = append(countValues, float64(counts[m.ID]))
		rates = append(rates, rate)
	}

	report.MeanRate = fairness.Mean(rates)
	report.Gini = fairness.Gini(countValues)
	report.CV = fairness.CV(countValues)
	report.StdDev = fairness.StdDev(countValues)

	if report.Gini > s.cfg.GiniThreshold {
		report.Violations = append(report.Violations, types.Warning{
			Code:        types.WarnGiniExceeded,
			PeriodIndex: -1,
			Message:     fmt.Sprintf("gini %.3f exceeds threshold %.3f", report.Gini, s.cfg.GiniThreshold),
		})
	}
	if report.CV > s.cfg.CVThreshold {
		report.Violations = append(report.Violations, types.Warning{
			Code:        types.WarnCVExceeded,
			PeriodIndex: -1,
			Message:     fmt.Sprintf("cv %.3f exceeds threshold %.3f", report.CV, s.cfg.CVThreshold),
		})
	}

	return report
}
