// Package presence converts membership intervals into elapsed-days figures.
//
// All functions are pure; they are used both for rate denominators and for
// the derived experience predicate, so they must never mutate inputs or
// cache results on the member.
package presence

import (
	"time"

	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// ElapsedDays returns the member's total presence in days as of ref.
//
// Each interval whose start is on or before ref contributes its day span,
// inclusive of both endpoint days; open intervals are clipped at ref and
// closed intervals at their own end. A reference date before every interval
// start yields zero, never a negative count.
func ElapsedDays(m types.Member, ref time.Time) int {
	refDay := types.Day(ref)
	total := 0
	for _, iv := range m.Intervals {
		total += intervalDays(iv, refDay)
	}

	return total
}

func intervalDays(iv types.MembershipInterval, refDay time.Time) int {
	start := types.Day(iv.Start)
	if start.After(refDay) {
		return 0
	}

	end := refDay
	if iv.End != nil {
		if closed := types.Day(*iv.End); closed.Before(end) {
			end = closed
		}
	}
	if end.Before(start) {
		return 0
	}

	// Inclusive span: an interval starting and ending today counts one day.
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Experienced reports whether a member satisfies the experience predicate
// as of ref: cumulative presence exceeds dayThreshold OR the real
// assignment count exceeds countThreshold.
//
// This is a derived predicate over stored facts, evaluated on every call;
// nothing is cached on the member.
func Experienced(m types.Member, ref time.Time, assignments, dayThreshold, countThreshold int) bool {
	if countThreshold > 0 && assignments >= countThreshold {
		return true
	}

	return dayThreshold > 0 && ElapsedDays(m, ref) >= dayThreshold
}
