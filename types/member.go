package types

import "time"

// MembershipInterval is one contiguous span of active membership.
//
// End is nil while the membership is still open. Intervals on a member are
// chronological and non-overlapping; a new interval is appended when a
// member returns after a gap.
type MembershipInterval struct {
	Start time.Time  `json:"start"          yaml:"start"`
	End   *time.Time `json:"end,omitempty"  yaml:"end,omitempty"`
}

// Contains reports whether the interval covers the given date.
//
// The start day and (for closed intervals) the end day are both included.
func (iv MembershipInterval) Contains(ref time.Time) bool {
	day := Day(ref)
	if day.Before(Day(iv.Start)) {
		return false
	}
	if iv.End == nil {
		return true
	}

	return !day.After(Day(*iv.End))
}

// Member represents a participant in the watering rotation.
//
// The scheduler treats members as read-only input: membership intervals are
// created and mutated only by the surrounding application layer.
type Member struct {
	// ID is the opaque, stable identifier of the member.
	ID string `json:"id" yaml:"id"`

	// Name is an optional display name; the scheduler never keys on it.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Intervals is the ordered list of active-membership spans.
	Intervals []MembershipInterval `json:"membershipIntervals" yaml:"membershipIntervals"`
}

// ActiveAt reports whether the member is an active participant on the
// given date, i.e. some membership interval contains it.
func (m Member) ActiveAt(ref time.Time) bool {
	for _, iv := range m.Intervals {
		if iv.Contains(ref) {
			return true
		}
	}

	return false
}

// Compare orders members by ID.
//
// Used as the final, deterministic tie-break in scoring and selection so
// that results never depend on map iteration or insertion order.
//
// Returns:
//   - int: -1 if m < o, 0 if equal, +1 if m > o
func (m Member) Compare(o Member) int {
	switch {
	case m.ID < o.ID:
		return -1
	case m.ID > o.ID:
		return 1
	default:
		return 0
	}
}

// Day truncates a timestamp to UTC midnight.
//
// All day arithmetic in the scheduler operates on day-truncated times so
// that wall-clock components and time zones cannot skew presence spans.
func Day(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// History carries a member's pre-batch assignment record into a generation
// call. It is a read-only snapshot; the batch never writes it back.
type History struct {
	// Assignments is the lifetime count of real (primary) assignments.
	Assignments int `json:"assignments" yaml:"assignments"`

	// RecentAssignments is the count of assignments within the trailing
	// recency window immediately before the batch starts.
	RecentAssignments int `json:"recentAssignments,omitempty" yaml:"recentAssignments,omitempty"`

	// Debt is the carried-over imbalance from earlier batches. Positive
	// debt boosts priority; negative debt (a surplus) dampens it.
	Debt float64 `json:"debt,omitempty" yaml:"debt,omitempty"`
}
