package types

import (
	"slices"
	"time"
)

// Assignment is one scheduled period of the rotation.
type Assignment struct {
	// PeriodIndex is the zero-based index of the period within its batch.
	PeriodIndex int `json:"periodIndex" yaml:"periodIndex"`

	// PeriodStart is the first day of the period.
	PeriodStart time.Time `json:"periodStartDate" yaml:"periodStartDate"`

	// PrimaryIDs are the members doing the task this period, in rank order.
	PrimaryIDs []string `json:"primaryIds" yaml:"primaryIds"`

	// SubstituteIDs are the backup members, in rank order. May be empty.
	SubstituteIDs []string `json:"substituteIds" yaml:"substituteIds"`

	// MentorSatisfied records whether at least one primary satisfied the
	// experience predicate at selection time.
	MentorSatisfied bool `json:"mentorSatisfied" yaml:"mentorSatisfied"`

	// Annotation is optional free text attached by manual editing.
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`

	// Emergency marks a period that was manually flagged, with a reason.
	Emergency       bool   `json:"isEmergency,omitempty"     yaml:"isEmergency,omitempty"`
	EmergencyReason string `json:"emergencyReason,omitempty" yaml:"emergencyReason,omitempty"`
}

// ContainsPrimary reports whether the member is a primary this period.
func (a Assignment) ContainsPrimary(id string) bool {
	return slices.Contains(a.PrimaryIDs, id)
}

// Contains reports whether the member appears in either list this period.
func (a Assignment) Contains(id string) bool {
	return slices.Contains(a.PrimaryIDs, id) || slices.Contains(a.SubstituteIDs, id)
}

// Clone returns a deep copy of the assignment.
func (a Assignment) Clone() Assignment {
	a.PrimaryIDs = slices.Clone(a.PrimaryIDs)
	a.SubstituteIDs = slices.Clone(a.SubstituteIDs)

	return a
}

// Batch is a generated sequence of period assignments.
//
// Batches are "sticky": manual edits mutate exactly one period and never
// trigger re-optimization or silent recomputation of other periods.
type Batch struct {
	// ID uniquely identifies the batch.
	ID string `json:"id" yaml:"id"`

	// Assignments holds one record per generated period, in period order.
	Assignments []Assignment `json:"assignments" yaml:"assignments"`
}

// Clone returns a deep copy of the batch.
func (b *Batch) Clone() *Batch {
	out := &Batch{ID: b.ID, Assignments: make([]Assignment, len(b.Assignments))}
	for i, a := range b.Assignments {
		out.Assignments[i] = a.Clone()
	}

	return out
}

// Period returns a pointer to the assignment with the given period index,
// or nil if the batch has no such period.
func (b *Batch) Period(periodIndex int) *Assignment {
	for i := range b.Assignments {
		if b.Assignments[i].PeriodIndex == periodIndex {
			return &b.Assignments[i]
		}
	}

	return nil
}

// ReplaceAssignee swaps one member for another in a single period.
//
// The replacement is applied to whichever list (primary or substitute)
// contains oldID. No other period is touched and nothing is recomputed.
//
// Returns:
//   - error: ErrPeriodNotFound, ErrUnknownMember if oldID is not in the
//     period, or ErrDuplicateAssignee if newID already appears in it
func (b *Batch) ReplaceAssignee(periodIndex int, oldID, newID string) error {
	a := b.Period(periodIndex)
	if a == nil {
		return ErrPeriodNotFound
	}
	if a.Contains(newID) {
		return ErrDuplicateAssignee
	}
	if i := slices.Index(a.PrimaryIDs, oldID); i >= 0 {
		a.PrimaryIDs[i] = newID
		return nil
	}
	if i := slices.Index(a.SubstituteIDs, oldID); i >= 0 {
		a.SubstituteIDs[i] = newID
		return nil
	}

	return ErrUnknownMember
}

// MarkEmergency flags a single period as an emergency with the given
// reason. Other periods are untouched.
func (b *Batch) MarkEmergency(periodIndex int, reason string) error {
	a := b.Period(periodIndex)
	if a == nil {
		return ErrPeriodNotFound
	}
	a.Emergency = true
	a.EmergencyReason = reason

	return nil
}

// Annotate attaches free text to a single period.
func (b *Batch) Annotate(periodIndex int, text string) error {
	a := b.Period(periodIndex)
	if a == nil {
		return ErrPeriodNotFound
	}
	a.Annotation = text

	return nil
}
