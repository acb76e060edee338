package types

import "errors"

// Sentinel errors for the gieplan scheduler.
//
// Validation errors are fatal and all-or-nothing: a call that returns one
// has mutated no state and produced no partial output. Constraint
// relaxations are never errors; they surface as Warning values on results.
var (
	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyPopulation is returned when a generation call receives no members.
	ErrEmptyPopulation = errors.New("member population is empty")

	// ErrInvalidPeriodCount is returned when the requested period count is < 1.
	ErrInvalidPeriodCount = errors.New("period count must be at least 1")

	// ErrInvalidStartDate is returned when the batch start date is the zero time.
	ErrInvalidStartDate = errors.New("start date is required")

	// ErrMalformedInterval is returned when a membership interval ends
	// before it starts.
	ErrMalformedInterval = errors.New("membership interval ends before it starts")

	// ErrDuplicateMember is returned when two members share an ID.
	ErrDuplicateMember = errors.New("duplicate member ID")

	// ErrNilBatch is returned when a batch operation receives a nil batch.
	ErrNilBatch = errors.New("batch is required")

	// ErrPeriodNotFound is returned when a period index does not exist in a batch.
	ErrPeriodNotFound = errors.New("period not found in batch")

	// ErrUnknownMember is returned when an operation references a member
	// not present where expected.
	ErrUnknownMember = errors.New("unknown member")

	// ErrDuplicateAssignee is returned when an edit would place the same
	// member twice in one period.
	ErrDuplicateAssignee = errors.New("member already assigned in period")
)
