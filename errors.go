package gieplan

import "github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"

// Sentinel errors returned by the Scheduler, re-exported from the types
// package so callers can use errors.Is against gieplan.Err* directly.
var (
	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrEmptyPopulation is returned when a generation call receives no members.
	ErrEmptyPopulation = types.ErrEmptyPopulation

	// ErrInvalidPeriodCount is returned when the requested period count is < 1.
	ErrInvalidPeriodCount = types.ErrInvalidPeriodCount

	// ErrInvalidStartDate is returned when the batch start date is the zero time.
	ErrInvalidStartDate = types.ErrInvalidStartDate

	// ErrMalformedInterval is returned when a membership interval ends
	// before it starts.
	ErrMalformedInterval = types.ErrMalformedInterval

	// ErrDuplicateMember is returned when two members share an ID.
	ErrDuplicateMember = types.ErrDuplicateMember

	// ErrNilBatch is returned when a batch operation receives a nil batch.
	ErrNilBatch = types.ErrNilBatch

	// ErrPeriodNotFound is returned when a period index does not exist in a batch.
	ErrPeriodNotFound = types.ErrPeriodNotFound

	// ErrUnknownMember is returned when an operation references a member
	// not present where expected.
	ErrUnknownMember = types.ErrUnknownMember

	// ErrDuplicateAssignee is returned when an edit would place the same
	// member twice in one period.
	ErrDuplicateAssignee = types.ErrDuplicateAssignee
)
