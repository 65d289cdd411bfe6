package admit_booking

import (
	"errors"
	"strings"
)

var (
	// ErrUnitNotFound is returned when the bookable unit does not exist
	ErrUnitNotFound = errors.New("admit_booking: bookable unit not found")

	// ErrBookingNotFound is returned on the edit path when the booking does
	// not exist
	ErrBookingNotFound = errors.New("admit_booking: booking not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("admit_booking: invalid input data")

	// ErrPastDate is returned when the requested date is in the past
	ErrPastDate = errors.New("admit_booking: date is in the past")

	// ErrOutsideHorizon is returned when the date is beyond the asset's
	// booking horizon
	ErrOutsideHorizon = errors.New("admit_booking: date is outside the booking horizon")

	// ErrBlackoutDate is returned when the date falls into a blackout period
	ErrBlackoutDate = errors.New("admit_booking: date falls into a blackout period")

	// ErrNotWorkingDay is returned when the asset does not work on the date
	ErrNotWorkingDay = errors.New("admit_booking: not a working day")

	// ErrOutsideWorkingHours is returned when the requested time range does
	// not fit the working window
	ErrOutsideWorkingHours = errors.New("admit_booking: time range is outside working hours")

	// ErrSlotTaken is returned when an accepted booking already occupies any
	// part of the requested range
	ErrSlotTaken = errors.New("admit_booking: timeslot is already taken by an accepted booking")

	// ErrAutoAssignAccepted is returned when an accepted status is requested
	// explicitly for the auto-assign placeholder
	ErrAutoAssignAccepted = errors.New("admit_booking: auto-assign bookings cannot be accepted before a unit is assigned")

	// ErrEditTerminal is returned when editing a rejected or canceled booking
	ErrEditTerminal = errors.New("admit_booking: booking is in a terminal status")

	// ErrPermissionDenied is returned when the acting user does not own the
	// edited booking
	ErrPermissionDenied = errors.New("admit_booking: permission denied")

	// ErrInternal is returned for repository or service failures
	ErrInternal = errors.New("admit_booking: internal error")
)

// ValidationErrors collects every calendar rule the request violates, so
// the caller gets the full list instead of the first failure.
type ValidationErrors struct {
	Errs []error
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the collected errors to errors.Is.
func (e *ValidationErrors) Unwrap() []error {
	return e.Errs
}

func (e *ValidationErrors) add(err error) {
	e.Errs = append(e.Errs, err)
}

func (e *ValidationErrors) hasErrors() bool {
	return len(e.Errs) > 0
}
