package update_booking_status

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInvalidTransition is returned when the state machine forbids the
	// requested status change
	ErrInvalidTransition = errors.New("update_booking_status: invalid status transition")

	// ErrSlotTaken is returned when acceptance would overlap an already
	// accepted booking
	ErrSlotTaken = errors.New("update_booking_status: timeslot is already taken by an accepted booking")

	// ErrAutoAssignAccepted is returned when accepting a booking still held
	// by the auto-assign placeholder
	ErrAutoAssignAccepted = errors.New("update_booking_status: auto-assign bookings cannot be accepted before a unit is assigned")

	// ErrPermissionDenied is returned when the acting user may not change
	// this booking
	ErrPermissionDenied = errors.New("update_booking_status: permission denied")

	// ErrInternal is returned for repository or service failures
	ErrInternal = errors.New("update_booking_status: internal error")
)
