package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrNotParticipant is returned when removing a user who is not attached
	ErrNotParticipant = errors.New("bookings.service: user is not a participant")

	// ErrPermissionDenied is returned when the acting user may not see or
	// change this booking
	ErrPermissionDenied = errors.New("bookings.service: permission denied")

	// ErrBookingClosed is returned when changing participants of a rejected
	// or canceled booking
	ErrBookingClosed = errors.New("bookings.service: booking is in a terminal status")

	// ErrInvalidInput is returned for malformed arguments
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal is returned for repository failures
	ErrInternal = errors.New("bookings.service: internal error")
)
