package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNotParticipant is returned when removing a user that is not a
	// participant of the booking
	ErrNotParticipant = errors.New("booking.repository: user is not a participant")

	// ErrBuildQuery is returned when building a SQL statement fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
