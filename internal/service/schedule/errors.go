package schedule

import "errors"

var (
	// ErrAssetNotFound is returned when the asset does not exist
	ErrAssetNotFound = errors.New("schedule.service: asset not found")

	// ErrBlackoutNotFound is returned when the blackout period does not exist
	ErrBlackoutNotFound = errors.New("schedule.service: blackout period not found")

	// ErrAcceptedBookings is returned when a blackout would cover dates that
	// already hold accepted bookings
	ErrAcceptedBookings = errors.New("schedule.service: accepted bookings exist in the blackout range")

	// ErrInvalidInput is returned for malformed arguments
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrInternal is returned for repository failures
	ErrInternal = errors.New("schedule.service: internal error")
)
