package get_available_slots

import "errors"

var (
	// ErrUnitNotFound is returned when the bookable unit does not exist
	ErrUnitNotFound = errors.New("get_available_slots: bookable unit not found")

	// ErrOutsideHorizon is returned when the date is beyond the asset's
	// booking horizon
	ErrOutsideHorizon = errors.New("get_available_slots: date is outside the booking horizon")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for repository or service failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
