package calendar

import "errors"

var (
	// ErrNoSlotDuration is returned when neither the asset nor the global
	// config define a slot duration
	ErrNoSlotDuration = errors.New("calendar: no slot duration configured")

	// ErrInternal is returned for repository failures
	ErrInternal = errors.New("calendar: internal error")
)
