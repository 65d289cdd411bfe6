package domain

import "github.com/avelis/ARB-BookingService/pkg/types"

// AvailableSlot is one free candidate booking start on a date.
// Slots are half-open intervals [StartTime, StartTime+Duration).
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// End returns the exclusive end bound of the slot.
func (s AvailableSlot) End() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
