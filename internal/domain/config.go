package domain

import (
	"time"

	"github.com/avelis/ARB-BookingService/pkg/types"
)

// GlobalConfig is the single fallback configuration used when an asset does
// not override hours, slot duration or buffer. Exactly one row exists; the
// storage layer enforces this with a fixed key.
type GlobalConfig struct {
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	BufferTimeMinutes   int

	UpdatedAt time.Time
}

// DayHours returns the fallback working window.
func (c *GlobalConfig) DayHours() DayHours {
	return DayHours{StartTime: c.StartTime, EndTime: c.EndTime}
}
