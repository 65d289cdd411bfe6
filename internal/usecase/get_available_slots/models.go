package get_available_slots

import (
	"time"

	"github.com/avelis/ARB-BookingService/pkg/types"
)

// Request asks for the free slots of one bookable unit on one date.
type Request struct {
	UserID         int64 // requesting user, logged only
	BookableUnitID int64
	Date           time.Time
}

// Response lists the free slots for the date.
type Response struct {
	Date                time.Time
	BookableUnitID      int64
	AssetID             int64
	SlotDurationMinutes int
	Slots               []Slot
}

// Slot is one free candidate start time.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}
