package domain

import (
	"time"

	"github.com/avelis/ARB-BookingService/pkg/types"
)

// WorkingHours is the weekly template record for one asset and weekday.
// Records are unique per (asset, weekday) and never deleted; an inactive
// record disables the day while keeping the history.
type WorkingHours struct {
	ID        int64
	AssetID   int64
	Weekday   time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlackoutPeriod is a date range during which an asset accepts no bookings.
// Bounds are inclusive.
type BlackoutPeriod struct {
	ID          int64
	AssetID     int64
	StartDate   time.Time
	EndDate     time.Time
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains reports whether the date falls inside the blackout range.
func (p *BlackoutPeriod) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(p.StartDate)) && !d.After(DateOnly(p.EndDate))
}

// DayHours is a resolved working window for one date: either an asset's
// weekly record or the global configuration fallback.
type DayHours struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DateOnly truncates a timestamp to its date in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
