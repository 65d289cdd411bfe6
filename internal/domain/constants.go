package domain

// Default configuration values, matching the seeded global config.
const (
	DefaultSlotDurationMinutes = 30
	DefaultBufferTimeMinutes   = 15
	DefaultStartTime           = "08:00"
	DefaultEndTime             = "17:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480
	MaxNotesLength         = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses do not occupy slots and are excluded from every
// conflict query.
var TerminalStatuses = []BookingStatus{
	StatusRejected,
	StatusCanceled,
}

// ActiveStatuses occupy slots.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
}
