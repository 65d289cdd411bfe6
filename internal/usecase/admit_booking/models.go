package admit_booking

import (
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// Request carries a booking through admission. BookingID is nil on the
// create path and set on the edit path, where the booking's own row is
// excluded from the conflict check.
type Request struct {
	BookingID *int64

	UserID         int64
	BookableUnitID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString

	// Status is the explicitly requested status. Nil means the asset's
	// default booking status.
	Status *domain.BookingStatus

	ParticipantIDs []int64
	Notes          *string
}

// Response reports the admitted booking and the side effects of admission.
type Response struct {
	Booking *domain.Booking

	// DemotedBookingIDs are the overlapping pending bookings rejected
	// because this booking was admitted as accepted.
	DemotedBookingIDs []int64

	// Events are dispatched by the caller after the transaction commits.
	Events []domain.Event
}
