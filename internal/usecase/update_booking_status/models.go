package update_booking_status

import "github.com/avelis/ARB-BookingService/internal/domain"

// Request asks for a status change. The booking is addressed either by id
// (admin screens) or by its opaque token (approve/cancel links). Exactly
// one must be set.
type Request struct {
	BookingID *int64
	Token     *string

	NewStatus domain.BookingStatus

	// ActorUserID enforces ownership on cancellation by id. Zero skips the
	// check; token callers proved possession of the link already.
	ActorUserID int64
}

// Response reports the transitioned booking and the side effects.
type Response struct {
	Booking *domain.Booking

	// DemotedBookingIDs are the overlapping pending bookings rejected by an
	// acceptance.
	DemotedBookingIDs []int64

	// Events are dispatched by the caller after the transaction commits.
	Events []domain.Event
}
