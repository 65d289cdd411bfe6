package domain

// EventKind labels a booking domain event.
type EventKind string

const (
	EventBookingCreated     EventKind = "created"
	EventBookingUpdated     EventKind = "updated"
	EventStatusChanged      EventKind = "status_changed"
	EventParticipantAdded   EventKind = "participant_added"
	EventParticipantRemoved EventKind = "participant_removed"
)

// Event is emitted by the booking flows for the external notifier.
// The core never formats messages or calendar artifacts; it only reports
// what happened to which booking.
type Event struct {
	BookingID int64
	Kind      EventKind

	// Status change details, set for EventStatusChanged.
	OldStatus *BookingStatus
	NewStatus *BookingStatus

	// UserID is the affected participant for participant events.
	UserID *int64
}

// NewStatusChangedEvent builds the event for a booking status transition.
func NewStatusChangedEvent(bookingID int64, from, to BookingStatus) Event {
	return Event{
		BookingID: bookingID,
		Kind:      EventStatusChanged,
		OldStatus: &from,
		NewStatus: &to,
	}
}
