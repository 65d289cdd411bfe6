package notifier

// eventPayload is the wire form of one booking event.
type eventPayload struct {
	BookingID int64  `json:"booking_id"`
	Kind      string `json:"kind"`
	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status,omitempty"`
	UserID    int64  `json:"user_id,omitempty"`
}

// notifyRequest batches the events of one flow into one delivery.
type notifyRequest struct {
	Events []eventPayload `json:"events"`
}
