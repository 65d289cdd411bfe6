package update_booking_status

import "fmt"

// validateRequest checks the addressing and the target status.
func validateRequest(req *Request) error {
	if (req.BookingID == nil) == (req.Token == nil) {
		return fmt.Errorf("%w: exactly one of bookingID or token must be set", ErrInvalidInput)
	}
	if req.BookingID != nil && *req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Token != nil && *req.Token == "" {
		return fmt.Errorf("%w: token must not be empty", ErrInvalidInput)
	}
	if !req.NewStatus.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.NewStatus)
	}
	return nil
}
