package admit_booking

import "fmt"

// validateRequest checks the request's shape before any repository call.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookableUnitID <= 0 {
		return fmt.Errorf("%w: bookableUnitID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if req.Status != nil && !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}
	for _, id := range req.ParticipantIDs {
		if id <= 0 {
			return fmt.Errorf("%w: participant ids must be positive", ErrInvalidInput)
		}
	}
	return nil
}
