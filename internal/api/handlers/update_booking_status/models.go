package update_booking_status

import (
	"github.com/avelis/ARB-BookingService/internal/service/bookings/models"
	updateStatus "github.com/avelis/ARB-BookingService/internal/usecase/update_booking_status"
)

// UpdateStatusRequest is the HTTP request model.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse is the HTTP response model.
type UpdateStatusResponse struct {
	Booking           *models.BookingResponse `json:"booking"`
	DemotedBookingIDs []int64                 `json:"demotedBookingIds,omitempty"`
}

// FromUseCaseResponse converts the usecase response into the wire form.
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Booking:           models.FromDomain(resp.Booking),
		DemotedBookingIDs: resp.DemotedBookingIDs,
	}
}
