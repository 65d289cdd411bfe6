package update_booking

import (
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/internal/service/bookings/models"
	admitBooking "github.com/avelis/ARB-BookingService/internal/usecase/admit_booking"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// UpdateBookingRequest is the HTTP request model. The edit path re-runs
// the full admission check with the booking's own row excluded.
type UpdateBookingRequest struct {
	BookableUnitID int64   `json:"bookableUnitId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         *string `json:"status,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// UpdateBookingResponse is the HTTP response model.
type UpdateBookingResponse struct {
	Booking           *models.BookingResponse `json:"booking"`
	DemotedBookingIDs []int64                 `json:"demotedBookingIds,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*admitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	var status *domain.BookingStatus
	if r.Status != nil {
		s := domain.BookingStatus(*r.Status)
		status = &s
	}

	return &admitBooking.Request{
		BookingID:      &bookingID,
		UserID:         userID,
		BookableUnitID: r.BookableUnitID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         status,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the wire form.
func FromUseCaseResponse(resp *admitBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		Booking:           models.FromDomain(resp.Booking),
		DemotedBookingIDs: resp.DemotedBookingIDs,
	}
}
