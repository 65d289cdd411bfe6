package create_booking

import (
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/internal/service/bookings/models"
	admitBooking "github.com/avelis/ARB-BookingService/internal/usecase/admit_booking"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// CreateBookingRequest is the HTTP request model.
type CreateBookingRequest struct {
	BookableUnitID int64   `json:"bookableUnitId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "10:30"
	Status         *string `json:"status,omitempty"`
	ParticipantIDs []int64 `json:"participantIds,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// CreateBookingResponse is the HTTP response model.
type CreateBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`

	// DemotedBookingIDs lists the pending bookings rejected by this
	// admission.
	DemotedBookingIDs []int64 `json:"demotedBookingIds,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*admitBooking.Request, error) {
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
		UserID:         userID,
		BookableUnitID: r.BookableUnitID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         status,
		ParticipantIDs: r.ParticipantIDs,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the wire form.
func FromUseCaseResponse(resp *admitBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:           models.FromDomain(resp.Booking),
		DemotedBookingIDs: resp.DemotedBookingIDs,
	}
}
