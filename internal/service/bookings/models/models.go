package models

import (
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// BookingResponse is the wire form of a booking shared by every handler
// that returns one.
type BookingResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	BookableUnitID int64   `json:"bookableUnitId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	Token          string  `json:"token"`
	ParticipantIDs []int64 `json:"participantIds"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FromDomain converts a booking into its wire form.
func FromDomain(b *domain.Booking) *BookingResponse {
	participants := b.ParticipantIDs
	if participants == nil {
		participants = []int64{}
	}

	return &BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		BookableUnitID: b.BookableUnitID,
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Status:         string(b.Status),
		Token:          b.Token.String(),
		ParticipantIDs: participants,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList converts a booking slice into its wire form.
func FromDomainList(bookings []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomain(b)
	}
	return out
}
