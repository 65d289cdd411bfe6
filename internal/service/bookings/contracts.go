package bookings

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// BookingRepository is the persistence surface of the read and participant
// operations.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByAssetWithFilter(ctx context.Context, filter domain.AssetBookingsFilter) ([]*domain.Booking, error)
	AddParticipant(ctx context.Context, bookingID, userID int64) error
	RemoveParticipant(ctx context.Context, bookingID, userID int64) error
}

// Logger is the leveled logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
