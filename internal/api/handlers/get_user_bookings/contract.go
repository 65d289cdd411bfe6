package get_user_bookings

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type BookingService interface {
	ListUserBookings(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
