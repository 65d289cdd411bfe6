package get_asset_bookings

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type BookingService interface {
	ListAssetBookings(ctx context.Context, filter domain.AssetBookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
