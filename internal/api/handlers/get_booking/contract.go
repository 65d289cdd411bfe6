package get_booking

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type BookingService interface {
	GetByID(ctx context.Context, id, actorUserID int64) (*domain.Booking, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
