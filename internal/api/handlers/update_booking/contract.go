package update_booking

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
	admitBooking "github.com/avelis/ARB-BookingService/internal/usecase/admit_booking"
)

type AdmitBookingUseCase interface {
	Execute(ctx context.Context, req *admitBooking.Request) (*admitBooking.Response, error)
}

// EventDispatcher delivers the flow's events after it succeeded.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []domain.Event)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
