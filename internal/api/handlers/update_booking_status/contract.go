package update_booking_status

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
	updateStatus "github.com/avelis/ARB-BookingService/internal/usecase/update_booking_status"
)

type UpdateBookingStatusUseCase interface {
	Execute(ctx context.Context, req *updateStatus.Request) (*updateStatus.Response, error)
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
