package manage_participants

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type BookingService interface {
	AddParticipant(ctx context.Context, bookingID, actorUserID, userID int64) (*domain.Event, error)
	RemoveParticipant(ctx context.Context, bookingID, actorUserID, userID int64) (*domain.Event, error)
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
