package manage_working_hours

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type ScheduleService interface {
	ListWorkingHours(ctx context.Context, assetID int64) ([]*domain.WorkingHours, error)
	UpsertWorkingHours(ctx context.Context, wh *domain.WorkingHours) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
