package manage_blackouts

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type ScheduleService interface {
	CreateBlackout(ctx context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error)
	UpdateBlackout(ctx context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error)
	GetBlackout(ctx context.Context, id int64) (*domain.BlackoutPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
