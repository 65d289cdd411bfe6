package globalconfig

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// ConfigRepository persists the singleton configuration row.
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.GlobalConfig, error)
	Save(ctx context.Context, cfg *domain.GlobalConfig) error
}

// Logger is the leveled logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
