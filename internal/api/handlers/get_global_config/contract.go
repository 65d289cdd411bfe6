package get_global_config

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type GlobalConfigService interface {
	Get(ctx context.Context) (*domain.GlobalConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
