package update_global_config

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

type GlobalConfigService interface {
	Update(ctx context.Context, cfg *domain.GlobalConfig) (*domain.GlobalConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
