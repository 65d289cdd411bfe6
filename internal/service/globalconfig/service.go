package globalconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelis/ARB-BookingService/internal/domain"
	configRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/globalconfig"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// Service reads and writes the global fallback configuration. Before the
// first explicit save the built-in defaults apply.
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService creates a global configuration service.
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{configRepo: configRepo, logger: logger}
}

// Get returns the stored configuration, or the defaults when nothing has
// been saved yet.
func (s *Service) Get(ctx context.Context) (*domain.GlobalConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return defaultConfig(), nil
		}
		s.logger.Error("Get: failed to get global config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	return cfg, nil
}

// Update validates and saves the configuration. The repository upserts a
// fixed-key row, so the singleton holds regardless of call order.
func (s *Service) Update(ctx context.Context, cfg *domain.GlobalConfig) (*domain.GlobalConfig, error) {
	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.configRepo.Save(ctx, cfg); err != nil {
		s.logger.Error("Update: failed to save global config: %v", err)
		return nil, fmt.Errorf("%w: failed to save config: %v", ErrInternal, err)
	}

	s.logger.Info("Update: global config saved: %s-%s, slot=%dm, buffer=%dm",
		cfg.StartTime, cfg.EndTime, cfg.SlotDurationMinutes, cfg.BufferTimeMinutes)
	return cfg, nil
}

func validateConfig(cfg *domain.GlobalConfig) error {
	if err := cfg.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := cfg.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if !cfg.StartTime.IsBefore(cfg.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be in [%d, %d]",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if cfg.BufferTimeMinutes < 0 {
		return fmt.Errorf("%w: bufferTimeMinutes must not be negative", ErrInvalidInput)
	}
	return nil
}

func defaultConfig() *domain.GlobalConfig {
	return &domain.GlobalConfig{
		StartTime:           types.TimeString(domain.DefaultStartTime),
		EndTime:             types.TimeString(domain.DefaultEndTime),
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		BufferTimeMinutes:   domain.DefaultBufferTimeMinutes,
	}
}
