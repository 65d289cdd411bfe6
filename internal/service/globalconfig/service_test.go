package globalconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/ARB-BookingService/internal/domain"
	configRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/globalconfig"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fakeConfigRepo struct {
	cfg *domain.GlobalConfig
}

func (r *fakeConfigRepo) Get(context.Context) (*domain.GlobalConfig, error) {
	if r.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return r.cfg, nil
}

func (r *fakeConfigRepo) Save(_ context.Context, cfg *domain.GlobalConfig) error {
	r.cfg = cfg
	return nil
}

func validConfig() *domain.GlobalConfig {
	return &domain.GlobalConfig{
		StartTime:           types.MustTimeString("09:00"),
		EndTime:             types.MustTimeString("18:00"),
		SlotDurationMinutes: 60,
		BufferTimeMinutes:   0,
	}
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, stubLogger{})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultStartTime, cfg.StartTime.String())
	assert.Equal(t, domain.DefaultEndTime, cfg.EndTime.String())
	assert.Equal(t, domain.DefaultSlotDurationMinutes, cfg.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultBufferTimeMinutes, cfg.BufferTimeMinutes)
}

func TestGet_ReturnsStoredConfig(t *testing.T) {
	svc := NewService(&fakeConfigRepo{cfg: validConfig()}, stubLogger{})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:00", cfg.StartTime.String())
}

func TestUpdate_SavesValidConfig(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, stubLogger{})

	_, err := svc.Update(context.Background(), validConfig())
	require.NoError(t, err)
	require.NotNil(t, repo.cfg)
	assert.Equal(t, 60, repo.cfg.SlotDurationMinutes)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, stubLogger{})

	inverted := validConfig()
	inverted.StartTime, inverted.EndTime = inverted.EndTime, inverted.StartTime
	_, err := svc.Update(context.Background(), inverted)
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooShort := validConfig()
	tooShort.SlotDurationMinutes = domain.MinSlotDurationMinutes - 1
	_, err = svc.Update(context.Background(), tooShort)
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooLong := validConfig()
	tooLong.SlotDurationMinutes = domain.MaxSlotDurationMinutes + 1
	_, err = svc.Update(context.Background(), tooLong)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negativeBuffer := validConfig()
	negativeBuffer.BufferTimeMinutes = -1
	_, err = svc.Update(context.Background(), negativeBuffer)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
