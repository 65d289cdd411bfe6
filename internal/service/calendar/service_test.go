package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/ARB-BookingService/internal/domain"
	configRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/globalconfig"
	scheduleRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/schedule"
	"github.com/avelis/ARB-BookingService/pkg/ptr"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeScheduleRepo struct {
	// working hours per weekday; missing entries report not found.
	hours    map[time.Weekday]*domain.WorkingHours
	blackout bool
}

func (r *fakeScheduleRepo) GetActiveWorkingHours(_ context.Context, _ int64, weekday time.Weekday) (*domain.WorkingHours, error) {
	wh, ok := r.hours[weekday]
	if !ok {
		return nil, scheduleRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

func (r *fakeScheduleRepo) HasBlackout(context.Context, int64, time.Time) (bool, error) {
	return r.blackout, nil
}

type fakeConfigRepo struct {
	cfg *domain.GlobalConfig
}

func (r *fakeConfigRepo) Get(context.Context) (*domain.GlobalConfig, error) {
	if r.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return r.cfg, nil
}

// Monday.
var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func testConfig() *domain.GlobalConfig {
	return &domain.GlobalConfig{
		StartTime:           types.MustTimeString("08:00"),
		EndTime:             types.MustTimeString("17:00"),
		SlotDurationMinutes: 30,
		BufferTimeMinutes:   15,
	}
}

func TestResolveHours_WeeklyRecordWins(t *testing.T) {
	schedules := &fakeScheduleRepo{hours: map[time.Weekday]*domain.WorkingHours{
		time.Monday: {
			StartTime: types.MustTimeString("10:00"),
			EndTime:   types.MustTimeString("14:00"),
		},
	}}
	svc := NewService(schedules, &fakeConfigRepo{cfg: testConfig()}, stubLogger{})

	hours, err := svc.ResolveHours(context.Background(), 10, monday)
	require.NoError(t, err)
	require.NotNil(t, hours)
	assert.Equal(t, "10:00", hours.StartTime.String())
	assert.Equal(t, "14:00", hours.EndTime.String())
}

func TestResolveHours_FallsBackToGlobalConfig(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeConfigRepo{cfg: testConfig()}, stubLogger{})

	hours, err := svc.ResolveHours(context.Background(), 10, monday)
	require.NoError(t, err)
	require.NotNil(t, hours)
	assert.Equal(t, "08:00", hours.StartTime.String())
	assert.Equal(t, "17:00", hours.EndTime.String())
}

func TestResolveHours_NoRecordAndNoConfig(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeConfigRepo{}, stubLogger{})

	hours, err := svc.ResolveHours(context.Background(), 10, monday)
	require.NoError(t, err)
	assert.Nil(t, hours)
}

func TestResolveSlotDuration(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeConfigRepo{cfg: testConfig()}, stubLogger{})

	d, err := svc.ResolveSlotDuration(context.Background(), &domain.Asset{SlotDurationMinutes: ptr.Ptr(45)})
	require.NoError(t, err)
	assert.Equal(t, 45, d)

	d, err = svc.ResolveSlotDuration(context.Background(), &domain.Asset{})
	require.NoError(t, err)
	assert.Equal(t, 30, d)

	noConfig := NewService(&fakeScheduleRepo{}, &fakeConfigRepo{}, stubLogger{})
	_, err = noConfig.ResolveSlotDuration(context.Background(), &domain.Asset{})
	assert.ErrorIs(t, err, ErrNoSlotDuration)
}

func TestResolveBuffer(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeConfigRepo{cfg: testConfig()}, stubLogger{})

	// A zero override is still an override.
	b, err := svc.ResolveBuffer(context.Background(), &domain.Asset{BufferTimeMinutes: ptr.Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, b)

	b, err = svc.ResolveBuffer(context.Background(), &domain.Asset{})
	require.NoError(t, err)
	assert.Equal(t, 15, b)

	noConfig := NewService(&fakeScheduleRepo{}, &fakeConfigRepo{}, stubLogger{})
	b, err = noConfig.ResolveBuffer(context.Background(), &domain.Asset{})
	require.NoError(t, err)
	assert.Equal(t, 0, b)
}

func TestIsBlackout(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{blackout: true}, &fakeConfigRepo{}, stubLogger{})

	blackout, err := svc.IsBlackout(context.Background(), 10, monday)
	require.NoError(t, err)
	assert.True(t, blackout)
}

func TestWithinHorizon(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(&fakeScheduleRepo{}, &fakeConfigRepo{}, stubLogger{}).
		WithTimeProvider(fixedClock{now: now})

	unrestricted := &domain.Asset{}
	assert.True(t, svc.WithinHorizon(unrestricted, now.AddDate(1, 0, 0)))

	limited := &domain.Asset{MaxDaysAhead: ptr.Ptr(7)}
	assert.True(t, svc.WithinHorizon(limited, now))
	assert.True(t, svc.WithinHorizon(limited, now.AddDate(0, 0, 7)))
	assert.False(t, svc.WithinHorizon(limited, now.AddDate(0, 0, 8)))
	assert.False(t, svc.WithinHorizon(limited, now.AddDate(0, 0, -1)))
}
