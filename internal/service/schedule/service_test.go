package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/ARB-BookingService/internal/domain"
	assetRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/asset"
	scheduleRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/schedule"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fakeScheduleRepo struct {
	blackouts map[int64]*domain.BlackoutPeriod
	upserted  []*domain.WorkingHours
	nextID    int64
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{blackouts: map[int64]*domain.BlackoutPeriod{}, nextID: 100}
}

func (r *fakeScheduleRepo) ListWorkingHours(context.Context, int64) ([]*domain.WorkingHours, error) {
	return nil, nil
}

func (r *fakeScheduleRepo) UpsertWorkingHours(_ context.Context, wh *domain.WorkingHours) error {
	r.upserted = append(r.upserted, wh)
	return nil
}

func (r *fakeScheduleRepo) CreateBlackout(_ context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	r.nextID++
	period.ID = r.nextID
	r.blackouts[period.ID] = period
	return period, nil
}

func (r *fakeScheduleRepo) GetBlackout(_ context.Context, id int64) (*domain.BlackoutPeriod, error) {
	period, ok := r.blackouts[id]
	if !ok {
		return nil, scheduleRepo.ErrBlackoutNotFound
	}
	return period, nil
}

func (r *fakeScheduleRepo) UpdateBlackout(_ context.Context, period *domain.BlackoutPeriod) error {
	if _, ok := r.blackouts[period.ID]; !ok {
		return scheduleRepo.ErrBlackoutNotFound
	}
	r.blackouts[period.ID] = period
	return nil
}

type fakeBookingRepo struct {
	hasAccepted bool
}

func (r *fakeBookingRepo) HasAcceptedInDateRange(context.Context, int64, time.Time, time.Time) (bool, error) {
	return r.hasAccepted, nil
}

type fakeAssetRepo struct {
	assetID int64
}

func (r *fakeAssetRepo) GetAsset(_ context.Context, id int64) (*domain.Asset, error) {
	if id != r.assetID {
		return nil, assetRepo.ErrAssetNotFound
	}
	return &domain.Asset{ID: id}, nil
}

func newTestService(hasAccepted bool) (*Service, *fakeScheduleRepo) {
	schedules := newFakeScheduleRepo()
	now, _ := time.Parse(domain.DateFormat, "2024-06-01")
	svc := NewService(schedules, &fakeBookingRepo{hasAccepted: hasAccepted}, &fakeAssetRepo{assetID: 10}, stubLogger{}).
		WithTimeProvider(fixedClock{now: now})
	return svc, schedules
}

func blackout(start, end string) *domain.BlackoutPeriod {
	s, _ := time.Parse(domain.DateFormat, start)
	e, _ := time.Parse(domain.DateFormat, end)
	return &domain.BlackoutPeriod{AssetID: 10, StartDate: s, EndDate: e}
}

func TestUpsertWorkingHours(t *testing.T) {
	svc, schedules := newTestService(false)

	err := svc.UpsertWorkingHours(context.Background(), &domain.WorkingHours{
		AssetID:   10,
		Weekday:   time.Monday,
		StartTime: types.MustTimeString("08:00"),
		EndTime:   types.MustTimeString("17:00"),
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.Len(t, schedules.upserted, 1)
}

func TestUpsertWorkingHours_Invalid(t *testing.T) {
	svc, _ := newTestService(false)

	err := svc.UpsertWorkingHours(context.Background(), &domain.WorkingHours{
		AssetID:   10,
		Weekday:   time.Monday,
		StartTime: types.MustTimeString("17:00"),
		EndTime:   types.MustTimeString("08:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsertWorkingHours_UnknownAsset(t *testing.T) {
	svc, _ := newTestService(false)

	err := svc.UpsertWorkingHours(context.Background(), &domain.WorkingHours{
		AssetID:   99,
		Weekday:   time.Monday,
		StartTime: types.MustTimeString("08:00"),
		EndTime:   types.MustTimeString("17:00"),
	})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestCreateBlackout(t *testing.T) {
	svc, _ := newTestService(false)

	created, err := svc.CreateBlackout(context.Background(), blackout("2024-07-01", "2024-07-05"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreateBlackout_RefusedOverAcceptedBookings(t *testing.T) {
	svc, _ := newTestService(true)

	_, err := svc.CreateBlackout(context.Background(), blackout("2024-07-01", "2024-07-05"))
	assert.ErrorIs(t, err, ErrAcceptedBookings)
}

func TestCreateBlackout_PastStartDate(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.CreateBlackout(context.Background(), blackout("2024-05-01", "2024-07-01"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBlackout_InvalidRange(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.CreateBlackout(context.Background(), blackout("2024-07-05", "2024-07-01"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBlackout_KeepsAsset(t *testing.T) {
	svc, schedules := newTestService(false)
	existing, err := svc.CreateBlackout(context.Background(), blackout("2024-07-01", "2024-07-05"))
	require.NoError(t, err)

	update := blackout("2024-07-02", "2024-07-06")
	update.ID = existing.ID
	update.AssetID = 999 // must be ignored

	updated, err := svc.UpdateBlackout(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.AssetID)
	assert.Equal(t, "2024-07-06", schedules.blackouts[existing.ID].EndDate.Format(domain.DateFormat))
}

func TestUpdateBlackout_NotFound(t *testing.T) {
	svc, _ := newTestService(false)

	update := blackout("2024-07-01", "2024-07-05")
	update.ID = 404

	_, err := svc.UpdateBlackout(context.Background(), update)
	assert.ErrorIs(t, err, ErrBlackoutNotFound)
}
