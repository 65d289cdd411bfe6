package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/ARB-BookingService/internal/domain"
	assetRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/asset"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeBookingRepo struct {
	// bookings per unit id, as the overlap query would return them.
	bookings map[int64][]*domain.Booking
}

func (r *fakeBookingRepo) GetOverlapping(_ context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error) {
	return r.bookings[filter.BookableUnitID], nil
}

type fakeAssetRepo struct {
	units map[int64]*domain.BookableUnit
	asset *domain.Asset
	org   *domain.Organization
}

func (r *fakeAssetRepo) GetUnit(_ context.Context, id int64) (*domain.BookableUnit, error) {
	unit, ok := r.units[id]
	if !ok {
		return nil, assetRepo.ErrUnitNotFound
	}
	return unit, nil
}

func (r *fakeAssetRepo) GetAsset(_ context.Context, _ int64) (*domain.Asset, error) {
	return r.asset, nil
}

func (r *fakeAssetRepo) GetOrganization(_ context.Context, _ int64) (*domain.Organization, error) {
	return r.org, nil
}

func (r *fakeAssetRepo) ListConcreteUnits(_ context.Context, _ int64) ([]*domain.BookableUnit, error) {
	units := make([]*domain.BookableUnit, 0, len(r.units))
	for _, unit := range r.units {
		if unit.Kind == domain.UnitConcrete {
			units = append(units, unit)
		}
	}
	return units, nil
}

type fakeCalendar struct {
	hours         *domain.DayHours
	slotDuration  int
	buffer        int
	blackout      bool
	withinHorizon bool
}

func (c *fakeCalendar) ResolveHours(context.Context, int64, time.Time) (*domain.DayHours, error) {
	return c.hours, nil
}

func (c *fakeCalendar) ResolveSlotDuration(context.Context, *domain.Asset) (int, error) {
	return c.slotDuration, nil
}

func (c *fakeCalendar) ResolveBuffer(context.Context, *domain.Asset) (int, error) {
	return c.buffer, nil
}

func (c *fakeCalendar) IsBlackout(context.Context, int64, time.Time) (bool, error) {
	return c.blackout, nil
}

func (c *fakeCalendar) WithinHorizon(*domain.Asset, time.Time) bool {
	return c.withinHorizon
}

// Monday 2024-06-03; "now" is the Saturday before.
var (
	testDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookings map[int64][]*domain.Booking, calendar *fakeCalendar, units map[int64]*domain.BookableUnit) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeAssetRepo{
			units: units,
			asset: &domain.Asset{ID: 10, OrganizationID: 1},
			org:   &domain.Organization{ID: 1},
		},
		calendar,
		stubLogger{},
	).WithTimeProvider(fixedClock{now: testNow})
}

func concreteUnit(id int64) *domain.BookableUnit {
	return &domain.BookableUnit{ID: id, AssetID: 10, Kind: domain.UnitConcrete}
}

func slotStarts(resp *Response) []string {
	out := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		out[i] = slot.StartTime.String()
	}
	return out
}

func TestExecute_FullDay(t *testing.T) {
	hours := dayHours("08:00", "17:00")
	uc := newTestUseCase(nil, &fakeCalendar{hours: &hours, slotDuration: 30, withinHorizon: true},
		map[int64]*domain.BookableUnit{1: concreteUnit(1)})

	resp, err := uc.Execute(context.Background(), &Request{BookableUnitID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 18)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "16:30", resp.Slots[17].StartTime.String())
	assert.Equal(t, 30, resp.SlotDurationMinutes)
}

func TestExecute_AcceptedBookingRemovesOnlyItsSlot(t *testing.T) {
	hours := dayHours("08:00", "17:00")
	bookings := map[int64][]*domain.Booking{
		1: {{
			StartTime: types.MustTimeString("10:00"),
			EndTime:   types.MustTimeString("10:30"),
			Status:    domain.StatusAccepted,
		}},
	}
	uc := newTestUseCase(bookings, &fakeCalendar{hours: &hours, slotDuration: 30, withinHorizon: true},
		map[int64]*domain.BookableUnit{1: concreteUnit(1)})

	resp, err := uc.Execute(context.Background(), &Request{BookableUnitID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 17)
	assert.NotContains(t, slotStarts(resp), "10:00")
	assert.Contains(t, slotStarts(resp), "09:30")
	assert.Contains(t, slotStarts(resp), "10:30")
}

func TestExecute_BlackoutDateHasNoSlots(t *testing.T) {
	hours := dayHours("08:00", "17:00")
	uc := newTestUseCase(nil, &fakeCalendar{hours: &hours, slotDuration: 30, blackout: true, withinHorizon: true},
		map[int64]*domain.BookableUnit{1: concreteUnit(1)})

	resp, err := uc.Execute(context.Background(), &Request{BookableUnitID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_NonWorkingDayHasNoSlots(t *testing.T) {
	uc := newTestUseCase(nil, &fakeCalendar{hours: nil, slotDuration: 30, withinHorizon: true},
		map[int64]*domain.BookableUnit{1: concreteUnit(1)})

	resp, err := uc.Execute(context.Background(), &Request{BookableUnitID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateHasNoSlots(t *testing.T) {
	hours := dayHours("08:00", "17:00")
	uc := newTestUseCase(nil, &fakeCalendar{hours: &hours, slotDuration: 30, withinHorizon: true},
		map[int64]*domain.BookableUnit{1: concreteUnit(1)})

	resp, err := uc.Execute(context.Background(), &Request{
		BookableUnitID: 1,
		Date:           testNow.AddDate(0, 0, -1),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_OutsideHorizon(t *testing.T) {
	hours := dayHours("08:00", "17:00")
	uc := newTestUseCase(nil, &fakeCalendar{hours: &hours, slotDuration: 30, withinHorizon: false},
		map[int64]*domain.BookableUnit{1: concreteUnit(1)})

	_, err := uc.Execute(context.Background(), &Request{BookableUnitID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrOutsideHorizon)
}

func TestExecute_UnitNotFound(t *testing.T) {
	hours := dayHours("08:00", "17:00")
	uc := newTestUseCase(nil, &fakeCalendar{hours: &hours, slotDuration: 30, withinHorizon: true},
		map[int64]*domain.BookableUnit{})

	_, err := uc.Execute(context.Background(), &Request{BookableUnitID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestExecute_AutoAssignUnionsConcreteUnits(t *testing.T) {
	hours := dayHours("08:00", "10:00")
	units := map[int64]*domain.BookableUnit{
		1: concreteUnit(1),
		2: concreteUnit(2),
		3: {ID: 3, AssetID: 10, Kind: domain.UnitAutoAssign},
	}
	// Unit 1 is busy 08:00-09:00, unit 2 is busy 09:00-10:00: together
	// they still cover the whole window.
	bookings := map[int64][]*domain.Booking{
		1: {{
			StartTime: types.MustTimeString("08:00"),
			EndTime:   types.MustTimeString("09:00"),
			Status:    domain.StatusAccepted,
		}},
		2: {{
			StartTime: types.MustTimeString("09:00"),
			EndTime:   types.MustTimeString("10:00"),
			Status:    domain.StatusPending,
		}},
	}
	uc := newTestUseCase(bookings, &fakeCalendar{hours: &hours, slotDuration: 60, withinHorizon: true}, units)

	resp, err := uc.Execute(context.Background(), &Request{BookableUnitID: 3, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "09:00"}, slotStarts(resp))
}

func TestExecute_AutoAssignWithoutConcreteUnits(t *testing.T) {
	hours := dayHours("08:00", "10:00")
	units := map[int64]*domain.BookableUnit{
		3: {ID: 3, AssetID: 10, Kind: domain.UnitAutoAssign},
	}
	uc := newTestUseCase(nil, &fakeCalendar{hours: &hours, slotDuration: 30, withinHorizon: true}, units)

	resp, err := uc.Execute(context.Background(), &Request{BookableUnitID: 3, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}
