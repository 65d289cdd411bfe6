package admit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/ARB-BookingService/internal/domain"
	assetRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/asset"
	bookingRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/booking"
	"github.com/avelis/ARB-BookingService/pkg/ptr"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	byID        map[int64]*domain.Booking
	overlapping []*domain.Booking

	nextID        int64
	created       []*domain.Booking
	updated       []*domain.Booking
	statusChanges map[int64]domain.BookingStatus
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:          map[int64]*domain.Booking{},
		nextID:        100,
		statusChanges: map[int64]domain.BookingStatus{},
	}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	booking.ID = r.nextID
	r.created = append(r.created, booking)
	r.byID[booking.ID] = booking
	return booking, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	r.updated = append(r.updated, booking)
	r.byID[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (r *fakeBookingRepo) GetOverlapping(_ context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.overlapping))
	for _, b := range r.overlapping {
		if filter.ExcludeBookingID != nil && b.ID == *filter.ExcludeBookingID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r.statusChanges[id] = status
	if b, ok := r.byID[id]; ok {
		b.Status = status
	}
	return nil
}

type fakeAssetRepo struct {
	unit  *domain.BookableUnit
	asset *domain.Asset
	org   *domain.Organization
}

func (r *fakeAssetRepo) GetUnit(_ context.Context, id int64) (*domain.BookableUnit, error) {
	if r.unit == nil || r.unit.ID != id {
		return nil, assetRepo.ErrUnitNotFound
	}
	return r.unit, nil
}

func (r *fakeAssetRepo) GetAsset(_ context.Context, _ int64) (*domain.Asset, error) {
	return r.asset, nil
}

func (r *fakeAssetRepo) GetOrganization(_ context.Context, _ int64) (*domain.Organization, error) {
	return r.org, nil
}

type fakeCalendar struct {
	hours         *domain.DayHours
	blackout      bool
	withinHorizon bool
}

func (c *fakeCalendar) ResolveHours(context.Context, int64, time.Time) (*domain.DayHours, error) {
	return c.hours, nil
}

func (c *fakeCalendar) IsBlackout(context.Context, int64, time.Time) (bool, error) {
	return c.blackout, nil
}

func (c *fakeCalendar) WithinHorizon(*domain.Asset, time.Time) bool {
	return c.withinHorizon
}

var (
	testDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func workingHours() *domain.DayHours {
	return &domain.DayHours{
		StartTime: types.MustTimeString("08:00"),
		EndTime:   types.MustTimeString("17:00"),
	}
}

func defaultCalendar() *fakeCalendar {
	return &fakeCalendar{hours: workingHours(), withinHorizon: true}
}

func defaultAssets() *fakeAssetRepo {
	return &fakeAssetRepo{
		unit:  &domain.BookableUnit{ID: 1, AssetID: 10, Kind: domain.UnitConcrete},
		asset: &domain.Asset{ID: 10, OrganizationID: 1, DefaultBookingStatus: domain.StatusPending},
		org:   &domain.Organization{ID: 1},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, assets *fakeAssetRepo, calendar *fakeCalendar) *UseCase {
	return NewUseCase(bookings, assets, calendar, fakeTxManager{}, stubLogger{}).
		WithTimeProvider(fixedClock{now: testNow})
}

func newRequest() *Request {
	return &Request{
		UserID:         7,
		BookableUnitID: 1,
		Date:           testDate,
		StartTime:      types.MustTimeString("10:00"),
		EndTime:        types.MustTimeString("10:30"),
	}
}

func TestExecute_CreatePending(t *testing.T) {
	bookings := newFakeBookingRepo()
	uc := newTestUseCase(bookings, defaultAssets(), defaultCalendar())

	resp, err := uc.Execute(context.Background(), newRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.NotZero(t, resp.Booking.ID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", resp.Booking.Token.String())
	assert.Empty(t, resp.DemotedBookingIDs)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, domain.EventBookingCreated, resp.Events[0].Kind)
	assert.Equal(t, resp.Booking.ID, resp.Events[0].BookingID)
}

func TestExecute_AcceptedDemotesOverlappingPending(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.overlapping = []*domain.Booking{
		{ID: 51, Status: domain.StatusPending},
		{ID: 52, Status: domain.StatusPending},
	}
	uc := newTestUseCase(bookings, defaultAssets(), defaultCalendar())

	req := newRequest()
	req.Status = ptr.Ptr(domain.StatusAccepted)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAccepted, resp.Booking.Status)
	assert.Equal(t, []int64{51, 52}, resp.DemotedBookingIDs)
	assert.Equal(t, domain.StatusRejected, bookings.statusChanges[51])
	assert.Equal(t, domain.StatusRejected, bookings.statusChanges[52])

	// Two demotion events plus the creation itself.
	require.Len(t, resp.Events, 3)
	assert.Equal(t, domain.EventStatusChanged, resp.Events[0].Kind)
	assert.Equal(t, domain.EventStatusChanged, resp.Events[1].Kind)
	assert.Equal(t, domain.EventBookingCreated, resp.Events[2].Kind)
}

func TestExecute_PendingAdmissionDemotesOverlappingPending(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.overlapping = []*domain.Booking{{ID: 51, Status: domain.StatusPending}}
	uc := newTestUseCase(bookings, defaultAssets(), defaultCalendar())

	// The asset default is pending; demotion does not depend on the new
	// booking being accepted.
	resp, err := uc.Execute(context.Background(), newRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, []int64{51}, resp.DemotedBookingIDs)
	assert.Equal(t, domain.StatusRejected, bookings.statusChanges[51])
}

func TestExecute_AcceptedOverlapRejectsRequest(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.overlapping = []*domain.Booking{{ID: 51, Status: domain.StatusAccepted}}
	uc := newTestUseCase(bookings, defaultAssets(), defaultCalendar())

	_, err := uc.Execute(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, bookings.created)
}

func TestExecute_CollectsEveryCalendarViolation(t *testing.T) {
	calendar := defaultCalendar()
	calendar.blackout = true
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets(), calendar)

	req := newRequest()
	req.StartTime = types.MustTimeString("07:00")
	req.EndTime = types.MustTimeString("07:30")

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Errs, 2)
	assert.ErrorIs(t, err, ErrBlackoutDate)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets(), defaultCalendar())

	req := newRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_NotWorkingDay(t *testing.T) {
	calendar := defaultCalendar()
	calendar.hours = nil
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets(), calendar)

	_, err := uc.Execute(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrNotWorkingDay)
}

func TestExecute_OutsideHorizon(t *testing.T) {
	calendar := defaultCalendar()
	calendar.withinHorizon = false
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets(), calendar)

	_, err := uc.Execute(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrOutsideHorizon)
}

func TestExecute_ExplicitAcceptedOnAutoAssign(t *testing.T) {
	assets := defaultAssets()
	assets.unit.Kind = domain.UnitAutoAssign
	uc := newTestUseCase(newFakeBookingRepo(), assets, defaultCalendar())

	req := newRequest()
	req.Status = ptr.Ptr(domain.StatusAccepted)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAutoAssignAccepted)
}

func TestExecute_DefaultAcceptedOnAutoAssignFallsBackToPending(t *testing.T) {
	assets := defaultAssets()
	assets.unit.Kind = domain.UnitAutoAssign
	assets.asset.DefaultBookingStatus = domain.StatusAccepted
	uc := newTestUseCase(newFakeBookingRepo(), assets, defaultCalendar())

	resp, err := uc.Execute(context.Background(), newRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
}

func TestExecute_UnitNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets(), defaultCalendar())

	req := newRequest()
	req.BookableUnitID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestExecute_EditUpdatesExistingBooking(t *testing.T) {
	bookings := newFakeBookingRepo()
	existing := &domain.Booking{
		ID:             42,
		UserID:         7,
		BookableUnitID: 1,
		Date:           testDate,
		StartTime:      types.MustTimeString("09:00"),
		EndTime:        types.MustTimeString("09:30"),
		Status:         domain.StatusPending,
	}
	bookings.byID[existing.ID] = existing
	// The booking's own row comes back from the overlap query and must be
	// excluded, not treated as a conflict.
	bookings.overlapping = []*domain.Booking{existing}
	uc := newTestUseCase(bookings, defaultAssets(), defaultCalendar())

	req := newRequest()
	req.BookingID = ptr.Ptr(int64(42))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, "10:00", resp.Booking.StartTime.String())
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	require.Len(t, bookings.updated, 1)
	assert.Empty(t, bookings.created)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, domain.EventBookingUpdated, resp.Events[0].Kind)
}

func TestExecute_EditByNonOwner(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.byID[42] = &domain.Booking{ID: 42, UserID: 8, Status: domain.StatusPending}
	uc := newTestUseCase(bookings, defaultAssets(), defaultCalendar())

	req := newRequest()
	req.BookingID = ptr.Ptr(int64(42))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_EditTerminalBooking(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.byID[42] = &domain.Booking{ID: 42, UserID: 7, Status: domain.StatusCanceled}
	uc := newTestUseCase(bookings, defaultAssets(), defaultCalendar())

	req := newRequest()
	req.BookingID = ptr.Ptr(int64(42))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEditTerminal)
}

func TestExecute_EditMissingBooking(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets(), defaultCalendar())

	req := newRequest()
	req.BookingID = ptr.Ptr(int64(404))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_EditAcceptedOntoAutoAssignDemotesToPending(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.byID[42] = &domain.Booking{
		ID:             42,
		UserID:         7,
		BookableUnitID: 2,
		Status:         domain.StatusAccepted,
	}
	assets := defaultAssets()
	assets.unit.Kind = domain.UnitAutoAssign
	uc := newTestUseCase(bookings, assets, defaultCalendar())

	req := newRequest()
	req.BookingID = ptr.Ptr(int64(42))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets(), defaultCalendar())

	req := newRequest()
	req.EndTime = req.StartTime

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
