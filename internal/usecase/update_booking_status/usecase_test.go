package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/ARB-BookingService/internal/domain"
	bookingRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/booking"
	"github.com/avelis/ARB-BookingService/pkg/ptr"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	byID        map[int64]*domain.Booking
	byToken     map[string]*domain.Booking
	overlapping []*domain.Booking

	statusChanges map[int64]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		byID:          map[int64]*domain.Booking{},
		byToken:       map[string]*domain.Booking{},
		statusChanges: map[int64]domain.BookingStatus{},
	}
	for _, b := range bookings {
		r.byID[b.ID] = b
		r.byToken[b.Token.String()] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (r *fakeBookingRepo) GetByToken(_ context.Context, token string) (*domain.Booking, error) {
	booking, ok := r.byToken[token]
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

func (r *fakeAssetRepo) GetUnit(context.Context, int64) (*domain.BookableUnit, error) {
	return r.unit, nil
}

func (r *fakeAssetRepo) GetAsset(context.Context, int64) (*domain.Asset, error) {
	return r.asset, nil
}

func (r *fakeAssetRepo) GetOrganization(context.Context, int64) (*domain.Organization, error) {
	return r.org, nil
}

func defaultAssets() *fakeAssetRepo {
	return &fakeAssetRepo{
		unit:  &domain.BookableUnit{ID: 1, AssetID: 10, Kind: domain.UnitConcrete},
		asset: &domain.Asset{ID: 10, OrganizationID: 1},
		org:   &domain.Organization{ID: 1},
	}
}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		UserID:         7,
		BookableUnitID: 1,
		Date:           time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime:      types.MustTimeString("10:00"),
		EndTime:        types.MustTimeString("10:30"),
		Status:         domain.StatusPending,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, assets *fakeAssetRepo) *UseCase {
	return NewUseCase(bookings, assets, fakeTxManager{}, stubLogger{})
}

func TestExecute_AcceptPending(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking(42))
	uc := newTestUseCase(bookings, defaultAssets())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(42)),
		NewStatus: domain.StatusAccepted,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAccepted, resp.Booking.Status)
	assert.Equal(t, domain.StatusAccepted, bookings.statusChanges[42])

	require.Len(t, resp.Events, 1)
	assert.Equal(t, domain.EventStatusChanged, resp.Events[0].Kind)
	assert.Equal(t, domain.StatusPending, *resp.Events[0].OldStatus)
	assert.Equal(t, domain.StatusAccepted, *resp.Events[0].NewStatus)
}

func TestExecute_AcceptDemotesOverlappingPendings(t *testing.T) {
	target := pendingBooking(42)
	bookings := newFakeBookingRepo(target)
	bookings.overlapping = []*domain.Booking{
		target,
		{ID: 51, Status: domain.StatusPending},
	}
	uc := newTestUseCase(bookings, defaultAssets())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(42)),
		NewStatus: domain.StatusAccepted,
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{51}, resp.DemotedBookingIDs)
	assert.Equal(t, domain.StatusRejected, bookings.statusChanges[51])

	require.Len(t, resp.Events, 2)
	assert.Equal(t, int64(51), resp.Events[0].BookingID)
	assert.Equal(t, int64(42), resp.Events[1].BookingID)
}

func TestExecute_AcceptBlockedByAcceptedOverlap(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking(42))
	bookings.overlapping = []*domain.Booking{{ID: 51, Status: domain.StatusAccepted}}
	uc := newTestUseCase(bookings, defaultAssets())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(42)),
		NewStatus: domain.StatusAccepted,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, bookings.statusChanges)
}

func TestExecute_AcceptOnAutoAssign(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking(42))
	assets := defaultAssets()
	assets.unit.Kind = domain.UnitAutoAssign
	uc := newTestUseCase(bookings, assets)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(42)),
		NewStatus: domain.StatusAccepted,
	})
	assert.ErrorIs(t, err, ErrAutoAssignAccepted)
}

func TestExecute_CancelByOwner(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking(42))
	uc := newTestUseCase(bookings, defaultAssets())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   ptr.Ptr(int64(42)),
		NewStatus:   domain.StatusCanceled,
		ActorUserID: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceled, resp.Booking.Status)
}

func TestExecute_CancelByNonOwner(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking(42))
	uc := newTestUseCase(bookings, defaultAssets())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   ptr.Ptr(int64(42)),
		NewStatus:   domain.StatusCanceled,
		ActorUserID: 8,
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_CancelByToken(t *testing.T) {
	booking := pendingBooking(42)
	bookings := newFakeBookingRepo(booking)
	uc := newTestUseCase(bookings, defaultAssets())

	resp, err := uc.Execute(context.Background(), &Request{
		Token:     ptr.Ptr(booking.Token.String()),
		NewStatus: domain.StatusCanceled,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceled, resp.Booking.Status)
}

func TestExecute_TerminalBookingRefusesChange(t *testing.T) {
	booking := pendingBooking(42)
	booking.Status = domain.StatusCanceled
	bookings := newFakeBookingRepo(booking)
	uc := newTestUseCase(bookings, defaultAssets())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(42)),
		NewStatus: domain.StatusAccepted,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_UnknownStatus(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking(42))
	uc := newTestUseCase(bookings, defaultAssets())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(42)),
		NewStatus: domain.BookingStatus("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets())

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(404)),
		NewStatus: domain.StatusCanceled,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_RequiresExactlyOneAddress(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), defaultAssets())

	_, err := uc.Execute(context.Background(), &Request{NewStatus: domain.StatusCanceled})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		BookingID: ptr.Ptr(int64(1)),
		Token:     ptr.Ptr("some-token"),
		NewStatus: domain.StatusCanceled,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
